package db_test

import (
	"encoding/json"
	"math/big"

	"arenaledger/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Numeric", func() {
	It("reads the zero value as 0", func() {
		var n db.Numeric
		Expect(n.String()).To(Equal("0"))
		Expect(n.Sign()).To(Equal(0))
		Expect(n.Int().Int64()).To(Equal(int64(0)))
	})

	It("does not share state with the source value", func() {
		src := big.NewInt(10)
		n := db.NewNumeric(src)
		src.SetInt64(99)
		Expect(n.String()).To(Equal("10"))

		out := n.Int()
		out.SetInt64(1)
		Expect(n.String()).To(Equal("10"))
	})

	It("renders as a base-10 string for the driver", func() {
		n, err := db.ParseNumeric("115792089237316195423570985008687907853269984665640564039457584007913129639935")
		Expect(err).NotTo(HaveOccurred())
		v, err := n.Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("115792089237316195423570985008687907853269984665640564039457584007913129639935"))
	})

	DescribeTable("Scan",
		func(src any, expected string) {
			var n db.Numeric
			Expect(n.Scan(src)).To(Succeed())
			Expect(n.String()).To(Equal(expected))
		},
		Entry("bytes", []byte("12345678901234567890123"), "12345678901234567890123"),
		Entry("string", "-42", "-42"),
		Entry("int64", int64(7), "7"),
		Entry("float64", float64(150), "150"),
		Entry("string with fraction", "10.000", "10"),
		Entry("nil", nil, "0"),
	)

	It("rejects unsupported source types", func() {
		var n db.Numeric
		Expect(n.Scan(true)).To(MatchError(ContainSubstring("unsupported type bool")))
	})

	It("rejects malformed strings", func() {
		_, err := db.ParseNumeric("12a")
		Expect(err).To(HaveOccurred())
	})

	It("encodes to JSON as a string and accepts numbers back", func() {
		data, err := json.Marshal(db.NumericFromInt64(250))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"250"`))

		var n db.Numeric
		Expect(json.Unmarshal([]byte(`300`), &n)).To(Succeed())
		Expect(n.String()).To(Equal("300"))
	})
})
