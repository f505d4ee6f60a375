package merkle_test

import (
	"math/big"

	"arenaledger/internal/merkle"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tree", func() {
	var leaves []merkle.Leaf

	BeforeEach(func() {
		leaves = []merkle.Leaf{
			{Address: common.HexToAddress("0x00000000000000000000000000000000000000a1"), Amount: big.NewInt(100)},
			{Address: common.HexToAddress("0x00000000000000000000000000000000000000b2"), Amount: big.NewInt(200)},
			{Address: common.HexToAddress("0x00000000000000000000000000000000000000c3"), Amount: big.NewInt(300)},
		}
	})

	It("hashes leaves as a double keccak of the abi encoding", func() {
		h, err := merkle.LeafHash(leaves[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(h).To(Equal(common.HexToHash("0x141fda214d682076c3ddf3a22ad5518b3f1f2aca5fb36733d43a820b67d605ee")))
	})

	It("hashes sorted pairs and promotes an odd node", func() {
		two, err := merkle.New(leaves[:2])
		Expect(err).NotTo(HaveOccurred())
		Expect(two.Root()).To(Equal(common.HexToHash("0x7af74014198677f464d44df7c5cd9e245ba4e4f5e275d7170765d5f8d655e3d2")))

		three, err := merkle.New(leaves)
		Expect(err).NotTo(HaveOccurred())
		Expect(three.Root()).To(Equal(common.HexToHash("0x265e8ffdb13c337235907025a451c66d8fbc5eb898d8ce2aab834a67b5c939e0")))
		Expect(three.Nodes()).To(HaveLen(3 + 2 + 1))
	})

	It("appends the competition leaf after the reward leaves", func() {
		tree, err := merkle.NewForCompetition("comp-1", leaves[:2])
		Expect(err).NotTo(HaveOccurred())

		binding, err := merkle.CompetitionLeafHash("comp-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(binding).To(Equal(common.HexToHash("0x180fb814d8ea697c562618274a0b3f38e541f4653e6ec5c55d06de4d7507b38c")))
		Expect(tree.Leaves()).To(HaveLen(3))
		Expect(tree.Leaves()[2]).To(Equal(binding))
		Expect(tree.Root()).To(Equal(common.HexToHash("0x0b85ae0f0305b87e7f9ecf956fb05254031e15a3b227b29f4be5706ddf3b2135")))

		first, _ := merkle.LeafHash(leaves[0])
		proof, err := tree.Proof(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(merkle.Verify(proof, tree.Root(), first)).To(BeTrue())
	})

	It("commits equal leaves of different competitions to different roots", func() {
		one, err := merkle.NewForCompetition("comp-1", leaves)
		Expect(err).NotTo(HaveOccurred())
		two, err := merkle.NewForCompetition("comp-2", leaves)
		Expect(err).NotTo(HaveOccurred())
		Expect(one.Root()).NotTo(Equal(two.Root()))

		_, err = merkle.NewForCompetition("", leaves)
		Expect(err).To(HaveOccurred())
	})

	It("roots a competition without rewards at its competition leaf", func() {
		tree, err := merkle.NewForCompetition("comp-1", nil)
		Expect(err).NotTo(HaveOccurred())
		binding, err := merkle.CompetitionLeafHash("comp-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(tree.Root()).To(Equal(binding))
		Expect(tree.Nodes()).To(HaveLen(1))
	})

	It("uses the leaf as the root of a single-leaf tree", func() {
		tree, err := merkle.New(leaves[:1])
		Expect(err).NotTo(HaveOccurred())
		leaf, _ := merkle.LeafHash(leaves[0])
		Expect(tree.Root()).To(Equal(leaf))

		proof, err := tree.Proof(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(proof).To(BeEmpty())
		Expect(merkle.Verify(proof, tree.Root(), leaf)).To(BeTrue())
	})

	It("produces proofs that verify for every leaf", func() {
		for n := 1; n <= 9; n++ {
			var many []merkle.Leaf
			for i := 0; i < n; i++ {
				many = append(many, merkle.Leaf{
					Address: common.BigToAddress(big.NewInt(int64(i + 1))),
					Amount:  big.NewInt(int64(1000 * (i + 1))),
				})
			}
			tree, err := merkle.New(many)
			Expect(err).NotTo(HaveOccurred())

			for i, l := range many {
				proof, err := tree.Proof(i)
				Expect(err).NotTo(HaveOccurred())
				leaf, err := merkle.LeafHash(l)
				Expect(err).NotTo(HaveOccurred())
				Expect(merkle.Verify(proof, tree.Root(), leaf)).To(BeTrue(), "leaf %d of %d", i, n)
			}
		}
	})

	It("rejects a proof for a different amount", func() {
		tree, err := merkle.New(leaves)
		Expect(err).NotTo(HaveOccurred())
		proof, err := tree.Proof(1)
		Expect(err).NotTo(HaveOccurred())

		forged, err := merkle.LeafHash(merkle.Leaf{Address: leaves[1].Address, Amount: big.NewInt(201)})
		Expect(err).NotTo(HaveOccurred())
		Expect(merkle.Verify(proof, tree.Root(), forged)).To(BeFalse())
	})

	It("rejects empty trees and invalid amounts", func() {
		_, err := merkle.New(nil)
		Expect(err).To(MatchError(merkle.ErrEmptyTree))

		_, err = merkle.New([]merkle.Leaf{{Address: leaves[0].Address, Amount: big.NewInt(-1)}})
		Expect(err).To(MatchError(merkle.ErrInvalidAmount))

		tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err = merkle.LeafHash(merkle.Leaf{Address: leaves[0].Address, Amount: tooBig})
		Expect(err).To(MatchError(merkle.ErrInvalidAmount))
	})

	It("rejects out of range proof requests", func() {
		tree, err := merkle.New(leaves)
		Expect(err).NotTo(HaveOccurred())
		_, err = tree.Proof(3)
		Expect(err).To(MatchError(merkle.ErrLeafNotFound))
	})

	Describe("FromNodes", func() {
		It("rebuilds the same tree from stored nodes", func() {
			tree, err := merkle.New(leaves)
			Expect(err).NotTo(HaveOccurred())

			rebuilt, err := merkle.FromNodes(tree.Nodes())
			Expect(err).NotTo(HaveOccurred())
			Expect(rebuilt.Root()).To(Equal(tree.Root()))
			Expect(rebuilt.Leaves()).To(Equal(tree.Leaves()))
		})

		It("detects a tampered node", func() {
			tree, err := merkle.New(leaves)
			Expect(err).NotTo(HaveOccurred())
			nodes := tree.Nodes()
			nodes[len(nodes)-1].Hash = common.HexToHash("0x01")

			_, err = merkle.FromNodes(nodes)
			Expect(err).To(MatchError(merkle.ErrInvalidNodes))
		})

		It("detects missing nodes", func() {
			tree, err := merkle.New(leaves)
			Expect(err).NotTo(HaveOccurred())
			nodes := tree.Nodes()

			_, err = merkle.FromNodes(nodes[:len(nodes)-1])
			Expect(err).To(MatchError(merkle.ErrInvalidNodes))
		})
	})
})
