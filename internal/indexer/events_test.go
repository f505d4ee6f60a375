package indexer_test

import (
	"encoding/json"
	"time"

	"arenaledger/internal/indexer"
	"arenaledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder *indexer.Decoder
		staker  common.Address
	)

	BeforeEach(func() {
		var err error
		decoder, err = indexer.NewDecoder()
		Expect(err).NotTo(HaveOccurred())
		staker = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	})

	It("filters on the four staking events", func() {
		topics := decoder.Topics()
		Expect(topics).To(HaveLen(1))
		Expect(topics[0]).To(ConsistOf(stakeSig, unstakeSig, relockSig, withdrawSig))
	})

	It("decodes a stake event", func() {
		event, err := decoder.Decode(stakingLog(stakeSig, staker, 42, 100, 3, 1000, 1_700_000_000, 1_700_604_800))
		Expect(err).NotTo(HaveOccurred())
		Expect(event.Kind).To(Equal(repository.StakeKindStake))
		Expect(event.Staker).To(Equal(staker))
		Expect(event.TokenID.Int64()).To(Equal(int64(42)))
		Expect(event.Amount.Int64()).To(Equal(int64(1000)))
		Expect(event.StartTime).To(Equal(time.Unix(1_700_000_000, 0).UTC()))
		Expect(event.LockupEndTime).To(Equal(time.Unix(1_700_604_800, 0).UTC()))
		Expect(event.BlockNumber).To(Equal(uint64(100)))
		Expect(event.LogIndex).To(Equal(uint(3)))
	})

	It("decodes an unstake event", func() {
		event, err := decoder.Decode(stakingLog(unstakeSig, staker, 42, 101, 0, 400, 1_701_000_000))
		Expect(err).NotTo(HaveOccurred())
		Expect(event.Kind).To(Equal(repository.StakeKindUnstake))
		Expect(event.Amount.Int64()).To(Equal(int64(400)))
		Expect(event.WithdrawAllowedTime).To(Equal(time.Unix(1_701_000_000, 0).UTC()))
	})

	It("decodes relock and withdraw events", func() {
		relock, err := decoder.Decode(stakingLog(relockSig, staker, 42, 102, 0, 600))
		Expect(err).NotTo(HaveOccurred())
		Expect(relock.Kind).To(Equal(repository.StakeKindRelock))
		Expect(relock.Amount.Int64()).To(Equal(int64(600)))

		withdraw, err := decoder.Decode(stakingLog(withdrawSig, staker, 42, 103, 0, 600))
		Expect(err).NotTo(HaveOccurred())
		Expect(withdraw.Kind).To(Equal(repository.StakeKindWithdraw))
	})

	It("rejects logs of other events", func() {
		other := crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
		_, err := decoder.Decode(stakingLog(other, staker, 1, 1, 0, 1))
		Expect(err).To(MatchError(indexer.ErrUnknownEvent))
	})

	It("rejects a stake whose lockup ends before it starts", func() {
		_, err := decoder.Decode(stakingLog(stakeSig, staker, 42, 100, 0, 1000, 1_700_000_000, 1_600_000_000))
		Expect(err).To(MatchError(indexer.ErrMalformedEvent))
	})

	It("rejects truncated data", func() {
		l := stakingLog(stakeSig, staker, 42, 100, 0, 1000)
		_, err := decoder.Decode(l)
		Expect(err).To(MatchError(indexer.ErrMalformedEvent))
	})

	It("rejects a log without indexed topics", func() {
		l := stakingLog(withdrawSig, staker, 42, 100, 0, 1)
		l.Topics = l.Topics[:1]
		_, err := decoder.Decode(l)
		Expect(err).To(MatchError(indexer.ErrMalformedEvent))
	})

	It("serialises the decoded fields as the payload", func() {
		event, err := decoder.Decode(stakingLog(stakeSig, staker, 42, 100, 3, 1000, 1_700_000_000, 1_700_604_800))
		Expect(err).NotTo(HaveOccurred())

		var payload map[string]string
		Expect(json.Unmarshal([]byte(event.Payload()), &payload)).To(Succeed())
		Expect(payload).To(HaveKeyWithValue("token_id", "42"))
		Expect(payload).To(HaveKeyWithValue("amount", "1000"))
		Expect(payload).To(HaveKeyWithValue("staker", staker.Hex()))
		Expect(payload).To(HaveKey("lockup_end_time"))
	})
})
