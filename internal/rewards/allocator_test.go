package rewards_test

import (
	"math/big"
	"time"

	"arenaledger/internal/rewards"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Allocator", func() {
	var (
		start   time.Time
		window  rewards.Window
		half    decimal.Decimal
		walletA common.Address
		walletB common.Address
		walletC common.Address
		board   []rewards.LeaderboardEntry
	)

	BeforeEach(func() {
		start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		window = rewards.Window{Start: start, End: start.Add(7 * 24 * time.Hour)}
		half = decimal.RequireFromString("0.5")
		walletA = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		walletB = common.HexToAddress("0x00000000000000000000000000000000000000b2")
		walletC = common.HexToAddress("0x00000000000000000000000000000000000000c3")
		board = []rewards.LeaderboardEntry{
			{CompetitorID: "agent-a", Rank: 1, Wallet: walletA, OwnerID: "owner-a"},
			{CompetitorID: "agent-b", Rank: 2, Wallet: walletB, OwnerID: "owner-b"},
		}
	})

	Describe("SplitPrizePool", func() {
		It("weights ranks geometrically", func() {
			entries := []rewards.LeaderboardEntry{
				{CompetitorID: "a", Rank: 1},
				{CompetitorID: "b", Rank: 2},
				{CompetitorID: "c", Rank: 3},
			}
			shares := rewards.SplitPrizePool(big.NewInt(700), entries, half)
			Expect(amounts(shares)).To(Equal(map[string]string{"a": "400", "b": "200", "c": "100"}))
		})

		It("floors shares and never pays more than the pool", func() {
			shares := rewards.SplitPrizePool(big.NewInt(1_000_000), board, half)
			Expect(amounts(shares)).To(Equal(map[string]string{"agent-a": "666666", "agent-b": "333333"}))

			total := new(big.Int)
			for _, s := range shares {
				total.Add(total, s)
			}
			Expect(total.Cmp(big.NewInt(1_000_000))).To(BeNumerically("<=", 0))
		})
	})

	Describe("DailyDecay", func() {
		It("keeps full weight without a rate", func() {
			Expect(rewards.DailyDecay(start.Add(3*24*time.Hour), window, nil).String()).To(Equal("1"))
		})

		It("decays per whole day since the window start", func() {
			Expect(rewards.DailyDecay(start.Add(23*time.Hour), window, &half).String()).To(Equal("1"))
			Expect(rewards.DailyDecay(start.Add(49*time.Hour), window, &half).String()).To(Equal("0.25"))
		})

		It("includes both window bounds", func() {
			Expect(rewards.DailyDecay(start, window, nil).IsZero()).To(BeFalse())
			Expect(rewards.DailyDecay(window.End, window, nil).IsZero()).To(BeFalse())
		})

		It("gives zero weight outside the window", func() {
			Expect(rewards.DailyDecay(start.Add(-time.Second), window, nil).IsZero()).To(BeTrue())
			Expect(rewards.DailyDecay(window.End.Add(time.Second), window, &half).IsZero()).To(BeTrue())
		})
	})

	Describe("CalculateRewardsForUsers", func() {
		var in rewards.UsersInput

		BeforeEach(func() {
			in = rewards.UsersInput{
				PrizePool:   big.NewInt(1_000_000),
				Leaderboard: board,
				Allocations: []rewards.BoostAllocation{
					{UserID: "user-1", Wallet: walletC, CompetitorID: "agent-a", Amount: big.NewInt(100), Timestamp: start.Add(time.Hour)},
				},
				Window:             window,
				PrizePoolDecayRate: half,
			}
		})

		It("pays a lone booster its competitor's whole share and leaves unboosted shares unpaid", func() {
			var snap rewards.Snapshot
			in.Hook = func(s rewards.Snapshot) { snap = s }

			result, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(payouts(result)).To(Equal(map[string]string{walletC.Hex(): "666666"}))
			Expect(result[0].OwnerID).To(Equal("user-1"))
			Expect(result[0].CompetitorID).To(BeEmpty())

			Expect(amounts(snap.Shares)).To(Equal(map[string]string{"agent-a": "666666", "agent-b": "333333"}))
			Expect(amounts(snap.Payouts)).To(Equal(map[string]string{"user-1": "666666"}))
			Expect(snap.CompetitorTotals["agent-a"].RatString()).To(Equal("100"))
			Expect(snap.EffectiveBoosts["user-1"]["agent-a"].RatString()).To(Equal("100"))
		})

		It("splits a share pro rata between boosters", func() {
			in.Allocations = append(in.Allocations, rewards.BoostAllocation{
				UserID: "user-2", Wallet: walletB, CompetitorID: "agent-a", Amount: big.NewInt(200), Timestamp: start.Add(2 * time.Hour),
			})

			result, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(payouts(result)).To(Equal(map[string]string{
				walletC.Hex(): "222222",
				walletB.Hex(): "444444",
			}))
		})

		It("sums a user's rewards across competitors", func() {
			in.Allocations = append(in.Allocations, rewards.BoostAllocation{
				UserID: "user-1", Wallet: walletC, CompetitorID: "agent-b", Amount: big.NewInt(5), Timestamp: start.Add(time.Hour),
			})

			result, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(payouts(result)).To(Equal(map[string]string{walletC.Hex(): "999999"}))
		})

		It("weighs later boosts down with the boost time decay", func() {
			in.BoostTimeDecayRate = &half
			in.Allocations = []rewards.BoostAllocation{
				{UserID: "user-1", Wallet: walletC, CompetitorID: "agent-a", Amount: big.NewInt(100), Timestamp: start},
				{UserID: "user-2", Wallet: walletB, CompetitorID: "agent-a", Amount: big.NewInt(100), Timestamp: start.Add(25 * time.Hour)},
			}

			result, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(payouts(result)).To(Equal(map[string]string{
				walletC.Hex(): "444444",
				walletB.Hex(): "222222",
			}))
		})

		It("ignores boosts outside the window", func() {
			in.Allocations[0].Timestamp = start.Add(-time.Minute)

			result, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeEmpty())
		})

		It("uses an injected decay function", func() {
			in.Decay = func(time.Time, rewards.Window, *decimal.Decimal) decimal.Decimal { return decimal.Zero }

			result, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeEmpty())
		})

		It("returns the same rewards regardless of allocation order", func() {
			in.Allocations = append(in.Allocations,
				rewards.BoostAllocation{UserID: "user-2", Wallet: walletB, CompetitorID: "agent-b", Amount: big.NewInt(7), Timestamp: start.Add(time.Hour)},
				rewards.BoostAllocation{UserID: "user-3", Wallet: walletA, CompetitorID: "agent-a", Amount: big.NewInt(13), Timestamp: start.Add(time.Hour)},
			)
			first, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())

			in.Allocations[0], in.Allocations[2] = in.Allocations[2], in.Allocations[0]
			second, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(HaveLen(len(first)))
			for i := range first {
				Expect(second[i].Address).To(Equal(first[i].Address))
				Expect(second[i].Amount.String()).To(Equal(first[i].Amount.String()))
			}
			Expect(first[0].Address).To(Equal(walletA))
		})

		DescribeTable("returns no rewards for empty inputs",
			func(mutate func(*rewards.UsersInput)) {
				mutate(&in)
				result, err := rewards.CalculateRewardsForUsers(in)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(BeEmpty())
			},
			Entry("empty leaderboard", func(in *rewards.UsersInput) { in.Leaderboard = nil }),
			Entry("zero prize pool", func(in *rewards.UsersInput) { in.PrizePool = big.NewInt(0) }),
			Entry("no allocations", func(in *rewards.UsersInput) { in.Allocations = nil }),
		)

		DescribeTable("rejects invalid input",
			func(mutate func(*rewards.UsersInput), expected error) {
				mutate(&in)
				_, err := rewards.CalculateRewardsForUsers(in)
				Expect(err).To(MatchError(expected))
			},
			Entry("empty window", func(in *rewards.UsersInput) { in.Window.End = in.Window.Start }, rewards.ErrInvalidWindow),
			Entry("prize pool decay below range", func(in *rewards.UsersInput) {
				in.PrizePoolDecayRate = decimal.RequireFromString("0.05")
			}, rewards.ErrInvalidDecayRate),
			Entry("prize pool decay above range", func(in *rewards.UsersInput) {
				in.PrizePoolDecayRate = decimal.RequireFromString("0.95")
			}, rewards.ErrInvalidDecayRate),
			Entry("boost decay out of range", func(in *rewards.UsersInput) {
				rate := decimal.NewFromInt(1)
				in.BoostTimeDecayRate = &rate
			}, rewards.ErrInvalidDecayRate),
			Entry("rank below one", func(in *rewards.UsersInput) {
				in.Leaderboard = []rewards.LeaderboardEntry{{CompetitorID: "agent-a", Rank: 0}}
			}, rewards.ErrInvalidLeaderboard),
			Entry("competitor ranked twice", func(in *rewards.UsersInput) {
				in.Leaderboard = append(in.Leaderboard, rewards.LeaderboardEntry{CompetitorID: "agent-a", Rank: 3})
			}, rewards.ErrInvalidLeaderboard),
			Entry("negative boost", func(in *rewards.UsersInput) {
				in.Allocations[0].Amount = big.NewInt(-1)
			}, rewards.ErrInvalidAllocation),
		)

		It("accepts decay rates on the range bounds", func() {
			low := decimal.RequireFromString("0.1")
			in.PrizePoolDecayRate = decimal.RequireFromString("0.9")
			in.BoostTimeDecayRate = &low

			_, err := rewards.CalculateRewardsForUsers(in)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("CalculateRewardsForCompetitors", func() {
		It("pays each competitor wallet its share sorted by address", func() {
			entries := []rewards.LeaderboardEntry{
				{CompetitorID: "agent-c", Rank: 1, Wallet: walletC, OwnerID: "owner-c"},
				{CompetitorID: "agent-a", Rank: 2, Wallet: walletA, OwnerID: "owner-a"},
				{CompetitorID: "agent-b", Rank: 3, Wallet: walletB, OwnerID: "owner-b"},
			}

			result, err := rewards.CalculateRewardsForCompetitors(rewards.CompetitorsInput{
				PrizePool:          big.NewInt(700),
				Leaderboard:        entries,
				PrizePoolDecayRate: half,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(3))
			Expect(result[0].Address).To(Equal(walletA))
			Expect(result[0].Amount.String()).To(Equal("200"))
			Expect(result[0].CompetitorID).To(Equal("agent-a"))
			Expect(result[0].OwnerID).To(Equal("owner-a"))
			Expect(result[1].Amount.String()).To(Equal("100"))
			Expect(result[2].Amount.String()).To(Equal("400"))
		})

		It("skips competitors whose share floors to zero", func() {
			result, err := rewards.CalculateRewardsForCompetitors(rewards.CompetitorsInput{
				PrizePool:          big.NewInt(1),
				Leaderboard:        board,
				PrizePoolDecayRate: half,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeEmpty())
		})

		It("rejects an out of range decay rate", func() {
			_, err := rewards.CalculateRewardsForCompetitors(rewards.CompetitorsInput{
				PrizePool:          big.NewInt(700),
				Leaderboard:        board,
				PrizePoolDecayRate: decimal.Zero,
			})
			Expect(err).To(MatchError(rewards.ErrInvalidDecayRate))
		})
	})
})

var _ = Describe("BuildTree", func() {
	It("commits equal reward lists to the same root whatever their order", func() {
		a := common.HexToAddress("0x00000000000000000000000000000000000000a1")
		b := common.HexToAddress("0x00000000000000000000000000000000000000b2")
		list := []rewards.Reward{
			{Address: b, Amount: big.NewInt(200)},
			{Address: a, Amount: big.NewInt(60)},
			{Address: a, Amount: big.NewInt(40)},
		}
		reversed := []rewards.Reward{list[2], list[1], list[0]}

		first, err := rewards.BuildTree("comp-1", list)
		Expect(err).NotTo(HaveOccurred())
		second, err := rewards.BuildTree("comp-1", reversed)
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Root()).To(Equal(first.Root()))

		// a:100 and b:200 aggregate to two reward leaves plus the competition leaf
		Expect(first.Root().Hex()).To(Equal("0x0b85ae0f0305b87e7f9ecf956fb05254031e15a3b227b29f4be5706ddf3b2135"))
	})

	It("commits equal reward lists of different competitions to different roots", func() {
		list := []rewards.Reward{{Address: common.HexToAddress("0x00000000000000000000000000000000000000a1"), Amount: big.NewInt(100)}}

		first, err := rewards.BuildTree("comp-1", list)
		Expect(err).NotTo(HaveOccurred())
		second, err := rewards.BuildTree("comp-2", list)
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Root()).NotTo(Equal(first.Root()))
	})
})
