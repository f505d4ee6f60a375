package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"arenaledger/internal/db"
	"arenaledger/internal/ledger"
	"arenaledger/internal/ledger/fake"
	"arenaledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Ledger", func() {
	var (
		fakeRepo  *fake.Repository
		fakeCache *fake.BalanceCache
		ctx       context.Context
		fakeErr   error

		l *ledger.Ledger
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeCache = new(fake.BalanceCache)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		l = ledger.NewLedger(zap.NewNop().Sugar(), fakeRepo, fakeCache)
	})

	Describe("UpdateBalance", func() {
		var (
			balance ledger.Balance
			err     error
			delta   *big.Int
		)

		BeforeEach(func() {
			delta = big.NewInt(-25)
		})

		JustBeforeEach(func() {
			balance, err = l.UpdateBalance(ctx, "agent-1", "comp-1", "0xusdc", delta, ledger.TokenMeta{Symbol: "USDC"})
		})

		When("the repository applies the delta", func() {
			BeforeEach(func() {
				fakeRepo.UpdateBalanceReturns(repository.Balance{
					AgentID:       "agent-1",
					CompetitionID: "comp-1",
					TokenAddress:  "0xusdc",
					Amount:        db.NumericFromInt64(75),
				}, nil)
			})

			It("returns the new balance and invalidates the cache entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.Amount.Int64()).To(Equal(int64(75)))

				_, d := fakeRepo.UpdateBalanceArgsForCall(0)
				Expect(d.Delta.Int64()).To(Equal(int64(-25)))
				Expect(d.Symbol).To(Equal("USDC"))

				Expect(fakeCache.InvalidateCallCount()).To(Equal(1))
				_, competitionID, agentID := fakeCache.InvalidateArgsForCall(0)
				Expect(competitionID).To(Equal("comp-1"))
				Expect(agentID).To(Equal("agent-1"))
			})
		})

		When("the balance would go negative", func() {
			BeforeEach(func() {
				fakeRepo.UpdateBalanceReturns(repository.Balance{}, fmt.Errorf("update balance: %w", repository.ErrInsufficientBalance))
			})

			It("returns ErrInsufficientBalance and leaves the cache alone", func() {
				Expect(err).To(MatchError(ledger.ErrInsufficientBalance))
				Expect(fakeCache.InvalidateCallCount()).To(Equal(0))
			})
		})

		When("the balance does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateBalanceReturns(repository.Balance{}, repository.ErrBalanceNotFound)
			})

			It("returns ErrBalanceNotFound", func() {
				Expect(err).To(MatchError(ledger.ErrBalanceNotFound))
			})
		})

		When("no delta is given", func() {
			BeforeEach(func() {
				delta = nil
			})

			It("rejects the call without touching the repository", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidBalance))
				Expect(fakeRepo.UpdateBalanceCallCount()).To(Equal(0))
			})
		})

		When("the cache cannot be invalidated", func() {
			BeforeEach(func() {
				fakeCache.InvalidateReturns(fakeErr)
			})

			It("still reports the committed write", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("ResetBalances", func() {
		var (
			initial []ledger.InitialBalance
			err     error
		)

		BeforeEach(func() {
			initial = []ledger.InitialBalance{
				{TokenAddress: "0xusdc", Amount: big.NewInt(5000), TokenMeta: ledger.TokenMeta{SpecificChain: "eth", Symbol: "USDC"}},
				{TokenAddress: "So111", Amount: big.NewInt(0), TokenMeta: ledger.TokenMeta{SpecificChain: "svm", Symbol: "SOL"}},
			}
		})

		JustBeforeEach(func() {
			err = l.ResetBalances(ctx, "agent-1", "comp-1", initial)
		})

		It("passes the initial set to the repository and invalidates the cache", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.ResetBalancesCallCount()).To(Equal(1))
			_, agentID, competitionID, records := fakeRepo.ResetBalancesArgsForCall(0)
			Expect(agentID).To(Equal("agent-1"))
			Expect(competitionID).To(Equal("comp-1"))
			Expect(records).To(HaveLen(2))
			Expect(records[0].Amount.String()).To(Equal("5000"))
			Expect(records[1].Symbol).To(Equal("SOL"))
			Expect(fakeCache.InvalidateCallCount()).To(Equal(1))
		})

		When("an initial amount is negative", func() {
			BeforeEach(func() {
				initial[1].Amount = big.NewInt(-1)
			})

			It("rejects the whole set", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidBalance))
				Expect(fakeRepo.ResetBalancesCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ResetBalancesReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeCache.InvalidateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("SettleTrade", func() {
		var (
			req   ledger.TradeRequest
			trade ledger.Trade
			err   error
		)

		BeforeEach(func() {
			req = ledger.TradeRequest{
				AgentID:       "agent-1",
				CompetitionID: "comp-1",
				FromToken:     "0xusdc",
				ToToken:       "So111",
				FromAmount:    big.NewInt(400),
				ToAmount:      big.NewInt(2),
			}
			fakeRepo.SettleTradeCalls(func(_ context.Context, t repository.Trade) (repository.Trade, error) {
				return t, nil
			})
		})

		JustBeforeEach(func() {
			trade, err = l.SettleTrade(ctx, req)
		})

		It("records a successful trade with a derived price", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(trade.ID).NotTo(BeEmpty())
			Expect(trade.Success).To(BeTrue())
			Expect(trade.Price.Equal(decimal.RequireFromString("0.005"))).To(BeTrue())
			Expect(trade.Timestamp.IsZero()).To(BeFalse())

			_, record := fakeRepo.SettleTradeArgsForCall(0)
			Expect(record.FromAmount.String()).To(Equal("400"))
			Expect(record.ToAmount.String()).To(Equal("2"))
			Expect(fakeCache.InvalidateCallCount()).To(Equal(1))
		})

		When("a price is supplied", func() {
			BeforeEach(func() {
				req.Price = decimal.RequireFromString("0.0049")
			})

			It("keeps it", func() {
				Expect(trade.Price.String()).To(Equal("0.0049"))
			})
		})

		When("the amount is not positive", func() {
			BeforeEach(func() {
				req.FromAmount = big.NewInt(0)
			})

			It("rejects the request before any write", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidTrade))
				Expect(fakeRepo.SettleTradeCallCount()).To(Equal(0))
			})
		})

		When("the source balance is insufficient", func() {
			BeforeEach(func() {
				fakeRepo.SettleTradeReturns(repository.Trade{}, fmt.Errorf("settle trade: debit 0xusdc: %w", repository.ErrInsufficientBalance))
			})

			It("returns ErrInsufficientBalance", func() {
				Expect(err).To(MatchError(ledger.ErrInsufficientBalance))
				Expect(fakeCache.InvalidateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetBalances", func() {
		When("the cache has the entry", func() {
			BeforeEach(func() {
				fakeCache.GetReturns([]ledger.Balance{{TokenAddress: "0xusdc", Amount: big.NewInt(9)}}, true, nil)
			})

			It("does not hit the repository", func() {
				balances, err := l.GetBalances(ctx, "agent-1", "comp-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(balances).To(HaveLen(1))
				Expect(fakeRepo.GetBalancesCallCount()).To(Equal(0))
			})
		})

		When("the cache misses", func() {
			BeforeEach(func() {
				fakeRepo.GetBalancesReturns([]repository.Balance{
					{AgentID: "agent-1", CompetitionID: "comp-1", TokenAddress: "0xusdc", Amount: db.NumericFromInt64(9)},
				}, nil)
				fakeCache.VersionReturns(3, nil)
				fakeCache.SetReturns(true, nil)
			})

			It("loads from the repository and fills the cache", func() {
				balances, err := l.GetBalances(ctx, "agent-1", "comp-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(balances).To(HaveLen(1))
				Expect(balances[0].Amount.Int64()).To(Equal(int64(9)))

				Expect(fakeCache.SetCallCount()).To(Equal(1))
				_, competitionID, agentID, version, cached := fakeCache.SetArgsForCall(0)
				Expect(competitionID).To(Equal("comp-1"))
				Expect(agentID).To(Equal("agent-1"))
				Expect(version).To(Equal(uint64(3)))
				Expect(cached).To(Equal(balances))
			})

			It("reads the cache version before the repository", func() {
				fakeRepo.GetBalancesStub = func(context.Context, string, string) ([]repository.Balance, error) {
					Expect(fakeCache.VersionCallCount()).To(Equal(1))
					return nil, nil
				}
				_, err := l.GetBalances(ctx, "agent-1", "comp-1")
				Expect(err).NotTo(HaveOccurred())
			})

			It("returns the loaded balances when the fill is refused", func() {
				fakeCache.SetReturns(false, nil)
				balances, err := l.GetBalances(ctx, "agent-1", "comp-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(balances[0].Amount.Int64()).To(Equal(int64(9)))
			})

			It("does not fill the cache without a version", func() {
				fakeCache.VersionReturns(0, fakeErr)
				balances, err := l.GetBalances(ctx, "agent-1", "comp-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(balances).To(HaveLen(1))
				Expect(fakeCache.SetCallCount()).To(BeZero())
			})

			It("reports a missing token as ErrBalanceNotFound", func() {
				_, err := l.GetBalance(ctx, "agent-1", "comp-1", "0xweth")
				Expect(err).To(MatchError(ledger.ErrBalanceNotFound))
			})
		})

		When("the cache is unreachable", func() {
			BeforeEach(func() {
				fakeCache.GetReturns(nil, false, fakeErr)
				fakeRepo.GetBalancesReturns([]repository.Balance{}, nil)
			})

			It("falls back to the repository", func() {
				_, err := l.GetBalances(ctx, "agent-1", "comp-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.GetBalancesCallCount()).To(Equal(1))
			})
		})
	})

	Describe("EndCompetition", func() {
		It("drops the competition from the cache", func() {
			Expect(l.EndCompetition(ctx, "comp-1")).To(Succeed())
			Expect(fakeCache.InvalidateCompetitionCallCount()).To(Equal(1))
			_, competitionID := fakeCache.InvalidateCompetitionArgsForCall(0)
			Expect(competitionID).To(Equal("comp-1"))
		})

		It("returns cache errors", func() {
			fakeCache.InvalidateCompetitionReturns(fakeErr)
			Expect(l.EndCompetition(ctx, "comp-1")).To(MatchError(fakeErr))
		})
	})
})
