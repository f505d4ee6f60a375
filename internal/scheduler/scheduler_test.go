package scheduler_test

import (
	"context"
	"errors"
	"time"

	"arenaledger/internal/repository"
	"arenaledger/internal/rewards"
	"arenaledger/internal/scheduler"
	"arenaledger/internal/scheduler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Scheduler", func() {
	var (
		sched            *scheduler.Scheduler
		fakeBoosts       *fake.BoostSweeper
		fakeAllocator    *fake.RewardsAllocator
		fakeCompetitions *fake.Competitions
		fakeBalances     *fake.BalanceCloser
		cfg              scheduler.Config
		ctx              context.Context
		testErr          error
	)

	BeforeEach(func() {
		fakeBoosts = new(fake.BoostSweeper)
		fakeAllocator = new(fake.RewardsAllocator)
		fakeCompetitions = new(fake.Competitions)
		fakeBalances = new(fake.BalanceCloser)
		cfg = scheduler.Config{}
		ctx = context.Background()
		testErr = errors.New("test error")
	})

	JustBeforeEach(func() {
		sched = scheduler.NewScheduler(zap.NewNop().Sugar(), fakeBoosts, fakeAllocator, fakeCompetitions, fakeBalances, cfg)
	})

	Describe("RunBoostSweep", func() {
		It("sweeps boosts", func() {
			fakeBoosts.SweepReturns(3, nil)

			Expect(sched.RunBoostSweep(ctx)).To(Succeed())
			Expect(fakeBoosts.SweepCallCount()).To(Equal(1))
		})

		It("returns sweep errors", func() {
			fakeBoosts.SweepReturns(0, testErr)

			Expect(sched.RunBoostSweep(ctx)).To(MatchError(testErr))
		})
	})

	Describe("RunRewards", func() {
		BeforeEach(func() {
			fakeCompetitions.EndedWithoutRewardsReturns([]repository.Competition{{ID: "comp-1"}, {ID: "comp-2"}, {ID: "comp-3"}}, nil)
			fakeAllocator.AllocateStub = func(_ context.Context, competitionID string) (rewards.Commitment, error) {
				switch competitionID {
				case "comp-1":
					return rewards.Commitment{}, testErr
				case "comp-2":
					return rewards.Commitment{CompetitionID: competitionID, Outcome: rewards.OutcomeApplied}, nil
				default:
					return rewards.Commitment{CompetitionID: competitionID, Outcome: rewards.OutcomeNoop}, nil
				}
			}
		})

		It("keeps going after a failed competition and clears balances of settled ones", func() {
			err := sched.RunRewards(ctx)
			Expect(err).To(MatchError(testErr))
			Expect(err.Error()).To(ContainSubstring("comp-1"))

			Expect(fakeAllocator.AllocateCallCount()).To(Equal(3))
			Expect(fakeBalances.EndCompetitionCallCount()).To(Equal(2))
			_, first := fakeBalances.EndCompetitionArgsForCall(0)
			_, second := fakeBalances.EndCompetitionArgsForCall(1)
			Expect([]string{first, second}).To(Equal([]string{"comp-2", "comp-3"}))
		})

		It("does not fail when clearing balances fails", func() {
			fakeCompetitions.EndedWithoutRewardsReturns([]repository.Competition{{ID: "comp-2"}}, nil)
			fakeBalances.EndCompetitionReturns(testErr)

			Expect(sched.RunRewards(ctx)).To(Succeed())
		})

		It("returns listing errors", func() {
			fakeCompetitions.EndedWithoutRewardsReturns(nil, testErr)

			Expect(sched.RunRewards(ctx)).To(MatchError(testErr))
			Expect(fakeAllocator.AllocateCallCount()).To(Equal(0))
		})
	})

	Describe("Start", func() {
		Context("with an invalid expression", func() {
			BeforeEach(func() {
				cfg.BoostSweep = "not a cron"
			})

			It("fails", func() {
				Expect(sched.Start()).To(MatchError(ContainSubstring("boost_sweep")))
			})
		})

		Context("with jobs scheduled every second", func() {
			BeforeEach(func() {
				cfg.BoostSweep = "* * * * * *"
				fakeBoosts.SweepReturns(0, testErr)
			})

			It("runs them until stopped", func() {
				Expect(sched.Start()).To(Succeed())
				Eventually(fakeBoosts.SweepCallCount).WithTimeout(3 * time.Second).Should(BeNumerically(">=", 1))
				Expect(fakeCompetitions.EndedWithoutRewardsCallCount()).To(Equal(0))

				sched.Stop()
				calls := fakeBoosts.SweepCallCount()
				Consistently(fakeBoosts.SweepCallCount).WithTimeout(1500 * time.Millisecond).Should(Equal(calls))
			})
		})
	})
})
