package repository_test

import (
	"context"
	"math/big"
	"sync"
	"time"

	"arenaledger/internal/db"
	"arenaledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StakeRepository", func() {
	var (
		repo     *repository.StakeRepository
		ctx      context.Context
		wallet   []byte
		stakedAt time.Time
	)

	BeforeEach(func() {
		repo = repository.NewStakeRepository(newTestStorage())
		ctx = context.Background()
		wallet = common.HexToAddress("0x00000000000000000000000000000000000000a1").Bytes()
		stakedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	})

	change := func(kind string, stakeID, delta int64, txByte byte, logIndex uint, block uint64) repository.StakeChange {
		return repository.StakeChange{
			ID:          uuid.NewString(),
			StakeID:     db.NumericFromInt64(stakeID),
			Wallet:      wallet,
			DeltaAmount: db.NumericFromInt64(delta),
			Kind:        kind,
			TxHash:      common.BytesToHash([]byte{txByte}).Bytes(),
			LogIndex:    logIndex,
			BlockNumber: block,
			BlockHash:   common.BytesToHash([]byte{byte(block)}).Bytes(),
		}
	}

	open := func() repository.StakeUpdate {
		return repository.StakeUpdate{
			Open: &repository.Stake{
				StakedAt:        stakedAt,
				CanUnstakeAfter: stakedAt.Add(30 * 24 * time.Hour),
			},
		}
	}

	stakeAmount := func(id int64) string {
		s, err := repo.GetStake(ctx, big.NewInt(id))
		Expect(err).NotTo(HaveOccurred())
		return s.Amount.String()
	}

	Describe("RecordEvent", func() {
		It("stores an event once per transaction hash and log index", func() {
			event := repository.IndexingEvent{
				ID:              uuid.NewString(),
				TransactionHash: common.BytesToHash([]byte{1}).Bytes(),
				LogIndex:        3,
				Type:            repository.StakeKindStake,
				BlockNumber:     10,
				BlockHash:       common.BytesToHash([]byte{10}).Bytes(),
				BlockTimestamp:  stakedAt,
				Payload:         `{"amount":"100"}`,
			}
			inserted, err := repo.RecordEvent(ctx, event)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeTrue())

			event.ID = uuid.NewString()
			inserted, err = repo.RecordEvent(ctx, event)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeFalse())
		})
	})

	Describe("ApplyStakeChange", func() {
		It("opens a stake and ignores a replay of the same log", func() {
			applied, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(BeTrue())

			applied, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(BeFalse())

			Expect(stakeAmount(1)).To(Equal("100"))
			s, err := repo.GetStake(ctx, big.NewInt(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Wallet).To(Equal(wallet))
			Expect(s.StakedAt.Equal(stakedAt)).To(BeTrue())
			Expect(s.UnstakedAt).To(BeNil())
		})

		It("applies concurrent deliveries of the same log once", func() {
			var wg sync.WaitGroup
			results := make([]bool, 4)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					applied, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
					Expect(err).NotTo(HaveOccurred())
					results[i] = applied
				}(i)
			}
			wg.Wait()

			Expect(results).To(ContainElement(BeTrue()))
			applied := 0
			for _, r := range results {
				if r {
					applied++
				}
			}
			Expect(applied).To(Equal(1))
			Expect(stakeAmount(1)).To(Equal("100"))

			changes, err := repo.GetStakeChanges(ctx, big.NewInt(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(HaveLen(1))
		})

		It("tops up an existing stake on another stake event", func() {
			_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 25, 2, 0, 11), open())
			Expect(err).NotTo(HaveOccurred())
			Expect(stakeAmount(1)).To(Equal("125"))
		})

		It("reduces the amount and sets unstake columns on unstake", func() {
			_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())

			unstakedAt := stakedAt.Add(40 * 24 * time.Hour)
			withdrawAfter := unstakedAt.Add(7 * 24 * time.Hour)
			applied, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindUnstake, 1, -60, 2, 1, 12), repository.StakeUpdate{
				Columns: map[string]any{
					"unstaked_at":        unstakedAt,
					"can_withdraw_after": withdrawAfter,
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(BeTrue())

			s, err := repo.GetStake(ctx, big.NewInt(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Amount.String()).To(Equal("40"))
			Expect(s.UnstakedAt).NotTo(BeNil())
			Expect(s.UnstakedAt.Equal(unstakedAt)).To(BeTrue())
			Expect(s.CanWithdrawAfter.Equal(withdrawAfter)).To(BeTrue())
		})

		It("records the difference as the delta of a relock", func() {
			_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())

			relockedAt := stakedAt.Add(time.Hour)
			_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindRelock, 1, 0, 2, 0, 11), repository.StakeUpdate{
				ResetAmount: big.NewInt(70),
				Columns:     map[string]any{"relocked_at": relockedAt},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(stakeAmount(1)).To(Equal("70"))

			changes, err := repo.GetStakeChanges(ctx, big.NewInt(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(HaveLen(2))
			Expect(changes[1].Kind).To(Equal(repository.StakeKindRelock))
			Expect(changes[1].DeltaAmount.String()).To(Equal("-30"))
		})

		It("stamps withdrawal without touching the amount", func() {
			_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())

			withdrawnAt := stakedAt.Add(50 * 24 * time.Hour)
			_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindWithdraw, 1, 0, 3, 0, 20), repository.StakeUpdate{
				Columns: map[string]any{"withdrawn_at": withdrawnAt},
			})
			Expect(err).NotTo(HaveOccurred())

			s, err := repo.GetStake(ctx, big.NewInt(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Amount.String()).To(Equal("100"))
			Expect(s.WithdrawnAt.Equal(withdrawnAt)).To(BeTrue())
		})

		When("the stake does not exist", func() {
			It("fails and rolls back the journal entry", func() {
				unstake := change(repository.StakeKindUnstake, 9, -10, 4, 0, 30)
				_, err := repo.ApplyStakeChange(ctx, unstake, repository.StakeUpdate{})
				Expect(err).To(MatchError(repository.ErrStakeNotFound))

				changes, err := repo.GetStakeChanges(ctx, big.NewInt(9))
				Expect(err).NotTo(HaveOccurred())
				Expect(changes).To(BeEmpty())

				_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 9, 50, 5, 0, 29), open())
				Expect(err).NotTo(HaveOccurred())

				unstake.ID = uuid.NewString()
				applied, err := repo.ApplyStakeChange(ctx, unstake, repository.StakeUpdate{})
				Expect(err).NotTo(HaveOccurred())
				Expect(applied).To(BeTrue())
				Expect(stakeAmount(9)).To(Equal("40"))
			})
		})

		When("the change would make the amount negative", func() {
			It("fails with ErrNegativeStake", func() {
				_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
				Expect(err).NotTo(HaveOccurred())

				_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindUnstake, 1, -101, 2, 0, 11), repository.StakeUpdate{})
				Expect(err).To(MatchError(repository.ErrNegativeStake))
				Expect(stakeAmount(1)).To(Equal("100"))
			})
		})
	})

	Describe("LastAppliedBlock", func() {
		It("reports nothing on an empty journal", func() {
			_, ok, err := repo.LastAppliedBlock(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("returns the highest journaled block", func() {
			_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 2, 100, 2, 0, 42), open())
			Expect(err).NotTo(HaveOccurred())

			block, ok, err := repo.LastAppliedBlock(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(block).To(Equal(uint64(42)))
		})
	})

	Describe("ActiveStakes", func() {
		It("skips unstaked stakes", func() {
			_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 2, 100, 2, 0, 11), open())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.ApplyStakeChange(ctx, change(repository.StakeKindUnstake, 2, -100, 3, 0, 12), repository.StakeUpdate{
				Columns: map[string]any{"unstaked_at": stakedAt.Add(time.Hour)},
			})
			Expect(err).NotTo(HaveOccurred())

			stakes, err := repo.ActiveStakes(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stakes).To(HaveLen(1))
			Expect(stakes[0].ID.String()).To(Equal("1"))
		})
	})

	Describe("StakesByWallet", func() {
		It("returns only the stakes of the wallet", func() {
			_, err := repo.ApplyStakeChange(ctx, change(repository.StakeKindStake, 1, 100, 1, 0, 10), open())
			Expect(err).NotTo(HaveOccurred())

			other := change(repository.StakeKindStake, 2, 100, 2, 0, 11)
			other.Wallet = common.HexToAddress("0x00000000000000000000000000000000000000b2").Bytes()
			_, err = repo.ApplyStakeChange(ctx, other, open())
			Expect(err).NotTo(HaveOccurred())

			stakes, err := repo.StakesByWallet(ctx, wallet)
			Expect(err).NotTo(HaveOccurred())
			Expect(stakes).To(HaveLen(1))
			Expect(stakes[0].ID.String()).To(Equal("1"))
		})
	})
})
