package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"math/rand"

	"arenaledger/internal/db/dbtest"
	"arenaledger/internal/ledger"
	"arenaledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ledger on a SQL store", func() {
	var (
		l      *ledger.Ledger
		ctx    context.Context
		tokens []string
	)

	BeforeEach(func() {
		storage, err := dbtest.Open(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(storage.Close)

		l = ledger.NewLedger(zap.NewNop().Sugar(), repository.NewBalanceRepository(storage), ledger.NewMemoryCache())
		ctx = context.Background()
		tokens = []string{"0xusdc", "0xweth", "So111"}

		Expect(l.ResetBalances(ctx, "agent-1", "comp-1", []ledger.InitialBalance{
			{TokenAddress: tokens[0], Amount: big.NewInt(10_000)},
			{TokenAddress: tokens[1], Amount: big.NewInt(50)},
			{TokenAddress: tokens[2], Amount: big.NewInt(300)},
		})).To(Succeed())
	})

	It("conserves every token across a sequence of trades", func() {
		expected := map[string]*big.Int{
			tokens[0]: big.NewInt(10_000),
			tokens[1]: big.NewInt(50),
			tokens[2]: big.NewInt(300),
		}

		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 60; i++ {
			from := tokens[rng.Intn(len(tokens))]
			to := tokens[rng.Intn(len(tokens))]
			fromAmount := big.NewInt(int64(rng.Intn(400) + 1))
			toAmount := big.NewInt(int64(rng.Intn(400) + 1))

			_, err := l.SettleTrade(ctx, ledger.TradeRequest{
				AgentID:       "agent-1",
				CompetitionID: "comp-1",
				FromToken:     from,
				ToToken:       to,
				FromAmount:    fromAmount,
				ToAmount:      toAmount,
			})
			if errors.Is(err, ledger.ErrInsufficientBalance) {
				continue
			}
			Expect(err).NotTo(HaveOccurred())
			expected[from].Sub(expected[from], fromAmount)
			expected[to].Add(expected[to], toAmount)

			balances, err := l.GetBalances(ctx, "agent-1", "comp-1")
			Expect(err).NotTo(HaveOccurred())
			for _, b := range balances {
				Expect(b.Amount.Sign()).To(BeNumerically(">=", 0))
				Expect(b.Amount.String()).To(Equal(expected[b.TokenAddress].String()), "token %s after trade %d", b.TokenAddress, i)
			}
		}
	})

	It("serves fresh balances after a write that follows a cached read", func() {
		before, err := l.GetBalance(ctx, "agent-1", "comp-1", tokens[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(before.Amount.Int64()).To(Equal(int64(10_000)))

		_, err = l.UpdateBalance(ctx, "agent-1", "comp-1", tokens[0], big.NewInt(-1_000), ledger.TokenMeta{})
		Expect(err).NotTo(HaveOccurred())

		after, err := l.GetBalance(ctx, "agent-1", "comp-1", tokens[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(after.Amount.Int64()).To(Equal(int64(9_000)))
	})

	It("does not cache a snapshot that a concurrent write made stale", func() {
		storage, err := dbtest.Open(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(storage.Close)

		repo := &interleavingRepository{BalanceRepository: repository.NewBalanceRepository(storage)}
		racy := ledger.NewLedger(zap.NewNop().Sugar(), repo, ledger.NewMemoryCache())
		Expect(racy.ResetBalances(ctx, "agent-1", "comp-1", []ledger.InitialBalance{
			{TokenAddress: tokens[0], Amount: big.NewInt(100)},
		})).To(Succeed())

		repo.afterRead = func() {
			_, err := racy.UpdateBalance(ctx, "agent-1", "comp-1", tokens[0], big.NewInt(-60), ledger.TokenMeta{})
			Expect(err).NotTo(HaveOccurred())
		}
		snapshot, err := racy.GetBalance(ctx, "agent-1", "comp-1", tokens[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.Amount.Int64()).To(Equal(int64(100)))

		fresh, err := racy.GetBalance(ctx, "agent-1", "comp-1", tokens[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(fresh.Amount.Int64()).To(Equal(int64(40)))
	})
})

// interleavingRepository runs afterRead once, right after a balance read and
// before the ledger fills its cache.
type interleavingRepository struct {
	*repository.BalanceRepository
	afterRead func()
}

func (r *interleavingRepository) GetBalances(ctx context.Context, agentID, competitionID string) ([]repository.Balance, error) {
	balances, err := r.BalanceRepository.GetBalances(ctx, agentID, competitionID)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return balances, err
}
