package ledger_test

import (
	"context"
	"math/big"
	"time"

	"arenaledger/internal/ledger"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

func describeBalanceCache(newCache func() ledger.BalanceCache) {
	var (
		cache ledger.BalanceCache
		ctx   context.Context
	)

	BeforeEach(func() {
		cache = newCache()
		ctx = context.Background()
	})

	balances := func(amount int64) []ledger.Balance {
		return []ledger.Balance{{AgentID: "agent-1", CompetitionID: "comp-1", TokenAddress: "0xusdc", Amount: big.NewInt(amount)}}
	}

	fill := func(competitionID, agentID string, amount int64) {
		version, err := cache.Version(ctx, competitionID, agentID)
		Expect(err).NotTo(HaveOccurred())
		stored, err := cache.Set(ctx, competitionID, agentID, version, balances(amount))
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(BeTrue())
	}

	It("misses on an empty cache", func() {
		_, found, err := cache.Get(ctx, "comp-1", "agent-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("returns what was stored", func() {
		fill("comp-1", "agent-1", 10)

		got, found, err := cache.Get(ctx, "comp-1", "agent-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Amount.Int64()).To(Equal(int64(10)))
	})

	It("invalidates a single agent", func() {
		fill("comp-1", "agent-1", 10)
		fill("comp-1", "agent-2", 20)

		Expect(cache.Invalidate(ctx, "comp-1", "agent-1")).To(Succeed())

		_, found, err := cache.Get(ctx, "comp-1", "agent-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
		_, found, err = cache.Get(ctx, "comp-1", "agent-2")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
	})

	It("invalidates a whole competition", func() {
		fill("comp-1", "agent-1", 10)
		fill("comp-1", "agent-2", 20)
		fill("comp-2", "agent-1", 30)

		Expect(cache.InvalidateCompetition(ctx, "comp-1")).To(Succeed())

		for _, agent := range []string{"agent-1", "agent-2"} {
			_, found, err := cache.Get(ctx, "comp-1", agent)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		}
		_, found, err := cache.Get(ctx, "comp-2", "agent-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
	})

	It("drops a fill loaded before an invalidation", func() {
		version, err := cache.Version(ctx, "comp-1", "agent-1")
		Expect(err).NotTo(HaveOccurred())

		Expect(cache.Invalidate(ctx, "comp-1", "agent-1")).To(Succeed())

		stored, err := cache.Set(ctx, "comp-1", "agent-1", version, balances(10))
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(BeFalse())
		_, found, err := cache.Get(ctx, "comp-1", "agent-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())

		next, err := cache.Version(ctx, "comp-1", "agent-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(next).To(Equal(version + 1))
		fill("comp-1", "agent-1", 9)
	})

	It("keeps versions of other agents apart", func() {
		version, err := cache.Version(ctx, "comp-1", "agent-2")
		Expect(err).NotTo(HaveOccurred())

		Expect(cache.Invalidate(ctx, "comp-1", "agent-1")).To(Succeed())

		again, err := cache.Version(ctx, "comp-1", "agent-2")
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(version))
	})
}

var _ = Describe("MemoryCache", func() {
	describeBalanceCache(func() ledger.BalanceCache {
		return ledger.NewMemoryCache()
	})

	It("hands out copies", func() {
		cache := ledger.NewMemoryCache()
		ctx := context.Background()
		_, err := cache.Set(ctx, "comp-1", "agent-1", 0, []ledger.Balance{{Amount: big.NewInt(1)}})
		Expect(err).NotTo(HaveOccurred())

		got, _, _ := cache.Get(ctx, "comp-1", "agent-1")
		got[0].Amount.SetInt64(99)

		again, _, _ := cache.Get(ctx, "comp-1", "agent-1")
		Expect(again[0].Amount.Int64()).To(Equal(int64(1)))
	})
})

var _ = Describe("RedisCache", func() {
	var server *miniredis.Miniredis

	describeBalanceCache(func() ledger.BalanceCache {
		server = miniredis.RunT(GinkgoT())
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		DeferCleanup(client.Close)
		return ledger.NewRedisCache(client, time.Minute)
	})

	It("expires entries after the ttl", func() {
		server = miniredis.RunT(GinkgoT())
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		DeferCleanup(client.Close)
		cache := ledger.NewRedisCache(client, time.Minute)
		ctx := context.Background()

		stored, err := cache.Set(ctx, "comp-1", "agent-1", 0, []ledger.Balance{{Amount: big.NewInt(1)}})
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(BeTrue())
		server.FastForward(2 * time.Minute)

		_, found, err := cache.Get(ctx, "comp-1", "agent-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
	})
})
