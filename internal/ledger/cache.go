package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryCache keeps balances per competition in process memory. Every
// invalidation bumps the entry's version so a fill computed from an older
// read is dropped.
type MemoryCache struct {
	mu       sync.RWMutex
	items    map[string]map[string][]Balance
	versions map[string]map[string]uint64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items:    map[string]map[string][]Balance{},
		versions: map[string]map[string]uint64{},
	}
}

func (c *MemoryCache) Get(_ context.Context, competitionID, agentID string) ([]Balance, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	balances, ok := c.items[competitionID][agentID]
	if !ok {
		return nil, false, nil
	}
	return cloneBalances(balances), true, nil
}

func (c *MemoryCache) Version(_ context.Context, competitionID, agentID string) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.versions[competitionID][agentID], nil
}

func (c *MemoryCache) Set(_ context.Context, competitionID, agentID string, version uint64, balances []Balance) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[competitionID][agentID] != version {
		return false, nil
	}
	agents, ok := c.items[competitionID]
	if !ok {
		agents = map[string][]Balance{}
		c.items[competitionID] = agents
	}
	agents[agentID] = cloneBalances(balances)
	return true, nil
}

func (c *MemoryCache) Invalidate(_ context.Context, competitionID, agentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items[competitionID], agentID)
	versions, ok := c.versions[competitionID]
	if !ok {
		versions = map[string]uint64{}
		c.versions[competitionID] = versions
	}
	versions[agentID]++
	return nil
}

// InvalidateCompetition drops the entries but keeps their versions.
func (c *MemoryCache) InvalidateCompetition(_ context.Context, competitionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, competitionID)
	return nil
}

func cloneBalances(in []Balance) []Balance {
	out := make([]Balance, len(in))
	for i, b := range in {
		out[i] = b
		if b.Amount != nil {
			out[i].Amount = new(big.Int).Set(b.Amount)
		}
	}
	return out
}

// RedisCache stores one hash per competition keyed by agent, so a whole
// competition is dropped with a single DEL. A second hash holds the version
// of every agent entry; fills run under WATCH on it.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func competitionKey(competitionID string) string {
	return "balances:" + competitionID
}

func versionsKey(competitionID string) string {
	return "balances:" + competitionID + ":versions"
}

func (c *RedisCache) Get(ctx context.Context, competitionID, agentID string) ([]Balance, bool, error) {
	data, err := c.client.HGet(ctx, competitionKey(competitionID), agentID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis hget: %w", err)
	}

	var balances []Balance
	if err := json.Unmarshal(data, &balances); err != nil {
		return nil, false, fmt.Errorf("decode cached balances: %w", err)
	}
	return balances, true, nil
}

func (c *RedisCache) Version(ctx context.Context, competitionID, agentID string) (uint64, error) {
	return readVersion(ctx, c.client, competitionID, agentID)
}

type hashReader interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

func readVersion(ctx context.Context, cmd hashReader, competitionID, agentID string) (uint64, error) {
	version, err := cmd.HGet(ctx, versionsKey(competitionID), agentID).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis hget version: %w", err)
	}
	return version, nil
}

func (c *RedisCache) Set(ctx context.Context, competitionID, agentID string, version uint64, balances []Balance) (bool, error) {
	data, err := json.Marshal(balances)
	if err != nil {
		return false, fmt.Errorf("encode balances: %w", err)
	}

	key := competitionKey(competitionID)
	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx, competitionID, agentID)
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, agentID, data)
			if c.ttl > 0 {
				pipe.Expire(ctx, key, c.ttl)
			}
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, versionsKey(competitionID))
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis hset: %w", err)
	}
	return stored, nil
}

func (c *RedisCache) Invalidate(ctx context.Context, competitionID, agentID string) error {
	versions := versionsKey(competitionID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, versions, agentID, 1)
		if c.ttl > 0 {
			pipe.Expire(ctx, versions, c.ttl)
		}
		pipe.HDel(ctx, competitionKey(competitionID), agentID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

func (c *RedisCache) InvalidateCompetition(ctx context.Context, competitionID string) error {
	if err := c.client.Del(ctx, competitionKey(competitionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
