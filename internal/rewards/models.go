package rewards

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// LeaderboardEntry is a ranked competitor. Rank 1 is the winner.
type LeaderboardEntry struct {
	CompetitorID string
	Rank         int
	Wallet       common.Address
	OwnerID      string
}

// BoostAllocation is boost a user spent on a competitor.
type BoostAllocation struct {
	UserID       string
	Wallet       common.Address
	CompetitorID string
	Amount       *big.Int
	Timestamp    time.Time
}

type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Reward is a payout to one address. CompetitorID is set for competitor
// rewards and empty for booster rewards.
type Reward struct {
	Address      common.Address
	Amount       *big.Int
	OwnerID      string
	CompetitorID string
}

// DecayFunc weighs a boost by when it was allocated. It returns zero for
// timestamps outside the window and a value in (0, 1] inside it.
type DecayFunc func(ts time.Time, window Window, rate *decimal.Decimal) decimal.Decimal

type UsersInput struct {
	PrizePool          *big.Int
	Leaderboard        []LeaderboardEntry
	Allocations        []BoostAllocation
	Window             Window
	PrizePoolDecayRate decimal.Decimal
	// BoostTimeDecayRate is nil when boosts keep their full weight.
	BoostTimeDecayRate *decimal.Decimal
	// Decay defaults to DailyDecay.
	Decay DecayFunc
	Hook  func(Snapshot)
}

type CompetitorsInput struct {
	PrizePool          *big.Int
	Leaderboard        []LeaderboardEntry
	PrizePoolDecayRate decimal.Decimal
	Hook               func(Snapshot)
}

// Snapshot exposes the intermediate values of a calculation for auditing.
type Snapshot struct {
	Shares map[string]*big.Int
	// EffectiveBoosts is keyed by user, then competitor.
	EffectiveBoosts  map[string]map[string]*big.Rat
	CompetitorTotals map[string]*big.Rat
	Payouts          map[string]*big.Int
}
