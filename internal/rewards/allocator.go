package rewards

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWindow      = errors.New("invalid rewards window")
	ErrInvalidDecayRate   = errors.New("invalid decay rate")
	ErrInvalidLeaderboard = errors.New("invalid leaderboard")
	ErrInvalidAllocation  = errors.New("invalid boost allocation")
)

var (
	minDecayRate = decimal.RequireFromString("0.1")
	maxDecayRate = decimal.RequireFromString("0.9")
)

func validateDecayRate(name string, rate decimal.Decimal) error {
	if rate.LessThan(minDecayRate) || rate.GreaterThan(maxDecayRate) {
		return fmt.Errorf("%w: %s %s is outside [%s, %s]", ErrInvalidDecayRate, name, rate, minDecayRate, maxDecayRate)
	}
	return nil
}

func validateLeaderboard(entries []LeaderboardEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.CompetitorID == "" {
			return fmt.Errorf("%w: empty competitor id", ErrInvalidLeaderboard)
		}
		if e.Rank < 1 {
			return fmt.Errorf("%w: competitor %s has rank %d", ErrInvalidLeaderboard, e.CompetitorID, e.Rank)
		}
		if _, ok := seen[e.CompetitorID]; ok {
			return fmt.Errorf("%w: competitor %s ranked twice", ErrInvalidLeaderboard, e.CompetitorID)
		}
		seen[e.CompetitorID] = struct{}{}
	}
	return nil
}

// DailyDecay weighs a boost by rate^d where d is the number of whole days
// between the window start and the allocation.
func DailyDecay(ts time.Time, window Window, rate *decimal.Decimal) decimal.Decimal {
	if !window.Contains(ts) {
		return decimal.Zero
	}
	if rate == nil {
		return decimal.NewFromInt(1)
	}
	days := int64(ts.Sub(window.Start) / (24 * time.Hour))
	return rate.Pow(decimal.NewFromInt(days))
}

// SplitPrizePool gives the competitor at rank r the share
// floor(pool * rate^(r-1) / sum(rate^(rank-1))). The rounding residue stays
// undistributed.
func SplitPrizePool(pool *big.Int, entries []LeaderboardEntry, rate decimal.Decimal) map[string]*big.Int {
	shares := make(map[string]*big.Int, len(entries))
	if len(entries) == 0 || pool == nil || pool.Sign() <= 0 {
		return shares
	}

	r := rate.Rat()
	weights := make([]*big.Rat, len(entries))
	total := new(big.Rat)
	for i, e := range entries {
		weights[i] = ratPow(r, e.Rank-1)
		total.Add(total, weights[i])
	}

	poolRat := new(big.Rat).SetInt(pool)
	for i, e := range entries {
		share := new(big.Rat).Mul(poolRat, weights[i])
		share.Quo(share, total)
		shares[e.CompetitorID] = floor(share)
	}
	return shares
}

// CalculateRewardsForUsers splits the prize pool across competitors by rank
// and pays each competitor's share to its boosters pro rata to their
// decayed boost. Shares of competitors without boosters stay unpaid.
func CalculateRewardsForUsers(in UsersInput) ([]Reward, error) {
	if !in.Window.End.After(in.Window.Start) {
		return nil, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidWindow,
			in.Window.End.Format(time.RFC3339), in.Window.Start.Format(time.RFC3339))
	}
	if err := validateDecayRate("prize pool decay rate", in.PrizePoolDecayRate); err != nil {
		return nil, err
	}
	if in.BoostTimeDecayRate != nil {
		if err := validateDecayRate("boost time decay rate", *in.BoostTimeDecayRate); err != nil {
			return nil, err
		}
	}
	if err := validateLeaderboard(in.Leaderboard); err != nil {
		return nil, err
	}
	for _, a := range in.Allocations {
		if a.Amount == nil || a.Amount.Sign() < 0 {
			return nil, fmt.Errorf("%w: user %s boost %v", ErrInvalidAllocation, a.UserID, a.Amount)
		}
	}

	if len(in.Leaderboard) == 0 || in.PrizePool == nil || in.PrizePool.Sign() <= 0 || len(in.Allocations) == 0 {
		return []Reward{}, nil
	}

	decay := in.Decay
	if decay == nil {
		decay = DailyDecay
	}

	shares := SplitPrizePool(in.PrizePool, in.Leaderboard, in.PrizePoolDecayRate)

	effective := map[string]map[string]*big.Rat{}
	totals := map[string]*big.Rat{}
	wallets := map[string]Reward{}
	for _, a := range in.Allocations {
		weight := decay(a.Timestamp, in.Window, in.BoostTimeDecayRate)
		if weight.Sign() <= 0 || a.Amount.Sign() == 0 {
			continue
		}
		boost := new(big.Rat).Mul(new(big.Rat).SetInt(a.Amount), weight.Rat())

		perUser, ok := effective[a.UserID]
		if !ok {
			perUser = map[string]*big.Rat{}
			effective[a.UserID] = perUser
		}
		if perUser[a.CompetitorID] == nil {
			perUser[a.CompetitorID] = new(big.Rat)
		}
		perUser[a.CompetitorID].Add(perUser[a.CompetitorID], boost)

		if totals[a.CompetitorID] == nil {
			totals[a.CompetitorID] = new(big.Rat)
		}
		totals[a.CompetitorID].Add(totals[a.CompetitorID], boost)

		if _, ok := wallets[a.UserID]; !ok {
			wallets[a.UserID] = Reward{Address: a.Wallet, OwnerID: a.UserID}
		}
	}

	payouts := map[string]*big.Int{}
	rewards := []Reward{}
	for userID, perUser := range effective {
		payout := new(big.Int)
		for competitorID, boost := range perUser {
			share, ok := shares[competitorID]
			if !ok {
				continue
			}
			part := new(big.Rat).Mul(new(big.Rat).SetInt(share), boost)
			part.Quo(part, totals[competitorID])
			payout.Add(payout, floor(part))
		}
		payouts[userID] = payout
		if payout.Sign() > 0 {
			reward := wallets[userID]
			reward.Amount = payout
			rewards = append(rewards, reward)
		}
	}
	sortRewards(rewards)

	if in.Hook != nil {
		in.Hook(Snapshot{
			Shares:           shares,
			EffectiveBoosts:  effective,
			CompetitorTotals: totals,
			Payouts:          payouts,
		})
	}
	return rewards, nil
}

// CalculateRewardsForCompetitors pays each competitor's share of the prize
// pool to the competitor's wallet.
func CalculateRewardsForCompetitors(in CompetitorsInput) ([]Reward, error) {
	if err := validateDecayRate("prize pool decay rate", in.PrizePoolDecayRate); err != nil {
		return nil, err
	}
	if err := validateLeaderboard(in.Leaderboard); err != nil {
		return nil, err
	}
	if len(in.Leaderboard) == 0 || in.PrizePool == nil || in.PrizePool.Sign() <= 0 {
		return []Reward{}, nil
	}

	shares := SplitPrizePool(in.PrizePool, in.Leaderboard, in.PrizePoolDecayRate)
	rewards := []Reward{}
	for _, e := range in.Leaderboard {
		share := shares[e.CompetitorID]
		if share.Sign() <= 0 {
			continue
		}
		rewards = append(rewards, Reward{
			Address:      e.Wallet,
			Amount:       new(big.Int).Set(share),
			OwnerID:      e.OwnerID,
			CompetitorID: e.CompetitorID,
		})
	}
	sortRewards(rewards)

	if in.Hook != nil {
		in.Hook(Snapshot{Shares: shares})
	}
	return rewards, nil
}

func sortRewards(rewards []Reward) {
	sort.Slice(rewards, func(i, j int) bool {
		if c := bytes.Compare(rewards[i].Address.Bytes(), rewards[j].Address.Bytes()); c != 0 {
			return c < 0
		}
		if rewards[i].CompetitorID != rewards[j].CompetitorID {
			return rewards[i].CompetitorID < rewards[j].CompetitorID
		}
		return rewards[i].OwnerID < rewards[j].OwnerID
	})
}

func ratPow(r *big.Rat, n int) *big.Rat {
	out := big.NewRat(1, 1)
	for i := 0; i < n; i++ {
		out.Mul(out, r)
	}
	return out
}

func floor(r *big.Rat) *big.Int {
	// Quo truncates toward zero, which is floor for the non-negative values here.
	return new(big.Int).Quo(r.Num(), r.Denom())
}
