package boost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"arenaledger/internal/repository"
	"arenaledger/internal/staking"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrMissingVotingDates  = errors.New("missing voting dates")
	ErrInvalidBoostWindow  = errors.New("invalid boost window")
	ErrInvalidAmount       = errors.New("invalid boost amount")
)

type Engine struct {
	logs          *zap.SugaredLogger
	repo          Repository
	competitions  Competitions
	stakes        Stakes
	noStakeAmount *big.Int
	now           func() time.Time
}

func NewEngine(logger *zap.SugaredLogger, repo Repository, competitions Competitions, stakes Stakes, noStakeAmount *big.Int) (*Engine, error) {
	if noStakeAmount == nil || noStakeAmount.Sign() < 0 {
		return nil, fmt.Errorf("%w: no-stake amount must be non-negative", ErrInvalidAmount)
	}
	return &Engine{
		logs:          logger,
		repo:          repo,
		competitions:  competitions,
		stakes:        stakes,
		noStakeAmount: new(big.Int).Set(noStakeAmount),
		now:           func() time.Time { return time.Now().UTC() },
	}, nil
}

// AwardAmountForStake doubles the stake amount when the stake was placed
// before voting opened and stays locked until voting closes.
func AwardAmountForStake(stake staking.Stake, window Window) *big.Int {
	return new(big.Int).Mul(stake.Amount, multiplier(stake, window))
}

func multiplier(stake staking.Stake, window Window) *big.Int {
	if stake.StakedAt.Before(window.Start) && !stake.CanUnstakeAfter.Before(window.End) {
		return big.NewInt(2)
	}
	return big.NewInt(1)
}

// AwardForStake grants the stake's boost in one competition. A wallet that
// belongs to no user yields a noop award.
func (e *Engine) AwardForStake(ctx context.Context, stake staking.Stake, competitionID string) (Award, error) {
	competition, err := e.competitions.GetCompetition(ctx, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return Award{}, fmt.Errorf("%w: %s", ErrCompetitionNotFound, competitionID)
		}
		return Award{}, fmt.Errorf("get competition: %w", err)
	}

	awards, err := e.awardStake(ctx, stake, []repository.Competition{competition})
	if err != nil {
		return Award{}, err
	}
	return awards[0], nil
}

// InitForStake grants the stake's boost in every competition open for voting,
// in one transaction.
func (e *Engine) InitForStake(ctx context.Context, stake staking.Stake) ([]Award, error) {
	now := e.now()
	if !stake.Active(now) {
		return nil, nil
	}

	competitions, err := e.competitions.VotingOpen(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("get voting open competitions: %w", err)
	}
	if len(competitions) == 0 {
		return nil, nil
	}
	return e.awardStake(ctx, stake, competitions)
}

func (e *Engine) awardStake(ctx context.Context, stake staking.Stake, competitions []repository.Competition) ([]Award, error) {
	awards := make([]Award, len(competitions))
	grants := make([]repository.BoostGrant, len(competitions))
	for i, c := range competitions {
		window, err := WindowOf(c)
		if err != nil {
			return nil, err
		}
		amount := AwardAmountForStake(stake, window)
		awards[i] = Award{
			CompetitionID: c.ID,
			StakeID:       new(big.Int).Set(stake.ID),
			Amount:        amount,
			Outcome:       OutcomeNoop,
		}
		grants[i] = repository.BoostGrant{
			CompetitionID: c.ID,
			Amount:        amount,
			IdemKey:       StakeKey(c.ID, stake.ID),
			Meta:          meta("stake", stake.ID.String(), multiplier(stake, window)),
			StakeID:       stake.ID,
		}
	}

	user, err := e.competitions.GetUserByWallet(ctx, stake.Wallet.Bytes())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			e.logs.Infow("no user for staking wallet",
				"stake_id", stake.ID.String(),
				"wallet", stake.Wallet.Hex())
			return awards, nil
		}
		return nil, fmt.Errorf("get user by wallet: %w", err)
	}
	for i := range grants {
		grants[i].UserID = user.ID
		awards[i].UserID = user.ID
	}

	return e.apply(ctx, grants, awards)
}

// AwardNoStake grants the flat no-stake boost once per competition and reason.
func (e *Engine) AwardNoStake(ctx context.Context, userID, competitionID, reason string) (Award, error) {
	competition, err := e.competitions.GetCompetition(ctx, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return Award{}, fmt.Errorf("%w: %s", ErrCompetitionNotFound, competitionID)
		}
		return Award{}, fmt.Errorf("get competition: %w", err)
	}

	awards, err := e.awardNoStake(ctx, userID, reason, []repository.Competition{competition})
	if err != nil {
		return Award{}, err
	}
	return awards[0], nil
}

// InitNoStake grants the no-stake boost in every competition open for voting.
// Wallets holding an active stake get nothing.
func (e *Engine) InitNoStake(ctx context.Context, userID string, wallet common.Address, reason string) ([]Award, error) {
	now := e.now()

	records, err := e.stakes.StakesByWallet(ctx, wallet.Bytes())
	if err != nil {
		return nil, fmt.Errorf("get stakes by wallet: %w", err)
	}
	for _, r := range records {
		if staking.FromRecord(r).Active(now) {
			e.logs.Debugw("wallet has an active stake, skipping no-stake boost",
				"user_id", userID,
				"wallet", wallet.Hex())
			return nil, nil
		}
	}

	competitions, err := e.competitions.VotingOpen(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("get voting open competitions: %w", err)
	}
	if len(competitions) == 0 {
		return nil, nil
	}
	for _, c := range competitions {
		if _, err := WindowOf(c); err != nil {
			return nil, err
		}
	}
	return e.awardNoStake(ctx, userID, reason, competitions)
}

func (e *Engine) awardNoStake(ctx context.Context, userID, reason string, competitions []repository.Competition) ([]Award, error) {
	awards := make([]Award, len(competitions))
	grants := make([]repository.BoostGrant, len(competitions))
	for i, c := range competitions {
		awards[i] = Award{
			CompetitionID: c.ID,
			UserID:        userID,
			Amount:        new(big.Int).Set(e.noStakeAmount),
			Outcome:       OutcomeNoop,
		}
		grants[i] = repository.BoostGrant{
			UserID:        userID,
			CompetitionID: c.ID,
			Amount:        e.noStakeAmount,
			IdemKey:       NoStakeKey(c.ID, reason),
			Meta:          meta("nostake", reason, big.NewInt(1)),
		}
	}
	return e.apply(ctx, grants, awards)
}

func (e *Engine) apply(ctx context.Context, grants []repository.BoostGrant, awards []Award) ([]Award, error) {
	applied, err := e.repo.ApplyGrants(ctx, grants)
	if err != nil {
		return nil, fmt.Errorf("apply boost grants: %w", err)
	}
	for i := range awards {
		if applied[i] {
			awards[i].Outcome = OutcomeApplied
			e.logs.Infow("boost granted",
				"user_id", awards[i].UserID,
				"competition_id", awards[i].CompetitionID,
				"idem_key", grants[i].IdemKey,
				"amount", awards[i].Amount.String())
		}
	}
	return awards, nil
}

// Sweep grants boost to every active stake in the competitions open for
// voting where it has not earned boost yet. Failures of single stakes are
// joined and do not stop the sweep.
func (e *Engine) Sweep(ctx context.Context) (int, error) {
	now := e.now()
	competitions, err := e.competitions.VotingOpen(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("get voting open competitions: %w", err)
	}
	if len(competitions) == 0 {
		return 0, nil
	}

	awarded := make(map[string]map[string]bool, len(competitions))
	for _, c := range competitions {
		ids, err := e.repo.AwardedStakeIDs(ctx, c.ID)
		if err != nil {
			return 0, fmt.Errorf("get awarded stakes of %s: %w", c.ID, err)
		}
		stakes := make(map[string]bool, len(ids))
		for _, id := range ids {
			stakes[id.String()] = true
		}
		awarded[c.ID] = stakes
	}

	records, err := e.stakes.ActiveStakes(ctx)
	if err != nil {
		return 0, fmt.Errorf("get active stakes: %w", err)
	}

	applied := 0
	var aggrErr error
	for _, r := range records {
		stake := staking.FromRecord(r)
		if !stake.Active(now) {
			continue
		}
		pending := make([]repository.Competition, 0, len(competitions))
		for _, c := range competitions {
			if !awarded[c.ID][stake.ID.String()] {
				pending = append(pending, c)
			}
		}
		if len(pending) == 0 {
			continue
		}

		awards, err := e.awardStake(ctx, stake, pending)
		if err != nil {
			aggrErr = errors.Join(aggrErr, fmt.Errorf("stake %s: %w", stake.ID, err))
			continue
		}
		for _, a := range awards {
			if a.Applied() {
				applied++
			}
		}
	}
	return applied, aggrErr
}

func (e *Engine) Summary(ctx context.Context, userID, competitionID string) (Summary, error) {
	balance, err := e.repo.GetBoostBalance(ctx, userID, competitionID)
	if err != nil {
		return Summary{}, fmt.Errorf("get boost balance: %w", err)
	}
	records, err := e.repo.GetBoostChanges(ctx, userID, competitionID)
	if err != nil {
		return Summary{}, fmt.Errorf("get boost changes: %w", err)
	}

	changes := make([]Change, 0, len(records))
	for _, r := range records {
		changes = append(changes, Change{
			ID:        r.ID,
			Amount:    r.DeltaAmount.Int(),
			IdemKey:   r.IdemKey,
			Meta:      r.Meta,
			CreatedAt: r.CreatedAt,
		})
	}
	return Summary{
		UserID:        userID,
		CompetitionID: competitionID,
		Balance:       balance,
		Changes:       changes,
	}, nil
}

func meta(source, ref string, multiplier *big.Int) string {
	data, _ := json.Marshal(struct {
		Source     string `json:"source"`
		Ref        string `json:"ref"`
		Multiplier string `json:"multiplier"`
	}{source, ref, multiplier.String()})
	return string(data)
}
