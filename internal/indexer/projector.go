package indexer

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"arenaledger/internal/db"
	"arenaledger/internal/repository"
	"arenaledger/internal/staking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStakeNotFound = errors.New("stake not found")
	ErrNegativeStake = errors.New("stake amount would become negative")
)

type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeNoop    Outcome = "noop"
	// OutcomeOrphaned marks a change of a stake that was never opened. The
	// raw event stays journaled but nothing is projected.
	OutcomeOrphaned Outcome = "orphaned"
)

// StakeHistory is a stake with its journaled changes in chain order.
type StakeHistory struct {
	Stake   staking.Stake
	Changes []repository.StakeChange
}

// Projector journals staking events and projects them onto the stakes table.
type Projector struct {
	logs   *zap.SugaredLogger
	repo   Repository
	awards BoostAwarder
}

func NewProjector(logger *zap.SugaredLogger, repo Repository, awards BoostAwarder) *Projector {
	return &Projector{
		logs:   logger,
		repo:   repo,
		awards: awards,
	}
}

// RecordEvent stores the raw event. A redelivered event is a noop.
func (p *Projector) RecordEvent(ctx context.Context, event Event) (Outcome, error) {
	inserted, err := p.repo.RecordEvent(ctx, repository.IndexingEvent{
		ID:              uuid.NewString(),
		TransactionHash: event.TxHash.Bytes(),
		LogIndex:        event.LogIndex,
		Type:            event.Kind,
		BlockNumber:     event.BlockNumber,
		BlockHash:       event.BlockHash.Bytes(),
		BlockTimestamp:  event.BlockTime,
		Payload:         event.Payload(),
	})
	if err != nil {
		return "", fmt.Errorf("record event: %w", err)
	}
	if !inserted {
		return OutcomeNoop, nil
	}
	return OutcomeApplied, nil
}

// ApplyEvent mutates the stake and journals the change in one transaction.
// An event that was already applied is a noop.
func (p *Projector) ApplyEvent(ctx context.Context, event Event) (Outcome, error) {
	change := repository.StakeChange{
		ID:          uuid.NewString(),
		StakeID:     db.NewNumeric(event.TokenID),
		Wallet:      event.Staker.Bytes(),
		Kind:        event.Kind,
		TxHash:      event.TxHash.Bytes(),
		LogIndex:    event.LogIndex,
		BlockNumber: event.BlockNumber,
		BlockHash:   event.BlockHash.Bytes(),
	}

	var update repository.StakeUpdate
	switch event.Kind {
	case repository.StakeKindStake:
		change.DeltaAmount = db.NewNumeric(event.Amount)
		update.Open = &repository.Stake{
			StakedAt:        event.StartTime,
			CanUnstakeAfter: event.LockupEndTime,
		}
	case repository.StakeKindUnstake:
		change.DeltaAmount = db.NewNumeric(new(big.Int).Neg(event.Amount))
		update.Columns = map[string]any{
			"unstaked_at":        event.BlockTime,
			"can_withdraw_after": event.WithdrawAllowedTime,
		}
	case repository.StakeKindRelock:
		update.ResetAmount = event.Amount
		update.Columns = map[string]any{"relocked_at": event.BlockTime}
	case repository.StakeKindWithdraw:
		change.DeltaAmount = db.NewNumeric(nil)
		update.Columns = map[string]any{"withdrawn_at": event.BlockTime}
	default:
		return "", fmt.Errorf("%w: kind %q", ErrUnknownEvent, event.Kind)
	}

	applied, err := p.repo.ApplyStakeChange(ctx, change, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStakeNotFound):
			return "", fmt.Errorf("%w: %s", ErrStakeNotFound, event.TokenID)
		case errors.Is(err, repository.ErrNegativeStake):
			return "", fmt.Errorf("%w: %s", ErrNegativeStake, event.TokenID)
		}
		return "", fmt.Errorf("apply %s event: %w", event.Kind, err)
	}
	if !applied {
		return OutcomeNoop, nil
	}

	p.logs.Infow("stake event applied",
		"kind", event.Kind,
		"stake_id", event.TokenID.String(),
		"wallet", event.Staker.Hex(),
		"tx_hash", event.TxHash.Hex(),
		"log_index", event.LogIndex,
		"block_number", event.BlockNumber)

	return OutcomeApplied, nil
}

// Process records and applies an event. A freshly applied stake event earns
// boost in the competitions open for voting; failures there are logged and
// left to the periodic boost sweep. A change of an unknown stake, e.g. one
// opened before the indexer's start block, is reported as orphaned so the
// caller can move on.
func (p *Projector) Process(ctx context.Context, event Event) (Outcome, error) {
	if _, err := p.RecordEvent(ctx, event); err != nil {
		return "", err
	}

	outcome, err := p.ApplyEvent(ctx, event)
	if err != nil {
		if errors.Is(err, ErrStakeNotFound) {
			p.logs.Warnw("stake event for unknown stake journaled without projection",
				"kind", event.Kind,
				"stake_id", event.TokenID.String(),
				"tx_hash", event.TxHash.Hex(),
				"log_index", event.LogIndex,
				"block_number", event.BlockNumber)
			return OutcomeOrphaned, nil
		}
		return "", err
	}
	if outcome != OutcomeApplied || event.Kind != repository.StakeKindStake {
		return outcome, nil
	}

	record, err := p.repo.GetStake(ctx, event.TokenID)
	if err != nil {
		p.logs.Errorw("loading stake for boost failed",
			"stake_id", event.TokenID.String(),
			"error", err)
		return outcome, nil
	}
	if _, err := p.awards.InitForStake(ctx, staking.FromRecord(record)); err != nil {
		p.logs.Errorw("boost award for stake failed",
			"stake_id", event.TokenID.String(),
			"error", err)
	}
	return outcome, nil
}

func (p *Projector) LastAppliedBlock(ctx context.Context) (uint64, bool, error) {
	return p.repo.LastAppliedBlock(ctx)
}

func (p *Projector) StakeHistory(ctx context.Context, id *big.Int) (StakeHistory, error) {
	record, err := p.repo.GetStake(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStakeNotFound) {
			return StakeHistory{}, fmt.Errorf("%w: %s", ErrStakeNotFound, id)
		}
		return StakeHistory{}, fmt.Errorf("get stake: %w", err)
	}
	changes, err := p.repo.GetStakeChanges(ctx, id)
	if err != nil {
		return StakeHistory{}, fmt.Errorf("get stake changes: %w", err)
	}
	return StakeHistory{Stake: staking.FromRecord(record), Changes: changes}, nil
}
