package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"arenaledger/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StakeKindStake    = "stake"
	StakeKindUnstake  = "unstake"
	StakeKindRelock   = "relock"
	StakeKindWithdraw = "withdraw"
)

// StakeUpdate describes how a journaled change mutates its stake row.
type StakeUpdate struct {
	// Open creates the stake, or tops it up by the change delta when it exists.
	Open *Stake
	// ResetAmount replaces the stake amount. The journaled delta becomes the
	// difference to the previous amount.
	ResetAmount *big.Int
	// Columns are lifecycle columns written together with the amount.
	Columns map[string]any
}

type StakeRepository struct {
	db Storage
}

func NewStakeRepository(db Storage) *StakeRepository {
	return &StakeRepository{
		db: db,
	}
}

// RecordEvent stores a raw chain event. It reports false when the
// (transaction hash, log index) pair was already recorded.
func (r *StakeRepository) RecordEvent(ctx context.Context, event IndexingEvent) (bool, error) {
	res := r.db.Conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_hash"}, {Name: "log_index"}},
		DoNothing: true,
	}).Create(&event)
	if res.Error != nil {
		return false, fmt.Errorf("record event: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ApplyStakeChange inserts the journal entry and mutates the stake in one
// transaction. The journal insert is the idempotency gate: when the
// (tx hash, log index) pair exists nothing else happens and false is returned.
func (r *StakeRepository) ApplyStakeChange(ctx context.Context, change StakeChange, update StakeUpdate) (bool, error) {
	applied := false
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		now := time.Now().UTC()
		change.CreatedAt = now

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
			DoNothing: true,
		}).Create(&change)
		if res.Error != nil {
			return fmt.Errorf("insert stake change: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if update.Open != nil {
			if err := openStake(tx, change, *update.Open, now); err != nil {
				return err
			}
			applied = true
			return nil
		}

		var stake Stake
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", change.StakeID).
			Take(&stake).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("stake %s: %w", change.StakeID, ErrStakeNotFound)
			}
			return fmt.Errorf("load stake: %w", err)
		}

		delta := change.DeltaAmount.Int()
		if update.ResetAmount != nil {
			delta = new(big.Int).Sub(update.ResetAmount, stake.Amount.Int())
			err := tx.Model(&StakeChange{}).
				Where("id = ?", change.ID).
				Update("delta_amount", db.NewNumeric(delta)).Error
			if err != nil {
				return fmt.Errorf("record relock delta: %w", err)
			}
		}

		amount := new(big.Int).Add(stake.Amount.Int(), delta)
		if amount.Sign() < 0 {
			return fmt.Errorf("stake %s: %w", change.StakeID, ErrNegativeStake)
		}

		columns := make(map[string]any, len(update.Columns)+2)
		for k, v := range update.Columns {
			columns[k] = v
		}
		columns["amount"] = db.NewNumeric(amount)
		columns["updated_at"] = now

		err = tx.Model(&Stake{}).Where("id = ?", change.StakeID).Updates(columns).Error
		if err != nil {
			return fmt.Errorf("update stake: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("apply stake change: %w", err)
	}
	return applied, nil
}

func openStake(tx *gorm.DB, change StakeChange, stake Stake, now time.Time) error {
	stake.ID = change.StakeID
	stake.Wallet = change.Wallet
	stake.Amount = change.DeltaAmount
	stake.CreatedAt = now
	stake.UpdatedAt = now

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"amount":            gorm.Expr("stakes.amount + excluded.amount"),
			"staked_at":         gorm.Expr("excluded.staked_at"),
			"can_unstake_after": gorm.Expr("excluded.can_unstake_after"),
			"updated_at":        now,
		}),
	}).Create(&stake).Error
	if err != nil {
		return fmt.Errorf("upsert stake: %w", err)
	}
	return nil
}

// LastAppliedBlock returns the highest block that produced a stake change.
func (r *StakeRepository) LastAppliedBlock(ctx context.Context) (uint64, bool, error) {
	var block sql.NullInt64
	row := r.db.Conn(ctx).Model(&StakeChange{}).Select("MAX(block_number)").Row()
	if err := row.Scan(&block); err != nil {
		return 0, false, fmt.Errorf("last applied block: %w", err)
	}
	if !block.Valid {
		return 0, false, nil
	}
	return uint64(block.Int64), true, nil
}

func (r *StakeRepository) GetStake(ctx context.Context, id *big.Int) (Stake, error) {
	var stake Stake
	err := r.db.GetOneBy(ctx, "id", db.NewNumeric(id), &stake)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Stake{}, ErrStakeNotFound
		}
		return Stake{}, fmt.Errorf("get stake: %w", err)
	}
	return stake, nil
}

// ActiveStakes returns stakes that have not been unstaked, oldest first.
func (r *StakeRepository) ActiveStakes(ctx context.Context) ([]Stake, error) {
	stakes := []Stake{}
	err := r.db.Conn(ctx).
		Where("unstaked_at IS NULL AND withdrawn_at IS NULL").
		Order("staked_at, id").
		Find(&stakes).Error
	if err != nil {
		return nil, fmt.Errorf("get active stakes: %w", err)
	}
	return stakes, nil
}

func (r *StakeRepository) GetStakeChanges(ctx context.Context, id *big.Int) ([]StakeChange, error) {
	changes := []StakeChange{}
	err := r.db.Conn(ctx).
		Where("stake_id = ?", db.NewNumeric(id)).
		Order("block_number, log_index").
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("get stake changes: %w", err)
	}
	return changes, nil
}

func (r *StakeRepository) StakesByWallet(ctx context.Context, wallet []byte) ([]Stake, error) {
	stakes := []Stake{}
	err := r.db.Conn(ctx).
		Where("wallet = ?", wallet).
		Order("staked_at, id").
		Find(&stakes).Error
	if err != nil {
		return nil, fmt.Errorf("get stakes by wallet: %w", err)
	}
	return stakes, nil
}
