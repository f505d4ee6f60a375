package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"arenaledger/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BoostGrant credits boost to a user in a competition exactly once per IdemKey.
type BoostGrant struct {
	UserID        string
	CompetitionID string
	Amount        *big.Int
	IdemKey       string
	Meta          string
	// StakeID links the grant to the stake that earned it, when there is one.
	StakeID *big.Int
}

type BoostRepository struct {
	db Storage
}

func NewBoostRepository(db Storage) *BoostRepository {
	return &BoostRepository{
		db: db,
	}
}

// ApplyGrants writes all grants in one transaction. The returned slice reports
// per grant whether it was applied or had already been applied before.
func (r *BoostRepository) ApplyGrants(ctx context.Context, grants []BoostGrant) ([]bool, error) {
	applied := make([]bool, len(grants))
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for i, grant := range grants {
			change := BoostChange{
				ID:            uuid.NewString(),
				UserID:        grant.UserID,
				CompetitionID: grant.CompetitionID,
				IdemKey:       grant.IdemKey,
				DeltaAmount:   db.NewNumeric(grant.Amount),
				Meta:          grant.Meta,
				CreatedAt:     now,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "competition_id"}, {Name: "idem_key"}},
				DoNothing: true,
			}).Create(&change)
			if res.Error != nil {
				return fmt.Errorf("insert boost change %q: %w", grant.IdemKey, res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}

			balance := BoostBalance{
				UserID:        grant.UserID,
				CompetitionID: grant.CompetitionID,
				Balance:       db.NewNumeric(grant.Amount),
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "competition_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"balance":    gorm.Expr("boost_balances.balance + excluded.balance"),
					"updated_at": now,
				}),
			}).Create(&balance).Error
			if err != nil {
				return fmt.Errorf("upsert boost balance: %w", err)
			}

			if grant.StakeID != nil {
				award := StakeBoostAward{
					StakeID:       db.NewNumeric(grant.StakeID),
					CompetitionID: grant.CompetitionID,
					BoostChangeID: change.ID,
					CreatedAt:     now,
				}
				if err := tx.Create(&award).Error; err != nil {
					return fmt.Errorf("insert stake boost award: %w", err)
				}
			}
			applied[i] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("apply boost grants: %w", err)
	}
	return applied, nil
}

// GetBoostBalance returns zero when the user never received boost in the competition.
func (r *BoostRepository) GetBoostBalance(ctx context.Context, userID, competitionID string) (*big.Int, error) {
	var balance BoostBalance
	err := r.db.Conn(ctx).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		Take(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return new(big.Int), nil
		}
		return nil, fmt.Errorf("get boost balance: %w", err)
	}
	return balance.Balance.Int(), nil
}

func (r *BoostRepository) GetBoostChanges(ctx context.Context, userID, competitionID string) ([]BoostChange, error) {
	changes := []BoostChange{}
	err := r.db.Conn(ctx).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		Order("created_at, id").
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("get boost changes: %w", err)
	}
	return changes, nil
}

// AwardedStakeIDs returns the stakes that already earned boost in a competition.
func (r *BoostRepository) AwardedStakeIDs(ctx context.Context, competitionID string) ([]*big.Int, error) {
	awards := []StakeBoostAward{}
	err := r.db.GetAllBy(ctx, "competition_id", []string{competitionID}, &awards)
	if err != nil {
		return nil, fmt.Errorf("get stake boost awards: %w", err)
	}
	ids := make([]*big.Int, 0, len(awards))
	for _, a := range awards {
		ids = append(ids, a.StakeID.Int())
	}
	return ids, nil
}
