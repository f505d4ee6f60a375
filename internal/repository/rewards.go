package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"arenaledger/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const treeBatchSize = 500

type RewardsRepository struct {
	db Storage
}

func NewRewardsRepository(db Storage) *RewardsRepository {
	return &RewardsRepository{
		db: db,
	}
}

// CommitRewards persists the rewards, every tree node and the root of a
// competition in one transaction. Committing the same root again reports
// false; a different root for a committed competition is ErrRootMismatch.
func (r *RewardsRepository) CommitRewards(ctx context.Context, competitionID string, rewards []Reward, nodes []RewardsTree, root []byte) (bool, error) {
	committed := false
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		now := time.Now().UTC()
		row := RewardsRoot{
			CompetitionID: competitionID,
			RootHash:      root,
			CreatedAt:     now,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "competition_id"}},
			DoNothing: true,
		}).Create(&row)
		if res.Error != nil {
			return fmt.Errorf("insert rewards root: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var existing RewardsRoot
			if err := tx.Where("competition_id = ?", competitionID).Take(&existing).Error; err != nil {
				return fmt.Errorf("load rewards root: %w", err)
			}
			if !bytes.Equal(existing.RootHash, root) {
				return ErrRootMismatch
			}
			return nil
		}

		for i := range rewards {
			rewards[i].CompetitionID = competitionID
			rewards[i].CreatedAt = now
		}
		if len(rewards) > 0 {
			if err := tx.CreateInBatches(&rewards, treeBatchSize).Error; err != nil {
				return fmt.Errorf("insert rewards: %w", err)
			}
		}

		for i := range nodes {
			nodes[i].CompetitionID = competitionID
		}
		if len(nodes) > 0 {
			if err := tx.CreateInBatches(&nodes, treeBatchSize).Error; err != nil {
				return fmt.Errorf("insert rewards tree: %w", err)
			}
		}
		committed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("commit rewards: %w", err)
	}
	return committed, nil
}

// FindCompetitionByRoot resolves a published root back to its competition.
func (r *RewardsRepository) FindCompetitionByRoot(ctx context.Context, root []byte) (string, error) {
	var row RewardsRoot
	err := r.db.GetOneBy(ctx, "root_hash", root, &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrRootNotFound
		}
		return "", fmt.Errorf("find competition by root: %w", err)
	}
	return row.CompetitionID, nil
}

func (r *RewardsRepository) GetRoot(ctx context.Context, competitionID string) (RewardsRoot, error) {
	var row RewardsRoot
	err := r.db.GetOneBy(ctx, "competition_id", competitionID, &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return RewardsRoot{}, ErrRootNotFound
		}
		return RewardsRoot{}, fmt.Errorf("get rewards root: %w", err)
	}
	return row, nil
}

// GetTree returns every stored node ordered by level then index.
func (r *RewardsRepository) GetTree(ctx context.Context, competitionID string) ([]RewardsTree, error) {
	nodes := []RewardsTree{}
	err := r.db.Conn(ctx).
		Where("competition_id = ?", competitionID).
		Order("level, idx").
		Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("get rewards tree: %w", err)
	}
	return nodes, nil
}

func (r *RewardsRepository) GetRewards(ctx context.Context, competitionID string) ([]Reward, error) {
	rewards := []Reward{}
	err := r.db.Conn(ctx).
		Where("competition_id = ?", competitionID).
		Order("address, id").
		Find(&rewards).Error
	if err != nil {
		return nil, fmt.Errorf("get rewards: %w", err)
	}
	return rewards, nil
}
