package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arenaledger/internal/db"
)

// CompetitionRepository reads competition data maintained by the competition
// service: competitions, users, leaderboards and boost allocations.
type CompetitionRepository struct {
	db Storage
}

func NewCompetitionRepository(db Storage) *CompetitionRepository {
	return &CompetitionRepository{
		db: db,
	}
}

func (r *CompetitionRepository) GetCompetition(ctx context.Context, id string) (Competition, error) {
	var competition Competition
	err := r.db.GetOneBy(ctx, "id", id, &competition)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Competition{}, ErrCompetitionNotFound
		}
		return Competition{}, fmt.Errorf("get competition: %w", err)
	}
	return competition, nil
}

// VotingOpen returns competitions with voting enabled whose voting window
// contains now. Competitions with voting enabled but a missing date are
// included so that callers can report them.
func (r *CompetitionRepository) VotingOpen(ctx context.Context, now time.Time) ([]Competition, error) {
	competitions := []Competition{}
	err := r.db.Conn(ctx).
		Where("voting_enabled = ?", true).
		Where("status IN ?", []string{CompetitionStatusPending, CompetitionStatusActive}).
		Where("voting_start_date IS NULL OR voting_start_date <= ?", now).
		Where("voting_end_date IS NULL OR voting_end_date > ?", now).
		Order("id").
		Find(&competitions).Error
	if err != nil {
		return nil, fmt.Errorf("get voting open competitions: %w", err)
	}
	return competitions, nil
}

// EndedWithoutRewards returns ended competitions that have no committed rewards root.
func (r *CompetitionRepository) EndedWithoutRewards(ctx context.Context) ([]Competition, error) {
	competitions := []Competition{}
	conn := r.db.Conn(ctx)
	err := conn.
		Where("status = ?", CompetitionStatusEnded).
		Where("id NOT IN (?)", conn.Model(&RewardsRoot{}).Select("competition_id")).
		Order("id").
		Find(&competitions).Error
	if err != nil {
		return nil, fmt.Errorf("get ended competitions: %w", err)
	}
	return competitions, nil
}

func (r *CompetitionRepository) GetUserByWallet(ctx context.Context, wallet []byte) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "wallet_address", wallet, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}
	return user, nil
}

// GetLeaderboard returns the final ranking ordered by rank.
func (r *CompetitionRepository) GetLeaderboard(ctx context.Context, competitionID string) ([]LeaderboardEntry, error) {
	entries := []LeaderboardEntry{}
	err := r.db.Conn(ctx).
		Where("competition_id = ?", competitionID).
		Order("rank, agent_id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	return entries, nil
}

func (r *CompetitionRepository) GetBoostAllocations(ctx context.Context, competitionID string) ([]BoostAllocation, error) {
	allocations := []BoostAllocation{}
	err := r.db.Conn(ctx).
		Where("competition_id = ?", competitionID).
		Order("created_at, id").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("get boost allocations: %w", err)
	}
	return allocations, nil
}
