package rewards

import (
	"context"

	"arenaledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CommitRewards(ctx context.Context, competitionID string, rewards []repository.Reward, nodes []repository.RewardsTree, root []byte) (bool, error)
	FindCompetitionByRoot(ctx context.Context, root []byte) (string, error)
	GetRoot(ctx context.Context, competitionID string) (repository.RewardsRoot, error)
	GetTree(ctx context.Context, competitionID string) ([]repository.RewardsTree, error)
	GetRewards(ctx context.Context, competitionID string) ([]repository.Reward, error)
}

//counterfeiter:generate -o fake -fake-name Competitions . Competitions
type Competitions interface {
	GetCompetition(ctx context.Context, id string) (repository.Competition, error)
	GetLeaderboard(ctx context.Context, competitionID string) ([]repository.LeaderboardEntry, error)
	GetBoostAllocations(ctx context.Context, competitionID string) ([]repository.BoostAllocation, error)
}
