package scheduler

import (
	"context"

	"arenaledger/internal/repository"
	"arenaledger/internal/rewards"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BoostSweeper . BoostSweeper
type BoostSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

//counterfeiter:generate -o fake -fake-name RewardsAllocator . RewardsAllocator
type RewardsAllocator interface {
	Allocate(ctx context.Context, competitionID string) (rewards.Commitment, error)
}

//counterfeiter:generate -o fake -fake-name Competitions . Competitions
type Competitions interface {
	EndedWithoutRewards(ctx context.Context) ([]repository.Competition, error)
}

//counterfeiter:generate -o fake -fake-name BalanceCloser . BalanceCloser
type BalanceCloser interface {
	EndCompetition(ctx context.Context, competitionID string) error
}
