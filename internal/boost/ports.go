package boost

import (
	"context"
	"math/big"
	"time"

	"arenaledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	ApplyGrants(ctx context.Context, grants []repository.BoostGrant) ([]bool, error)
	GetBoostBalance(ctx context.Context, userID, competitionID string) (*big.Int, error)
	GetBoostChanges(ctx context.Context, userID, competitionID string) ([]repository.BoostChange, error)
	AwardedStakeIDs(ctx context.Context, competitionID string) ([]*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name Competitions . Competitions
type Competitions interface {
	GetCompetition(ctx context.Context, id string) (repository.Competition, error)
	VotingOpen(ctx context.Context, now time.Time) ([]repository.Competition, error)
	GetUserByWallet(ctx context.Context, wallet []byte) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name Stakes . Stakes
type Stakes interface {
	ActiveStakes(ctx context.Context) ([]repository.Stake, error)
	StakesByWallet(ctx context.Context, wallet []byte) ([]repository.Stake, error)
}
