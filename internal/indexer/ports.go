package indexer

import (
	"context"
	"math/big"
	"time"

	"arenaledger/internal/boost"
	"arenaledger/internal/repository"
	"arenaledger/internal/staking"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	RecordEvent(ctx context.Context, event repository.IndexingEvent) (bool, error)
	ApplyStakeChange(ctx context.Context, change repository.StakeChange, update repository.StakeUpdate) (bool, error)
	GetStake(ctx context.Context, id *big.Int) (repository.Stake, error)
	GetStakeChanges(ctx context.Context, id *big.Int) ([]repository.StakeChange, error)
	LastAppliedBlock(ctx context.Context) (uint64, bool, error)
}

//counterfeiter:generate -o fake -fake-name BoostAwarder . BoostAwarder
type BoostAwarder interface {
	InitForStake(ctx context.Context, stake staking.Stake) ([]boost.Award, error)
}

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	LatestBlock(ctx context.Context) (uint64, error)
	FetchLogs(ctx context.Context, contract common.Address, topics [][]common.Hash, from, to uint64) ([]types.Log, error)
	BlockTimes(ctx context.Context, blocks []uint64) (map[uint64]time.Time, error)
}

//counterfeiter:generate -o fake -fake-name EventProcessor . EventProcessor
type EventProcessor interface {
	Process(ctx context.Context, event Event) (Outcome, error)
	LastAppliedBlock(ctx context.Context) (uint64, bool, error)
}
