package handler

import (
	"context"
	"math/big"

	"arenaledger/internal/boost"
	"arenaledger/internal/indexer"
	"arenaledger/internal/ledger"
	"arenaledger/internal/rewards"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BalanceService . BalanceService
type BalanceService interface {
	GetBalances(ctx context.Context, agentID, competitionID string) ([]ledger.Balance, error)
}

//counterfeiter:generate -o fake -fake-name RewardsService . RewardsService
type RewardsService interface {
	FindCompetitionByRoot(ctx context.Context, root common.Hash) (string, error)
	Proof(ctx context.Context, competitionID string, address common.Address) (rewards.Claim, error)
}

//counterfeiter:generate -o fake -fake-name BoostService . BoostService
type BoostService interface {
	Summary(ctx context.Context, userID, competitionID string) (boost.Summary, error)
}

//counterfeiter:generate -o fake -fake-name StakeService . StakeService
type StakeService interface {
	StakeHistory(ctx context.Context, id *big.Int) (indexer.StakeHistory, error)
}
