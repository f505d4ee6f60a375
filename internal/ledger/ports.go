package ledger

import (
	"context"

	"arenaledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetBalances(ctx context.Context, agentID, competitionID string) ([]repository.Balance, error)
	UpdateBalance(ctx context.Context, delta repository.BalanceDelta) (repository.Balance, error)
	ResetBalances(ctx context.Context, agentID, competitionID string, balances []repository.Balance) error
	SettleTrade(ctx context.Context, trade repository.Trade) (repository.Trade, error)
	GetTrades(ctx context.Context, agentID, competitionID string) ([]repository.Trade, error)
}

// BalanceCache shadows balance reads. It is never authoritative and every
// write path invalidates the entries it touches. Invalidate bumps the entry
// version; Set stores only while the version is still the one read before
// loading the balances, and reports whether it stored.
//
//counterfeiter:generate -o fake -fake-name BalanceCache . BalanceCache
type BalanceCache interface {
	Get(ctx context.Context, competitionID, agentID string) ([]Balance, bool, error)
	Version(ctx context.Context, competitionID, agentID string) (uint64, error)
	Set(ctx context.Context, competitionID, agentID string, version uint64, balances []Balance) (bool, error)
	Invalidate(ctx context.Context, competitionID, agentID string) error
	InvalidateCompetition(ctx context.Context, competitionID string) error
}
