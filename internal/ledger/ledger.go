package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"arenaledger/internal/db"
	"arenaledger/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceNotFound     = errors.New("balance not found")
	ErrInvalidTrade        = errors.New("invalid trade")
	ErrInvalidBalance      = errors.New("invalid balance")
)

// Ledger owns agent balances and trade settlement. The database is the only
// source of truth; the cache only shadows reads.
type Ledger struct {
	logs  *zap.SugaredLogger
	repo  Repository
	cache BalanceCache
	now   func() time.Time
}

func NewLedger(logger *zap.SugaredLogger, repo Repository, cache BalanceCache) *Ledger {
	return &Ledger{
		logs:  logger,
		repo:  repo,
		cache: cache,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// UpdateBalance applies a signed delta to one balance. A credit creates the
// row when needed; a debit never lets the amount go below zero.
func (l *Ledger) UpdateBalance(ctx context.Context, agentID, competitionID, token string, delta *big.Int, meta TokenMeta) (Balance, error) {
	if delta == nil {
		return Balance{}, fmt.Errorf("%w: delta is required", ErrInvalidBalance)
	}

	record, err := l.repo.UpdateBalance(ctx, repository.BalanceDelta{
		AgentID:       agentID,
		CompetitionID: competitionID,
		TokenAddress:  token,
		Delta:         delta,
		SpecificChain: meta.SpecificChain,
		Symbol:        meta.Symbol,
	})
	if err != nil {
		return Balance{}, translate(fmt.Errorf("update balance of %s: %w", token, err))
	}
	l.invalidate(ctx, competitionID, agentID)

	l.logs.Debugw("balance updated",
		"agent_id", agentID,
		"competition_id", competitionID,
		"token", token,
		"delta", delta.String(),
		"amount", record.Amount.String())

	return balanceFromRecord(record), nil
}

// ResetBalances replaces all balances of an agent in a competition with the
// initial set, atomically.
func (l *Ledger) ResetBalances(ctx context.Context, agentID, competitionID string, initial []InitialBalance) error {
	records := make([]repository.Balance, 0, len(initial))
	for _, b := range initial {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidBalance, b.TokenAddress, err)
		}
		records = append(records, repository.Balance{
			TokenAddress:  b.TokenAddress,
			Amount:        db.NewNumeric(b.Amount),
			SpecificChain: b.SpecificChain,
			Symbol:        b.Symbol,
		})
	}

	if err := l.repo.ResetBalances(ctx, agentID, competitionID, records); err != nil {
		return fmt.Errorf("reset balances: %w", err)
	}
	l.invalidate(ctx, competitionID, agentID)

	l.logs.Infow("balances reset",
		"agent_id", agentID,
		"competition_id", competitionID,
		"tokens", len(records))

	return nil
}

// SettleTrade debits FromToken and credits ToToken in one transaction and
// records the trade. Either everything is applied or nothing is.
func (l *Ledger) SettleTrade(ctx context.Context, req TradeRequest) (Trade, error) {
	if err := req.Validate(); err != nil {
		return Trade{}, fmt.Errorf("%w: %v", ErrInvalidTrade, err)
	}

	price := req.Price
	if price.IsZero() {
		price = decimal.NewFromBigInt(req.ToAmount, 0).
			DivRound(decimal.NewFromBigInt(req.FromAmount, 0), 18)
	}
	timestamp := req.Timestamp
	if timestamp.IsZero() {
		timestamp = l.now()
	}

	record, err := l.repo.SettleTrade(ctx, repository.Trade{
		ID:                uuid.NewString(),
		AgentID:           req.AgentID,
		CompetitionID:     req.CompetitionID,
		FromToken:         req.FromToken,
		ToToken:           req.ToToken,
		FromAmount:        db.NewNumeric(req.FromAmount),
		ToAmount:          db.NewNumeric(req.ToAmount),
		Price:             price,
		Success:           true,
		Reason:            req.Reason,
		FromSpecificChain: req.From.SpecificChain,
		ToSpecificChain:   req.To.SpecificChain,
		FromTokenSymbol:   req.From.Symbol,
		ToTokenSymbol:     req.To.Symbol,
		Timestamp:         timestamp,
	})
	if err != nil {
		l.logs.Errorw("trade settlement failed",
			"agent_id", req.AgentID,
			"competition_id", req.CompetitionID,
			"from_token", req.FromToken,
			"to_token", req.ToToken,
			"error", err)
		return Trade{}, translate(err)
	}
	l.invalidate(ctx, req.CompetitionID, req.AgentID)

	l.logs.Infow("trade settled",
		"trade_id", record.ID,
		"agent_id", req.AgentID,
		"competition_id", req.CompetitionID,
		"from_token", req.FromToken,
		"from_amount", req.FromAmount.String(),
		"to_token", req.ToToken,
		"to_amount", req.ToAmount.String())

	return tradeFromRecord(record), nil
}

// GetBalances reads through the cache.
func (l *Ledger) GetBalances(ctx context.Context, agentID, competitionID string) ([]Balance, error) {
	cached, found, err := l.cache.Get(ctx, competitionID, agentID)
	if err != nil {
		l.logs.Errorw("balance cache read failed",
			"agent_id", agentID,
			"competition_id", competitionID,
			"error", err)
	}
	if found {
		return cached, nil
	}

	// the version is read before the database so a write that lands in
	// between makes the fill below a noop
	version, err := l.cache.Version(ctx, competitionID, agentID)
	cacheable := err == nil
	if err != nil {
		l.logs.Errorw("balance cache version read failed",
			"agent_id", agentID,
			"competition_id", competitionID,
			"error", err)
	}

	records, err := l.repo.GetBalances(ctx, agentID, competitionID)
	if err != nil {
		return nil, fmt.Errorf("get balances: %w", err)
	}

	balances := make([]Balance, 0, len(records))
	for _, r := range records {
		balances = append(balances, balanceFromRecord(r))
	}

	if !cacheable {
		return balances, nil
	}
	stored, err := l.cache.Set(ctx, competitionID, agentID, version, balances)
	if err != nil {
		l.logs.Errorw("balance cache write failed",
			"agent_id", agentID,
			"competition_id", competitionID,
			"error", err)
	} else if !stored {
		l.logs.Debugw("balances changed while loading, cache not filled",
			"agent_id", agentID,
			"competition_id", competitionID)
	}

	return balances, nil
}

func (l *Ledger) GetBalance(ctx context.Context, agentID, competitionID, token string) (Balance, error) {
	balances, err := l.GetBalances(ctx, agentID, competitionID)
	if err != nil {
		return Balance{}, err
	}
	for _, b := range balances {
		if b.TokenAddress == token {
			return b, nil
		}
	}
	return Balance{}, ErrBalanceNotFound
}

func (l *Ledger) GetTrades(ctx context.Context, agentID, competitionID string) ([]Trade, error) {
	records, err := l.repo.GetTrades(ctx, agentID, competitionID)
	if err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}
	trades := make([]Trade, 0, len(records))
	for _, r := range records {
		trades = append(trades, tradeFromRecord(r))
	}
	return trades, nil
}

// EndCompetition drops every cached balance of the competition.
func (l *Ledger) EndCompetition(ctx context.Context, competitionID string) error {
	if err := l.cache.InvalidateCompetition(ctx, competitionID); err != nil {
		return fmt.Errorf("invalidate competition cache: %w", err)
	}
	l.logs.Infow("competition balance cache cleared", "competition_id", competitionID)
	return nil
}

func (l *Ledger) invalidate(ctx context.Context, competitionID, agentID string) {
	if err := l.cache.Invalidate(ctx, competitionID, agentID); err != nil {
		l.logs.Errorw("balance cache invalidation failed",
			"agent_id", agentID,
			"competition_id", competitionID,
			"error", err)
	}
}

func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrInsufficientBalance):
		return fmt.Errorf("%w: %v", ErrInsufficientBalance, err)
	case errors.Is(err, repository.ErrBalanceNotFound):
		return fmt.Errorf("%w: %v", ErrBalanceNotFound, err)
	default:
		return err
	}
}
