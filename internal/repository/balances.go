package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"arenaledger/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceDelta describes a signed change to one balance row.
type BalanceDelta struct {
	AgentID       string
	CompetitionID string
	TokenAddress  string
	Delta         *big.Int
	SpecificChain string
	Symbol        string
}

type BalanceRepository struct {
	db Storage
}

func NewBalanceRepository(db Storage) *BalanceRepository {
	return &BalanceRepository{
		db: db,
	}
}

func (r *BalanceRepository) GetBalance(ctx context.Context, agentID, competitionID, token string) (Balance, error) {
	var balance Balance
	err := r.db.Conn(ctx).
		Where("agent_id = ? AND competition_id = ? AND token_address = ?", agentID, competitionID, token).
		Take(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Balance{}, ErrBalanceNotFound
		}
		return Balance{}, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

func (r *BalanceRepository) GetBalances(ctx context.Context, agentID, competitionID string) ([]Balance, error) {
	balances := []Balance{}
	err := r.db.Conn(ctx).
		Where("agent_id = ? AND competition_id = ?", agentID, competitionID).
		Order("token_address").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("get balances: %w", err)
	}
	return balances, nil
}

// UpdateBalance applies a signed delta atomically and returns the resulting row.
func (r *BalanceRepository) UpdateBalance(ctx context.Context, delta BalanceDelta) (Balance, error) {
	var balance Balance
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := applyBalanceDelta(tx, delta, time.Now().UTC()); err != nil {
			return err
		}
		return tx.Where("agent_id = ? AND competition_id = ? AND token_address = ?",
			delta.AgentID, delta.CompetitionID, delta.TokenAddress).
			Take(&balance).Error
	})
	if err != nil {
		return Balance{}, fmt.Errorf("update balance: %w", err)
	}
	return balance, nil
}

// ResetBalances replaces every balance of an agent in a competition.
func (r *BalanceRepository) ResetBalances(ctx context.Context, agentID, competitionID string, balances []Balance) error {
	now := time.Now().UTC()
	rows := make([]Balance, 0, len(balances))
	for _, b := range balances {
		b.AgentID = agentID
		b.CompetitionID = competitionID
		b.CreatedAt = now
		b.UpdatedAt = now
		rows = append(rows, b)
	}

	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		err := tx.Where("agent_id = ? AND competition_id = ?", agentID, competitionID).
			Delete(&Balance{}).Error
		if err != nil {
			return fmt.Errorf("delete balances: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert balances: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset balances: %w", err)
	}
	return nil
}

// SettleTrade debits the source token, credits the destination token and
// records the trade in one transaction.
func (r *BalanceRepository) SettleTrade(ctx context.Context, trade Trade) (Trade, error) {
	debit := BalanceDelta{
		AgentID:       trade.AgentID,
		CompetitionID: trade.CompetitionID,
		TokenAddress:  trade.FromToken,
		Delta:         new(big.Int).Neg(trade.FromAmount.Int()),
		SpecificChain: trade.FromSpecificChain,
		Symbol:        trade.FromTokenSymbol,
	}
	credit := BalanceDelta{
		AgentID:       trade.AgentID,
		CompetitionID: trade.CompetitionID,
		TokenAddress:  trade.ToToken,
		Delta:         trade.ToAmount.Int(),
		SpecificChain: trade.ToSpecificChain,
		Symbol:        trade.ToTokenSymbol,
	}

	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if err := applyBalanceDelta(tx, debit, now); err != nil {
			return fmt.Errorf("debit %s: %w", trade.FromToken, err)
		}
		if err := applyBalanceDelta(tx, credit, now); err != nil {
			return fmt.Errorf("credit %s: %w", trade.ToToken, err)
		}
		if err := tx.Create(&trade).Error; err != nil {
			return fmt.Errorf("insert trade: %w", err)
		}
		return nil
	})
	if err != nil {
		return Trade{}, fmt.Errorf("settle trade: %w", err)
	}
	return trade, nil
}

func (r *BalanceRepository) GetTrades(ctx context.Context, agentID, competitionID string) ([]Trade, error) {
	trades := []Trade{}
	err := r.db.Conn(ctx).
		Where("agent_id = ? AND competition_id = ?", agentID, competitionID).
		Order("timestamp, id").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}
	return trades, nil
}

// applyBalanceDelta never reads before writing. Credits upsert by adding to
// the stored amount, debits are a guarded update that touches no row when the
// result would go negative.
func applyBalanceDelta(tx *gorm.DB, d BalanceDelta, now time.Time) error {
	if d.Delta == nil {
		d.Delta = new(big.Int)
	}

	if d.Delta.Sign() >= 0 {
		row := Balance{
			AgentID:       d.AgentID,
			CompetitionID: d.CompetitionID,
			TokenAddress:  d.TokenAddress,
			Amount:        db.NewNumeric(d.Delta),
			SpecificChain: d.SpecificChain,
			Symbol:        d.Symbol,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "agent_id"}, {Name: "competition_id"}, {Name: "token_address"}},
			DoUpdates: clause.Assignments(map[string]any{
				"amount":     gorm.Expr("balances.amount + excluded.amount"),
				"updated_at": now,
			}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("upsert balance: %w", err)
		}
		return nil
	}

	delta := d.Delta.String()
	res := tx.Model(&Balance{}).
		Where("agent_id = ? AND competition_id = ? AND token_address = ?", d.AgentID, d.CompetitionID, d.TokenAddress).
		Where("amount + ? >= 0", delta).
		Updates(map[string]any{
			"amount":     gorm.Expr("amount + ?", delta),
			"updated_at": now,
		})
	if res.Error != nil {
		return fmt.Errorf("debit balance: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	err := tx.Model(&Balance{}).
		Where("agent_id = ? AND competition_id = ? AND token_address = ?", d.AgentID, d.CompetitionID, d.TokenAddress).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check balance: %w", err)
	}
	if count == 0 {
		return ErrBalanceNotFound
	}
	return ErrInsufficientBalance
}
