package ledger

import (
	"errors"
	"math/big"
	"time"

	"arenaledger/internal/repository"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type Balance struct {
	AgentID       string    `json:"agentId"`
	CompetitionID string    `json:"competitionId"`
	TokenAddress  string    `json:"tokenAddress"`
	Amount        *big.Int  `json:"amount"`
	SpecificChain string    `json:"specificChain,omitempty"`
	Symbol        string    `json:"symbol,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TokenMeta is descriptive token data stored next to a balance.
type TokenMeta struct {
	SpecificChain string
	Symbol        string
}

// InitialBalance seeds one token when an agent joins a competition.
type InitialBalance struct {
	TokenAddress string
	Amount       *big.Int
	TokenMeta
}

func (b InitialBalance) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.TokenAddress, validation.Required),
		validation.Field(&b.Amount, validation.By(nonNegative)),
	)
}

type TradeRequest struct {
	AgentID       string
	CompetitionID string
	FromToken     string
	ToToken       string
	FromAmount    *big.Int
	ToAmount      *big.Int
	// Price defaults to ToAmount/FromAmount when zero.
	Price     decimal.Decimal
	Reason    string
	From      TokenMeta
	To        TokenMeta
	Timestamp time.Time
}

func (r TradeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AgentID, validation.Required),
		validation.Field(&r.CompetitionID, validation.Required),
		validation.Field(&r.FromToken, validation.Required),
		validation.Field(&r.ToToken, validation.Required),
		validation.Field(&r.FromAmount, validation.By(positive)),
		validation.Field(&r.ToAmount, validation.By(positive)),
	)
}

type Trade struct {
	ID            string          `json:"id"`
	AgentID       string          `json:"agentId"`
	CompetitionID string          `json:"competitionId"`
	FromToken     string          `json:"fromToken"`
	ToToken       string          `json:"toToken"`
	FromAmount    *big.Int        `json:"fromAmount"`
	ToAmount      *big.Int        `json:"toAmount"`
	Price         decimal.Decimal `json:"price"`
	Success       bool            `json:"success"`
	Reason        string          `json:"reason,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

func positive(value any) error {
	v, _ := value.(*big.Int)
	if v == nil || v.Sign() <= 0 {
		return errors.New("must be a positive integer")
	}
	return nil
}

func nonNegative(value any) error {
	v, _ := value.(*big.Int)
	if v == nil || v.Sign() < 0 {
		return errors.New("must be a non-negative integer")
	}
	return nil
}

func balanceFromRecord(b repository.Balance) Balance {
	return Balance{
		AgentID:       b.AgentID,
		CompetitionID: b.CompetitionID,
		TokenAddress:  b.TokenAddress,
		Amount:        b.Amount.Int(),
		SpecificChain: b.SpecificChain,
		Symbol:        b.Symbol,
		UpdatedAt:     b.UpdatedAt,
	}
}

func tradeFromRecord(t repository.Trade) Trade {
	return Trade{
		ID:            t.ID,
		AgentID:       t.AgentID,
		CompetitionID: t.CompetitionID,
		FromToken:     t.FromToken,
		ToToken:       t.ToToken,
		FromAmount:    t.FromAmount.Int(),
		ToAmount:      t.ToAmount.Int(),
		Price:         t.Price,
		Success:       t.Success,
		Reason:        t.Reason,
		Timestamp:     t.Timestamp,
	}
}
