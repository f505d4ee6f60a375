package handler

import (
	"time"

	"arenaledger/internal/boost"
	"arenaledger/internal/indexer"
	"arenaledger/internal/ledger"
	"arenaledger/internal/rewards"

	"github.com/ethereum/go-ethereum/common"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// Amounts are decimal strings so that clients never round them.

type BalanceMessage struct {
	TokenAddress  string `json:"tokenAddress"`
	Amount        string `json:"amount"`
	SpecificChain string `json:"specificChain,omitempty"`
	Symbol        string `json:"symbol,omitempty"`
	UpdatedAt     string `json:"updatedAt"`
}

type BalancesMessage struct {
	AgentID       string           `json:"agentId"`
	CompetitionID string           `json:"competitionId"`
	Balances      []BalanceMessage `json:"balances"`
}

type RootMessage struct {
	Root          string `json:"root"`
	CompetitionID string `json:"competitionId"`
}

type ClaimMessage struct {
	CompetitionID string   `json:"competitionId"`
	Address       string   `json:"address"`
	Amount        string   `json:"amount"`
	Proof         []string `json:"proof"`
	Root          string   `json:"root"`
}

type BoostChangeMessage struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	IdemKey   string `json:"idemKey"`
	Meta      string `json:"meta,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type BoostsMessage struct {
	UserID        string               `json:"userId"`
	CompetitionID string               `json:"competitionId"`
	Balance       string               `json:"balance"`
	Changes       []BoostChangeMessage `json:"changes"`
}

type StakeChangeMessage struct {
	Kind        string `json:"kind"`
	DeltaAmount string `json:"deltaAmount"`
	TxHash      string `json:"txHash"`
	LogIndex    uint   `json:"logIndex"`
	BlockNumber uint64 `json:"blockNumber"`
}

type StakeMessage struct {
	ID              string               `json:"id"`
	Wallet          string               `json:"wallet"`
	Amount          string               `json:"amount"`
	Status          string               `json:"status"`
	StakedAt        string               `json:"stakedAt"`
	CanUnstakeAfter string               `json:"canUnstakeAfter"`
	Changes         []StakeChangeMessage `json:"changes"`
}

func toBalancesMessage(agentID, competitionID string, balances []ledger.Balance) BalancesMessage {
	msg := BalancesMessage{
		AgentID:       agentID,
		CompetitionID: competitionID,
		Balances:      make([]BalanceMessage, 0, len(balances)),
	}
	for _, b := range balances {
		amount := "0"
		if b.Amount != nil {
			amount = b.Amount.String()
		}
		msg.Balances = append(msg.Balances, BalanceMessage{
			TokenAddress:  b.TokenAddress,
			Amount:        amount,
			SpecificChain: b.SpecificChain,
			Symbol:        b.Symbol,
			UpdatedAt:     b.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return msg
}

func toClaimMessage(claim rewards.Claim) ClaimMessage {
	proof := make([]string, 0, len(claim.Proof))
	for _, p := range claim.Proof {
		proof = append(proof, p.Hex())
	}
	return ClaimMessage{
		CompetitionID: claim.CompetitionID,
		Address:       claim.Address.Hex(),
		Amount:        claim.Amount.String(),
		Proof:         proof,
		Root:          claim.Root.Hex(),
	}
}

func toBoostsMessage(summary boost.Summary) BoostsMessage {
	msg := BoostsMessage{
		UserID:        summary.UserID,
		CompetitionID: summary.CompetitionID,
		Balance:       "0",
		Changes:       make([]BoostChangeMessage, 0, len(summary.Changes)),
	}
	if summary.Balance != nil {
		msg.Balance = summary.Balance.String()
	}
	for _, c := range summary.Changes {
		msg.Changes = append(msg.Changes, BoostChangeMessage{
			ID:        c.ID,
			Amount:    c.Amount.String(),
			IdemKey:   c.IdemKey,
			Meta:      c.Meta,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return msg
}

func toStakeMessage(history indexer.StakeHistory, asOf time.Time) StakeMessage {
	stake := history.Stake
	msg := StakeMessage{
		ID:              stake.ID.String(),
		Wallet:          stake.Wallet.Hex(),
		Amount:          stake.Amount.String(),
		Status:          string(stake.Status(asOf)),
		StakedAt:        stake.StakedAt.UTC().Format(time.RFC3339),
		CanUnstakeAfter: stake.CanUnstakeAfter.UTC().Format(time.RFC3339),
		Changes:         make([]StakeChangeMessage, 0, len(history.Changes)),
	}
	for _, c := range history.Changes {
		msg.Changes = append(msg.Changes, StakeChangeMessage{
			Kind:        c.Kind,
			DeltaAmount: c.DeltaAmount.String(),
			TxHash:      common.BytesToHash(c.TxHash).Hex(),
			LogIndex:    c.LogIndex,
			BlockNumber: c.BlockNumber,
		})
	}
	return msg
}
