package staking

import (
	"math/big"
	"time"

	"arenaledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
)

type Status string

const (
	StatusLocked            Status = "locked"
	StatusUnlocked          Status = "unlocked"
	StatusUnstaked          Status = "unstaked"
	StatusWithdrawalPending Status = "withdrawal_pending"
	StatusWithdrawn         Status = "withdrawn"
	StatusRelocked          Status = "relocked"
)

// Stake is the domain view of a stake row.
type Stake struct {
	ID               *big.Int
	Wallet           common.Address
	Amount           *big.Int
	StakedAt         time.Time
	CanUnstakeAfter  time.Time
	UnstakedAt       *time.Time
	CanWithdrawAfter *time.Time
	WithdrawnAt      *time.Time
	RelockedAt       *time.Time
}

func FromRecord(s repository.Stake) Stake {
	return Stake{
		ID:               s.ID.Int(),
		Wallet:           common.BytesToAddress(s.Wallet),
		Amount:           s.Amount.Int(),
		StakedAt:         s.StakedAt,
		CanUnstakeAfter:  s.CanUnstakeAfter,
		UnstakedAt:       s.UnstakedAt,
		CanWithdrawAfter: s.CanWithdrawAfter,
		WithdrawnAt:      s.WithdrawnAt,
		RelockedAt:       s.RelockedAt,
	}
}

// Status derives the lifecycle state at asOf. Withdrawn and relocked are
// terminal and take precedence over every other timestamp.
func (s Stake) Status(asOf time.Time) Status {
	switch {
	case s.WithdrawnAt != nil:
		return StatusWithdrawn
	case s.RelockedAt != nil:
		return StatusRelocked
	case s.UnstakedAt != nil:
		if s.CanWithdrawAfter != nil && !asOf.Before(*s.CanWithdrawAfter) {
			return StatusWithdrawalPending
		}
		return StatusUnstaked
	case asOf.Before(s.CanUnstakeAfter):
		return StatusLocked
	default:
		return StatusUnlocked
	}
}

// Active reports whether the stake still locks tokens at asOf.
func (s Stake) Active(asOf time.Time) bool {
	status := s.Status(asOf)
	return status == StatusLocked || status == StatusUnlocked
}
