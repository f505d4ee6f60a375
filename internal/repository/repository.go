package repository

import (
	"errors"
	"fmt"
)

var (
	ErrBalanceNotFound     = errors.New("balance not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrStakeNotFound       = errors.New("stake not found")
	ErrNegativeStake       = errors.New("stake amount would become negative")
	ErrUserNotFound        = errors.New("user not found")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrRootNotFound        = errors.New("rewards root not found")
	ErrRootMismatch        = errors.New("competition already has a different rewards root")
)

// OwnedModels lists the tables this service creates and writes.
func OwnedModels() []any {
	return []any{
		&Balance{},
		&Trade{},
		&IndexingEvent{},
		&Stake{},
		&StakeChange{},
		&BoostBalance{},
		&BoostChange{},
		&StakeBoostAward{},
		&Reward{},
		&RewardsTree{},
		&RewardsRoot{},
	}
}

// CollaboratorModels lists the tables maintained by other services that are
// only read here.
func CollaboratorModels() []any {
	return []any{
		&User{},
		&Competition{},
		&LeaderboardEntry{},
		&BoostAllocation{},
	}
}

// Migrate creates or updates the owned tables.
func Migrate(db Storage) error {
	if err := db.MigrateTable(OwnedModels()...); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}
