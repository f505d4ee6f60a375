package boost

import (
	"fmt"
	"math/big"
	"time"

	"arenaledger/internal/repository"
)

type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeNoop    Outcome = "noop"
)

// Award is the result of one boost grant attempt.
type Award struct {
	CompetitionID string
	UserID        string
	StakeID       *big.Int
	Amount        *big.Int
	Outcome       Outcome
}

func (a Award) Applied() bool {
	return a.Outcome == OutcomeApplied
}

// Summary is a user's boost balance in a competition with the changes that
// built it, oldest first.
type Summary struct {
	UserID        string
	CompetitionID string
	Balance       *big.Int
	Changes       []Change
}

type Change struct {
	ID        string
	Amount    *big.Int
	IdemKey   string
	Meta      string
	CreatedAt time.Time
}

// Window is a competition voting window.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowOf returns the voting window of a competition.
func WindowOf(c repository.Competition) (Window, error) {
	if c.VotingStartDate == nil || c.VotingEndDate == nil {
		return Window{}, fmt.Errorf("%w: competition %s", ErrMissingVotingDates, c.ID)
	}
	if !c.VotingEndDate.After(*c.VotingStartDate) {
		return Window{}, fmt.Errorf("%w: competition %s ends voting at %s before it starts at %s",
			ErrInvalidBoostWindow, c.ID, c.VotingEndDate.Format(time.RFC3339), c.VotingStartDate.Format(time.RFC3339))
	}
	return Window{Start: *c.VotingStartDate, End: *c.VotingEndDate}, nil
}

func StakeKey(competitionID string, stakeID *big.Int) string {
	return fmt.Sprintf("stake:%s:%s", competitionID, stakeID)
}

func NoStakeKey(competitionID, reason string) string {
	return fmt.Sprintf("nostake:%s:%s", competitionID, reason)
}
