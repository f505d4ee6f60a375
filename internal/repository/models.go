package repository

import (
	"time"

	"arenaledger/internal/db"

	"github.com/shopspring/decimal"
)

// Balance is one token position of an agent inside a competition.
type Balance struct {
	AgentID       string     `gorm:"primaryKey;type:varchar(64)"`
	CompetitionID string     `gorm:"primaryKey;type:varchar(64)"`
	TokenAddress  string     `gorm:"primaryKey;type:varchar(128)"`
	Amount        db.Numeric `gorm:"type:numeric(78,0);not null"`
	SpecificChain string     `gorm:"size:32"`
	Symbol        string     `gorm:"size:32"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Trade struct {
	ID                string          `gorm:"primaryKey;type:varchar(36)"`
	AgentID           string          `gorm:"type:varchar(64);not null;index:idx_trades_agent_competition"`
	CompetitionID     string          `gorm:"type:varchar(64);not null;index:idx_trades_agent_competition"`
	FromToken         string          `gorm:"type:varchar(128);not null"`
	ToToken           string          `gorm:"type:varchar(128);not null"`
	FromAmount        db.Numeric      `gorm:"type:numeric(78,0);not null"`
	ToAmount          db.Numeric      `gorm:"type:numeric(78,0);not null"`
	Price             decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	Success           bool            `gorm:"not null"`
	Reason            string          `gorm:"type:text"`
	FromSpecificChain string          `gorm:"size:32"`
	ToSpecificChain   string          `gorm:"size:32"`
	FromTokenSymbol   string          `gorm:"size:32"`
	ToTokenSymbol     string          `gorm:"size:32"`
	Timestamp         time.Time       `gorm:"not null;index"`
}

// IndexingEvent mirrors a raw chain log. Rows are never updated or deleted.
type IndexingEvent struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	TransactionHash []byte    `gorm:"type:bytea;not null;uniqueIndex:uq_indexing_events_tx_log"`
	LogIndex        uint      `gorm:"not null;uniqueIndex:uq_indexing_events_tx_log"`
	Type            string    `gorm:"size:32;not null;index"`
	BlockNumber     uint64    `gorm:"not null;index"`
	BlockHash       []byte    `gorm:"type:bytea;not null"`
	BlockTimestamp  time.Time `gorm:"not null"`
	Payload         string    `gorm:"type:text;not null"`
	CreatedAt       time.Time
}

// Stake is the current projection of an on-chain stake receipt. Its status is
// derived from the lifecycle timestamps and is never stored.
type Stake struct {
	ID               db.Numeric `gorm:"primaryKey;type:numeric(78,0);autoIncrement:false"`
	Wallet           []byte     `gorm:"type:bytea;not null;index"`
	Amount           db.Numeric `gorm:"type:numeric(78,0);not null"`
	StakedAt         time.Time  `gorm:"not null"`
	CanUnstakeAfter  time.Time  `gorm:"not null"`
	UnstakedAt       *time.Time
	CanWithdrawAfter *time.Time
	WithdrawnAt      *time.Time
	RelockedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StakeChange is the journal entry written together with every stake mutation.
type StakeChange struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)"`
	StakeID     db.Numeric `gorm:"type:numeric(78,0);not null;index"`
	Wallet      []byte     `gorm:"type:bytea;not null"`
	DeltaAmount db.Numeric `gorm:"type:numeric(78,0);not null"`
	Kind        string     `gorm:"size:16;not null"`
	TxHash      []byte     `gorm:"type:bytea;not null;uniqueIndex:uq_stake_changes_tx_log"`
	LogIndex    uint       `gorm:"not null;uniqueIndex:uq_stake_changes_tx_log"`
	BlockNumber uint64     `gorm:"not null;index"`
	BlockHash   []byte     `gorm:"type:bytea;not null"`
	CreatedAt   time.Time
}

type BoostBalance struct {
	UserID        string     `gorm:"primaryKey;type:varchar(64)"`
	CompetitionID string     `gorm:"primaryKey;type:varchar(64)"`
	Balance       db.Numeric `gorm:"type:numeric(78,0);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BoostChange struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)"`
	UserID        string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_boost_changes_idem"`
	CompetitionID string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_boost_changes_idem"`
	IdemKey       string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_boost_changes_idem"`
	DeltaAmount   db.Numeric `gorm:"type:numeric(78,0);not null"`
	Meta          string     `gorm:"type:text"`
	CreatedAt     time.Time
}

// StakeBoostAward links a stake to the boost change it produced in a competition.
type StakeBoostAward struct {
	StakeID       db.Numeric `gorm:"primaryKey;type:numeric(78,0);autoIncrement:false"`
	CompetitionID string     `gorm:"primaryKey;type:varchar(64)"`
	BoostChangeID string     `gorm:"type:varchar(36);not null"`
	CreatedAt     time.Time
}

type Reward struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)"`
	CompetitionID string     `gorm:"type:varchar(64);not null;index"`
	Address       []byte     `gorm:"type:bytea;not null"`
	Amount        db.Numeric `gorm:"type:numeric(78,0);not null"`
	UserID        string     `gorm:"type:varchar(64)"`
	CompetitorID  *string    `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
}

type RewardsTree struct {
	CompetitionID string `gorm:"primaryKey;type:varchar(64)"`
	Level         int    `gorm:"primaryKey;autoIncrement:false"`
	Idx           int    `gorm:"primaryKey;autoIncrement:false"`
	Hash          []byte `gorm:"type:bytea;not null"`
}

func (RewardsTree) TableName() string {
	return "rewards_tree"
}

type RewardsRoot struct {
	CompetitionID string `gorm:"primaryKey;type:varchar(64)"`
	RootHash      []byte `gorm:"type:bytea;not null;uniqueIndex"`
	CreatedAt     time.Time
}

// Tables owned by collaborators. They are read here and only migrated by tests.

type User struct {
	ID            string `gorm:"primaryKey;type:varchar(64)"`
	WalletAddress []byte `gorm:"type:bytea;not null;uniqueIndex"`
	Name          string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
}

type Competition struct {
	ID                  string     `gorm:"primaryKey;type:varchar(64)"`
	Name                string     `gorm:"type:varchar(255);not null"`
	Status              string     `gorm:"size:16;not null;index"`
	StartDate           *time.Time
	EndDate             *time.Time
	VotingEnabled       bool       `gorm:"not null"`
	VotingStartDate     *time.Time
	VotingEndDate       *time.Time
	BoosterPrizePool    db.Numeric `gorm:"type:numeric(78,0);not null"`
	CompetitorPrizePool db.Numeric `gorm:"type:numeric(78,0);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type LeaderboardEntry struct {
	CompetitionID string `gorm:"primaryKey;type:varchar(64)"`
	AgentID       string `gorm:"primaryKey;type:varchar(64)"`
	Rank          int    `gorm:"not null"`
	OwnerID       string `gorm:"type:varchar(64);not null"`
	OwnerWallet   []byte `gorm:"type:bytea;not null"`
}

type BoostAllocation struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)"`
	CompetitionID string     `gorm:"type:varchar(64);not null;index"`
	UserID        string     `gorm:"type:varchar(64);not null"`
	Wallet        []byte     `gorm:"type:bytea;not null"`
	AgentID       string     `gorm:"type:varchar(64);not null"`
	Amount        db.Numeric `gorm:"type:numeric(78,0);not null"`
	CreatedAt     time.Time  `gorm:"not null"`
}

const (
	CompetitionStatusPending = "pending"
	CompetitionStatusActive  = "active"
	CompetitionStatusEnded   = "ended"
)
