package indexer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"arenaledger/internal/repository"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jellydator/validation"
)

var (
	ErrUnknownEvent   = errors.New("unknown event")
	ErrMalformedEvent = errors.New("malformed event")
)

const stakingABI = `[
	{"type":"event","name":"Stake","anonymous":false,"inputs":[
		{"name":"staker","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"amount","type":"uint256","indexed":false},
		{"name":"startTime","type":"uint256","indexed":false},
		{"name":"lockupEndTime","type":"uint256","indexed":false}]},
	{"type":"event","name":"Unstake","anonymous":false,"inputs":[
		{"name":"staker","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"amountToUnstake","type":"uint256","indexed":false},
		{"name":"withdrawAllowedTime","type":"uint256","indexed":false}]},
	{"type":"event","name":"Relock","anonymous":false,"inputs":[
		{"name":"staker","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"updatedOldStakeAmount","type":"uint256","indexed":false}]},
	{"type":"event","name":"Withdraw","anonymous":false,"inputs":[
		{"name":"staker","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"amount","type":"uint256","indexed":false}]}
]`

var eventKinds = map[string]string{
	"Stake":    repository.StakeKindStake,
	"Unstake":  repository.StakeKindUnstake,
	"Relock":   repository.StakeKindRelock,
	"Withdraw": repository.StakeKindWithdraw,
}

// Event is a decoded staking contract log.
type Event struct {
	Kind        string
	TxHash      common.Hash
	LogIndex    uint
	BlockNumber uint64
	BlockHash   common.Hash
	BlockTime   time.Time

	Staker  common.Address
	TokenID *big.Int
	// Amount is the staked, unstaked, relocked or withdrawn amount depending on Kind.
	Amount *big.Int

	StartTime           time.Time
	LockupEndTime       time.Time
	WithdrawAllowedTime time.Time
}

func (e Event) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Kind, validation.Required, validation.In(
			repository.StakeKindStake,
			repository.StakeKindUnstake,
			repository.StakeKindRelock,
			repository.StakeKindWithdraw,
		)),
		validation.Field(&e.TokenID, validation.NotNil),
		validation.Field(&e.Amount, validation.NotNil, validation.By(nonNegative)),
		validation.Field(&e.LockupEndTime, validation.When(e.Kind == repository.StakeKindStake,
			validation.By(notBefore(e.StartTime)))),
	)
}

func nonNegative(value any) error {
	v, _ := value.(*big.Int)
	if v != nil && v.Sign() < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func notBefore(start time.Time) validation.RuleFunc {
	return func(value any) error {
		end, _ := value.(time.Time)
		if end.Before(start) {
			return errors.New("must not be before the start time")
		}
		return nil
	}
}

// Payload is the JSON stored with the raw event.
func (e Event) Payload() string {
	payload := map[string]string{
		"staker":   e.Staker.Hex(),
		"token_id": e.TokenID.String(),
		"amount":   e.Amount.String(),
	}
	switch e.Kind {
	case repository.StakeKindStake:
		payload["start_time"] = e.StartTime.Format(time.RFC3339)
		payload["lockup_end_time"] = e.LockupEndTime.Format(time.RFC3339)
	case repository.StakeKindUnstake:
		payload["withdraw_allowed_time"] = e.WithdrawAllowedTime.Format(time.RFC3339)
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

type Decoder struct {
	abi abi.ABI
}

func NewDecoder() (*Decoder, error) {
	parsed, err := abi.JSON(strings.NewReader(stakingABI))
	if err != nil {
		return nil, fmt.Errorf("parse staking abi: %w", err)
	}
	return &Decoder{abi: parsed}, nil
}

// Topics filters logs down to the staking events.
func (d *Decoder) Topics() [][]common.Hash {
	ids := make([]common.Hash, 0, len(eventKinds))
	for _, name := range []string{"Stake", "Unstake", "Relock", "Withdraw"} {
		ids = append(ids, d.abi.Events[name].ID)
	}
	return [][]common.Hash{ids}
}

func (d *Decoder) Decode(l types.Log) (Event, error) {
	if len(l.Topics) == 0 {
		return Event{}, fmt.Errorf("%w: log %s:%d has no topics", ErrUnknownEvent, l.TxHash.Hex(), l.Index)
	}
	event, err := d.abi.EventByID(l.Topics[0])
	if err != nil {
		return Event{}, fmt.Errorf("%w: %s", ErrUnknownEvent, l.Topics[0].Hex())
	}
	if len(l.Topics) != 3 {
		return Event{}, fmt.Errorf("%w: %s expects 3 topics, got %d", ErrMalformedEvent, event.Name, len(l.Topics))
	}

	values := map[string]any{}
	if err := d.abi.UnpackIntoMap(values, event.Name, l.Data); err != nil {
		return Event{}, fmt.Errorf("%w: unpack %s: %v", ErrMalformedEvent, event.Name, err)
	}

	ev := Event{
		Kind:        eventKinds[event.Name],
		TxHash:      l.TxHash,
		LogIndex:    l.Index,
		BlockNumber: l.BlockNumber,
		BlockHash:   l.BlockHash,
		Staker:      common.BytesToAddress(l.Topics[1].Bytes()),
		TokenID:     new(big.Int).SetBytes(l.Topics[2].Bytes()),
	}

	switch ev.Kind {
	case repository.StakeKindStake:
		ev.Amount = bigValue(values, "amount")
		ev.StartTime = unixValue(values, "startTime")
		ev.LockupEndTime = unixValue(values, "lockupEndTime")
	case repository.StakeKindUnstake:
		ev.Amount = bigValue(values, "amountToUnstake")
		ev.WithdrawAllowedTime = unixValue(values, "withdrawAllowedTime")
	case repository.StakeKindRelock:
		ev.Amount = bigValue(values, "updatedOldStakeAmount")
	case repository.StakeKindWithdraw:
		ev.Amount = bigValue(values, "amount")
	}

	if err := ev.Validate(); err != nil {
		return Event{}, fmt.Errorf("%w: %s: %v", ErrMalformedEvent, event.Name, err)
	}
	return ev, nil
}

func bigValue(values map[string]any, name string) *big.Int {
	v, _ := values[name].(*big.Int)
	return v
}

func unixValue(values map[string]any, name string) time.Time {
	v := bigValue(values, name)
	if v == nil || !v.IsInt64() {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}
