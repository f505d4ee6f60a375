package payload

import (
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var (
	idRegex      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	hashRegex    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	tokenIDRegex = regexp.MustCompile(`^[0-9]{1,78}$`)
)

type BalancesRequest struct {
	AgentID       string
	CompetitionID string
}

func (b BalancesRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.AgentID, validation.Required, validation.Match(idRegex)),
		validation.Field(&b.CompetitionID, validation.Required, validation.Match(idRegex)),
	)
}

type RootRequest struct {
	Root string
}

func (r RootRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Root, validation.Required, validation.Match(hashRegex)),
	)
}

func (r RootRequest) Hash() common.Hash {
	return common.HexToHash(r.Root)
}

type ProofRequest struct {
	CompetitionID string
	Address       string
}

func (p ProofRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CompetitionID, validation.Required, validation.Match(idRegex)),
		validation.Field(&p.Address, validation.Required, validation.Match(addressRegex)),
	)
}

func (p ProofRequest) Wallet() common.Address {
	return common.HexToAddress(p.Address)
}

type BoostsRequest struct {
	CompetitionID string
	UserID        string
}

func (b BoostsRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.CompetitionID, validation.Required, validation.Match(idRegex)),
		validation.Field(&b.UserID, validation.Required, validation.Match(idRegex)),
	)
}

type StakeRequest struct {
	StakeID string
}

func (s StakeRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.StakeID, validation.Required, validation.Match(tokenIDRegex)),
	)
}

// ID is only meaningful after Validate succeeded.
func (s StakeRequest) ID() *big.Int {
	id, _ := new(big.Int).SetString(s.StakeID, 10)
	return id
}
