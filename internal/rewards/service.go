package rewards

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"arenaledger/internal/db"
	"arenaledger/internal/merkle"
	"arenaledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrCompetitionNotEnded = errors.New("competition has not ended")
	ErrRootMismatch        = errors.New("competition already has a different rewards root")
	ErrRootNotFound        = errors.New("rewards root not found")
	ErrNotCommitted        = errors.New("rewards not committed")
	ErrNoReward            = errors.New("address has no reward")
	ErrCorruptTree         = errors.New("stored rewards tree is inconsistent")
)

type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeNoop    Outcome = "noop"
)

type Config struct {
	PrizePoolDecayRate decimal.Decimal
	BoostTimeDecayRate *decimal.Decimal
}

// Commitment is the result of allocating a competition's rewards.
type Commitment struct {
	CompetitionID string
	Root          common.Hash
	Leaves        int
	Outcome       Outcome
}

// Claim is what a recipient needs to claim on chain.
type Claim struct {
	CompetitionID string
	Address       common.Address
	Amount        *big.Int
	Proof         []common.Hash
	Root          common.Hash
}

type Service struct {
	logs         *zap.SugaredLogger
	repo         Repository
	competitions Competitions
	cfg          Config
}

func NewService(logger *zap.SugaredLogger, repo Repository, competitions Competitions, cfg Config) *Service {
	return &Service{
		logs:         logger,
		repo:         repo,
		competitions: competitions,
		cfg:          cfg,
	}
}

// Allocate computes booster and competitor rewards of an ended competition
// and commits them with their Merkle tree. A competition that pays nothing
// still commits a root so it is settled once.
func (s *Service) Allocate(ctx context.Context, competitionID string) (Commitment, error) {
	competition, err := s.competitions.GetCompetition(ctx, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return Commitment{}, fmt.Errorf("%w: %s", ErrCompetitionNotFound, competitionID)
		}
		return Commitment{}, fmt.Errorf("get competition: %w", err)
	}
	if competition.Status != repository.CompetitionStatusEnded {
		return Commitment{}, fmt.Errorf("%w: %s is %s", ErrCompetitionNotEnded, competitionID, competition.Status)
	}
	window, err := rewardsWindow(competition)
	if err != nil {
		return Commitment{}, err
	}

	entries, err := s.competitions.GetLeaderboard(ctx, competitionID)
	if err != nil {
		return Commitment{}, fmt.Errorf("get leaderboard: %w", err)
	}
	allocations, err := s.competitions.GetBoostAllocations(ctx, competitionID)
	if err != nil {
		return Commitment{}, fmt.Errorf("get boost allocations: %w", err)
	}

	leaderboard := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		leaderboard = append(leaderboard, LeaderboardEntry{
			CompetitorID: e.AgentID,
			Rank:         e.Rank,
			Wallet:       common.BytesToAddress(e.OwnerWallet),
			OwnerID:      e.OwnerID,
		})
	}
	boosts := make([]BoostAllocation, 0, len(allocations))
	for _, a := range allocations {
		boosts = append(boosts, BoostAllocation{
			UserID:       a.UserID,
			Wallet:       common.BytesToAddress(a.Wallet),
			CompetitorID: a.AgentID,
			Amount:       a.Amount.Int(),
			Timestamp:    a.CreatedAt,
		})
	}

	userRewards, err := CalculateRewardsForUsers(UsersInput{
		PrizePool:          competition.BoosterPrizePool.Int(),
		Leaderboard:        leaderboard,
		Allocations:        boosts,
		Window:             window,
		PrizePoolDecayRate: s.cfg.PrizePoolDecayRate,
		BoostTimeDecayRate: s.cfg.BoostTimeDecayRate,
		Hook: func(snap Snapshot) {
			s.logs.Debugw("booster rewards calculated",
				"competition_id", competitionID,
				"competitors", len(snap.Shares),
				"boosters", len(snap.Payouts))
		},
	})
	if err != nil {
		return Commitment{}, fmt.Errorf("calculate booster rewards: %w", err)
	}
	competitorRewards, err := CalculateRewardsForCompetitors(CompetitorsInput{
		PrizePool:          competition.CompetitorPrizePool.Int(),
		Leaderboard:        leaderboard,
		PrizePoolDecayRate: s.cfg.PrizePoolDecayRate,
	})
	if err != nil {
		return Commitment{}, fmt.Errorf("calculate competitor rewards: %w", err)
	}

	all := append(userRewards, competitorRewards...)
	if len(all) == 0 {
		s.logs.Infow("competition pays no rewards, committing its competition leaf alone",
			"competition_id", competitionID)
	}

	tree, err := BuildTree(competitionID, all)
	if err != nil {
		return Commitment{}, fmt.Errorf("build rewards tree: %w", err)
	}

	rows := make([]repository.Reward, 0, len(all))
	for _, r := range all {
		row := repository.Reward{
			ID:      uuid.NewString(),
			Address: r.Address.Bytes(),
			Amount:  db.NewNumeric(r.Amount),
			UserID:  r.OwnerID,
		}
		if r.CompetitorID != "" {
			competitorID := r.CompetitorID
			row.CompetitorID = &competitorID
		}
		rows = append(rows, row)
	}
	nodes := make([]repository.RewardsTree, 0, len(tree.Nodes()))
	for _, n := range tree.Nodes() {
		nodes = append(nodes, repository.RewardsTree{Level: n.Level, Idx: n.Index, Hash: n.Hash.Bytes()})
	}

	root := tree.Root()
	committed, err := s.repo.CommitRewards(ctx, competitionID, rows, nodes, root.Bytes())
	if err != nil {
		if errors.Is(err, repository.ErrRootMismatch) {
			return Commitment{}, fmt.Errorf("%w: %s", ErrRootMismatch, competitionID)
		}
		return Commitment{}, err
	}

	commitment := Commitment{
		CompetitionID: competitionID,
		Root:          root,
		Leaves:        len(tree.Leaves()) - 1,
		Outcome:       OutcomeNoop,
	}
	if committed {
		commitment.Outcome = OutcomeApplied
	}

	s.logs.Infow("competition rewards committed",
		"competition_id", competitionID,
		"root", root.Hex(),
		"rewards", len(rows),
		"leaves", commitment.Leaves,
		"outcome", commitment.Outcome)

	return commitment, nil
}

// Proof returns the aggregated amount of address and its Merkle proof
// against the committed root.
func (s *Service) Proof(ctx context.Context, competitionID string, address common.Address) (Claim, error) {
	committed, err := s.repo.GetRoot(ctx, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrRootNotFound) {
			return Claim{}, fmt.Errorf("%w: %s", ErrNotCommitted, competitionID)
		}
		return Claim{}, fmt.Errorf("get rewards root: %w", err)
	}

	stored, err := s.repo.GetTree(ctx, competitionID)
	if err != nil {
		return Claim{}, fmt.Errorf("get rewards tree: %w", err)
	}
	nodes := make([]merkle.Node, 0, len(stored))
	for _, n := range stored {
		nodes = append(nodes, merkle.Node{Level: n.Level, Index: n.Idx, Hash: common.BytesToHash(n.Hash)})
	}
	tree, err := merkle.FromNodes(nodes)
	if err != nil {
		return Claim{}, fmt.Errorf("%w: %v", ErrCorruptTree, err)
	}
	root := common.BytesToHash(committed.RootHash)
	if tree.Root() != root {
		return Claim{}, fmt.Errorf("%w: tree root %s, committed %s", ErrCorruptTree, tree.Root().Hex(), root.Hex())
	}

	rows, err := s.repo.GetRewards(ctx, competitionID)
	if err != nil {
		return Claim{}, fmt.Errorf("get rewards: %w", err)
	}
	rewards := make([]Reward, 0, len(rows))
	for _, r := range rows {
		rewards = append(rewards, Reward{Address: common.BytesToAddress(r.Address), Amount: r.Amount.Int()})
	}

	leaves := Aggregate(rewards)
	index := sort.Search(len(leaves), func(i int) bool {
		return bytes.Compare(leaves[i].Address.Bytes(), address.Bytes()) >= 0
	})
	if index == len(leaves) || leaves[index].Address != address {
		return Claim{}, fmt.Errorf("%w: %s in %s", ErrNoReward, address.Hex(), competitionID)
	}

	leaf, err := merkle.LeafHash(leaves[index])
	if err != nil {
		return Claim{}, fmt.Errorf("hash leaf: %w", err)
	}
	binding, err := merkle.CompetitionLeafHash(competitionID)
	if err != nil {
		return Claim{}, err
	}
	treeLeaves := tree.Leaves()
	if len(treeLeaves) != len(leaves)+1 || treeLeaves[len(leaves)] != binding || treeLeaves[index] != leaf {
		return Claim{}, fmt.Errorf("%w: leaf of %s does not match stored rewards", ErrCorruptTree, address.Hex())
	}
	proof, err := tree.Proof(index)
	if err != nil {
		return Claim{}, fmt.Errorf("build proof: %w", err)
	}

	return Claim{
		CompetitionID: competitionID,
		Address:       address,
		Amount:        leaves[index].Amount,
		Proof:         proof,
		Root:          root,
	}, nil
}

func (s *Service) FindCompetitionByRoot(ctx context.Context, root common.Hash) (string, error) {
	competitionID, err := s.repo.FindCompetitionByRoot(ctx, root.Bytes())
	if err != nil {
		if errors.Is(err, repository.ErrRootNotFound) {
			return "", fmt.Errorf("%w: %s", ErrRootNotFound, root.Hex())
		}
		return "", err
	}
	return competitionID, nil
}

// BuildTree commits the rewards of a competition into a Merkle tree. Equal
// reward lists of one competition yield byte-identical roots whatever their
// order; the competition leaf keeps roots of different competitions apart.
func BuildTree(competitionID string, rewards []Reward) (*merkle.Tree, error) {
	return merkle.NewForCompetition(competitionID, Aggregate(rewards))
}

// Aggregate sums rewards per address into Merkle leaves sorted by address.
func Aggregate(rewards []Reward) []merkle.Leaf {
	totals := map[common.Address]*big.Int{}
	for _, r := range rewards {
		if totals[r.Address] == nil {
			totals[r.Address] = new(big.Int)
		}
		totals[r.Address].Add(totals[r.Address], r.Amount)
	}
	leaves := make([]merkle.Leaf, 0, len(totals))
	for address, amount := range totals {
		leaves = append(leaves, merkle.Leaf{Address: address, Amount: amount})
	}
	sort.Slice(leaves, func(i, j int) bool {
		return bytes.Compare(leaves[i].Address.Bytes(), leaves[j].Address.Bytes()) < 0
	})
	return leaves
}

// rewardsWindow prefers the voting window and falls back to the competition dates.
func rewardsWindow(c repository.Competition) (Window, error) {
	if c.VotingStartDate != nil && c.VotingEndDate != nil {
		return Window{Start: *c.VotingStartDate, End: *c.VotingEndDate}, nil
	}
	if c.StartDate != nil && c.EndDate != nil {
		return Window{Start: *c.StartDate, End: *c.EndDate}, nil
	}
	return Window{}, fmt.Errorf("%w: competition %s has no dates", ErrInvalidWindow, c.ID)
}
