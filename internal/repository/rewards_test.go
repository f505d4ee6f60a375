package repository_test

import (
	"context"

	"arenaledger/internal/db"
	"arenaledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RewardsRepository", func() {
	var (
		repo    *repository.RewardsRepository
		ctx     context.Context
		root    []byte
		rewards []repository.Reward
		nodes   []repository.RewardsTree
	)

	BeforeEach(func() {
		repo = repository.NewRewardsRepository(newTestStorage())
		ctx = context.Background()
		root = common.HexToHash("0xaa").Bytes()
		rewards = []repository.Reward{
			{ID: uuid.NewString(), Address: common.HexToAddress("0x01").Bytes(), Amount: db.NumericFromInt64(600)},
			{ID: uuid.NewString(), Address: common.HexToAddress("0x02").Bytes(), Amount: db.NumericFromInt64(400)},
		}
		nodes = []repository.RewardsTree{
			{Level: 1, Idx: 0, Hash: root},
			{Level: 0, Idx: 1, Hash: common.HexToHash("0x02").Bytes()},
			{Level: 0, Idx: 0, Hash: common.HexToHash("0x01").Bytes()},
		}
	})

	Describe("CommitRewards", func() {
		It("stores rewards, tree and root", func() {
			committed, err := repo.CommitRewards(ctx, competitionID, rewards, nodes, root)
			Expect(err).NotTo(HaveOccurred())
			Expect(committed).To(BeTrue())

			stored, err := repo.GetRewards(ctx, competitionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(2))

			tree, err := repo.GetTree(ctx, competitionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(3))
			Expect(tree[0].Level).To(Equal(0))
			Expect(tree[0].Idx).To(Equal(0))
			Expect(tree[2].Hash).To(Equal(root))

			rootRow, err := repo.GetRoot(ctx, competitionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rootRow.RootHash).To(Equal(root))
		})

		It("treats a second commit of the same root as a no-op", func() {
			_, err := repo.CommitRewards(ctx, competitionID, rewards, nodes, root)
			Expect(err).NotTo(HaveOccurred())

			again := []repository.Reward{{ID: uuid.NewString(), Address: common.HexToAddress("0x03").Bytes(), Amount: db.NumericFromInt64(1)}}
			committed, err := repo.CommitRewards(ctx, competitionID, again, nil, root)
			Expect(err).NotTo(HaveOccurred())
			Expect(committed).To(BeFalse())

			stored, err := repo.GetRewards(ctx, competitionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(2))
		})

		It("rejects a different root for a committed competition", func() {
			_, err := repo.CommitRewards(ctx, competitionID, rewards, nodes, root)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.CommitRewards(ctx, competitionID, nil, nil, common.HexToHash("0xbb").Bytes())
			Expect(err).To(MatchError(repository.ErrRootMismatch))
		})
	})

	Describe("FindCompetitionByRoot", func() {
		It("resolves a committed root", func() {
			_, err := repo.CommitRewards(ctx, competitionID, rewards, nodes, root)
			Expect(err).NotTo(HaveOccurred())

			id, err := repo.FindCompetitionByRoot(ctx, root)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(competitionID))
		})

		It("returns ErrRootNotFound for an unknown root", func() {
			_, err := repo.FindCompetitionByRoot(ctx, common.HexToHash("0xcc").Bytes())
			Expect(err).To(MatchError(repository.ErrRootNotFound))
		})
	})
})
