package handler_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"time"

	"arenaledger/internal/boost"
	"arenaledger/internal/db"
	"arenaledger/internal/http/handler"
	"arenaledger/internal/http/handler/fake"
	"arenaledger/internal/indexer"
	"arenaledger/internal/ledger"
	"arenaledger/internal/repository"
	"arenaledger/internal/rewards"
	"arenaledger/internal/staking"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ArenaHandler", func() {
	var (
		mux          *http.ServeMux
		fakeBalances *fake.BalanceService
		fakeRewards  *fake.RewardsService
		fakeBoosts   *fake.BoostService
		fakeStakes   *fake.StakeService
		w            *httptest.ResponseRecorder
		req          *http.Request
		fakeErr      error
		response     struct {
			Message string          `json:"message"`
			Data    json.RawMessage `json:"data"`
			Error   string          `json:"error"`
		}
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		response.Message, response.Data, response.Error = "", nil, ""
		fakeBalances = new(fake.BalanceService)
		fakeRewards = new(fake.RewardsService)
		fakeBoosts = new(fake.BoostService)
		fakeStakes = new(fake.StakeService)
		w = httptest.NewRecorder()
		mux = http.NewServeMux()
		handler.NewArenaHandler(zap.NewNop().Sugar(), fakeBalances, fakeRewards, fakeBoosts, fakeStakes).Register(mux)
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
	})

	Describe("HandleGetBalances", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/agents/agent-1/competitions/comp-1/balances", nil)
			fakeBalances.GetBalancesReturns([]ledger.Balance{{
				AgentID:       "agent-1",
				CompetitionID: "comp-1",
				TokenAddress:  "0xtoken",
				Amount:        new(big.Int).Lsh(big.NewInt(1), 100),
				Symbol:        "USDC",
				UpdatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			}}, nil)
		})

		When("balances are found", func() {
			It("returns them with exact amounts", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var data handler.BalancesMessage
				Expect(json.Unmarshal(response.Data, &data)).To(Succeed())
				Expect(data.AgentID).To(Equal("agent-1"))
				Expect(data.Balances).To(HaveLen(1))
				Expect(data.Balances[0].Amount).To(Equal("1267650600228229401496703205376"))
				Expect(data.Balances[0].UpdatedAt).To(Equal("2026-01-01T00:00:00Z"))

				_, agentID, competitionID := fakeBalances.GetBalancesArgsForCall(0)
				Expect(agentID).To(Equal("agent-1"))
				Expect(competitionID).To(Equal("comp-1"))
			})
		})

		When("the ids are malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/agents/agent%201/competitions/comp-1/balances", nil)
			})

			It("returns status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeBalances.GetBalancesCallCount()).To(Equal(0))
			})
		})

		When("the ledger fails", func() {
			BeforeEach(func() {
				fakeBalances.GetBalancesReturns(nil, fakeErr)
			})

			It("returns status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Error).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetRewardsRoot", func() {
		var root common.Hash

		BeforeEach(func() {
			root = common.HexToHash("0x7af74014198677f464d44df7c5cd9e245ba4e4f5e275d7170765d5f8d655e3d2")
			req = httptest.NewRequest(http.MethodGet, "/rewards/roots/"+root.Hex(), nil)
			fakeRewards.FindCompetitionByRootReturns("comp-1", nil)
		})

		When("the root is known", func() {
			It("returns its competition", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var data handler.RootMessage
				Expect(json.Unmarshal(response.Data, &data)).To(Succeed())
				Expect(data.CompetitionID).To(Equal("comp-1"))
				Expect(data.Root).To(Equal(root.Hex()))

				_, arg := fakeRewards.FindCompetitionByRootArgsForCall(0)
				Expect(arg).To(Equal(root))
			})
		})

		When("the root is unknown", func() {
			BeforeEach(func() {
				fakeRewards.FindCompetitionByRootReturns("", rewards.ErrRootNotFound)
			})

			It("returns status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(response.Error).To(ContainSubstring(rewards.ErrRootNotFound.Error()))
			})
		})

		When("the root is not a hash", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/rewards/roots/0x1234", nil)
			})

			It("returns status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeRewards.FindCompetitionByRootCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetRewardsProof", func() {
		var address common.Address

		BeforeEach(func() {
			address = common.HexToAddress("0x00000000000000000000000000000000000000a1")
			req = httptest.NewRequest(http.MethodGet, "/rewards/comp-1/proofs/"+address.Hex(), nil)
			fakeRewards.ProofReturns(rewards.Claim{
				CompetitionID: "comp-1",
				Address:       address,
				Amount:        big.NewInt(666866),
				Proof:         []common.Hash{common.HexToHash("0x01")},
				Root:          common.HexToHash("0xaa"),
			}, nil)
		})

		When("the address has a reward", func() {
			It("returns the claim", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var data handler.ClaimMessage
				Expect(json.Unmarshal(response.Data, &data)).To(Succeed())
				Expect(data.Amount).To(Equal("666866"))
				Expect(data.Proof).To(Equal([]string{common.HexToHash("0x01").Hex()}))
				Expect(data.Root).To(Equal(common.HexToHash("0xaa").Hex()))

				_, competitionID, arg := fakeRewards.ProofArgsForCall(0)
				Expect(competitionID).To(Equal("comp-1"))
				Expect(arg).To(Equal(address))
			})
		})

		When("the address has no reward", func() {
			BeforeEach(func() {
				fakeRewards.ProofReturns(rewards.Claim{}, rewards.ErrNoReward)
			})

			It("returns status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("building the proof fails", func() {
			BeforeEach(func() {
				fakeRewards.ProofReturns(rewards.Claim{}, fakeErr)
			})

			It("returns status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Message).To(Equal("Could not build rewards proof"))
			})
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/rewards/comp-1/proofs/0xnope", nil)
			})

			It("returns status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeRewards.ProofCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetBoosts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/competitions/comp-1/boosts/user-1", nil)
			fakeBoosts.SummaryReturns(boost.Summary{
				UserID:        "user-1",
				CompetitionID: "comp-1",
				Balance:       big.NewInt(1000),
				Changes: []boost.Change{{
					ID:        "change-1",
					Amount:    big.NewInt(1000),
					IdemKey:   "stake:comp-1:7",
					CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
				}},
			}, nil)
		})

		It("returns the balance with its changes", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var data handler.BoostsMessage
			Expect(json.Unmarshal(response.Data, &data)).To(Succeed())
			Expect(data.Balance).To(Equal("1000"))
			Expect(data.Changes).To(HaveLen(1))
			Expect(data.Changes[0].IdemKey).To(Equal("stake:comp-1:7"))
			Expect(data.Changes[0].CreatedAt).To(Equal("2026-01-02T00:00:00Z"))

			_, userID, competitionID := fakeBoosts.SummaryArgsForCall(0)
			Expect(userID).To(Equal("user-1"))
			Expect(competitionID).To(Equal("comp-1"))
		})

		When("the engine fails", func() {
			BeforeEach(func() {
				fakeBoosts.SummaryReturns(boost.Summary{}, fakeErr)
			})

			It("returns status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Error).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetStake", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/stakes/42", nil)
			stakedAt := time.Now().UTC().Add(-time.Hour)
			fakeStakes.StakeHistoryReturns(indexer.StakeHistory{
				Stake: staking.Stake{
					ID:              big.NewInt(42),
					Wallet:          common.HexToAddress("0x00000000000000000000000000000000000000a1"),
					Amount:          big.NewInt(1000),
					StakedAt:        stakedAt,
					CanUnstakeAfter: stakedAt.Add(30 * 24 * time.Hour),
				},
				Changes: []repository.StakeChange{{
					Kind:        repository.StakeKindStake,
					DeltaAmount: db.NumericFromInt64(1000),
					TxHash:      common.HexToHash("0x01").Bytes(),
					BlockNumber: 110,
				}},
			}, nil)
		})

		It("returns the stake with its changes", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var data handler.StakeMessage
			Expect(json.Unmarshal(response.Data, &data)).To(Succeed())
			Expect(data.ID).To(Equal("42"))
			Expect(data.Status).To(Equal(string(staking.StatusLocked)))
			Expect(data.Changes).To(HaveLen(1))
			Expect(data.Changes[0].DeltaAmount).To(Equal("1000"))
			Expect(data.Changes[0].TxHash).To(Equal(common.HexToHash("0x01").Hex()))

			_, id := fakeStakes.StakeHistoryArgsForCall(0)
			Expect(id.Int64()).To(Equal(int64(42)))
		})

		When("the stake is unknown", func() {
			BeforeEach(func() {
				fakeStakes.StakeHistoryReturns(indexer.StakeHistory{}, indexer.ErrStakeNotFound)
			})

			It("returns status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/stakes/abc", nil)
			})

			It("returns status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeStakes.StakeHistoryCallCount()).To(Equal(0))
			})
		})
	})
})
