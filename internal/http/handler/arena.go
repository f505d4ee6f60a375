package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"arenaledger/internal/http/handler/middleware"
	"arenaledger/internal/http/payload"
	"arenaledger/internal/indexer"
	"arenaledger/internal/rewards"

	"go.uber.org/zap"
)

var (
	GetBalances     = "GET /agents/{agentId}/competitions/{competitionId}/balances"
	GetRewardsRoot  = "GET /rewards/roots/{root}"
	GetRewardsProof = "GET /rewards/{competitionId}/proofs/{address}"
	GetBoosts       = "GET /competitions/{competitionId}/boosts/{userId}"
	GetStake        = "GET /stakes/{stakeId}"
)

type ArenaHandler struct {
	logs     *zap.SugaredLogger
	balances BalanceService
	rewards  RewardsService
	boosts   BoostService
	stakes   StakeService
}

func NewArenaHandler(logger *zap.SugaredLogger, balances BalanceService, rewardsService RewardsService, boosts BoostService, stakes StakeService) *ArenaHandler {
	return &ArenaHandler{
		logs:     logger,
		balances: balances,
		rewards:  rewardsService,
		boosts:   boosts,
		stakes:   stakes,
	}
}

// Register adds every route of the handler to mux.
func (h *ArenaHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(GetBalances, h.HandleGetBalances)
	mux.HandleFunc(GetRewardsRoot, h.HandleGetRewardsRoot)
	mux.HandleFunc(GetRewardsProof, h.HandleGetRewardsProof)
	mux.HandleFunc(GetBoosts, h.HandleGetBoosts)
	mux.HandleFunc(GetStake, h.HandleGetStake)
}

func (h *ArenaHandler) HandleGetBalances(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req := payload.BalancesRequest{
		AgentID:       r.PathValue("agentId"),
		CompetitionID: r.PathValue("competitionId"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request parameters",
			"error", err,
			"handler", GetBalances,
			"request_id", requestId)
		return
	}

	balances, err := h.balances.GetBalances(r.Context(), req.AgentID, req.CompetitionID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balances",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get balances",
			"error", err,
			"agent_id", req.AgentID,
			"competition_id", req.CompetitionID,
			"handler", GetBalances,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: toBalancesMessage(req.AgentID, req.CompetitionID, balances),
	}, http.StatusOK, requestId)
}

func (h *ArenaHandler) HandleGetRewardsRoot(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req := payload.RootRequest{Root: r.PathValue("root")}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request parameters",
			"error", err,
			"handler", GetRewardsRoot,
			"request_id", requestId)
		return
	}

	competitionID, err := h.rewards.FindCompetitionByRoot(r.Context(), req.Hash())
	if err != nil {
		resp := Response{Message: "Could not resolve rewards root"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, rewards.ErrRootNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to find competition by root",
			"error", err,
			"root", req.Root,
			"handler", GetRewardsRoot,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: RootMessage{Root: req.Hash().Hex(), CompetitionID: competitionID},
	}, http.StatusOK, requestId)
}

func (h *ArenaHandler) HandleGetRewardsProof(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req := payload.ProofRequest{
		CompetitionID: r.PathValue("competitionId"),
		Address:       r.PathValue("address"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request parameters",
			"error", err,
			"handler", GetRewardsProof,
			"request_id", requestId)
		return
	}

	claim, err := h.rewards.Proof(r.Context(), req.CompetitionID, req.Wallet())
	if err != nil {
		resp := Response{Message: "Could not build rewards proof"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, rewards.ErrNoReward) || errors.Is(err, rewards.ErrNotCommitted) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to build rewards proof",
			"error", err,
			"competition_id", req.CompetitionID,
			"address", req.Address,
			"handler", GetRewardsProof,
			"request_id", requestId)
		return
	}

	h.logs.Infow("rewards proof served",
		"competition_id", req.CompetitionID,
		"address", req.Address,
		"handler", GetRewardsProof,
		"request_id", requestId)

	h.respond(w, Response{Data: toClaimMessage(claim)}, http.StatusOK, requestId)
}

func (h *ArenaHandler) HandleGetBoosts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req := payload.BoostsRequest{
		CompetitionID: r.PathValue("competitionId"),
		UserID:        r.PathValue("userId"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request parameters",
			"error", err,
			"handler", GetBoosts,
			"request_id", requestId)
		return
	}

	summary, err := h.boosts.Summary(r.Context(), req.UserID, req.CompetitionID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve boosts",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get boost summary",
			"error", err,
			"user_id", req.UserID,
			"competition_id", req.CompetitionID,
			"handler", GetBoosts,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: toBoostsMessage(summary)}, http.StatusOK, requestId)
}

func (h *ArenaHandler) HandleGetStake(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req := payload.StakeRequest{StakeID: r.PathValue("stakeId")}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request parameters",
			"error", err,
			"handler", GetStake,
			"request_id", requestId)
		return
	}

	history, err := h.stakes.StakeHistory(r.Context(), req.ID())
	if err != nil {
		resp := Response{Message: "Could not retrieve stake"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, indexer.ErrStakeNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get stake history",
			"error", err,
			"stake_id", req.StakeID,
			"handler", GetStake,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: toStakeMessage(history, time.Now().UTC()),
	}, http.StatusOK, requestId)
}

func (h *ArenaHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
