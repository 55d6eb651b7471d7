package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/casewise/compliance-agent/internal/api/middleware"
	"github.com/casewise/compliance-agent/internal/executor"
	"github.com/casewise/compliance-agent/internal/models"
	"github.com/casewise/compliance-agent/internal/rules"
	"github.com/casewise/compliance-agent/internal/scenario"
)

// HistorySource reads back recently stored evaluation records.
type HistorySource interface {
	Recent(ctx context.Context, n int64) ([]models.EvaluationRecord, error)
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	executor *executor.Executor
	repo     *scenario.Repository
	history  HistorySource
	logger   *zerolog.Logger
}

// NewHandler builds the API handler. history may be nil when no store is
// configured; the history endpoint then returns an empty list.
func NewHandler(exec *executor.Executor, repo *scenario.Repository, history HistorySource, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: exec,
		repo:     repo,
		history:  history,
		logger:   logger,
	}
}

// POST /api/v1/evaluate
// Body: models.EvaluationRequest
// Returns: models.EvaluationRecord
func (h *Handler) Evaluate(req *restful.Request, resp *restful.Response) {
	var evalRequest models.EvaluationRequest
	if err := req.ReadEntity(&evalRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if evalRequest.ScenarioID == "" {
		middleware.HandleError(resp, errors.New("scenario_id is required"), http.StatusBadRequest)
		return
	}

	record, err := h.executor.Execute(req.Request.Context(), evalRequest)
	if err != nil {
		h.logger.Error().Err(err).Str("scenario_id", evalRequest.ScenarioID).Msg("Evaluation failed")
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, record)
}

// GET /api/v1/evaluations?limit=N
func (h *Handler) Evaluations(req *restful.Request, resp *restful.Response) {
	limit := int64(50)
	if raw := req.QueryParameter("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if h.history == nil {
		resp.WriteHeaderAndEntity(http.StatusOK, []models.EvaluationRecord{})
		return
	}

	records, err := h.history.Recent(req.Request.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read evaluation history")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, records)
}

// GET /api/v1/scenarios
func (h *Handler) Scenarios(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.repo.Scenarios())
}

// GET /api/v1/personas
func (h *Handler) Personas(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.repo.Personas())
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scenario.ErrScenarioNotFound), errors.Is(err, scenario.ErrPersonaNotFound):
		return http.StatusNotFound
	case errors.Is(err, rules.ErrInvalidScenario):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
