package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hml69/thanbaitet/internal/api/apierr"
	"github.com/hml69/thanbaitet/internal/api/request"
	"github.com/hml69/thanbaitet/internal/api/response"
	"github.com/hml69/thanbaitet/internal/model"
	"github.com/hml69/thanbaitet/internal/services/scoring"
	"github.com/hml69/thanbaitet/internal/services/table"
)

// TableHandler handles table-related endpoints
type TableHandler struct {
	tables  *table.Controller
	scoring *scoring.Service
}

// NewTableHandler creates a new table handler
func NewTableHandler(tables *table.Controller, scoringService *scoring.Service) *TableHandler {
	return &TableHandler{
		tables:  tables,
		scoring: scoringService,
	}
}

// Create handles POST /api/v1/tables
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	rules := model.Rules{Type: model.RuleNone}
	if req.Rules != nil {
		rules = model.Rules{
			Type:  model.RuleType(req.Rules.Type),
			Value: req.Rules.Value,
		}
	}

	t, err := h.tables.CreateTable(r.Context(), req.Name, req.Players, rules)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TableFromModel(t))
}

// List handles GET /api/v1/tables
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables := h.tables.ListTables(r.Context())

	out := make([]response.Table, len(tables))
	for i := range tables {
		out[i] = response.TableFromModel(&tables[i])
	}

	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/tables/{id}
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.TableID(mux.Vars(r)["id"])

	t, err := h.tables.GetTable(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(t))
}

// Delete handles DELETE /api/v1/tables/{id}
func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.TableID(mux.Vars(r)["id"])

	if err := h.tables.DeleteTable(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Scores handles GET /api/v1/tables/{id}/scores
func (h *TableHandler) Scores(w http.ResponseWriter, r *http.Request) {
	id := model.TableID(mux.Vars(r)["id"])

	t, err := h.tables.GetTable(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	scores := h.scoring.ComputeScores(t)
	ranked := h.scoring.RankPlayers(t, scores)
	leader := h.scoring.Leader(ranked, scores)
	trailer := h.scoring.Trailer(ranked, scores)
	status := h.scoring.EvaluateRules(t)

	response.JSON(w, http.StatusOK, response.ScoreboardFromModel(t, scores, ranked, leader, trailer, status))
}

// History handles GET /api/v1/tables/{id}/history
func (h *TableHandler) History(w http.ResponseWriter, r *http.Request) {
	id := model.TableID(mux.Vars(r)["id"])

	t, err := h.tables.GetTable(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	rounds := h.scoring.History(t)

	response.JSON(w, http.StatusOK, response.HistoryFromModel(t, rounds))
}
