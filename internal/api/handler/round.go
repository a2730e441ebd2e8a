package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hml69/thanbaitet/internal/api/apierr"
	"github.com/hml69/thanbaitet/internal/api/request"
	"github.com/hml69/thanbaitet/internal/api/response"
	"github.com/hml69/thanbaitet/internal/model"
	"github.com/hml69/thanbaitet/internal/services/table"
)

// RoundHandler handles round ledger endpoints
type RoundHandler struct {
	tables *table.Controller
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(tables *table.Controller) *RoundHandler {
	return &RoundHandler{tables: tables}
}

// roundInput converts a request body to a controller input
func roundInput(req request.RoundRequest) table.RoundInput {
	scores := make(map[model.PlayerID]int, len(req.Scores))
	for pid, v := range req.Scores {
		scores[model.PlayerID(pid)] = v
	}
	return table.RoundInput{
		Scores:    scores,
		Note:      req.Note,
		IsSpecial: req.IsSpecial,
	}
}

// Add handles POST /api/v1/tables/{id}/rounds
func (h *RoundHandler) Add(w http.ResponseWriter, r *http.Request) {
	tableID := model.TableID(mux.Vars(r)["id"])

	var req request.RoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	round, err := h.tables.AddRound(r.Context(), tableID, roundInput(req))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoundFromModel(*round))
}

// Edit handles PATCH /api/v1/tables/{id}/rounds/{round_id}
func (h *RoundHandler) Edit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID := model.TableID(vars["id"])
	roundID := model.RoundID(vars["round_id"])

	var req request.RoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	round, err := h.tables.EditRound(r.Context(), tableID, roundID, roundInput(req))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundFromModel(*round))
}

// Delete handles DELETE /api/v1/tables/{id}/rounds/{round_id}
func (h *RoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID := model.TableID(vars["id"])
	roundID := model.RoundID(vars["round_id"])

	if err := h.tables.DeleteRound(r.Context(), tableID, roundID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
