package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adrianopnk-hub/nf-solver-web/internal/api/dto"
	"github.com/adrianopnk-hub/nf-solver-web/internal/infrastructure/storage"
	"github.com/adrianopnk-hub/nf-solver-web/internal/money"
)

// SolvesHandler serves the solve history.
type SolvesHandler struct {
	*Base
	repo storage.Repository
}

// NewSolvesHandler creates a new solve-history handler.
func NewSolvesHandler(repo storage.Repository) *SolvesHandler {
	return &SolvesHandler{
		Base: &Base{},
		repo: repo,
	}
}

// List handles GET /api/solves - returns recent solves, newest first.
func (h *SolvesHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := ParseIntParam(r, "limit", dto.DefaultSolveListParams().Limit)

	records, err := h.repo.ListSolves(limit)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.SolveListResponse{
		Solves: make([]dto.SolveRecordResponse, 0, len(records)),
		Count:  len(records),
	}
	for _, rec := range records {
		response.Solves = append(response.Solves, toSolveRecordResponse(rec))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/solves/{id} - returns a single solve record.
func (h *SolvesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("solve ID is required"))
		return
	}

	rec, err := h.repo.GetSolve(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if rec == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("solve"))
		return
	}

	h.WriteJSON(w, http.StatusOK, toSolveRecordResponse(rec))
}

// toSolveRecordResponse converts a storage record to an API response.
func toSolveRecordResponse(rec *storage.SolveRecord) dto.SolveRecordResponse {
	response := dto.SolveRecordResponse{
		ID:            rec.ID,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		TargetText:    money.Format(rec.TargetCents),
		ToleranceText: money.Format(rec.ToleranceCents),
		ItemCount:     rec.ItemCount,
		DroppedLines:  rec.DroppedLines,
		Found:         rec.Found,
		Exact:         rec.Exact,
		DurationMS:    rec.DurationMS,
	}

	if rec.Found {
		response.TotalText = money.Format(rec.AchievedCents)
	}

	for _, item := range rec.Selected {
		response.Selected = append(response.Selected, dto.SelectedItemResponse{
			Position:    item.Position,
			Label:       item.Label,
			AmountText:  money.Format(item.AmountCents),
			AmountCents: item.AmountCents,
		})
	}
	return response
}
