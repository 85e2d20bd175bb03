package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianopnk-hub/nf-solver-web/internal/api/dto"
	"github.com/adrianopnk-hub/nf-solver-web/internal/money"
	"github.com/adrianopnk-hub/nf-solver-web/internal/service"
	"github.com/adrianopnk-hub/nf-solver-web/internal/solver"
)

// SolveHandler handles reconciliation requests.
type SolveHandler struct {
	*Base
	recon *service.Service
}

// NewSolveHandler creates a new solve handler.
func NewSolveHandler(recon *service.Service) *SolveHandler {
	return &SolveHandler{
		Base:  &Base{},
		recon: recon,
	}
}

// Solve handles POST /api/solve.
//
// Outcomes map to distinct response shapes: a match to SolveResponse, an
// infeasible solve to NoMatchResponse (still 200; it is a valid negative
// result), a rejected request to ValidationFailure with the raw inputs
// echoed, and an exceeded table ceiling to a resource-limit error.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req dto.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	match, err := h.recon.Reconcile(r.Context(), service.Request{
		Items:     req.Items,
		Target:    req.Target,
		Tolerance: req.Tolerance,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.WriteJSON(w, http.StatusBadRequest, dto.NewValidationFailure(verr.Reason, dto.EchoedInputs{
				Items:     verr.Request.Items,
				Target:    verr.Request.Target,
				Tolerance: verr.Request.Tolerance,
			}))
		case errors.Is(err, solver.ErrWidthExceeded):
			h.WriteError(w, http.StatusUnprocessableEntity, dto.ResourceLimitError(
				"the amounts are too large to search; reduce the input or raise the solver limit"))
		default:
			h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		}
		return
	}

	if !match.Found {
		h.WriteJSON(w, http.StatusOK, dto.NoMatchResponse{
			Found:   false,
			Message: "no combination of the given amounts lies within the tolerance",
		})
		return
	}

	h.WriteJSON(w, http.StatusOK, toSolveResponse(match))
}

// toSolveResponse converts a service match to an API response.
func toSolveResponse(match *service.Match) dto.SolveResponse {
	response := dto.SolveResponse{
		Found:          true,
		SolveID:        match.SolveID,
		TargetText:     money.Format(match.TargetCents),
		TotalText:      money.Format(match.AchievedCents),
		DifferenceText: money.Format(match.AchievedCents - match.TargetCents),
		ToleranceText:  money.Format(match.ToleranceCents),
		Exact:          match.Exact,
		DroppedLines:   match.DroppedLines,
		Selected:       make([]dto.SelectedItemResponse, 0, len(match.Selected)),
	}

	for _, item := range match.Selected {
		response.Selected = append(response.Selected, dto.SelectedItemResponse{
			Position:    item.Position,
			Label:       item.Label,
			AmountText:  money.Format(item.AmountCents),
			AmountCents: item.AmountCents,
		})
	}
	return response
}
