package http

import (
	"net/http"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/service"
)

type ReservationHandler struct {
	reservationSvc service.ReservationService
}

func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var input service.CreateReservationInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	reservation, err := h.reservationSvc.CreateReservation(r.Context(), userID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	details, err := h.reservationSvc.ListUserReservations(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if details == nil {
		details = []domain.ReservationDetail{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reservations": details})
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.reservationSvc.CancelReservation(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *ReservationHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.reservationSvc.ListBranches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if branches == nil {
		branches = []domain.Branch{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"branches": branches})
}
