package http

import (
	"net/http"
	"time"

	"github.com/rosterhub/roster-backend-go/internal/domain/shift"
	"github.com/rosterhub/roster-backend-go/internal/handler/http/response"
	"github.com/rosterhub/roster-backend-go/internal/pkg/week"
)

type RosterHandler interface {
	GetWeeklyRoster(w http.ResponseWriter, r *http.Request)
	GetCurrentRoster(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewRosterHandler(shiftService shift.ShiftService) RosterHandler {
	return &rosterHandlerImpl{shiftService: shiftService}
}

// GetWeeklyRoster implements RosterHandler
func (h *rosterHandlerImpl) GetWeeklyRoster(w http.ResponseWriter, r *http.Request) {
	weekNumber, year, ok := parseWeekPath(w, r)
	if !ok {
		return
	}

	result, err := h.shiftService.GetWeeklyRoster(r.Context(), weekNumber, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCurrentRoster implements RosterHandler
func (h *rosterHandlerImpl) GetCurrentRoster(w http.ResponseWriter, r *http.Request) {
	year, weekNumber := week.Of(time.Now().UTC())

	result, err := h.shiftService.GetWeeklyRoster(r.Context(), weekNumber, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
