package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rosterhub/roster-backend-go/internal/domain/tips"
	"github.com/rosterhub/roster-backend-go/internal/handler/http/response"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
	"github.com/rosterhub/roster-backend-go/internal/pkg/week"
)

type TipsHandler interface {
	GetDistribution(w http.ResponseWriter, r *http.Request)
	GetCurrentDistribution(w http.ResponseWriter, r *http.Request)
	GetWeeklyTips(w http.ResponseWriter, r *http.Request)
	RecordTips(w http.ResponseWriter, r *http.Request)
	UpdateTips(w http.ResponseWriter, r *http.Request)
	ListCurrencies(w http.ResponseWriter, r *http.Request)
}

type tipsHandlerImpl struct {
	tipsService tips.TipsService
}

func NewTipsHandler(tipsService tips.TipsService) TipsHandler {
	return &tipsHandlerImpl{tipsService: tipsService}
}

// parseWeekPath reads the {year}/{weekNumber} route segments. Range checks
// live in the week package; this only rejects non-numeric input.
func parseWeekPath(w http.ResponseWriter, r *http.Request) (weekNumber, year int, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be a number", nil)
		return 0, 0, false
	}
	weekNumber, err = strconv.Atoi(chi.URLParam(r, "weekNumber"))
	if err != nil {
		response.BadRequest(w, "Week number must be a number", nil)
		return 0, 0, false
	}
	return weekNumber, year, true
}

// GetDistribution implements TipsHandler
func (h *tipsHandlerImpl) GetDistribution(w http.ResponseWriter, r *http.Request) {
	weekNumber, year, ok := parseWeekPath(w, r)
	if !ok {
		return
	}

	result, err := h.tipsService.GetWeeklyDistribution(r.Context(), weekNumber, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCurrentDistribution implements TipsHandler
func (h *tipsHandlerImpl) GetCurrentDistribution(w http.ResponseWriter, r *http.Request) {
	year, weekNumber := week.Of(time.Now().UTC())

	result, err := h.tipsService.GetWeeklyDistribution(r.Context(), weekNumber, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeeklyTips implements TipsHandler
func (h *tipsHandlerImpl) GetWeeklyTips(w http.ResponseWriter, r *http.Request) {
	weekNumber, year, ok := parseWeekPath(w, r)
	if !ok {
		return
	}

	result, err := h.tipsService.GetWeeklyTips(r.Context(), weekNumber, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecordTips implements TipsHandler
func (h *tipsHandlerImpl) RecordTips(w http.ResponseWriter, r *http.Request) {
	var req tips.RecordTipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tipsService.RecordTips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tips recorded", result)
}

// UpdateTips implements TipsHandler
func (h *tipsHandlerImpl) UpdateTips(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Tips ID must be a valid UUID", nil)
		return
	}

	var req tips.UpdateTipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tipsService.UpdateTips(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tips updated", result)
}

// ListCurrencies implements TipsHandler
func (h *tipsHandlerImpl) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	result, err := h.tipsService.ListCurrencies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
