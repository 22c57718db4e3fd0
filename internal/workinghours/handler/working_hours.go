package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookwell/internal/workinghours/service"
	apperrors "bookwell/pkg/errors"
	httputil "bookwell/pkg/http"
	"bookwell/pkg/logger"
	"bookwell/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type WorkingHoursHandler struct {
	service service.WorkingHoursService
	log     *logger.Logger
}

func NewWorkingHoursHandler(service service.WorkingHoursService, log *logger.Logger) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		service: service,
		log:     log,
	}
}

func (h *WorkingHoursHandler) SetWeek(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	staffID := ps.ByName("staffId")

	var week []*model.WorkingHours
	if err := json.NewDecoder(r.Body).Decode(&week); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "SetWeek", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.SetWeek(r.Context(), staffID, week); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetWeek", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *WorkingHoursHandler) GetWeek(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	staffID := ps.ByName("staffId")

	week, err := h.service.GetWeek(r.Context(), staffID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetWeek", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, week); err != nil {
		h.log.Error("failed to write success response", "handler", "GetWeek", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WorkingHoursHandler) SetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	staffID := ps.ByName("staffId")

	weekday, err := strconv.Atoi(ps.ByName("weekday"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Weekday must be a number between 1 and 7")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetDay", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	var day model.WorkingHours
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "SetDay", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}
	day.Weekday = weekday

	if err := h.service.SetDay(r.Context(), staffID, &day); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetDay", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *WorkingHoursHandler) GetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	staffID := ps.ByName("staffId")

	weekday, err := strconv.Atoi(ps.ByName("weekday"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Weekday must be a number between 1 and 7")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetDay", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	day, dayErr := h.service.GetDay(r.Context(), staffID, weekday)
	if dayErr != nil {
		if writeErr := httputil.WriteError(w, dayErr); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetDay", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, day); err != nil {
		h.log.Error("failed to write success response", "handler", "GetDay", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WorkingHoursHandler) RegisterRoutes(router *httprouter.Router) {
	router.PUT("/api/v1/staff/:staffId/working-hours", h.SetWeek)
	router.GET("/api/v1/staff/:staffId/working-hours", h.GetWeek)
	router.PUT("/api/v1/staff/:staffId/working-hours/:weekday", h.SetDay)
	router.GET("/api/v1/staff/:staffId/working-hours/:weekday", h.GetDay)
}
