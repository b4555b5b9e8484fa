package get_picker_days

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PickerService/internal/api/handlers"
	getPickerDays "github.com/m04kA/SMC-PickerService/internal/usecase/get_picker_days"
)

const (
	msgMissingDates   = "параметры from и to обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange   = "дата from позже даты to"
	msgRangeTooLarge  = "слишком большой диапазон дат"
	msgPickerNotFound = "пикер не найден"
)

type Handler struct {
	useCase GetPickerDaysUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetPickerDaysUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/pickers/{pickerId}/days
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pickerID := mux.Vars(r)["pickerId"]

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /pickers/{id}/days - Missing from/to: picker_id=%s", pickerID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(pickerID, fromStr, toStr, h.loc)
	if err != nil {
		h.logger.Warn("GET /pickers/{id}/days - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getPickerDays.ErrPickerNotFound):
			h.logger.Warn("GET /pickers/{id}/days - Picker not found: picker_id=%s", pickerID)
			handlers.RespondNotFound(w, msgPickerNotFound)

		case errors.Is(err, getPickerDays.ErrRangeTooLarge):
			h.logger.Warn("GET /pickers/{id}/days - Range too large: picker_id=%s, from=%s, to=%s", pickerID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getPickerDays.ErrInvalidInput):
			h.logger.Warn("GET /pickers/{id}/days - Invalid range: picker_id=%s, from=%s, to=%s", pickerID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /pickers/{id}/days - Failed to decorate days: picker_id=%s, error=%v", pickerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /pickers/{id}/days - Days decorated: picker_id=%s, days_count=%d", pickerID, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
