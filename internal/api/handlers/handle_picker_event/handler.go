package handle_picker_event

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PickerService/internal/api/handlers"
	handlePickerEvent "github.com/m04kA/SMC-PickerService/internal/usecase/handle_picker_event"
)

const (
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidEvent   = "некорректное событие, ожидается change, close или ready"
	msgPickerNotFound = "пикер не найден"
)

type Handler struct {
	useCase HandlePickerEventUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase HandlePickerEventUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/pickers/{pickerId}/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pickerID := mux.Vars(r)["pickerId"]

	var req PickerEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pickers/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(pickerID, h.loc)
	if err != nil {
		h.logger.Warn("POST /pickers/{id}/events - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, handlePickerEvent.ErrPickerNotFound):
			h.logger.Warn("POST /pickers/{id}/events - Picker not found: picker_id=%s", pickerID)
			handlers.RespondNotFound(w, msgPickerNotFound)

		case errors.Is(err, handlePickerEvent.ErrInvalidInput):
			h.logger.Warn("POST /pickers/{id}/events - Invalid event: picker_id=%s, event=%s", pickerID, req.Event)
			handlers.RespondBadRequest(w, msgInvalidEvent)

		default:
			h.logger.Error("POST /pickers/{id}/events - Failed to handle event: picker_id=%s, error=%v", pickerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pickers/{id}/events - Event handled: picker_id=%s, event=%s, applied=%t",
		pickerID, req.Event, result.Applied())
	handlers.RespondJSON(w, http.StatusOK, result)
}
