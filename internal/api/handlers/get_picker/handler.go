package get_picker

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PickerService/internal/api/handlers"
	"github.com/m04kA/SMC-PickerService/internal/service/pickers"
)

const (
	msgPickerNotFound = "пикер не найден"
)

type Handler struct {
	registry PickerRegistry
	logger   Logger
}

func NewHandler(registry PickerRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle GET /api/v1/pickers/{pickerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pickerID := mux.Vars(r)["pickerId"]

	inst, err := h.registry.Instance(pickerID)
	if err != nil {
		if errors.Is(err, pickers.ErrPickerNotFound) {
			h.logger.Warn("GET /pickers/{id} - Picker not found: picker_id=%s", pickerID)
			handlers.RespondNotFound(w, msgPickerNotFound)
			return
		}
		h.logger.Error("GET /pickers/{id} - Failed to get picker: picker_id=%s, error=%v", pickerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pickers/{id} - Picker retrieved: picker_id=%s", pickerID)
	handlers.RespondJSON(w, http.StatusOK, inst.Options())
}
