package list_pickers

import (
	"net/http"

	"github.com/m04kA/SMC-PickerService/internal/api/handlers"
	"github.com/m04kA/SMC-PickerService/internal/service/pickers/models"
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

// Handle GET /api/v1/pickers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instances := h.registry.Instances()

	response := ListPickersResponse{Pickers: make([]models.WidgetOptions, 0, len(instances))}
	for _, inst := range instances {
		response.Pickers = append(response.Pickers, inst.Options())
	}

	h.logger.Info("GET /pickers - %d pickers returned", len(response.Pickers))
	handlers.RespondJSON(w, http.StatusOK, response)
}
