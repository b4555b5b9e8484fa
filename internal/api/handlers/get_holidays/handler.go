package get_holidays

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PickerService/internal/api/handlers"
	"github.com/m04kA/SMC-PickerService/internal/service/pickers"
)

type Handler struct {
	provider HolidayProvider
	logger   Logger
}

func NewHandler(provider HolidayProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/holidays
// Пустой список означает, что источник праздников был недоступен при старте
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	set, err := h.provider.Holidays()
	if err != nil {
		if errors.Is(err, pickers.ErrNotBuilt) {
			h.logger.Warn("GET /holidays - Pickers are not built yet")
			handlers.RespondServiceUnavailable(w)
			return
		}
		h.logger.Error("GET /holidays - Failed to get holidays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /holidays - %d holidays for %d", set.Len(), set.Year())
	handlers.RespondJSON(w, http.StatusOK, FromDomain(set))
}
