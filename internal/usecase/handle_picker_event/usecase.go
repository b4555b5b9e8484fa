package handle_picker_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PickerService/internal/service/pickers"
)

// UseCase use case для обработки событий виджета
type UseCase struct {
	registry PickerRegistry
	metrics  MetricsRecorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registry PickerRegistry, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case обработки события
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("HandlePickerEvent: picker=%s, event=%s, dates=%d, controls=%v",
		req.PickerID, req.Event, len(req.SelectedDates), req.Controls)

	// 1. Валидация входных данных
	event, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("HandlePickerEvent: validation failed: %v", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2. Получаем экземпляр пикера
	inst, err := uc.registry.Instance(req.PickerID)
	if err != nil {
		if errors.Is(err, pickers.ErrPickerNotFound) {
			uc.logger.Warn("HandlePickerEvent: picker %s not found", req.PickerID)
			return nil, ErrPickerNotFound
		}
		uc.logger.Error("HandlePickerEvent: failed to get picker %s: %v", req.PickerID, err)
		return nil, fmt.Errorf("%w: failed to get picker: %v", ErrInternal, err)
	}

	// 3. Обрабатываем событие
	result := inst.HandleEvent(event, req.SelectedDates, pickers.NewControlSet(req.Controls...))
	uc.metrics.RecordPickerEvent(req.PickerID, string(event), result.Applied())

	if result.Applied() {
		uc.logger.Info("HandlePickerEvent: picker=%s, date=%s, tier=%s applied", req.PickerID, result.Date, result.Tier)
	} else {
		uc.logger.Info("HandlePickerEvent: picker=%s, event=%s: nothing to update", req.PickerID, event)
	}

	return &result, nil
}
