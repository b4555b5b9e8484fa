package get_picker_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
	"github.com/m04kA/SMC-PickerService/internal/service/pickers"
)

// UseCase use case для получения решений об отрисовке дней
type UseCase struct {
	registry PickerRegistry
	maxSpan  time.Duration
	metrics  MetricsRecorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	registry PickerRegistry,
	maxSpan time.Duration,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		registry: registry,
		maxSpan:  maxSpan,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case получения решений по дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPickerDays: picker=%s, from=%s, to=%s",
		req.PickerID, domain.FormatDate(req.From), domain.FormatDate(req.To))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPickerDays: validation failed: %v", err)
		return nil, err
	}

	if err := validateSpan(req.From, req.To, uc.maxSpan); err != nil {
		uc.logger.Warn("GetPickerDays: %v", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2. Получаем экземпляр пикера
	inst, err := uc.registry.Instance(req.PickerID)
	if err != nil {
		if errors.Is(err, pickers.ErrPickerNotFound) {
			uc.logger.Warn("GetPickerDays: picker %s not found", req.PickerID)
			return nil, ErrPickerNotFound
		}
		uc.logger.Error("GetPickerDays: failed to get picker %s: %v", req.PickerID, err)
		return nil, fmt.Errorf("%w: failed to get picker: %v", ErrInternal, err)
	}

	// 3. Решения по каждому дню
	days := inst.DecorateDays(req.From, req.To)
	for _, day := range days {
		uc.metrics.RecordDayDecision(req.PickerID, day.State())
	}

	uc.logger.Info("GetPickerDays: %d days decorated for picker=%s", len(days), req.PickerID)

	return &Response{
		PickerID: req.PickerID,
		From:     domain.FormatDate(req.From.In(inst.Location())),
		To:       domain.FormatDate(req.To.In(inst.Location())),
		Days:     days,
	}, nil
}
