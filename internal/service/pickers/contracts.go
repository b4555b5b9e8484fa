package pickers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

// HolidayLoader загружает набор праздников за год
// Реализация не возвращает ошибок: при сбое источника возвращается пустой набор
type HolidayLoader interface {
	Load(ctx context.Context, year int) domain.HolidaySet
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
