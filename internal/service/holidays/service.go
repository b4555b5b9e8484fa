package holidays

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

// Directory загружает и хранит множество праздничных дней
// Ошибки источника никогда не возвращаются вызывающему: подсветка праздников
// деградирует до пустого множества, а не блокирует инициализацию виджетов
type Directory struct {
	client  HolidayClient
	metrics MetricsRecorder
	timeout time.Duration
	logger  Logger
}

// NewDirectory создает новый экземпляр справочника праздников
// timeout ограничивает загрузку; 0 - без дополнительного ограничения
func NewDirectory(client HolidayClient, metrics MetricsRecorder, timeout time.Duration, logger Logger) *Directory {
	return &Directory{
		client:  client,
		metrics: metrics,
		timeout: timeout,
		logger:  logger,
	}
}

// Load загружает праздники за год
// При любой ошибке возвращает пустое множество и логирует причину
func (d *Directory) Load(ctx context.Context, year int) domain.HolidaySet {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	raw, err := d.client.GetHolidays(ctx, year)
	if err != nil {
		d.logger.Error("Load: holiday source unavailable for year=%d, continuing without holidays: %v", year, err)
		d.record(false, 0)
		return domain.EmptyHolidaySet(year)
	}

	names := make(map[domain.DateKey]string, len(raw))
	for key, name := range raw {
		k := domain.DateKey(key)
		// Отбрасываем ключи, которые не являются датами запрошенного года
		if !k.Valid() || k.Year() != year {
			d.logger.Warn("Load: skipping invalid holiday key %q for year=%d", key, year)
			continue
		}
		names[k] = name
	}

	set := domain.NewHolidaySet(year, names)
	d.logger.Info("Load: loaded %d holidays for year=%d", set.Len(), year)
	d.record(true, set.Len())
	return set
}

func (d *Directory) record(success bool, size int) {
	if d.metrics == nil {
		return
	}
	d.metrics.RecordHolidayFetch(success, size)
}
