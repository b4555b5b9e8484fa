package pickers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

// Orchestrator создает экземпляры пикеров и хранит их по идентификатору
type Orchestrator struct {
	loader HolidayLoader
	tiers  []domain.TimeTier
	loc    *time.Location
	clock  TimeProvider
	logger Logger

	mu        sync.RWMutex
	instances map[string]*Instance
	order     []*Instance
	holidays  domain.HolidaySet
	built     bool
}

// NewOrchestrator создает оркестратор
// tiers проверяются сразу, пустой список заменяется политикой по умолчанию
func NewOrchestrator(
	loader HolidayLoader,
	tiers []domain.TimeTier,
	loc *time.Location,
	clock TimeProvider,
	logger Logger,
) (*Orchestrator, error) {
	if len(tiers) == 0 {
		tiers = domain.DefaultTiers()
	}
	if err := domain.ValidateTiers(tiers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = &RealTimeProvider{}
	}

	return &Orchestrator{
		loader:    loader,
		tiers:     append([]domain.TimeTier(nil), tiers...),
		loc:       loc,
		clock:     clock,
		logger:    logger,
		instances: make(map[string]*Instance),
	}, nil
}

func (o *Orchestrator) now() time.Time {
	return o.clock.Now().In(o.loc)
}

// Build создает все экземпляры
// Загрузка праздников идет в отдельной горутине; пикеры, которым праздники не нужны,
// создаются не дожидаясь ее. Ошибка любой конфигурации прерывает построение.
func (o *Orchestrator) Build(ctx context.Context, configs []domain.PickerConfig) error {
	year := o.now().Year()

	holidaysCh := make(chan domain.HolidaySet, 1)
	go func() {
		holidaysCh <- o.loader.Load(ctx, year)
	}()

	// 1. Пикеры без праздников
	pending := make([]domain.PickerConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.NeedsHolidays() {
			pending = append(pending, cfg)
			continue
		}
		if _, err := o.CreateInstance(cfg, domain.EmptyHolidaySet(year)); err != nil {
			return err
		}
	}

	// 2. Ждем праздники
	var holidays domain.HolidaySet
	select {
	case holidays = <-holidaysCh:
	case <-ctx.Done():
		o.logger.Error("Build: holiday load interrupted: %v", ctx.Err())
		holidays = domain.EmptyHolidaySet(year)
	}

	o.mu.Lock()
	o.holidays = holidays
	o.mu.Unlock()

	// 3. Пикеры, зависящие от праздников
	for _, cfg := range pending {
		if _, err := o.CreateInstance(cfg, holidays); err != nil {
			return err
		}
	}

	// 4. Порядок экземпляров как в конфигурации
	o.mu.Lock()
	o.order = o.configOrder(configs)
	o.built = true
	o.mu.Unlock()

	o.logger.Info("Build: %d pickers ready, %d holidays for %d", len(configs), holidays.Len(), year)
	return nil
}

func (o *Orchestrator) configOrder(configs []domain.PickerConfig) []*Instance {
	ordered := make([]*Instance, 0, len(o.order))
	seen := make(map[string]struct{}, len(configs))
	for _, cfg := range configs {
		ordered = append(ordered, o.instances[cfg.ID])
		seen[cfg.ID] = struct{}{}
	}
	for _, inst := range o.order {
		if _, ok := seen[inst.ID()]; !ok {
			ordered = append(ordered, inst)
		}
	}
	return ordered
}

// CreateInstance проверяет конфигурацию и регистрирует экземпляр
func (o *Orchestrator) CreateInstance(cfg domain.PickerConfig, holidays domain.HolidaySet) (*Instance, error) {
	if err := cfg.Validate(o.now()); err != nil {
		o.logger.Error("CreateInstance: picker %q: %v", cfg.ID, err)
		if errors.Is(err, domain.ErrInvalidConfig) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return nil, fmt.Errorf("%w: picker %s: %v", ErrInvalidConfig, cfg.ID, err)
	}

	inst := &Instance{
		handle:   uuid.New(),
		config:   cfg,
		holidays: holidays,
		tiers:    o.tiers,
		clock:    o.clock,
		loc:      o.loc,
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.instances[cfg.ID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePicker, cfg.ID)
	}
	o.instances[cfg.ID] = inst
	o.order = append(o.order, inst)

	o.logger.Info("CreateInstance: picker %s (%s) handle=%s", cfg.ID, cfg.Capabilities, inst.handle)
	return inst, nil
}

// Instance возвращает экземпляр по идентификатору
func (o *Orchestrator) Instance(id string) (*Instance, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	inst, ok := o.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPickerNotFound, id)
	}
	return inst, nil
}

// Instances возвращает экземпляры в порядке создания
func (o *Orchestrator) Instances() []*Instance {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return append([]*Instance(nil), o.order...)
}

// Holidays возвращает набор праздников, загруженный при построении
func (o *Orchestrator) Holidays() (domain.HolidaySet, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.built {
		return domain.HolidaySet{}, ErrNotBuilt
	}
	return o.holidays, nil
}

// Tiers действующая политика временных окон
func (o *Orchestrator) Tiers() []domain.TimeTier {
	return append([]domain.TimeTier(nil), o.tiers...)
}
