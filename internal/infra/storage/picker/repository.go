package picker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PickerService/internal/service/pickers/models"
	"github.com/m04kA/SMC-PickerService/pkg/psqlbuilder"
)

const table = "picker_configs"

// Repository репозиторий каталога пикеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога пикеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает включенные пикеры в порядке position
func (r *Repository) List(ctx context.Context) ([]models.PickerSpec, error) {
	query, args, err := listQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	specs := make([]models.PickerSpec, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("%w: List - scan picker: %v", ErrScanRow, err)
		}

		spec, err := decodeSpec(id, raw)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return specs, nil
}

// Upsert создает или обновляет пикер
func (r *Repository) Upsert(ctx context.Context, position int, spec models.PickerSpec) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode spec %s: %v", ErrInvalidSpec, spec.ID, err)
	}

	query, args, err := upsertQuery(spec.ID, position, raw).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func listQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "spec").
		From(table).
		Where(squirrel.Eq{"enabled": true}).
		OrderBy("position", "id")
}

func upsertQuery(id string, position int, raw []byte) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns("id", "position", "spec", "enabled").
		Values(id, position, raw, true).
		Suffix("ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, spec = EXCLUDED.spec, updated_at = NOW()")
}

// decodeSpec разбирает jsonb колонку; id из строки таблицы главнее id в spec
func decodeSpec(id string, raw []byte) (models.PickerSpec, error) {
	var spec models.PickerSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return models.PickerSpec{}, fmt.Errorf("%w: picker %s: %v", ErrInvalidSpec, id, err)
	}
	spec.ID = id
	return spec, nil
}
