package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimal = `
[[pickers.items]]
id = "js-datepicker-0"
`

func TestLoad_SampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.HolidayAPI.Timeout)
	assert.Equal(t, 62*24*time.Hour, cfg.Calendar.MaxSpan)
	assert.Equal(t, "Asia/Tokyo", cfg.Calendar.Location.String())
	assert.Len(t, cfg.TimeTiers, 3)
	require.Len(t, cfg.Pickers.Items, 10)

	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, cfg.Calendar.Location)
	for _, item := range cfg.Pickers.Items {
		pc, err := item.ToDomain()
		require.NoError(t, err, item.ID)
		assert.NoError(t, pc.Validate(now), item.ID)
	}

	four, err := cfg.Pickers.Items[4].ToDomain()
	require.NoError(t, err)
	assert.Len(t, four.Blackout, 3)
	assert.Equal(t, time.Wednesday, four.Blackout[2].Weekday)

	nine, err := cfg.Pickers.Items[9].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.ControlOptionList, nine.Control.Kind)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, SourceFile, cfg.Pickers.Source)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, domain.DefaultLocation, cfg.Calendar.Location.String())
	assert.Equal(t, 10*time.Second, cfg.HolidayAPI.Timeout)
	assert.Empty(t, cfg.TimeTiers)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", minimal + "\n[server]\nhttp_prot = 1\n"},
		{"bad port", minimal + "\n[server]\nhttp_port = 70000\n"},
		{"bad timeout", minimal + "\n[holiday_api]\ntimeout = \"soon\"\n"},
		{"bad timezone", minimal + "\n[calendar]\ntimezone = \"Mars/Olympus\"\n"},
		{"bad span", minimal + "\n[calendar]\nmax_span = \"-1d\"\n"},
		{"span under a day", minimal + "\n[calendar]\nmax_span = \"12h\"\n"},
		{"no pickers", "[pickers]\nsource = \"file\"\n"},
		{"postgres without db", "[pickers]\nsource = \"postgres\"\n"},
		{"unknown source", "[pickers]\nsource = \"s3\"\n"},
		{"tiers without default", minimal + "\n[[time_tiers]]\nname = \"sun\"\nkind = \"weekday\"\nweekday = \"sun\"\nmin_time = \"13:00\"\nmax_time = \"20:00\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "pickers", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=pickers sslmode=disable", db.DSN())
}
