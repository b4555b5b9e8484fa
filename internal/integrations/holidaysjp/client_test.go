package holidaysjp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/2024/date.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"2024-01-01":"元日","2024-01-08":"成人の日"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v1/", time.Second, nopLogger{})

	holidays, err := client.GetHolidays(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, YearResponse{"2024-01-01": "元日", "2024-01-08": "成人の日"}, holidays)
}

func TestClient_GetHolidays_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`["2024-01-01"]`))
			},
			wantErr: ErrInvalidResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second, nopLogger{}).GetHolidays(context.Background(), 2024)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetHolidays_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second, nopLogger{}).GetHolidays(context.Background(), 2024)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_GetHolidays_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, 50*time.Millisecond, nopLogger{}).GetHolidays(context.Background(), 2024)
	assert.ErrorIs(t, err, ErrUnavailable)
}
