package handle_picker_event

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickerService/internal/service/pickers/models"
	handlePickerEvent "github.com/m04kA/SMC-PickerService/internal/usecase/handle_picker_event"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got  *handlePickerEvent.Request
	resp *handlePickerEvent.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *handlePickerEvent.Request) (*handlePickerEvent.Response, error) {
	s.got = req
	return s.resp, s.err
}

var tokyo = time.FixedZone("Asia/Tokyo", 9*60*60)

func serve(uc HandlePickerEventUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/pickers/{pickerId}/events", NewHandler(uc, tokyo, nopLogger{}).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/pickers/js-datepicker-8/events", strings.NewReader(body)))
	return w
}

func TestHandler_Handle(t *testing.T) {
	uc := &stubUseCase{resp: &models.EventResult{
		PickerID: "js-datepicker-8",
		Event:    "change",
		Date:     "2024-03-10",
		Tier:     "sunday",
		Control: &models.ControlUpdate{
			ID:    "js-time-8",
			Kind:  "input",
			Range: &models.TimeRange{Min: "13:00", Max: "20:00"},
		},
	}}

	w := serve(uc, `{"event":"change","selectedDates":["2024-03-10"],"controls":["js-time-8"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "js-datepicker-8", uc.got.PickerID)
	assert.Equal(t, []string{"js-time-8"}, uc.got.Controls)
	require.Len(t, uc.got.SelectedDates, 1)
	assert.Equal(t, time.Sunday, uc.got.SelectedDates[0].Weekday())

	assert.JSONEq(t, `{
		"pickerId": "js-datepicker-8",
		"event": "change",
		"date": "2024-03-10",
		"tier": "sunday",
		"control": {"id": "js-time-8", "kind": "input", "range": {"min": "13:00", "max": "20:00"}}
	}`, w.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"malformed body", `{"event":`, nil, http.StatusBadRequest},
		{"unknown field", `{"event":"change","foo":1}`, nil, http.StatusBadRequest},
		{"bad date", `{"event":"change","selectedDates":["10/03/2024"]}`, nil, http.StatusBadRequest},
		{"bad event", `{"event":"hover"}`, handlePickerEvent.ErrInvalidInput, http.StatusBadRequest},
		{"picker not found", `{"event":"change"}`, handlePickerEvent.ErrPickerNotFound, http.StatusNotFound},
		{"internal", `{"event":"change"}`, handlePickerEvent.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&stubUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
