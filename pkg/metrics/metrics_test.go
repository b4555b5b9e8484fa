package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Records(t *testing.T) {
	m := New("test")

	m.RecordHolidayFetch(false, 0)
	m.RecordHolidayFetch(true, 16)
	m.RecordPickerEvent("js-datepicker-8", "change", true)
	m.RecordDayDecision("js-datepicker-4", "disabled")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/holidays", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HolidayFetchTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HolidayFetchTotal.WithLabelValues("success")))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.HolidaySetSize))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PickerEventsTotal.WithLabelValues("js-datepicker-8", "change", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DayDecisionsTotal.WithLabelValues("js-datepicker-4", "disabled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/holidays", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHolidayFetch(true, 1)
		m.RecordPickerEvent("p", "ready", false)
		m.RecordDayDecision("p", "selectable")
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("test")
	m.RecordHolidayFetch(true, 3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "picker_service_holiday_set_size")
}
