package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "find_parks",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "find_parks",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordUpstreamCall(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful upstream call",
			endpoint:   "/parks",
			duration:   0.1,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed upstream call",
			endpoint:   "/alerts",
			duration:   0.5,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordUpstreamCall(tt.endpoint, tt.duration, tt.success)

			counter, err := UpstreamRequestsTotal.GetMetricWithLabelValues(tt.endpoint, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestUpstreamRateLimited(t *testing.T) {
	initial := getCounterValue(t, UpstreamRateLimited)

	UpstreamRateLimited.Inc()
	if getCounterValue(t, UpstreamRateLimited) != initial+1 {
		t.Error("expected rate limited counter to increment")
	}
}

func TestErrorEnvelopes(t *testing.T) {
	counter, err := ErrorEnvelopes.GetMetricWithLabelValues("get_alerts")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	initial := getCounterValue(t, counter)

	ErrorEnvelopes.WithLabelValues("get_alerts").Inc()
	if getCounterValue(t, counter) != initial+1 {
		t.Error("expected envelope counter to increment")
	}
}

func TestMetricsRegistered(t *testing.T) {
	// Verify all metrics are registered by checking they can be collected
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		ErrorEnvelopes,
		UpstreamRequestsTotal,
		UpstreamLatency,
		UpstreamRateLimited,
		PanicsRecovered,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "nps_mcp" {
		t.Errorf("expected namespace 'nps_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
