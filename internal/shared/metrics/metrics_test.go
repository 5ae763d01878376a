package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderContainsAllSeries(t *testing.T) {
	out := Render()

	names := []string{
		"assessments_started_total",
		"assessments_completed_total",
		"assessments_failed_total",
		"echo_requests_total",
		"assessment_duration_ms",
	}
	for _, name := range names {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in rendered metrics", name)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 20})
	h.Observe(5)
	h.Observe(15)
	h.Observe(100)

	var buf bytes.Buffer
	writeHistogram(&buf, "d", "test histogram", h.Snapshot())
	out := buf.String()

	for _, line := range []string{
		`d_bucket{le="10"} 1`,
		`d_bucket{le="20"} 2`,
		`d_bucket{le="+Inf"} 3`,
		"d_sum 120",
		"d_count 3",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("expected %q in:\n%s", line, out)
		}
	}
}
