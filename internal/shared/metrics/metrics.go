package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	assessmentStartedTotal   atomic.Uint64
	assessmentCompletedTotal atomic.Uint64
	assessmentFailedTotal    atomic.Uint64
	echoRequestsTotal        atomic.Uint64

	assessmentDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAssessmentStarted increments the started counter.
func IncAssessmentStarted() {
	assessmentStartedTotal.Add(1)
}

// IncAssessmentCompleted increments the completed counter.
func IncAssessmentCompleted() {
	assessmentCompletedTotal.Add(1)
}

// IncAssessmentFailed increments the failed counter.
func IncAssessmentFailed() {
	assessmentFailedTotal.Add(1)
}

// IncEchoRequest increments the echo endpoint counter.
func IncEchoRequest() {
	echoRequestsTotal.Add(1)
}

// ObserveAssessmentDurationMs records an assessment duration in milliseconds.
func ObserveAssessmentDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	assessmentDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
//
//	@Summary	Service metrics
//	@Tags		ops
//	@Produce	plain
//	@Success	200	{string}	string	"counters and histograms in Prometheus text exposition format"
//	@Router		/metrics [get]
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "assessments_started_total", "Total assessments started", assessmentStartedTotal.Load())
	writeCounter(&buf, "assessments_completed_total", "Total assessments completed", assessmentCompletedTotal.Load())
	writeCounter(&buf, "assessments_failed_total", "Total assessments failed", assessmentFailedTotal.Load())
	writeCounter(&buf, "echo_requests_total", "Total formatJson echo requests", echoRequestsTotal.Load())
	writeHistogram(&buf, "assessment_duration_ms", "Assessment duration in milliseconds", assessmentDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
