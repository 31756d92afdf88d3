package suggestion

import (
	"sync/atomic"
	"time"
)

// Metrics tracks suggestion serving metrics
type Metrics struct {
	rulesServed int64
	aiServed    int64
	aiCalls     int64
	aiErrors    int64
	aiLatency   int64 // Total latency in nanoseconds
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		rulesServed: atomic.LoadInt64(&globalMetrics.rulesServed),
		aiServed:    atomic.LoadInt64(&globalMetrics.aiServed),
		aiCalls:     atomic.LoadInt64(&globalMetrics.aiCalls),
		aiErrors:    atomic.LoadInt64(&globalMetrics.aiErrors),
		aiLatency:   atomic.LoadInt64(&globalMetrics.aiLatency),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.rulesServed, 0)
	atomic.StoreInt64(&globalMetrics.aiServed, 0)
	atomic.StoreInt64(&globalMetrics.aiCalls, 0)
	atomic.StoreInt64(&globalMetrics.aiErrors, 0)
	atomic.StoreInt64(&globalMetrics.aiLatency, 0)
}

func recordServed(source string) {
	if source == SourceAI {
		atomic.AddInt64(&globalMetrics.aiServed, 1)
		return
	}
	atomic.AddInt64(&globalMetrics.rulesServed, 1)
}

func recordAICall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.aiCalls, 1)
	atomic.AddInt64(&globalMetrics.aiLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.aiErrors, 1)
	}
}

// AverageAILatency returns the average AI call latency in milliseconds
func (m Metrics) AverageAILatency() float64 {
	if m.aiCalls == 0 {
		return 0
	}
	avgNs := float64(m.aiLatency) / float64(m.aiCalls)
	return avgNs / 1e6 // Convert nanoseconds to milliseconds
}

// AIErrorRate returns the AI error rate as a percentage
func (m Metrics) AIErrorRate() float64 {
	if m.aiCalls == 0 {
		return 0
	}
	return float64(m.aiErrors) / float64(m.aiCalls) * 100
}

// Snapshot is the JSON shape served by the metrics endpoint.
type Snapshot struct {
	RulesServed    int64   `json:"rules_served"`
	AIServed       int64   `json:"ai_served"`
	AICalls        int64   `json:"ai_calls"`
	AIErrors       int64   `json:"ai_errors"`
	AIAvgLatencyMs float64 `json:"ai_avg_latency_ms"`
	AIErrorRatePct float64 `json:"ai_error_rate_pct"`
}

func (m Metrics) Snapshot() Snapshot {
	return Snapshot{
		RulesServed:    m.rulesServed,
		AIServed:       m.aiServed,
		AICalls:        m.aiCalls,
		AIErrors:       m.aiErrors,
		AIAvgLatencyMs: m.AverageAILatency(),
		AIErrorRatePct: m.AIErrorRate(),
	}
}
