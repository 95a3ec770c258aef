package authgate

import "sync/atomic"

// MetricID identifies one engine counter.
type MetricID uint16

const (
	// MetricBootRestore is an exported constant or variable used by the session engine.
	MetricBootRestore MetricID = iota
	// MetricBootAnonymous is an exported constant or variable used by the session engine.
	MetricBootAnonymous
	// MetricLoginSuccess is an exported constant or variable used by the session engine.
	MetricLoginSuccess
	// MetricLoginFailure is an exported constant or variable used by the session engine.
	MetricLoginFailure
	// MetricTwoFactorChallenge is an exported constant or variable used by the session engine.
	MetricTwoFactorChallenge
	// MetricTwoFactorSuccess is an exported constant or variable used by the session engine.
	MetricTwoFactorSuccess
	// MetricTwoFactorFailure is an exported constant or variable used by the session engine.
	MetricTwoFactorFailure
	// MetricLogout is an exported constant or variable used by the session engine.
	MetricLogout
	// MetricConcurrentRejected is an exported constant or variable used by the session engine.
	MetricConcurrentRejected
	// MetricInvalidTransition is an exported constant or variable used by the session engine.
	MetricInvalidTransition
	// MetricPersistFailure is an exported constant or variable used by the session engine.
	MetricPersistFailure

	metricCount
)

var metricNames = [metricCount]string{
	MetricBootRestore:        "authgate_boot_restore_total",
	MetricBootAnonymous:      "authgate_boot_anonymous_total",
	MetricLoginSuccess:       "authgate_login_success_total",
	MetricLoginFailure:       "authgate_login_failure_total",
	MetricTwoFactorChallenge: "authgate_twofactor_challenge_total",
	MetricTwoFactorSuccess:   "authgate_twofactor_success_total",
	MetricTwoFactorFailure:   "authgate_twofactor_failure_total",
	MetricLogout:             "authgate_logout_total",
	MetricConcurrentRejected: "authgate_concurrent_rejected_total",
	MetricInvalidTransition:  "authgate_invalid_transition_total",
	MetricPersistFailure:     "authgate_persist_failure_total",
}

// MetricName returns the stable exporter name for the counter, or ""
// for an unknown id.
func MetricName(id MetricID) string {
	if id >= metricCount {
		return ""
	}
	return metricNames[id]
}

// MetricIDs returns every declared counter id in definition order.
func MetricIDs() []MetricID {
	out := make([]MetricID, 0, metricCount)
	for id := MetricID(0); id < metricCount; id++ {
		out = append(out, id)
	}
	return out
}

// Metrics is a fixed-size lock-free counter table.
type Metrics struct {
	counters [metricCount]atomic.Uint64
}

// NewMetrics returns an empty counter table.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Inc increments the counter. Unknown ids are ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot is a point-in-time copy of every counter.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot copies the counter table.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricCount),
	}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
