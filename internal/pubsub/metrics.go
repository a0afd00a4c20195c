package pubsub

import "sync/atomic"

// Metrics receives broker counter updates from the queue layer. The process
// binds a concrete collector at startup via SetMetrics; until then updates
// go to a no-op implementation so the core carries no collector dependency.
type Metrics interface {
	// IncReceived counts a successfully pushed message.
	IncReceived()
	// IncAcked counts a successful ack.
	IncAcked()
	// IncNacked counts a successful nack.
	IncNacked()
	// IncRedelivered counts an expired lease promoted back to the backlog.
	IncRedelivered()
	// AddPending adjusts the gauge of messages waiting for delivery.
	AddPending(delta int)
	// AddInFlight adjusts the gauge of messages locked under a lease.
	AddInFlight(delta int)
}

// NopMetrics discards all updates.
type NopMetrics struct{}

func (NopMetrics) IncReceived()    {}
func (NopMetrics) IncAcked()       {}
func (NopMetrics) IncNacked()      {}
func (NopMetrics) IncRedelivered() {}
func (NopMetrics) AddPending(int)  {}
func (NopMetrics) AddInFlight(int) {}

type metricsHolder struct {
	m Metrics
}

var activeMetrics atomic.Pointer[metricsHolder]

func init() {
	activeMetrics.Store(&metricsHolder{m: NopMetrics{}})
}

// SetMetrics binds the process-wide metrics collector. Passing nil restores
// the no-op collector.
func SetMetrics(m Metrics) {
	if m == nil {
		m = NopMetrics{}
	}
	activeMetrics.Store(&metricsHolder{m: m})
}

func metrics() Metrics {
	return activeMetrics.Load().m
}
