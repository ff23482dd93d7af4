package engine

import "github.com/prometheus/client_golang/prometheus"

// metricsSet holds the Prometheus collectors for one Registry
// instance. Collectors are registered on a Registry-owned
// prometheus.Registry rather than the global default one, because
// constructing more than one engine in the same process (every
// table-driven test case) would otherwise panic on duplicate
// registration.
type metricsSet struct {
	registry *prometheus.Registry

	edgesCreated  *prometheus.CounterVec
	edgesUpgraded prometheus.Counter
	edgesLive     prometheus.Gauge
	cascades      *prometheus.CounterVec
	violations    prometheus.Counter
	objectsLive   prometheus.Gauge
}

func newMetricsSet() *metricsSet {
	m := &metricsSet{
		registry: prometheus.NewRegistry(),
		edgesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depsafe_edges_created_total",
			Help: "Dependency edges created, by kind.",
		}, []string{"kind"}),
		edgesUpgraded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "depsafe_edges_upgraded_total",
			Help: "Existence edges upgraded to content edges.",
		}),
		edgesLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "depsafe_edges_live",
			Help: "Live dependency edges.",
		}),
		cascades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depsafe_cascades_total",
			Help: "Invalidation cascades run, by cause.",
		}, []string{"cause"}),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "depsafe_violations_total",
			Help: "Temporal violations reported to the violation handler.",
		}),
		objectsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "depsafe_objects_live",
			Help: "Live registered objects.",
		}),
	}
	m.registry.MustRegister(
		m.edgesCreated,
		m.edgesUpgraded,
		m.edgesLive,
		m.cascades,
		m.violations,
		m.objectsLive,
	)
	return m
}

// MetricsRegistry returns the Prometheus registry this Registry's
// collectors live on, or nil if metrics were not enabled via
// types.WithMetrics.
func (r *Registry) MetricsRegistry() *prometheus.Registry {
	if r.metrics == nil {
		return nil
	}
	return r.metrics.registry
}

func (r *Registry) metricEdgeCreated(k Kind) {
	if r.metrics == nil {
		return
	}
	r.metrics.edgesCreated.WithLabelValues(k.String()).Inc()
	r.metrics.edgesLive.Inc()
}

func (r *Registry) metricEdgeUpgraded() {
	if r.metrics == nil {
		return
	}
	r.metrics.edgesUpgraded.Inc()
}

func (r *Registry) metricEdgeDropped() {
	if r.metrics == nil {
		return
	}
	r.metrics.edgesLive.Dec()
}

func (r *Registry) metricCascade(cause string) {
	if r.metrics == nil {
		return
	}
	r.metrics.cascades.WithLabelValues(cause).Inc()
}

func (r *Registry) metricViolation() {
	if r.metrics == nil {
		return
	}
	r.metrics.violations.Inc()
}

func (r *Registry) metricObjectRegistered() {
	if r.metrics == nil {
		return
	}
	r.metrics.objectsLive.Inc()
}

func (r *Registry) metricObjectDestroyed() {
	if r.metrics == nil {
		return
	}
	r.metrics.objectsLive.Dec()
}
