package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the engine's Prometheus metrics. Skipped work items are a
// counter rather than an error: generation succeeds while quietly omitting
// items nobody can take, and the counter is how that surfaces.
type Collector struct {
	generations        prometheus.Counter
	simulations        prometheus.Counter
	itemsSkipped       prometheus.Counter
	versionRecords     prometheus.Counter
	overridesRejected  prometheus.Counter
	versionWriteErrors prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
// Pass a fresh prometheus.NewRegistry() in tests.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crewplan_generations_total",
			Help: "Total number of plan generations persisted",
		}),
		simulations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crewplan_simulations_total",
			Help: "Total number of simulation runs",
		}),
		itemsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crewplan_work_items_skipped_total",
			Help: "Total number of work items skipped for lack of a skill-matching staff member",
		}),
		versionRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crewplan_version_records_total",
			Help: "Total number of version records written",
		}),
		overridesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crewplan_simulation_overrides_rejected_total",
			Help: "Total number of simulation override entries rejected as malformed",
		}),
		versionWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crewplan_version_write_failures_total",
			Help: "Total number of non-fatal version history write failures",
		}),
	}

	reg.MustRegister(
		c.generations,
		c.simulations,
		c.itemsSkipped,
		c.versionRecords,
		c.overridesRejected,
		c.versionWriteErrors,
	)
	return c
}

func (c *Collector) RecordGeneration(skipped, versionRecords int) {
	c.generations.Inc()
	c.itemsSkipped.Add(float64(skipped))
	c.versionRecords.Add(float64(versionRecords))
}

func (c *Collector) RecordSimulation(skipped, rejectedOverrides int) {
	c.simulations.Inc()
	c.itemsSkipped.Add(float64(skipped))
	c.overridesRejected.Add(float64(rejectedOverrides))
}

func (c *Collector) RecordVersionWriteFailure() {
	c.versionWriteErrors.Inc()
}

// Handler returns the exposition endpoint for the registry the collector was
// registered with.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
