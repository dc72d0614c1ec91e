package bmerge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds statistics of a merge run. They're written in the Prometheus
// text format, to be picked up by the node exporter's textfile collector.
type Metrics struct {
	registry    *prometheus.Registry
	status      *prometheus.GaugeVec
	hosts       *prometheus.GaugeVec
	parseErrors *prometheus.GaugeVec
	merged      prometheus.Gauge
	failed      prometheus.Gauge
	lastRun     prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		status: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "blockmerge_source_status",
			Help: "Where the content of a blocklist came from in the last run.",
		}, []string{"source", "status"}),
		hosts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "blockmerge_source_hosts",
			Help: "Valid entries in a blocklist.",
		}, []string{"source"}),
		parseErrors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "blockmerge_source_parse_errors",
			Help: "Lines of a blocklist that could not be parsed.",
		}, []string{"source"}),
		merged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockmerge_merged_hosts",
			Help: "Hosts in the merged blocklist.",
		}),
		failed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockmerge_run_failed",
			Help: "1 if any blocklist failed in the last run.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockmerge_last_run_timestamp_seconds",
			Help: "Time the last run completed.",
		}),
	}
	m.registry.MustRegister(m.status, m.hosts, m.parseErrors, m.merged, m.failed, m.lastRun)
	return m
}

// Record sets the metrics from the result of a merge.
func (m *Metrics) Record(merged *HostSet, report *Report) {
	for _, s := range report.Sources {
		src := s.Source.String()
		for _, st := range []SourceStatus{SourceFetched, SourceCached, SourceSkipped} {
			v := 0.0
			if st == s.Status {
				v = 1
			}
			m.status.WithLabelValues(src, st.String()).Set(v)
		}
		m.hosts.WithLabelValues(src).Set(float64(s.Hosts))
		m.parseErrors.WithLabelValues(src).Set(float64(s.ParseErrors))
	}
	m.merged.Set(float64(merged.Len()))
	if report.Failed() {
		m.failed.Set(1)
	} else {
		m.failed.Set(0)
	}
	m.lastRun.Set(float64(time.Now().Unix()))
}

// Gatherer exposes the collected metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes the metrics to path, replacing the file atomically.
func (m *Metrics) WriteFile(path string) error {
	return WrapError(KindOutput, prometheus.WriteToTextfile(path, m.registry), "could not write metrics to %s", path)
}
