package converter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"audio-transcriber/internal/app/batch"
	"audio-transcriber/internal/app/model"
)

const metricsNamespace = "a2t"

// Metrics records per-job and per-batch statistics on a private registry.
type Metrics struct {
	registry      *prometheus.Registry
	jobsTotal     *prometheus.CounterVec
	jobDuration   *prometheus.HistogramVec
	batchDuration *prometheus.HistogramVec
	lastBatchJobs *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		jobsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "jobs_total",
			Help:      "Transcription jobs finished, by strategy and status.",
		}, []string{"strategy", "status"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "job_duration_seconds",
			Help:      "Wall-clock time of a single transcription call.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}, []string{"strategy", "status"}),
		batchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall-clock time of a whole batch run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"strategy"}),
		lastBatchJobs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_batch_jobs",
			Help:      "Job counts of the most recent batch, by status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(m.jobsTotal, m.jobDuration, m.batchDuration, m.lastBatchJobs)
	return m
}

func status(o model.Outcome) string {
	if o.IsSuccess() {
		return "success"
	}
	return "failure"
}

// Observer returns a batch.Observer that counts jobs for strategy.
func (m *Metrics) Observer(strategy model.Strategy) batch.Observer {
	return batch.ObserverFunc(func(_ model.Job, outcome model.Outcome, elapsed time.Duration) {
		s := status(outcome)
		m.jobsTotal.WithLabelValues(strategy.String(), s).Inc()
		m.jobDuration.WithLabelValues(strategy.String(), s).Observe(elapsed.Seconds())
	})
}

// ObserveBatch records the totals of a finished batch.
func (m *Metrics) ObserveBatch(strategy model.Strategy, result *model.BatchResult, elapsed time.Duration) {
	m.batchDuration.WithLabelValues(strategy.String()).Observe(elapsed.Seconds())
	m.lastBatchJobs.WithLabelValues("success").Set(float64(len(result.Successes())))
	m.lastBatchJobs.WithLabelValues("failure").Set(float64(len(result.Failures())))
}

// WriteToTextfile dumps the metrics in the text exposition format, suitable
// for node_exporter's textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
