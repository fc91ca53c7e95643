package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every metric of a run, apart from the default registry.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Catalog Metrics
var (
	ItemsScanned = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsScanned,
			Help: HelpTextItemsScanned,
		},
	)

	ItemsCataloged = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCataloged,
			Help: HelpTextItemsCataloged,
		},
	)

	ItemsSkipped = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSkipped,
			Help: HelpTextItemsSkipped,
		},
		[]string{LabelReason},
	)

	FilesParsed = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFilesParsed,
			Help: HelpTextFilesParsed,
		},
	)
)

// Output Metrics
var (
	ArtifactsWritten = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameArtifactsWritten,
			Help: HelpTextArtifactsWritten,
		},
		[]string{LabelArtifact},
	)

	ArtifactBytes = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameArtifactBytes,
			Help: HelpTextArtifactBytes,
		},
		[]string{LabelArtifact},
	)

	RunDuration = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRunDuration,
			Help: HelpTextRunDuration,
		},
	)

	LastSuccess = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLastSuccess,
			Help: HelpTextLastSuccess,
		},
	)
)

// RecordArtifact records one written output file.
func RecordArtifact(name string, size int) {
	ArtifactsWritten.WithLabelValues(name).Inc()
	ArtifactBytes.WithLabelValues(name).Set(float64(size))
}

// RecordRun records the duration of a finished run and, on success, its end time.
func RecordRun(started time.Time, success bool) {
	RunDuration.Set(time.Since(started).Seconds())
	if success {
		LastSuccess.SetToCurrentTime()
	}
}

// WriteTextfile exports the registry in the node exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
