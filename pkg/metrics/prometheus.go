// Package metrics provides Prometheus metrics for GPA aggregation runs.
package metrics

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Course status label values.
const (
	StatusGraded       = "graded"
	StatusPass         = "pass"
	StatusPlanned      = "planned"
	StatusUnrecognized = "unrecognized"
)

// Manager owns the metrics of one registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         *prometheus.Registry

	// Aggregation results
	creditsTotal    prometheus.Gauge
	creditsGraded   prometheus.Gauge
	gradePoints     prometheus.Gauge
	gpa             prometheus.Gauge
	semesterCredits *prometheus.GaugeVec

	// Course table quality
	courses *prometheus.CounterVec

	// Run performance
	aggregationDuration prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Initialize global metrics on a private registry so Go runtime collectors
// stay out of the export.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gpa",
		subsystem:        "report",
		histogramBuckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		enabled:          true,
		customLabels:     make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.creditsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "credits_total",
		Help:        "Credits across all courses, graded or not",
		ConstLabels: labels,
	})

	m.creditsGraded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "credits_graded",
		Help:        "Credits of courses with a posted non-pass grade",
		ConstLabels: labels,
	})

	m.gradePoints = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "grade_points",
		Help:        "Sum of credits times grade value over graded courses",
		ConstLabels: labels,
	})

	m.gpa = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "gpa",
		Help:        "Grade point average; NaN when nothing has been graded",
		ConstLabels: labels,
	})

	m.semesterCredits = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "semester_credits",
			Help:        "Credits per semester, graded or not",
			ConstLabels: labels,
		},
		[]string{"semester"},
	)

	m.courses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "courses_total",
			Help:        "Courses seen by status (graded, pass, planned, unrecognized)",
			ConstLabels: labels,
		},
		[]string{"status"},
	)

	m.aggregationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_duration_seconds",
		Help:        "Time spent folding the course table",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})
}

// UpdateTotals sets the credit and grade-point gauges. gpa may be NaN.
func (m *Manager) UpdateTotals(total, graded int, points, gpa float64) {
	if !m.enabled {
		return
	}
	m.creditsTotal.Set(float64(total))
	m.creditsGraded.Set(float64(graded))
	m.gradePoints.Set(points)
	m.gpa.Set(gpa)
}

// UpdateSemesterCredits sets the credit gauge for one semester.
func (m *Manager) UpdateSemesterCredits(semester string, credits int) {
	if !m.enabled {
		return
	}
	m.semesterCredits.WithLabelValues(semester).Set(float64(credits))
}

// RecordCourse counts one course under the given status.
func (m *Manager) RecordCourse(status string) {
	if !m.enabled {
		return
	}
	m.courses.WithLabelValues(status).Inc()
}

// RecordAggregationDuration observes one aggregation pass.
func (m *Manager) RecordAggregationDuration(seconds float64) {
	if !m.enabled || math.IsNaN(seconds) || seconds < 0 {
		return
	}
	m.aggregationDuration.Observe(seconds)
}

// Registry returns the registry backing m.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric of m to path in the text exposition
// format read by the node exporter's textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// Default returns the global manager.
func Default() *Manager {
	return globalManager
}

// UpdateTotals updates the totals on the global manager.
func UpdateTotals(total, graded int, points, gpa float64) {
	globalManager.UpdateTotals(total, graded, points, gpa)
}

// UpdateSemesterCredits updates one semester on the global manager.
func UpdateSemesterCredits(semester string, credits int) {
	globalManager.UpdateSemesterCredits(semester, credits)
}

// RecordCourse counts one course on the global manager.
func RecordCourse(status string) {
	globalManager.RecordCourse(status)
}

// RecordAggregationDuration observes one pass on the global manager.
func RecordAggregationDuration(seconds float64) {
	globalManager.RecordAggregationDuration(seconds)
}

// WriteTextfile exports the global manager's registry to path.
func WriteTextfile(path string) error {
	return globalManager.WriteTextfile(path)
}

// GetRegistry returns the global registry.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}
