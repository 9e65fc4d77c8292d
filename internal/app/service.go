// Package service wires the grade and course tables, the aggregator and the
// console report into a single run.
package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gpa/internal/adapters/console"
	"github.com/okian/gpa/internal/domain/courses"
	"github.com/okian/gpa/internal/domain/gpa"
	"github.com/okian/gpa/internal/domain/grades"
	"github.com/okian/gpa/internal/domain/model"
	"github.com/okian/gpa/pkg/logger"
	"github.com/okian/gpa/pkg/metrics"
)

// Service produces the GPA report.
type Service struct {
	// Data, built on first use unless injected
	gradeTable  grades.Table
	courseTable courses.Table

	metrics *metrics.Manager
	logger  logger.Logger
}

// New constructs a Service. Without options it uses the compiled-in tables,
// the global metrics manager and a discarding logger.
func New(opts ...Option) *Service {
	s := &Service{
		metrics: metrics.Default(),
		logger:  logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run aggregates the course table, writes the report to w and records the
// run's metrics. The returned summary is the one that was rendered.
func (s *Service) Run(ctx context.Context, w io.Writer) (gpa.Summary, error) {
	if err := ctx.Err(); err != nil {
		return gpa.Summary{}, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	log := s.logger.With(logger.String("run_id", uuid.NewString()))

	gradeTable := s.gradeTable
	if gradeTable == nil {
		gradeTable = grades.Default()
	}
	courseTable := s.courseTable
	if courseTable == nil {
		courseTable = courses.Default()
	}
	log.Debug(ctx, "tables built",
		logger.Int("grades", len(gradeTable)),
		logger.Int("courses", len(courseTable)),
	)

	agg := gpa.New(
		gpa.WithGradeTable(gradeTable),
		gpa.WithLogger(log.Named("aggregate")),
	)

	start := time.Now()
	summary, err := agg.Aggregate(ctx, courseTable)
	if err != nil {
		return gpa.Summary{}, fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	s.metrics.RecordAggregationDuration(time.Since(start).Seconds())

	if err := console.Render(w, summary); err != nil {
		log.Error(ctx, "report could not be written", logger.Error(err))
		return summary, fmt.Errorf("%w: %w", ErrRender, err)
	}

	s.record(courseTable, gradeTable, summary)

	value, ok := summary.GPA()
	fields := []logger.Field{
		logger.Int("total_credits", summary.TotalCredits),
		logger.Int("graded_credits", summary.GradedCredits),
		logger.Float64("grade_points", summary.GradePoints),
	}
	if ok {
		fields = append(fields, logger.Float64("gpa", value))
	}
	if len(summary.Unrecognized) > 0 {
		fields = append(fields, logger.Any("unrecognized_grades", summary.Unrecognized))
	}
	log.Info(ctx, "report rendered", fields...)

	return summary, nil
}

// record publishes the summary and a per-status course count.
func (s *Service) record(courseTable courses.Table, gradeTable grades.Table, summary gpa.Summary) {
	value, _ := summary.GPA()
	s.metrics.UpdateTotals(summary.TotalCredits, summary.GradedCredits, summary.GradePoints, value)

	for _, sem := range model.Semesters() {
		s.metrics.UpdateSemesterCredits(sem.String(), summary.Distribution[sem])
	}

	for _, c := range courseTable {
		s.metrics.RecordCourse(courseStatus(c, gradeTable))
	}
}

func courseStatus(c model.Course, gradeTable grades.Table) string {
	switch {
	case !c.Posted():
		return metrics.StatusPlanned
	case c.Grade == model.Pass:
		return metrics.StatusPass
	}
	if _, ok := gradeTable.Points(c.Grade); !ok {
		return metrics.StatusUnrecognized
	}
	return metrics.StatusGraded
}
