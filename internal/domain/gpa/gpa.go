// Package gpa folds a course table into credit totals and a grade-point average.
package gpa

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/okian/gpa/internal/domain/courses"
	"github.com/okian/gpa/internal/domain/grades"
	"github.com/okian/gpa/internal/domain/model"
	"github.com/okian/gpa/pkg/logger"
)

// Summary is the result of one aggregation pass.
type Summary struct {
	// TotalCredits sums credits over every course, graded or not.
	TotalCredits int
	// GradedCredits sums credits over courses with a posted non-pass grade.
	GradedCredits int
	// GradePoints sums credits * grade value over graded courses.
	GradePoints float64
	// Distribution holds total credits per semester, indexed by model.Semester.
	Distribution [model.SemesterCount]int
	// Unrecognized lists posted grades missing from the grade table, sorted.
	// Their credits are in GradedCredits but add nothing to GradePoints.
	Unrecognized []model.Letter
}

// GPA returns GradePoints / GradedCredits. When nothing has been graded the
// average is undefined: it returns NaN and false.
func (s Summary) GPA() (float64, bool) {
	if s.GradedCredits == 0 {
		return math.NaN(), false
	}
	return s.GradePoints / float64(s.GradedCredits), true
}

// Aggregator computes a Summary from a course table.
type Aggregator struct {
	grades grades.Table
	logger logger.Logger
}

// New creates an Aggregator using the default grade table unless overridden.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		grades: grades.Default(),
		logger: logger.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Aggregate makes a single pass over table. Iteration order does not matter:
// every accumulator is a sum.
func (a *Aggregator) Aggregate(ctx context.Context, table courses.Table) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, fmt.Errorf("aggregate: %w", err)
	}

	var s Summary
	for name, c := range table {
		credits := int(c.Credits)
		s.TotalCredits += credits

		if c.Semester.Valid() {
			s.Distribution[c.Semester] += credits
		} else {
			a.logger.Warn(ctx, "course has unknown semester; left out of distribution",
				logger.String("course", name),
				logger.Int("semester", int(c.Semester)),
			)
		}

		if !c.Counted() {
			continue
		}
		s.GradedCredits += credits

		value, ok := a.grades.Points(c.Grade)
		if !ok {
			// Credits stay graded; the course just adds no points.
			s.Unrecognized = append(s.Unrecognized, c.Grade)
			a.logger.Debug(ctx, "grade not in grade table",
				logger.String("course", name),
				logger.String("grade", string(c.Grade)),
			)
			continue
		}
		s.GradePoints += float64(credits) * value
	}
	slices.Sort(s.Unrecognized)

	return s, nil
}
