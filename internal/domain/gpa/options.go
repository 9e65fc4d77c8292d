package gpa

import (
	"github.com/okian/gpa/internal/domain/grades"
	"github.com/okian/gpa/pkg/logger"
)

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithGradeTable replaces the grade table used for point lookups.
func WithGradeTable(t grades.Table) Option {
	return func(a *Aggregator) {
		if t != nil {
			a.grades = t
		}
	}
}

// WithLogger sets the logger used for lookup misses and skipped courses.
func WithLogger(l logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}
