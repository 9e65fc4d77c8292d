package service

import (
	"github.com/okian/gpa/internal/domain/courses"
	"github.com/okian/gpa/internal/domain/grades"
	"github.com/okian/gpa/pkg/logger"
	"github.com/okian/gpa/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager runs are recorded on.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithGradeTable replaces the compiled-in grade table. Used by tests.
func WithGradeTable(t grades.Table) Option {
	return func(s *Service) {
		if t != nil {
			s.gradeTable = t
		}
	}
}

// WithCourseTable replaces the compiled-in course table. Used by tests.
func WithCourseTable(t courses.Table) Option {
	return func(s *Service) {
		if t != nil {
			s.courseTable = t
		}
	}
}
