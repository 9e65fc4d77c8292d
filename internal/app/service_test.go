package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	service "github.com/okian/gpa/internal/app"
	"github.com/okian/gpa/internal/domain/courses"
	"github.com/okian/gpa/internal/domain/grades"
	"github.com/okian/gpa/internal/domain/model"
	"github.com/okian/gpa/pkg/logger"
	"github.com/okian/gpa/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

// seriesCount returns the number of series in the named family.
func seriesCount(reg *prometheus.Registry, name string) int {
	mfs, err := reg.Gather()
	if err != nil {
		return -1
	}
	for _, mf := range mfs {
		if mf.GetName() == name {
			return len(mf.GetMetric())
		}
	}
	return 0
}

func TestService_Run(t *testing.T) {
	Convey("Given a service with the compiled-in tables", t, func() {
		reg := prometheus.NewRegistry()
		svc := service.New(service.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(reg))))

		Convey("When the report is run", func() {
			var out bytes.Buffer
			summary, err := svc.Run(context.Background(), &out)

			Convey("Then it should print the four report lines", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
				So(len(lines), ShouldEqual, 4)
				So(lines[0], ShouldEqual, "So far, I have taken 84 credits.")
				So(lines[1], ShouldEqual, "I have 113 credits planned. (Requires at least 120 to graduate)")
				So(lines[2], ShouldStartWith, "\tGPA: 3.98428571")
				So(lines[3], ShouldEqual, "credit distribution:\t[12, 18, 9, 17, 13, 3, 13, 13, 0, 9, 6]")
			})

			Convey("And it should return the rendered summary", func() {
				So(summary.TotalCredits, ShouldEqual, 113)
				So(summary.GradedCredits, ShouldEqual, 84)
			})

			Convey("And it should record metrics for the run", func() {
				So(seriesCount(reg, "gpa_report_semester_credits"), ShouldEqual, model.SemesterCount)
				// graded, pass and planned; nothing unrecognized
				So(seriesCount(reg, "gpa_report_courses_total"), ShouldEqual, 3)
				So(seriesCount(reg, "gpa_report_gpa"), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a service whose table has nothing graded", t, func() {
		svc := service.New(
			service.WithMetrics(metrics.NewManager()),
			service.WithCourseTable(courses.Table{
				"Fitness Activities": {Semester: model.Fall2021, Credits: 1, Grade: model.Pass},
				"CS Project IV":      {Semester: model.Spring2024, Credits: 4},
			}),
		)

		Convey("When the report is run", func() {
			var out bytes.Buffer
			_, err := svc.Run(context.Background(), &out)

			Convey("Then the GPA should be reported as N/A", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "So far, I have taken 0 credits.\n")
				So(out.String(), ShouldContainSubstring, "I have 5 credits planned.")
				So(out.String(), ShouldContainSubstring, "\tGPA: N/A\n")
				So(out.String(), ShouldContainSubstring, "[0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 4]")
			})
		})
	})

	Convey("Given a service with a grade table missing a used letter", t, func() {
		var logs bytes.Buffer
		So(logger.Init(logger.WithWriter(&logs)), ShouldBeNil)
		So(logger.SetLevelString("debug"), ShouldBeNil)
		reg := prometheus.NewRegistry()

		svc := service.New(
			service.WithLogger(logger.Get()),
			service.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(reg))),
			service.WithGradeTable(grades.Table{"A": 4.0}),
			service.WithCourseTable(courses.Table{
				"Calculus II":  {Semester: model.Fall2020, Credits: 4, Grade: "A"},
				"Calculus III": {Semester: model.Spring2021, Credits: 4, Grade: "A+"},
			}),
		)

		Convey("When the report is run", func() {
			var out bytes.Buffer
			summary, err := svc.Run(context.Background(), &out)

			Convey("Then the miss should count as graded with no points", func() {
				So(err, ShouldBeNil)
				So(summary.GradedCredits, ShouldEqual, 8)
				So(summary.GradePoints, ShouldEqual, 16.0)
				So(out.String(), ShouldContainSubstring, "\tGPA: 2\n")
			})

			Convey("And it should be logged and counted, not reported as an error", func() {
				So(logs.String(), ShouldContainSubstring, "grade not in grade table")
				So(logs.String(), ShouldContainSubstring, "run_id=")
				So(seriesCount(reg, "gpa_report_courses_total"), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When the report is run", func() {
			var out bytes.Buffer
			_, err := service.New().Run(ctx, &out)

			Convey("Then nothing should be written", func() {
				So(errors.Is(err, service.ErrCancelled), ShouldBeTrue)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(out.Len(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a writer that fails", t, func() {
		_, err := service.New(service.WithMetrics(metrics.NewManager())).Run(context.Background(), failingWriter{})

		Convey("Then Run should return a render error", func() {
			So(errors.Is(err, service.ErrRender), ShouldBeTrue)
		})
	})
}
