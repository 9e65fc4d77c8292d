package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/okian/gpa/internal/adapters/console"
	"github.com/okian/gpa/internal/domain/gpa"
	"github.com/okian/gpa/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender(t *testing.T) {
	convey.Convey("Given a summary with graded credits", t, func() {
		s := gpa.Summary{
			TotalCredits:  11,
			GradedCredits: 4,
			GradePoints:   16,
		}
		s.Distribution[model.Fall2020] = 4
		s.Distribution[model.Spring2023] = 7

		convey.Convey("When it is rendered", func() {
			var buf bytes.Buffer
			err := console.Render(&buf, s)

			convey.Convey("Then it should print the four report lines", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(buf.String(), convey.ShouldEqual,
					"So far, I have taken 4 credits.\n"+
						"I have 11 credits planned. (Requires at least 120 to graduate)\n"+
						"\tGPA: 4\n"+
						"credit distribution:\t[4, 0, 0, 0, 0, 0, 0, 7, 0, 0, 0]\n")
			})
		})
	})

	convey.Convey("Given a summary with nothing graded", t, func() {
		s := gpa.Summary{TotalCredits: 1}
		s.Distribution[model.Fall2021] = 1

		convey.Convey("When it is rendered", func() {
			var buf bytes.Buffer
			err := console.Render(&buf, s)

			convey.Convey("Then the GPA line should read N/A", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(buf.String(), convey.ShouldContainSubstring, "\tGPA: N/A\n")
				convey.So(buf.String(), convey.ShouldStartWith, "So far, I have taken 0 credits.\n")
			})
		})
	})

	convey.Convey("Given a writer that fails", t, func() {
		err := console.Render(failingWriter{}, gpa.Summary{})

		convey.Convey("Then Render should wrap the write error", func() {
			convey.So(errors.Is(err, console.ErrWrite), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "disk full")
		})
	})
}

func TestFormat(t *testing.T) {
	convey.Convey("Given GPA formatting", t, func() {
		convey.Convey("Then fractional averages keep their shortest form", func() {
			convey.So(console.FormatGPA(gpa.Summary{GradedCredits: 4, GradePoints: 14}), convey.ShouldEqual, "3.5")
			convey.So(console.FormatGPA(gpa.Summary{GradedCredits: 2, GradePoints: 8}), convey.ShouldEqual, "4")
		})
	})

	convey.Convey("Given distribution formatting", t, func() {
		convey.So(console.FormatDistribution(nil), convey.ShouldEqual, "[]")
		convey.So(console.FormatDistribution([]int{3}), convey.ShouldEqual, "[3]")
		convey.So(console.FormatDistribution([]int{12, 0, 9}), convey.ShouldEqual, "[12, 0, 9]")
	})
}
