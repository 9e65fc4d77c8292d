package courses_test

import (
	"sort"
	"testing"

	"github.com/okian/gpa/internal/domain/courses"
	"github.com/okian/gpa/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefault(t *testing.T) {
	Convey("Given the default course table", t, func() {
		table := courses.Default()

		Convey("Then it should hold every authored course", func() {
			So(len(table), ShouldEqual, 39)
		})

		Convey("And every course should sit in a known semester", func() {
			for _, c := range table {
				So(c.Semester.Valid(), ShouldBeTrue)
			}
		})

		Convey("And every known semester should have at least one course", func() {
			seen := make(map[model.Semester]bool)
			for _, c := range table {
				seen[c.Semester] = true
			}
			for _, s := range model.Semesters() {
				So(seen[s], ShouldBeTrue)
			}
		})

		Convey("And the pass course should be recorded as such", func() {
			c, ok := table["Fitness Activities"]
			So(ok, ShouldBeTrue)
			So(c.Grade, ShouldEqual, model.Pass)
			So(int(c.Credits), ShouldEqual, 1)
		})

		Convey("And planned courses should carry no grade", func() {
			c, ok := table["Operating Systems"]
			So(ok, ShouldBeTrue)
			So(c.Posted(), ShouldBeFalse)
			So(c.Semester, ShouldEqual, model.Spring2023)
		})
	})

	Convey("Given the course names", t, func() {
		table := courses.Default()
		names := table.Names()

		Convey("Then they should be sorted and complete", func() {
			So(len(names), ShouldEqual, len(table))
			So(sort.StringsAreSorted(names), ShouldBeTrue)
			for _, n := range names {
				_, ok := table[n]
				So(ok, ShouldBeTrue)
			}
		})
	})

	Convey("Given an empty table", t, func() {
		Convey("Then Names should be empty", func() {
			So(courses.Table{}.Names(), ShouldBeEmpty)
		})
	})
}
