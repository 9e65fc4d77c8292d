package model

// Letter is a letter-grade symbol such as "A" or "B+".
type Letter string

const (
	// NoGrade marks a course that has not been graded yet (planned or in progress).
	NoGrade Letter = ""
	// Pass marks a completed course that is not graded on the 4.0 scale.
	Pass Letter = "P"
)

// Course is one row of the course table.
type Course struct {
	Semester Semester // term the course is (or will be) taken
	Credits  uint8    // credit weight, never negative
	Grade    Letter   // posted grade, NoGrade when none
}

// Posted reports whether a grade has been posted for the course.
func (c Course) Posted() bool {
	return c.Grade != NoGrade
}

// Counted reports whether the course counts toward the GPA: a grade is
// posted and it is not a pass.
func (c Course) Counted() bool {
	return c.Posted() && c.Grade != Pass
}
