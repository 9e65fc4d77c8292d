// Package model contains domain models passed between layers.
package model

// Semester identifies an academic term. Values are ordered chronologically
// and double as indexes into per-semester arrays.
type Semester int

// Known semesters, oldest first.
const (
	Fall2020 Semester = iota
	Spring2021
	Summer2021
	Fall2021
	Spring2022
	Summer2022
	Fall2022
	Spring2023
	Summer2023
	Fall2023
	Spring2024

	// SemesterCount is the number of known semesters. Keep it last.
	SemesterCount = int(iota)
)

var semesterNames = [SemesterCount]string{
	Fall2020:   "Fall2020",
	Spring2021: "Spring2021",
	Summer2021: "Summer2021",
	Fall2021:   "Fall2021",
	Spring2022: "Spring2022",
	Summer2022: "Summer2022",
	Fall2022:   "Fall2022",
	Spring2023: "Spring2023",
	Summer2023: "Summer2023",
	Fall2023:   "Fall2023",
	Spring2024: "Spring2024",
}

// Semesters returns every known semester in chronological order.
func Semesters() []Semester {
	out := make([]Semester, SemesterCount)
	for i := range out {
		out[i] = Semester(i)
	}
	return out
}

// Valid reports whether s is one of the known semesters.
func (s Semester) Valid() bool {
	return s >= 0 && int(s) < SemesterCount
}

func (s Semester) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return semesterNames[s]
}
