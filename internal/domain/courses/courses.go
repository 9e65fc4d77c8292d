// Package courses holds the compiled-in course table.
package courses

import (
	"sort"

	m "github.com/okian/gpa/internal/domain/model"
)

// Table maps a course name to its course record.
type Table map[string]m.Course

// Default returns the course table, one entry per course, keyed by name.
// Courses without a grade are planned or still in progress.
func Default() Table {
	return Table{
		// Fall 2020
		"Intro to Programming":     {Semester: m.Fall2020, Credits: 4, Grade: "A"},
		"United States Government": {Semester: m.Fall2020, Credits: 4, Grade: "A"},
		"Calculus II":              {Semester: m.Fall2020, Credits: 4, Grade: "A"},

		// Spring 2021
		"Pop Music USA":          {Semester: m.Spring2021, Credits: 3, Grade: "A"},
		"Calculus III":           {Semester: m.Spring2021, Credits: 4, Grade: "A+"},
		"Intro to Math Software": {Semester: m.Spring2021, Credits: 3, Grade: "A"},
		"Data Structures":        {Semester: m.Spring2021, Credits: 4, Grade: "A"},
		"Composition":            {Semester: m.Spring2021, Credits: 4, Grade: "A"},

		// Summer 2021
		"Concepts of Fitness": {Semester: m.Summer2021, Credits: 2, Grade: "A"},
		"Intro to Sociology":  {Semester: m.Summer2021, Credits: 3, Grade: "A"},
		"Linear Algebra I":    {Semester: m.Summer2021, Credits: 4, Grade: "A"},

		// Fall 2021
		"Fitness Activities":     {Semester: m.Fall2021, Credits: 1, Grade: m.Pass},
		"General Physics I":      {Semester: m.Fall2021, Credits: 4, Grade: "A"},
		"Algorithms":             {Semester: m.Fall2021, Credits: 4, Grade: "A"},
		"Set Theory":             {Semester: m.Fall2021, Credits: 4, Grade: "A"},
		"Differential Equations": {Semester: m.Fall2021, Credits: 4, Grade: "A-"},

		// Spring 2022
		"Discrete Math I":             {Semester: m.Spring2022, Credits: 4, Grade: "A"},
		"HONOR Portfolio Development": {Semester: m.Spring2022, Credits: 1, Grade: "A"},
		"Computer Architecture":       {Semester: m.Spring2022, Credits: 4, Grade: "A"},
		"Physical Geology":            {Semester: m.Spring2022, Credits: 4, Grade: "A"},

		// Summer 2022
		"Intro to Philosphy": {Semester: m.Summer2022, Credits: 3, Grade: "A"},

		// Fall 2022
		"CS Project I":          {Semester: m.Fall2022, Credits: 4, Grade: "A"},
		"Databases & Security":  {Semester: m.Fall2022, Credits: 2, Grade: "A"},
		"Programming Languages": {Semester: m.Fall2022, Credits: 2, Grade: "A+"},
		"CS Seminar I":          {Semester: m.Fall2022, Credits: 1, Grade: "A"},
		"Probs & Stats":         {Semester: m.Fall2022, Credits: 4, Grade: "A"},

		// Spring 2023
		"CS Project II":              {Semester: m.Spring2023, Credits: 4},
		"Operating Systems":          {Semester: m.Spring2023, Credits: 2},
		"SE & Parallel Computing":    {Semester: m.Spring2023, Credits: 2},
		"Algorithms & Computability": {Semester: m.Spring2023, Credits: 2},
		"Leetcode Class":             {Semester: m.Spring2023, Credits: 2},
		"CS Seminar II":              {Semester: m.Spring2023, Credits: 1},

		// Summer 2023: nothing scheduled, keeps the term in the distribution.
		"N/A": {Semester: m.Summer2023, Credits: 0},

		// Fall 2023
		// TODO: add the two electives once they are picked.
		"CS Project III":   {Semester: m.Fall2023, Credits: 4},
		"CS Seminar III":   {Semester: m.Fall2023, Credits: 1},
		"Discrete Math II": {Semester: m.Fall2023, Credits: 4},

		// Spring 2024
		// TODO: add the two electives once they are picked.
		"CS Project IV":      {Semester: m.Spring2024, Credits: 4},
		"CS Seminar IV":      {Semester: m.Spring2024, Credits: 1},
		"HONR Portfolio Cap": {Semester: m.Spring2024, Credits: 1},
	}
}

// Names returns the course names in lexical order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
