// Package grades maps letter grades to grade points on the 4.0 scale.
package grades

import "github.com/okian/gpa/internal/domain/model"

// Table maps a letter grade to its grade-point value.
type Table map[model.Letter]float64

// Default returns the standard 4.0-scale table. The map is freshly built on
// every call.
//
// "P" is present with a value of 0.0 so every symbol used by the course table
// resolves, but pass grades never take part in GPA math.
func Default() Table {
	return Table{
		"A+":       4.0,
		"A":        4.0,
		"A-":       3.67,
		"B+":       3.33,
		"B":        3.0,
		"B-":       2.67,
		"C+":       2.33,
		"C":        2.0,
		"C-":       1.67,
		"D+":       1.33,
		"D":        1.0,
		"D-":       0.67,
		"F":        0.0,
		model.Pass: 0.0,
	}
}

// Points returns the grade-point value of letter. The boolean is false when
// the letter is not in the table.
func (t Table) Points(letter model.Letter) (float64, bool) {
	v, ok := t[letter]
	return v, ok
}
