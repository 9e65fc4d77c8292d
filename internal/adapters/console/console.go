// Package console renders an aggregation summary as plain text.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/gpa/internal/domain/gpa"
)

// GraduationCredits is the credit count required to graduate. It is only
// mentioned in the report; nothing is checked against it.
const GraduationCredits = 120

// Undefined is printed in place of the GPA when no credits have been graded.
const Undefined = "N/A"

// Render writes the four-line report for s to w.
func Render(w io.Writer, s gpa.Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "So far, I have taken %d credits.\n", s.GradedCredits)
	fmt.Fprintf(bw, "I have %d credits planned. (Requires at least %d to graduate)\n", s.TotalCredits, GraduationCredits)
	fmt.Fprintf(bw, "\tGPA: %s\n", FormatGPA(s))
	fmt.Fprintf(bw, "credit distribution:\t%s\n", FormatDistribution(s.Distribution[:]))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// FormatGPA returns the GPA in its shortest exact decimal form, or Undefined.
func FormatGPA(s gpa.Summary) string {
	v, ok := s.GPA()
	if !ok {
		return Undefined
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDistribution renders credits as "[a, b, c]".
func FormatDistribution(credits []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range credits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(']')
	return b.String()
}
