// Package prompt asks the user which catalog instance to solve.
//
// The prompt is line oriented: one question, one answer per line. Invalid
// answers are reported with an *InputValidationError and the question is
// asked again; end of input aborts with io.ErrUnexpectedEOF.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// InputValidationError describes an answer that is not one of the offered
// city counts. It is recovered locally by asking again.
type InputValidationError struct {
	Input   string
	Allowed []int
	Reason  string
}

// Error implements error.
func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s (choose one of %s)", e.Input, e.Reason, joinInts(e.Allowed))
}

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer

	// MaxAttempts bounds the re-prompt loop; 0 means unlimited.
	MaxAttempts int
}

// ErrTooManyAttempts is returned once MaxAttempts invalid answers were given.
var ErrTooManyAttempts = errors.New("prompt: too many invalid answers")

// New returns a Prompter over in/out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Cities asks for one of the allowed city counts until a valid one is given.
func (p *Prompter) Cities(allowed []int) (int, error) {
	for attempt := 1; ; attempt++ {
		fmt.Fprintf(p.out, "Enter the number of cities (%s): ", joinInts(allowed))
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("prompt: read: %w", err)
			}
			return 0, io.ErrUnexpectedEOF
		}

		n, err := ParseCities(p.in.Text(), allowed)
		if err == nil {
			fmt.Fprintln(p.out)
			return n, nil
		}

		var ive *InputValidationError
		if !errors.As(err, &ive) {
			return 0, err
		}
		fmt.Fprintln(p.out, ive.Error())
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return 0, fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
		}
	}
}

// ParseCities validates one answer against the allowed city counts.
func ParseCities(answer string, allowed []int) (int, error) {
	s := strings.TrimSpace(answer)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InputValidationError{Input: s, Allowed: allowed, Reason: "not a number"}
	}
	if !slices.Contains(allowed, n) {
		return 0, &InputValidationError{Input: s, Allowed: allowed, Reason: "no such instance"}
	}

	return n, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ", ")
}
