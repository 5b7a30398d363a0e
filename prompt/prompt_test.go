package prompt_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbnb/prompt"
)

var allowed = []int{5, 6, 7}

func TestCities_FirstAnswer(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("6\n"), &out)

	n, err := p.Cities(allowed)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Contains(t, out.String(), "Enter the number of cities (5, 6, 7): ")
}

func TestCities_Reprompts(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("abc\n9\n  7 \n"), &out)

	n, err := p.Cities(allowed)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, 3, strings.Count(out.String(), "Enter the number of cities"))
	require.Contains(t, out.String(), `invalid input "abc": not a number`)
	require.Contains(t, out.String(), `invalid input "9": no such instance`)
}

func TestCities_EOF(t *testing.T) {
	p := prompt.New(strings.NewReader("x\n"), io.Discard)
	_, err := p.Cities(allowed)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCities_MaxAttempts(t *testing.T) {
	p := prompt.New(strings.NewReader("1\n2\n3\n5\n"), io.Discard)
	p.MaxAttempts = 2

	_, err := p.Cities(allowed)
	require.ErrorIs(t, err, prompt.ErrTooManyAttempts)

	var ive *prompt.InputValidationError
	require.True(t, errors.As(err, &ive))
	require.Equal(t, "2", ive.Input)
}

func TestParseCities(t *testing.T) {
	n, err := prompt.ParseCities(" 5\r", allowed)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = prompt.ParseCities("", allowed)
	var ive *prompt.InputValidationError
	require.ErrorAs(t, err, &ive)
	require.Equal(t, allowed, ive.Allowed)
}
