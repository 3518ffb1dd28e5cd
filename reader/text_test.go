package reader

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string, opts Options) [][]string {
	t.Helper()
	r, err := NewTextReader(strings.NewReader(input), opts)
	require.NoError(t, err)
	rows, err := ReadAll(r)
	require.NoError(t, err)
	return rows
}

func TestTextReader_Whitespace(t *testing.T) {
	rows := readAll(t, "A B  C\n1\t2 3\n\n  x  ", Options{Mode: ModeWhitespace})

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"A", "B", "C"}, rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, rows[1])
	assert.Empty(t, rows[2])
	assert.Equal(t, []string{"x"}, rows[3])
}

func TestTextReader_Delimiter(t *testing.T) {
	tests := []struct {
		name  string
		sep   string
		input string
		want  [][]string
	}{
		{
			name:  "empty fields kept",
			sep:   ",",
			input: "a,b,,c\n",
			want:  [][]string{{"a", "b", "", "c"}},
		},
		{
			name:  "fields not trimmed",
			sep:   ",",
			input: "a, b",
			want:  [][]string{{"a", " b"}},
		},
		{
			name:  "multi character separator",
			sep:   "::",
			input: "x::y\nz",
			want:  [][]string{{"x", "y"}, {"z"}},
		},
		{
			name:  "tab",
			sep:   "\t",
			input: "1\t2\t3\n",
			want:  [][]string{{"1", "2", "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readAll(t, tt.input, Options{Mode: ModeDelimiter, Separator: tt.sep}))
		})
	}
}

func TestTextReader_StripsCarriageReturn(t *testing.T) {
	rows := readAll(t, "a,b\r\nc,d\r\n", Options{Mode: ModeDelimiter, Separator: ","})
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)
}

func TestTextReader_Adaptive(t *testing.T) {
	input := "ID  NAME          AGE\n" +
		"1   Ivan Ivanov   18\n" +
		"2   Petr\n"

	rows := readAll(t, input, Options{})
	assert.Equal(t, [][]string{
		{"ID", "NAME", "AGE"},
		{"1", "Ivan Ivanov", "18"},
		{"2", "Petr", ""},
	}, rows)
}

func TestTextReader_EmptyInput(t *testing.T) {
	for _, mode := range []Mode{ModeAdaptive, ModeWhitespace, ModeDelimiter} {
		t.Run(mode.String(), func(t *testing.T) {
			r, err := NewTextReader(strings.NewReader(""), Options{Mode: mode, Separator: ","})
			require.NoError(t, err)

			_, err = r.Read()
			assert.ErrorIs(t, err, io.EOF)
			// stays at EOF
			_, err = r.Read()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestNewTextReader_Errors(t *testing.T) {
	_, err := NewTextReader(strings.NewReader("x"), Options{Mode: ModeDelimiter})
	assert.ErrorIs(t, err, ErrEmptySeparator)

	_, err = NewTextReader(strings.NewReader("x"), Options{Mode: Mode(42)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mode(42)")
}

func TestTextReader_ReadError(t *testing.T) {
	boom := errors.New("boom")

	for _, mode := range []Mode{ModeAdaptive, ModeWhitespace} {
		t.Run(mode.String(), func(t *testing.T) {
			r, err := NewTextReader(iotest.ErrReader(boom), Options{Mode: mode})
			require.NoError(t, err)

			_, err = r.Read()
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), "failed to read line")
		})
	}
}

func TestTextReader_LineTooLong(t *testing.T) {
	r, err := NewTextReader(strings.NewReader(strings.Repeat("x", MaxLineLength+1)), Options{Mode: ModeWhitespace})
	require.NoError(t, err)

	_, err = r.Read()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
