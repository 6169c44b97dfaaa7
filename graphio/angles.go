package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadAngles parses floats separated by whitespace and/or commas. Text after
// '#' on a line is a comment.
func ReadAngles(r io.Reader) ([]float64, error) {
	var out []float64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, f, ErrSyntax)
			}
			out = append(out, x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// WriteAngles writes one angle per line with the shortest representation
// that parses back to the same float64.
func WriteAngles(w io.Writer, angles []float64) error {
	bw := bufio.NewWriter(w)
	for _, x := range angles {
		bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
