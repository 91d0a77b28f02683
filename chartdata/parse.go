// Parses delimited text input into numeric values or
// coordinate pairs, which can then be consumed by the
// chart renderers. See for example graphs/chartsvg .
package chartdata

import (
	"strconv"
	"strings"
)

// Point is one data sample, in data space.
type Point struct {
	X, Y float64
}

// Input grammar separators: fields are comma separated,
// a field holds either a value or a colon separated pair.
const (
	fieldSep = ","
	pairSep  = ":"
)

// ParseValues splits text on commas and converts each token to
// a number. Tokens that fail conversion are dropped, so malformed
// input degrades to fewer values instead of failing. An empty
// result is possible and callers must treat it as "no data".
func ParseValues(text string) []float64 {
	var values []float64
	for _, tok := range strings.Split(text, fieldSep) {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// ParsePoints splits text on commas into "x:y" tokens. Tokens
// without the colon, or whose halves are not numeric, are dropped
// under the same policy as ParseValues.
func ParsePoints(text string) []Point {
	var points []Point
	for _, tok := range strings.Split(text, fieldSep) {
		xTok, yTok, ok := strings.Cut(tok, pairSep)
		if !ok {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xTok), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(yTok), 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, Point{x, y})
	}
	return points
}

// IndexPoints lifts plain values to points, using each value's
// position as its X coordinate.
func IndexPoints(values []float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{float64(i), v}
	}
	return points
}

// HasPairs reports whether text is in coordinate pair form
// rather than a plain value list.
func HasPairs(text string) bool {
	return strings.Contains(text, pairSep)
}
