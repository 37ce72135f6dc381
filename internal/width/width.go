// Package width resolves the panel's column width from configured width specs.
//
// A Spec is either an absolute column count or a percentage of the frame
// width. Specs are parsed once at the configuration boundary; everything past
// that point works with the typed value.
package width

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zhubert/dock/internal/errors"
)

// Kind distinguishes the two shapes a Spec can take.
type Kind int

const (
	// Invalid is the zero value; it never resolves.
	Invalid Kind = iota
	// Absolute is a fixed number of columns.
	Absolute
	// Percentage is a share of the frame width.
	Percentage
)

// Spec is a width specification: Absolute(columns) or Percentage(pct).
type Spec struct {
	kind    Kind
	columns int
	pct     float64
}

// MaxColumns bounds absolute specs.
const MaxColumns = math.MaxInt32

// Abs returns an absolute spec. n must be positive and at most MaxColumns.
func Abs(n int) (Spec, error) {
	if n <= 0 {
		return Spec{}, errors.InvalidSpec(n, "column count must be positive")
	}
	if n > MaxColumns {
		return Spec{}, errors.InvalidSpec(n, "column count out of range")
	}
	return Spec{kind: Absolute, columns: n}, nil
}

// Pct returns a percentage spec. p must be positive.
func Pct(p float64) (Spec, error) {
	if !(p > 0) || math.IsInf(p, 0) {
		return Spec{}, errors.InvalidSpec(fmt.Sprintf("%v%%", p), "percentage must be positive")
	}
	return Spec{kind: Percentage, pct: p}, nil
}

// Parse converts a raw configuration value into a Spec. Integers (and
// integral float64 values, which is how JSON decodes numbers) become
// Absolute; strings of the form "N%" become Percentage. Anything else is
// rejected with an InvalidSpec error.
func Parse(v any) (Spec, error) {
	switch val := v.(type) {
	case Spec:
		if val.kind == Invalid {
			return Spec{}, errors.InvalidSpec(val, "empty spec")
		}
		return val, nil
	case int:
		return Abs(val)
	case int64:
		if val > MaxColumns {
			return Spec{}, errors.InvalidSpec(val, "column count out of range")
		}
		return Abs(int(val))
	case float64:
		if val != math.Trunc(val) {
			return Spec{}, errors.InvalidSpec(val, "column count must be an integer")
		}
		if val > MaxColumns {
			return Spec{}, errors.InvalidSpec(val, "column count out of range")
		}
		return Abs(int(val))
	case string:
		return parseString(val)
	default:
		return Spec{}, errors.InvalidSpec(v, "expected an integer or a percentage string")
	}
}

func parseString(s string) (Spec, error) {
	trimmed := strings.TrimSpace(s)
	num, ok := strings.CutSuffix(trimmed, "%")
	if !ok {
		return Spec{}, errors.InvalidSpec(s, "expected a percentage like \"30%\"")
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Spec{}, errors.InvalidSpec(s, "percentage is not a number")
	}
	return Pct(p)
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(v any) Spec {
	s, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind reports the spec's shape.
func (s Spec) Kind() Kind { return s.kind }

// IsZero reports whether s was never set.
func (s Spec) IsZero() bool { return s.kind == Invalid }

// String renders the spec the way it is written in configuration.
func (s Spec) String() string {
	switch s.kind {
	case Absolute:
		return strconv.Itoa(s.columns)
	case Percentage:
		return strconv.FormatFloat(s.pct, 'f', -1, 64) + "%"
	default:
		return "<invalid>"
	}
}

// Columns resolves the spec against the given frame width.
func (s Spec) Columns(frameWidth int) (int, error) {
	switch s.kind {
	case Absolute:
		return s.columns, nil
	case Percentage:
		return int(math.Round(float64(frameWidth) * s.pct / 100)), nil
	default:
		return 0, errors.InvalidSpec(s, "empty spec")
	}
}

// Resolve computes the panel width for a frame. When the minimum resolves
// larger than the maximum, the minimum is returned as is.
func Resolve(configured, minimum, maximum Spec, frameWidth int) (int, error) {
	want, err := configured.Columns(frameWidth)
	if err != nil {
		return 0, err
	}
	lo, err := minimum.Columns(frameWidth)
	if err != nil {
		return 0, err
	}
	hi, err := maximum.Columns(frameWidth)
	if err != nil {
		return 0, err
	}

	if lo > hi {
		return lo, nil
	}
	return min(max(want, lo), hi), nil
}

// MarshalJSON writes absolute specs as numbers and percentages as strings.
func (s Spec) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case Absolute:
		return json.Marshal(s.columns)
	case Percentage:
		return json.Marshal(s.String())
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number or a percentage string.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = Spec{}
		return nil
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
