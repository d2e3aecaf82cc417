// Package solution compares a computed vector against an expected one and
// reports the outcome.
package solution

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Tolerance bounds the accepted difference between a computed and an
// expected element. A pair matches when either bound holds.
type Tolerance struct {
	Abs float64 `json:"abs"`
	Rel float64 `json:"rel"`
}

// DefaultTolerance is used when the caller has no preference.
var DefaultTolerance = Tolerance{Abs: 1e-9, Rel: 1e-6}

// Match reports whether got is within tolerance of want. NaN never matches;
// infinities match only themselves.
func (t Tolerance) Match(got, want float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return false
	}
	if got == want {
		return true
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return false
	}

	diff := math.Abs(got - want)
	if diff <= t.Abs {
		return true
	}
	return diff <= t.Rel*math.Max(math.Abs(got), math.Abs(want))
}

// Mismatch locates the first element outside tolerance.
type Mismatch struct {
	Index    int     `json:"index"`
	Got      float64 `json:"got"`
	Expected float64 `json:"expected"`
}

// MarshalJSON encodes non-finite values as strings, which JSON numbers
// cannot represent.
func (m Mismatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index    int `json:"index"`
		Got      any `json:"got"`
		Expected any `json:"expected"`
	}{m.Index, jsonFloat(m.Got), jsonFloat(m.Expected)})
}

func jsonFloat(x float64) any {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return x
}

// Result is the outcome of one check.
type Result struct {
	RunID          string    `json:"run_id"`
	Correct        bool      `json:"correct"`
	Length         int       `json:"length"`
	ExpectedLength int       `json:"expected_length"`
	Mismatches     int       `json:"mismatches"`
	FirstMismatch  *Mismatch `json:"first_mismatch,omitempty"`
	MaxAbsDiff     float64   `json:"max_abs_diff"` // over finite differences only
	Tolerance      Tolerance `json:"tolerance"`
	Message        string    `json:"message"`
}

// Check compares got with want element by element.
func Check(got, want []float64, tol Tolerance) Result {
	r := Result{
		RunID:          uuid.NewString(),
		Length:         len(got),
		ExpectedLength: len(want),
		Tolerance:      tol,
	}

	if len(got) != len(want) {
		r.Message = fmt.Sprintf("length mismatch: got %d elements, expected %d", len(got), len(want))
		return r
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); !math.IsInf(d, 0) && d > r.MaxAbsDiff {
			r.MaxAbsDiff = d
		}
		if tol.Match(got[i], want[i]) {
			continue
		}
		r.Mismatches++
		if r.FirstMismatch == nil {
			r.FirstMismatch = &Mismatch{Index: i, Got: got[i], Expected: want[i]}
		}
	}

	if r.Mismatches > 0 {
		m := r.FirstMismatch
		r.Message = fmt.Sprintf("%d of %d elements differ; first at index %d: got %v, expected %v",
			r.Mismatches, len(got), m.Index, m.Got, m.Expected)
		return r
	}

	r.Correct = true
	r.Message = "solution is correct"
	return r
}

// WriteJSON writes r as indented JSON.
func (r Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
