package spmv

import (
	"math"
	"math/rand"
	"testing"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

// randomCSR builds a rows x cols matrix whose row 0 has exactly width
// entries and whose other rows have 0..width entries. Values are multiples
// of 1/4 in [-4, 4] so sums of a few terms are exact in float32 and float64.
func randomCSR(rows, cols, width int, seed int64) *matrix.CSR[float64] {
	rng := rand.New(rand.NewSource(seed))
	coo := matrix.NewCOO[float64](rows, cols)
	for r := 0; r < rows; r++ {
		n := width
		if r > 0 {
			n = rng.Intn(width + 1)
		}
		for k := 0; k < n; k++ {
			v := float64(rng.Intn(33)-16) / 4
			if err := coo.Append(r, rng.Intn(cols), v); err != nil {
				panic(err)
			}
		}
	}
	return matrix.FromCOO(coo)
}

func buffers[T matrix.Float](rows, cols int) (x, y []T) {
	x = make([]T, cols)
	y = make([]T, rows)
	for i := range x {
		x[i] = 7
	}
	for i := range y {
		y[i] = -3
	}
	return x, y
}

func epsilon[T matrix.Float]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return float64(math.Nextafter32(1, 2) - 1)
	}
	return math.Nextafter(1, 2) - 1
}

// assertClose fails when |got-want| > 4*eps*max(1, |want|) for any row.
func assertClose[T matrix.Float](t *testing.T, name string, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len got %d want %d", name, len(got), len(want))
	}
	eps := epsilon[T]()
	for i := range want {
		g, w := float64(got[i]), float64(want[i])
		if math.Abs(g-w) > 4*eps*math.Max(1, math.Abs(w)) {
			t.Errorf("%s: y[%d] = %g, want %g", name, i, g, w)
		}
	}
}

func assertOnes[T matrix.Float](t *testing.T, x []T, cols int) {
	t.Helper()
	for i := 0; i < cols; i++ {
		if x[i] != 1 {
			t.Fatalf("x[%d] = %v, want 1", i, x[i])
		}
	}
}
