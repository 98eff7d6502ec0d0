package gen

import "testing"

func TestRandomCSRValid(t *testing.T) {
	m := RandomCSR(500, 300, 6, 1)
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	for r := 0; r < m.Rows; r++ {
		if m.RowLen(r) > 12 {
			t.Fatalf("row %d length %d > 12", r, m.RowLen(r))
		}
		for i := m.RowPtr[r] + 1; i < m.RowPtr[r+1]; i++ {
			if m.Columns[i-1] >= m.Columns[i] {
				t.Fatalf("row %d columns not strictly increasing", r)
			}
		}
	}
}

func TestRandomCSRDeterministic(t *testing.T) {
	a, b := RandomCSR(50, 50, 4, 7), RandomCSR(50, 50, 4, 7)
	if a.NNZ() != b.NNZ() {
		t.Fatalf("nnz %d vs %d", a.NNZ(), b.NNZ())
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] || a.Columns[i] != b.Columns[i] {
			t.Fatalf("entry %d differs", i)
		}
	}
}

func TestBanded(t *testing.T) {
	m := Banded(10, 2)
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if m.RowLen(0) != 3 || m.RowLen(5) != 5 || m.MaxRowLen() != 5 {
		t.Errorf("row lengths %d %d max %d", m.RowLen(0), m.RowLen(5), m.MaxRowLen())
	}
}

func TestPowerLaw(t *testing.T) {
	m := PowerLaw(64, 200, 128, 3)
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if m.MaxRowLen() != 128 {
		t.Errorf("MaxRowLen = %d, want 128", m.MaxRowLen())
	}
}
