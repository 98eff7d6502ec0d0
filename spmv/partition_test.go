package spmv

import "testing"

func TestRowRangeCoverage(t *testing.T) {
	for rows := 1; rows <= 40; rows++ {
		for threads := 1; threads <= rows; threads++ {
			seen := make([]int, rows)
			next := 0
			for i := 0; i < threads; i++ {
				begin, end := RowRange(rows, threads, i)
				if begin != next {
					t.Fatalf("rows=%d threads=%d worker %d: begin %d, want %d", rows, threads, i, begin, next)
				}
				for r := begin; r < end; r++ {
					seen[r]++
				}
				next = end
				want := rows / threads
				if i == threads-1 {
					want += rows % threads
				}
				if end-begin != want {
					t.Fatalf("rows=%d threads=%d worker %d: size %d, want %d", rows, threads, i, end-begin, want)
				}
			}
			if next != rows {
				t.Fatalf("rows=%d threads=%d: last end %d", rows, threads, next)
			}
			for r, n := range seen {
				if n != 1 {
					t.Fatalf("rows=%d threads=%d: row %d covered %d times", rows, threads, r, n)
				}
			}
		}
	}
}

func TestRowRangeLastWorkerAbsorbsRemainder(t *testing.T) {
	want := [][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 11}}
	for i, w := range want {
		begin, end := RowRange(11, 4, i)
		if begin != w[0] || end != w[1] {
			t.Errorf("worker %d: [%d, %d), want [%d, %d)", i, begin, end, w[0], w[1])
		}
	}
}

func TestRowRangeFewerRowsThanThreads(t *testing.T) {
	for i := 0; i < 7; i++ {
		begin, end := RowRange(3, 8, i)
		if begin != 0 || end != 0 {
			t.Errorf("worker %d: [%d, %d), want empty", i, begin, end)
		}
	}
	if begin, end := RowRange(3, 8, 7); begin != 0 || end != 3 {
		t.Errorf("last worker: [%d, %d), want [0, 3)", begin, end)
	}
}
