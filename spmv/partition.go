package spmv

// RowRange returns the half-open row range [begin, end) owned by worker index
// out of threads. Ranges are contiguous and of size rows/threads; the last
// worker also takes the rows%threads remainder.
func RowRange(rows, threads, index int) (begin, end int) {
	perThread := rows / threads
	begin = index * perThread
	if index == threads-1 {
		return begin, rows
	}
	return begin, (index + 1) * perThread
}
