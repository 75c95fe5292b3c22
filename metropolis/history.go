// Package metropolis - bounded acceptance-rate window.
//
// Calibration needs the mean of the most recent min(attempts, M) outcomes.
// Instead of an append-only log (unbounded memory, incidental windowing),
// this file keeps a fixed-size circular buffer with a running sum: O(1)
// record, O(1) rate, O(M) space, explicit reset for the batch policy.
package metropolis

// acceptanceWindow is a ring of the last `size` accept(1)/reject(0)
// outcomes. Not goroutine-safe; owned by one chain driver.
type acceptanceWindow struct {
	buf  []uint8
	size int
	next int // ring write position
	n    int // outcomes currently held, ≤ size
	sum  int // number of 1s currently held
}

func newAcceptanceWindow(size int) *acceptanceWindow {
	return &acceptanceWindow{buf: make([]uint8, size), size: size}
}

// record pushes one outcome, evicting the oldest once the ring is full.
//
// Complexity: O(1), zero allocations.
func (w *acceptanceWindow) record(accepted bool) {
	if w.n == w.size {
		// Evict the slot we are about to overwrite.
		w.sum -= int(w.buf[w.next])
	} else {
		w.n++
	}

	var v uint8
	if accepted {
		v = 1
	}
	w.buf[w.next] = v
	w.sum += int(v)
	w.next++
	if w.next == w.size {
		w.next = 0
	}
}

// full reports whether at least `size` outcomes have been recorded since
// the last reset — the "at least M attempts" half of the stopping rule.
func (w *acceptanceWindow) full() bool { return w.n == w.size }

// rate returns the mean of the outcomes currently held (0 when empty).
//
// Complexity: O(1).
func (w *acceptanceWindow) rate() float64 {
	if w.n == 0 {
		return 0
	}

	return float64(w.sum) / float64(w.n)
}

// reset clears the window without reallocating; used by WindowReset policy
// at every batch boundary.
func (w *acceptanceWindow) reset() {
	w.next = 0
	w.n = 0
	w.sum = 0
}
