package core

// Bits is the per-node / per-arc bit field. At least
// eight independent bits are guaranteed; three have fixed meanings shared by
// every algorithm in this module, the rest are scratch bits an algorithm may
// claim for the duration of one invocation.
type Bits uint8

// Reserved bits. Algorithms document in their own doc.go which of these
// (plus which scratch bits) they read and write.
const (
	// BitProcessed marks a node/arc as fully visited by the current
	// traversal or algorithm run.
	BitProcessed Bits = 1 << iota

	// BitProcessing marks a node/arc as discovered but not yet finalized
	// (on the DFS/BFS frontier, or "gray" in Tarjan's terms).
	BitProcessing

	// BitSpanningTree marks an arc as a member of a spanning tree produced
	// by Kruskal or Prim. Unlike the other bits, algorithms that set this
	// one leave it behind intentionally for the caller to filter on.
	BitSpanningTree

	// BitTestCycle is reserved for cycle tests. No algorithm in this module
	// sets it: the acyclicity check and cycle-witness extraction in
	// connectivity use BitProcessed / BitProcessing instead.
	BitTestCycle

	// BitUser0..BitUser3 are available to callers; no algorithm in this
	// module reads or writes them.
	BitUser0
	BitUser1
	BitUser2
	BitUser3
)

// marks is embedded in both Node and Arc; it is deliberately unexported so
// that all bit/counter access goes through the methods below, keeping
// the mark lifecycle (reset at the start of every algorithm) enforceable.
type marks struct {
	bits    Bits
	counter int64
}

// SetBit sets b, leaving all other bits untouched.
func (m *marks) SetBit(b Bits) { m.bits |= b }

// ClearBit clears b, leaving all other bits untouched.
func (m *marks) ClearBit(b Bits) { m.bits &^= b }

// TestBit reports whether b is currently set.
func (m *marks) TestBit(b Bits) bool { return m.bits&b != 0 }

// ClearAllBits resets the entire bit field to zero.
func (m *marks) ClearAllBits() { m.bits = 0 }

// Counter returns the 64-bit algorithm-scratch counter.
func (m *marks) Counter() int64 { return m.counter }

// SetCounter overwrites the algorithm-scratch counter.
func (m *marks) SetCounter(v int64) { m.counter = v }
