package dsu

import "errors"

// ErrOutOfRange is raised by DSU (the fixed-size flavor) when an index
// outside [0, n) is queried.
var ErrOutOfRange = errors.New("dsu: index out of range")

// ErrCorrupted is raised by FindRoot when it detects a cycle in the parent
// pointer chain, which can only happen if something mutated the internal
// state outside of Union.
var ErrCorrupted = errors.New("dsu: parent-pointer cycle detected")

// DSU is a fixed-size weighted quick-union with path compression over
// {0, ..., n-1}. Use NewFixed when n is known upfront; use GrowableDSU
// when the key domain isn't bounded ahead of time.
type DSU struct {
	parent []int
	size   []int
	blocks int
}

// NewFixed allocates n singleton classes. n must be >= 0.
func NewFixed(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		blocks: n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

func (d *DSU) checkRange(i int) error {
	if i < 0 || i >= len(d.parent) {
		return ErrOutOfRange
	}
	return nil
}

// FindRoot returns the representative of i's class, compressing the path
// it walks. It returns ErrOutOfRange for an invalid index and ErrCorrupted
// if the parent chain cycles without reaching a self-rooted node.
func (d *DSU) FindRoot(i int) (int, error) {
	if err := d.checkRange(i); err != nil {
		return 0, err
	}
	// Walk to the root, bounding the walk at len(parent) steps: a
	// well-formed union-find can never need more hops than there are
	// elements, so exceeding that bound means the parent array is corrupt.
	root := i
	for steps := 0; d.parent[root] != root; steps++ {
		if steps > len(d.parent) {
			return 0, ErrCorrupted
		}
		root = d.parent[root]
	}
	// Path compression: point every node on the walk directly at root.
	for d.parent[i] != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}
	return root, nil
}

// Connected reports whether i and j are in the same class.
func (d *DSU) Connected(i, j int) (bool, error) {
	ri, err := d.FindRoot(i)
	if err != nil {
		return false, err
	}
	rj, err := d.FindRoot(j)
	if err != nil {
		return false, err
	}
	return ri == rj, nil
}

// Union merges i's and j's classes by size (the smaller tree is hung off
// the larger's root). It is a no-op when i and j are already connected,
// and decrements NumBlocks otherwise.
func (d *DSU) Union(i, j int) error {
	ri, err := d.FindRoot(i)
	if err != nil {
		return err
	}
	rj, err := d.FindRoot(j)
	if err != nil {
		return err
	}
	if ri == rj {
		return nil
	}
	if d.size[ri] < d.size[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	d.size[ri] += d.size[rj]
	d.blocks--
	return nil
}

// NumBlocks returns the number of equivalence classes remaining.
func (d *DSU) NumBlocks() int { return d.blocks }

// Len returns the number of elements the DSU was built over.
func (d *DSU) Len() int { return len(d.parent) }
