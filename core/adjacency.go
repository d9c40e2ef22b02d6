package core

import "container/list"

// adjacencyStore is the pluggable bookkeeping strategy behind the three
// Graph representations. Every Graph method that
// touches topology (InsertArc, RemoveArc, RemoveNode, OutArcs, degrees)
// delegates to the store bound at construction, which is what lets one
// Graph[N, A] struct present "the same interface" for all three layouts
// while keeping each one's real complexity characteristics (see doc
// comments on the three constructors in graph.go).
type adjacencyStore[N, A any] interface {
	// attach records that arc a leaves node v (or, for undirected arcs,
	// touches v). Called once per endpoint.
	attach(v *Node[N], a *Arc[N, A])

	// detach undoes attach. Called once per endpoint.
	detach(v *Node[N], a *Arc[N, A])

	// outArcs returns a snapshot of the arcs attached to v, in the
	// representation's natural order.
	outArcs(v *Node[N]) []*Arc[N, A]
}

// ---- doubly-linked adjacency (NewListGraph): O(1) attach/detach ----------

type dlistStore[N, A any] struct{}

type dlistNodeData struct{ l *list.List }

// dlistArcSlot records, per endpoint, the *list.Element backing this arc so
// detach is O(1) instead of a linear scan.
type dlistArcSlot[N, A any] struct {
	srcElem, tgtElem *list.Element
}

func (dlistStore[N, A]) ensure(v *Node[N]) *list.List {
	d, ok := v.adj.(*dlistNodeData)
	if !ok {
		d = &dlistNodeData{l: list.New()}
		v.adj = d
	}
	return d.l
}

func (s dlistStore[N, A]) attach(v *Node[N], a *Arc[N, A]) {
	l := s.ensure(v)
	elem := l.PushBack(a)
	slot, _ := a.linkData.(*dlistArcSlot[N, A])
	if slot == nil {
		slot = &dlistArcSlot[N, A]{}
		a.linkData = slot
	}
	if v == a.src {
		slot.srcElem = elem
	} else {
		slot.tgtElem = elem
	}
}

func (s dlistStore[N, A]) detach(v *Node[N], a *Arc[N, A]) {
	l := s.ensure(v)
	slot, _ := a.linkData.(*dlistArcSlot[N, A])
	if slot == nil {
		return
	}
	if v == a.src && slot.srcElem != nil {
		l.Remove(slot.srcElem)
		slot.srcElem = nil
	} else if v == a.tgt && slot.tgtElem != nil {
		l.Remove(slot.tgtElem)
		slot.tgtElem = nil
	}
}

func (s dlistStore[N, A]) outArcs(v *Node[N]) []*Arc[N, A] {
	d, ok := v.adj.(*dlistNodeData)
	if !ok {
		return nil
	}
	out := make([]*Arc[N, A], 0, d.l.Len())
	for e := d.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*Arc[N, A]))
	}
	return out
}

// ---- singly-linked adjacency (NewSListGraph): O(E(v)) detach ------------

type slistStore[N, A any] struct{}

type slistCell[N, A any] struct {
	arc  *Arc[N, A]
	next *slistCell[N, A]
}

type slistNodeData[N, A any] struct{ head *slistCell[N, A] }

func (slistStore[N, A]) ensure(v *Node[N]) *slistNodeData[N, A] {
	d, ok := v.adj.(*slistNodeData[N, A])
	if !ok {
		d = &slistNodeData[N, A]{}
		v.adj = d
	}
	return d
}

func (s slistStore[N, A]) attach(v *Node[N], a *Arc[N, A]) {
	d := s.ensure(v)
	d.head = &slistCell[N, A]{arc: a, next: d.head}
}

func (s slistStore[N, A]) detach(v *Node[N], a *Arc[N, A]) {
	d := s.ensure(v)
	var prev *slistCell[N, A]
	for cur := d.head; cur != nil; cur = cur.next {
		if cur.arc == a {
			if prev == nil {
				d.head = cur.next
			} else {
				prev.next = cur.next
			}
			return
		}
		prev = cur
	}
}

func (s slistStore[N, A]) outArcs(v *Node[N]) []*Arc[N, A] {
	d, ok := v.adj.(*slistNodeData[N, A])
	if !ok {
		return nil
	}
	var out []*Arc[N, A]
	for cur := d.head; cur != nil; cur = cur.next {
		out = append(out, cur.arc)
	}
	return out
}

// ---- dynamic-array adjacency (NewArrayGraph): O(1) append, O(E(v)) remove

type arrayStore[N, A any] struct{}

type arrayNodeData[N, A any] struct{ arcs []*Arc[N, A] }

func (arrayStore[N, A]) ensure(v *Node[N]) *arrayNodeData[N, A] {
	d, ok := v.adj.(*arrayNodeData[N, A])
	if !ok {
		d = &arrayNodeData[N, A]{}
		v.adj = d
	}
	return d
}

func (s arrayStore[N, A]) attach(v *Node[N], a *Arc[N, A]) {
	d := s.ensure(v)
	d.arcs = append(d.arcs, a)
}

func (s arrayStore[N, A]) detach(v *Node[N], a *Arc[N, A]) {
	d := s.ensure(v)
	for i, cur := range d.arcs {
		if cur == a {
			last := len(d.arcs) - 1
			d.arcs[i] = d.arcs[last]
			d.arcs = d.arcs[:last]
			return
		}
	}
}

func (s arrayStore[N, A]) outArcs(v *Node[N]) []*Arc[N, A] {
	d, ok := v.adj.(*arrayNodeData[N, A])
	if !ok {
		return nil
	}
	out := make([]*Arc[N, A], len(d.arcs))
	copy(out, d.arcs)
	return out
}
