package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SaveSimpleFormat writes g in a simple human-readable
// format: node count, arc count, each node's payload
// on one line, then each arc's "src_index tgt_index payload" on one line.
// Nothing in the core depends on this helper; it exists only for
// applications that want a quick dump without adopting a serialization
// framework. nodeText/arcText render a payload to its one-line form.
func SaveSimpleFormat[N, A any](w io.Writer, g *Graph[N, A], nodeText func(N) string, arcText func(A) string) error {
	bw := bufio.NewWriter(w)
	index := make(map[*Node[N]]int, g.NumNodes())

	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumNodes(), g.NumArcs()); err != nil {
		return err
	}

	nit := g.Nodes()
	i := 0
	for nit.HasNext() {
		v, err := nit.Next()
		if err != nil {
			return err
		}
		index[v] = i
		i++
		if _, err := fmt.Fprintln(bw, nodeText(v.Payload)); err != nil {
			return err
		}
	}

	ait := g.Arcs()
	for ait.HasNext() {
		a, err := ait.Next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", index[a.src], index[a.tgt], arcText(a.Payload)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// LoadSimpleFormat reads back the format written by SaveSimpleFormat into a
// fresh Graph built by newGraph. parseNode/parseArc parse one line of
// payload text each.
func LoadSimpleFormat[N, A any](r io.Reader, newGraph func() *Graph[N, A], parseNode func(string) (N, error), parseArc func(string) (A, error)) (*Graph[N, A], error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, io.ErrUnexpectedEOF
	}
	var numNodes, numArcs int
	if _, err := fmt.Sscanf(sc.Text(), "%d %d", &numNodes, &numArcs); err != nil {
		return nil, err
	}

	g := newGraph()
	nodes := make([]*Node[N], 0, numNodes)
	for i := 0; i < numNodes; i++ {
		if !sc.Scan() {
			return nil, io.ErrUnexpectedEOF
		}
		payload, err := parseNode(sc.Text())
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, g.InsertNode(payload))
	}

	for i := 0; i < numArcs; i++ {
		if !sc.Scan() {
			return nil, io.ErrUnexpectedEOF
		}
		var srcIdx, tgtIdx int
		var rest string
		if _, err := fmt.Sscanf(sc.Text(), "%d %d", &srcIdx, &tgtIdx); err != nil {
			return nil, err
		}
		if fields := strings.SplitN(sc.Text(), " ", 3); len(fields) == 3 {
			rest = fields[2]
		}
		payload, err := parseArc(rest)
		if err != nil {
			return nil, err
		}
		if _, err := g.InsertArc(nodes[srcIdx], nodes[tgtIdx], payload); err != nil {
			return nil, err
		}
	}

	return g, sc.Err()
}
