package maxflow

import "errors"

// ErrNilTerminal is returned when source or sink is nil.
var ErrNilTerminal = errors.New("maxflow: source or sink is nil")

// ErrCutMismatch is returned by VerifyCut when a cut's total capacity does
// not equal the flow value it is supposed to certify: the value of any s-t
// cut is an upper bound on max-flow, and equality at the minimum cut
// certifies optimality.
var ErrCutMismatch = errors.New("maxflow: cut capacity does not match flow value")

// direction distinguishes, within a semiStep, whether the step pushes flow
// forward along an arc's natural direction or cancels flow already pushed
// backward along it.
type direction int8

const (
	forward direction = iota
	backward
)
