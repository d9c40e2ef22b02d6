package core

import "errors"

// Sentinel errors returned by the core graph primitives.
var (
	// ErrNilNode indicates a nil *Node was passed where a live node was required.
	ErrNilNode = errors.New("core: nil node")

	// ErrNilArc indicates a nil *Arc was passed where a live arc was required.
	ErrNilArc = errors.New("core: nil arc")

	// ErrForeignNode indicates a node belongs to a different Graph than the
	// one the operation was invoked on.
	ErrForeignNode = errors.New("core: node does not belong to this graph")

	// ErrForeignArc indicates an arc belongs to a different Graph.
	ErrForeignArc = errors.New("core: arc does not belong to this graph")

	// ErrNotEndpoint is returned by GetConnectedNode when the given node is
	// not an endpoint of the given arc.
	ErrNotEndpoint = errors.New("core: node is not an endpoint of arc")

	// ErrArcDisconnected indicates an operation was attempted on an arc that
	// is currently detached from its graph (see DisconnectArc/ConnectArc).
	ErrArcDisconnected = errors.New("core: arc is disconnected")

	// ErrAlreadyConnected is returned by ConnectArc when the arc is already
	// attached.
	ErrAlreadyConnected = errors.New("core: arc already connected")

	// ErrNegativeCapacity indicates a Network arc was given a negative
	// capacity, which violates the capacity >= 0 invariant.
	ErrNegativeCapacity = errors.New("core: negative arc capacity")

	// ErrNoSource / ErrNoSink are returned by Source/Sink and by
	// MakeSuperSource/MakeSuperSink when the network has no such terminal;
	// ErrMultipleSources / ErrMultipleSinks are returned by Source/Sink when
	// it has more than one and no super-terminal has been materialized.
	ErrNoSource        = errors.New("core: network has no source (in-degree 0) node")
	ErrNoSink          = errors.New("core: network has no sink (out-degree 0) node")
	ErrMultipleSources = errors.New("core: network has more than one source (in-degree 0) node")
	ErrMultipleSinks   = errors.New("core: network has more than one sink (out-degree 0) node")

	// ErrNoSuperSource / ErrNoSuperSink are returned by UnmakeSuperSource /
	// UnmakeSuperSink when none was previously materialized.
	ErrNoSuperSource = errors.New("core: no super-source was materialized")
	ErrNoSuperSink   = errors.New("core: no super-sink was materialized")

	// ErrFlowConservationBroken is the logic error raised when a max-flow
	// algorithm's invariant check finds inflow != outflow at a
	// non-terminal node.
	ErrFlowConservationBroken = errors.New("core: flow conservation invariant broken")
)
