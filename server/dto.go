package server

import (
	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/playback"
	"github.com/katalvlaran/graphplay/trace"
)

// Response is the envelope of every JSON reply. Code is 0 on success.
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func success[T any](data T) Response[T] {
	return Response[T]{Message: "success", Data: data}
}

func failure(status int, err error) Response[any] {
	return Response[any]{Code: status, Message: err.Error()}
}

// StateResponse describes the controller.
type StateResponse struct {
	State      string            `json:"state"`
	Algorithm  string            `json:"algorithm"`
	IntervalMs int64             `json:"interval_ms"`
	Progress   playback.Progress `json:"progress"`
	View       trace.View        `json:"view"`
	Running    string            `json:"running,omitempty"`
	Pending    []string          `json:"pending"`
	Error      string            `json:"error,omitempty"`
}

// OpDTO is one trace op.
type OpDTO struct {
	Kind string   `json:"kind"`
	Pair []string `json:"pair,omitempty"`
	Edge string   `json:"edge,omitempty"`
}

func newOpDTO(op trace.Op) OpDTO {
	d := OpDTO{Kind: op.Kind.String()}
	if op.Kind != trace.KindClear {
		ids := op.IDs()
		d.Pair = ids[:]
	}
	if op.Kind == trace.KindMark {
		d.Edge = op.Edge.ID
	}

	return d
}

// TraceResponse lists applied and pending ops of the current Recorder.
type TraceResponse struct {
	History []OpDTO `json:"history"`
	Steps   []OpDTO `json:"steps"`
}

// GraphResponse is the live graph.
type GraphResponse struct {
	Directed bool             `json:"directed"`
	Version  uint64           `json:"version"`
	Selected []string         `json:"selected"`
	Vertices []graph.Vertex   `json:"vertices"`
	Edges    []graph.EdgeSpec `json:"edges"`
}

// VertexRequest creates or pins a vertex.
type VertexRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EdgeRequest creates an edge. Weight defaults to the store's default weight.
type EdgeRequest struct {
	Source string   `json:"source" binding:"required"`
	Target string   `json:"target" binding:"required"`
	Weight *float64 `json:"weight"`
}

// ClickResponse reports the outcome of a two-click edge gesture.
type ClickResponse struct {
	Selected []string `json:"selected"`
	Edge     string   `json:"edge,omitempty"`
	Created  bool     `json:"created"`
}

// AlgorithmRequest selects the algorithm.
type AlgorithmRequest struct {
	Name string `json:"name" binding:"required"`
}

// IntervalRequest changes the playback interval, capped at one hour.
type IntervalRequest struct {
	IntervalMs int64 `json:"interval_ms" binding:"required,gt=0,lte=3600000"`
}

// IDResponse carries the identity of a created element.
type IDResponse struct {
	ID string `json:"id"`
}
