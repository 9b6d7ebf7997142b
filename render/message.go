package render

import (
	"github.com/katalvlaran/graphplay/playback"
	"github.com/katalvlaran/graphplay/trace"
)

// MessageFrame is the Type of messages built from playback frames.
const MessageFrame = "frame"

// Message is the wire form of a playback.Frame.
type Message struct {
	Type      string            `json:"type"`
	Kind      string            `json:"kind"`
	Direction string            `json:"direction"`
	State     string            `json:"state"`
	Pair      []string          `json:"pair,omitempty"`
	Edge      string            `json:"edge,omitempty"`
	View      trace.View        `json:"view"`
	Progress  playback.Progress `json:"progress"`
}

// NewMessage converts f into its wire form.
func NewMessage(f playback.Frame) Message {
	m := Message{
		Type:      MessageFrame,
		Kind:      f.Op.Kind.String(),
		Direction: f.Direction.String(),
		State:     f.State.String(),
		View:      f.View,
		Progress:  f.Progress,
	}
	if f.Op.Kind == trace.KindOutline || f.Op.Kind == trace.KindMark {
		ids := f.Op.IDs()
		m.Pair = ids[:]
	}
	if f.Op.Kind == trace.KindMark {
		m.Edge = f.Op.Edge.ID
	}

	return m
}
