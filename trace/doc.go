// SPDX-License-Identifier: MIT
//
// Package trace is the protocol between instrumented graph algorithms and
// whatever replays their decisions.
//
// Algorithms talk to an Emitter and nothing else:
//
//	Outline(a, b)     transient highlight of the pair under consideration
//	Mark(a, b, e)     persistent highlight of a committed edge
//	Clear()           drop every highlight
//
// A Recorder is the Emitter used in practice. It appends each call as an Op
// to its unplayed steps. Consumers move ops between steps and history with
// Advance and Rewind, and fold them into a Highlight:
//
//	steps:   [o4 o5 o6]      Advance → pops o4 from the front
//	history: [o1 o2 o3]      Rewind  → pops o3 and pushes it to the front of steps
//
// history followed by steps is always the original emission order.
//
// Deduplication belongs to the consumer. Mark ops always carry the full
// vertex pair; Highlight de-duplicates by vertex ID when it applies them, so
// one trace can be replayed several times under different strategies.
package trace
