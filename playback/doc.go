// Package playback drives a recorded trace through highlight state at a
// human pace.
//
// A Controller owns one trace.Recorder and one trace.Highlight. Commands
// (Play, Pause, StepForward, StepBack, Reset, Clear, Record) are offered to a FIFO
// queue that holds at most one pending instance of each kind; a single drain
// goroutine executes them in arrival order, so at most one playback
// operation runs at a time no matter how fast commands arrive.
//
// State machine:
//
//	Idle ──Play──▶ Playing ──Pause / Play──▶ Paused ──Play──▶ Playing
//	  ▲               │ trace exhausted                 │
//	  └───────────────┴────────── Reset / Clear ────────┘
//
// Play runs the configured algorithm against a fresh Source snapshot when
// the Recorder is clean, then consumes steps one at a time, waiting the
// configured interval between ops. The wait is a select on the Clock and
// a per-play context, so Pause takes effect at once: the flag flips, the
// pending wait is cancelled, and the loop observes the flag on resumption.
// Consumed ops move to history and are never lost. Record runs the
// algorithm the same way without consuming anything, which is how a
// stepping session starts: StepForward on a clean Recorder is a no-op.
//
// StepBack applies the exact inverse of the rewound op by rebuilding the
// highlight from the remaining history, so stepping forward n times and
// back n times always restores the previous view.
//
// Structural graph mutations reported by the Source invalidate the current
// trace: playback aborts, the Recorder is replaced by a clean one and the
// highlight is cleared. Position updates from the layout do not count.
//
// Every applied op is handed to the Renderer as a Frame.
package playback
