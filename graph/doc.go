// SPDX-License-Identifier: MIT
//
// Package graph defines the vertex/edge data model shared by the
// instrumented algorithms and the playback controller.
//
// Two representations exist and they never mix:
//
//	Store:    the live, mutable, thread-safe graph edited by the UI and
//	          moved by the layout engine. Edges reference endpoints by ID.
//	Snapshot: a frozen copy handed to one algorithm run. Edges reference
//	          endpoints by *Vertex pointers into the snapshot's own vertex
//	          copies, resolved once at construction time.
//
// Identity:
//   - Vertex IDs are assigned by the Store from a monotonic counter ("v1",
//     "v2", ...) and never reused, even after removal. Graph files may bring
//     their own IDs.
//   - Edge IDs come from an independent counter ("e1", "e2", ...), so parallel
//     edges from one source remain distinguishable.
//
// Ownership:
//   - Position and velocity are written only through SetPosition/SetVelocity
//     (the layout collaborator). Algorithms and playback read them as
//     opaque payload.
//   - Position updates are not structural mutations: they bump no Version
//     and notify no subscribers.
//
// Concurrency:
//   - Store guards its catalogs with one sync.RWMutex.
//   - Subscribers are invoked synchronously after the lock is released, in
//     subscription order.
package graph
