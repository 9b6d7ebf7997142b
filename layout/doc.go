// Package layout is a Fruchterman-Reingold force-directed layout that moves
// the vertices of a graph.Store.
//
// Each Step:
//
//  1. Pulls every vertex toward the canvas centre, scaled by its distance.
//  2. Pushes every pair apart with k²/d (k = √(area/|V|)).
//  3. Pulls edge endpoints together with d²/k, stronger for heavier edges.
//  4. Adds a little opensimplex drift so an idle layout never freezes solid.
//  5. Limits each force to the current temperature, applies damping and
//     clamps the result to the canvas; then cools the temperature.
//
// Pinned vertices (FX/FY set) are placed at their pin and never move.
//
// The layout only calls Store.SetPosition and Store.SetVelocity, which do not
// bump the store version, so running it never invalidates a recorded trace.
// Structural mutations re-heat the layout so new vertices find their place.
package layout
