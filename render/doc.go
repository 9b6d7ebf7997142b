// Package render holds playback.Renderer implementations.
//
//   - Terminal prints one colored line per frame (fatih/color).
//   - Hub fans frames out to websocket viewers (gorilla/websocket).
//   - Multi forwards each frame to several renderers in order.
//
// Frames travel to viewers as Message values encoded as JSON.
package render
