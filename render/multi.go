package render

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphplay/playback"
)

// Multi forwards every frame to each renderer in order. A failing renderer
// does not stop the others; their errors are joined.
type Multi []playback.Renderer

// Render implements playback.Renderer.
func (m Multi) Render(ctx context.Context, f playback.Frame) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Render(ctx, f); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
