// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// parse.go - textual topology specs for the CLI and config file.
//
//	cycle:N   path:N   star:N   wheel:N   complete:N
//	grid:RxC
//	random:N:P

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns spec into a Constructor. Size and probability ranges are
// checked when the constructor runs, not here.
func Parse(spec string) (Constructor, error) {
	name, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")

	sized := map[string]func(int) Constructor{
		"cycle":    Cycle,
		"path":     Path,
		"star":     Star,
		"wheel":    Wheel,
		"complete": Complete,
	}
	if fn, ok := sized[name]; ok {
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: size: %v", ErrUnknownTopology, spec, err)
		}

		return fn(n), nil
	}

	switch name {
	case "grid":
		r, c, ok := strings.Cut(args, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q: want grid:RxC", ErrUnknownTopology, spec)
		}
		rows, err1 := strconv.Atoi(r)
		cols, err2 := strconv.Atoi(c)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q: want grid:RxC", ErrUnknownTopology, spec)
		}

		return Grid(rows, cols), nil
	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q: want random:N:P", ErrUnknownTopology, spec)
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q: want random:N:P", ErrUnknownTopology, spec)
		}

		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, spec)
	}
}
