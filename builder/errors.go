// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a Store rejection.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates Parse could not recognise a spec.
var ErrUnknownTopology = errors.New("builder: unknown topology")
