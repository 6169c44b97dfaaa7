// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` ("Cycle: n=2 < min=3: ...").
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its attempts (e.g. stub
// matching for RandomRegular) or was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownVariant indicates a PlatonicName or HexagramVariant outside the
// defined set.
var ErrUnknownVariant = errors.New("builder: unknown variant")
