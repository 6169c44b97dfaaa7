// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_random_regular.go: implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   - Configuration model: n·deg stubs, shuffled and paired; a pairing with a
//     loop or a repeated pair is rejected and reshuffled.
//
// Contract:
//   - n ≥ 1, 0 ≤ deg < n, n·deg even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - ErrConstructFailed after maxStubMatchingAttempts rejected pairings.
//
// Complexity:
//   - Time: O(attempts · n·deg). Space: O(n·deg) for stubs and the seen-set.
//
// Determinism:
//   - Fixed seed ⇒ identical shuffle sequence ⇒ identical graph.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 200
)

// RandomRegular returns a Constructor that samples a simple deg-regular graph
// on n nodes. Random 3-regular graphs are the standard MaxCut benchmark family
// for QAOA-style ansätze.
func RandomRegular(n, deg int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, "n", n, minRRVertices); err != nil {
			return err
		}
		if deg < 0 || deg >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if (n*deg)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		d.grow(n)
		stubCount := n * deg
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < deg; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			valid := true
			seen := make(map[[2]int]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				if _, dup := seen[[2]int{u, v}]; dup {
					valid = false
					break
				}
				seen[[2]int{u, v}] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				d.connect(stubs[i], stubs[i+1])
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
