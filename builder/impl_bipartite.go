// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side 0..n1-1, right side n1..n1+n2-1; every left×right pair once,
//     left-major.
//
// Complexity:
//   • Time: O(n1*n2). Space: O(1) extra.

package builder

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}. Its maximum
// cut is every edge, which makes it a handy optimiser target.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "n1", n1, minPartition); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, minPartition); err != nil {
			return err
		}
		d.grow(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.connect(i, n1+j)
			}
		}

		return nil
	}
}
