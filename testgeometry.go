// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

// TestGeometry is a hierarchical geometric predicate that descends in
// lockstep with the cell tree during [Test] / [Pick]. The
// concrete adapters (box, ray) live in the sibling geom package; this
// package only depends on the method set below, satisfied structurally.
type TestGeometry[Self any] interface {
	// ShouldTest is a cheap prune: when it returns false for the
	// current nearest cutoff, the entire subtree under the current
	// cell is skipped. Must be monotone: once false for a given
	// nearest, it remains false for any smaller nearest.
	ShouldTest(nearest float64) bool

	// Subdivide returns one child predicate per child cell, in the
	// same order as the corresponding SpatialIndex.Subdivide.
	Subdivide() []Self

	// TestOrder returns a permutation of [0,len) giving the order in
	// which child subtrees should be visited: near-to-far for ray
	// queries (so callback early-outs have maximum effect), any
	// permutation for volume tests.
	TestOrder() []int
}
