// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package layer provides a broad-phase spatial-collision and
// spatial-query engine built on a linear, sort-based spatial index: a
// Morton/Z-order style subdivision flattened to a sorted slice of
// (cell, id) pairs.
//
// A [Layer] accepts axis-aligned bounding volumes for a set of objects,
// organises them into a hierarchy of spatial cells via an opaque
// [SpatialIndex] capability, and answers three query families:
//
//   - Scan: all-pairs overlap detection ([Scan], [ParScan]).
//   - Test: geometric region queries specialised for boxes and rays
//     ([TestBox2], [TestBox3], [TestRay2], [TestRay3]).
//   - Pick: nearest-hit queries specialised for rays ([PickRay2],
//     [PickRay3]).
//
// The engine itself is unaware of points, bounding boxes or cell-code
// bit layout: those are supplied by a concrete [SpatialIndex] and
// [TestGeometry] (see the sibling geom and morton packages for Morton-
// code-backed implementations). This keeps the hot traversal kernel
// free of geometry branching and lets it be reused for 2D or 3D,
// or any other hierarchical subdivision a caller cares to implement.
package layer
