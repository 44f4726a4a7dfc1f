// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package geom provides the axis-aligned bounds type and the two
// built-in TestGeometry adapters (box, ray) used by the layer engine's
// test/test_box/test_ray/pick_ray query surface.
//
// Geometry is pre-monomorphised for 2D and 3D rather than made generic
// over dimension: BoxTestGeometry2/RayTestGeometry2 operate on
// github.com/golang/geo/r2.Point, BoxTestGeometry3/RayTestGeometry3 on
// r3.Vector. Both satisfy layer.TestGeometry[Self] and layer.
// SystemBounds[Bounds*] structurally; this package does not import the
// layer package at all.
package geom
