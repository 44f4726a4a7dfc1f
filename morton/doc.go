// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package morton implements layer.SpatialIndex and layer.IndexGenerator
// over Z-order (Morton) cell codes: Index2D and Index3D for the two
// cell shapes, each storing its path from the root left-justified in a
// uint64 so that integer comparison of the codes, with depth breaking
// ties, orders cells the same way a depth-first, parent-before-children
// traversal would.
//
// Neither type imports the layer package; they satisfy its interfaces
// structurally.
package morton
