// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

// Option configures a Layer at construction time. See [New].
type Option[IX SpatialIndex[IX], ID ObjectID] func(*config)

type config struct {
	minDepth          int
	indexCapacity     int
	collisionCapacity int
	testCapacity      int
}

// WithMinDepth sets the floor at which IndexGenerator stops
// subdividing an AABB.
//
// This parameter matters most for parallel processing: a higher value
// improves partitioning and workload balance across ParScan's fork
// points, but also creates more indices per object. Too high a
// setting inflates allocations and duplicate intermediate collision
// pairs, hurting worst-case performance.
//
// A value of zero is the safest choice for single-threaded use. For
// multi-threaded use, try a value between log4(workers) (2D) or
// log8(workers) (3D) and -log2(max_object_size/system_bounds_size).
// It is generally better to set this too low than too high.
func WithMinDepth[IX SpatialIndex[IX], ID ObjectID](depth int) Option[IX, ID] {
	if depth < 0 {
		panic("layer: WithMinDepth: negative depth")
	}
	return func(c *config) { c.minDepth = depth }
}

// WithIndexCapacity sets an initial capacity for the (cell,id) index.
func WithIndexCapacity[IX SpatialIndex[IX], ID ObjectID](capacity int) Option[IX, ID] {
	if capacity < 0 {
		panic("layer: WithIndexCapacity: negative capacity")
	}
	return func(c *config) { c.indexCapacity = capacity }
}

// WithCollisionCapacity sets an initial capacity for the collision
// results buffer used by Scan/ParScan.
func WithCollisionCapacity[IX SpatialIndex[IX], ID ObjectID](capacity int) Option[IX, ID] {
	if capacity < 0 {
		panic("layer: WithCollisionCapacity: negative capacity")
	}
	return func(c *config) { c.collisionCapacity = capacity }
}

// WithTestCapacity sets an initial capacity for the test-results
// buffer used by Test and its TestBox2/TestBox3/TestRay2/TestRay3
// wrappers.
func WithTestCapacity[IX SpatialIndex[IX], ID ObjectID](capacity int) Option[IX, ID] {
	if capacity < 0 {
		panic("layer: WithTestCapacity: negative capacity")
	}
	return func(c *config) { c.testCapacity = capacity }
}

// New builds a Layer ready for use, with min_depth and scratch
// capacities applied from the given options.
func New[IX SpatialIndex[IX], ID ObjectID](opts ...Option[IX, ID]) *Layer[IX, ID] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Layer[IX, ID]{
		minDepth:    c.minDepth,
		sorted:      true,
		tree:        make([]entry[IX, ID], 0, c.indexCapacity),
		collisions:  make([]Pair[ID], 0, c.collisionCapacity),
		testResults: make([]ID, 0, c.testCapacity),
		processed:   make(map[ID]struct{}),
	}
}
