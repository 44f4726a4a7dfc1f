// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import "cmp"

// ObjectID is the constraint on the object identifier type carried
// alongside each cell code. IDs must be cheap to copy, hashable (used
// as map keys in the dedup scratch state) and order-comparable, since
// the sorted (cell,id) invariant breaks ties by ID.
//
// cmp.Ordered covers every integer, float and string type, which is
// the full space of IDs actually used for object identity in the
// corpus (entity indices, interned strings); callers needing a richer
// key can always index through an intermediate integer handle.
type ObjectID interface {
	cmp.Ordered
}
