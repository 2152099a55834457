// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package articles

import "errors"

// ErrNothingToUpdate is returned by Update when the draft carries no
// fields.
var ErrNothingToUpdate = errors.New("nothing to update")
