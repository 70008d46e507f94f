// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package order

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// VarSet is an ordered sequence of distinct positive variable (or generator)
// indices identifying which columns a leaf ordering block acts on.  Indices
// are 1-based, matching the mathematical convention for ring variables.
// Contiguity is tracked, since a contiguous set permits a compact embedding.
type VarSet struct {
	indices []uint
	// contiguous holds iff the indices form an ascending run k, k+1, ...
	contiguous bool
}

// NewVarSet constructs a variable set from one or more indices, failing if
// any index is zero or occurs more than once.
func NewVarSet(indices ...uint) (VarSet, error) {
	var (
		seen       bitset.BitSet
		contiguous = true
	)
	//
	if len(indices) == 0 {
		return VarSet{}, fmt.Errorf("empty variable set")
	}
	//
	for i, index := range indices {
		if index == 0 {
			return VarSet{}, fmt.Errorf("variable index must be positive")
		} else if seen.Test(index) {
			return VarSet{}, fmt.Errorf("duplicate variable index %d", index)
		}
		//
		seen.Set(index)
		//
		if i > 0 && index != indices[i-1]+1 {
			contiguous = false
		}
	}
	//
	// Clone the indices, since variable sets are immutable but the caller may
	// reuse its slice.
	return VarSet{slices.Clone(indices), contiguous}, nil
}

// VarRange constructs the contiguous variable set lo, lo+1, ..., hi.
func VarRange(lo, hi uint) (VarSet, error) {
	if lo == 0 || hi < lo {
		return VarSet{}, fmt.Errorf("invalid variable range %d..%d", lo, hi)
	}
	//
	indices := make([]uint, hi-lo+1)
	//
	for i := range indices {
		indices[i] = lo + uint(i)
	}
	//
	return VarSet{indices, true}, nil
}

// Len returns the number of indices in this set.
func (p VarSet) Len() uint {
	return uint(len(p.indices))
}

// Nth returns the ith index (in sequence order) of this set.
func (p VarSet) Nth(i uint) uint {
	return p.indices[i]
}

// Max returns the largest index in this set.
func (p VarSet) Max() uint {
	max := uint(0)
	//
	for _, index := range p.indices {
		if index > max {
			max = index
		}
	}
	//
	return max
}

// IsContiguous determines whether the indices form an ascending contiguous
// run.
func (p VarSet) IsContiguous() bool {
	return p.contiguous
}

// String renders this set as a comma-separated index list, using the given
// naming environment (which may be nil, in which case raw indices are shown).
func (p VarSet) String(env func(uint) string) string {
	var buf strings.Builder
	//
	for i, index := range p.indices {
		if i != 0 {
			buf.WriteString(",")
		}
		//
		if env != nil {
			buf.WriteString(env(index))
		} else {
			fmt.Fprintf(&buf, "%d", index)
		}
	}
	//
	return buf.String()
}
