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
	"github.com/consensys/go-morder/pkg/util/math"
)

// WeightMatrix returns the full weight matrix of this (possibly composite)
// ordering: the vertical stack of every leaf's embedded matrix, in flattened
// precedence order, over the full width of the declared ring.  Rows of one
// leaf are never reordered relative to another leaf's rows.
func (p Ordering) WeightMatrix() *math.IntMatrix {
	return stackLeaves(p.Flatten(), p.ring.NumVars(), 0)
}

// stackLeaves vertically concatenates the embedded weight matrices of the
// given leaves over a fixed full width.  Generator leaves are embedded
// without offset; all other leaves have their columns shifted right by the
// given offset (zero for plain ring orderings, the generator count for
// module orderings).
func stackLeaves(leaves []Leaf, width, offset uint) *math.IntMatrix {
	matrix := math.NewIntMatrix(0, width)
	//
	for _, leaf := range leaves {
		if leaf.kind == Generator {
			matrix = matrix.AppendRows(embedLeaf(leaf, width, 0))
		} else {
			matrix = matrix.AppendRows(embedLeaf(leaf, width, offset))
		}
	}
	//
	return matrix
}

// embedLeaf places the leaf's intrinsic (or explicit) matrix into a
// zero-initialised matrix of the given full width, mapping local column j
// onto global column offset + vars[j].  Columns outside the leaf's variable
// set remain zero for the leaf's rows.
func embedLeaf(leaf Leaf, width, offset uint) *math.IntMatrix {
	var intrinsic *math.IntMatrix
	//
	if leaf.kind.HasMatrix() {
		intrinsic = leaf.weights
	} else {
		intrinsic = intrinsicMatrix(leaf.kind, leaf.vars.Len())
	}
	//
	matrix := math.NewIntMatrix(intrinsic.Rows(), width)
	//
	for i := uint(0); i < intrinsic.Rows(); i++ {
		for j := uint(0); j < intrinsic.Cols(); j++ {
			// Global columns are 1-based variable indices.
			matrix.Set(i, offset+leaf.vars.Nth(j)-1, intrinsic.Get(i, j))
		}
	}
	//
	return matrix
}
