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
	"hash/fnv"
	"math/big"

	"github.com/consensys/go-morder/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// Canonicalize reduces a weight matrix to the unique representative of the
// total order it induces: two matrices induce the same order on all
// monomials iff their canonical forms are identical.  The reduction is an
// integer-only echelon elimination which never leaves the integers and never
// flips the sign of a row (either of which could change comparison
// outcomes):
//
//   - all-zero rows are dropped, since they carry no ordering information;
//
//   - every accepted row is primitive (the gcd of its entries is one);
//
//   - each incoming row is eliminated against every previously accepted row
//     (in emission order) as row := |pivot|*row - sign(pivot)*row[col]*accepted,
//     where pivot is the accepted row's leading entry at column col.  Scaling
//     by the strictly positive |pivot| preserves the induced order, and
//     subtracting multiples of strictly dominating rows cannot change the
//     first level at which two monomials differ;
//
//   - a row reduced to zero is discarded, as it added no tie-break
//     information beyond the rows before it.
func Canonicalize(matrix *math.IntMatrix) *math.IntMatrix {
	// Rows are reduced in place within a working copy.
	work := matrix.Clone()
	//
	var (
		// indices of accepted rows within work
		accepted []uint
		// leading (nonzero) column of each accepted row
		pivots []uint
	)
	//
	for i := uint(0); i < work.Rows(); i++ {
		if work.IsZeroRow(i) {
			log.Debug("canonicalize: dropping all-zero row ", i)
			continue
		}
		//
		makePrimitive(work, i)
		// Eliminate against previously accepted rows, in emission order.
		for k, acc := range accepted {
			eliminate(work, i, acc, pivots[k])
			//
			if work.IsZeroRow(i) {
				break
			}
			//
			makePrimitive(work, i)
		}
		//
		if work.IsZeroRow(i) {
			log.Debug("canonicalize: dropping redundant row ", i)
			continue
		}
		//
		accepted = append(accepted, i)
		pivots = append(pivots, leadingColumn(work, i))
	}
	// Assemble the reduced matrix.
	result := math.NewIntMatrix(uint(len(accepted)), work.Cols())
	//
	for r, i := range accepted {
		for j := uint(0); j < work.Cols(); j++ {
			result.Set(uint(r), j, work.Get(i, j))
		}
	}
	//
	return result
}

// eliminate clears the given pivot column of the row using the accepted row
// whose leading entry sits there, via the order-preserving combination
// row := |pivot|*row - sign(pivot)*row[col]*accepted.  A row already zero at
// the pivot column is left untouched.
func eliminate(matrix *math.IntMatrix, row, accepted, col uint) {
	var (
		pivot = matrix.Get(accepted, col)
		coeff big.Int
	)
	//
	if matrix.Get(row, col).BitLen() == 0 {
		return
	}
	// coeff := -sign(pivot) * row[col]
	coeff.Neg(matrix.Get(row, col))
	//
	if pivot.Sign() < 0 {
		coeff.Neg(&coeff)
	}
	//
	matrix.CombineRows(row, new(big.Int).Abs(pivot), &coeff, accepted)
}

// makePrimitive divides a nonzero row by its content.
func makePrimitive(matrix *math.IntMatrix, row uint) {
	content := matrix.RowContent(row)
	//
	if content.BitLen() == 0 || content.Cmp(big.NewInt(1)) == 0 {
		return
	}
	// Content divides every entry of the row, hence this never fails.
	if err := matrix.DivRowExact(row, content); err != nil {
		panic(err)
	}
}

func leadingColumn(matrix *math.IntMatrix, row uint) uint {
	for j := uint(0); j < matrix.Cols(); j++ {
		if matrix.Get(row, j).BitLen() != 0 {
			return j
		}
	}
	//
	panic("zero row has no leading column")
}

// CanonicalForm returns the canonical weight matrix of this ordering, i.e.
// the unique redundancy-free representative of the total order it induces.
// The form is derived on demand and not cached on the ordering.
func (p Ordering) CanonicalForm() *math.IntMatrix {
	return Canonicalize(p.WeightMatrix())
}

// Equals determines whether two orderings induce the same total order.  This
// requires both to be declared over the same ring instance and to share a
// canonical form.
func (p Ordering) Equals(other Ordering) bool {
	if p.ring != other.ring {
		return false
	}
	//
	return p.CanonicalForm().Equals(other.CanonicalForm())
}

// Hash returns a hashcode consistent with Equals: equal orderings hash
// identically, since the code is a pure function of the canonical matrix.
func (p Ordering) Hash() uint64 {
	hash := fnv.New64a()
	// Hash function never returns an error.
	hash.Write(p.CanonicalForm().Bytes())
	//
	return hash.Sum64()
}
