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
	"math/big"
	"testing"

	"github.com/consensys/go-morder/pkg/util/math"
)

func Test_WeightMatrix_Lex(t *testing.T) {
	for n := uint(1); n <= 4; n++ {
		ring := NewRing(n)
		ordering := mustOrdering(t)(ring.Lex(ringVars(n)...))
		//
		if !ordering.WeightMatrix().Equals(math.IdentityMatrix(n)) {
			t.Errorf("lex over %d variables is not the identity", n)
		}
	}
}

func Test_WeightMatrix_RevLex(t *testing.T) {
	ring := NewRing(3)
	ordering := mustOrdering(t)(ring.RevLex(1, 2, 3))
	//
	checkWeights(t, ordering, [][]int64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}})
}

func Test_WeightMatrix_NegLex(t *testing.T) {
	ring := NewRing(2)
	ordering := mustOrdering(t)(ring.NegLex(1, 2))
	//
	checkWeights(t, ordering, [][]int64{{-1, 0}, {0, -1}})
}

func Test_WeightMatrix_NegRevLex(t *testing.T) {
	ring := NewRing(3)
	ordering := mustOrdering(t)(ring.NegRevLex(1, 2, 3))
	//
	checkWeights(t, ordering, [][]int64{{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}})
}

func Test_WeightMatrix_DegLex(t *testing.T) {
	ring := NewRing(3)
	ordering := mustOrdering(t)(ring.DegLex(1, 2, 3))
	//
	checkWeights(t, ordering, [][]int64{{1, 1, 1}, {1, 0, 0}, {0, 1, 0}})
}

func Test_WeightMatrix_DegRevLex(t *testing.T) {
	ring := NewRing(3)
	ordering := mustOrdering(t)(ring.DegRevLex(1, 2, 3))
	//
	checkWeights(t, ordering, [][]int64{{1, 1, 1}, {0, 0, -1}, {0, -1, 0}})
}

func Test_WeightMatrix_NegDegLex(t *testing.T) {
	ring := NewRing(3)
	ordering := mustOrdering(t)(ring.NegDegLex(1, 2, 3))
	//
	checkWeights(t, ordering, [][]int64{{-1, -1, -1}, {1, 0, 0}, {0, 1, 0}})
}

func Test_WeightMatrix_NegDegRevLex(t *testing.T) {
	ring := NewRing(3)
	ordering := mustOrdering(t)(ring.NegDegRevLex(1, 2, 3))
	//
	checkWeights(t, ordering, [][]int64{{-1, -1, -1}, {0, 0, -1}, {0, -1, 0}})
}

func Test_WeightMatrix_Product(t *testing.T) {
	ring := NewRing(3)
	left := mustOrdering(t)(ring.Lex(1))
	right := mustOrdering(t)(ring.DegRevLex(2, 3))
	ordering := mustOrdering(t)(Combine(left, right))
	// Block rows stack in precedence order, each padded to full width.
	checkWeights(t, ordering, [][]int64{{1, 0, 0}, {0, 1, 1}, {0, 0, -1}})
}

func Test_WeightMatrix_NonContiguous(t *testing.T) {
	ring := NewRing(3)
	// Variable sequence (3,1): local column 0 embeds at global column 2, local
	// column 1 at global column 0.
	ordering := mustOrdering(t)(ring.DegRevLex(3, 1))
	//
	checkWeights(t, ordering, [][]int64{{1, 0, 1}, {-1, 0, 0}})
}

func Test_WeightMatrix_WeightBlock(t *testing.T) {
	ring := NewRing(3)
	weights := mkMatrix(t, 2, []int64{2, 3})
	ordering := mustOrdering(t)(ring.WeightOrder(weights, 1, 3))
	//
	checkWeights(t, ordering, [][]int64{{2, 0, 3}})
}

func Test_WeightMatrix_MatrixBlock(t *testing.T) {
	ring := NewRing(2)
	matrix := mkMatrix(t, 2, []int64{1, 1}, []int64{0, -1})
	ordering := mustOrdering(t)(ring.MatrixOrder(matrix, 1, 2))
	// Explicit matrices are embedded verbatim.
	checkWeights(t, ordering, [][]int64{{1, 1}, {0, -1}})
	// Mutating the caller's matrix afterwards must not affect the ordering.
	matrix.SetInt64(0, 0, 99)
	checkWeights(t, ordering, [][]int64{{1, 1}, {0, -1}})
}

func Test_WeightMatrix_IndexAliasing(t *testing.T) {
	ring := NewRing(3)
	indices := []uint{1, 2, 3}
	ordering := mustOrdering(t)(ring.Lex(indices...))
	// Mutating the caller's index slice afterwards must not affect the
	// ordering.
	indices[0], indices[2] = 3, 1
	//
	checkWeights(t, ordering, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
}

// =========================================================================================

func ringVars(n uint) []uint {
	vars := make([]uint, n)
	//
	for i := range vars {
		vars[i] = uint(i) + 1
	}
	//
	return vars
}

// mustOrdering returns a checker which accepts the two results of an ordering
// constructor directly, failing the test on a construction error.
func mustOrdering(t *testing.T) func(Ordering, error) Ordering {
	return func(ordering Ordering, err error) Ordering {
		t.Helper()
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		return ordering
	}
}

func mkMatrix(t *testing.T, cols uint, rows ...[]int64) *math.IntMatrix {
	t.Helper()
	//
	matrix, err := math.NewIntMatrixFromRows(cols, rows...)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return matrix
}

func checkWeights(t *testing.T, ordering Ordering, expected [][]int64) {
	t.Helper()
	checkIntMatrix(t, ordering.WeightMatrix(), expected)
}

func checkIntMatrix(t *testing.T, matrix *math.IntMatrix, expected [][]int64) {
	t.Helper()
	//
	if matrix.Rows() != uint(len(expected)) {
		t.Fatalf("matrix %s has %d rows (expected %d)", matrix.String(), matrix.Rows(), len(expected))
	}
	//
	for i, row := range expected {
		if matrix.Cols() != uint(len(row)) {
			t.Fatalf("matrix %s has %d columns (expected %d)", matrix.String(), matrix.Cols(), len(row))
		}
		//
		for j, value := range row {
			if matrix.Get(uint(i), uint(j)).Cmp(big.NewInt(value)) != 0 {
				t.Errorf("matrix %s: entry (%d,%d) expected %d", matrix.String(), i, j, value)
			}
		}
	}
}
