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

	"github.com/consensys/go-morder/pkg/util/math"
)

// Kind identifies one of the closed set of ordering strategies.  Observe this
// is deliberately a closed enumeration rather than an open interface, since
// the set of supported orderings is fixed.
type Kind uint8

const (
	// Lex orders monomials by comparing exponents of variables in ascending
	// variable order, favouring the larger exponent at the first difference.
	Lex Kind = iota
	// RevLex is as Lex, except variables are compared in descending order.
	RevLex
	// DegLex orders by total degree first, breaking ties with Lex.
	DegLex
	// DegRevLex orders by total degree first, breaking ties with NegRevLex.
	DegRevLex
	// NegLex inverts the sense of Lex.
	NegLex
	// NegRevLex inverts the sense of RevLex.
	NegRevLex
	// NegDegLex orders by total degree first (higher degree ranks lower),
	// breaking ties with Lex.
	NegDegLex
	// NegDegRevLex orders by total degree first (higher degree ranks lower),
	// breaking ties with NegRevLex.
	NegDegRevLex
	// Weight orders by an explicit weight matrix applied ahead of nothing
	// else; the matrix is used verbatim.
	Weight
	// Matrix orders by an explicit integer matrix used verbatim.
	Matrix
	// Generator identifies a module-generator block, which orders generator
	// indices rather than ring variables.
	Generator
)

// ParseKind parses the human readable name of an ordering kind, as used (for
// example) by the command-line interface.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "lex":
		return Lex, nil
	case "revlex":
		return RevLex, nil
	case "deglex":
		return DegLex, nil
	case "degrevlex":
		return DegRevLex, nil
	case "neglex":
		return NegLex, nil
	case "negrevlex":
		return NegRevLex, nil
	case "negdeglex":
		return NegDegLex, nil
	case "negdegrevlex":
		return NegDegRevLex, nil
	case "weight":
		return Weight, nil
	case "matrix":
		return Matrix, nil
	case "gen":
		return Generator, nil
	default:
		return 0, fmt.Errorf("unknown ordering kind \"%s\"", name)
	}
}

// String returns the human readable name of this kind.
func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex"
	case RevLex:
		return "revlex"
	case DegLex:
		return "deglex"
	case DegRevLex:
		return "degrevlex"
	case NegLex:
		return "neglex"
	case NegRevLex:
		return "negrevlex"
	case NegDegLex:
		return "negdeglex"
	case NegDegRevLex:
		return "negdegrevlex"
	case Weight:
		return "weight"
	case Matrix:
		return "matrix"
	case Generator:
		return "gen"
	default:
		panic("unreachable")
	}
}

// HasMatrix determines whether this kind carries an explicit weight matrix
// supplied at construction time, rather than an intrinsic one.
func (k Kind) HasMatrix() bool {
	return k == Weight || k == Matrix
}

// intrinsicMatrix returns the canonical weight matrix of a given kind over n
// variables, as defined over the local columns 0..n-1 of the leaf.  Weight and
// Matrix kinds have no intrinsic matrix, since theirs is supplied verbatim.
func intrinsicMatrix(kind Kind, n uint) *math.IntMatrix {
	switch kind {
	case Lex, Generator:
		return math.IdentityMatrix(n)
	case RevLex:
		return math.AntiDiagonalMatrix(n, 1)
	case NegLex:
		return negIdentity(n)
	case NegRevLex:
		return math.AntiDiagonalMatrix(n, -1)
	case DegLex:
		return degreeMatrix(n, 1, shiftedIdentity(n))
	case DegRevLex:
		return degreeMatrix(n, 1, negAntiDiagonal(n))
	case NegDegLex:
		return degreeMatrix(n, -1, shiftedIdentity(n))
	case NegDegRevLex:
		return degreeMatrix(n, -1, negAntiDiagonal(n))
	default:
		panic(fmt.Sprintf("kind %s has no intrinsic matrix", kind))
	}
}

// degreeMatrix prepends a (possibly negated) total-degree row onto a given
// (n-1) x n tie-break block, producing an n x n matrix.
func degreeMatrix(n uint, sign int64, block *math.IntMatrix) *math.IntMatrix {
	matrix := math.NewIntMatrix(1, n)
	//
	for j := uint(0); j < n; j++ {
		matrix.SetInt64(0, j, sign)
	}
	//
	return matrix.AppendRows(block)
}

// negIdentity returns the n x n matrix with -1 along the diagonal.
func negIdentity(n uint) *math.IntMatrix {
	matrix := math.NewIntMatrix(n, n)
	//
	for i := uint(0); i < n; i++ {
		matrix.SetInt64(i, i, -1)
	}
	//
	return matrix
}

// shiftedIdentity returns the (n-1) x n block whose row i holds a one in
// column i, i.e. the identity over the first n-1 variables.  This is the
// lexicographic tie-break block of DegLex and NegDegLex.
func shiftedIdentity(n uint) *math.IntMatrix {
	matrix := math.NewIntMatrix(n-1, n)
	//
	for i := uint(0); i+1 < n; i++ {
		matrix.SetInt64(i, i, 1)
	}
	//
	return matrix
}

// negAntiDiagonal returns the (n-1) x n block whose row i holds -1 in column
// n-1-i, i.e. the negated reverse-lexicographic tie-break block of DegRevLex
// and NegDegRevLex.
func negAntiDiagonal(n uint) *math.IntMatrix {
	matrix := math.NewIntMatrix(n-1, n)
	//
	for i := uint(0); i+1 < n; i++ {
		matrix.SetInt64(i, n-1-i, -1)
	}
	//
	return matrix
}
