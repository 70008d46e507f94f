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
	"math/big"
	"sort"

	"github.com/consensys/go-morder/pkg/util/math"
)

// ExponentView provides read access to the exponent vectors of a
// polynomial's terms, which is all the comparator engine needs from the
// surrounding ring/polynomial machinery.  Terms are identified by position.
type ExponentView interface {
	// Terms returns the number of terms.
	Terms() uint
	// NumVars returns the number of ring variables.
	NumVars() uint
	// Exponent returns the exponent of the given (1-based) variable within
	// the given term.
	Exponent(term uint, v uint) uint
	// Degree returns the total degree of the given term.
	Degree(term uint) uint
}

// Comparator is a strict order predicate between two terms of a polynomial,
// identified by position.  It returns true iff the first term is strictly
// below the second under the chosen ordering; order-equal terms yield false
// either way round.
type Comparator func(view ExponentView, k, l uint) bool

// NewComparator returns the direct (matrix-free) comparator for a plain
// ordering kind, inspecting exponent vectors without any intermediate dot
// products.  Weight, Matrix and Generator kinds are rejected: the first two
// require parameters (see NewWeightedComparator and NewMatrixComparator)
// and generator blocks never participate in term comparison.
func NewComparator(kind Kind) (Comparator, error) {
	switch kind {
	case Lex:
		return lexLess, nil
	case NegLex:
		return negLexLess, nil
	case RevLex:
		return revLexLess, nil
	case NegRevLex:
		return negRevLexLess, nil
	case DegLex:
		return degreeThen(false, lexLess), nil
	case DegRevLex:
		return degreeThen(false, negRevLexLess), nil
	case NegDegLex:
		return degreeThen(true, lexLess), nil
	case NegDegRevLex:
		return degreeThen(true, negRevLexLess), nil
	default:
		return nil, fmt.Errorf("no direct comparator for %s ordering", kind)
	}
}

// NewWeightedComparator returns the comparator for a weighted variant of one
// of the degree orderings: terms are compared by the dot product of their
// exponent vectors with the given weights, with ties broken exactly as the
// corresponding unweighted kind breaks them.  Base kinds DegLex and
// DegRevLex require every weight to be strictly positive; NegDegLex and
// NegDegRevLex require a nonzero first weight.  Violations are construction
// failures, never silently tolerated.
func NewWeightedComparator(base Kind, weights []int64) (Comparator, error) {
	var (
		negated  bool
		tiebreak Comparator
	)
	//
	switch base {
	case DegLex:
		negated, tiebreak = false, lexLess
	case DegRevLex:
		negated, tiebreak = false, negRevLexLess
	case NegDegLex:
		negated, tiebreak = true, lexLess
	case NegDegRevLex:
		negated, tiebreak = true, negRevLexLess
	default:
		return nil, fmt.Errorf("%s ordering has no weighted variant", base)
	}
	//
	if len(weights) == 0 {
		return nil, fmt.Errorf("empty weight vector")
	}
	// Enforce the weight contracts.
	if negated {
		if weights[0] == 0 {
			return nil, fmt.Errorf("weighted %s ordering requires nonzero first weight", base)
		}
	} else {
		for _, w := range weights {
			if w <= 0 {
				return nil, fmt.Errorf("weighted %s ordering requires strictly positive weights", base)
			}
		}
	}
	//
	return func(view ExponentView, k, l uint) bool {
		wk := weightedDegree(view, k, weights)
		wl := weightedDegree(view, l, weights)
		//
		if c := wk.Cmp(wl); c != 0 {
			if negated {
				return c > 0
			}
			//
			return c < 0
		}
		//
		return tiebreak(view, k, l)
	}, nil
}

// NewMatrixComparator returns the comparator induced by an explicit integer
// matrix: rows are applied top to bottom, and the first row on which the two
// terms' dot products differ decides (the larger product ranks higher).  The
// matrix must have one column per ring variable of any view it is applied
// to.
func NewMatrixComparator(matrix *math.IntMatrix) (Comparator, error) {
	if matrix.Rows() == 0 {
		return nil, fmt.Errorf("empty comparison matrix")
	}
	//
	matrix = matrix.Clone()
	//
	return func(view ExponentView, k, l uint) bool {
		var dk, dl big.Int
		//
		for i := uint(0); i < matrix.Rows(); i++ {
			rowDot(&dk, matrix, i, view, k)
			rowDot(&dl, matrix, i, view, l)
			//
			if c := dk.Cmp(&dl); c != 0 {
				return c < 0
			}
		}
		// All rows tie, hence the terms are order-equal.
		return false
	}, nil
}

// Comparator derives a term comparator for this (possibly composite)
// ordering.  A single plain leaf covering the whole ring in ascending order
// uses the direct exponent-scanning fast path; everything else falls back to
// row-wise comparison against the full weight matrix.
func (p Ordering) Comparator() (Comparator, error) {
	leaves := p.Flatten()
	//
	if len(leaves) == 1 && !leaves[0].kind.HasMatrix() && coversRing(leaves[0], p.ring) {
		return NewComparator(leaves[0].kind)
	}
	//
	return NewMatrixComparator(p.WeightMatrix())
}

// coversRing checks whether a leaf acts on exactly the variables 1..n of the
// ring, in ascending order.
func coversRing(leaf Leaf, ring *Ring) bool {
	return leaf.vars.IsContiguous() && leaf.vars.Nth(0) == 1 && leaf.vars.Len() == ring.NumVars()
}

// SortedPermutation returns the positions of the view's terms, sorted into
// descending order under the given comparator.  The permutation is stable:
// order-equal terms keep their original relative positions.
func SortedPermutation(view ExponentView, less Comparator) []uint {
	perm := make([]uint, view.Terms())
	//
	for i := range perm {
		perm[i] = uint(i)
	}
	//
	sort.SliceStable(perm, func(i, j int) bool {
		return less(view, perm[j], perm[i])
	})
	//
	return perm
}

// rowDot computes the dot product of matrix row i with the exponent vector
// of the given term.
func rowDot(dst *big.Int, matrix *math.IntMatrix, i uint, view ExponentView, term uint) {
	var tmp big.Int
	//
	dst.SetInt64(0)
	//
	for j := uint(0); j < matrix.Cols(); j++ {
		tmp.SetUint64(uint64(view.Exponent(term, j+1)))
		tmp.Mul(&tmp, matrix.Get(i, j))
		dst.Add(dst, &tmp)
	}
}

// weightedDegree computes the dot product of the term's exponent vector with
// the given weight vector.
func weightedDegree(view ExponentView, term uint, weights []int64) *big.Int {
	var (
		acc = big.NewInt(0)
		tmp big.Int
	)
	//
	for j, w := range weights {
		tmp.SetUint64(uint64(view.Exponent(term, uint(j)+1)))
		tmp.Mul(&tmp, big.NewInt(w))
		acc.Add(acc, &tmp)
	}
	//
	return acc
}

// lexLess scans variables in ascending order; the larger exponent at the
// first difference ranks higher.
func lexLess(view ExponentView, k, l uint) bool {
	for v := uint(1); v <= view.NumVars(); v++ {
		a, b := view.Exponent(k, v), view.Exponent(l, v)
		//
		if a != b {
			return a < b
		}
	}
	//
	return false
}

// negLexLess is lexLess with the comparison sense inverted.
func negLexLess(view ExponentView, k, l uint) bool {
	for v := uint(1); v <= view.NumVars(); v++ {
		a, b := view.Exponent(k, v), view.Exponent(l, v)
		//
		if a != b {
			return a > b
		}
	}
	//
	return false
}

// revLexLess scans variables in descending order; the larger exponent at the
// first difference ranks higher.
func revLexLess(view ExponentView, k, l uint) bool {
	for v := view.NumVars(); v >= 1; v-- {
		a, b := view.Exponent(k, v), view.Exponent(l, v)
		//
		if a != b {
			return a < b
		}
	}
	//
	return false
}

// negRevLexLess is revLexLess with the comparison sense inverted.
func negRevLexLess(view ExponentView, k, l uint) bool {
	for v := view.NumVars(); v >= 1; v-- {
		a, b := view.Exponent(k, v), view.Exponent(l, v)
		//
		if a != b {
			return a > b
		}
	}
	//
	return false
}

// degreeThen compares total degree first (higher degree ranking lower when
// negated), falling back to the given tie-break on equal degrees.
func degreeThen(negated bool, tiebreak Comparator) Comparator {
	return func(view ExponentView, k, l uint) bool {
		dk, dl := view.Degree(k), view.Degree(l)
		//
		if dk != dl {
			if negated {
				return dk > dl
			}
			//
			return dk < dl
		}
		//
		return tiebreak(view, k, l)
	}
}
