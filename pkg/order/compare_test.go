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
	"slices"
	"testing"
)

// expView is a minimal test fixture implementing ExponentView directly over
// raw exponent vectors.
type expView struct {
	nvars uint
	terms [][]uint
}

func (p *expView) Terms() uint {
	return uint(len(p.terms))
}

func (p *expView) NumVars() uint {
	return p.nvars
}

func (p *expView) Exponent(term uint, v uint) uint {
	return p.terms[term][v-1]
}

func (p *expView) Degree(term uint) uint {
	sum := uint(0)
	//
	for _, e := range p.terms[term] {
		sum += e
	}
	//
	return sum
}

func Test_Compare_Lex(t *testing.T) {
	// x1^2 versus x1*x2^5: lex decides on x1 alone, despite the lower total
	// degree.
	view := &expView{2, [][]uint{{2, 0}, {1, 5}}}
	less := mustComparator(t)(NewComparator(Lex))
	//
	if less(view, 0, 1) {
		t.Errorf("x1^2 compares below x1*x2^5 under lex")
	}
	//
	if !less(view, 1, 0) {
		t.Errorf("x1*x2^5 does not compare below x1^2 under lex")
	}
}

func Test_Compare_DegLex(t *testing.T) {
	// x1^3 versus x1*x2: total degree decides before any exponent is
	// inspected.
	view := &expView{2, [][]uint{{3, 0}, {1, 1}}}
	less := mustComparator(t)(NewComparator(DegLex))
	//
	if !less(view, 1, 0) || less(view, 0, 1) {
		t.Errorf("deglex does not favour the higher total degree")
	}
}

func Test_Compare_NegDegLex(t *testing.T) {
	// Negated degree orderings rank the higher total degree lower.
	view := &expView{2, [][]uint{{3, 0}, {1, 1}}}
	less := mustComparator(t)(NewComparator(NegDegLex))
	//
	if !less(view, 0, 1) || less(view, 1, 0) {
		t.Errorf("negdeglex does not rank the higher total degree lower")
	}
}

func Test_Compare_DegRevLex(t *testing.T) {
	// x1*x2 versus x3^2: equal total degree, decided by the reverse scan.
	view := &expView{3, [][]uint{{1, 1, 0}, {0, 0, 2}}}
	less := mustComparator(t)(NewComparator(DegRevLex))
	//
	if !less(view, 1, 0) {
		t.Errorf("x3^2 does not compare below x1*x2 under degrevlex")
	}
	//
	if less(view, 0, 1) {
		t.Errorf("x1*x2 compares below x3^2 under degrevlex")
	}
}

func Test_Compare_OrderEqual(t *testing.T) {
	view := &expView{2, [][]uint{{1, 2}, {1, 2}}}
	//
	for _, kind := range []Kind{Lex, RevLex, DegLex, DegRevLex, NegLex, NegRevLex} {
		less := mustComparator(t)(NewComparator(kind))
		//
		if less(view, 0, 1) || less(view, 1, 0) {
			t.Errorf("identical terms compare unequal under %s", kind)
		}
	}
}

func Test_Compare_NoDirectComparator(t *testing.T) {
	for _, kind := range []Kind{Weight, Matrix, Generator} {
		if _, err := NewComparator(kind); err == nil {
			t.Errorf("direct comparator constructed for %s", kind)
		}
	}
}

func Test_Compare_MatrixConsistency(t *testing.T) {
	// Every direct comparator must agree with row-wise comparison against the
	// kind's own weight matrix, across all pairs of a monomial sample.
	ring := NewRing(3)
	view := &expView{3, [][]uint{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{2, 0, 0}, {1, 1, 0}, {1, 0, 1}, {0, 2, 0}, {0, 1, 1}, {0, 0, 2},
		{2, 1, 0}, {1, 1, 1}, {0, 1, 2}, {3, 0, 0},
	}}
	//
	for _, ordering := range allPlainOrderings(t, ring) {
		direct := mustComparator(t)(ordering.Comparator())
		rowwise := mustComparator(t)(NewMatrixComparator(ordering.WeightMatrix()))
		//
		for k := uint(0); k < view.Terms(); k++ {
			for l := uint(0); l < view.Terms(); l++ {
				if direct(view, k, l) != rowwise(view, k, l) {
					t.Errorf("%s: direct and matrix comparison disagree on terms %d,%d",
						ordering.String(), k, l)
				}
			}
		}
	}
}

func Test_Compare_CompositeOrdering(t *testing.T) {
	ring := NewRing(3)
	left := mustOrdering(t)(ring.Lex(1))
	right := mustOrdering(t)(ring.DegRevLex(2, 3))
	ordering := mustOrdering(t)(Combine(left, right))
	//
	less := mustComparator(t)(ordering.Comparator())
	// x1 dominates any monomial in x2, x3 alone.
	view := &expView{3, [][]uint{{1, 0, 0}, {0, 5, 5}, {0, 1, 1}}}
	//
	if !less(view, 1, 0) || !less(view, 2, 1) {
		t.Errorf("composite ordering violates block precedence")
	}
}

func Test_Compare_Weighted(t *testing.T) {
	less, err := NewWeightedComparator(DegRevLex, []int64{2, 1})
	//
	if err != nil {
		t.Fatal(err)
	}
	// x1 and x2^2 both have weighted degree two; the reverse scan breaks the
	// tie in favour of x1.
	view := &expView{2, [][]uint{{1, 0}, {0, 2}}}
	//
	if !less(view, 1, 0) || less(view, 0, 1) {
		t.Errorf("weighted degrevlex tie-break failed")
	}
}

func Test_Compare_Weighted_Contracts(t *testing.T) {
	// Degree orderings require strictly positive weights.
	if _, err := NewWeightedComparator(DegLex, []int64{1, -1}); err == nil {
		t.Errorf("nonpositive weight accepted for weighted deglex")
	}
	//
	if _, err := NewWeightedComparator(DegRevLex, []int64{0, 1}); err == nil {
		t.Errorf("zero weight accepted for weighted degrevlex")
	}
	// Negated variants require a nonzero first weight.
	if _, err := NewWeightedComparator(NegDegLex, []int64{0, 1}); err == nil {
		t.Errorf("zero first weight accepted for weighted negdeglex")
	}
	//
	if _, err := NewWeightedComparator(NegDegRevLex, []int64{-1, 0}); err != nil {
		t.Errorf("nonzero first weight rejected for weighted negdegrevlex")
	}
	// Non-degree kinds have no weighted variant.
	if _, err := NewWeightedComparator(RevLex, []int64{1, 1}); err == nil {
		t.Errorf("weighted variant constructed for revlex")
	}
	//
	if _, err := NewWeightedComparator(DegLex, nil); err == nil {
		t.Errorf("empty weight vector accepted")
	}
}

func Test_SortedPermutation_Descending(t *testing.T) {
	ring := NewRing(3)
	ordering := mustOrdering(t)(ring.DegRevLex(1, 2, 3))
	less := mustComparator(t)(ordering.Comparator())
	// 1, x1*x2, x3^2, x1^2*x2 in scrambled input order.
	view := &expView{3, [][]uint{{0, 0, 2}, {1, 1, 0}, {0, 0, 0}, {2, 1, 0}}}
	//
	perm := SortedPermutation(view, less)
	//
	if !slices.Equal(perm, []uint{3, 1, 0, 2}) {
		t.Errorf("unexpected permutation %v", perm)
	}
}

func Test_SortedPermutation_Stable(t *testing.T) {
	ring := NewRing(2)
	ordering := mustOrdering(t)(ring.Lex(1, 2))
	less := mustComparator(t)(ordering.Comparator())
	// Order-equal terms retain their input positions.
	view := &expView{2, [][]uint{{1, 0}, {2, 0}, {1, 0}}}
	//
	perm := SortedPermutation(view, less)
	//
	if !slices.Equal(perm, []uint{1, 0, 2}) {
		t.Errorf("unexpected permutation %v", perm)
	}
}

// =========================================================================================

// mustComparator returns a checker which accepts the two results of a
// comparator constructor directly, failing the test on a construction error.
func mustComparator(t *testing.T) func(Comparator, error) Comparator {
	return func(less Comparator, err error) Comparator {
		t.Helper()
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		return less
	}
}
