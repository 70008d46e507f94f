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
	"strings"

	"github.com/consensys/go-morder/pkg/util/math"
)

// Ring is the identity token for the polynomial ring an ordering is declared
// over.  Two orderings are only comparable (and combinable) when declared
// over the same Ring instance; rings are compared by identity, never by
// structure.
type Ring struct {
	names []string
}

// NewRing constructs a ring with n variables, named x1, ..., xn.
func NewRing(n uint) *Ring {
	names := make([]string, n)
	//
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}
	//
	return &Ring{names}
}

// NewNamedRing constructs a ring whose variables carry the given names.
func NewNamedRing(names ...string) *Ring {
	return &Ring{names}
}

// NumVars returns the number of variables in this ring.
func (p *Ring) NumVars() uint {
	return uint(len(p.names))
}

// Name returns the display name of the given (1-based) variable.
func (p *Ring) Name(index uint) string {
	return p.names[index-1]
}

// Leaf is an indivisible ordering block: a kind acting on a variable set,
// optionally carrying an explicit weight matrix.  Leaves are immutable once
// constructed.
type Leaf struct {
	vars VarSet
	kind Kind
	// weights is non-nil exactly when kind.HasMatrix() holds.
	weights *math.IntMatrix
}

// Vars returns the variable set this leaf acts on.
func (p Leaf) Vars() VarSet {
	return p.vars
}

// Kind returns the ordering kind of this leaf.
func (p Leaf) Kind() Kind {
	return p.kind
}

// Weights returns the explicit weight matrix of this leaf, or nil for kinds
// with an intrinsic matrix.
func (p Leaf) Weights() *math.IntMatrix {
	return p.weights
}

// node is the sum type underlying ordering trees: either a leaf, or a binary
// product of two subtrees where the left takes precedence.
type node interface {
	// flattenInto appends the leaves of this subtree, in left-to-right
	// precedence order, onto the given slice.
	flattenInto(leaves []Leaf) []Leaf
}

type product struct {
	left, right node
}

func (p Leaf) flattenInto(leaves []Leaf) []Leaf {
	return append(leaves, p)
}

func (p product) flattenInto(leaves []Leaf) []Leaf {
	return p.right.flattenInto(p.left.flattenInto(leaves))
}

// Ordering pairs an ordering tree with the ring it is declared over.  An
// Ordering is immutable; it is combined with others via Combine, never
// mutated in place.
type Ordering struct {
	ring *Ring
	root node
}

// Lex constructs a lexicographic ordering block over the given variables.
func (p *Ring) Lex(vars ...uint) (Ordering, error) {
	return p.Order(Lex, nil, vars...)
}

// RevLex constructs a reverse lexicographic ordering block.
func (p *Ring) RevLex(vars ...uint) (Ordering, error) {
	return p.Order(RevLex, nil, vars...)
}

// DegLex constructs a degree lexicographic ordering block.
func (p *Ring) DegLex(vars ...uint) (Ordering, error) {
	return p.Order(DegLex, nil, vars...)
}

// DegRevLex constructs a degree reverse lexicographic ordering block.
func (p *Ring) DegRevLex(vars ...uint) (Ordering, error) {
	return p.Order(DegRevLex, nil, vars...)
}

// NegLex constructs a negated lexicographic ordering block.
func (p *Ring) NegLex(vars ...uint) (Ordering, error) {
	return p.Order(NegLex, nil, vars...)
}

// NegRevLex constructs a negated reverse lexicographic ordering block.
func (p *Ring) NegRevLex(vars ...uint) (Ordering, error) {
	return p.Order(NegRevLex, nil, vars...)
}

// NegDegLex constructs a negated degree lexicographic ordering block.
func (p *Ring) NegDegLex(vars ...uint) (Ordering, error) {
	return p.Order(NegDegLex, nil, vars...)
}

// NegDegRevLex constructs a negated degree reverse lexicographic ordering
// block.
func (p *Ring) NegDegRevLex(vars ...uint) (Ordering, error) {
	return p.Order(NegDegRevLex, nil, vars...)
}

// WeightOrder constructs an ordering block from an explicit weight matrix
// applied to the given variables.
func (p *Ring) WeightOrder(weights *math.IntMatrix, vars ...uint) (Ordering, error) {
	return p.Order(Weight, weights, vars...)
}

// MatrixOrder constructs an ordering block from an explicit integer matrix
// applied to the given variables.
func (p *Ring) MatrixOrder(weights *math.IntMatrix, vars ...uint) (Ordering, error) {
	return p.Order(Matrix, weights, vars...)
}

// Order is the generic "named kind plus optional matrix" constructor.
// The matrix must be supplied exactly when the kind requires one, and its
// column count must match the number of variables given.
func (p *Ring) Order(kind Kind, weights *math.IntMatrix, vars ...uint) (Ordering, error) {
	if kind == Generator {
		return Ordering{}, fmt.Errorf("generator blocks cannot order ring variables")
	}
	//
	leaf, err := newLeaf(p.NumVars(), kind, weights, vars...)
	//
	if err != nil {
		return Ordering{}, err
	}
	//
	return Ordering{p, leaf}, nil
}

// newLeaf constructs and validates a leaf block whose variable indices must
// all lie within 1..width.
func newLeaf(width uint, kind Kind, weights *math.IntMatrix, vars ...uint) (Leaf, error) {
	varset, err := NewVarSet(vars...)
	//
	if err != nil {
		return Leaf{}, err
	} else if varset.Max() > width {
		return Leaf{}, fmt.Errorf("variable index %d exceeds declared width %d", varset.Max(), width)
	}
	// Check matrix contract
	switch {
	case kind.HasMatrix() && weights == nil:
		return Leaf{}, fmt.Errorf("%s ordering requires an explicit matrix", kind)
	case kind.HasMatrix() && weights.Cols() != varset.Len():
		return Leaf{}, fmt.Errorf(
			"%s matrix has %d columns for %d variables", kind, weights.Cols(), varset.Len())
	case kind.HasMatrix() && weights.Rows() == 0:
		return Leaf{}, fmt.Errorf("%s ordering requires a non-empty matrix", kind)
	case !kind.HasMatrix() && weights != nil:
		return Leaf{}, fmt.Errorf("%s ordering does not accept a matrix", kind)
	}
	// Clone the matrix, since leaves are immutable but the caller may not be
	// done with its copy.
	if weights != nil {
		weights = weights.Clone()
	}
	//
	return Leaf{varset, kind, weights}, nil
}

// Combine forms the product of two orderings, where the first takes
// precedence and the second breaks ties.  Both must be declared over the
// same ring instance.
func Combine(a, b Ordering) (Ordering, error) {
	if a.ring != b.ring {
		return Ordering{}, fmt.Errorf("cannot combine orderings over different rings")
	}
	//
	return Ordering{a.ring, product{a.root, b.root}}, nil
}

// Ring returns the identity token of the ring this ordering is declared
// over.
func (p Ordering) Ring() *Ring {
	return p.ring
}

// Flatten returns the leaves of this ordering in left-to-right precedence
// order, i.e. earlier leaves dominate later ones when comparing monomials.
func (p Ordering) Flatten() []Leaf {
	return p.root.flattenInto(nil)
}

// String renders this ordering in the form "lex(x1,x2)*degrevlex(x3)".
func (p Ordering) String() string {
	var buf strings.Builder
	//
	for i, leaf := range p.Flatten() {
		if i != 0 {
			buf.WriteString("*")
		}
		//
		fmt.Fprintf(&buf, "%s(%s)", leaf.kind, leaf.vars.String(p.ring.Name))
	}
	//
	return buf.String()
}
