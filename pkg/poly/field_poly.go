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
package poly

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-morder/pkg/order"
)

// FieldMonomial pairs a field-element coefficient with an exponent vector.
// Ordering-wise it behaves identically to Monomial, since monomial orders
// never inspect coefficients.
type FieldMonomial struct {
	coefficient fr.Element
	exponents   []uint
}

// NewFieldMonomial constructs a new monomial with a given field coefficient
// and exponent vector.
func NewFieldMonomial(coefficient fr.Element, exponents ...uint) FieldMonomial {
	return FieldMonomial{coefficient, slices.Clone(exponents)}
}

// Coefficient returns the coefficient of this monomial.
func (p FieldMonomial) Coefficient() fr.Element {
	return p.coefficient
}

// Exponent returns the exponent of the given (1-based) variable.
func (p FieldMonomial) Exponent(v uint) uint {
	if v == 0 || v > uint(len(p.exponents)) {
		return 0
	}
	//
	return p.exponents[v-1]
}

// Degree returns the total degree of this monomial.
func (p FieldMonomial) Degree() uint {
	degree := uint(0)
	//
	for _, e := range p.exponents {
		degree += e
	}
	//
	return degree
}

// Matches determines whether the exponent vectors of this monomial and the
// other agree.
func (p FieldMonomial) Matches(other FieldMonomial) bool {
	n := uint(max(len(p.exponents), len(other.exponents)))
	//
	for v := uint(1); v <= n; v++ {
		if p.Exponent(v) != other.Exponent(v) {
			return false
		}
	}
	//
	return true
}

// FieldPoly is a polynomial whose coefficients are prime field elements
// rather than unbounded integers.  Like ArrayPoly, it implements
// order.ExponentView.
type FieldPoly struct {
	numVars uint
	terms   []FieldMonomial
}

var _ order.ExponentView = &FieldPoly{}

// NewFieldPoly constructs an (initially zero) polynomial over the given
// number of ring variables.
func NewFieldPoly(numVars uint) *FieldPoly {
	return &FieldPoly{numVars, nil}
}

// Len returns the number of terms in this polynomial.
func (p *FieldPoly) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term in this polynomial.
func (p *FieldPoly) Term(ith uint) FieldMonomial {
	return p.terms[ith]
}

// AddTerm adds a single term into this polynomial, merging it with a
// matching monomial where one exists (and dropping the pair if they cancel
// in the field).
func (p *FieldPoly) AddTerm(other FieldMonomial) {
	for i := range p.terms {
		if p.terms[i].Matches(other) {
			ith := &p.terms[i]
			// Merge term at this position
			ith.coefficient.Add(&ith.coefficient, &other.coefficient)
			// Check whether its now zero (or not)
			if ith.coefficient.IsZero() {
				p.terms = slices.Delete(p.terms, i, i+1)
			}
			//
			return
		}
	}
	//
	p.terms = append(p.terms, other)
}

// Terms returns the number of terms, as required for order.ExponentView.
func (p *FieldPoly) Terms() uint {
	return uint(len(p.terms))
}

// NumVars returns the number of ring variables.
func (p *FieldPoly) NumVars() uint {
	return p.numVars
}

// Exponent returns the exponent of the given (1-based) variable within the
// given term.
func (p *FieldPoly) Exponent(term uint, v uint) uint {
	return p.terms[term].Exponent(v)
}

// Degree returns the total degree of the given term.
func (p *FieldPoly) Degree(term uint) uint {
	return p.terms[term].Degree()
}

// String constructs a suitable string representation of this polynomial,
// assuming an environment mapping variable indices to names.
func (p *FieldPoly) String(env func(uint) string) string {
	var buf bytes.Buffer
	//
	if len(p.terms) == 0 {
		return "0"
	}
	//
	for i, term := range p.terms {
		if i != 0 {
			buf.WriteString("+")
		}
		//
		buf.WriteString(term.coefficient.String())
		//
		for v := uint(1); v <= uint(len(term.exponents)); v++ {
			if e := term.exponents[v-1]; e == 1 {
				fmt.Fprintf(&buf, "*%s", env(v))
			} else if e > 1 {
				fmt.Fprintf(&buf, "*%s^%d", env(v), e)
			}
		}
	}
	//
	return buf.String()
}
