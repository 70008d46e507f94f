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
	"slices"

	"github.com/consensys/go-morder/pkg/order"
)

// ArrayPoly is the simplest polynomial implementation over integer
// coefficients: a flat array of monomials in insertion order.  It implements
// order.ExponentView, which is what the comparator engine consumes.  Observe
// that an uninitialised ArrayPoly corresponds with zero.
type ArrayPoly struct {
	// number of ring variables
	numVars uint
	terms   []Monomial
}

var _ order.ExponentView = &ArrayPoly{}

// NewArrayPoly constructs an (initially zero) polynomial over the given
// number of ring variables.
func NewArrayPoly(numVars uint) *ArrayPoly {
	return &ArrayPoly{numVars, nil}
}

// Len returns the number of terms in this polynomial.
func (p *ArrayPoly) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term in this polynomial.
func (p *ArrayPoly) Term(ith uint) Monomial {
	return p.terms[ith]
}

// Set initialises this polynomial from zero or more terms.
func (p *ArrayPoly) Set(terms ...Monomial) *ArrayPoly {
	p.terms = terms
	return p
}

// Clone performs a deep copy of this polynomial.
func (p *ArrayPoly) Clone() *ArrayPoly {
	nterms := make([]Monomial, len(p.terms))
	//
	for i := range nterms {
		nterms[i] = p.terms[i].Clone()
	}
	//
	return &ArrayPoly{p.numVars, nterms}
}

// AddTerm adds a single term into this polynomial, merging it with a
// matching monomial where one exists (and dropping the pair if they cancel).
func (p *ArrayPoly) AddTerm(other Monomial) {
	for i, term := range p.terms {
		if term.Matches(other) {
			ith := &p.terms[i]
			// Merge term at this position
			ith.coefficient.Add(&ith.coefficient, &other.coefficient)
			// Check whether its now zero (or not)
			if ith.IsZero() {
				p.terms = slices.Delete(p.terms, i, i+1)
			}
			//
			return
		}
	}
	//
	p.terms = append(p.terms, other.Clone())
}

// Terms returns the number of terms, as required for order.ExponentView.
func (p *ArrayPoly) Terms() uint {
	return uint(len(p.terms))
}

// NumVars returns the number of ring variables.
func (p *ArrayPoly) NumVars() uint {
	return p.numVars
}

// Exponent returns the exponent of the given (1-based) variable within the
// given term.
func (p *ArrayPoly) Exponent(term uint, v uint) uint {
	return p.terms[term].Exponent(v)
}

// Degree returns the total degree of the given term.
func (p *ArrayPoly) Degree(term uint) uint {
	return p.terms[term].Degree()
}

// String constructs a suitable string representation of this polynomial,
// assuming an environment mapping variable indices to names.
func (p *ArrayPoly) String(env func(uint) string) string {
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
		buf.WriteString(term.String(env))
	}
	//
	return buf.String()
}
