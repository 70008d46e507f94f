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
	"math/big"
	"slices"
)

// Monomial pairs an integer coefficient with an exponent vector indexed by
// variable position.  The exponent vector may be shorter than the number of
// ring variables, in which case trailing exponents are zero.
type Monomial struct {
	coefficient big.Int
	exponents   []uint
}

// NewMonomial constructs a new monomial with a given coefficient and
// exponent vector.
func NewMonomial(coefficient big.Int, exponents ...uint) Monomial {
	return Monomial{coefficient, slices.Clone(exponents)}
}

// Clone a monomial.
func (p Monomial) Clone() Monomial {
	var val big.Int
	//
	val.Set(&p.coefficient)
	//
	return Monomial{val, slices.Clone(p.exponents)}
}

// Coefficient returns the coefficient of this monomial.
func (p Monomial) Coefficient() big.Int {
	return p.coefficient
}

// Exponent returns the exponent of the given (1-based) variable.
func (p Monomial) Exponent(v uint) uint {
	if v == 0 || v > uint(len(p.exponents)) {
		return 0
	}
	//
	return p.exponents[v-1]
}

// Degree returns the total degree of this monomial, i.e. the sum of its
// exponents.
func (p Monomial) Degree() uint {
	degree := uint(0)
	//
	for _, e := range p.exponents {
		degree += e
	}
	//
	return degree
}

// IsZero checks whether or not the coefficient of this monomial is zero.
func (p Monomial) IsZero() bool {
	c := p.coefficient
	return c.BitLen() == 0
}

// Neg returns a negated copy of this monomial.
func (p Monomial) Neg() Monomial {
	res := p.Clone()
	res.coefficient.Neg(&res.coefficient)
	//
	return res
}

// Mul returns a fresh monomial representing the product of this monomial and
// another, multiplying coefficients and adding exponent vectors.
func (p Monomial) Mul(other Monomial) Monomial {
	var res Monomial
	//
	res.coefficient.Mul(&p.coefficient, &other.coefficient)
	res.exponents = make([]uint, max(len(p.exponents), len(other.exponents)))
	//
	for v := uint(1); v <= uint(len(res.exponents)); v++ {
		res.exponents[v-1] = p.Exponent(v) + other.Exponent(v)
	}
	//
	return res
}

// Matches determines whether the exponent vectors of this monomial and the
// other agree, ignoring coefficients.
func (p Monomial) Matches(other Monomial) bool {
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

// String constructs a suitable string representation of this monomial,
// assuming an environment mapping (1-based) variable indices to names.
func (p Monomial) String(env func(uint) string) string {
	var (
		buf   bytes.Buffer
		coeff = p.Coefficient()
		one   = big.NewInt(1)
	)
	//
	if p.Degree() == 0 || coeff.Cmp(one) != 0 {
		buf.WriteString(coeff.String())
	}
	//
	for v := uint(1); v <= uint(len(p.exponents)); v++ {
		if p.exponents[v-1] == 0 {
			continue
		}
		//
		if buf.Len() != 0 {
			buf.WriteString("*")
		}
		//
		buf.WriteString(env(v))
		//
		if p.exponents[v-1] > 1 {
			fmt.Fprintf(&buf, "^%d", p.exponents[v-1])
		}
	}
	//
	return buf.String()
}
