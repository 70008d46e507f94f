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
	"hash/fnv"

	"github.com/consensys/go-morder/pkg/util/math"
)

// Module is the identity token for a free module over a ring: the base ring
// together with a number of generators.  Like rings, modules are compared by
// identity.
type Module struct {
	ring *Ring
	gens uint
}

// NewModule constructs a module over the given base ring with the given
// number of generators.
func NewModule(ring *Ring, gens uint) *Module {
	return &Module{ring, gens}
}

// Ring returns the base ring of this module.
func (p *Module) Ring() *Ring {
	return p.ring
}

// NumGens returns the number of generators of this module.
func (p *Module) NumGens() uint {
	return p.gens
}

// ModuleOrdering composes a generator-index ordering with a monomial
// ordering over the base ring.  Generator blocks reuse the leaf/product
// machinery but never participate in term comparison; they only ever feed
// weight-matrix derivation.
type ModuleOrdering struct {
	module *Module
	root   node
}

// GenOrder constructs a generator-index ordering block over the given
// (1-based) generator indices.
func (p *Module) GenOrder(gens ...uint) (ModuleOrdering, error) {
	leaf, err := newLeaf(p.gens, Generator, nil, gens...)
	//
	if err != nil {
		return ModuleOrdering{}, err
	}
	//
	return ModuleOrdering{p, leaf}, nil
}

// CombineMonomial forms the product of this module ordering with a monomial
// ordering, where this ordering takes precedence.  The monomial ordering
// must be declared over the module's base ring.
func (p ModuleOrdering) CombineMonomial(other Ordering) (ModuleOrdering, error) {
	if other.ring != p.module.ring {
		return ModuleOrdering{}, fmt.Errorf("monomial ordering declared over a different ring")
	}
	//
	return ModuleOrdering{p.module, product{p.root, other.root}}, nil
}

// Combine forms the product of two orderings over the same module.
func (p ModuleOrdering) Combine(other ModuleOrdering) (ModuleOrdering, error) {
	if other.module != p.module {
		return ModuleOrdering{}, fmt.Errorf("cannot combine orderings over different modules")
	}
	//
	return ModuleOrdering{p.module, product{p.root, other.root}}, nil
}

// Module returns the identity token of the module this ordering is declared
// over.
func (p ModuleOrdering) Module() *Module {
	return p.module
}

// Flatten returns the leaves of this ordering in left-to-right precedence
// order.
func (p ModuleOrdering) Flatten() []Leaf {
	return p.root.flattenInto(nil)
}

// WeightMatrix returns the full weight matrix of this module ordering.  The
// first NumGens columns correspond to generator indices and the remaining
// columns to ring variables; generator leaves embed into the former and
// monomial leaves into the latter.
func (p ModuleOrdering) WeightMatrix() *math.IntMatrix {
	width := p.module.gens + p.module.ring.NumVars()
	//
	return stackLeaves(p.Flatten(), width, p.module.gens)
}

// CanonicalForm returns the canonical weight matrix of this module ordering.
func (p ModuleOrdering) CanonicalForm() *math.IntMatrix {
	return Canonicalize(p.WeightMatrix())
}

// Equals determines whether two module orderings induce the same total
// order, requiring both to be declared over the same module instance.
func (p ModuleOrdering) Equals(other ModuleOrdering) bool {
	if p.module != other.module {
		return false
	}
	//
	return p.CanonicalForm().Equals(other.CanonicalForm())
}

// Hash returns a hashcode consistent with Equals.
func (p ModuleOrdering) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write(p.CanonicalForm().Bytes())
	//
	return hash.Sum64()
}
