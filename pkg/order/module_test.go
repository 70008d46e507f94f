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
	"testing"
)

func Test_Module_WeightMatrix(t *testing.T) {
	ring := NewRing(2)
	module := NewModule(ring, 2)
	//
	gens := mustModuleOrdering(t)(module.GenOrder(1, 2))
	monomial := mustOrdering(t)(ring.DegRevLex(1, 2))
	ordering := mustModuleOrdering(t)(gens.CombineMonomial(monomial))
	// Generator columns first, then ring variable columns.
	checkIntMatrix(t, ordering.WeightMatrix(), [][]int64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, -1},
	})
}

func Test_Module_GenOrder_Errors(t *testing.T) {
	module := NewModule(NewRing(2), 2)
	// Generator index beyond the generator count
	if _, err := module.GenOrder(1, 3); err == nil {
		t.Errorf("out-of-range generator index accepted")
	}
	// Zero generator index
	if _, err := module.GenOrder(0); err == nil {
		t.Errorf("zero generator index accepted")
	}
	// Empty generator set
	if _, err := module.GenOrder(); err == nil {
		t.Errorf("empty generator set accepted")
	}
}

func Test_Module_CombineMonomial_RingMismatch(t *testing.T) {
	module := NewModule(NewRing(2), 1)
	gens := mustModuleOrdering(t)(module.GenOrder(1))
	// A monomial ordering over some other ring cannot participate.
	other := mustOrdering(t)(NewRing(2).Lex(1, 2))
	//
	if _, err := gens.CombineMonomial(other); err == nil {
		t.Errorf("monomial ordering over a foreign ring accepted")
	}
}

func Test_Module_Combine(t *testing.T) {
	module := NewModule(NewRing(2), 3)
	a := mustModuleOrdering(t)(module.GenOrder(2))
	b := mustModuleOrdering(t)(module.GenOrder(1, 3))
	//
	ordering := mustModuleOrdering(t)(a.Combine(b))
	// Five columns: three generators plus two ring variables.
	checkIntMatrix(t, ordering.WeightMatrix(), [][]int64{
		{0, 1, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
	})
	// Orderings over distinct module instances never combine.
	foreign := mustModuleOrdering(t)(NewModule(NewRing(2), 3).GenOrder(1))
	//
	if _, err := a.Combine(foreign); err == nil {
		t.Errorf("orderings over distinct modules combined")
	}
}

func Test_Module_Equals_Hash(t *testing.T) {
	ring := NewRing(2)
	module := NewModule(ring, 2)
	monomial := mustOrdering(t)(ring.DegRevLex(1, 2))
	//
	a := mustModuleOrdering(t)(mustModuleOrdering(t)(module.GenOrder(1, 2)).CombineMonomial(monomial))
	b := mustModuleOrdering(t)(mustModuleOrdering(t)(module.GenOrder(1, 2)).CombineMonomial(monomial))
	c := mustModuleOrdering(t)(mustModuleOrdering(t)(module.GenOrder(2, 1)).CombineMonomial(monomial))
	//
	if !a.Equals(b) || a.Hash() != b.Hash() {
		t.Errorf("independently constructed module orderings compare unequal")
	}
	// Reversed generator precedence induces a different order.
	if a.Equals(c) {
		t.Errorf("distinct generator precedences compare equal")
	}
}

// =========================================================================================

// mustModuleOrdering returns a checker which accepts the two results of a
// module ordering constructor directly, failing the test on a construction
// error.
func mustModuleOrdering(t *testing.T) func(ModuleOrdering, error) ModuleOrdering {
	return func(ordering ModuleOrdering, err error) ModuleOrdering {
		t.Helper()
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		return ordering
	}
}
