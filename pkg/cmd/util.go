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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-morder/pkg/order"
	"github.com/consensys/go-morder/pkg/poly"
	"github.com/consensys/go-morder/pkg/util/math"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error
// arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or panic if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parseOrdering assembles an ordering over the given ring from one or more
// block descriptions of the form "kind:v1,v2,..." (plain kinds) or
// "weight:w1,w2,...:v1,v2,..." (explicit single-row weight blocks), combined
// left to right.
func parseOrdering(ring *order.Ring, blocks []string) (order.Ordering, error) {
	var result order.Ordering
	//
	if len(blocks) == 0 {
		return result, fmt.Errorf("at least one ordering block required")
	}
	//
	for i, block := range blocks {
		ordering, err := parseBlock(ring, block)
		//
		if err != nil {
			return result, fmt.Errorf("block \"%s\": %s", block, err.Error())
		}
		//
		if i == 0 {
			result = ordering
		} else if result, err = order.Combine(result, ordering); err != nil {
			return result, err
		}
	}
	//
	return result, nil
}

func parseBlock(ring *order.Ring, block string) (order.Ordering, error) {
	parts := strings.Split(block, ":")
	//
	kind, err := order.ParseKind(parts[0])
	//
	if err != nil {
		return order.Ordering{}, err
	}
	//
	switch {
	case kind.HasMatrix() && len(parts) == 3:
		weights, err := parseWeights(parts[1])
		if err != nil {
			return order.Ordering{}, err
		}
		//
		vars, err := parseUints(parts[2])
		if err != nil {
			return order.Ordering{}, err
		}
		//
		return ring.Order(kind, weights, vars...)
	case !kind.HasMatrix() && len(parts) == 2:
		vars, err := parseUints(parts[1])
		if err != nil {
			return order.Ordering{}, err
		}
		//
		return ring.Order(kind, nil, vars...)
	default:
		return order.Ordering{}, fmt.Errorf("malformed ordering block")
	}
}

// parseWeights parses a comma-separated list of integers into a single-row
// weight matrix.
func parseWeights(text string) (*math.IntMatrix, error) {
	items := strings.Split(text, ",")
	row := make([]int64, len(items))
	//
	for i, item := range items {
		value, err := strconv.ParseInt(item, 10, 64)
		//
		if err != nil {
			return nil, fmt.Errorf("malformed weight \"%s\"", item)
		}
		//
		row[i] = value
	}
	//
	return math.NewIntMatrixFromRows(uint(len(row)), row)
}

func parseUints(text string) ([]uint, error) {
	items := strings.Split(text, ",")
	values := make([]uint, len(items))
	//
	for i, item := range items {
		value, err := strconv.ParseUint(item, 10, 32)
		//
		if err != nil {
			return nil, fmt.Errorf("malformed variable index \"%s\"", item)
		}
		//
		values[i] = uint(value)
	}
	//
	return values, nil
}

// parsePolynomial assembles a polynomial from one or more term descriptions
// of the form "coeff:e1,e2,...", e.g. "3:1,0,2" for 3*x1*x3^2.
func parsePolynomial(numVars uint, terms []string) (*poly.ArrayPoly, error) {
	result := poly.NewArrayPoly(numVars)
	//
	for _, term := range terms {
		parts := strings.Split(term, ":")
		//
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed term \"%s\"", term)
		}
		//
		var coefficient big.Int
		//
		if _, ok := coefficient.SetString(parts[0], 10); !ok {
			return nil, fmt.Errorf("malformed coefficient \"%s\"", parts[0])
		}
		//
		exponents, err := parseUints(parts[1])
		//
		if err != nil {
			return nil, err
		} else if uint(len(exponents)) != numVars {
			return nil, fmt.Errorf("term \"%s\" has %d exponents for %d variables", term, len(exponents), numVars)
		}
		//
		result.AddTerm(poly.NewMonomial(coefficient, exponents...))
	}
	//
	return result, nil
}
