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
	"os"
	"strings"

	"github.com/consensys/go-morder/pkg/order"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort [flags]",
	Short: "sort the terms of a polynomial under an ordering.",
	Long: `Sort the terms of a polynomial (given as coeff:e1,e2,... tuples) into descending
	 order under an ordering assembled from one or more blocks.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		nvars := GetUint(cmd, "nvars")
		if nvars == 0 {
			fmt.Println("number of ring variables required (--nvars)")
			os.Exit(2)
		}
		//
		ring := order.NewRing(nvars)
		//
		ordering, err := parseOrdering(ring, GetStringArray(cmd, "block"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		polynomial, err := parsePolynomial(nvars, GetStringArray(cmd, "term"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		less, err := ordering.Comparator()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		perm := order.SortedPermutation(polynomial, less)
		log.Debug("sorted permutation ", perm)
		// Print terms in descending order.
		var buf strings.Builder
		//
		for i, index := range perm {
			if i != 0 {
				buf.WriteString("+")
			}
			//
			buf.WriteString(polynomial.Term(index).String(ring.Name))
		}
		//
		fmt.Printf("%s: %s\n", ordering.String(), buf.String())
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().StringArrayP("block", "b", []string{}, "ordering block (kind:v1,v2,...)")
	sortCmd.Flags().StringArrayP("term", "t", []string{}, "polynomial term (coeff:e1,e2,...)")
}
