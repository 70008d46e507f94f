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
	"github.com/consensys/go-morder/pkg/util/math"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [flags]",
	Short: "print the weight matrix of an ordering.",
	Long: `Print the full weight matrix of an ordering assembled from one or more blocks
	 (e.g. --block lex:1 --block degrevlex:2,3), along with its canonical form.`,
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
		log.Debug("assembled ordering ", ordering.String())
		//
		fmt.Printf("ordering:  %s\n", ordering.String())
		fmt.Println("weight matrix:")
		printMatrix(ordering.WeightMatrix())
		//
		if !GetFlag(cmd, "raw") {
			fmt.Println("canonical form:")
			printMatrix(ordering.CanonicalForm())
			fmt.Printf("hash: %016x\n", ordering.Hash())
		}
	},
}

// printMatrix writes a matrix with column-aligned cells, one row per line.
// When the aligned form would overflow the terminal, fall back to the
// compact single-line rendering.
func printMatrix(matrix *math.IntMatrix) {
	var (
		lines  = alignedRows(matrix)
		maxLen = 0
	)
	//
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	// Check terminal geometry (ignored when not a terminal).
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && maxLen > width {
		fmt.Println(matrix.String())
		return
	}
	//
	for _, line := range lines {
		fmt.Println(line)
	}
}

func alignedRows(matrix *math.IntMatrix) []string {
	widths := make([]int, matrix.Cols())
	//
	for i := uint(0); i < matrix.Rows(); i++ {
		for j := uint(0); j < matrix.Cols(); j++ {
			widths[j] = max(widths[j], len(matrix.Get(i, j).String()))
		}
	}
	//
	lines := make([]string, matrix.Rows())
	//
	for i := uint(0); i < matrix.Rows(); i++ {
		var buf strings.Builder
		//
		buf.WriteString("[")
		//
		for j := uint(0); j < matrix.Cols(); j++ {
			if j != 0 {
				buf.WriteString(" ")
			}
			//
			fmt.Fprintf(&buf, "%*s", widths[j], matrix.Get(i, j).String())
		}
		//
		buf.WriteString("]")
		lines[i] = buf.String()
	}
	//
	return lines
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.Flags().StringArrayP("block", "b", []string{}, "ordering block (kind:v1,v2,...)")
	matrixCmd.Flags().Bool("raw", false, "skip canonicalisation")
}
