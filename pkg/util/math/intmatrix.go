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
package math

import (
	"bytes"
	"fmt"
	"math/big"
)

// IntMatrix is a dense, row-major matrix of exact (i.e. arbitrary precision)
// integer entries.  All operations are exact; in particular, row division
// requires the divisor to divide every entry of the row.  An IntMatrix with
// zero rows is valid and arises naturally as the seed of a vertical stack.
type IntMatrix struct {
	rows, cols uint
	// backing store of length rows*cols, indexed row major.
	data []big.Int
}

// NewIntMatrix constructs a new rows x cols matrix initialised to zero.
func NewIntMatrix(rows, cols uint) *IntMatrix {
	return &IntMatrix{rows, cols, make([]big.Int, rows*cols)}
}

// NewIntMatrixFromRows constructs a new matrix from zero or more rows of
// int64 values, where every row must have the given number of columns.
func NewIntMatrixFromRows(cols uint, rows ...[]int64) (*IntMatrix, error) {
	matrix := NewIntMatrix(uint(len(rows)), cols)
	//
	for i, row := range rows {
		if uint(len(row)) != cols {
			return nil, fmt.Errorf("row %d has %d columns (expected %d)", i, len(row), cols)
		}
		//
		for j, v := range row {
			matrix.data[uint(i)*cols+uint(j)].SetInt64(v)
		}
	}
	//
	return matrix, nil
}

// IdentityMatrix constructs the n x n identity matrix.
func IdentityMatrix(n uint) *IntMatrix {
	matrix := NewIntMatrix(n, n)
	//
	for i := uint(0); i < n; i++ {
		matrix.data[i*n+i].SetInt64(1)
	}
	//
	return matrix
}

// AntiDiagonalMatrix constructs the n x n matrix whose anti-diagonal entries
// (i.e. those at position (i, n-1-i)) hold the given value, and whose
// remaining entries are zero.
func AntiDiagonalMatrix(n uint, value int64) *IntMatrix {
	matrix := NewIntMatrix(n, n)
	//
	for i := uint(0); i < n; i++ {
		matrix.data[i*n+(n-1-i)].SetInt64(value)
	}
	//
	return matrix
}

// Rows returns the number of rows in this matrix.
func (p *IntMatrix) Rows() uint {
	return p.rows
}

// Cols returns the number of columns in this matrix.
func (p *IntMatrix) Cols() uint {
	return p.cols
}

// Get returns a pointer to the entry at row i, column j.  The pointer refers
// into the backing store, hence writing through it updates the matrix.
func (p *IntMatrix) Get(i, j uint) *big.Int {
	return &p.data[i*p.cols+j]
}

// Set assigns the entry at row i, column j.
func (p *IntMatrix) Set(i, j uint, value *big.Int) {
	p.data[i*p.cols+j].Set(value)
}

// SetInt64 assigns the entry at row i, column j from an int64.
func (p *IntMatrix) SetInt64(i, j uint, value int64) {
	p.data[i*p.cols+j].SetInt64(value)
}

// Clone makes a deep copy of this matrix which shares no state with the
// original.
func (p *IntMatrix) Clone() *IntMatrix {
	data := make([]big.Int, len(p.data))
	//
	for i := range p.data {
		data[i].Set(&p.data[i])
	}
	//
	return &IntMatrix{p.rows, p.cols, data}
}

// AppendRows returns a fresh matrix holding the rows of this matrix followed
// by the rows of the other matrix.  Both matrices must have the same number
// of columns.
func (p *IntMatrix) AppendRows(other *IntMatrix) *IntMatrix {
	if p.cols != other.cols {
		panic(fmt.Sprintf("cannot stack %d columns on %d columns", other.cols, p.cols))
	}
	//
	matrix := NewIntMatrix(p.rows+other.rows, p.cols)
	//
	for i := range p.data {
		matrix.data[i].Set(&p.data[i])
	}
	//
	for i := range other.data {
		matrix.data[len(p.data)+i].Set(&other.data[i])
	}
	//
	return matrix
}

// IsZeroRow checks whether every entry in the ith row is zero.
func (p *IntMatrix) IsZeroRow(i uint) bool {
	for j := uint(0); j < p.cols; j++ {
		if p.Get(i, j).BitLen() != 0 {
			return false
		}
	}
	//
	return true
}

// RowContent returns the content of the ith row, that is the (non-negative)
// greatest common divisor of its entries.  The content of a zero row is zero.
func (p *IntMatrix) RowContent(i uint) *big.Int {
	var gcd big.Int
	//
	for j := uint(0); j < p.cols; j++ {
		entry := p.Get(i, j)
		// NOTE: big.Int.GCD yields zero whenever either argument is zero,
		// hence zero entries must be skipped explicitly.
		if entry.BitLen() == 0 {
			continue
		} else if gcd.BitLen() == 0 {
			gcd.Abs(entry)
		} else {
			gcd.GCD(nil, nil, &gcd, new(big.Int).Abs(entry))
		}
	}
	//
	return &gcd
}

// DivRowExact divides every entry of the ith row by the given divisor, which
// must be non-zero and must divide every entry exactly.
func (p *IntMatrix) DivRowExact(i uint, divisor *big.Int) error {
	var rem big.Int
	//
	if divisor.BitLen() == 0 {
		return fmt.Errorf("division of row %d by zero", i)
	}
	//
	for j := uint(0); j < p.cols; j++ {
		entry := p.Get(i, j)
		entry.QuoRem(entry, divisor, &rem)
		// Exactness check
		if rem.BitLen() != 0 {
			return fmt.Errorf("inexact division of row %d by %s", i, divisor.String())
		}
	}
	//
	return nil
}

// CombineRows replaces the dst row with the integer combination
// a*dst + b*src of itself and the src row.
func (p *IntMatrix) CombineRows(dst uint, a, b *big.Int, src uint) {
	var tmp big.Int
	//
	for j := uint(0); j < p.cols; j++ {
		entry := p.Get(dst, j)
		entry.Mul(entry, a)
		tmp.Mul(b, p.Get(src, j))
		entry.Add(entry, &tmp)
	}
}

// Equals performs a structural equality check of two matrices.
func (p *IntMatrix) Equals(other *IntMatrix) bool {
	if p.rows != other.rows || p.cols != other.cols {
		return false
	}
	//
	for i := range p.data {
		if p.data[i].Cmp(&other.data[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// Bytes returns a canonical byte encoding of this matrix, such that two
// matrices are structurally equal iff their encodings are identical.
func (p *IntMatrix) Bytes() []byte {
	var buf bytes.Buffer
	//
	fmt.Fprintf(&buf, "%dx%d:", p.rows, p.cols)
	//
	for i := range p.data {
		buf.WriteString(p.data[i].Text(10))
		buf.WriteByte(',')
	}
	//
	return buf.Bytes()
}

// String generates a human readable representation of this matrix, with one
// bracketed group per row.
func (p *IntMatrix) String() string {
	var buf bytes.Buffer
	//
	for i := uint(0); i < p.rows; i++ {
		buf.WriteString("[")
		//
		for j := uint(0); j < p.cols; j++ {
			if j != 0 {
				buf.WriteString(", ")
			}
			//
			buf.WriteString(p.Get(i, j).String())
		}
		//
		buf.WriteString("]")
	}
	//
	return buf.String()
}
