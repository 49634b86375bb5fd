// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factorial

import (
	"math/big"
	"math/bits"
)

// DoubleFactorial returns n!!, the product of the integers in [1, n]
// with the same parity as n, or ErrInvalidInput if n is negative.
func DoubleFactorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	z := new(big.Int)
	if n < 2 {
		return z.SetUint64(1), nil
	}
	if n&1 == 0 {
		// (2k)!! = k!·2^k
		k := uint64(n) / 2
		factorial(z, k)
		return z.Lsh(z, uint(k)), nil
	}
	// Odd n: multiply the odd range directly, by binary splitting.
	odds := make([]uint64, 0, int(n/2)+1)
	for m := uint64(3); m <= uint64(n); m += 2 {
		odds = append(odds, m)
	}
	return primeProduct(z, odds), nil
}

// DoubleUint64 returns n!! if it fits in a uint64. The second return
// value reports whether it does; it is false for n > 33.
func DoubleUint64(n uint64) (uint64, bool) {
	acc := uint64(1)
	for i := 2 - n&1; i <= n; i += 2 {
		hi, lo := bits.Mul64(acc, i)
		if hi != 0 {
			return 0, false
		}
		acc = lo
	}
	return acc, true
}
