// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !gmp

package factorial

import "math/big"

// primeProduct sets z to the product of factors by binary splitting and
// returns z.
func primeProduct(z *big.Int, factors []uint64) *big.Int {
	switch len(factors) {
	case 0:
		return z.SetUint64(1)
	case 1:
		return z.SetUint64(factors[0])
	}
	m := len(factors) / 2
	var r big.Int
	primeProduct(&r, factors[m:])
	primeProduct(z, factors[:m])
	return z.Mul(z, &r)
}
