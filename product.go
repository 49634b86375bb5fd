// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factorial

import "math/big"

// Product sets z to the product of the elements of xs and returns z.
// The empty product is 1. z may alias an element of xs.
//
// The multiplication is performed by binary splitting: the sequence is
// halved recursively and the two sub-products multiplied, which keeps
// operand sizes balanced and is asymptotically cheaper than a running
// product when the operands grow large.
func Product(z *big.Int, xs []*big.Int) *big.Int {
	switch len(xs) {
	case 0:
		return z.SetUint64(1)
	case 1:
		return z.Set(xs[0])
	}
	// The right half is reduced into fresh storage before z is written,
	// so aliasing between z and xs is harmless.
	m := len(xs) / 2
	var r big.Int
	Product(&r, xs[m:])
	Product(z, xs[:m])
	return z.Mul(z, &r)
}
