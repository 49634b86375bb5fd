// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gmp

// This file provides a GMP-backed product, selected with: go build
// -tags=gmp. It requires cgo and libgmp (on Debian/Ubuntu: apt-get
// install libgmp-dev; on macOS: brew install gmp). The default build
// uses math/big and has no system requirements.
//
// gmp.Int is used directly rather than behind an interface; the
// indirection would cost more than the cgo calls save.

package factorial

import (
	"math/big"

	"github.com/ncw/gmp"
)

// primeProduct sets z to the product of factors by binary splitting and
// returns z. The multiplications run in GMP and only the final value
// crosses back into math/big.
func primeProduct(z *big.Int, factors []uint64) *big.Int {
	if len(factors) == 0 {
		return z.SetUint64(1)
	}
	var g gmp.Int
	gmpProduct(&g, factors)
	return z.SetBytes(g.Bytes())
}

func gmpProduct(z *gmp.Int, factors []uint64) *gmp.Int {
	switch len(factors) {
	case 0:
		return z.SetInt64(1)
	case 1:
		return z.SetUint64(factors[0])
	}
	m := len(factors) / 2
	var r gmp.Int
	gmpProduct(&r, factors[m:])
	gmpProduct(z, factors[:m])
	return z.Mul(z, &r)
}
