// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factorial

import (
	"math/big"
	"testing"
)

func TestSmallFactorialTable(t *testing.T) {
	for n, want := range smallFactorial {
		got := naiveFactorial(uint64(n))
		if got.Cmp(new(big.Int).SetUint64(want)) != 0 {
			t.Errorf("smallFactorial[%d] = %d; want %s", n, want, got)
		}
	}
}

func TestSmallOddSwingTable(t *testing.T) {
	for n, want := range smallOddSwing {
		got := refOddSwing(uint64(n))
		if got.Cmp(new(big.Int).SetUint64(want)) != 0 {
			t.Errorf("smallOddSwing[%d] = %d; want %s", n, want, got)
		}
	}
}
