// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factorial

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/primemath/factorial/primes"
)

// ErrInvalidInput is returned when an argument lies outside the domain
// of the requested function, i.e. when it is negative.
var ErrInvalidInput = errors.New("factorial: argument must be non-negative")

// naiveCutoff is the smallest n for which sieving and swinging beats the
// plain ascending product.
const naiveCutoff = 1200

// Factorial returns n! as an arbitrary-precision integer, or
// ErrInvalidInput if n is negative.
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	return factorial(new(big.Int), uint64(n)), nil
}

// factorial sets z to n! and returns z.
func factorial(z *big.Int, n uint64) *big.Int {
	switch {
	case n < uint64(len(smallFactorial)):
		return z.SetUint64(smallFactorial[n])
	case n < naiveCutoff:
		z.MulRange(int64(len(smallFactorial)), int64(n))
		var t big.Int
		return z.Mul(z, t.SetUint64(smallFactorial[len(smallFactorial)-1]))
	default:
		z, _ = SwingFactorial(z, n, primes.New(n)) // the sieve covers n
		return z
	}
}

// SwingFactorial sets z to n! computed by the prime-swing recursion with
// the caller's sieve and returns z. The sieve must cover at least [0, n];
// otherwise z is left untouched and an error is returned.
//
// Sharing a sieve amortizes its construction across computations:
//
//	s := primes.New(10000)
//	z := new(big.Int)
//	factorial.SwingFactorial(z, 10000, s)
//	factorial.SwingFactorial(z, 9000, s)
func SwingFactorial(z *big.Int, n uint64, s *primes.Sieve) (*big.Int, error) {
	if s.Limit() < n {
		return nil, errors.Errorf("factorial: sieve limit %d is smaller than argument %d", s.Limit(), n)
	}
	oddFactorial(z, n, s)
	return z.Lsh(z, uint(n)-uint(bits.OnesCount64(n))), nil
}

// oddFactorial sets z to the odd part of n!, i.e. n! with every factor
// of two removed, and returns z.
func oddFactorial(z *big.Int, n uint64, s *primes.Sieve) *big.Int {
	if n < 2 {
		return z.SetUint64(1)
	}
	var swing big.Int
	oddSwing(&swing, n, s)
	oddFactorial(z, n/2, s)
	z.Mul(z, z)
	return z.Mul(z, &swing)
}

// OddSwing sets z to the odd swing number of n — the odd part of the
// quotient n!/⌊n/2⌋!² — and returns z. The sieve must cover at least
// [0, n]; otherwise z is left untouched and an error is returned.
func OddSwing(z *big.Int, n uint64, s *primes.Sieve) (*big.Int, error) {
	if s.Limit() < n {
		return nil, errors.Errorf("factorial: sieve limit %d is smaller than argument %d", s.Limit(), n)
	}
	return oddSwing(z, n, s), nil
}

// oddSwing computes the odd swing number of n as a product over the odd
// primes p ≤ n, where p contributes one factor for every odd value
// among ⌊n/p⌋, ⌊n/p²⌋, … The primes are partitioned into three ranges
// where that rule simplifies:
//
//	p ≤ √n          all quotients can be nonzero; run the full loop
//	√n < p ≤ n/3    only ⌊n/p⌋ is nonzero; take p when it is odd
//	n/2 < p ≤ n     ⌊n/p⌋ = 1; take p unconditionally
//
// Primes in (n/3, n/2] have ⌊n/p⌋ = 2 and contribute nothing.
func oddSwing(z *big.Int, n uint64, s *primes.Sieve) *big.Int {
	if n < uint64(len(smallOddSwing)) {
		return z.SetUint64(smallOddSwing[n])
	}
	root := isqrt(n)
	factors := make([]uint64, 0, s.Count(n/2+1, n)+16)
	s.EachPrime(3, root, func(p uint64) bool {
		// The factor p^e satisfies e ≤ log_p(n), so it fits a uint64.
		f, q := uint64(1), n
		for q != 0 {
			q /= p
			if q&1 == 1 {
				f *= p
			}
		}
		if f > 1 {
			factors = append(factors, f)
		}
		return true
	})
	s.EachPrime(root+1, n/3, func(p uint64) bool {
		if (n/p)&1 == 1 {
			factors = append(factors, p)
		}
		return true
	})
	s.EachPrime(n/2+1, n, func(p uint64) bool {
		factors = append(factors, p)
		return true
	})
	return primeProduct(z, factors)
}

// Uint64 returns n! if it fits in a uint64. The second return value
// reports whether it does; it is false for n > 20.
func Uint64(n uint64) (uint64, bool) {
	if n < uint64(len(smallFactorial)) {
		return smallFactorial[n], true
	}
	return 0, false
}

// isqrt returns ⌊√n⌋.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	// math.Sqrt is exact up to 2⁵², adjust the last ulps by hand.
	r := uint64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
