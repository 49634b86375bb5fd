// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package factorial computes exact factorials of arbitrary size using the
prime-swing algorithm.

The top level functions allocate their result:

	f, err := factorial.Factorial(1000) // f = 1000!, exact

For repeated computations, SwingFactorial and OddSwing follow the setter
convention of math/big: the receiver-like first argument z is set to the
result and returned, so storage can be reused:

	s := primes.New(100000)
	z := new(big.Int)
	for _, n := range ns {
		factorial.SwingFactorial(z, n, s)
		// use z
	}

The factorial/context package wraps this pattern and manages the sieve
automatically.

Algorithm

Factorial dispatches on n: a lookup table up to 20!, a plain ascending
product below a fixed cutoff, and the prime-swing recursion above it.
The recursion splits n! into its odd part and a power of two,

	n! = oddFactorial(n) · 2^(n−s₂(n))

where s₂(n) is the number of one bits in n, and computes the odd part by
halving:

	oddFactorial(n) = oddFactorial(⌊n/2⌋)² · oddSwing(n)

oddSwing(n), the odd part of n!/⌊n/2⌋!², is a product over the primes
p ≤ n: each p contributes one factor for every odd value among ⌊n/p⌋,
⌊n/p²⌋, … The factors are multiplied with binary splitting so that
operand sizes stay balanced. Recursion depth is ⌈log₂ n⌉ and the total
multiplication cost is well below that of the naive product for large n.
See P. Luschny, "Swing, divide and conquer the factorial" for the
underlying mathematics.

All arithmetic is exact; no floating point is involved. Negative
arguments are rejected with ErrInvalidInput.

The product of the swing factors can optionally be carried out by GMP:
build with -tags=gmp (requires libgmp and cgo). The default build is
pure Go on top of math/big.
*/
package factorial
