// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primes implements a bit-packed sieve of Eratosthenes.
//
// A Sieve is built once for a fixed range [0, limit] and is immutable
// afterwards, so it may be shared freely between goroutines. There is no
// global cache; callers that want to amortize sieving across many
// computations keep their own Sieve (see the factorial/context package).
package primes

// A Sieve records the primality of every integer in [0, limit]. Odd
// integers are packed one per bit; 2 is handled separately.
type Sieve struct {
	limit uint64
	// Bit i of composite[i/64] is set when 2i+1 is composite.
	composite []uint64
}

// New builds a sieve covering [0, limit].
func New(limit uint64) *Sieve {
	s := &Sieve{
		limit:     limit,
		composite: make([]uint64, limit/2/64+1),
	}
	s.mark(0) // 1 is not prime
	for p := uint64(3); p <= limit/p; p += 2 {
		if s.isComposite(p) {
			continue
		}
		// Multiples below p² have a smaller prime factor and are
		// already marked.
		for m := p * p; m <= limit; m += 2 * p {
			s.mark(m / 2)
			if m > limit-2*p {
				break
			}
		}
	}
	return s
}

// isComposite reports whether the odd integer n is marked composite.
func (s *Sieve) isComposite(n uint64) bool {
	i := n / 2
	return s.composite[i/64]&(1<<(i%64)) != 0
}

func (s *Sieve) mark(i uint64) {
	s.composite[i/64] |= 1 << (i % 64)
}

// Limit returns the upper bound of the sieved range.
func (s *Sieve) Limit() uint64 {
	return s.limit
}

// IsPrime reports whether n is prime. It panics if n exceeds the sieved
// range.
func (s *Sieve) IsPrime(n uint64) bool {
	if n > s.limit {
		panic("primes: argument exceeds sieve limit")
	}
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	return !s.isComposite(n)
}

// EachPrime calls f with every prime in [lo, hi] in ascending order. It
// stops early if f returns false, and panics if hi exceeds the sieved
// range.
func (s *Sieve) EachPrime(lo, hi uint64, f func(p uint64) bool) {
	if hi > s.limit {
		panic("primes: range exceeds sieve limit")
	}
	if hi < 2 || lo > hi {
		return
	}
	if lo <= 2 && !f(2) {
		return
	}
	if lo < 3 {
		lo = 3
	}
	if lo%2 == 0 {
		lo++
	}
	for p := lo; p <= hi; p += 2 {
		if !s.isComposite(p) && !f(p) {
			return
		}
		if p > hi-2 {
			break
		}
	}
}

// Count returns the number of primes in [lo, hi].
func (s *Sieve) Count(lo, hi uint64) int {
	n := 0
	s.EachPrime(lo, hi, func(uint64) bool {
		n++
		return true
	})
	return n
}
