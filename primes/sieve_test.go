// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primes

import (
	"math/big"
	"testing"
)

var primesBelow100 = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97,
}

func collect(s *Sieve, lo, hi uint64) []uint64 {
	var ps []uint64
	s.EachPrime(lo, hi, func(p uint64) bool {
		ps = append(ps, p)
		return true
	})
	return ps
}

func TestEachPrimeBelow100(t *testing.T) {
	got := collect(New(100), 0, 100)
	if len(got) != len(primesBelow100) {
		t.Fatalf("got %d primes below 100; want %d", len(got), len(primesBelow100))
	}
	for i, p := range got {
		if p != primesBelow100[i] {
			t.Errorf("prime #%d = %d; want %d", i, p, primesBelow100[i])
		}
	}
}

func TestSmallLimits(t *testing.T) {
	if got := collect(New(0), 0, 0); len(got) != 0 {
		t.Errorf("sieve over [0,0] yields %v", got)
	}
	if got := collect(New(1), 0, 1); len(got) != 0 {
		t.Errorf("sieve over [0,1] yields %v", got)
	}
	if got := collect(New(2), 0, 2); len(got) != 1 || got[0] != 2 {
		t.Errorf("sieve over [0,2] yields %v; want [2]", got)
	}
	if got := collect(New(3), 2, 3); len(got) != 2 || got[1] != 3 {
		t.Errorf("primes in [2,3] = %v; want [2 3]", got)
	}
}

func TestCount(t *testing.T) {
	s := New(10000)
	for _, test := range []struct {
		hi   uint64
		want int
	}{
		{10, 4},
		{100, 25},
		{1000, 168},
		{10000, 1229},
	} {
		if got := s.Count(0, test.hi); got != test.want {
			t.Errorf("π(%d) = %d; want %d", test.hi, got, test.want)
		}
	}
}

// Cross-check against ProbablyPrime, which is deterministic and exact
// for inputs below 2⁶⁴.
func TestIsPrime(t *testing.T) {
	s := New(5000)
	for n := uint64(0); n <= 5000; n++ {
		want := big.NewInt(int64(n)).ProbablyPrime(0)
		if got := s.IsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v; want %v", n, got, want)
		}
	}
}

func TestEachPrimeRange(t *testing.T) {
	s := New(200)
	got := collect(s, 90, 110)
	want := []uint64{97, 101, 103, 107, 109}
	if len(got) != len(want) {
		t.Fatalf("primes in [90,110] = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("primes in [90,110] = %v; want %v", got, want)
		}
	}
	if got := collect(s, 110, 90); got != nil {
		t.Errorf("primes in empty range = %v", got)
	}
	if got := collect(s, 200, 200); got != nil {
		t.Errorf("primes in [200,200] = %v; want none", got)
	}
}

func TestEachPrimeEarlyStop(t *testing.T) {
	s := New(100)
	var seen []uint64
	s.EachPrime(0, 100, func(p uint64) bool {
		seen = append(seen, p)
		return len(seen) < 3
	})
	if len(seen) != 3 || seen[2] != 5 {
		t.Errorf("early stop visited %v; want [2 3 5]", seen)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	s := New(100)
	mustPanic(t, "IsPrime", func() { s.IsPrime(101) })
	mustPanic(t, "EachPrime", func() { s.EachPrime(0, 101, func(uint64) bool { return true }) })
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s beyond the sieve limit did not panic", name)
		}
	}()
	f()
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(1000000)
	}
}
