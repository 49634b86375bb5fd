// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a convenience wrapper around the factorial
// package that caches the prime sieve between computations.
//
// Operator methods follow the setter convention of math/big:
//
//	func (c *Context) Op(z *big.Int, n uint64) *big.Int
//
// sets z to the result and returns z. A Context catches internal errors:
// if an operation fails, it silently leaves z with an undefined value and
// further operations with the context are no-ops until (*Context).Err is
// called to check for errors.
package context

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/primemath/factorial"
	"github.com/primemath/factorial/primes"
)

// A Context caches a prime sieve so that repeated factorial computations
// share the sieving cost. The zero value is ready to use; the sieve is
// built lazily and regrown geometrically as larger arguments arrive.
//
// A Context is not safe for concurrent use.
type Context struct {
	sieve *primes.Sieve
	err   error
}

// New returns a Context whose sieve covers [0, limit]. Arguments beyond
// limit remain valid; they trigger a regrow.
func New(limit uint64) *Context {
	return &Context{sieve: primes.New(limit)}
}

// Sieve returns the currently cached sieve.
func (c *Context) Sieve() *primes.Sieve {
	return c.sieve
}

// Err returns the first error encountered since the last call to Err,
// and clears it.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// grow returns a sieve covering at least [0, n], rebuilding the cached
// one when it is too small. Doubling on regrowth keeps the total
// sieving cost linear in the largest argument seen.
func (c *Context) grow(n uint64) *primes.Sieve {
	if c.sieve == nil || c.sieve.Limit() < n {
		limit := n
		if c.sieve != nil && limit < 2*c.sieve.Limit() {
			limit = 2 * c.sieve.Limit()
		}
		c.sieve = primes.New(limit)
	}
	return c.sieve
}

// Factorial sets z to n! and returns z.
func (c *Context) Factorial(z *big.Int, n uint64) *big.Int {
	if c.err != nil {
		return z
	}
	if _, err := factorial.SwingFactorial(z, n, c.grow(n)); err != nil {
		c.err = errors.Wrapf(err, "context: factorial(%d)", n)
	}
	return z
}

// OddSwing sets z to the odd swing number of n and returns z.
func (c *Context) OddSwing(z *big.Int, n uint64) *big.Int {
	if c.err != nil {
		return z
	}
	if _, err := factorial.OddSwing(z, n, c.grow(n)); err != nil {
		c.err = errors.Wrapf(err, "context: odd swing(%d)", n)
	}
	return z
}

// DoubleFactorial sets z to n!! and returns z.
func (c *Context) DoubleFactorial(z *big.Int, n uint64) *big.Int {
	if c.err != nil {
		return z
	}
	if int64(n) < 0 { // does not fit the signed argument
		c.err = errors.Wrapf(factorial.ErrInvalidInput, "context: double factorial(%d)", n)
		return z
	}
	d, err := factorial.DoubleFactorial(int64(n))
	if err != nil {
		c.err = errors.Wrapf(err, "context: double factorial(%d)", n)
		return z
	}
	return z.Set(d)
}
