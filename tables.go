// Copyright 2025 The primemath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factorial

// smallFactorial[n] = n! for every n whose factorial fits in a uint64.
var smallFactorial = [21]uint64{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
	6227020800,
	87178291200,
	1307674368000,
	20922789888000,
	355687428096000,
	6402373705728000,
	121645100408832000,
	2432902008176640000,
}

// smallOddSwing[n] is the odd swing number of n (OEIS A163590): the odd
// part of n!/⌊n/2⌋!². Entries beyond 64 no longer fit in a uint64.
var smallOddSwing = [65]uint64{
	1,
	1,
	1,
	3,
	3,
	15,
	5,
	35,
	35,
	315,
	63,
	693,
	231,
	3003,
	429,
	6435,
	6435,
	109395,
	12155,
	230945,
	46189,
	969969,
	88179,
	2028117,
	676039,
	16900975,
	1300075,
	35102025,
	5014575,
	145422675,
	9694845,
	300540195,
	300540195,
	9917826435,
	583401555,
	20419054425,
	2268783825,
	83945001525,
	4418157975,
	172308161025,
	34461632205,
	1412926920405,
	67282234305,
	2893136075115,
	263012370465,
	11835556670925,
	514589420475,
	24185702762325,
	8061900920775,
	395033145117975,
	15801325804719,
	805867616040669,
	61989816618513,
	3285460280781189,
	121683714103007,
	6692604275665385,
	956086325095055,
	54496920530418135,
	1879204156221315,
	110873045217057585,
	7391536347803839,
	450883717216034179,
	14544636039226909,
	916312070471295267,
	916312070471295267,
}
