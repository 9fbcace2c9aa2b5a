package bigint

import (
	"math"
	"sync"
)

const (
	initCap  = 32 // initial capacity of a digit buffer, in cells
	growStep = 32 // number of cells added by each expansion
)

// digits is a magnitude stored as decimal digits, least significant first:
//
//	x = x[n-1] * 10^(n-1) + ... + x[1] * 10 + x[0]
//
// A buffer is normalized if every digit is in [0, 9] and there are no
// leading zeros, except for zero itself, which is the single digit 0.
// Normalized buffers are never modified after construction.
type digits []byte

// zeroDigits is the normalized representation of 0.
var zeroDigits = digits{0}

// makeDigits returns a zeroed buffer of length n whose capacity is
// a multiple of the growth step.
func makeDigits(n int) digits {
	c := initCap
	for c < n {
		c += growStep
	}
	return make(digits, n, c)
}

// digitsFromUint64 converts u to digits by repeated division by 10.
func digitsFromUint64(u uint64) digits {
	if u == 0 {
		return makeDigits(1)
	}
	z := makeDigits(0)
	for ; u != 0; u /= 10 {
		z = z.push(byte(u % 10))
	}
	return z
}

// expand returns a copy of z with n more cells of capacity.
func (z digits) expand(n int) digits {
	t := make(digits, len(z), cap(z)+n)
	copy(t, z)
	return t
}

// push appends d as the new most significant digit of z.
func (z digits) push(d byte) digits {
	if len(z) == cap(z) {
		z = z.expand(growStep)
	}
	return append(z, d)
}

// shl multiplies z by 10 by inserting a zero at the least significant
// position. It works in place, so z must be a private working buffer.
func (z digits) shl() digits {
	if z.isZero() {
		return z
	}
	if len(z) == cap(z) {
		z = z.expand(growStep)
	}
	z = z[:len(z)+1]
	copy(z[1:], z)
	z[0] = 0
	return z
}

// lsh returns a new buffer equal to x * 10^n.
func (x digits) lsh(n int) digits {
	z := x.clone()
	for i := 0; i < n; i++ {
		z = z.shl()
	}
	return z
}

func (x digits) clone() digits {
	z := makeDigits(len(x))
	copy(z, x)
	return z
}

// trim drops most significant zero digits, keeping at least one digit.
func (z digits) trim() digits {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return makeDigits(1)
	}
	return z[:n]
}

func (x digits) isZero() bool {
	return len(x) == 0 || len(x) == 1 && x[0] == 0
}

// prec returns the number of digits in x.
// prec assumes that 0 has no digits.
func (x digits) prec() int {
	if x.isZero() {
		return 0
	}
	return len(x)
}

// cmp compares normalized magnitudes and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x digits) cmp(y digits) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(y) < len(x):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case y[i] < x[i]:
			return 1
		}
	}
	return 0
}

// uint64 returns x as uint64 and reports whether it fits.
func (x digits) uint64() (uint64, bool) {
	var u uint64
	for i := len(x) - 1; i >= 0; i-- {
		d := uint64(x[i])
		if u > (math.MaxUint64-d)/10 {
			return 0, false
		}
		u = u*10 + d
	}
	return u, true
}

// add calculates x + y.
func (x digits) add(y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}
	c := getCells(len(x))
	defer putCells(c)
	s := *c
	s.load(x)
	s.add(y)
	return s.carry()
}

// sub calculates |x - y| and reports whether x < y.
func (x digits) sub(y digits) (digits, bool) {
	c := getCells(max(len(x), len(y)))
	defer putCells(c)
	s := *c
	s.load(x)
	s.sub(y)
	return s.borrow()
}

// mul calculates x * y with the schoolbook method: every digit of y scales
// a copy of x shifted by the position of that digit, and the partial
// products are accumulated with add.
func (x digits) mul(y digits) digits {
	z := makeDigits(1)
	if x.isZero() || y.isZero() {
		return z
	}
	shifted := x.clone()
	for _, d := range y {
		if d != 0 {
			c := getCells(len(shifted))
			s := *c
			s.scale(shifted, d)
			z = z.add(s.carry())
			putCells(c)
		}
		shifted = shifted.shl()
	}
	return z
}

// quoRem calculates q = ⌊x / y⌋ and r = x - y * q by long division.
// Each step finds the largest y * 10^k not exceeding the remainder and
// subtracts it as many times as it fits, which gives the quotient digit
// at position k.
// quoRem panics if y is 0.
func (x digits) quoRem(y digits) (q, r digits) {
	if y.isZero() {
		panic("quoRem: division by zero")
	}
	q, r = makeDigits(1), x.clone()
	for r.cmp(y) >= 0 {
		// Largest shift
		shifted, k := y.clone(), 0
		for {
			next := shifted.clone().shl()
			if next.cmp(r) > 0 {
				break
			}
			shifted, k = next, k+1
		}
		// Quotient digit
		var i uint64
		for r.cmp(shifted) >= 0 {
			r, _ = r.sub(shifted)
			i++
		}
		q = q.add(digitsFromUint64(i).lsh(k))
	}
	return q, r
}

// cells is a scratch buffer for an operation in progress.
// Unlike digits, a cell may hold any value, including a negative one,
// until carry or borrow resolves the buffer back into digits.
// Cells never outlive the operation that created them.
type cells []int

// load copies the digits of x into c, starting at the least significant cell.
func (c cells) load(x digits) {
	for i, d := range x {
		c[i] = int(d)
	}
}

// add adds the digits of y to c cell by cell, without carry.
func (c cells) add(y digits) {
	for i, d := range y {
		c[i] += int(d)
	}
}

// sub subtracts the digits of y from c cell by cell, without borrow.
func (c cells) sub(y digits) {
	for i, d := range y {
		c[i] -= int(d)
	}
}

// scale sets c to the digits of x, each multiplied by m, without carry.
func (c cells) scale(x digits, m byte) {
	for i, d := range x {
		c[i] = int(d) * int(m)
	}
}

// carry moves the excess of every cell greater than 9 into the next cell
// and returns the normalized digits, growing the buffer when a carry
// escapes the most significant cell.
// Cells must not be negative.
func (c cells) carry() digits {
	z := makeDigits(len(c))
	k := 0
	for i, v := range c {
		v += k
		z[i], k = byte(v%10), v/10
	}
	for k != 0 {
		z = z.push(byte(k % 10))
		k /= 10
	}
	return z.trim()
}

// borrow resolves negative cells by borrowing 10 from the next cell and
// returns the normalized magnitude together with a flag reporting whether
// the value held by c was negative.
// Cells must be in the range [-9, 9], as left by a digit-wise subtraction.
func (c cells) borrow() (digits, bool) {
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}
	c = c[:n]

	// The most significant non-zero cell outweighs all cells below it.
	neg := c[n-1] < 0
	if neg {
		for i := range c {
			c[i] = -c[i]
		}
	}

	for i := 0; i < n-1; i++ {
		if c[i] < 0 {
			c[i] += 10
			c[i+1]--
		}
	}

	z := makeDigits(n)
	for i, v := range c {
		z[i] = byte(v)
	}
	return z.trim(), neg
}

// getCells returns a zeroed scratch buffer of length n.
func getCells(n int) *cells {
	c := cellPool.Get().(*cells)
	if cap(*c) < n {
		*c = make(cells, n, n+growStep)
	}
	*c = (*c)[:n]
	clear(*c)
	return c
}

func putCells(c *cells) {
	cellPool.Put(c)
}

// cellPool is a cache of scratch buffers.
var cellPool = sync.Pool{
	New: func() any {
		c := make(cells, 0, initCap)
		return &c
	},
}
