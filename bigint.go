package bigint

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"math/big"
)

// BigInt type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A BigInt is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: the absolute value of the integer, stored as a buffer of
//     decimal digits with the least significant digit first.
//
// Values are immutable.
// Every method returns a new value and never modifies its receiver or
// arguments, so a BigInt can be copied with a plain assignment.
// Zero is always non-negative: there is no negative zero.
type BigInt struct {
	neg bool   // indicates whether the integer is negative
	mag digits // the absolute value of the integer
}

var (
	NegOne = New(-1) // NegOne represents the big integer value of -1.
	Zero   = New(0)  // Zero represents the big integer value of 0.
	One    = New(1)  // One represents the big integer value of 1.
	Ten    = New(10) // Ten represents the big integer value of 10.
)

var (
	// ErrDivisionByZero is returned by [BigInt.Quo] and [BigInt.QuoRem]
	// when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
	errInvalidBigInt  = errors.New("invalid big integer")
)

func newBigInt(neg bool, mag digits) BigInt {
	if mag.isZero() {
		neg = false
	}
	return BigInt{neg: neg, mag: mag}
}

// New returns a big integer equal to n.
func New(n int64) BigInt {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u
	}
	return newBigInt(neg, digitsFromUint64(u))
}

// NewFromUint64 returns a big integer equal to u.
func NewFromUint64(u uint64) BigInt {
	return newBigInt(false, digitsFromUint64(u))
}

// NewFromBig returns a big integer equal to b.
// A nil b is treated as 0.
func NewFromBig(b *big.Int) BigInt {
	if b == nil {
		return Zero
	}
	x, err := Parse(b.String())
	if err != nil {
		panic(fmt.Sprintf("NewFromBig(%v) failed: %v", b, err)) // unexpected by design
	}
	return x
}

// Parse converts a string to a big integer.
// The input string must be in the following format:
//
//	sign    ::= '+' | '-'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer ::= [sign] digits
//
// Parse removes leading zeros and returns 0 for "-0".
//
// Parse returns an error if the string does not represent a valid integer.
func Parse(s string) (BigInt, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Digits
	if pos == width {
		return BigInt{}, fmt.Errorf("no digits: %w", errInvalidBigInt)
	}
	for i := pos; i < width; i++ {
		if s[i] < '0' || s[i] > '9' {
			return BigInt{}, fmt.Errorf("invalid character %q: %w", s[i], errInvalidBigInt)
		}
	}
	mag := makeDigits(width - pos)
	for i := range mag {
		mag[i] = s[width-1-i] - '0'
	}

	return newBigInt(neg, mag.trim()), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding big integers.
func MustParse(s string) BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// magnitude returns the digits of x, treating the zero value as 0.
func (x BigInt) magnitude() digits {
	if len(x.mag) == 0 {
		return zeroDigits
	}
	return x.mag
}

// Clone returns a copy of x that does not share its digit buffer with x.
func (x BigInt) Clone() BigInt {
	return newBigInt(x.neg, x.magnitude().clone())
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a big integer.
// The returned string is formatted according to the following grammar:
//
//	sign    ::= '-'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer ::= [sign] digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x BigInt) String() string {
	mag := x.magnitude()
	buf := make([]byte, 0, len(mag)+1)
	if x.IsNeg() {
		buf = append(buf, '-')
	}
	for i := len(mag) - 1; i >= 0; i-- {
		buf = append(buf, mag[i]+'0')
	}
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *BigInt) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [BigInt.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// parseBCD converts a packed BCD representation to a big integer.
// Also see method [BigInt.bcd].
func parseBCD(b []byte) (BigInt, error) {
	if len(b) == 0 {
		return BigInt{}, fmt.Errorf("empty slice: %w", errInvalidBigInt)
	}

	// Sign
	var neg bool
	switch b[len(b)-1] & 0x0f {
	case 0x0c:
		neg = false
	case 0x0d:
		neg = true
	default:
		return BigInt{}, fmt.Errorf("invalid sign nibble %x: %w", b[len(b)-1]&0x0f, errInvalidBigInt)
	}

	// Digits, where nibble k counts from the end and nibble 0 is the sign
	mag := makeDigits(2*len(b) - 1)
	for i := range mag {
		k := i + 1
		v := b[len(b)-1-k/2]
		if k%2 == 1 {
			v >>= 4
		} else {
			v &= 0x0f
		}
		if v > 9 {
			return BigInt{}, fmt.Errorf("invalid digit nibble %x: %w", v, errInvalidBigInt)
		}
		mag[i] = v
	}

	return newBigInt(neg, mag.trim()), nil
}

// bcd returns a packed BCD representation of x.
// Digits are written from the most significant one, two per byte,
// and are followed by a sign nibble: 0xc for non-negative integers and 0xd
// for negative ones.
// If the number of nibbles is odd, the first byte is padded with a zero nibble.
// For example, 12 is encoded as [0x01, 0x2c] and -123 as [0x12, 0x3d].
func (x BigInt) bcd() []byte {
	mag := x.magnitude()
	buf := make([]byte, (len(mag)+2)/2)

	// Sign
	pos := len(buf) - 1
	if x.IsNeg() {
		buf[pos] = 0x0d
	} else {
		buf[pos] = 0x0c
	}

	// Digits
	hi := true
	for _, d := range mag {
		if hi {
			buf[pos] |= d << 4
			pos--
		} else {
			buf[pos] = d
		}
		hi = !hi
	}

	return buf
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// UnmarshalBinary supports the [packed BCD] format.
// Also see method [BigInt.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
// [packed BCD]: https://en.wikipedia.org/wiki/Binary-coded_decimal#Packed_BCD
func (x *BigInt) UnmarshalBinary(data []byte) error {
	var err error
	*x, err = parseBCD(data)
	return err
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// MarshalBinary uses the [packed BCD] format: two digits per byte, most
// significant digit first, followed by a sign nibble.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
// [packed BCD]: https://en.wikipedia.org/wiki/Binary-coded_decimal#Packed_BCD
func (x BigInt) MarshalBinary() ([]byte, error) {
	return x.bcd(), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [Parse].
// A float64 is accepted only if it holds an integral finite value.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *BigInt) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = Parse(value)
	case []byte:
		*x, err = Parse(string(value))
	case int64:
		*x = New(value)
	case uint64:
		*x = NewFromUint64(value)
	case float64:
		*x, err = newFromFloat64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, BigInt{}, errInvalidBigInt)
	}
	return err
}

// newFromFloat64 converts an integral float to a big integer.
func newFromFloat64(f float64) (BigInt, error) {
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return BigInt{}, fmt.Errorf("non-integral float64 %v: %w", f, errInvalidBigInt)
	}
	b, _ := new(big.Float).SetFloat64(f).Int(nil)
	return NewFromBig(b), nil
}

// Value implements the [driver.Valuer] interface.
// The integer is stored as its decimal string, so columns holding big
// integers should have a text or numeric type.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x BigInt) Value() (driver.Value, error) {
	return x.String(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123
//	%q:        "-123"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x BigInt) Format(state fmt.State, verb rune) {
	mag := x.magnitude()

	// Arithmetic sign
	rsign := 0
	if x.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(mag) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, width)
	pos := width - 1
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}
	for _, d := range mag {
		buf[pos] = d + '0'
		pos--
	}
	for i := 0; i < lzeroes; i++ {
		buf[pos] = '0'
		pos--
	}
	if rsign > 0 {
		if x.IsNeg() {
			buf[pos] = '-'
		} else if state.Flag(' ') {
			buf[pos] = ' '
		} else {
			buf[pos] = '+'
		}
		pos--
	}
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.BigInt="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns number of decimal digits in the magnitude of x.
// Prec returns 0 for 0.
func (x BigInt) Prec() int {
	return x.magnitude().prec()
}

// Int64 returns x as int64 and reports whether the value fits.
// If x is out of range, Int64 returns (0, false).
func (x BigInt) Int64() (int64, bool) {
	u, ok := x.magnitude().uint64()
	if !ok {
		return 0, false
	}
	if x.IsNeg() {
		if u > math.MaxInt64+1 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Big returns x as a newly allocated [big.Int].
//
// [big.Int]: https://pkg.go.dev/math/big#Int
func (x BigInt) Big() *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic(fmt.Sprintf("%q.Big() failed", x)) // unexpected by design
	}
	return b
}

// Neg returns x with opposite sign.
// Neg returns 0 for 0.
func (x BigInt) Neg() BigInt {
	return newBigInt(!x.neg, x.magnitude())
}

// Abs returns absolute value of x.
func (x BigInt) Abs() BigInt {
	return newBigInt(false, x.magnitude())
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x BigInt) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if x > 0.
func (x BigInt) IsPos() bool {
	return !x.neg && !x.IsZero()
}

// IsNeg returns true if x < 0.
func (x BigInt) IsNeg() bool {
	return x.neg
}

// IsZero returns true if x == 0.
func (x BigInt) IsZero() bool {
	return x.magnitude().isZero()
}

// Add returns the sum of x and y.
func (x BigInt) Add(y BigInt) BigInt {
	// Special case: zero operand
	switch {
	case y.IsZero():
		return x
	case x.IsZero():
		return y
	}

	// Special case: different signs
	if x.neg != y.neg {
		return x.Sub(y.Neg())
	}

	// General case
	return newBigInt(x.neg, x.magnitude().add(y.magnitude()))
}

// Sub returns the difference of x and y.
func (x BigInt) Sub(y BigInt) BigInt {
	// Special case: zero operand
	switch {
	case y.IsZero():
		return x
	case x.IsZero():
		return y.Neg()
	}

	// Special case: different signs
	if x.neg != y.neg {
		return x.Add(y.Neg())
	}

	// General case
	mag, flip := x.magnitude().sub(y.magnitude())
	return newBigInt(x.neg != flip, mag)
}

// Mul returns the product of x and y.
func (x BigInt) Mul(y BigInt) BigInt {
	// Special case: zero operand
	if x.IsZero() || y.IsZero() {
		return Zero
	}

	// General case
	return newBigInt(x.neg != y.neg, x.magnitude().mul(y.magnitude()))
}

// Quo returns the quotient of x and y truncated towards zero,
// so that New(-7).Quo(New(2)) is -3.
//
// Quo returns [ErrDivisionByZero] if y is 0.
func (x BigInt) Quo(y BigInt) (BigInt, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return BigInt{}, err
	}
	return q, nil
}

// QuoRem returns the quotient q and the remainder r of x and y such that
// x = q * y + r, where q is truncated towards zero and r has the sign of x.
//
// QuoRem returns [ErrDivisionByZero] if y is 0.
func (x BigInt) QuoRem(y BigInt) (q, r BigInt, err error) {
	// Special case: zero divisor
	if y.IsZero() {
		return BigInt{}, BigInt{}, fmt.Errorf("%q.QuoRem(%q) failed: %w", x, y, ErrDivisionByZero)
	}

	// Special case: zero dividend
	if x.IsZero() {
		return Zero, Zero, nil
	}

	// General case
	qmag, rmag := x.magnitude().quoRem(y.magnitude())
	q = newBigInt(x.neg != y.neg, qmag)
	r = newBigInt(x.neg, rmag)
	return q, r, nil
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x BigInt) Cmp(y BigInt) int {
	// Special case: different signs
	switch {
	case y.Sign() < x.Sign():
		return 1
	case x.Sign() < y.Sign():
		return -1
	}

	// General case
	r := x.magnitude().cmp(y.magnitude())
	if x.neg {
		return -r
	}
	return r
}

// CmpAbs compares absolute values of x and y and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x BigInt) CmpAbs(y BigInt) int {
	return x.magnitude().cmp(y.magnitude())
}

// Equal returns true if x == y.
// BigInt holds a slice, so values cannot be compared with the == or !=
// operators; use !x.Equal(y) to test whether x != y.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}

// Less returns true if x < y.
func (x BigInt) Less(y BigInt) bool {
	return x.Cmp(y) < 0
}

// LessOrEqual returns true if x <= y.
func (x BigInt) LessOrEqual(y BigInt) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func (x BigInt) Greater(y BigInt) bool {
	return x.Cmp(y) > 0
}

// GreaterOrEqual returns true if x >= y.
func (x BigInt) GreaterOrEqual(y BigInt) bool {
	return x.Cmp(y) >= 0
}

// Max returns maximum of x and y.
// Also see method [BigInt.Cmp].
func (x BigInt) Max(y BigInt) BigInt {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
// Also see method [BigInt.Cmp].
func (x BigInt) Min(y BigInt) BigInt {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// NullBigInt represents a big integer that can be null.
// Its zero value is null.
// NullBigInt is not thread-safe.
type NullBigInt struct {
	BigInt BigInt
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [BigInt.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullBigInt) Scan(value any) error {
	if value == nil {
		n.BigInt = BigInt{}
		n.Valid = false
		return nil
	}
	err := n.BigInt.Scan(value)
	if err != nil {
		n.BigInt = BigInt{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [BigInt.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullBigInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.BigInt.Value()
}
