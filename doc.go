/*
Package bigint implements immutable arbitrary-precision signed integers
stored as decimal digits.

# Representation

[BigInt] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: the absolute value of the integer, stored as a growable buffer
    of decimal digits, one digit per cell, with the least significant digit
    first.
    For example, 1024 is stored as the digits 4, 2, 0, 1.

The magnitude is always normalized: every digit is in the range [0, 9] and
there are no leading zeros, except for zero itself, which is the single
digit 0.
Zero is always non-negative.

Digit buffers start with room for 32 digits and grow in steps of 32 digits,
so there is no upper limit on the size of an integer other than memory.

# Conversions

The package provides methods for converting big integers:

  - from/to string:
    [Parse], [BigInt.String], [BigInt.Format].
  - from/to int64:
    [New], [BigInt.Int64].
  - from uint64:
    [NewFromUint64].
  - from/to [big.Int]:
    [NewFromBig], [BigInt.Big].

Big integers can also be stored and transmitted as text, as packed BCD,
as SQL values and as YAML scalars.
See [BigInt.MarshalText], [BigInt.MarshalBinary], [BigInt.Value] and
[BigInt.MarshalYAML] for details.

# Operations

Arithmetic operations use schoolbook algorithms on decimal digits.
Each operation is carried out in two steps:

 1. Digits are combined cell by cell in a scratch buffer, where cells may
    temporarily hold values outside of [0, 9], including negative ones.

 2. The scratch buffer is normalized by carrying the excess of large cells
    into the next cell or by borrowing from the next cell for negative cells.

Scratch buffers never leave the operation that created them, so every
observable big integer is normalized.

  - [BigInt.Add] and [BigInt.Sub] work on digits directly.
    Operands with different signs are handled by the opposite operation.
  - [BigInt.Mul] accumulates the products of the first operand and each
    digit of the second operand, shifted by the position of that digit.
  - [BigInt.Quo] and [BigInt.QuoRem] use long division: they repeatedly find
    the largest power-of-ten multiple of the divisor that does not exceed the
    remainder and subtract it.
    The quotient is truncated towards zero.

# Errors

All methods are pure.
Only division can fail: [BigInt.Quo] and [BigInt.QuoRem] return an error
wrapping [ErrDivisionByZero] when the divisor is 0.
Unlike many other integer types, there is no overflow.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package bigint
