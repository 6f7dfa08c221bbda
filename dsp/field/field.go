// Package field provides the arithmetic used by the transform engine.
//
// A [Field] bundles the handful of operations a radix-2 transform needs:
// identities, addition, subtraction, multiplication, primitive roots of
// unity and the reciprocal of a transform length. Two implementations are
// provided:
//
//   - [Complex]: complex128 arithmetic, roots exp(∓2πi/n)
//   - [Modular]: exact arithmetic modulo a prime configured by [ModParams]
//
// The modular field is configured explicitly so that alternate NTT-friendly
// primes can be used side by side:
//
//	fld, err := field.NewModular(field.Params998244353)
//	w, err := fld.RootOfUnity(8, false) // primitive 8th root of unity
package field

import "errors"

// Errors returned by field construction and root-of-unity lookup.
var (
	ErrInvalidModulus    = errors.New("field: invalid modulus")
	ErrInvalidRoot       = errors.New("field: invalid primitive root")
	ErrUnsupportedLength = errors.New("field: no primitive root of unity for length")
)

// Field is the capability a transform needs from its element type.
type Field[E any] interface {
	// Zero returns the additive identity.
	Zero() E

	// One returns the multiplicative identity.
	One() E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E

	// RootOfUnity returns a primitive n-th root of unity. With inverse set,
	// the reciprocal root is returned instead.
	RootOfUnity(n int, inverse bool) (E, error)

	// InverseLen returns 1/n as a field element.
	InverseLen(n int) (E, error)
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
