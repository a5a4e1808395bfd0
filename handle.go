package darc

import (
	"cmp"
	"fmt"
)

// Handle is implemented by both Ref and Shared.
type Handle[T any] interface {
	Value() T
	block() *block[T]
}

var (
	_ Handle[int] = Ref[int]{}
	_ Handle[int] = Shared[int]{}
)

// Equal reports whether the values behind a and b are equal. Go does not
// infer T from the handle types, so it is called with the value type given
// explicitly, as in Equal[int](a, b).
func Equal[T comparable](a, b Handle[T]) bool {
	return a.Value() == b.Value()
}

// Compare compares the values behind a and b like cmp.Compare. Like Equal,
// T must be given explicitly.
func Compare[T cmp.Ordered](a, b Handle[T]) int {
	return cmp.Compare(a.Value(), b.Value())
}

// Same reports whether a and b refer to the same allocation, as opposed to
// equal values. Like Equal, T must be given explicitly.
func Same[T any](a, b Handle[T]) bool {
	return a.block() == b.block()
}

// Format formats the value the Ref points at with the same verb and flags.
// The %p verb formats the address of the value, as returned by Ptr.
func (r Ref[T]) Format(f fmt.State, verb rune) {
	if verb == 'p' {
		fmt.Fprintf(f, fmt.FormatString(f, verb), r.Ptr())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), r.Value())
}

// Format formats the value the Shared points at like Ref.Format.
func (s Shared[T]) Format(f fmt.State, verb rune) {
	s.ref.Format(f, verb)
}
