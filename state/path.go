package state

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Path is an immutable, ordered sequence of tokens.
// The zero value is an empty path ready to use.
type Path[T comparable] struct {
	list *immutable.List[T]
}

// NewPath builds a path holding tokens in the given order.
func NewPath[T comparable](tokens ...T) Path[T] {
	return Path[T]{list: immutable.NewList[T](tokens...)}
}

// Append returns a new path with tok added at the end.
// The receiver is not modified.
func (p Path[T]) Append(tok T) Path[T] {
	if p.list == nil {
		return NewPath(tok)
	}

	return Path[T]{list: p.list.Append(tok)}
}

// Len returns the number of tokens.
func (p Path[T]) Len() int {
	if p.list == nil {
		return 0
	}

	return p.list.Len()
}

// IsEmpty reports whether the path holds no tokens.
func (p Path[T]) IsEmpty() bool { return p.Len() == 0 }

// At returns the token at index i. It panics if i is out of range,
// mirroring slice indexing.
func (p Path[T]) At(i int) T {
	if i < 0 || i >= p.Len() {
		panic(fmt.Sprintf("state: index %d out of range [0,%d)", i, p.Len()))
	}

	return p.list.Get(i)
}

// Last returns the final token, or false for an empty path.
func (p Path[T]) Last() (T, bool) {
	var zero T
	n := p.Len()
	if n == 0 {
		return zero, false
	}

	return p.list.Get(n - 1), true
}

// Tokens returns a fresh slice with all tokens in order.
func (p Path[T]) Tokens() []T {
	out := make([]T, 0, p.Len())
	p.each(func(_ int, tok T) bool {
		out = append(out, tok)
		return true
	})

	return out
}

// Contains reports whether tok occurs anywhere in the path.
func (p Path[T]) Contains(tok T) bool {
	found := false
	p.each(func(_ int, v T) bool {
		if v == tok {
			found = true
			return false
		}
		return true
	})

	return found
}

// Equal reports whether p and q hold the same tokens in the same order.
func (p Path[T]) Equal(q Path[T]) bool {
	if p.Len() != q.Len() {
		return false
	}
	equal := true
	p.each(func(i int, tok T) bool {
		if q.list.Get(i) != tok {
			equal = false
			return false
		}
		return true
	})

	return equal
}

// Hash computes a value hash of the path from the canonical encoding of
// each token. Equal paths always produce equal hashes.
func (p Path[T]) Hash() uint32 {
	hs := make([]uint32, 0, p.Len()+1)
	hs = append(hs, uint32(p.Len()))
	p.each(func(_ int, tok T) bool {
		h := fnv.New32a()
		_, _ = h.Write([]byte(encodeToken(tok)))
		hs = append(hs, h.Sum32())
		return true
	})

	return HashCombine(hs...)
}

// Key returns a string identifying the token sequence, usable as a Go map
// key. Equal paths share a key. The key starts with the path length and
// every token is length-prefixed, so no token content can fake a boundary.
func (p Path[T]) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.Len()))
	b.WriteByte('|')
	p.each(func(_ int, tok T) bool {
		enc := encodeToken(tok)
		b.WriteString(strconv.Itoa(len(enc)))
		b.WriteByte(':')
		b.WriteString(enc)
		return true
	})

	return b.String()
}

// String renders the path as space-separated tokens in parentheses.
func (p Path[T]) String() string {
	parts := make([]string, 0, p.Len())
	p.each(func(_ int, tok T) bool {
		parts = append(parts, fmt.Sprint(tok))
		return true
	})

	return "(" + strings.Join(parts, " ") + ")"
}

// each walks the tokens in order until fn returns false.
func (p Path[T]) each(fn func(i int, tok T) bool) {
	if p.list == nil {
		return
	}
	for it := p.list.Iterator(); !it.Done(); {
		i, tok := it.Next()
		if !fn(i, tok) {
			return
		}
	}
}

// encodeToken returns the canonical text of tok. Scalar kinds are encoded
// from their value, with negative zero folded into zero, so tokens that
// compare equal with == encode identically and distinct scalars never
// collide. Composite kinds use their Go-syntax form; floats nested inside
// them are not normalized. Tokens of an interface type carry their dynamic
// type, since any(1) and any(int64(1)) differ under ==.
func encodeToken[T comparable](tok T) string {
	if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface {
		return fmt.Sprintf("%T=", tok) + encodeValue(reflect.ValueOf(tok), tok)
	}

	return encodeValue(reflect.ValueOf(tok), tok)
}

func encodeValue(v reflect.Value, tok any) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return formatFloat(real(c)) + "," + formatFloat(imag(c))
	default:
		return fmt.Sprintf("%#v", tok)
	}
}

func formatFloat(f float64) string {
	if f == 0 {
		f = 0 // -0 == 0
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
