package sr

import "spvlift/internal/spv"

// Token is an opaque, phantom-typed handle standing in for a reference to a
// structured value of category T. Tokens replace direct pointers so the
// structured graph stays cycle-free: type-to-type and function-to-type
// references go through a Token into an append-only table instead of
// aliasing each other.
//
// A Token is only meaningful inside the Context that produced it. Tokens
// from different Contexts must never be mixed.
type Token[T any] struct {
	index spv.Word
}

// NewToken wraps a raw numeric id as an opaque token. Use it when the
// reference is known to be unresolved: the id has not been looked up in any
// table yet and IDRef is the only way back to it.
func NewToken[T any](id spv.Word) Token[T] {
	return Token[T]{index: id}
}

// IDRef recovers the raw id the token was built from, for bridging back to
// raw-module lookups such as scanning for a definition instruction.
func (t Token[T]) IDRef() spv.Word {
	return t.index
}

// Less orders tokens by their underlying index.
func (t Token[T]) Less(o Token[T]) bool {
	return t.index < o.index
}

// Value is the referent category for plain value references: results of
// arbitrary instructions, labels, decoration targets.
type Value struct{}

// Constant is the referent category for references to constant
// instructions. Constants carry context-dependent literals, so their
// structured form is lifted by width-aware callers, not the generic
// decoder; within this package they stay opaque.
type Constant struct{}

// Variable is the referent category for references to OpVariable results.
// The structured form of a variable lives in the Instruction union.
type Variable struct{}
