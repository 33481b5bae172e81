package sr

import (
	"testing"

	"spvlift/internal/spv"
)

func TestInterningCanonicalizesEqualTypes(t *testing.T) {
	cx := NewContext()
	a := cx.TypeInt(32, 1)
	b := cx.TypeInt(32, 1)
	if a != b {
		t.Fatalf("structurally equal types must share a token: %v vs %v", a, b)
	}
	if cx.TypeCount() != 1 {
		t.Fatalf("expected a single interned type, got %d", cx.TypeCount())
	}
}

func TestInterningSeparatesDifferentTypes(t *testing.T) {
	cx := NewContext()
	signed := cx.TypeInt(32, 1)
	unsigned := cx.TypeInt(32, 0)
	if signed == unsigned {
		t.Fatalf("signedness must affect type identity")
	}
	f := cx.TypeFloat(32)
	if f == signed || f == unsigned {
		t.Fatalf("float must not collide with int")
	}
}

func TestInterningNestedTypes(t *testing.T) {
	cx := NewContext()
	elem := cx.TypeFloat(32)
	v1 := cx.TypeVector(elem, 4)
	v2 := cx.TypeVector(elem, 4)
	if v1 != v2 {
		t.Fatalf("vectors over the same component must be deduplicated")
	}
	v3 := cx.TypeVector(elem, 3)
	if v1 == v3 {
		t.Fatalf("component count must affect identity")
	}
}

func TestInterningStructMembers(t *testing.T) {
	cx := NewContext()
	f32 := cx.TypeFloat(32)
	i32 := cx.TypeInt(32, 1)
	s1 := cx.TypeStruct([]StructMember{NewStructMember(f32), NewStructMember(i32)})
	s2 := cx.TypeStruct([]StructMember{NewStructMember(f32), NewStructMember(i32)})
	if s1 != s2 {
		t.Fatalf("structs with equal member lists must share a token")
	}
	s3 := cx.TypeStruct([]StructMember{NewStructMember(i32), NewStructMember(f32)})
	if s1 == s3 {
		t.Fatalf("member order must affect identity")
	}
}

func TestDecorationsAffectTypeIdentity(t *testing.T) {
	cx := NewContext()
	plain := cx.types.fetchOrAppend(Type{Kind: TypeBoolKind})
	decorated := cx.types.fetchOrAppend(Type{
		Kind:        TypeBoolKind,
		Decorations: []Decoration{{Kind: spv.DecorationRelaxedPrecision}},
	})
	if plain == decorated {
		t.Fatalf("decorations must be part of structural identity")
	}
}

func TestTableLookupRoundtrip(t *testing.T) {
	cx := NewContext()
	tok := cx.TypePointer(spv.StorageFunction, cx.TypeBool())
	ty, ok := cx.Type(tok)
	if !ok {
		t.Fatalf("lookup of a minted token must succeed")
	}
	if !ty.IsPointer() || ty.Pointer.StorageClass != spv.StorageFunction {
		t.Fatalf("unexpected descriptor: %+v", ty)
	}
	if _, ok := cx.Type(NewToken[Type](9999)); ok {
		t.Fatalf("lookup past the table end must fail")
	}
}

func TestTokenIDRefRoundtrip(t *testing.T) {
	tok := NewToken[Value](42)
	if tok.IDRef() != 42 {
		t.Fatalf("IDRef must recover the raw id, got %d", tok.IDRef())
	}
	if !NewToken[Value](1).Less(NewToken[Value](2)) {
		t.Fatalf("tokens must order by index")
	}
}
