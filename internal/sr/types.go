package sr

import (
	"fmt"
	"slices"

	"spvlift/internal/spv"
)

// TypeKind enumerates the type-forming opcodes.
type TypeKind uint8

const (
	TypeVoidKind TypeKind = iota
	TypeBoolKind
	TypeIntKind
	TypeFloatKind
	TypeVectorKind
	TypeMatrixKind
	TypeImageKind
	TypeSamplerKind
	TypeSampledImageKind
	TypeArrayKind
	TypeRuntimeArrayKind
	TypeStructKind
	TypeOpaqueKind
	TypePointerKind
	TypeEventKind
	TypeDeviceEventKind
	TypeReserveIdKind
	TypeQueueKind
	TypePipeKind
	TypeForwardPointerKind
)

func (k TypeKind) String() string {
	switch k {
	case TypeVoidKind:
		return "void"
	case TypeBoolKind:
		return "bool"
	case TypeIntKind:
		return "int"
	case TypeFloatKind:
		return "float"
	case TypeVectorKind:
		return "vector"
	case TypeMatrixKind:
		return "matrix"
	case TypeImageKind:
		return "image"
	case TypeSamplerKind:
		return "sampler"
	case TypeSampledImageKind:
		return "sampled-image"
	case TypeArrayKind:
		return "array"
	case TypeRuntimeArrayKind:
		return "runtime-array"
	case TypeStructKind:
		return "struct"
	case TypeOpaqueKind:
		return "opaque"
	case TypePointerKind:
		return "pointer"
	case TypeEventKind:
		return "event"
	case TypeDeviceEventKind:
		return "device-event"
	case TypeReserveIdKind:
		return "reserve-id"
	case TypeQueueKind:
		return "queue"
	case TypePipeKind:
		return "pipe"
	case TypeForwardPointerKind:
		return "forward-pointer"
	default:
		return fmt.Sprintf("TypeKind(%d)", k)
	}
}

// IntType describes OpTypeInt.
type IntType struct {
	Width      uint32
	Signedness uint32
}

// FloatType describes OpTypeFloat.
type FloatType struct {
	Width uint32
}

// VectorType describes OpTypeVector.
type VectorType struct {
	Component Token[Type]
	Count     uint32
}

// MatrixType describes OpTypeMatrix.
type MatrixType struct {
	Column Token[Type]
	Count  uint32
}

// ImageType describes OpTypeImage.
type ImageType struct {
	Sampled   Token[Type]
	Dim       spv.Dim
	Depth     uint32
	Arrayed   uint32
	MS        uint32
	SampledAs uint32
	Format    spv.ImageFormat
	HasAccess bool
	Access    spv.AccessQualifier
}

// SampledImageType describes OpTypeSampledImage.
type SampledImageType struct {
	Image Token[Type]
}

// ArrayType describes OpTypeArray. The length references a constant
// instruction, so it stays an opaque constant token.
type ArrayType struct {
	Element Token[Type]
	Length  Token[Constant]
}

// RuntimeArrayType describes OpTypeRuntimeArray.
type RuntimeArrayType struct {
	Element Token[Type]
}

// StructMember is one field of a struct type, with its own decorations.
type StructMember struct {
	Type        Token[Type]
	Decorations []Decoration
}

// NewStructMember wraps a field-type token into an undecorated member.
func NewStructMember(ty Token[Type]) StructMember {
	return StructMember{Type: ty}
}

// Equal reports structural equality of two members.
func (m StructMember) Equal(o StructMember) bool {
	return m.Type == o.Type && slices.Equal(m.Decorations, o.Decorations)
}

// StructType describes OpTypeStruct.
type StructType struct {
	Members []StructMember
}

// OpaqueType describes OpTypeOpaque.
type OpaqueType struct {
	Name string
}

// PointerType describes OpTypePointer.
type PointerType struct {
	StorageClass spv.StorageClass
	Pointee      Token[Type]
}

// PipeType describes OpTypePipe.
type PipeType struct {
	Qualifier spv.AccessQualifier
}

// ForwardPointerType describes OpTypeForwardPointer.
type ForwardPointerType struct {
	Pointer      Token[Type]
	StorageClass spv.StorageClass
}

// Type is the interned descriptor for a type-forming instruction: a closed
// kind-tagged union plus the decorations attached to the type. Only the
// payload matching Kind is meaningful. Function types are standalone (see
// FunctionType); every other type-forming opcode maps to exactly one kind
// here.
type Type struct {
	Kind TypeKind

	Int            IntType
	Float          FloatType
	Vector         VectorType
	Matrix         MatrixType
	Image          ImageType
	SampledImage   SampledImageType
	Array          ArrayType
	RuntimeArray   RuntimeArrayType
	Struct         StructType
	Opaque         OpaqueType
	Pointer        PointerType
	Pipe           PipeType
	ForwardPointer ForwardPointerType

	Decorations []Decoration
}

// Is reports whether the type has the given kind.
func (t *Type) Is(kind TypeKind) bool {
	return t != nil && t.Kind == kind
}

// IsVoid reports whether the type is void.
func (t *Type) IsVoid() bool { return t.Is(TypeVoidKind) }

// IsBool reports whether the type is bool.
func (t *Type) IsBool() bool { return t.Is(TypeBoolKind) }

// IsInt reports whether the type is an integer type.
func (t *Type) IsInt() bool { return t.Is(TypeIntKind) }

// IsFloat reports whether the type is a floating-point type.
func (t *Type) IsFloat() bool { return t.Is(TypeFloatKind) }

// IsVector reports whether the type is a vector type.
func (t *Type) IsVector() bool { return t.Is(TypeVectorKind) }

// IsPointer reports whether the type is a pointer type.
func (t *Type) IsPointer() bool { return t.Is(TypePointerKind) }

// IsStruct reports whether the type is a struct type.
func (t *Type) IsStruct() bool { return t.Is(TypeStructKind) }

// Equal reports structural equality: same kind, same payload, same
// decorations in the same order.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || !slices.Equal(t.Decorations, o.Decorations) {
		return false
	}
	switch t.Kind {
	case TypeIntKind:
		return t.Int == o.Int
	case TypeFloatKind:
		return t.Float == o.Float
	case TypeVectorKind:
		return t.Vector == o.Vector
	case TypeMatrixKind:
		return t.Matrix == o.Matrix
	case TypeImageKind:
		return t.Image == o.Image
	case TypeSampledImageKind:
		return t.SampledImage == o.SampledImage
	case TypeArrayKind:
		return t.Array == o.Array
	case TypeRuntimeArrayKind:
		return t.RuntimeArray == o.RuntimeArray
	case TypeStructKind:
		return slices.EqualFunc(t.Struct.Members, o.Struct.Members, StructMember.Equal)
	case TypeOpaqueKind:
		return t.Opaque == o.Opaque
	case TypePointerKind:
		return t.Pointer == o.Pointer
	case TypePipeKind:
		return t.Pipe == o.Pipe
	case TypeForwardPointerKind:
		return t.ForwardPointer == o.ForwardPointer
	default:
		// Kinds without payload compare by kind alone.
		return true
	}
}

// FunctionType describes OpTypeFunction. It stands alone rather than living
// in the Type union: the module assembler resolves it per function and
// consumes the return/parameter tokens directly.
type FunctionType struct {
	Decorations    []Decoration
	ReturnType     Token[Type]
	ParameterTypes []Token[Type]
}

// Equal reports structural equality of two function types.
func (f FunctionType) Equal(o FunctionType) bool {
	return f.ReturnType == o.ReturnType &&
		slices.Equal(f.ParameterTypes, o.ParameterTypes) &&
		slices.Equal(f.Decorations, o.Decorations)
}
