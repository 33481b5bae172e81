package raw

import (
	"fmt"

	"spvlift/internal/spv"
)

// OperandKind discriminates the payload of a raw operand. Each value mirrors
// one operand category of the SPIR-V grammar.
type OperandKind uint8

const (
	// KindIDRef is a reference to another instruction's result id.
	KindIDRef OperandKind = iota
	// KindLiteralInt is a single-word integer literal.
	KindLiteralInt
	// KindLiteralString is a string literal.
	KindLiteralString
	// KindLiteralContext is a numeric literal whose width depends on an
	// enclosing type instruction. The generic decoder refuses it.
	KindLiteralContext
	// KindCapability is a spv.Capability enum value.
	KindCapability
	// KindAddressingModel is a spv.AddressingModel enum value.
	KindAddressingModel
	// KindMemoryModel is a spv.MemoryModel enum value.
	KindMemoryModel
	// KindExecutionModel is a spv.ExecutionModel enum value.
	KindExecutionModel
	// KindExecutionMode is a spv.ExecutionMode enum value.
	KindExecutionMode
	// KindStorageClass is a spv.StorageClass enum value.
	KindStorageClass
	// KindDim is a spv.Dim enum value.
	KindDim
	// KindImageFormat is a spv.ImageFormat enum value.
	KindImageFormat
	// KindAccessQualifier is a spv.AccessQualifier enum value.
	KindAccessQualifier
	// KindDecoration is a spv.Decoration enum value.
	KindDecoration
	// KindBuiltIn is a spv.BuiltIn enum value.
	KindBuiltIn
	// KindFunctionControl is a spv.FunctionControl bitmask.
	KindFunctionControl
	// KindSelectionControl is a spv.SelectionControl bitmask.
	KindSelectionControl
	// KindLoopControl is a spv.LoopControl bitmask.
	KindLoopControl
	// KindMemoryAccess is a spv.MemoryAccess bitmask.
	KindMemoryAccess
	// KindPairLiteralIDRef is an atomic (literal, id) unit.
	KindPairLiteralIDRef
	// KindPairIDRefLiteral is an atomic (id, literal) unit.
	KindPairIDRefLiteral
	// KindPairIDRefIDRef is an atomic (id, id) unit.
	KindPairIDRefIDRef
)

func (k OperandKind) String() string {
	switch k {
	case KindIDRef:
		return "IdRef"
	case KindLiteralInt:
		return "LiteralInt"
	case KindLiteralString:
		return "LiteralString"
	case KindLiteralContext:
		return "LiteralContextDependent"
	case KindCapability:
		return "Capability"
	case KindAddressingModel:
		return "AddressingModel"
	case KindMemoryModel:
		return "MemoryModel"
	case KindExecutionModel:
		return "ExecutionModel"
	case KindExecutionMode:
		return "ExecutionMode"
	case KindStorageClass:
		return "StorageClass"
	case KindDim:
		return "Dim"
	case KindImageFormat:
		return "ImageFormat"
	case KindAccessQualifier:
		return "AccessQualifier"
	case KindDecoration:
		return "Decoration"
	case KindBuiltIn:
		return "BuiltIn"
	case KindFunctionControl:
		return "FunctionControl"
	case KindSelectionControl:
		return "SelectionControl"
	case KindLoopControl:
		return "LoopControl"
	case KindMemoryAccess:
		return "MemoryAccess"
	case KindPairLiteralIDRef:
		return "PairLiteralIdRef"
	case KindPairIDRefLiteral:
		return "PairIdRefLiteral"
	case KindPairIDRefIDRef:
		return "PairIdRefIdRef"
	default:
		return fmt.Sprintf("OperandKind(%d)", k)
	}
}

// Operand is one item of an instruction's flat operand sequence.
type Operand struct {
	Kind OperandKind

	// Word carries ids, enum values and single-word literals.
	Word spv.Word
	// Str carries string literals.
	Str string
	// A and B carry the two halves of pair kinds, in declaration order.
	A spv.Word
	B spv.Word
}

// IDRef builds a reference operand.
func IDRef(id spv.Word) Operand {
	return Operand{Kind: KindIDRef, Word: id}
}

// LiteralInt builds a single-word integer literal operand.
func LiteralInt(v uint32) Operand {
	return Operand{Kind: KindLiteralInt, Word: v}
}

// LiteralString builds a string literal operand.
func LiteralString(s string) Operand {
	return Operand{Kind: KindLiteralString, Str: s}
}

// LiteralContext builds a context-dependent numeric literal operand. Its
// single stored word is the low word of the value; wider values are the
// caller's business, same as the width itself.
func LiteralContext(v uint32) Operand {
	return Operand{Kind: KindLiteralContext, Word: v}
}

// Enum builds an operand for any of the flat enum or bitmask kinds.
func Enum(kind OperandKind, v uint32) Operand {
	return Operand{Kind: kind, Word: v}
}

// PairLiteralIDRef builds an atomic (literal, id) operand.
func PairLiteralIDRef(lit uint32, id spv.Word) Operand {
	return Operand{Kind: KindPairLiteralIDRef, A: lit, B: id}
}

// PairIDRefLiteral builds an atomic (id, literal) operand.
func PairIDRefLiteral(id spv.Word, lit uint32) Operand {
	return Operand{Kind: KindPairIDRefLiteral, A: id, B: lit}
}

// PairIDRefIDRef builds an atomic (id, id) operand.
func PairIDRefIDRef(a, b spv.Word) Operand {
	return Operand{Kind: KindPairIDRefIDRef, A: a, B: b}
}
