package sr

import (
	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// LiftType lifts any type-forming instruction except OpTypeFunction into an
// interned type token. Structurally equal type instructions yield the same
// token. The instruction's result id, when present, is recorded in the
// per-id token mapping for later resolution.
func (cx *Context) LiftType(inst *raw.Instruction) (Token[Type], error) {
	if inst == nil {
		return Token[Type]{}, errOpCode()
	}
	info, ok := grammar[inst.Op]
	if !ok || info.Class != ClassType || inst.Op == spv.OpTypeFunction {
		return Token[Type]{}, errOpCode()
	}
	fields, err := decodeOperands(info, inst.Operands)
	if err != nil {
		return Token[Type]{}, liftErr(err)
	}
	ty, lerr := typeFromFields(inst.Op, fields)
	if lerr != nil {
		return Token[Type]{}, lerr
	}
	tok := cx.types.fetchOrAppend(ty)
	if inst.ResultID != spv.NoResult {
		cx.typeByID[inst.ResultID] = tok
	}
	return tok, nil
}

// typeFromFields maps grammar-decoded fields onto the Type union. The
// decode engine has already enforced kinds and quantifiers; this is pure
// shape assembly.
func typeFromFields(op spv.Op, fields []FieldValue) (Type, *LiftError) {
	switch op {
	case spv.OpTypeVoid:
		return Type{Kind: TypeVoidKind}, nil
	case spv.OpTypeBool:
		return Type{Kind: TypeBoolKind}, nil
	case spv.OpTypeInt:
		return Type{Kind: TypeIntKind, Int: IntType{
			Width:      fields[0].Word(),
			Signedness: fields[1].Word(),
		}}, nil
	case spv.OpTypeFloat:
		return Type{Kind: TypeFloatKind, Float: FloatType{Width: fields[0].Word()}}, nil
	case spv.OpTypeVector:
		return Type{Kind: TypeVectorKind, Vector: VectorType{
			Component: tokenOf[Type](fields[0]),
			Count:     fields[1].Word(),
		}}, nil
	case spv.OpTypeMatrix:
		return Type{Kind: TypeMatrixKind, Matrix: MatrixType{
			Column: tokenOf[Type](fields[0]),
			Count:  fields[1].Word(),
		}}, nil
	case spv.OpTypeImage:
		img := ImageType{
			Sampled:   tokenOf[Type](fields[0]),
			Dim:       spv.Dim(fields[1].Word()),
			Depth:     fields[2].Word(),
			Arrayed:   fields[3].Word(),
			MS:        fields[4].Word(),
			SampledAs: fields[5].Word(),
			Format:    spv.ImageFormat(fields[6].Word()),
		}
		if fields[7].Present {
			img.HasAccess = true
			img.Access = spv.AccessQualifier(fields[7].Word())
		}
		return Type{Kind: TypeImageKind, Image: img}, nil
	case spv.OpTypeSampler:
		return Type{Kind: TypeSamplerKind}, nil
	case spv.OpTypeSampledImage:
		return Type{Kind: TypeSampledImageKind, SampledImage: SampledImageType{
			Image: tokenOf[Type](fields[0]),
		}}, nil
	case spv.OpTypeArray:
		return Type{Kind: TypeArrayKind, Array: ArrayType{
			Element: tokenOf[Type](fields[0]),
			Length:  tokenOf[Constant](fields[1]),
		}}, nil
	case spv.OpTypeRuntimeArray:
		return Type{Kind: TypeRuntimeArrayKind, RuntimeArray: RuntimeArrayType{
			Element: tokenOf[Type](fields[0]),
		}}, nil
	case spv.OpTypeStruct:
		members := make([]StructMember, 0, len(fields[0].Words))
		for _, w := range fields[0].Words {
			members = append(members, NewStructMember(NewToken[Type](w)))
		}
		return Type{Kind: TypeStructKind, Struct: StructType{Members: members}}, nil
	case spv.OpTypeOpaque:
		return Type{Kind: TypeOpaqueKind, Opaque: OpaqueType{Name: fields[0].Str()}}, nil
	case spv.OpTypePointer:
		return Type{Kind: TypePointerKind, Pointer: PointerType{
			StorageClass: spv.StorageClass(fields[0].Word()),
			Pointee:      tokenOf[Type](fields[1]),
		}}, nil
	case spv.OpTypeEvent:
		return Type{Kind: TypeEventKind}, nil
	case spv.OpTypeDeviceEvent:
		return Type{Kind: TypeDeviceEventKind}, nil
	case spv.OpTypeReserveId:
		return Type{Kind: TypeReserveIdKind}, nil
	case spv.OpTypeQueue:
		return Type{Kind: TypeQueueKind}, nil
	case spv.OpTypePipe:
		return Type{Kind: TypePipeKind, Pipe: PipeType{
			Qualifier: spv.AccessQualifier(fields[0].Word()),
		}}, nil
	case spv.OpTypeForwardPointer:
		return Type{Kind: TypeForwardPointerKind, ForwardPointer: ForwardPointerType{
			Pointer:      tokenOf[Type](fields[0]),
			StorageClass: spv.StorageClass(fields[1].Word()),
		}}, nil
	default:
		return Type{}, errOpCode()
	}
}

// LiftTypeFunction lifts an OpTypeFunction instruction. Function types are
// standalone: the module assembler consumes their return and parameter
// tokens directly instead of interning them into the Type union.
func (cx *Context) LiftTypeFunction(inst *raw.Instruction) (FunctionType, error) {
	fields, lerr := decodeFor(spv.OpTypeFunction, inst)
	if lerr != nil {
		return FunctionType{}, lerr
	}
	return FunctionType{
		ReturnType:     tokenOf[Type](fields[0]),
		ParameterTypes: tokensOf[Type](fields[1]),
	}, nil
}
