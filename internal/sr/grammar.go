package sr

import (
	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// Class assigns every opcode to exactly one instruction class. Type-forming
// opcodes, terminators and plain instructions are the three disjoint unions
// of the structured representation; mode-setting, extension, function and
// constant opcodes lift into dedicated flat structs instead.
type Class uint8

const (
	// ClassType marks type-forming opcodes.
	ClassType Class = iota
	// ClassTerminator marks block-ending opcodes.
	ClassTerminator
	// ClassInstruction marks plain straight-line opcodes.
	ClassInstruction
	// ClassModeSetting marks module-header metadata opcodes.
	ClassModeSetting
	// ClassExtension marks extension declaration opcodes.
	ClassExtension
	// ClassFunction marks function structure opcodes.
	ClassFunction
	// ClassConstant marks constant-forming opcodes, excluded from generic
	// decoding because of their context-dependent literals.
	ClassConstant
)

// Quantifier is the declared multiplicity of an operand field.
type Quantifier uint8

const (
	// QuantOne requires exactly one operand.
	QuantOne Quantifier = iota
	// QuantOpt allows zero or one operand.
	QuantOpt
	// QuantMany allows a run of zero or more operands.
	QuantMany
)

// RefClass fixes the referent category of a reference field. It is part of
// the grammar configuration: the decoder never infers it at runtime.
type RefClass uint8

const (
	// RefNone marks non-reference fields.
	RefNone RefClass = iota
	// RefType marks references to type instructions.
	RefType
	// RefFunctionType marks references to OpTypeFunction instructions.
	RefFunctionType
	// RefConstant marks references to constant instructions.
	RefConstant
	// RefFunction marks references to OpFunction results.
	RefFunction
	// RefVariable marks references to OpVariable results.
	RefVariable
	// RefValue marks references to arbitrary instruction results.
	RefValue
)

// Field declares one logical operand of an opcode.
type Field struct {
	Name  string
	Kind  raw.OperandKind
	Quant Quantifier
	Ref   RefClass
}

// OpInfo is one grammar-table row: the opcode's class and its declared
// operand fields in grammar order, result ids excluded.
type OpInfo struct {
	Class  Class
	Fields []Field
}

func req(name string, kind raw.OperandKind) Field {
	return Field{Name: name, Kind: kind, Quant: QuantOne}
}

func opt(name string, kind raw.OperandKind) Field {
	return Field{Name: name, Kind: kind, Quant: QuantOpt}
}

func many(name string, kind raw.OperandKind) Field {
	return Field{Name: name, Kind: kind, Quant: QuantMany}
}

func ref(name string, rc RefClass) Field {
	return Field{Name: name, Kind: raw.KindIDRef, Quant: QuantOne, Ref: rc}
}

func optRef(name string, rc RefClass) Field {
	return Field{Name: name, Kind: raw.KindIDRef, Quant: QuantOpt, Ref: rc}
}

func manyRef(name string, rc RefClass) Field {
	return Field{Name: name, Kind: raw.KindIDRef, Quant: QuantMany, Ref: rc}
}

// grammar is the data table driving the generic decode engine: one row per
// supported opcode. Extending the lifted subset means adding rows (and
// union variants), never touching the engine.
var grammar = map[spv.Op]OpInfo{
	spv.OpCapability: {Class: ClassModeSetting, Fields: []Field{
		req("capability", raw.KindCapability),
	}},
	spv.OpMemoryModel: {Class: ClassModeSetting, Fields: []Field{
		req("addressing model", raw.KindAddressingModel),
		req("memory model", raw.KindMemoryModel),
	}},
	spv.OpEntryPoint: {Class: ClassModeSetting, Fields: []Field{
		req("execution model", raw.KindExecutionModel),
		ref("entry point", RefFunction),
		{Name: "name", Kind: raw.KindLiteralString, Quant: QuantOne},
		manyRef("interface", RefVariable),
	}},
	spv.OpExecutionMode: {Class: ClassModeSetting, Fields: []Field{
		ref("entry point", RefFunction),
		req("mode", raw.KindExecutionMode),
		many("literals", raw.KindLiteralInt),
	}},

	spv.OpExtension: {Class: ClassExtension, Fields: []Field{
		req("name", raw.KindLiteralString),
	}},
	spv.OpExtInstImport: {Class: ClassExtension, Fields: []Field{
		req("name", raw.KindLiteralString),
	}},

	spv.OpFunction: {Class: ClassFunction, Fields: []Field{
		req("function control", raw.KindFunctionControl),
		ref("function type", RefFunctionType),
	}},
	spv.OpFunctionParameter: {Class: ClassFunction},
	spv.OpFunctionEnd:       {Class: ClassFunction},

	spv.OpTypeVoid:        {Class: ClassType},
	spv.OpTypeBool:        {Class: ClassType},
	spv.OpTypeEvent:       {Class: ClassType},
	spv.OpTypeDeviceEvent: {Class: ClassType},
	spv.OpTypeReserveId:   {Class: ClassType},
	spv.OpTypeQueue:       {Class: ClassType},
	spv.OpTypeSampler:     {Class: ClassType},
	spv.OpTypeInt: {Class: ClassType, Fields: []Field{
		req("width", raw.KindLiteralInt),
		req("signedness", raw.KindLiteralInt),
	}},
	spv.OpTypeFloat: {Class: ClassType, Fields: []Field{
		req("width", raw.KindLiteralInt),
	}},
	spv.OpTypeVector: {Class: ClassType, Fields: []Field{
		ref("component type", RefType),
		req("component count", raw.KindLiteralInt),
	}},
	spv.OpTypeMatrix: {Class: ClassType, Fields: []Field{
		ref("column type", RefType),
		req("column count", raw.KindLiteralInt),
	}},
	spv.OpTypeImage: {Class: ClassType, Fields: []Field{
		ref("sampled type", RefType),
		req("dim", raw.KindDim),
		req("depth", raw.KindLiteralInt),
		req("arrayed", raw.KindLiteralInt),
		req("ms", raw.KindLiteralInt),
		req("sampled", raw.KindLiteralInt),
		req("image format", raw.KindImageFormat),
		opt("access qualifier", raw.KindAccessQualifier),
	}},
	spv.OpTypeSampledImage: {Class: ClassType, Fields: []Field{
		ref("image type", RefType),
	}},
	spv.OpTypeArray: {Class: ClassType, Fields: []Field{
		ref("element type", RefType),
		ref("length", RefConstant),
	}},
	spv.OpTypeRuntimeArray: {Class: ClassType, Fields: []Field{
		ref("element type", RefType),
	}},
	spv.OpTypeStruct: {Class: ClassType, Fields: []Field{
		manyRef("field types", RefType),
	}},
	spv.OpTypeOpaque: {Class: ClassType, Fields: []Field{
		req("name", raw.KindLiteralString),
	}},
	spv.OpTypePointer: {Class: ClassType, Fields: []Field{
		req("storage class", raw.KindStorageClass),
		ref("type", RefType),
	}},
	spv.OpTypeFunction: {Class: ClassType, Fields: []Field{
		ref("return type", RefType),
		manyRef("parameter types", RefType),
	}},
	spv.OpTypePipe: {Class: ClassType, Fields: []Field{
		req("qualifier", raw.KindAccessQualifier),
	}},
	spv.OpTypeForwardPointer: {Class: ClassType, Fields: []Field{
		ref("pointer type", RefType),
		req("storage class", raw.KindStorageClass),
	}},

	// Constant payloads depend on the result type, so the rows stay
	// fieldless and the values remain opaque tokens.
	spv.OpConstantTrue:  {Class: ClassConstant},
	spv.OpConstantFalse: {Class: ClassConstant},
	spv.OpConstant:      {Class: ClassConstant},
	spv.OpConstantNull:  {Class: ClassConstant},

	spv.OpNop:   {Class: ClassInstruction},
	spv.OpUndef: {Class: ClassInstruction},
	spv.OpVariable: {Class: ClassInstruction, Fields: []Field{
		req("storage class", raw.KindStorageClass),
		optRef("initializer", RefValue),
	}},
	spv.OpLoad: {Class: ClassInstruction, Fields: []Field{
		ref("pointer", RefValue),
		opt("memory access", raw.KindMemoryAccess),
	}},
	spv.OpStore: {Class: ClassInstruction, Fields: []Field{
		ref("pointer", RefValue),
		ref("object", RefValue),
		opt("memory access", raw.KindMemoryAccess),
	}},
	spv.OpAccessChain: {Class: ClassInstruction, Fields: []Field{
		ref("base", RefValue),
		manyRef("indexes", RefValue),
	}},
	spv.OpFunctionCall: {Class: ClassInstruction, Fields: []Field{
		ref("function", RefFunction),
		manyRef("arguments", RefValue),
	}},
	spv.OpDecorate: {Class: ClassInstruction, Fields: []Field{
		ref("target", RefValue),
		req("decoration", raw.KindDecoration),
		many("literals", raw.KindLiteralInt),
	}},
	spv.OpMemberDecorate: {Class: ClassInstruction, Fields: []Field{
		ref("structure type", RefType),
		req("member", raw.KindLiteralInt),
		req("decoration", raw.KindDecoration),
		many("literals", raw.KindLiteralInt),
	}},
	spv.OpVectorShuffle: {Class: ClassInstruction, Fields: []Field{
		ref("vector 1", RefValue),
		ref("vector 2", RefValue),
		many("components", raw.KindLiteralInt),
	}},
	spv.OpCompositeConstruct: {Class: ClassInstruction, Fields: []Field{
		manyRef("constituents", RefValue),
	}},
	spv.OpCompositeExtract: {Class: ClassInstruction, Fields: []Field{
		ref("composite", RefValue),
		many("indexes", raw.KindLiteralInt),
	}},
	spv.OpIAdd: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpFAdd: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpISub: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpFSub: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpIMul: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpFMul: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpUDiv: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpSDiv: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpFDiv: {Class: ClassInstruction, Fields: binaryFields},
	spv.OpPhi: {Class: ClassInstruction, Fields: []Field{
		many("variable, parent pairs", raw.KindPairIDRefIDRef),
	}},
	spv.OpLoopMerge: {Class: ClassInstruction, Fields: []Field{
		ref("merge block", RefValue),
		ref("continue target", RefValue),
		req("loop control", raw.KindLoopControl),
	}},
	spv.OpSelectionMerge: {Class: ClassInstruction, Fields: []Field{
		ref("merge block", RefValue),
		req("selection control", raw.KindSelectionControl),
	}},
	spv.OpLabel: {Class: ClassInstruction},

	spv.OpBranch: {Class: ClassTerminator, Fields: []Field{
		ref("target label", RefValue),
	}},
	spv.OpBranchConditional: {Class: ClassTerminator, Fields: []Field{
		ref("condition", RefValue),
		ref("true label", RefValue),
		ref("false label", RefValue),
		many("branch weights", raw.KindLiteralInt),
	}},
	spv.OpSwitch: {Class: ClassTerminator, Fields: []Field{
		ref("selector", RefValue),
		ref("default", RefValue),
		many("targets", raw.KindPairLiteralIDRef),
	}},
	spv.OpKill:   {Class: ClassTerminator},
	spv.OpReturn: {Class: ClassTerminator},
	spv.OpReturnValue: {Class: ClassTerminator, Fields: []Field{
		ref("value", RefValue),
	}},
	spv.OpUnreachable: {Class: ClassTerminator},
}

var binaryFields = []Field{
	ref("operand 1", RefValue),
	ref("operand 2", RefValue),
}

// Info returns the grammar row for an opcode.
func Info(op spv.Op) (OpInfo, bool) {
	info, ok := grammar[op]
	return info, ok
}

// OpClass returns the class of an opcode known to the grammar.
func OpClass(op spv.Op) (Class, bool) {
	info, ok := grammar[op]
	return info.Class, ok
}
