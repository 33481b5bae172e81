package spv

import "fmt"

// Word is the 32-bit unit SPIR-V modules are built from. Ids, enum values
// and single-word literals are all Words.
type Word = uint32

// NoResult marks an instruction without a result id. SPIR-V ids start at 1.
const NoResult Word = 0

// Op enumerates SPIR-V opcodes. Values match the ones assigned by the
// SPIR-V specification; only the subset this toolchain lifts is listed.
type Op uint16

const (
	OpNop                Op = 0
	OpUndef              Op = 1
	OpExtension          Op = 10
	OpExtInstImport      Op = 11
	OpMemoryModel        Op = 14
	OpEntryPoint         Op = 15
	OpExecutionMode      Op = 16
	OpCapability         Op = 17
	OpTypeVoid           Op = 19
	OpTypeBool           Op = 20
	OpTypeInt            Op = 21
	OpTypeFloat          Op = 22
	OpTypeVector         Op = 23
	OpTypeMatrix         Op = 24
	OpTypeImage          Op = 25
	OpTypeSampler        Op = 26
	OpTypeSampledImage   Op = 27
	OpTypeArray          Op = 28
	OpTypeRuntimeArray   Op = 29
	OpTypeStruct         Op = 30
	OpTypeOpaque         Op = 31
	OpTypePointer        Op = 32
	OpTypeFunction       Op = 33
	OpTypeEvent          Op = 34
	OpTypeDeviceEvent    Op = 35
	OpTypeReserveId      Op = 36
	OpTypeQueue          Op = 37
	OpTypePipe           Op = 38
	OpTypeForwardPointer Op = 39

	OpConstantTrue  Op = 41
	OpConstantFalse Op = 42
	OpConstant      Op = 43
	OpConstantNull  Op = 46

	OpFunction          Op = 54
	OpFunctionParameter Op = 55
	OpFunctionEnd       Op = 56
	OpFunctionCall      Op = 57

	OpVariable    Op = 59
	OpLoad        Op = 61
	OpStore       Op = 62
	OpAccessChain Op = 65

	OpDecorate       Op = 71
	OpMemberDecorate Op = 72

	OpVectorShuffle      Op = 79
	OpCompositeConstruct Op = 80
	OpCompositeExtract   Op = 81

	OpIAdd Op = 128
	OpFAdd Op = 129
	OpISub Op = 130
	OpFSub Op = 131
	OpIMul Op = 132
	OpFMul Op = 133
	OpUDiv Op = 134
	OpSDiv Op = 135
	OpFDiv Op = 136

	OpPhi               Op = 245
	OpLoopMerge         Op = 246
	OpSelectionMerge    Op = 247
	OpLabel             Op = 248
	OpBranch            Op = 249
	OpBranchConditional Op = 250
	OpSwitch            Op = 251
	OpKill              Op = 252
	OpReturn            Op = 253
	OpReturnValue       Op = 254
	OpUnreachable       Op = 255
)

var opNames = map[Op]string{
	OpNop:                "OpNop",
	OpUndef:              "OpUndef",
	OpExtension:          "OpExtension",
	OpExtInstImport:      "OpExtInstImport",
	OpMemoryModel:        "OpMemoryModel",
	OpEntryPoint:         "OpEntryPoint",
	OpExecutionMode:      "OpExecutionMode",
	OpCapability:         "OpCapability",
	OpTypeVoid:           "OpTypeVoid",
	OpTypeBool:           "OpTypeBool",
	OpTypeInt:            "OpTypeInt",
	OpTypeFloat:          "OpTypeFloat",
	OpTypeVector:         "OpTypeVector",
	OpTypeMatrix:         "OpTypeMatrix",
	OpTypeImage:          "OpTypeImage",
	OpTypeSampler:        "OpTypeSampler",
	OpTypeSampledImage:   "OpTypeSampledImage",
	OpTypeArray:          "OpTypeArray",
	OpTypeRuntimeArray:   "OpTypeRuntimeArray",
	OpTypeStruct:         "OpTypeStruct",
	OpTypeOpaque:         "OpTypeOpaque",
	OpTypePointer:        "OpTypePointer",
	OpTypeFunction:       "OpTypeFunction",
	OpTypeEvent:          "OpTypeEvent",
	OpTypeDeviceEvent:    "OpTypeDeviceEvent",
	OpTypeReserveId:      "OpTypeReserveId",
	OpTypeQueue:          "OpTypeQueue",
	OpTypePipe:           "OpTypePipe",
	OpTypeForwardPointer: "OpTypeForwardPointer",
	OpConstantTrue:       "OpConstantTrue",
	OpConstantFalse:      "OpConstantFalse",
	OpConstant:           "OpConstant",
	OpConstantNull:       "OpConstantNull",
	OpFunction:           "OpFunction",
	OpFunctionParameter:  "OpFunctionParameter",
	OpFunctionEnd:        "OpFunctionEnd",
	OpFunctionCall:       "OpFunctionCall",
	OpVariable:           "OpVariable",
	OpLoad:               "OpLoad",
	OpStore:              "OpStore",
	OpAccessChain:        "OpAccessChain",
	OpDecorate:           "OpDecorate",
	OpMemberDecorate:     "OpMemberDecorate",
	OpVectorShuffle:      "OpVectorShuffle",
	OpCompositeConstruct: "OpCompositeConstruct",
	OpCompositeExtract:   "OpCompositeExtract",
	OpIAdd:               "OpIAdd",
	OpFAdd:               "OpFAdd",
	OpISub:               "OpISub",
	OpFSub:               "OpFSub",
	OpIMul:               "OpIMul",
	OpFMul:               "OpFMul",
	OpUDiv:               "OpUDiv",
	OpSDiv:               "OpSDiv",
	OpFDiv:               "OpFDiv",
	OpPhi:                "OpPhi",
	OpLoopMerge:          "OpLoopMerge",
	OpSelectionMerge:     "OpSelectionMerge",
	OpLabel:              "OpLabel",
	OpBranch:             "OpBranch",
	OpBranchConditional:  "OpBranchConditional",
	OpSwitch:             "OpSwitch",
	OpKill:               "OpKill",
	OpReturn:             "OpReturn",
	OpReturnValue:        "OpReturnValue",
	OpUnreachable:        "OpUnreachable",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}
