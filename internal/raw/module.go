package raw

import "spvlift/internal/spv"

// ModuleHeader mirrors the five words at the front of a SPIR-V module.
type ModuleHeader struct {
	Magic     spv.Word
	Version   spv.Word
	Generator spv.Word
	Bound     spv.Word
	Schema    spv.Word
}

// Instruction is one flat, untyped instruction: an opcode plus its ordered
// operand sequence. ResultType and ResultID are spv.NoResult when absent.
type Instruction struct {
	Op         spv.Op
	ResultType spv.Word
	ResultID   spv.Word
	Operands   []Operand
}

// Function groups the instructions belonging to one function: the OpFunction
// definition (nil when the producer could not find one) and the flat body
// between it and OpFunctionEnd, parameters included.
type Function struct {
	Def  *Instruction
	Body []Instruction
}

// Module is the flat form an external parser hands over for lifting. Section
// order follows the logical layout of a SPIR-V module.
type Module struct {
	Header            *ModuleHeader
	Capabilities      []Instruction
	Extensions        []Instruction
	ExtInstImports    []Instruction
	MemoryModel       *Instruction
	EntryPoints       []Instruction
	ExecutionModes    []Instruction
	TypesGlobalValues []Instruction
	Functions         []Function
}
