package sr

import (
	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// EntryPointInfo pairs the entry point declaration of a function with its
// execution mode. Mode is nil when the module declares no OpExecutionMode
// for the entry point.
type EntryPointInfo struct {
	EntryPoint EntryPoint
	Mode       *ExecutionMode
}

// BasicBlock is a maximal straight-line instruction run ending in exactly
// one terminator. Label is the result id of the OpLabel opening the block.
type BasicBlock struct {
	Label        spv.Word
	Instructions []Instruction
	Terminator   Terminator
}

// Function is a structured function: its optional entry-point pairing,
// control flags, resolved result and parameter type tokens, and its basic
// blocks in body order.
type Function struct {
	Entry      *EntryPointInfo
	Control    spv.FunctionControl
	Result     Token[Type]
	Parameters []Token[Type]
	Blocks     []BasicBlock
}

// Module is the structured representation of one raw module. It owns its
// contents transitively; tokens inside it resolve against the Context the
// conversion used.
type Module struct {
	Header         raw.ModuleHeader
	Capabilities   []Capability
	Extensions     []Extension
	ExtInstImports []ExtInstImport
	MemoryModel    MemoryModel
	Functions      []Function
}
