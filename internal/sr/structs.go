package sr

import "spvlift/internal/spv"

// Capability mirrors one OpCapability instruction.
type Capability struct {
	Capability spv.Capability
}

// Extension mirrors one OpExtension instruction.
type Extension struct {
	Name string
}

// ExtInstImport mirrors one OpExtInstImport instruction.
type ExtInstImport struct {
	Name string
}

// MemoryModel mirrors the OpMemoryModel instruction.
type MemoryModel struct {
	AddressingModel spv.AddressingModel
	MemoryModel     spv.MemoryModel
}

// EntryPoint mirrors one OpEntryPoint instruction.
type EntryPoint struct {
	ExecutionModel spv.ExecutionModel
	EntryPoint     Token[Function]
	Name           string
	Interface      []Token[Variable]
}

// ExecutionMode mirrors one OpExecutionMode instruction.
type ExecutionMode struct {
	EntryPoint Token[Function]
	Mode       spv.ExecutionMode
	Literals   []uint32
}

// FunctionDef mirrors the OpFunction instruction opening a function body.
type FunctionDef struct {
	FunctionControl spv.FunctionControl
	FunctionType    Token[FunctionType]
}
