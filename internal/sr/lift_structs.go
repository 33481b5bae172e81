package sr

import (
	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// decodeFor guards the opcode and runs the generic decode engine over the
// instruction's operands. Every lift operation starts here.
func decodeFor(op spv.Op, inst *raw.Instruction) ([]FieldValue, *LiftError) {
	if inst == nil || inst.Op != op {
		return nil, errOpCode()
	}
	info, ok := grammar[op]
	if !ok {
		return nil, errOpCode()
	}
	fields, err := decodeOperands(info, inst.Operands)
	if err != nil {
		return nil, liftErr(err)
	}
	return fields, nil
}

// LiftCapability lifts an OpCapability instruction.
func (cx *Context) LiftCapability(inst *raw.Instruction) (Capability, error) {
	fields, lerr := decodeFor(spv.OpCapability, inst)
	if lerr != nil {
		return Capability{}, lerr
	}
	return Capability{Capability: spv.Capability(fields[0].Word())}, nil
}

// LiftExtension lifts an OpExtension instruction.
func (cx *Context) LiftExtension(inst *raw.Instruction) (Extension, error) {
	fields, lerr := decodeFor(spv.OpExtension, inst)
	if lerr != nil {
		return Extension{}, lerr
	}
	return Extension{Name: fields[0].Str()}, nil
}

// LiftExtInstImport lifts an OpExtInstImport instruction.
func (cx *Context) LiftExtInstImport(inst *raw.Instruction) (ExtInstImport, error) {
	fields, lerr := decodeFor(spv.OpExtInstImport, inst)
	if lerr != nil {
		return ExtInstImport{}, lerr
	}
	return ExtInstImport{Name: fields[0].Str()}, nil
}

// LiftMemoryModel lifts the OpMemoryModel instruction.
func (cx *Context) LiftMemoryModel(inst *raw.Instruction) (MemoryModel, error) {
	fields, lerr := decodeFor(spv.OpMemoryModel, inst)
	if lerr != nil {
		return MemoryModel{}, lerr
	}
	return MemoryModel{
		AddressingModel: spv.AddressingModel(fields[0].Word()),
		MemoryModel:     spv.MemoryModel(fields[1].Word()),
	}, nil
}

// LiftEntryPoint lifts an OpEntryPoint instruction.
func (cx *Context) LiftEntryPoint(inst *raw.Instruction) (EntryPoint, error) {
	fields, lerr := decodeFor(spv.OpEntryPoint, inst)
	if lerr != nil {
		return EntryPoint{}, lerr
	}
	return EntryPoint{
		ExecutionModel: spv.ExecutionModel(fields[0].Word()),
		EntryPoint:     tokenOf[Function](fields[1]),
		Name:           fields[2].Str(),
		Interface:      tokensOf[Variable](fields[3]),
	}, nil
}

// LiftExecutionMode lifts an OpExecutionMode instruction.
func (cx *Context) LiftExecutionMode(inst *raw.Instruction) (ExecutionMode, error) {
	fields, lerr := decodeFor(spv.OpExecutionMode, inst)
	if lerr != nil {
		return ExecutionMode{}, lerr
	}
	return ExecutionMode{
		EntryPoint: tokenOf[Function](fields[0]),
		Mode:       spv.ExecutionMode(fields[1].Word()),
		Literals:   fields[2].Words,
	}, nil
}

// LiftFunctionDef lifts the OpFunction instruction opening a function.
func (cx *Context) LiftFunctionDef(inst *raw.Instruction) (FunctionDef, error) {
	fields, lerr := decodeFor(spv.OpFunction, inst)
	if lerr != nil {
		return FunctionDef{}, lerr
	}
	return FunctionDef{
		FunctionControl: spv.FunctionControl(fields[0].Word()),
		FunctionType:    tokenOf[FunctionType](fields[1]),
	}, nil
}
