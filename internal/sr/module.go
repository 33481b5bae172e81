package sr

import (
	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// FromRaw converts a flat raw module into its structured representation.
// Conversion is a single sequential pass over the input and is atomic: the
// first failure aborts the whole conversion and no partial Module is ever
// returned. The raw module is only read, never mutated.
func FromRaw(m *raw.Module) (*Module, error) {
	cx := NewContext()
	return cx.liftModule(m)
}

func (cx *Context) liftModule(m *raw.Module) (*Module, error) {
	if m == nil || m.Header == nil {
		return nil, convErr(ConvMissingHeader)
	}
	if m.MemoryModel == nil {
		return nil, convErr(ConvMissingMemoryModel)
	}

	out := &Module{Header: *m.Header}

	for i := range m.Capabilities {
		c, err := cx.LiftCapability(&m.Capabilities[i])
		if err != nil {
			return nil, convLift(liftErr(err))
		}
		out.Capabilities = append(out.Capabilities, c)
	}
	for i := range m.Extensions {
		ext, err := cx.LiftExtension(&m.Extensions[i])
		if err != nil {
			return nil, convLift(liftErr(err))
		}
		out.Extensions = append(out.Extensions, ext)
	}
	for i := range m.ExtInstImports {
		imp, err := cx.LiftExtInstImport(&m.ExtInstImports[i])
		if err != nil {
			return nil, convLift(liftErr(err))
		}
		out.ExtInstImports = append(out.ExtInstImports, imp)
	}

	mm, err := cx.LiftMemoryModel(m.MemoryModel)
	if err != nil {
		return nil, convLift(liftErr(err))
	}
	out.MemoryModel = mm

	entries, modes, err := cx.liftEntryPoints(m)
	if err != nil {
		return nil, err
	}

	for i := range m.Functions {
		fn, err := cx.liftFunction(m, &m.Functions[i], entries, modes)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, fn)
	}

	return out, nil
}

// liftEntryPoints lifts the module's entry point and execution mode
// instructions up front so function assembly can pair them by target id.
func (cx *Context) liftEntryPoints(m *raw.Module) ([]EntryPoint, []ExecutionMode, error) {
	var entries []EntryPoint
	for i := range m.EntryPoints {
		ep, err := cx.LiftEntryPoint(&m.EntryPoints[i])
		if err != nil {
			return nil, nil, convLift(liftErr(err))
		}
		entries = append(entries, ep)
	}
	var modes []ExecutionMode
	for i := range m.ExecutionModes {
		em, err := cx.LiftExecutionMode(&m.ExecutionModes[i])
		if err != nil {
			return nil, nil, convLift(liftErr(err))
		}
		modes = append(modes, em)
	}
	return entries, modes, nil
}

func (cx *Context) liftFunction(m *raw.Module, fn *raw.Function, entries []EntryPoint, modes []ExecutionMode) (Function, error) {
	if fn.Def == nil {
		return Function{}, convErr(ConvMissingFunction)
	}
	def, err := cx.LiftFunctionDef(fn.Def)
	if err != nil {
		return Function{}, convLift(liftErr(err))
	}

	// Resolve the declared function type by scanning the global
	// type/value section for the instruction defining the referenced id.
	ftyInst := findByResultID(m.TypesGlobalValues, def.FunctionType.IDRef())
	if ftyInst == nil {
		return Function{}, convErr(ConvMissingFunctionType)
	}
	fty, err := cx.LiftTypeFunction(ftyInst)
	if err != nil {
		return Function{}, convLift(liftErr(err))
	}

	blocks, cerr := cx.liftBody(fn.Body)
	if cerr != nil {
		return Function{}, cerr
	}

	return Function{
		Entry:      pairEntryPoint(fn.Def.ResultID, entries, modes),
		Control:    def.FunctionControl,
		Result:     fty.ReturnType,
		Parameters: fty.ParameterTypes,
		Blocks:     blocks,
	}, nil
}

// liftBody builds basic blocks from a function's flat body. OpLabel opens a
// block, terminators close it; everything in between must be a plain
// instruction. The terminator/instruction split comes from the grammar
// classes, so the two can never overlap.
func (cx *Context) liftBody(body []raw.Instruction) ([]BasicBlock, error) {
	var blocks []BasicBlock
	var cur *BasicBlock
	for i := range body {
		inst := &body[i]
		if inst.Op == spv.OpFunctionParameter {
			// Parameters are carried by the function type, not by blocks.
			continue
		}
		if inst.Op == spv.OpLabel {
			if cur != nil {
				// A label inside an open block means the previous block
				// never terminated.
				return nil, convLift(errOpCode())
			}
			cur = &BasicBlock{Label: inst.ResultID}
			continue
		}
		if cur == nil {
			// Straight-line code outside any block.
			return nil, convLift(errOpCode())
		}
		class, known := OpClass(inst.Op)
		if !known {
			return nil, convLift(errOpCode())
		}
		if class == ClassTerminator {
			term, err := cx.LiftTerminator(inst)
			if err != nil {
				return nil, convLift(liftErr(err))
			}
			cur.Terminator = term
			blocks = append(blocks, *cur)
			cur = nil
			continue
		}
		plain, err := cx.LiftInstruction(inst)
		if err != nil {
			return nil, convLift(liftErr(err))
		}
		cur.Instructions = append(cur.Instructions, plain)
	}
	if cur != nil {
		// Body ended with an unterminated block.
		return nil, convLift(errOpCode())
	}
	return blocks, nil
}

// pairEntryPoint attaches the entry point declaration (and its execution
// mode) whose target id matches the function's result id.
func pairEntryPoint(fnID spv.Word, entries []EntryPoint, modes []ExecutionMode) *EntryPointInfo {
	if fnID == spv.NoResult {
		return nil
	}
	for _, ep := range entries {
		if ep.EntryPoint.IDRef() != fnID {
			continue
		}
		info := &EntryPointInfo{EntryPoint: ep}
		for _, em := range modes {
			if em.EntryPoint.IDRef() == fnID {
				info.Mode = &em
				break
			}
		}
		return info
	}
	return nil
}

func findByResultID(insts []raw.Instruction, id spv.Word) *raw.Instruction {
	if id == spv.NoResult {
		return nil
	}
	for i := range insts {
		if insts[i].ResultID == id {
			return &insts[i]
		}
	}
	return nil
}
