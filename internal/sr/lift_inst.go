package sr

import (
	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// LiftTerminator lifts a block-ending instruction. Opcodes outside the
// terminator class fail with an opcode error regardless of their operands.
func (cx *Context) LiftTerminator(inst *raw.Instruction) (Terminator, error) {
	if inst == nil {
		return Terminator{}, errOpCode()
	}
	info, ok := grammar[inst.Op]
	if !ok || info.Class != ClassTerminator {
		return Terminator{}, errOpCode()
	}
	fields, err := decodeOperands(info, inst.Operands)
	if err != nil {
		return Terminator{}, liftErr(err)
	}
	switch inst.Op {
	case spv.OpBranch:
		return Terminator{Kind: TermBranch, Branch: BranchTerm{
			Target: tokenOf[Value](fields[0]),
		}}, nil
	case spv.OpBranchConditional:
		return Terminator{Kind: TermBranchConditional, BranchConditional: BranchConditionalTerm{
			Condition: tokenOf[Value](fields[0]),
			True:      tokenOf[Value](fields[1]),
			False:     tokenOf[Value](fields[2]),
			Weights:   fields[3].Words,
		}}, nil
	case spv.OpSwitch:
		targets := make([]SwitchTarget, 0, len(fields[2].Pairs))
		for _, p := range fields[2].Pairs {
			targets = append(targets, SwitchTarget{Literal: p[0], Target: NewToken[Value](p[1])})
		}
		return Terminator{Kind: TermSwitch, Switch: SwitchTerm{
			Selector: tokenOf[Value](fields[0]),
			Default:  tokenOf[Value](fields[1]),
			Targets:  targets,
		}}, nil
	case spv.OpKill:
		return Terminator{Kind: TermKill}, nil
	case spv.OpReturn:
		return Terminator{Kind: TermReturn}, nil
	case spv.OpReturnValue:
		return Terminator{Kind: TermReturnValue, ReturnValue: ReturnValueTerm{
			Value: tokenOf[Value](fields[0]),
		}}, nil
	case spv.OpUnreachable:
		return Terminator{Kind: TermUnreachable}, nil
	default:
		return Terminator{}, errOpCode()
	}
}

// LiftInstruction lifts a plain straight-line instruction. Opcodes outside
// the plain-instruction class fail with an opcode error.
func (cx *Context) LiftInstruction(inst *raw.Instruction) (Instruction, error) {
	if inst == nil {
		return Instruction{}, errOpCode()
	}
	info, ok := grammar[inst.Op]
	if !ok || info.Class != ClassInstruction {
		return Instruction{}, errOpCode()
	}
	fields, err := decodeOperands(info, inst.Operands)
	if err != nil {
		return Instruction{}, liftErr(err)
	}
	switch inst.Op {
	case spv.OpNop:
		return Instruction{Kind: InstrNop}, nil
	case spv.OpUndef:
		return Instruction{Kind: InstrUndef}, nil
	case spv.OpLabel:
		return Instruction{Kind: InstrLabel}, nil
	case spv.OpVariable:
		v := VariableInstr{StorageClass: spv.StorageClass(fields[0].Word())}
		if fields[1].Present {
			v.HasInitializer = true
			v.Initializer = tokenOf[Value](fields[1])
		}
		return Instruction{Kind: InstrVariable, Variable: v}, nil
	case spv.OpLoad:
		ld := LoadInstr{Pointer: tokenOf[Value](fields[0])}
		if fields[1].Present {
			ld.HasAccess = true
			ld.MemoryAccess = spv.MemoryAccess(fields[1].Word())
		}
		return Instruction{Kind: InstrLoad, Load: ld}, nil
	case spv.OpStore:
		st := StoreInstr{
			Pointer: tokenOf[Value](fields[0]),
			Object:  tokenOf[Value](fields[1]),
		}
		if fields[2].Present {
			st.HasAccess = true
			st.MemoryAccess = spv.MemoryAccess(fields[2].Word())
		}
		return Instruction{Kind: InstrStore, Store: st}, nil
	case spv.OpAccessChain:
		return Instruction{Kind: InstrAccessChain, AccessChain: AccessChainInstr{
			Base:    tokenOf[Value](fields[0]),
			Indexes: tokensOf[Value](fields[1]),
		}}, nil
	case spv.OpFunctionCall:
		return Instruction{Kind: InstrFunctionCall, FunctionCall: FunctionCallInstr{
			Function:  tokenOf[Function](fields[0]),
			Arguments: tokensOf[Value](fields[1]),
		}}, nil
	case spv.OpDecorate:
		return Instruction{Kind: InstrDecorate, Decorate: DecorateInstr{
			Target:     tokenOf[Value](fields[0]),
			Decoration: decorationFromWords(spv.Decoration(fields[1].Word()), fields[2].Words),
		}}, nil
	case spv.OpMemberDecorate:
		return Instruction{Kind: InstrMemberDecorate, MemberDecorate: MemberDecorateInstr{
			StructType: tokenOf[Type](fields[0]),
			Member:     fields[1].Word(),
			Decoration: decorationFromWords(spv.Decoration(fields[2].Word()), fields[3].Words),
		}}, nil
	case spv.OpVectorShuffle:
		return Instruction{Kind: InstrVectorShuffle, VectorShuffle: VectorShuffleInstr{
			Vector1:    tokenOf[Value](fields[0]),
			Vector2:    tokenOf[Value](fields[1]),
			Components: fields[2].Words,
		}}, nil
	case spv.OpCompositeConstruct:
		return Instruction{Kind: InstrCompositeConstruct, CompositeConstruct: CompositeConstructInstr{
			Constituents: tokensOf[Value](fields[0]),
		}}, nil
	case spv.OpCompositeExtract:
		return Instruction{Kind: InstrCompositeExtract, CompositeExtract: CompositeExtractInstr{
			Composite: tokenOf[Value](fields[0]),
			Indexes:   fields[1].Words,
		}}, nil
	case spv.OpIAdd, spv.OpFAdd, spv.OpISub, spv.OpFSub,
		spv.OpIMul, spv.OpFMul, spv.OpUDiv, spv.OpSDiv, spv.OpFDiv:
		return Instruction{Kind: InstrBinary, Binary: BinaryInstr{
			Op:       inst.Op,
			Operand1: tokenOf[Value](fields[0]),
			Operand2: tokenOf[Value](fields[1]),
		}}, nil
	case spv.OpPhi:
		pairs := make([]PhiPair, 0, len(fields[0].Pairs))
		for _, p := range fields[0].Pairs {
			pairs = append(pairs, PhiPair{
				Variable: NewToken[Value](p[0]),
				Parent:   NewToken[Value](p[1]),
			})
		}
		return Instruction{Kind: InstrPhi, Phi: PhiInstr{Pairs: pairs}}, nil
	case spv.OpLoopMerge:
		return Instruction{Kind: InstrLoopMerge, LoopMerge: LoopMergeInstr{
			MergeBlock:     tokenOf[Value](fields[0]),
			ContinueTarget: tokenOf[Value](fields[1]),
			LoopControl:    spv.LoopControl(fields[2].Word()),
		}}, nil
	case spv.OpSelectionMerge:
		return Instruction{Kind: InstrSelectionMerge, SelectionMerge: SelectionMergeInstr{
			MergeBlock:       tokenOf[Value](fields[0]),
			SelectionControl: spv.SelectionControl(fields[1].Word()),
		}}, nil
	default:
		return Instruction{}, errOpCode()
	}
}
