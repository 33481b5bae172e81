package sr

import "spvlift/internal/spv"

// TermKind enumerates terminator variants. Terminators and plain
// instructions are disjoint: an opcode lives in exactly one of the two
// unions, never both.
type TermKind uint8

const (
	// TermBranch represents OpBranch.
	TermBranch TermKind = iota
	// TermBranchConditional represents OpBranchConditional.
	TermBranchConditional
	// TermSwitch represents OpSwitch.
	TermSwitch
	// TermKill represents OpKill.
	TermKill
	// TermReturn represents OpReturn.
	TermReturn
	// TermReturnValue represents OpReturnValue.
	TermReturnValue
	// TermUnreachable represents OpUnreachable.
	TermUnreachable
)

// Terminator is the single control-transferring instruction ending a basic
// block.
type Terminator struct {
	Kind TermKind

	Branch            BranchTerm
	BranchConditional BranchConditionalTerm
	Switch            SwitchTerm
	ReturnValue       ReturnValueTerm
}

// BranchTerm represents an unconditional branch.
type BranchTerm struct {
	Target Token[Value]
}

// BranchConditionalTerm represents a two-way conditional branch.
type BranchConditionalTerm struct {
	Condition Token[Value]
	True      Token[Value]
	False     Token[Value]
	Weights   []uint32
}

// SwitchTarget is one (literal, label) arm of a switch.
type SwitchTarget struct {
	Literal uint32
	Target  Token[Value]
}

// SwitchTerm represents a multi-way branch over an integer selector.
type SwitchTerm struct {
	Selector Token[Value]
	Default  Token[Value]
	Targets  []SwitchTarget
}

// ReturnValueTerm represents a value-carrying return.
type ReturnValueTerm struct {
	Value Token[Value]
}

// InstrKind enumerates plain instruction variants.
type InstrKind uint8

const (
	// InstrNop represents OpNop.
	InstrNop InstrKind = iota
	// InstrUndef represents OpUndef.
	InstrUndef
	// InstrVariable represents OpVariable.
	InstrVariable
	// InstrLoad represents OpLoad.
	InstrLoad
	// InstrStore represents OpStore.
	InstrStore
	// InstrAccessChain represents OpAccessChain.
	InstrAccessChain
	// InstrFunctionCall represents OpFunctionCall.
	InstrFunctionCall
	// InstrDecorate represents OpDecorate.
	InstrDecorate
	// InstrMemberDecorate represents OpMemberDecorate.
	InstrMemberDecorate
	// InstrVectorShuffle represents OpVectorShuffle.
	InstrVectorShuffle
	// InstrCompositeConstruct represents OpCompositeConstruct.
	InstrCompositeConstruct
	// InstrCompositeExtract represents OpCompositeExtract.
	InstrCompositeExtract
	// InstrBinary represents the two-operand arithmetic opcodes; the exact
	// opcode is preserved in the payload.
	InstrBinary
	// InstrPhi represents OpPhi.
	InstrPhi
	// InstrLoopMerge represents OpLoopMerge.
	InstrLoopMerge
	// InstrSelectionMerge represents OpSelectionMerge.
	InstrSelectionMerge
	// InstrLabel represents OpLabel.
	InstrLabel
)

// Instruction is one straight-line instruction inside a basic block.
type Instruction struct {
	Kind InstrKind

	Variable           VariableInstr
	Load               LoadInstr
	Store              StoreInstr
	AccessChain        AccessChainInstr
	FunctionCall       FunctionCallInstr
	Decorate           DecorateInstr
	MemberDecorate     MemberDecorateInstr
	VectorShuffle      VectorShuffleInstr
	CompositeConstruct CompositeConstructInstr
	CompositeExtract   CompositeExtractInstr
	Binary             BinaryInstr
	Phi                PhiInstr
	LoopMerge          LoopMergeInstr
	SelectionMerge     SelectionMergeInstr
}

// VariableInstr represents a variable allocation.
type VariableInstr struct {
	StorageClass   spv.StorageClass
	HasInitializer bool
	Initializer    Token[Value]
}

// LoadInstr represents a load through a pointer.
type LoadInstr struct {
	Pointer      Token[Value]
	HasAccess    bool
	MemoryAccess spv.MemoryAccess
}

// StoreInstr represents a store through a pointer.
type StoreInstr struct {
	Pointer      Token[Value]
	Object       Token[Value]
	HasAccess    bool
	MemoryAccess spv.MemoryAccess
}

// AccessChainInstr represents a pointer offset computation.
type AccessChainInstr struct {
	Base    Token[Value]
	Indexes []Token[Value]
}

// FunctionCallInstr represents a direct function call.
type FunctionCallInstr struct {
	Function  Token[Function]
	Arguments []Token[Value]
}

// DecorateInstr attaches a decoration to a result id.
type DecorateInstr struct {
	Target     Token[Value]
	Decoration Decoration
}

// MemberDecorateInstr attaches a decoration to a struct member.
type MemberDecorateInstr struct {
	StructType Token[Type]
	Member     uint32
	Decoration Decoration
}

// VectorShuffleInstr represents a component shuffle of two vectors.
type VectorShuffleInstr struct {
	Vector1    Token[Value]
	Vector2    Token[Value]
	Components []uint32
}

// CompositeConstructInstr builds a composite from constituents.
type CompositeConstructInstr struct {
	Constituents []Token[Value]
}

// CompositeExtractInstr extracts a part of a composite.
type CompositeExtractInstr struct {
	Composite Token[Value]
	Indexes   []uint32
}

// BinaryInstr represents one of the two-operand arithmetic opcodes.
type BinaryInstr struct {
	Op       spv.Op
	Operand1 Token[Value]
	Operand2 Token[Value]
}

// PhiPair is one (variable, parent block) incoming edge of a phi.
type PhiPair struct {
	Variable Token[Value]
	Parent   Token[Value]
}

// PhiInstr merges values flowing in from predecessor blocks.
type PhiInstr struct {
	Pairs []PhiPair
}

// LoopMergeInstr declares the merge and continue blocks of a loop.
type LoopMergeInstr struct {
	MergeBlock     Token[Value]
	ContinueTarget Token[Value]
	LoopControl    spv.LoopControl
}

// SelectionMergeInstr declares the merge block of a selection construct.
type SelectionMergeInstr struct {
	MergeBlock       Token[Value]
	SelectionControl spv.SelectionControl
}
