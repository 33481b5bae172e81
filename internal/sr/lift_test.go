package sr

import (
	"errors"
	"testing"

	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

func requireLiftOpCode(t *testing.T, err error) {
	t.Helper()
	var le *LiftError
	if !errors.As(err, &le) || le.Kind != LiftBadOpCode {
		t.Fatalf("expected an opcode lift error, got %v", err)
	}
}

func TestOpCodeGuard(t *testing.T) {
	cx := NewContext()
	bogus := &raw.Instruction{Op: spv.OpNop}

	cases := []struct {
		name string
		lift func() error
	}{
		{"capability", func() error { _, err := cx.LiftCapability(bogus); return err }},
		{"extension", func() error { _, err := cx.LiftExtension(bogus); return err }},
		{"ext inst import", func() error { _, err := cx.LiftExtInstImport(bogus); return err }},
		{"memory model", func() error { _, err := cx.LiftMemoryModel(bogus); return err }},
		{"entry point", func() error { _, err := cx.LiftEntryPoint(bogus); return err }},
		{"execution mode", func() error { _, err := cx.LiftExecutionMode(bogus); return err }},
		{"function def", func() error { _, err := cx.LiftFunctionDef(bogus); return err }},
		{"type", func() error { _, err := cx.LiftType(bogus); return err }},
		{"type function", func() error { _, err := cx.LiftTypeFunction(bogus); return err }},
		{"terminator", func() error { _, err := cx.LiftTerminator(bogus); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireLiftOpCode(t, tc.lift())
		})
	}
}

func TestLiftCapability(t *testing.T) {
	cx := NewContext()
	c, err := cx.LiftCapability(&raw.Instruction{
		Op:       spv.OpCapability,
		Operands: []raw.Operand{raw.Enum(raw.KindCapability, uint32(spv.CapabilityShader))},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Capability != spv.CapabilityShader {
		t.Fatalf("expected Shader, got %v", c.Capability)
	}
}

func TestLiftCapabilityMissingOperand(t *testing.T) {
	cx := NewContext()
	_, err := cx.LiftCapability(&raw.Instruction{Op: spv.OpCapability})
	var le *LiftError
	if !errors.As(err, &le) || le.Kind != LiftBadOperand || le.Operand != OperandMissing {
		t.Fatalf("expected a missing-operand lift error, got %v", err)
	}
	if !errors.Is(err, OperandMissing) {
		t.Fatalf("operand error must be reachable through the chain")
	}
}

func TestLiftCapabilityWrongOperandKind(t *testing.T) {
	cx := NewContext()
	_, err := cx.LiftCapability(&raw.Instruction{
		Op:       spv.OpCapability,
		Operands: []raw.Operand{raw.IDRef(1)},
	})
	if !errors.Is(err, OperandWrong) {
		t.Fatalf("expected a wrong-kind operand error, got %v", err)
	}
}

func TestLiftMemoryModel(t *testing.T) {
	cx := NewContext()
	mm, err := cx.LiftMemoryModel(&raw.Instruction{
		Op: spv.OpMemoryModel,
		Operands: []raw.Operand{
			raw.Enum(raw.KindAddressingModel, uint32(spv.AddressingLogical)),
			raw.Enum(raw.KindMemoryModel, uint32(spv.MemoryModelGLSL450)),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mm.AddressingModel != spv.AddressingLogical || mm.MemoryModel != spv.MemoryModelGLSL450 {
		t.Fatalf("unexpected memory model: %+v", mm)
	}
}

func TestLiftEntryPoint(t *testing.T) {
	cx := NewContext()
	ep, err := cx.LiftEntryPoint(&raw.Instruction{
		Op: spv.OpEntryPoint,
		Operands: []raw.Operand{
			raw.Enum(raw.KindExecutionModel, uint32(spv.ExecutionModelFragment)),
			raw.IDRef(4),
			raw.LiteralString("main"),
			raw.IDRef(7),
			raw.IDRef(8),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.ExecutionModel != spv.ExecutionModelFragment || ep.Name != "main" {
		t.Fatalf("unexpected entry point: %+v", ep)
	}
	if ep.EntryPoint.IDRef() != 4 {
		t.Fatalf("entry point target must keep its raw id")
	}
	if len(ep.Interface) != 2 || ep.Interface[0].IDRef() != 7 || ep.Interface[1].IDRef() != 8 {
		t.Fatalf("interface list must preserve order: %+v", ep.Interface)
	}
}

func TestLiftExecutionModeNoLiterals(t *testing.T) {
	cx := NewContext()
	em, err := cx.LiftExecutionMode(&raw.Instruction{
		Op: spv.OpExecutionMode,
		Operands: []raw.Operand{
			raw.IDRef(4),
			raw.Enum(raw.KindExecutionMode, uint32(spv.ExecutionModeOriginUpperLeft)),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if em.Mode != spv.ExecutionModeOriginUpperLeft || len(em.Literals) != 0 {
		t.Fatalf("unexpected execution mode: %+v", em)
	}
}

func TestLiftTypeInternsEqualInstructions(t *testing.T) {
	cx := NewContext()
	intType := func(id spv.Word) *raw.Instruction {
		return &raw.Instruction{
			Op:       spv.OpTypeInt,
			ResultID: id,
			Operands: []raw.Operand{raw.LiteralInt(32), raw.LiteralInt(1)},
		}
	}
	a, err := cx.LiftType(intType(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := cx.LiftType(intType(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("equal type instructions must intern to one token")
	}
	if tok, ok := cx.TypeByID(1); !ok || tok != a {
		t.Fatalf("result id 1 must map to the interned token")
	}
	if tok, ok := cx.TypeByID(2); !ok || tok != a {
		t.Fatalf("result id 2 must map to the same token")
	}
}

func TestLiftTypeVector(t *testing.T) {
	cx := NewContext()
	tok, err := cx.LiftType(&raw.Instruction{
		Op:       spv.OpTypeVector,
		ResultID: 3,
		Operands: []raw.Operand{raw.IDRef(2), raw.LiteralInt(4)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ty, ok := cx.Type(tok)
	if !ok || !ty.IsVector() {
		t.Fatalf("expected a vector type, got %+v", ty)
	}
	if ty.Vector.Component.IDRef() != 2 || ty.Vector.Count != 4 {
		t.Fatalf("unexpected vector payload: %+v", ty.Vector)
	}
}

func TestLiftTypeImageOptionalAccess(t *testing.T) {
	cx := NewContext()
	base := []raw.Operand{
		raw.IDRef(2),
		raw.Enum(raw.KindDim, uint32(spv.Dim2D)),
		raw.LiteralInt(0),
		raw.LiteralInt(0),
		raw.LiteralInt(0),
		raw.LiteralInt(1),
		raw.Enum(raw.KindImageFormat, uint32(spv.ImageFormatUnknown)),
	}
	without, err := cx.LiftType(&raw.Instruction{Op: spv.OpTypeImage, Operands: base})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withAccess, err := cx.LiftType(&raw.Instruction{
		Op:       spv.OpTypeImage,
		Operands: append(append([]raw.Operand{}, base...), raw.Enum(raw.KindAccessQualifier, uint32(spv.AccessReadOnly))),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if without == withAccess {
		t.Fatalf("the optional access qualifier must affect identity")
	}
	ty, _ := cx.Type(withAccess)
	if !ty.Image.HasAccess || ty.Image.Access != spv.AccessReadOnly {
		t.Fatalf("access qualifier lost: %+v", ty.Image)
	}
}

func TestLiftTypeRejectsTypeFunction(t *testing.T) {
	cx := NewContext()
	_, err := cx.LiftType(&raw.Instruction{
		Op:       spv.OpTypeFunction,
		Operands: []raw.Operand{raw.IDRef(1)},
	})
	requireLiftOpCode(t, err)
}

func TestLiftTypeFunction(t *testing.T) {
	cx := NewContext()
	fty, err := cx.LiftTypeFunction(&raw.Instruction{
		Op:       spv.OpTypeFunction,
		ResultID: 5,
		Operands: []raw.Operand{raw.IDRef(1), raw.IDRef(2), raw.IDRef(3)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fty.ReturnType.IDRef() != 1 {
		t.Fatalf("unexpected return type: %v", fty.ReturnType)
	}
	if len(fty.ParameterTypes) != 2 || fty.ParameterTypes[0].IDRef() != 2 || fty.ParameterTypes[1].IDRef() != 3 {
		t.Fatalf("parameter order must be preserved: %+v", fty.ParameterTypes)
	}
}

func TestLiftTerminatorVariants(t *testing.T) {
	cx := NewContext()

	term, err := cx.LiftTerminator(&raw.Instruction{
		Op:       spv.OpBranch,
		Operands: []raw.Operand{raw.IDRef(9)},
	})
	if err != nil || term.Kind != TermBranch || term.Branch.Target.IDRef() != 9 {
		t.Fatalf("unexpected branch: %+v %v", term, err)
	}

	term, err = cx.LiftTerminator(&raw.Instruction{
		Op: spv.OpSwitch,
		Operands: []raw.Operand{
			raw.IDRef(1),
			raw.IDRef(2),
			raw.PairLiteralIDRef(0, 3),
			raw.PairLiteralIDRef(1, 4),
		},
	})
	if err != nil || term.Kind != TermSwitch {
		t.Fatalf("unexpected switch: %+v %v", term, err)
	}
	if len(term.Switch.Targets) != 2 || term.Switch.Targets[1].Literal != 1 || term.Switch.Targets[1].Target.IDRef() != 4 {
		t.Fatalf("switch targets must preserve pairs: %+v", term.Switch.Targets)
	}

	term, err = cx.LiftTerminator(&raw.Instruction{Op: spv.OpReturn})
	if err != nil || term.Kind != TermReturn {
		t.Fatalf("unexpected return: %+v %v", term, err)
	}
}

func TestLiftTerminatorRejectsPlainInstruction(t *testing.T) {
	cx := NewContext()
	_, err := cx.LiftTerminator(&raw.Instruction{Op: spv.OpLoad})
	requireLiftOpCode(t, err)
}

func TestLiftInstructionVariants(t *testing.T) {
	cx := NewContext()

	in, err := cx.LiftInstruction(&raw.Instruction{
		Op: spv.OpStore,
		Operands: []raw.Operand{
			raw.IDRef(1),
			raw.IDRef(2),
			raw.Enum(raw.KindMemoryAccess, uint32(spv.MemoryAccessVolatile)),
		},
	})
	if err != nil || in.Kind != InstrStore {
		t.Fatalf("unexpected store: %+v %v", in, err)
	}
	if !in.Store.HasAccess || in.Store.MemoryAccess != spv.MemoryAccessVolatile {
		t.Fatalf("memory access must survive: %+v", in.Store)
	}

	in, err = cx.LiftInstruction(&raw.Instruction{
		Op: spv.OpPhi,
		Operands: []raw.Operand{
			raw.PairIDRefIDRef(1, 10),
			raw.PairIDRefIDRef(2, 11),
		},
	})
	if err != nil || in.Kind != InstrPhi || len(in.Phi.Pairs) != 2 {
		t.Fatalf("unexpected phi: %+v %v", in, err)
	}
	if in.Phi.Pairs[0].Variable.IDRef() != 1 || in.Phi.Pairs[0].Parent.IDRef() != 10 {
		t.Fatalf("phi pair order lost: %+v", in.Phi.Pairs)
	}

	in, err = cx.LiftInstruction(&raw.Instruction{
		Op:       spv.OpIAdd,
		Operands: []raw.Operand{raw.IDRef(5), raw.IDRef(6)},
	})
	if err != nil || in.Kind != InstrBinary || in.Binary.Op != spv.OpIAdd {
		t.Fatalf("unexpected binary: %+v %v", in, err)
	}

	in, err = cx.LiftInstruction(&raw.Instruction{
		Op: spv.OpDecorate,
		Operands: []raw.Operand{
			raw.IDRef(3),
			raw.Enum(raw.KindDecoration, uint32(spv.DecorationLocation)),
			raw.LiteralInt(2),
		},
	})
	if err != nil || in.Kind != InstrDecorate {
		t.Fatalf("unexpected decorate: %+v %v", in, err)
	}
	if in.Decorate.Decoration.Kind != spv.DecorationLocation || in.Decorate.Decoration.Literal != 2 {
		t.Fatalf("decoration parameters lost: %+v", in.Decorate.Decoration)
	}
}

func TestLiftInstructionRejectsTerminator(t *testing.T) {
	cx := NewContext()
	_, err := cx.LiftInstruction(&raw.Instruction{Op: spv.OpReturn})
	requireLiftOpCode(t, err)
}
