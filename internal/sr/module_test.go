package sr

import (
	"errors"
	"testing"

	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// shaderModule builds a minimal well-formed fragment shader: one void(void)
// function with a single block that loads, stores and returns.
func shaderModule() *raw.Module {
	return &raw.Module{
		Header: &raw.ModuleHeader{Magic: 0x07230203, Version: 0x00010000, Bound: 20},
		Capabilities: []raw.Instruction{
			{Op: spv.OpCapability, Operands: []raw.Operand{
				raw.Enum(raw.KindCapability, uint32(spv.CapabilityShader)),
			}},
		},
		Extensions: []raw.Instruction{
			{Op: spv.OpExtension, Operands: []raw.Operand{raw.LiteralString("SPV_KHR_storage_buffer_storage_class")}},
		},
		ExtInstImports: []raw.Instruction{
			{Op: spv.OpExtInstImport, ResultID: 1, Operands: []raw.Operand{raw.LiteralString("GLSL.std.450")}},
		},
		MemoryModel: &raw.Instruction{Op: spv.OpMemoryModel, Operands: []raw.Operand{
			raw.Enum(raw.KindAddressingModel, uint32(spv.AddressingLogical)),
			raw.Enum(raw.KindMemoryModel, uint32(spv.MemoryModelGLSL450)),
		}},
		EntryPoints: []raw.Instruction{
			{Op: spv.OpEntryPoint, Operands: []raw.Operand{
				raw.Enum(raw.KindExecutionModel, uint32(spv.ExecutionModelFragment)),
				raw.IDRef(10),
				raw.LiteralString("main"),
			}},
		},
		ExecutionModes: []raw.Instruction{
			{Op: spv.OpExecutionMode, Operands: []raw.Operand{
				raw.IDRef(10),
				raw.Enum(raw.KindExecutionMode, uint32(spv.ExecutionModeOriginUpperLeft)),
			}},
		},
		TypesGlobalValues: []raw.Instruction{
			{Op: spv.OpTypeVoid, ResultID: 2},
			{Op: spv.OpTypeFunction, ResultID: 3, Operands: []raw.Operand{raw.IDRef(2)}},
		},
		Functions: []raw.Function{
			{
				Def: &raw.Instruction{Op: spv.OpFunction, ResultType: 2, ResultID: 10, Operands: []raw.Operand{
					raw.Enum(raw.KindFunctionControl, uint32(spv.FunctionControlNone)),
					raw.IDRef(3),
				}},
				Body: []raw.Instruction{
					{Op: spv.OpLabel, ResultID: 11},
					{Op: spv.OpLoad, ResultType: 2, ResultID: 12, Operands: []raw.Operand{raw.IDRef(5)}},
					{Op: spv.OpStore, Operands: []raw.Operand{raw.IDRef(6), raw.IDRef(12)}},
					{Op: spv.OpReturn},
				},
			},
		},
	}
}

func requireConvErr(t *testing.T, err error, kind ConversionErrorKind) {
	t.Helper()
	var ce *ConversionError
	if !errors.As(err, &ce) || ce.Kind != kind {
		t.Fatalf("expected conversion error kind %d, got %v", kind, err)
	}
}

func TestFromRawWellFormed(t *testing.T) {
	m, err := FromRaw(shaderModule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Header.Bound != 20 {
		t.Fatalf("header must be carried over: %+v", m.Header)
	}
	if len(m.Capabilities) != 1 || m.Capabilities[0].Capability != spv.CapabilityShader {
		t.Fatalf("unexpected capabilities: %+v", m.Capabilities)
	}
	if len(m.Extensions) != 1 || m.Extensions[0].Name != "SPV_KHR_storage_buffer_storage_class" {
		t.Fatalf("unexpected extensions: %+v", m.Extensions)
	}
	if len(m.ExtInstImports) != 1 || m.ExtInstImports[0].Name != "GLSL.std.450" {
		t.Fatalf("unexpected imports: %+v", m.ExtInstImports)
	}
	if m.MemoryModel.MemoryModel != spv.MemoryModelGLSL450 {
		t.Fatalf("unexpected memory model: %+v", m.MemoryModel)
	}
	if len(m.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(m.Functions))
	}
}

func TestFromRawFunctionShape(t *testing.T) {
	m, err := FromRaw(shaderModule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := m.Functions[0]
	if fn.Result.IDRef() != 2 {
		t.Fatalf("result type must resolve through the function type: %v", fn.Result)
	}
	if len(fn.Parameters) != 0 {
		t.Fatalf("void(void) has no parameters: %+v", fn.Parameters)
	}
	if len(fn.Blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(fn.Blocks))
	}
	b := fn.Blocks[0]
	if b.Label != 11 {
		t.Fatalf("block label must be the OpLabel result id, got %d", b.Label)
	}
	if len(b.Instructions) != 2 || b.Instructions[0].Kind != InstrLoad || b.Instructions[1].Kind != InstrStore {
		t.Fatalf("unexpected block body: %+v", b.Instructions)
	}
	if b.Terminator.Kind != TermReturn {
		t.Fatalf("unexpected terminator: %+v", b.Terminator)
	}
}

func TestFromRawEntryPointPairing(t *testing.T) {
	m, err := FromRaw(shaderModule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info := m.Functions[0].Entry
	if info == nil {
		t.Fatalf("the function is declared as an entry point and must be paired")
	}
	if info.EntryPoint.Name != "main" || info.EntryPoint.ExecutionModel != spv.ExecutionModelFragment {
		t.Fatalf("unexpected entry point: %+v", info.EntryPoint)
	}
	if info.Mode == nil || info.Mode.Mode != spv.ExecutionModeOriginUpperLeft {
		t.Fatalf("execution mode not paired: %+v", info.Mode)
	}
}

func TestFromRawEntryPointWithoutExecutionMode(t *testing.T) {
	in := shaderModule()
	in.ExecutionModes = nil
	m, err := FromRaw(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info := m.Functions[0].Entry
	if info == nil {
		t.Fatalf("the entry point declaration alone must still be paired")
	}
	if info.Mode != nil {
		t.Fatalf("no OpExecutionMode was declared, got mode %+v", *info.Mode)
	}
}

func TestFromRawPreservesFunctionOrder(t *testing.T) {
	raw1 := shaderModule()
	second := raw1.Functions[0]
	second.Def = &raw.Instruction{Op: spv.OpFunction, ResultType: 2, ResultID: 15, Operands: []raw.Operand{
		raw.Enum(raw.KindFunctionControl, uint32(spv.FunctionControlInline)),
		raw.IDRef(3),
	}}
	second.Body = []raw.Instruction{
		{Op: spv.OpLabel, ResultID: 16},
		{Op: spv.OpReturn},
	}
	raw1.Functions = append(raw1.Functions, second)

	m, err := FromRaw(raw1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Functions) != 2 {
		t.Fatalf("expected two functions, got %d", len(m.Functions))
	}
	if m.Functions[0].Entry == nil || m.Functions[1].Entry != nil {
		t.Fatalf("pairing must follow declaration ids, not position")
	}
	if m.Functions[1].Control != spv.FunctionControlInline {
		t.Fatalf("function order lost: %+v", m.Functions[1])
	}
}

func TestFromRawMissingHeader(t *testing.T) {
	in := shaderModule()
	in.Header = nil
	_, err := FromRaw(in)
	requireConvErr(t, err, ConvMissingHeader)
}

func TestFromRawMissingMemoryModel(t *testing.T) {
	in := shaderModule()
	in.MemoryModel = nil
	_, err := FromRaw(in)
	requireConvErr(t, err, ConvMissingMemoryModel)
}

func TestFromRawMissingFunctionDef(t *testing.T) {
	in := shaderModule()
	in.Functions[0].Def = nil
	_, err := FromRaw(in)
	requireConvErr(t, err, ConvMissingFunction)
}

func TestFromRawUnresolvableFunctionType(t *testing.T) {
	in := shaderModule()
	in.TypesGlobalValues = in.TypesGlobalValues[:1]
	_, err := FromRaw(in)
	requireConvErr(t, err, ConvMissingFunctionType)
}

func TestFromRawBadInstructionWrapsLift(t *testing.T) {
	in := shaderModule()
	in.Capabilities[0].Operands = nil
	_, err := FromRaw(in)
	requireConvErr(t, err, ConvLift)
	var le *LiftError
	if !errors.As(err, &le) || le.Kind != LiftBadOperand {
		t.Fatalf("the lift failure must stay reachable: %v", err)
	}
}

func TestFromRawUnterminatedBlock(t *testing.T) {
	in := shaderModule()
	body := in.Functions[0].Body
	in.Functions[0].Body = body[:len(body)-1]
	_, err := FromRaw(in)
	requireConvErr(t, err, ConvLift)
}

func TestFromRawInstructionOutsideBlock(t *testing.T) {
	in := shaderModule()
	in.Functions[0].Body = []raw.Instruction{
		{Op: spv.OpStore, Operands: []raw.Operand{raw.IDRef(6), raw.IDRef(12)}},
	}
	_, err := FromRaw(in)
	requireConvErr(t, err, ConvLift)
}

func TestFromRawDoesNotMutateInput(t *testing.T) {
	in := shaderModule()
	if _, err := FromRaw(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.Functions[0].Body) != 4 {
		t.Fatalf("input body changed: %d instructions", len(in.Functions[0].Body))
	}
	if in.Functions[0].Def.ResultID != 10 {
		t.Fatalf("input definition changed: %+v", in.Functions[0].Def)
	}
}
