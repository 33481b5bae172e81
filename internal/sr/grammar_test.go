package sr

import (
	"testing"

	"spvlift/internal/raw"
)

func TestGrammarClassesAreDisjoint(t *testing.T) {
	var terms, instrs int
	for op, info := range grammar {
		switch info.Class {
		case ClassTerminator:
			terms++
		case ClassInstruction:
			instrs++
		}
		// The map holds one row per opcode, so membership in both behavioral
		// sets is impossible by construction. The lifts still must agree
		// with the table: the wrong lift refuses at the opcode check.
		cx := NewContext()
		if info.Class == ClassTerminator {
			_, err := cx.LiftInstruction(&raw.Instruction{Op: op})
			requireLiftOpCode(t, err)
		}
		if info.Class == ClassInstruction {
			_, err := cx.LiftTerminator(&raw.Instruction{Op: op})
			requireLiftOpCode(t, err)
		}
	}
	if terms == 0 || instrs == 0 {
		t.Fatalf("grammar must carry both terminators and plain instructions")
	}
}

func TestGrammarFieldShapes(t *testing.T) {
	for op, info := range grammar {
		sawOptional := false
		for i, f := range info.Fields {
			if f.Kind == raw.KindLiteralContext {
				t.Fatalf("%v field %q: context-dependent literals have no generic decoding", op, f.Name)
			}
			if sawOptional && f.Quant == QuantOne {
				t.Fatalf("%v field %q: a required field cannot follow an optional one", op, f.Name)
			}
			if f.Quant != QuantOne {
				sawOptional = true
			}
			if f.Quant == QuantMany && i != len(info.Fields)-1 {
				t.Fatalf("%v field %q: a repeated field must be last", op, f.Name)
			}
		}
	}
}

func TestGrammarConstantRowsAreOpaque(t *testing.T) {
	for op, info := range grammar {
		if info.Class == ClassConstant && len(info.Fields) != 0 {
			t.Fatalf("%v: constant rows must not declare decodable fields", op)
		}
	}
}

func TestGrammarRefFieldsAreIDRefs(t *testing.T) {
	for op, info := range grammar {
		for _, f := range info.Fields {
			if f.Ref == RefNone {
				continue
			}
			if f.Kind != raw.KindIDRef {
				t.Fatalf("%v field %q: a reference field must consume an id operand", op, f.Name)
			}
		}
	}
}

func TestInfoUnknownOpcode(t *testing.T) {
	if _, ok := Info(0xFFFF); ok {
		t.Fatalf("unknown opcodes must not resolve to grammar rows")
	}
	if _, ok := OpClass(0xFFFF); ok {
		t.Fatalf("unknown opcodes must not resolve to a class")
	}
}
