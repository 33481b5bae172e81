package sr

import (
	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// FieldValue is the decoded result of one declared field. Words holds ids,
// enum values and single-word literals; Strs holds string literals; Pairs
// holds atomic two-word units. A required field always has exactly one
// item, an optional field zero or one, a repeated field any number.
type FieldValue struct {
	Field   Field
	Present bool
	Words   []spv.Word
	Strs    []string
	Pairs   [][2]spv.Word
}

// Word returns the single word of a required field.
func (fv FieldValue) Word() spv.Word {
	return fv.Words[0]
}

// Str returns the single string of a required field.
func (fv FieldValue) Str() string {
	return fv.Strs[0]
}

func (fv *FieldValue) store(op raw.Operand) {
	switch op.Kind {
	case raw.KindPairLiteralIDRef, raw.KindPairIDRefLiteral, raw.KindPairIDRefIDRef:
		fv.Pairs = append(fv.Pairs, [2]spv.Word{op.A, op.B})
	case raw.KindLiteralString:
		fv.Strs = append(fv.Strs, op.Str)
	default:
		fv.Words = append(fv.Words, op.Word)
	}
	fv.Present = true
}

// decodeOperands is the generic decode engine: it advances one cursor over
// the flat operand sequence, consuming per declared field according to its
// quantifier. All lift operations go through it; per-opcode code only maps
// the decoded fields onto typed structs.
func decodeOperands(info OpInfo, ops []raw.Operand) ([]FieldValue, error) {
	c := NewCursor(ops)
	out := make([]FieldValue, len(info.Fields))
	for i, f := range info.Fields {
		fv := FieldValue{Field: f}
		switch f.Quant {
		case QuantOne:
			op, err := c.Require(f.Kind)
			if err != nil {
				return nil, err
			}
			fv.store(op)
		case QuantOpt:
			if op, ok := c.Optional(f.Kind); ok {
				fv.store(op)
			}
		case QuantMany:
			for _, op := range c.Repeated(f.Kind) {
				fv.store(op)
			}
		}
		out[i] = fv
	}
	return out, nil
}

// tokenOf wraps a decoded reference word as an opaque token of category T.
func tokenOf[T any](fv FieldValue) Token[T] {
	return NewToken[T](fv.Word())
}

// tokensOf wraps every decoded reference word of a repeated field.
func tokensOf[T any](fv FieldValue) []Token[T] {
	if len(fv.Words) == 0 {
		return nil
	}
	out := make([]Token[T], len(fv.Words))
	for i, w := range fv.Words {
		out[i] = NewToken[T](w)
	}
	return out
}
