package sr

import "spvlift/internal/spv"

// Decoration is one decoration attached to a type, member or value. Kind
// selects the variant; the parameter fields below it are meaningful only
// for the kinds that declare them. Most decorations carry no parameters,
// single-literal decorations (SpecId, ArrayStride, MatrixStride, Location,
// Component, Index, Binding, DescriptorSet, Offset, ...) use Literal, and
// BuiltIn carries its own enum.
type Decoration struct {
	Kind spv.Decoration

	Literal uint32
	BuiltIn spv.BuiltIn
}

// decorationFromWords assembles a Decoration from a grammar-decoded kind
// and its trailing literal words.
func decorationFromWords(kind spv.Decoration, literals []uint32) Decoration {
	d := Decoration{Kind: kind}
	if len(literals) == 0 {
		return d
	}
	if kind == spv.DecorationBuiltIn {
		d.BuiltIn = spv.BuiltIn(literals[0])
		return d
	}
	d.Literal = literals[0]
	return d
}
