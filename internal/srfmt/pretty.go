package srfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"spvlift/internal/spv"
	"spvlift/internal/sr"
)

var (
	sectionColor = color.New(color.FgCyan, color.Bold)
	entryColor   = color.New(color.FgGreen)
	termColor    = color.New(color.FgYellow)
)

// Pretty writes a human-readable dump of a structured module:
// module-level declarations first, then each function as a header line,
// entry point pairing and basic blocks with their terminators.
func Pretty(w io.Writer, m *sr.Module, opts PrettyOpts) error {
	if w == nil || m == nil {
		return nil
	}
	paint := func(c *color.Color, s string) string {
		if !opts.Color {
			return s
		}
		return c.Sprint(s)
	}

	fmt.Fprintf(w, "%s version=%d.%d generator=%#x bound=%d\n",
		paint(sectionColor, "module"),
		m.Header.Version>>16, (m.Header.Version>>8)&0xFF,
		m.Header.Generator, m.Header.Bound)

	if len(m.Capabilities) > 0 {
		caps := make([]string, 0, len(m.Capabilities))
		for _, c := range m.Capabilities {
			caps = append(caps, c.Capability.String())
		}
		fmt.Fprintf(w, "  capabilities: %s\n", strings.Join(caps, ", "))
	}
	for _, ext := range m.Extensions {
		fmt.Fprintf(w, "  extension: %s\n", ext.Name)
	}
	for _, imp := range m.ExtInstImports {
		fmt.Fprintf(w, "  ext inst import: %s\n", imp.Name)
	}
	fmt.Fprintf(w, "  memory model: %s %s\n",
		m.MemoryModel.AddressingModel, m.MemoryModel.MemoryModel)

	fmt.Fprintf(w, "\n%s\n", paint(sectionColor, fmt.Sprintf("funcs=%d", len(m.Functions))))
	for i := range m.Functions {
		prettyFunction(w, &m.Functions[i], opts, paint)
	}
	return nil
}

func prettyFunction(w io.Writer, f *sr.Function, opts PrettyOpts, paint func(*color.Color, string) string) {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, token(p.IDRef()))
	}
	fmt.Fprintf(w, "\nfn (%s) -> %s", strings.Join(params, ", "), token(f.Result.IDRef()))
	if f.Control != spv.FunctionControlNone {
		fmt.Fprintf(w, " control=%#x", uint32(f.Control))
	}
	fmt.Fprintln(w, ":")

	if f.Entry != nil {
		name := displayName(f.Entry.EntryPoint.Name, opts.Width)
		fmt.Fprintf(w, "  %s %s %q", paint(entryColor, "entry"),
			f.Entry.EntryPoint.ExecutionModel, name)
		if len(f.Entry.EntryPoint.Interface) > 0 {
			ids := make([]string, 0, len(f.Entry.EntryPoint.Interface))
			for _, v := range f.Entry.EntryPoint.Interface {
				ids = append(ids, token(v.IDRef()))
			}
			fmt.Fprintf(w, " interface=[%s]", strings.Join(ids, " "))
		}
		if f.Entry.Mode != nil {
			fmt.Fprintf(w, " mode=%s", f.Entry.Mode.Mode)
		}
		fmt.Fprintln(w)
	}

	for i := range f.Blocks {
		bb := &f.Blocks[i]
		fmt.Fprintf(w, "  %s:\n", paint(sectionColor, fmt.Sprintf("bb%d", bb.Label)))
		for j := range bb.Instructions {
			fmt.Fprintf(w, "    %s\n", FormatInstruction(&bb.Instructions[j]))
		}
		fmt.Fprintf(w, "    %s\n", paint(termColor, FormatTerminator(&bb.Terminator)))
	}
}

// displayName normalizes an entry point name for display. Producers are
// free to emit any UTF-8, so the name is NFC-normalized first and then
// truncated to the configured display width.
func displayName(name string, width int) string {
	name = norm.NFC.String(name)
	if width > 0 && runewidth.StringWidth(name) > width {
		name = runewidth.Truncate(name, width, "…")
	}
	return name
}

func token(id spv.Word) string {
	return fmt.Sprintf("%%%d", id)
}

// FormatInstruction renders one straight-line instruction as a single line.
func FormatInstruction(in *sr.Instruction) string {
	if in == nil {
		return "<instr?>"
	}
	switch in.Kind {
	case sr.InstrNop:
		return "nop"
	case sr.InstrUndef:
		return "undef"
	case sr.InstrLabel:
		return "label"
	case sr.InstrVariable:
		s := fmt.Sprintf("variable %s", in.Variable.StorageClass)
		if in.Variable.HasInitializer {
			s += " init " + token(in.Variable.Initializer.IDRef())
		}
		return s
	case sr.InstrLoad:
		s := "load " + token(in.Load.Pointer.IDRef())
		if in.Load.HasAccess {
			s += fmt.Sprintf(" access=%#x", uint32(in.Load.MemoryAccess))
		}
		return s
	case sr.InstrStore:
		s := fmt.Sprintf("store %s, %s", token(in.Store.Pointer.IDRef()), token(in.Store.Object.IDRef()))
		if in.Store.HasAccess {
			s += fmt.Sprintf(" access=%#x", uint32(in.Store.MemoryAccess))
		}
		return s
	case sr.InstrAccessChain:
		return fmt.Sprintf("access_chain %s%s", token(in.AccessChain.Base.IDRef()),
			valueList(in.AccessChain.Indexes))
	case sr.InstrFunctionCall:
		return fmt.Sprintf("call %s(%s)", token(in.FunctionCall.Function.IDRef()),
			strings.TrimPrefix(valueList(in.FunctionCall.Arguments), " "))
	case sr.InstrDecorate:
		return fmt.Sprintf("decorate %s %s", token(in.Decorate.Target.IDRef()),
			formatDecoration(in.Decorate.Decoration))
	case sr.InstrMemberDecorate:
		return fmt.Sprintf("member_decorate %s.%d %s", token(in.MemberDecorate.StructType.IDRef()),
			in.MemberDecorate.Member, formatDecoration(in.MemberDecorate.Decoration))
	case sr.InstrVectorShuffle:
		return fmt.Sprintf("vector_shuffle %s, %s %v", token(in.VectorShuffle.Vector1.IDRef()),
			token(in.VectorShuffle.Vector2.IDRef()), in.VectorShuffle.Components)
	case sr.InstrCompositeConstruct:
		return "composite_construct" + valueList(in.CompositeConstruct.Constituents)
	case sr.InstrCompositeExtract:
		return fmt.Sprintf("composite_extract %s %v", token(in.CompositeExtract.Composite.IDRef()),
			in.CompositeExtract.Indexes)
	case sr.InstrBinary:
		return fmt.Sprintf("%s %s, %s", opName(in.Binary.Op),
			token(in.Binary.Operand1.IDRef()), token(in.Binary.Operand2.IDRef()))
	case sr.InstrPhi:
		arms := make([]string, 0, len(in.Phi.Pairs))
		for _, p := range in.Phi.Pairs {
			arms = append(arms, fmt.Sprintf("%s: %s", token(p.Variable.IDRef()), token(p.Parent.IDRef())))
		}
		return "phi [" + strings.Join(arms, ", ") + "]"
	case sr.InstrLoopMerge:
		return fmt.Sprintf("loop_merge %s continue %s", token(in.LoopMerge.MergeBlock.IDRef()),
			token(in.LoopMerge.ContinueTarget.IDRef()))
	case sr.InstrSelectionMerge:
		return "selection_merge " + token(in.SelectionMerge.MergeBlock.IDRef())
	default:
		return "<instr?>"
	}
}

// FormatTerminator renders a block terminator as a single line.
func FormatTerminator(t *sr.Terminator) string {
	if t == nil {
		return "<term?>"
	}
	switch t.Kind {
	case sr.TermBranch:
		return "br " + token(t.Branch.Target.IDRef())
	case sr.TermBranchConditional:
		return fmt.Sprintf("br_if %s ? %s : %s", token(t.BranchConditional.Condition.IDRef()),
			token(t.BranchConditional.True.IDRef()), token(t.BranchConditional.False.IDRef()))
	case sr.TermSwitch:
		arms := make([]string, 0, len(t.Switch.Targets))
		for _, arm := range t.Switch.Targets {
			arms = append(arms, fmt.Sprintf("%d: %s", arm.Literal, token(arm.Target.IDRef())))
		}
		return fmt.Sprintf("switch %s default %s [%s]", token(t.Switch.Selector.IDRef()),
			token(t.Switch.Default.IDRef()), strings.Join(arms, ", "))
	case sr.TermKill:
		return "kill"
	case sr.TermReturn:
		return "ret"
	case sr.TermReturnValue:
		return "ret " + token(t.ReturnValue.Value.IDRef())
	case sr.TermUnreachable:
		return "unreachable"
	default:
		return "<term?>"
	}
}

func formatDecoration(d sr.Decoration) string {
	switch d.Kind {
	case spv.DecorationBuiltIn:
		return fmt.Sprintf("%s(%s)", d.Kind, d.BuiltIn)
	case spv.DecorationSpecId, spv.DecorationArrayStride, spv.DecorationMatrixStride,
		spv.DecorationLocation, spv.DecorationComponent, spv.DecorationIndex,
		spv.DecorationBinding, spv.DecorationDescriptorSet, spv.DecorationOffset:
		return fmt.Sprintf("%s(%d)", d.Kind, d.Literal)
	default:
		return d.Kind.String()
	}
}

func valueList(toks []sr.Token[sr.Value]) string {
	if len(toks) == 0 {
		return ""
	}
	ids := make([]string, 0, len(toks))
	for _, t := range toks {
		ids = append(ids, token(t.IDRef()))
	}
	return " " + strings.Join(ids, ", ")
}

func opName(op spv.Op) string {
	return strings.ToLower(strings.TrimPrefix(op.String(), "Op"))
}
