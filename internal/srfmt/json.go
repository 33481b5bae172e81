package srfmt

import (
	"encoding/json"
	"io"

	"spvlift/internal/sr"
)

// HeaderJSON mirrors the raw module header.
type HeaderJSON struct {
	Magic     uint32 `json:"magic"`
	Version   uint32 `json:"version"`
	Generator uint32 `json:"generator"`
	Bound     uint32 `json:"bound"`
	Schema    uint32 `json:"schema,omitempty"`
}

// EntryPointJSON describes an entry point paired to a function.
type EntryPointJSON struct {
	ExecutionModel string   `json:"execution_model"`
	Name           string   `json:"name"`
	Interface      []uint32 `json:"interface,omitempty"`
	Mode           string   `json:"mode,omitempty"`
}

// BlockJSON is one basic block with rendered instructions.
type BlockJSON struct {
	Label        uint32   `json:"label"`
	Instructions []string `json:"instructions,omitempty"`
	Terminator   string   `json:"terminator"`
}

// FunctionJSON is one structured function.
type FunctionJSON struct {
	Entry      *EntryPointJSON `json:"entry,omitempty"`
	Control    uint32          `json:"control,omitempty"`
	Result     uint32          `json:"result"`
	Parameters []uint32        `json:"parameters,omitempty"`
	Blocks     []BlockJSON     `json:"blocks,omitempty"`
}

// ModuleOutput is the root of the JSON rendering.
type ModuleOutput struct {
	Header         HeaderJSON     `json:"header"`
	Capabilities   []string       `json:"capabilities,omitempty"`
	Extensions     []string       `json:"extensions,omitempty"`
	ExtInstImports []string       `json:"ext_inst_imports,omitempty"`
	Addressing     string         `json:"addressing_model"`
	Memory         string         `json:"memory_model"`
	Functions      []FunctionJSON `json:"functions"`
}

// BuildModuleOutput assembles the JSON structure without serializing it.
func BuildModuleOutput(m *sr.Module) ModuleOutput {
	out := ModuleOutput{
		Header: HeaderJSON{
			Magic:     m.Header.Magic,
			Version:   m.Header.Version,
			Generator: m.Header.Generator,
			Bound:     m.Header.Bound,
			Schema:    m.Header.Schema,
		},
		Addressing: m.MemoryModel.AddressingModel.String(),
		Memory:     m.MemoryModel.MemoryModel.String(),
		Functions:  make([]FunctionJSON, 0, len(m.Functions)),
	}
	for _, c := range m.Capabilities {
		out.Capabilities = append(out.Capabilities, c.Capability.String())
	}
	for _, ext := range m.Extensions {
		out.Extensions = append(out.Extensions, ext.Name)
	}
	for _, imp := range m.ExtInstImports {
		out.ExtInstImports = append(out.ExtInstImports, imp.Name)
	}
	for i := range m.Functions {
		out.Functions = append(out.Functions, buildFunction(&m.Functions[i]))
	}
	return out
}

func buildFunction(f *sr.Function) FunctionJSON {
	fn := FunctionJSON{
		Control: uint32(f.Control),
		Result:  f.Result.IDRef(),
	}
	for _, p := range f.Parameters {
		fn.Parameters = append(fn.Parameters, p.IDRef())
	}
	if f.Entry != nil {
		ep := &EntryPointJSON{
			ExecutionModel: f.Entry.EntryPoint.ExecutionModel.String(),
			Name:           f.Entry.EntryPoint.Name,
		}
		if f.Entry.Mode != nil {
			ep.Mode = f.Entry.Mode.Mode.String()
		}
		for _, v := range f.Entry.EntryPoint.Interface {
			ep.Interface = append(ep.Interface, v.IDRef())
		}
		fn.Entry = ep
	}
	for i := range f.Blocks {
		bb := &f.Blocks[i]
		blockJSON := BlockJSON{
			Label:      bb.Label,
			Terminator: FormatTerminator(&bb.Terminator),
		}
		for j := range bb.Instructions {
			blockJSON.Instructions = append(blockJSON.Instructions, FormatInstruction(&bb.Instructions[j]))
		}
		fn.Blocks = append(fn.Blocks, blockJSON)
	}
	return fn
}

// JSON writes the module as indented JSON.
func JSON(w io.Writer, m *sr.Module) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildModuleOutput(m))
}
