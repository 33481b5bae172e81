// Package sr lifts flat, untyped SPIR-V modules into a strongly-typed,
// structurally-validated in-memory graph.
//
// # Purpose
//
//   - Turn raw instructions (opcode + flat operand list) into closed
//     kind-tagged unions with typed fields, one variant per opcode.
//   - Replace numeric id references with opaque phantom-typed Tokens so the
//     structured graph stays cycle-free and alias-free.
//   - Canonicalize types by hash-consing: structurally equal type values
//     always share one Token.
//
// # Structure
//
// Context owns everything a single conversion pass produces: the interning
// tables and the per-id token mapping. All lift operations hang off it.
// FromRaw is the top-level assembler: header and memory-model checks,
// capabilities in order, per-function type resolution and basic-block
// construction. Conversion is atomic; the first failure aborts with a
// single ConversionError and no partial Module.
//
// The decode protocol is one generic engine over a grammar table. Each
// opcode row declares its operand fields as (kind, quantifier, referent)
// tuples; required fields consume exactly one matching operand, optional
// ones at most one, repeated ones a maximal run, and pair kinds whole
// two-word units. The only operand kind excluded from generic decoding is
// the context-dependent numeric literal carried by constants: its width
// comes from the enclosing type, so width-aware callers must decode it and
// the engine refuses it loudly.
//
// # Concurrency
//
// A Context is a single-writer builder. Independent conversions may run in
// parallel across separate Contexts; the raw input is only read. Tokens
// are only meaningful inside the Context that minted them.
package sr
