package sr

import (
	"fmt"

	"spvlift/internal/raw"
	"spvlift/internal/spv"
)

// Cursor walks an instruction's flat operand sequence once, front to back.
// Every consumption rule of the decode protocol is expressed through it:
// required fields consume exactly one matching operand, optional fields
// consume at most one, repeated fields consume a maximal run, and pair
// kinds consume whole two-word units atomically.
type Cursor struct {
	ops []raw.Operand
	pos int
}

// NewCursor starts a cursor over the given operand sequence.
func NewCursor(ops []raw.Operand) *Cursor {
	return &Cursor{ops: ops}
}

// Remaining returns how many operands are left unconsumed.
func (c *Cursor) Remaining() int {
	return len(c.ops) - c.pos
}

func (c *Cursor) peek() *raw.Operand {
	if c.pos >= len(c.ops) {
		return nil
	}
	return &c.ops[c.pos]
}

// refuse guards the one operand kind the generic protocol cannot decode:
// a literal whose bit-width is determined by surrounding context. Hitting
// it here is a grammar-table bug, not malformed input, so it fails loudly.
func refuse(kind raw.OperandKind) {
	if kind == raw.KindLiteralContext {
		panic(fmt.Sprintf("sr: %v requires caller-provided width and cannot be decoded generically", kind))
	}
}

// Require consumes exactly one operand of the expected kind. An exhausted
// sequence yields OperandMissing, a kind mismatch yields OperandWrong.
func (c *Cursor) Require(kind raw.OperandKind) (raw.Operand, error) {
	refuse(kind)
	op := c.peek()
	if op == nil {
		return raw.Operand{}, OperandMissing
	}
	if op.Kind != kind {
		return raw.Operand{}, OperandWrong
	}
	c.pos++
	return *op, nil
}

// Optional consumes one operand when the next one matches the expected
// kind. Absence, whether from exhaustion or a non-matching next operand,
// is not an error.
func (c *Cursor) Optional(kind raw.OperandKind) (raw.Operand, bool) {
	refuse(kind)
	op := c.peek()
	if op == nil || op.Kind != kind {
		return raw.Operand{}, false
	}
	c.pos++
	return *op, true
}

// Repeated consumes the maximal run of consecutive operands of the
// expected kind, stopping at the first non-matching operand or the end of
// the sequence. The run may be empty.
func (c *Cursor) Repeated(kind raw.OperandKind) []raw.Operand {
	refuse(kind)
	var run []raw.Operand
	for {
		op := c.peek()
		if op == nil || op.Kind != kind {
			return run
		}
		run = append(run, *op)
		c.pos++
	}
}

// Word consumes one required operand and returns its word payload.
func (c *Cursor) Word(kind raw.OperandKind) (spv.Word, error) {
	op, err := c.Require(kind)
	if err != nil {
		return 0, err
	}
	return op.Word, nil
}

// String consumes one required string literal.
func (c *Cursor) String() (string, error) {
	op, err := c.Require(raw.KindLiteralString)
	if err != nil {
		return "", err
	}
	return op.Str, nil
}
