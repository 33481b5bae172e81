package sr

import "fmt"

// OperandError reports a failure while decoding one declared operand field.
type OperandError uint8

const (
	// OperandMissing means a required field had no operand left to consume.
	OperandMissing OperandError = iota
	// OperandWrong means the next operand's kind did not match the field.
	OperandWrong
)

func (e OperandError) Error() string {
	switch e {
	case OperandMissing:
		return "required operand missing"
	case OperandWrong:
		return "operand kind mismatch"
	default:
		return fmt.Sprintf("OperandError(%d)", uint8(e))
	}
}

// LiftErrorKind discriminates LiftError variants.
type LiftErrorKind uint8

const (
	// LiftBadOpCode means the instruction's opcode does not match the
	// invoked lift operation.
	LiftBadOpCode LiftErrorKind = iota
	// LiftBadOperand wraps an OperandError raised while decoding.
	LiftBadOperand
)

// LiftError reports a failure while lifting a single instruction.
type LiftError struct {
	Kind    LiftErrorKind
	Operand OperandError
}

func (e *LiftError) Error() string {
	switch e.Kind {
	case LiftBadOpCode:
		return "unexpected opcode"
	case LiftBadOperand:
		return "bad operand: " + e.Operand.Error()
	default:
		return fmt.Sprintf("LiftError(%d)", uint8(e.Kind))
	}
}

func (e *LiftError) Unwrap() error {
	if e.Kind == LiftBadOperand {
		return e.Operand
	}
	return nil
}

func errOpCode() *LiftError {
	return &LiftError{Kind: LiftBadOpCode}
}

func errOperand(op OperandError) *LiftError {
	return &LiftError{Kind: LiftBadOperand, Operand: op}
}

// liftErr normalizes a decode-layer error into a *LiftError.
func liftErr(err error) *LiftError {
	if le, ok := err.(*LiftError); ok {
		return le
	}
	if oe, ok := err.(OperandError); ok {
		return errOperand(oe)
	}
	return &LiftError{Kind: LiftBadOpCode}
}

// ConversionErrorKind discriminates ConversionError variants.
type ConversionErrorKind uint8

const (
	// ConvMissingHeader means the raw module carried no header.
	ConvMissingHeader ConversionErrorKind = iota
	// ConvMissingMemoryModel means the raw module carried no memory-model
	// instruction.
	ConvMissingMemoryModel
	// ConvMissingFunction means a raw function had no definition
	// instruction.
	ConvMissingFunction
	// ConvMissingFunctionType means a definition referenced a function-type
	// id that resolves to no global type instruction.
	ConvMissingFunctionType
	// ConvLift wraps a LiftError raised on an individual instruction.
	ConvLift
)

// ConversionError is the single diagnostic a failed conversion yields. The
// conversion is atomic: on any error no Module is produced.
type ConversionError struct {
	Kind ConversionErrorKind
	Lift *LiftError
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case ConvMissingHeader:
		return "module header missing"
	case ConvMissingMemoryModel:
		return "memory model instruction missing"
	case ConvMissingFunction:
		return "function definition instruction missing"
	case ConvMissingFunctionType:
		return "function type not found among global type instructions"
	case ConvLift:
		return "lift failed: " + e.Lift.Error()
	default:
		return fmt.Sprintf("ConversionError(%d)", uint8(e.Kind))
	}
}

func (e *ConversionError) Unwrap() error {
	if e.Kind == ConvLift {
		return e.Lift
	}
	return nil
}

func convErr(kind ConversionErrorKind) *ConversionError {
	return &ConversionError{Kind: kind}
}

func convLift(le *LiftError) *ConversionError {
	return &ConversionError{Kind: ConvLift, Lift: le}
}
