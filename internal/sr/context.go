package sr

import "spvlift/internal/spv"

// Context owns the interning tables and the per-id token mapping for one
// conversion pass. It is a single-writer builder: create one per pass, use
// it from one goroutine, discard it with the pass. Independent conversions
// may run in parallel as long as each owns its own Context.
type Context struct {
	types    *table[Type]
	typeByID map[spv.Word]Token[Type]
}

// NewContext creates an empty Context for one conversion pass.
func NewContext() *Context {
	return &Context{
		types:    newTable[Type](hashType, Type.Equal),
		typeByID: make(map[spv.Word]Token[Type], 32),
	}
}

// Type returns the interned descriptor behind a token minted by this
// Context's table.
func (cx *Context) Type(tok Token[Type]) (Type, bool) {
	return cx.types.lookup(tok)
}

// TypeCount reports how many distinct types have been interned.
func (cx *Context) TypeCount() int {
	return cx.types.len()
}

// TypeByID returns the interned token previously recorded for a raw result
// id, when the corresponding type instruction has been lifted.
func (cx *Context) TypeByID(id spv.Word) (Token[Type], bool) {
	tok, ok := cx.typeByID[id]
	return tok, ok
}

// Type creation -------------------------------------------------------------
//
// These constructors intern directly, bypassing raw instructions. They are
// the programmatic counterpart of LiftType for building types in analyses
// and tests.

// TypeVoid interns the void type.
func (cx *Context) TypeVoid() Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeVoidKind})
}

// TypeBool interns the boolean type.
func (cx *Context) TypeBool() Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeBoolKind})
}

// TypeInt interns an integer type of the given width and signedness.
func (cx *Context) TypeInt(width, signedness uint32) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeIntKind, Int: IntType{Width: width, Signedness: signedness}})
}

// TypeFloat interns a floating-point type of the given width.
func (cx *Context) TypeFloat(width uint32) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeFloatKind, Float: FloatType{Width: width}})
}

// TypeVector interns a vector type.
func (cx *Context) TypeVector(component Token[Type], count uint32) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeVectorKind, Vector: VectorType{Component: component, Count: count}})
}

// TypeMatrix interns a matrix type.
func (cx *Context) TypeMatrix(column Token[Type], count uint32) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeMatrixKind, Matrix: MatrixType{Column: column, Count: count}})
}

// TypeImage interns an image type.
func (cx *Context) TypeImage(img ImageType) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeImageKind, Image: img})
}

// TypeSampler interns the sampler type.
func (cx *Context) TypeSampler() Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeSamplerKind})
}

// TypeSampledImage interns a sampled-image type.
func (cx *Context) TypeSampledImage(image Token[Type]) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeSampledImageKind, SampledImage: SampledImageType{Image: image}})
}

// TypeArray interns a sized array type.
func (cx *Context) TypeArray(element Token[Type], length Token[Constant]) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeArrayKind, Array: ArrayType{Element: element, Length: length}})
}

// TypeRuntimeArray interns a runtime-sized array type.
func (cx *Context) TypeRuntimeArray(element Token[Type]) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeRuntimeArrayKind, RuntimeArray: RuntimeArrayType{Element: element}})
}

// TypeStruct interns a struct type with the given members.
func (cx *Context) TypeStruct(members []StructMember) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeStructKind, Struct: StructType{Members: members}})
}

// TypeOpaque interns a named opaque type.
func (cx *Context) TypeOpaque(name string) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeOpaqueKind, Opaque: OpaqueType{Name: name}})
}

// TypePointer interns a pointer type.
func (cx *Context) TypePointer(storage spv.StorageClass, pointee Token[Type]) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypePointerKind, Pointer: PointerType{StorageClass: storage, Pointee: pointee}})
}

// TypeEvent interns the event type.
func (cx *Context) TypeEvent() Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeEventKind})
}

// TypeDeviceEvent interns the device-event type.
func (cx *Context) TypeDeviceEvent() Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeDeviceEventKind})
}

// TypeReserveId interns the reserve-id type.
func (cx *Context) TypeReserveId() Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeReserveIdKind})
}

// TypeQueue interns the queue type.
func (cx *Context) TypeQueue() Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeQueueKind})
}

// TypePipe interns a pipe type.
func (cx *Context) TypePipe(qualifier spv.AccessQualifier) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypePipeKind, Pipe: PipeType{Qualifier: qualifier}})
}

// TypeForwardPointer interns a forward-pointer type.
func (cx *Context) TypeForwardPointer(pointer Token[Type], storage spv.StorageClass) Token[Type] {
	return cx.types.fetchOrAppend(Type{Kind: TypeForwardPointerKind, ForwardPointer: ForwardPointerType{Pointer: pointer, StorageClass: storage}})
}
