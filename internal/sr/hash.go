package sr

import "spvlift/internal/spv"

// FNV-1a constants, folded by hand so hashing stays allocation-free.
const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

type hasher uint64

func newHasher() hasher {
	return hasher(fnvOffset)
}

func (h *hasher) word(w spv.Word) {
	v := uint64(*h)
	for i := 0; i < 4; i++ {
		v ^= uint64(byte(w >> (8 * i)))
		v *= fnvPrime
	}
	*h = hasher(v)
}

func (h *hasher) str(s string) {
	v := uint64(*h)
	for i := 0; i < len(s); i++ {
		v ^= uint64(s[i])
		v *= fnvPrime
	}
	*h = hasher(v)
}

func (h *hasher) decorations(ds []Decoration) {
	h.word(uint32(len(ds)))
	for _, d := range ds {
		h.word(uint32(d.Kind))
		h.word(d.Literal)
		h.word(uint32(d.BuiltIn))
	}
}

// hashType folds a Type's structural identity into a bucket key for the
// interning table. Equal values must hash equally; the reverse is resolved
// by the table's bucket scan.
func hashType(t Type) uint64 {
	h := newHasher()
	h.word(uint32(t.Kind))
	switch t.Kind {
	case TypeIntKind:
		h.word(t.Int.Width)
		h.word(t.Int.Signedness)
	case TypeFloatKind:
		h.word(t.Float.Width)
	case TypeVectorKind:
		h.word(t.Vector.Component.IDRef())
		h.word(t.Vector.Count)
	case TypeMatrixKind:
		h.word(t.Matrix.Column.IDRef())
		h.word(t.Matrix.Count)
	case TypeImageKind:
		img := t.Image
		h.word(img.Sampled.IDRef())
		h.word(uint32(img.Dim))
		h.word(img.Depth)
		h.word(img.Arrayed)
		h.word(img.MS)
		h.word(img.SampledAs)
		h.word(uint32(img.Format))
		if img.HasAccess {
			h.word(uint32(img.Access) + 1)
		}
	case TypeSampledImageKind:
		h.word(t.SampledImage.Image.IDRef())
	case TypeArrayKind:
		h.word(t.Array.Element.IDRef())
		h.word(t.Array.Length.IDRef())
	case TypeRuntimeArrayKind:
		h.word(t.RuntimeArray.Element.IDRef())
	case TypeStructKind:
		h.word(uint32(len(t.Struct.Members)))
		for _, m := range t.Struct.Members {
			h.word(m.Type.IDRef())
			h.decorations(m.Decorations)
		}
	case TypeOpaqueKind:
		h.str(t.Opaque.Name)
	case TypePointerKind:
		h.word(uint32(t.Pointer.StorageClass))
		h.word(t.Pointer.Pointee.IDRef())
	case TypePipeKind:
		h.word(uint32(t.Pipe.Qualifier))
	case TypeForwardPointerKind:
		h.word(t.ForwardPointer.Pointer.IDRef())
		h.word(uint32(t.ForwardPointer.StorageClass))
	}
	h.decorations(t.Decorations)
	return uint64(h)
}
