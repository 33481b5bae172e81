package spv

import "fmt"

// Capability enumerates module capability declarations.
type Capability uint32

const (
	CapabilityMatrix       Capability = 0
	CapabilityShader       Capability = 1
	CapabilityGeometry     Capability = 2
	CapabilityTessellation Capability = 3
	CapabilityAddresses    Capability = 4
	CapabilityLinkage      Capability = 5
	CapabilityKernel       Capability = 6
	CapabilityFloat16      Capability = 9
	CapabilityFloat64      Capability = 10
	CapabilityInt64        Capability = 11
	CapabilityInt16        Capability = 22
	CapabilityInt8         Capability = 39
)

func (c Capability) String() string {
	switch c {
	case CapabilityMatrix:
		return "Matrix"
	case CapabilityShader:
		return "Shader"
	case CapabilityGeometry:
		return "Geometry"
	case CapabilityTessellation:
		return "Tessellation"
	case CapabilityAddresses:
		return "Addresses"
	case CapabilityLinkage:
		return "Linkage"
	case CapabilityKernel:
		return "Kernel"
	case CapabilityFloat16:
		return "Float16"
	case CapabilityFloat64:
		return "Float64"
	case CapabilityInt64:
		return "Int64"
	case CapabilityInt16:
		return "Int16"
	case CapabilityInt8:
		return "Int8"
	default:
		return fmt.Sprintf("Capability(%d)", uint32(c))
	}
}

// AddressingModel selects the pointer addressing scheme of a module.
type AddressingModel uint32

const (
	AddressingLogical    AddressingModel = 0
	AddressingPhysical32 AddressingModel = 1
	AddressingPhysical64 AddressingModel = 2
)

func (m AddressingModel) String() string {
	switch m {
	case AddressingLogical:
		return "Logical"
	case AddressingPhysical32:
		return "Physical32"
	case AddressingPhysical64:
		return "Physical64"
	default:
		return fmt.Sprintf("AddressingModel(%d)", uint32(m))
	}
}

// MemoryModel selects the memory consistency model of a module.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

func (m MemoryModel) String() string {
	switch m {
	case MemoryModelSimple:
		return "Simple"
	case MemoryModelGLSL450:
		return "GLSL450"
	case MemoryModelOpenCL:
		return "OpenCL"
	case MemoryModelVulkan:
		return "Vulkan"
	default:
		return fmt.Sprintf("MemoryModel(%d)", uint32(m))
	}
}

// ExecutionModel classifies an entry point (vertex, fragment, compute, ...).
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

func (m ExecutionModel) String() string {
	switch m {
	case ExecutionModelVertex:
		return "Vertex"
	case ExecutionModelTessellationControl:
		return "TessellationControl"
	case ExecutionModelTessellationEvaluation:
		return "TessellationEvaluation"
	case ExecutionModelGeometry:
		return "Geometry"
	case ExecutionModelFragment:
		return "Fragment"
	case ExecutionModelGLCompute:
		return "GLCompute"
	case ExecutionModelKernel:
		return "Kernel"
	default:
		return fmt.Sprintf("ExecutionModel(%d)", uint32(m))
	}
}

// ExecutionMode refines how an entry point executes.
type ExecutionMode uint32

const (
	ExecutionModeInvocations        ExecutionMode = 0
	ExecutionModePixelCenterInteger ExecutionMode = 6
	ExecutionModeOriginUpperLeft    ExecutionMode = 7
	ExecutionModeOriginLowerLeft    ExecutionMode = 8
	ExecutionModeDepthReplacing     ExecutionMode = 12
	ExecutionModeLocalSize          ExecutionMode = 17
)

func (m ExecutionMode) String() string {
	switch m {
	case ExecutionModeInvocations:
		return "Invocations"
	case ExecutionModePixelCenterInteger:
		return "PixelCenterInteger"
	case ExecutionModeOriginUpperLeft:
		return "OriginUpperLeft"
	case ExecutionModeOriginLowerLeft:
		return "OriginLowerLeft"
	case ExecutionModeDepthReplacing:
		return "DepthReplacing"
	case ExecutionModeLocalSize:
		return "LocalSize"
	default:
		return fmt.Sprintf("ExecutionMode(%d)", uint32(m))
	}
}

// StorageClass places a pointer or variable in a memory region.
type StorageClass uint32

const (
	StorageUniformConstant StorageClass = 0
	StorageInput           StorageClass = 1
	StorageUniform         StorageClass = 2
	StorageOutput          StorageClass = 3
	StorageWorkgroup       StorageClass = 4
	StorageCrossWorkgroup  StorageClass = 5
	StoragePrivate         StorageClass = 6
	StorageFunction        StorageClass = 7
	StoragePushConstant    StorageClass = 9
	StorageStorageBuffer   StorageClass = 12
)

func (s StorageClass) String() string {
	switch s {
	case StorageUniformConstant:
		return "UniformConstant"
	case StorageInput:
		return "Input"
	case StorageUniform:
		return "Uniform"
	case StorageOutput:
		return "Output"
	case StorageWorkgroup:
		return "Workgroup"
	case StorageCrossWorkgroup:
		return "CrossWorkgroup"
	case StoragePrivate:
		return "Private"
	case StorageFunction:
		return "Function"
	case StoragePushConstant:
		return "PushConstant"
	case StorageStorageBuffer:
		return "StorageBuffer"
	default:
		return fmt.Sprintf("StorageClass(%d)", uint32(s))
	}
}

// Dim is the dimensionality of an image type.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

func (d Dim) String() string {
	switch d {
	case Dim1D:
		return "1D"
	case Dim2D:
		return "2D"
	case Dim3D:
		return "3D"
	case DimCube:
		return "Cube"
	case DimRect:
		return "Rect"
	case DimBuffer:
		return "Buffer"
	case DimSubpassData:
		return "SubpassData"
	default:
		return fmt.Sprintf("Dim(%d)", uint32(d))
	}
}

// ImageFormat is the texel format of an image type.
type ImageFormat uint32

const (
	ImageFormatUnknown ImageFormat = 0
	ImageFormatRgba32f ImageFormat = 1
	ImageFormatRgba16f ImageFormat = 2
	ImageFormatR32f    ImageFormat = 3
	ImageFormatRgba8   ImageFormat = 4
)

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatUnknown:
		return "Unknown"
	case ImageFormatRgba32f:
		return "Rgba32f"
	case ImageFormatRgba16f:
		return "Rgba16f"
	case ImageFormatR32f:
		return "R32f"
	case ImageFormatRgba8:
		return "Rgba8"
	default:
		return fmt.Sprintf("ImageFormat(%d)", uint32(f))
	}
}

// AccessQualifier restricts how a pipe or image may be accessed.
type AccessQualifier uint32

const (
	AccessReadOnly  AccessQualifier = 0
	AccessWriteOnly AccessQualifier = 1
	AccessReadWrite AccessQualifier = 2
)

func (a AccessQualifier) String() string {
	switch a {
	case AccessReadOnly:
		return "ReadOnly"
	case AccessWriteOnly:
		return "WriteOnly"
	case AccessReadWrite:
		return "ReadWrite"
	default:
		return fmt.Sprintf("AccessQualifier(%d)", uint32(a))
	}
}

// Decoration tags the kind of a decoration; parameters live in sr.Decoration.
type Decoration uint32

const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecId           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationBuiltIn          Decoration = 11
	DecorationNoPerspective    Decoration = 13
	DecorationFlat             Decoration = 14
	DecorationRestrict         Decoration = 19
	DecorationAliased          Decoration = 20
	DecorationVolatile         Decoration = 21
	DecorationCoherent         Decoration = 23
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationIndex            Decoration = 32
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
)

func (d Decoration) String() string {
	switch d {
	case DecorationRelaxedPrecision:
		return "RelaxedPrecision"
	case DecorationSpecId:
		return "SpecId"
	case DecorationBlock:
		return "Block"
	case DecorationBufferBlock:
		return "BufferBlock"
	case DecorationRowMajor:
		return "RowMajor"
	case DecorationColMajor:
		return "ColMajor"
	case DecorationArrayStride:
		return "ArrayStride"
	case DecorationMatrixStride:
		return "MatrixStride"
	case DecorationBuiltIn:
		return "BuiltIn"
	case DecorationNoPerspective:
		return "NoPerspective"
	case DecorationFlat:
		return "Flat"
	case DecorationRestrict:
		return "Restrict"
	case DecorationAliased:
		return "Aliased"
	case DecorationVolatile:
		return "Volatile"
	case DecorationCoherent:
		return "Coherent"
	case DecorationNonWritable:
		return "NonWritable"
	case DecorationNonReadable:
		return "NonReadable"
	case DecorationLocation:
		return "Location"
	case DecorationComponent:
		return "Component"
	case DecorationIndex:
		return "Index"
	case DecorationBinding:
		return "Binding"
	case DecorationDescriptorSet:
		return "DescriptorSet"
	case DecorationOffset:
		return "Offset"
	default:
		return fmt.Sprintf("Decoration(%d)", uint32(d))
	}
}

// BuiltIn identifies pipeline-provided values.
type BuiltIn uint32

const (
	BuiltInPosition           BuiltIn = 0
	BuiltInPointSize          BuiltIn = 1
	BuiltInVertexId           BuiltIn = 5
	BuiltInInstanceId         BuiltIn = 6
	BuiltInFragCoord          BuiltIn = 15
	BuiltInFragDepth          BuiltIn = 22
	BuiltInGlobalInvocationId BuiltIn = 28
)

func (b BuiltIn) String() string {
	switch b {
	case BuiltInPosition:
		return "Position"
	case BuiltInPointSize:
		return "PointSize"
	case BuiltInVertexId:
		return "VertexId"
	case BuiltInInstanceId:
		return "InstanceId"
	case BuiltInFragCoord:
		return "FragCoord"
	case BuiltInFragDepth:
		return "FragDepth"
	case BuiltInGlobalInvocationId:
		return "GlobalInvocationId"
	default:
		return fmt.Sprintf("BuiltIn(%d)", uint32(b))
	}
}

// FunctionControl is a bitmask of function definition hints.
type FunctionControl uint32

const (
	FunctionControlNone       FunctionControl = 0
	FunctionControlInline     FunctionControl = 1 << 0
	FunctionControlDontInline FunctionControl = 1 << 1
	FunctionControlPure       FunctionControl = 1 << 2
	FunctionControlConst      FunctionControl = 1 << 3
)

// SelectionControl is a bitmask of selection-merge hints.
type SelectionControl uint32

const (
	SelectionControlNone        SelectionControl = 0
	SelectionControlFlatten     SelectionControl = 1 << 0
	SelectionControlDontFlatten SelectionControl = 1 << 1
)

// LoopControl is a bitmask of loop-merge hints.
type LoopControl uint32

const (
	LoopControlNone       LoopControl = 0
	LoopControlUnroll     LoopControl = 1 << 0
	LoopControlDontUnroll LoopControl = 1 << 1
)

// MemoryAccess is a bitmask qualifying loads and stores.
type MemoryAccess uint32

const (
	MemoryAccessNone        MemoryAccess = 0
	MemoryAccessVolatile    MemoryAccess = 1 << 0
	MemoryAccessAligned     MemoryAccess = 1 << 1
	MemoryAccessNontemporal MemoryAccess = 1 << 2
)
