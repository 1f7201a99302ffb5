package jsonprinter

import "strconv"

// Scalar is the compile-time list of wire scalar types C5's field
// primitives are instantiated over (spec.md §9: "model the scalar set as
// a compile-time list and instantiate via generics"). Deliberately exact
// types, not `~`-approximate ones: a schema's enum/flag type is expected
// to decode into its underlying wire type before reaching these
// primitives, with the enum<->symbol mapping supplied separately as a
// SymbolFunc, exactly as the C runtime keeps the integer read and the
// enum-to-string lookup as two distinct steps.
type Scalar interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64 | bool
}

// Decoder reads a T out of buf at the given absolute byte position.
type Decoder[T Scalar] func(buf []byte, pos int) T

// SymbolFunc renders an enum or flag-enum value as its symbolic JSON form
// (a quoted symbol, or a delimited sequence of flag symbols). Schema
// generated code supplies one per enum type; it is only consulted when
// Options.NoEnum is false.
type SymbolFunc[T Scalar] func(ctx *Context, v T)

// Concrete decoders for the Generated-code ABI's exported per-type
// functions (spec.md §6) to close over.
var (
	Uint8Decoder  Decoder[uint8]   = readU8
	Uint16Decoder Decoder[uint16]  = readU16
	Uint32Decoder Decoder[uint32]  = readU32
	Uint64Decoder Decoder[uint64]  = readU64
	Int8Decoder   Decoder[int8]    = readI8
	Int16Decoder  Decoder[int16]   = readI16
	Int32Decoder  Decoder[int32]   = readI32
	Int64Decoder  Decoder[int64]   = readI64
	BoolDecoder   Decoder[bool]    = readBool
	Float32Decoder Decoder[float32] = readF32
	Float64Decoder Decoder[float64] = readF64
)

// appendScalarBytes formats v into dst, the stdlib strconv formatter
// standing in for the "numeric-to-string formatter" spec.md §1 treats as
// an external collaborator (no fast-shortest-float algorithm is
// implemented here; that is explicitly out of scope).
func appendScalarBytes[T Scalar](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(dst, x, 10)
	case int8:
		return strconv.AppendInt(dst, int64(x), 10)
	case int16:
		return strconv.AppendInt(dst, int64(x), 10)
	case int32:
		return strconv.AppendInt(dst, int64(x), 10)
	case int64:
		return strconv.AppendInt(dst, x, 10)
	case bool:
		if x {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'g', -1, 64)
	default:
		panic("jsonprinter: unreachable scalar type")
	}
}

// writeScalar appends v's textual rendering directly into the tail of the
// Context's buffer, relying on Reserve headroom the same way the C
// runtime's print_TN macros write through ctx->p unconditionally.
func writeScalar[T Scalar](ctx *Context, v T) {
	out := appendScalarBytes(ctx.buf[ctx.p:ctx.p], v)
	ctx.p += len(out)
}

// PeekScalarField reads field id's value (or def if absent) without
// emitting anything. UnionField uses this to read a union's type
// discriminator from the neighboring field before printing it as
// "<name>_type" and dispatching on it.
func PeekScalarField[T Scalar](td *TableDescriptor, id int, def T, decode Decoder[T]) T {
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return def
	}
	return decode(td.buf, pos)
}

// ScalarField is the Generated-code ABI's `<T>_field` primitive
// (spec.md §6): looks up field id, applies SkipDefault/ForceDefault, and
// emits "name": value in declaration order via td.Count.
func ScalarField[T Scalar](ctx *Context, td *TableDescriptor, id int, name string, def T, decode Decoder[T]) {
	pos := getFieldPtr(td.buf, td, id)
	var x T
	if pos >= 0 {
		x = decode(td.buf, pos)
		if x == def && ctx.Opts.SkipDefault {
			return
		}
	} else {
		if !ctx.Opts.ForceDefault {
			return
		}
		x = def
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))
	writeScalar(ctx, x)
}

// EnumField is `<T>_enum_field`: identical lookup/default handling to
// ScalarField, but delegates the value's rendering to sym unless
// Options.NoEnum requests the raw number instead.
func EnumField[T Scalar](ctx *Context, td *TableDescriptor, id int, name string, def T, decode Decoder[T], sym SymbolFunc[T]) {
	pos := getFieldPtr(td.buf, td, id)
	var x T
	if pos >= 0 {
		x = decode(td.buf, pos)
		if x == def && ctx.Opts.SkipDefault {
			return
		}
	} else {
		if !ctx.Opts.ForceDefault {
			return
		}
		x = def
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))
	if ctx.Opts.NoEnum {
		writeScalar(ctx, x)
	} else {
		sym(ctx, x)
	}
}

// ScalarStructField is `<T>_struct_field`: structs have no vtable, so the
// field is always present at base+offset; index (the field's 0-based
// declaration position, tracked by the caller rather than a
// TableDescriptor) drives the leading comma.
func ScalarStructField[T Scalar](ctx *Context, index int, buf []byte, base int, offset int, name string, decode Decoder[T]) {
	x := decode(buf, base+offset)
	if index > 0 {
		ctx.char(',')
	}
	ctx.printName([]byte(name))
	writeScalar(ctx, x)
}

// EnumStructField is `<T>_enum_struct_field`, the struct-field analogue of
// EnumField.
func EnumStructField[T Scalar](ctx *Context, index int, buf []byte, base int, offset int, name string, decode Decoder[T], sym SymbolFunc[T]) {
	x := decode(buf, base+offset)
	if index > 0 {
		ctx.char(',')
	}
	ctx.printName([]byte(name))
	if ctx.Opts.NoEnum {
		writeScalar(ctx, x)
	} else {
		sym(ctx, x)
	}
}
