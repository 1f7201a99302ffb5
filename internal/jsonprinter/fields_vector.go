package jsonprinter

// This file implements C5's vector-typed field primitives: scalar, enum,
// string, table, struct, and union vectors, plus the shared element-comma
// bookkeeping every array rendering needs (spec.md §4.5).

// vectorHeader resolves fieldPtr (as returned by getFieldPtr) to the
// absolute position of a vector's first element and its element count. A
// vector is stored as a uoffset to a 4-byte count prefix immediately
// followed by the elements.
func vectorHeader(buf []byte, fieldPtr int) (dataPos int, count int) {
	vpos := readUOffset(buf, fieldPtr)
	count = int(readUint32(buf, vpos))
	return vpos + 4, count
}

// beginElement writes the comma separating array elements (skipped before
// the first) followed by the usual newline/indent pacing checkpoint.
func (c *Context) beginElement(i int) {
	if i > 0 {
		c.char(',')
	}
	c.printNL()
}

// beginVectorField writes the leading comma/name shared by every vector
// field kind and reports whether the field is present at all. Absent
// vector fields are always omitted regardless of SkipDefault/ForceDefault:
// a vector has no scalar "default" to force.
func beginVectorField(ctx *Context, td *TableDescriptor, id int, name string) (fieldPtr int, ok bool) {
	fieldPtr = getFieldPtr(td.buf, td, id)
	if fieldPtr < 0 {
		return 0, false
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))
	return fieldPtr, true
}

// ScalarVectorField emits a JSON array of scalar values.
func ScalarVectorField[T Scalar](ctx *Context, td *TableDescriptor, id int, name string, elemSize int, decode Decoder[T]) {
	fieldPtr, ok := beginVectorField(ctx, td, id, name)
	if !ok {
		return
	}
	dataPos, count := vectorHeader(td.buf, fieldPtr)
	ctx.printStart('[')
	for i := 0; i < count; i++ {
		ctx.beginElement(i)
		writeScalar(ctx, decode(td.buf, dataPos+i*elemSize))
	}
	ctx.printEnd(']')
}

// EnumVectorField emits a JSON array of enum values, each rendered through
// sym unless Options.NoEnum is set.
func EnumVectorField[T Scalar](ctx *Context, td *TableDescriptor, id int, name string, elemSize int, decode Decoder[T], sym SymbolFunc[T]) {
	fieldPtr, ok := beginVectorField(ctx, td, id, name)
	if !ok {
		return
	}
	dataPos, count := vectorHeader(td.buf, fieldPtr)
	ctx.printStart('[')
	for i := 0; i < count; i++ {
		ctx.beginElement(i)
		v := decode(td.buf, dataPos+i*elemSize)
		if ctx.Opts.NoEnum {
			writeScalar(ctx, v)
		} else {
			sym(ctx, v)
		}
	}
	ctx.printEnd(']')
}

// stringAt resolves an absolute table/string/vector-element position
// holding a uoffset to a string into the string's raw bytes.
func stringAt(buf []byte, fieldPtr int) []byte {
	spos := readUOffset(buf, fieldPtr)
	n := readUint32(buf, spos)
	return buf[spos+4 : spos+4+int(n)]
}

// StringVectorField emits a JSON array of strings.
func StringVectorField(ctx *Context, td *TableDescriptor, id int, name string) {
	fieldPtr, ok := beginVectorField(ctx, td, id, name)
	if !ok {
		return
	}
	dataPos, count := vectorHeader(td.buf, fieldPtr)
	ctx.printStart('[')
	for i := 0; i < count; i++ {
		ctx.beginElement(i)
		ctx.escapedString(stringAt(td.buf, dataPos+i*4))
	}
	ctx.printEnd(']')
}

// TableVectorField emits a JSON array of nested table objects, each printed
// through pf.
func TableVectorField(ctx *Context, td *TableDescriptor, id int, name string, pf TableFunc) {
	fieldPtr, ok := beginVectorField(ctx, td, id, name)
	if !ok {
		return
	}
	dataPos, count := vectorHeader(td.buf, fieldPtr)
	ctx.printStart('[')
	for i := 0; i < count; i++ {
		ctx.beginElement(i)
		if ctx.errCode != errNone {
			break
		}
		tpos := readUOffset(td.buf, dataPos+i*4)
		ctx.printTableObject(td.buf, tpos, td.TTL, 0, pf)
	}
	ctx.printEnd(']')
}

// StructVectorField emits a JSON array of inline structs, each printed
// through sf. Struct vector elements are stored inline (elemSize bytes
// apart), never behind a uoffset.
func StructVectorField(ctx *Context, td *TableDescriptor, id int, name string, elemSize int, sf StructFunc) {
	fieldPtr, ok := beginVectorField(ctx, td, id, name)
	if !ok {
		return
	}
	dataPos, count := vectorHeader(td.buf, fieldPtr)
	ctx.printStart('[')
	for i := 0; i < count; i++ {
		ctx.beginElement(i)
		ctx.printStart('{')
		sf(ctx, td.buf, dataPos+i*elemSize)
		ctx.printEnd('}')
	}
	ctx.printEnd(']')
}

// UnionVectorField emits a JSON array of union values, preceded by its
// "<name>_type" discriminator array (spec.md §4.5: "the union vector
// additionally precedes the value vector with its type-discriminator
// vector under the name <field>_type"). sym renders each discriminator the
// same way UnionField's does; dispatch maps a discriminator to the
// TableFunc (or string handling) for that member.
func UnionVectorField(ctx *Context, td *TableDescriptor, valueID int, typeID int, name string, sym SymbolFunc[uint8], dispatch UnionDispatch) {
	if len(name)+len("_type") > NameLenMax {
		ctx.setError(errBadInput)
		return
	}

	valuePtr := getFieldPtr(td.buf, td, valueID)
	typePtr := getFieldPtr(td.buf, td, typeID)
	if valuePtr < 0 || typePtr < 0 {
		return
	}

	EnumVectorField(ctx, td, typeID, name+"_type", 1, Uint8Decoder, sym)

	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))

	dataPos, count := vectorHeader(td.buf, valuePtr)
	typeDataPos, _ := vectorHeader(td.buf, typePtr)

	ctx.printStart('[')
	for i := 0; i < count; i++ {
		ctx.beginElement(i)
		if ctx.errCode != errNone {
			break
		}
		disc := readU8(td.buf, typeDataPos+i)
		if disc == 0 {
			ctx.printNull()
			continue
		}
		pf, isString := dispatch(disc)
		pos := dataPos + i*4
		if isString {
			ctx.escapedString(stringAt(td.buf, pos))
		} else if pf != nil {
			tpos := readUOffset(td.buf, pos)
			ctx.printTableObject(td.buf, tpos, td.TTL, disc, pf)
		} else {
			ctx.printNull()
		}
	}
	ctx.printEnd(']')
}
