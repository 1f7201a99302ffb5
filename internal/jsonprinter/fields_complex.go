package jsonprinter

import "encoding/base64"

// This file implements the remaining C5 primitives: strings, inline
// structs, nested tables, unions, byte-vector base64, and the
// nested-root entry points C8's fingerprint cache hooks into.

// UnionDispatch maps a union discriminator to the TableFunc that prints
// that member, or reports isString for the (rare, but legal) string-typed
// union member. A nil pf with isString false means an unknown/unhandled
// discriminator, rendered as null rather than aborting the sequence.
type UnionDispatch func(disc uint8) (pf TableFunc, isString bool)

// StringField emits "name": "escaped string value".
func StringField(ctx *Context, td *TableDescriptor, id int, name string) {
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))
	ctx.escapedString(stringAt(td.buf, pos))
}

// StructField emits a nested inline struct. Structs have no vtable and no
// indirection: the field's resolved position *is* the struct's base.
func StructField(ctx *Context, td *TableDescriptor, id int, name string, sf StructFunc) {
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))
	ctx.printStart('{')
	sf(ctx, td.buf, pos)
	ctx.printEnd('}')
}

// TableField emits a nested table reached through a uoffset.
func TableField(ctx *Context, td *TableDescriptor, id int, name string, pf TableFunc) {
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))
	tpos := readUOffset(td.buf, pos)
	ctx.printTableObject(td.buf, tpos, td.TTL, 0, pf)
}

// UnionField emits a union-typed field: the type discriminator as
// "<name>_type" (always, per spec.md §4.5, regardless of SkipDefault),
// rendered through sym unless Options.NoEnum is set, followed by the union
// value itself under name when the discriminator is nonzero. id is the
// value field's id; the discriminator lives at the neighboring field id−1,
// the flatc convention DiffEntry.detail follows in schema/flatjsonfb. A
// zero discriminator (the implicit NONE member) means only "<name>_type"
// is emitted and the value is omitted, matching FlatBuffers' union
// convention.
func UnionField(ctx *Context, td *TableDescriptor, id int, name string, sym SymbolFunc[uint8], dispatch UnionDispatch) {
	if len(name)+len("_type") > NameLenMax {
		ctx.setError(errBadInput)
		return
	}

	disc := PeekScalarField[uint8](td, id-1, 0, Uint8Decoder)

	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name + "_type"))
	if ctx.Opts.NoEnum {
		writeScalar(ctx, disc)
	} else {
		sym(ctx, disc)
	}

	if disc == 0 {
		return
	}
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return
	}
	ctx.char(',')
	td.Count++
	ctx.printName([]byte(name))

	pf, isString := dispatch(disc)
	switch {
	case isString:
		ctx.escapedString(stringAt(td.buf, pos))
	case pf != nil:
		tpos := readUOffset(td.buf, pos)
		ctx.printTableObject(td.buf, tpos, td.TTL, disc, pf)
	default:
		ctx.printNull()
	}
}

// base64Alphabet picks the encoding Options.Base64Mode names; both are
// padded, matching flatcc's default json_printer behavior.
func base64Alphabet(mode Base64Mode) *base64.Encoding {
	if mode == Base64URL {
		return base64.URLEncoding
	}
	return base64.StdEncoding
}

// Base64Field emits a byte-vector field as a base64-encoded JSON string,
// streaming the encoding in bounded chunks rather than materializing the
// whole encoded string up front (the one C5 primitive besides
// escapedString that must loop-and-flush on unbounded input).
func Base64Field(ctx *Context, td *TableDescriptor, id int, name string, mode Base64Mode) {
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))

	vpos := readUOffset(td.buf, pos)
	n := int(readUint32(td.buf, vpos))
	raw := td.buf[vpos+4 : vpos+4+n]

	enc := base64Alphabet(mode)
	ctx.char('"')
	const chunk = 48 // multiple of 3, keeps encoded chunks un-padded until the last
	scratch := make([]byte, enc.EncodedLen(chunk))
	for len(raw) > 0 {
		k := chunk
		if k > len(raw) {
			k = len(raw)
		}
		encLen := enc.EncodedLen(k)
		if encLen > len(scratch) {
			scratch = make([]byte, encLen)
		}
		enc.Encode(scratch, raw[:k])
		ctx.printStringPart(scratch[:encLen])
		raw = raw[k:]
	}
	ctx.char('"')
}

// --- nested roots (C8) ---

// TableAsNestedRoot prints the table embedded at the uoffset held by field
// id, itself reached through a nested buffer's own root indirection (a
// FlatBuffers nested_flatbuffer field is a byte vector whose contents are
// themselves a complete, independently-rooted buffer). When ctx.cache is
// set, identical nested buffers are rendered once and replayed afterward.
func TableAsNestedRoot(ctx *Context, td *TableDescriptor, id int, name string, pf TableFunc) {
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))

	vpos := readUOffset(td.buf, pos)
	n := int(readUint32(td.buf, vpos))
	nested := td.buf[vpos+4 : vpos+4+n]

	if ctx.cache != nil {
		key, rendered, ok := ctx.cache.Lookup(nested)
		if ok {
			ctx.printStringPart(rendered)
			return
		}
		start := ctx.p
		rootPos := readUOffset(nested, 0)
		ctx.printTableObject(nested, rootPos, td.TTL, 0, pf)
		ctx.cache.Store(key, ctx.buf[start:ctx.p])
		return
	}

	rootPos := readUOffset(nested, 0)
	ctx.printTableObject(nested, rootPos, td.TTL, 0, pf)
}

// StructAsNestedRoot is the struct analogue of TableAsNestedRoot: the
// nested buffer's root is itself a struct, reached through the buffer's
// root uoffset as in StructAsRoot, with no vtable indirection.
func StructAsNestedRoot(ctx *Context, td *TableDescriptor, id int, name string, sf StructFunc) {
	pos := getFieldPtr(td.buf, td, id)
	if pos < 0 {
		return
	}
	if td.Count > 0 {
		ctx.char(',')
	}
	td.Count++
	ctx.printName([]byte(name))

	vpos := readUOffset(td.buf, pos)
	n := int(readUint32(td.buf, vpos))
	nested := td.buf[vpos+4 : vpos+4+n]
	rootPos := readUOffset(nested, 0)

	if ctx.cache != nil {
		key, rendered, ok := ctx.cache.Lookup(nested)
		if ok {
			ctx.printStringPart(rendered)
			return
		}
		start := ctx.p
		ctx.printStart('{')
		sf(ctx, nested, rootPos)
		ctx.printEnd('}')
		ctx.cache.Store(key, ctx.buf[start:ctx.p])
		return
	}

	ctx.printStart('{')
	sf(ctx, nested, rootPos)
	ctx.printEnd('}')
}
