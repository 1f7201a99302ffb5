package jsonprinter

import "testing"

// buildByteVectorFieldTable hand-encodes a table with a single field (id 0)
// holding a ubyte vector of data, laid out identically to
// buildUint32VectorTable but with raw bytes instead of uint32 elements.
func buildByteVectorFieldTable(data []byte) (buf []byte, tablePos int) {
	vectorStart := 20
	dataStart := vectorStart + 4
	size := dataStart + len(data)
	buf = make([]byte, size)

	littleEndianPutU16(buf, 0, 6) // vsize
	littleEndianPutU16(buf, 2, 8) // tsize (informational)
	littleEndianPutU16(buf, 4, 8) // field0 at table+8

	littleEndianPutU32(buf, 6, 6) // soffset: table(6) - vtable(0)

	fieldPos := 6 + 8
	littleEndianPutU32(buf, fieldPos, uint32(vectorStart-fieldPos))

	littleEndianPutU32(buf, vectorStart, uint32(len(data)))
	copy(buf[dataStart:], data)
	return buf, 6
}

func TestStructVectorField(t *testing.T) {
	buf, tpos := buildUint32VectorTable([]uint32{10, 20, 30})
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	sf := func(ctx *Context, buf []byte, base int) {
		ScalarStructField[uint32](ctx, 0, buf, base, 0, "v", Uint32Decoder)
	}
	StructVectorField(ctx, td, 0, "items", 4, sf)
	want := `"items":[{"v":10},{"v":20},{"v":30}]`
	if got := string(ctx.GetBuffer()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBase64Field(t *testing.T) {
	buf, tpos := buildByteVectorFieldTable([]byte("Hi!"))
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	Base64Field(ctx, td, 0, "data", Base64Standard)
	want := `"data":"SGkh"`
	if got := string(ctx.GetBuffer()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBase64FieldAbsent(t *testing.T) {
	buf, tpos := buildUint32FieldTable(0, false)
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	Base64Field(ctx, td, 0, "data", Base64Standard)
	if got := ctx.GetBuffer(); len(got) != 0 {
		t.Fatalf("expected nothing written, got %q", got)
	}
}

// buildUnionVectorTable hand-encodes a table with two fields: id 0 a vector
// of uoffsets (the union values) and id 1 a ubyte vector of discriminators
// (the union types), plus one child table the first union value points to.
//
// Layout: vtable(0..7), table(8), value-vector(24), type-vector(36),
// child vtable(42..47), child table(48..59).
func buildUnionVectorTable(childValue uint32) (buf []byte, tablePos int) {
	buf = make([]byte, 60)

	littleEndianPutU16(buf, 0, 8) // vsize: 2 field voffsets
	littleEndianPutU16(buf, 2, 16)
	littleEndianPutU16(buf, 4, 8)  // field0 (value vector) at table+8
	littleEndianPutU16(buf, 6, 12) // field1 (type vector) at table+12

	littleEndianPutU32(buf, 8, 8) // soffset: table(8) - vtable(0)

	littleEndianPutU32(buf, 16, uint32(24-16)) // field0 -> value-vector start
	littleEndianPutU32(buf, 20, uint32(36-20)) // field1 -> type-vector start

	littleEndianPutU32(buf, 24, 2) // value-vector count
	// element 0 (disc NONE): value slot unused, left zero.
	littleEndianPutU32(buf, 32, uint32(48-32)) // element 1 -> child table

	littleEndianPutU32(buf, 36, 2) // type-vector count
	buf[40] = 0                    // element 0 discriminator: NONE
	buf[41] = 1                    // element 1 discriminator

	littleEndianPutU16(buf, 42, 6) // child vsize
	littleEndianPutU16(buf, 44, 8)
	littleEndianPutU16(buf, 46, 8) // child field0 at childTable+8

	littleEndianPutU32(buf, 48, 6) // child soffset: table(48) - vtable(42)
	littleEndianPutU32(buf, 56, childValue)

	return buf, 8
}

func TestUnionVectorField(t *testing.T) {
	buf, tpos := buildUnionVectorTable(99)
	td := descriptorFor(buf, tpos)
	td.TTL = 5
	ctx := newTestContext(0)

	member := func(ctx *Context, td *TableDescriptor) {
		ScalarField(ctx, td, 0, "x", uint32(0), Uint32Decoder)
	}
	dispatch := func(disc uint8) (TableFunc, bool) {
		if disc == 1 {
			return member, false
		}
		return nil, false
	}
	sym := func(ctx *Context, v uint8) {
		if v == 1 {
			ctx.escapedString([]byte("Member"))
			return
		}
		ctx.escapedString([]byte("NONE"))
	}

	UnionVectorField(ctx, td, 0, 1, "items", sym, dispatch)
	want := `"items_type":["NONE","Member"],"items":[null,{"x":99}]`
	if got := string(ctx.GetBuffer()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
