package jsonprinter

import "testing"

// buildUint32VectorTable hand-encodes a table with a single field (id 0)
// holding a vector of the given uint32 values.
func buildUint32VectorTable(values []uint32) (buf []byte, tablePos int) {
	vectorStart := 20
	dataStart := vectorStart + 4
	size := dataStart + len(values)*4
	buf = make([]byte, size)

	littleEndianPutU16(buf, 0, 6) // vsize
	littleEndianPutU16(buf, 2, 8) // tsize (informational)
	littleEndianPutU16(buf, 4, 8) // field0 at table+8

	littleEndianPutU32(buf, 6, 6) // soffset: table(6) - vtable(0)

	fieldPos := 6 + 8
	littleEndianPutU32(buf, fieldPos, uint32(vectorStart-fieldPos)) // uoffset to vector

	littleEndianPutU32(buf, vectorStart, uint32(len(values)))
	for i, v := range values {
		littleEndianPutU32(buf, dataStart+i*4, v)
	}
	return buf, 6
}

func TestScalarVectorField(t *testing.T) {
	buf, tpos := buildUint32VectorTable([]uint32{1, 2, 3})
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	ScalarVectorField(ctx, td, 0, "nums", 4, Uint32Decoder)
	if got := string(ctx.GetBuffer()); got != `"nums":[1,2,3]` {
		t.Fatalf("got %q", got)
	}
}

func TestScalarVectorFieldAbsent(t *testing.T) {
	buf, tpos := buildUint32FieldTable(0, false)
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	ScalarVectorField(ctx, td, 0, "nums", 4, Uint32Decoder)
	if got := ctx.GetBuffer(); len(got) != 0 {
		t.Fatalf("expected nothing written for absent vector, got %q", got)
	}
}

func TestScalarVectorFieldIndented(t *testing.T) {
	buf, tpos := buildUint32VectorTable([]uint32{7})
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(2)
	ScalarVectorField(ctx, td, 0, "nums", 4, Uint32Decoder)
	want := "\n\"nums\": [\n  7\n]"
	if got := string(ctx.GetBuffer()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
