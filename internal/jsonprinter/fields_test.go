package jsonprinter

import "testing"

// buildUint32FieldTable constructs a minimal hand-encoded table with a single scalar
// field 4 bytes wide (a uint32), or no field at all if present is false,
// returning the buffer and the table's own position.
func buildUint32FieldTable(value uint32, present bool) (buf []byte, tablePos int) {
	// layout: vtable at 0, table at 16
	// vtable: vsize(2) tsize(2) field0-voffset(2)
	// table:  soffset(4) [pad][field bytes at +8]
	buf = make([]byte, 28)
	littleEndianPutU16(buf, 0, 8) // vsize
	littleEndianPutU16(buf, 2, 8) // tsize (informational only, unused by reader)
	if present {
		littleEndianPutU16(buf, 4, 8) // field0 at table+8
	}
	littleEndianPutU32(buf, 16, 16) // soffset: table(16) - vtable(0)
	if present {
		littleEndianPutU32(buf, 16+8, value)
	}
	return buf, 16
}

func descriptorFor(buf []byte, tablePos int) *TableDescriptor {
	vt := vtablePos(buf, tablePos)
	return &TableDescriptor{
		buf:    buf,
		Table:  tablePos,
		Vtable: vt,
		VSize:  int(readVOffset(buf, vt)),
	}
}

func TestScalarFieldPresentValue(t *testing.T) {
	buf, tpos := buildUint32FieldTable(42, true)
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	ScalarField(ctx, td, 0, "n", uint32(0), Uint32Decoder)
	if got := string(ctx.GetBuffer()); got != `"n":42` {
		t.Fatalf("got %q", got)
	}
	if td.Count != 1 {
		t.Fatalf("Count = %d", td.Count)
	}
}

func TestScalarFieldAbsentOmitted(t *testing.T) {
	buf, tpos := buildUint32FieldTable(0, false)
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	ScalarField(ctx, td, 0, "n", uint32(0), Uint32Decoder)
	if got := ctx.GetBuffer(); len(got) != 0 {
		t.Fatalf("expected nothing written, got %q", got)
	}
	if td.Count != 0 {
		t.Fatalf("Count = %d, want 0", td.Count)
	}
}

func TestScalarFieldAbsentForceDefault(t *testing.T) {
	buf, tpos := buildUint32FieldTable(0, false)
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	ctx.Opts.ForceDefault = true
	ScalarField(ctx, td, 0, "n", uint32(7), Uint32Decoder)
	if got := string(ctx.GetBuffer()); got != `"n":7` {
		t.Fatalf("got %q", got)
	}
}

func TestScalarFieldSkipDefault(t *testing.T) {
	buf, tpos := buildUint32FieldTable(7, true)
	td := descriptorFor(buf, tpos)
	ctx := newTestContext(0)
	ctx.Opts.SkipDefault = true
	ScalarField(ctx, td, 0, "n", uint32(7), Uint32Decoder)
	if got := ctx.GetBuffer(); len(got) != 0 {
		t.Fatalf("expected field skipped, got %q", got)
	}
}

func TestScalarFieldLeadingComma(t *testing.T) {
	buf, tpos := buildUint32FieldTable(5, true)
	td := descriptorFor(buf, tpos)
	td.Count = 1 // simulate a prior field already emitted
	ctx := newTestContext(0)
	ScalarField(ctx, td, 0, "n", uint32(0), Uint32Decoder)
	if got := string(ctx.GetBuffer()); got != `,"n":5` {
		t.Fatalf("got %q", got)
	}
}
