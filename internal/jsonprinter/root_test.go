package jsonprinter

import "testing"

// buildUint32StructRootBuffer hand-encodes a root buffer whose root value is
// a bare struct (no vtable): a root uoffset at position 0 pointing directly
// to a single uint32 field.
func buildUint32StructRootBuffer(value uint32) []byte {
	buf := make([]byte, 12)
	littleEndianPutU32(buf, 0, 8) // root uoffset: struct at 0+8
	littleEndianPutU32(buf, 8, value)
	return buf
}

func TestStructAsRoot(t *testing.T) {
	buf := buildUint32StructRootBuffer(123)
	ctx := NewDynamicContext(0, Options{})
	sf := func(ctx *Context, buf []byte, base int) {
		ScalarStructField[uint32](ctx, 0, buf, base, 0, "v", Uint32Decoder)
	}
	n, err := StructAsRoot(ctx, buf, "", sf)
	if err != nil {
		t.Fatalf("StructAsRoot error: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected bytes written")
	}
	out := ctx.FinalizeDynamicBuffer()
	want := `{"v":123}`
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestStructAsRootRejectsTooSmallBuffer(t *testing.T) {
	ctx := NewDynamicContext(0, Options{})
	_, err := StructAsRoot(ctx, []byte{1, 2, 3}, "", func(*Context, []byte, int) {})
	if err != ErrBadInput {
		t.Fatalf("err = %v, want ErrBadInput", err)
	}
}

// TestAcceptHeaderRejectsShortBufferEvenWithoutFid covers spec.md §4.6 step
// 1: the size requirement (>= 4+IdentifierSize) is unconditional, not just
// enforced when a file identifier check was requested.
func TestAcceptHeaderRejectsShortBufferEvenWithoutFid(t *testing.T) {
	buf := make([]byte, 6)
	if acceptHeader(buf, "") {
		t.Fatalf("acceptHeader accepted a 6-byte buffer with no fid check")
	}

	ctx := NewDynamicContext(0, Options{})
	_, err := TableAsRoot(ctx, buf, "", func(*Context, *TableDescriptor) {})
	if err != ErrBadInput {
		t.Fatalf("err = %v, want ErrBadInput", err)
	}
}
