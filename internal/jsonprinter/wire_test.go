package jsonprinter

import "testing"

func TestScalarReaders(t *testing.T) {
	buf := []byte{0xff, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	if got := readU8(buf, 0); got != 0xff {
		t.Fatalf("readU8 = %d", got)
	}
	if got := readI8(buf, 0); got != -1 {
		t.Fatalf("readI8 = %d", got)
	}
	if got := readU16(buf, 1); got != 0x0201 {
		t.Fatalf("readU16 = %#x", got)
	}
	if got := readU32(buf, 1); got != 0x04030201 {
		t.Fatalf("readU32 = %#x", got)
	}
	if got := readU64(buf, 1); got != 0x0807060504030201 {
		t.Fatalf("readU64 = %#x", got)
	}
}

func TestVTablePosAndFieldPtr(t *testing.T) {
	// A minimal hand-built table: vtable at offset 0, table at offset 8.
	// vtable: [vsize=8][tsize=8][field0 voffset=6]
	// table:  [soffset to vtable = 8][field0 byte at +6 = 0x2a]
	buf := make([]byte, 16)
	littleEndianPutU16(buf, 0, 8)
	littleEndianPutU16(buf, 2, 8)
	littleEndianPutU16(buf, 4, 6)
	littleEndianPutU32(buf, 8, 8) // soffset: table(8) - vtable(0) = 8
	buf[14] = 0x2a

	vt := vtablePos(buf, 8)
	if vt != 0 {
		t.Fatalf("vtablePos = %d, want 0", vt)
	}

	td := &TableDescriptor{buf: buf, Table: 8, Vtable: vt, VSize: int(readVOffset(buf, vt))}
	pos := getFieldPtr(buf, td, 0)
	if pos != 14 {
		t.Fatalf("getFieldPtr = %d, want 14", pos)
	}
	if buf[pos] != 0x2a {
		t.Fatalf("field byte = %#x", buf[pos])
	}

	// Field id 1's voffset slot is within vsize but holds zero: absent.
	if pos := getFieldPtr(buf, td, 1); pos != -1 {
		t.Fatalf("getFieldPtr(id=1) = %d, want -1", pos)
	}
}

func littleEndianPutU16(buf []byte, pos int, v uint16) {
	buf[pos] = byte(v)
	buf[pos+1] = byte(v >> 8)
}

func littleEndianPutU32(buf []byte, pos int, v uint32) {
	buf[pos] = byte(v)
	buf[pos+1] = byte(v >> 8)
	buf[pos+2] = byte(v >> 16)
	buf[pos+3] = byte(v >> 24)
}
