package jsonprinter

import (
	"encoding/binary"
	"math"
)

// This file is the only place that interprets the FlatBuffers wire layout:
// little-endian unsigned/signed offsets, voffsets, and the vtable-indexed
// field lookup every field primitive funnels through. See spec.md §3 and
// §4.2; compatible bit-for-bit with the canonical FlatBuffers encoding
// (proven in schema/flatjsonfb's tests, which build fixtures with the real
// google/flatbuffers/go Builder).

// readUOffset reads the 4-byte unsigned offset stored at buf[pos:] and
// returns the absolute position it points to, relative to pos.
func readUOffset(buf []byte, pos int) int {
	return pos + int(binary.LittleEndian.Uint32(buf[pos:]))
}

// readSOffset reads the 4-byte signed offset stored at buf[pos:].
func readSOffset(buf []byte, pos int) int32 {
	return int32(binary.LittleEndian.Uint32(buf[pos:]))
}

// readVOffset reads the 2-byte unsigned voffset at buf[pos:].
func readVOffset(buf []byte, pos int) uint16 {
	return binary.LittleEndian.Uint16(buf[pos:])
}

// readUint32 reads a raw little-endian uint32 at buf[pos:], used for vector
// and string length prefixes.
func readUint32(buf []byte, pos int) uint32 {
	return binary.LittleEndian.Uint32(buf[pos:])
}

// vtablePos returns the absolute position of the vtable belonging to the
// table at tablePos: the table's first 4 bytes are a signed offset,
// subtracted from the table's own position.
func vtablePos(buf []byte, tablePos int) int {
	return tablePos - int(readSOffset(buf, tablePos))
}

// getFieldPtr resolves field id within td to an absolute byte position, or
// -1 if the field is absent (out of vtable range, or present with a zero
// voffset). This is the single bounds check that guards every field read:
// vo is checked against the vtable's own recorded size before it is ever
// used to index into the vtable.
func getFieldPtr(buf []byte, td *TableDescriptor, id int) int {
	vo := (id + 2) * 2
	if vo >= int(td.VSize) {
		return -1
	}
	fieldVO := readVOffset(buf, td.Vtable+vo)
	if fieldVO == 0 {
		return -1
	}
	return td.Table + int(fieldVO)
}

// Scalar-width readers for the fixed wire types C5's field primitives are
// instantiated over. Byte-swapping for big-endian hosts is, per spec.md
// §1, an external collaborator's concern — these assume a little-endian
// wire, which FlatBuffers always is, decoded explicitly rather than via
// any host-endianness assumption.

func readU8(buf []byte, pos int) uint8   { return buf[pos] }
func readI8(buf []byte, pos int) int8    { return int8(buf[pos]) }
func readBool(buf []byte, pos int) bool  { return buf[pos] != 0 }
func readU16(buf []byte, pos int) uint16 { return binary.LittleEndian.Uint16(buf[pos:]) }
func readI16(buf []byte, pos int) int16  { return int16(binary.LittleEndian.Uint16(buf[pos:])) }
func readU32(buf []byte, pos int) uint32 { return binary.LittleEndian.Uint32(buf[pos:]) }
func readI32(buf []byte, pos int) int32  { return int32(binary.LittleEndian.Uint32(buf[pos:])) }
func readU64(buf []byte, pos int) uint64 { return binary.LittleEndian.Uint64(buf[pos:]) }
func readI64(buf []byte, pos int) int64  { return int64(binary.LittleEndian.Uint64(buf[pos:])) }
func readF32(buf []byte, pos int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[pos:]))
}
func readF64(buf []byte, pos int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[pos:]))
}
