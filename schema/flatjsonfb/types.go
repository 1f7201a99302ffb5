package flatjsonfb

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

// ChangeKind mirrors TFMV-flashfs's internal/serializer DiffType enum,
// renamed for this domain.
type ChangeKind = uint8

const (
	ChangeAdded ChangeKind = iota
	ChangeModified
	ChangeDeleted
)

func changeKindSymbol(ctx *jsonprinter.Context, v ChangeKind) {
	switch v {
	case ChangeAdded:
		jsonprinter.WriteRawSymbol(ctx, "Added")
	case ChangeModified:
		jsonprinter.WriteRawSymbol(ctx, "Modified")
	case ChangeDeleted:
		jsonprinter.WriteRawSymbol(ctx, "Deleted")
	default:
		jsonprinter.WriteRawSymbol(ctx, "Unknown")
	}
}

// DetailType is the union discriminator for DiffEntry.Detail.
type DetailType = uint8

const (
	DetailNone DetailType = iota
	DetailAdded
	DetailModified
	DetailDeleted
)

// checksumSize and checksumAlign describe Checksum's fixed inline layout:
// Algo (uint8) at offset 0, Low (uint64) at offset 8, High (uint64) at
// offset 16, 24 bytes total, 8-byte aligned.
const (
	checksumSize  = 24
	checksumAlign = 8
)

// CreateChecksum writes a Checksum struct inline at the builder's current
// position. It must be the last thing written before the enclosing
// table's StartObject call, matching how google/flatbuffers/go requires
// struct fields to be built immediately adjacent to their parent table.
func CreateChecksum(b *flatbuffers.Builder, algo uint8, low, high uint64) flatbuffers.UOffsetT {
	b.Prep(checksumAlign, checksumSize)
	b.PrependUint64(high)
	b.PrependUint64(low)
	b.Pad(7)
	b.PrependByte(algo)
	return b.Offset()
}

// ChecksumPrint is the StructFunc for Checksum, callable directly as a
// field's struct printer or nested inline inside another StructFunc.
func ChecksumPrint(ctx *jsonprinter.Context, buf []byte, base int) {
	jsonprinter.ScalarStructField(ctx, 0, buf, base, 0, "algo", jsonprinter.Uint8Decoder)
	jsonprinter.ScalarStructField(ctx, 1, buf, base, 8, "low", jsonprinter.Uint64Decoder)
	jsonprinter.ScalarStructField(ctx, 2, buf, base, 16, "high", jsonprinter.Uint64Decoder)
}
