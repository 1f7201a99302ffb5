package flatjsonfb

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

// FileEntryData is the plain-Go input CreateFileEntry builds a wire table
// from; it exists only to keep test and example code readable, not as
// part of the generated-code ABI itself.
type FileEntryData struct {
	Path        string
	Size        int64
	ModTimeUnix int64
	SumAlgo     uint8
	SumLow      uint64
	SumHigh     uint64
}

// CreateFileEntry writes one FileEntry table: path (0), size (1),
// mod_time_unix (2), sum (3, an inline Checksum struct).
func CreateFileEntry(b *flatbuffers.Builder, d FileEntryData) flatbuffers.UOffsetT {
	pathOff := b.CreateString(d.Path)
	sumOff := CreateChecksum(b, d.SumAlgo, d.SumLow, d.SumHigh)
	b.StartObject(4)
	b.PrependStructSlot(3, sumOff, 0)
	b.PrependUOffsetTSlot(0, pathOff, 0)
	b.PrependInt64Slot(1, d.Size, 0)
	b.PrependInt64Slot(2, d.ModTimeUnix, 0)
	return b.EndObject()
}

// FileEntryPrint is FileEntry's TableFunc.
func FileEntryPrint(ctx *jsonprinter.Context, td *jsonprinter.TableDescriptor) {
	jsonprinter.StringField(ctx, td, 0, "path")
	jsonprinter.ScalarField(ctx, td, 1, "size", int64(0), jsonprinter.Int64Decoder)
	jsonprinter.ScalarField(ctx, td, 2, "mod_time_unix", int64(0), jsonprinter.Int64Decoder)
	jsonprinter.StructField(ctx, td, 3, "sum", ChecksumPrint)
}
