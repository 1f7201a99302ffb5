package flatjsonfb

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

// DiffEntryData is the plain-Go input for CreateDiffEntry/BuildDiffEntry.
// Exactly one of the Added/Modified/Deleted fields is meaningful,
// selected by DetailType; this mirrors TFMV-flashfs's DiffEntry, which
// used a single struct with unused fields instead of a real union (see
// DESIGN.md for why the union form was chosen here).
type DiffEntryData struct {
	Path    string
	Kind    ChangeKind
	SumAlgo uint8
	SumLow  uint64
	SumHigh uint64

	DetailType   DetailType
	AddedNewSize int64
	ModifiedOld  int64
	ModifiedNew  int64
}

// BuildDiffEntry builds d's union member (if any) and then the DiffEntry
// table itself, returning its offset.
func BuildDiffEntry(b *flatbuffers.Builder, d DiffEntryData) flatbuffers.UOffsetT {
	var detailOff flatbuffers.UOffsetT
	switch d.DetailType {
	case DetailAdded:
		detailOff = CreateAddedDetail(b, d.AddedNewSize)
	case DetailModified:
		detailOff = CreateModifiedDetail(b, d.ModifiedOld, d.ModifiedNew)
	case DetailDeleted:
		detailOff = CreateDeletedDetail(b)
	}
	return CreateDiffEntry(b, d.Path, d.Kind, d.SumAlgo, d.SumLow, d.SumHigh, d.DetailType, detailOff)
}

// CreateDiffEntry writes a DiffEntry table: path (0), kind (1), sum (2,
// inline Checksum struct), detail_type (3), detail (4, union value).
// detailOff must already be built (or zero, for DetailNone) before this
// call.
func CreateDiffEntry(b *flatbuffers.Builder, path string, kind ChangeKind, algo uint8, low, high uint64, detailType DetailType, detailOff flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	pathOff := b.CreateString(path)
	sumOff := CreateChecksum(b, algo, low, high)
	b.StartObject(5)
	b.PrependStructSlot(2, sumOff, 0)
	b.PrependUOffsetTSlot(0, pathOff, 0)
	b.PrependByteSlot(1, kind, 0)
	b.PrependByteSlot(3, detailType, 0)
	if detailOff != 0 {
		b.PrependUOffsetTSlot(4, detailOff, 0)
	}
	return b.EndObject()
}

// DiffEntryPrint is DiffEntry's TableFunc. detail_type (3) is the neighbor
// of detail (4): UnionField reads it itself and always emits "detail_type"
// ahead of "detail", per spec.md §4.5.
func DiffEntryPrint(ctx *jsonprinter.Context, td *jsonprinter.TableDescriptor) {
	jsonprinter.StringField(ctx, td, 0, "path")
	jsonprinter.EnumField(ctx, td, 1, "kind", ChangeAdded, jsonprinter.Uint8Decoder, changeKindSymbol)
	jsonprinter.StructField(ctx, td, 2, "sum", ChecksumPrint)
	jsonprinter.UnionField(ctx, td, 4, "detail", detailTypeSymbol, detailDispatch)
}
