package flatjsonfb

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

// CreateAddedDetail writes an Added union member table: new_size (0).
func CreateAddedDetail(b *flatbuffers.Builder, newSize int64) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt64Slot(0, newSize, 0)
	return b.EndObject()
}

// CreateModifiedDetail writes a Modified union member table: old_size (0),
// new_size (1).
func CreateModifiedDetail(b *flatbuffers.Builder, oldSize, newSize int64) flatbuffers.UOffsetT {
	b.StartObject(2)
	b.PrependInt64Slot(0, oldSize, 0)
	b.PrependInt64Slot(1, newSize, 0)
	return b.EndObject()
}

// CreateDeletedDetail writes a Deleted union member table. It carries no
// fields; its presence alone is the payload.
func CreateDeletedDetail(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(0)
	return b.EndObject()
}

func AddedDetailPrint(ctx *jsonprinter.Context, td *jsonprinter.TableDescriptor) {
	jsonprinter.ScalarField(ctx, td, 0, "new_size", int64(0), jsonprinter.Int64Decoder)
}

func ModifiedDetailPrint(ctx *jsonprinter.Context, td *jsonprinter.TableDescriptor) {
	jsonprinter.ScalarField(ctx, td, 0, "old_size", int64(0), jsonprinter.Int64Decoder)
	jsonprinter.ScalarField(ctx, td, 1, "new_size", int64(0), jsonprinter.Int64Decoder)
}

func DeletedDetailPrint(ctx *jsonprinter.Context, td *jsonprinter.TableDescriptor) {
	// No fields: the surrounding {} printTableObject already emits is
	// the whole rendering.
}

func detailTypeSymbol(ctx *jsonprinter.Context, v DetailType) {
	switch v {
	case DetailNone:
		jsonprinter.WriteRawSymbol(ctx, "None")
	case DetailAdded:
		jsonprinter.WriteRawSymbol(ctx, "Added")
	case DetailModified:
		jsonprinter.WriteRawSymbol(ctx, "Modified")
	case DetailDeleted:
		jsonprinter.WriteRawSymbol(ctx, "Deleted")
	default:
		jsonprinter.WriteRawSymbol(ctx, "Unknown")
	}
}

// detailDispatch maps a Detail union discriminator to its TableFunc.
func detailDispatch(disc uint8) (jsonprinter.TableFunc, bool) {
	switch disc {
	case DetailAdded:
		return AddedDetailPrint, false
	case DetailModified:
		return ModifiedDetailPrint, false
	case DetailDeleted:
		return DeletedDetailPrint, false
	default:
		return nil, false
	}
}
