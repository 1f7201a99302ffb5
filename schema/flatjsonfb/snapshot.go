package flatjsonfb

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

// SnapshotFileIdentifier marks a buffer whose root is a Snapshot, used
// both for standalone Snapshot buffers and for the nested buffer a
// Manifest embeds.
const SnapshotFileIdentifier = "SNAP"

// CreateSnapshot writes a Snapshot table: root (0, string), entries (1,
// vector of FileEntry tables). files must already be built (via
// CreateFileEntry) before this call.
func CreateSnapshot(b *flatbuffers.Builder, root string, files []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	rootOff := b.CreateString(root)
	b.StartVector(4, len(files), 4)
	for i := len(files) - 1; i >= 0; i-- {
		b.PrependUOffsetT(files[i])
	}
	entriesOff := b.EndVector(len(files))
	b.StartObject(2)
	b.PrependUOffsetTSlot(0, rootOff, 0)
	b.PrependUOffsetTSlot(1, entriesOff, 0)
	return b.EndObject()
}

// NewSnapshotBuffer builds a complete, finished Snapshot-rooted buffer
// from plain Go data.
func NewSnapshotBuffer(root string, files []FileEntryData) []byte {
	b := flatbuffers.NewBuilder(0)
	offs := make([]flatbuffers.UOffsetT, len(files))
	for i, f := range files {
		offs[i] = CreateFileEntry(b, f)
	}
	snap := CreateSnapshot(b, root, offs)
	b.FinishWithFileIdentifier(snap, []byte(SnapshotFileIdentifier))
	return b.FinishedBytes()
}

// SnapshotPrint is Snapshot's TableFunc.
func SnapshotPrint(ctx *jsonprinter.Context, td *jsonprinter.TableDescriptor) {
	jsonprinter.StringField(ctx, td, 0, "root")
	jsonprinter.TableVectorField(ctx, td, 1, "entries", FileEntryPrint)
}
