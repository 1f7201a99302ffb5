package flatjsonfb

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

// ManifestFileIdentifier marks a buffer whose root is a Manifest.
const ManifestFileIdentifier = "MNFS"

// CreateManifest writes a Manifest table: snapshot (0, a byte vector
// holding a complete nested Snapshot-rooted buffer), diffs (1, vector of
// DiffEntry tables), events (2, vector-of-union Detail values), events_type
// (3, the parallel discriminator vector). diffOffs and eventValueOffs must
// already be built before this call; eventTypes pairs 1:1 with
// eventValueOffs.
func CreateManifest(b *flatbuffers.Builder, snapshotBuf []byte, diffOffs []flatbuffers.UOffsetT, eventValueOffs []flatbuffers.UOffsetT, eventTypes []DetailType) flatbuffers.UOffsetT {
	snapVec := b.CreateByteVector(snapshotBuf)

	b.StartVector(4, len(diffOffs), 4)
	for i := len(diffOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(diffOffs[i])
	}
	diffsOff := b.EndVector(len(diffOffs))

	eventsTypeVec := b.CreateByteVector(eventTypes)

	b.StartVector(4, len(eventValueOffs), 4)
	for i := len(eventValueOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(eventValueOffs[i])
	}
	eventsValueOff := b.EndVector(len(eventValueOffs))

	b.StartObject(4)
	b.PrependUOffsetTSlot(0, snapVec, 0)
	b.PrependUOffsetTSlot(1, diffsOff, 0)
	b.PrependUOffsetTSlot(2, eventsValueOff, 0)
	b.PrependUOffsetTSlot(3, eventsTypeVec, 0)
	return b.EndObject()
}

// NewManifestBuffer builds a complete, finished Manifest-rooted buffer
// embedding snapshotBuf (itself produced by NewSnapshotBuffer) as a
// nested root, alongside diffs and events.
func NewManifestBuffer(snapshotBuf []byte, diffs []DiffEntryData, events []EventData) []byte {
	b := flatbuffers.NewBuilder(0)
	diffOffs := make([]flatbuffers.UOffsetT, len(diffs))
	for i, d := range diffs {
		diffOffs[i] = BuildDiffEntry(b, d)
	}
	eventOffs := make([]flatbuffers.UOffsetT, len(events))
	eventTypes := make([]DetailType, len(events))
	for i, e := range events {
		eventOffs[i] = buildEventDetail(b, e)
		eventTypes[i] = e.DetailType
	}
	m := CreateManifest(b, snapshotBuf, diffOffs, eventOffs, eventTypes)
	b.FinishWithFileIdentifier(m, []byte(ManifestFileIdentifier))
	return b.FinishedBytes()
}

// ManifestPrint is Manifest's TableFunc. The embedded snapshot is printed
// through jsonprinter's nested-root primitive, which consults ctx's
// fingerprint cache when Options.CacheNestedRoots is enabled. events
// exercises UnionVectorField, the vector-of-union C5 primitive no other
// field in this schema drives.
func ManifestPrint(ctx *jsonprinter.Context, td *jsonprinter.TableDescriptor) {
	jsonprinter.TableAsNestedRoot(ctx, td, 0, "snapshot", SnapshotPrint)
	jsonprinter.TableVectorField(ctx, td, 1, "diffs", DiffEntryPrint)
	jsonprinter.UnionVectorField(ctx, td, 2, 3, "events", detailTypeSymbol, detailDispatch)
}
