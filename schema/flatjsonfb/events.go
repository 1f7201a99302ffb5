package flatjsonfb

import flatbuffers "github.com/google/flatbuffers/go"

// EventData is the plain-Go input for one element of Manifest.events, a
// vector-of-union Detail: an audit trail of per-file changes alongside the
// DiffEntry summary, reusing the same Added/Modified/Deleted members.
type EventData struct {
	DetailType   DetailType
	AddedNewSize int64
	ModifiedOld  int64
	ModifiedNew  int64
}

// buildEventDetail builds e's union member table, or returns 0 for
// DetailNone (an event with no detail is not a meaningful element, but the
// zero offset still round-trips as a null element under UnionVectorField).
func buildEventDetail(b *flatbuffers.Builder, e EventData) flatbuffers.UOffsetT {
	switch e.DetailType {
	case DetailAdded:
		return CreateAddedDetail(b, e.AddedNewSize)
	case DetailModified:
		return CreateModifiedDetail(b, e.ModifiedOld, e.ModifiedNew)
	case DetailDeleted:
		return CreateDeletedDetail(b)
	default:
		return 0
	}
}
