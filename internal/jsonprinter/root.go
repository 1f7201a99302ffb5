package jsonprinter

import "bytes"

// This file is C6: the two entry points a caller (or schema generated
// code's top-level Print functions) actually calls, each performing the
// header check flatcc's accept_header does before handing off to the
// table-walking engine.

// acceptHeader verifies that buf is at least large enough to hold a root
// uoffset plus a file identifier, and, if fid is non-empty, that the
// 4-byte file identifier immediately following the root offset matches
// it. The size requirement is unconditional, per spec.md §4.6 step 1: it
// does not relax just because no fid check was requested.
func acceptHeader(buf []byte, fid string) bool {
	if len(buf) < 4+IdentifierSize {
		return false
	}
	if fid == "" {
		return true
	}
	if len(fid) != IdentifierSize {
		return false
	}
	return bytes.Equal(buf[4:4+IdentifierSize], []byte(fid))
}

// TableAsRoot walks buf as a table-rooted FlatBuffers buffer and writes its
// JSON rendering to ctx's sink. fid, if non-empty, must be exactly
// IdentifierSize bytes and is checked against the buffer's embedded file
// identifier; pass "" to skip the check. pf is the schema's top-level
// table printer. Returns the number of bytes written on success; ctx.Err()
// holds the failure reason otherwise.
func TableAsRoot(ctx *Context, buf []byte, fid string, pf TableFunc) (int, error) {
	if !acceptHeader(buf, fid) {
		ctx.setError(errBadInput)
		return 0, ctx.Err()
	}
	rootPos := readUOffset(buf, 0)
	ctx.printTableObject(buf, rootPos, ctx.Opts.maxLevels(), 0, pf)
	ctx.trailingNewline()
	ctx.Flush()
	if err := ctx.Err(); err != nil {
		return ctx.Total(), err
	}
	return ctx.Total(), nil
}

// StructAsRoot is the struct-rooted analogue of TableAsRoot: the root
// value is a struct stored directly at the resolved offset, with no
// vtable.
func StructAsRoot(ctx *Context, buf []byte, fid string, sf StructFunc) (int, error) {
	if !acceptHeader(buf, fid) {
		ctx.setError(errBadInput)
		return 0, ctx.Err()
	}
	rootPos := readUOffset(buf, 0)
	ctx.printStart('{')
	sf(ctx, buf, rootPos)
	ctx.printEnd('}')
	ctx.trailingNewline()
	ctx.Flush()
	if err := ctx.Err(); err != nil {
		return ctx.Total(), err
	}
	return ctx.Total(), nil
}
