/*
Package jsonprinter implements the runtime half of a FlatBuffers-to-JSON
printer: given a pointer into an already-encoded, little-endian FlatBuffers
wire buffer, it walks the buffer's tables, vtables, structs, vectors, and
unions and writes a JSON rendering to a buffered sink, without ever
building an intermediate tree.

It does not know about schemas. Schema-specific code (see
github.com/TFMV/flatjson/schema/flatjsonfb for a worked example) calls the
field primitives exposed here — ScalarField, EnumField, StringField,
TableField, UnionField, and their vector forms — in a table's declared
field order, in a function with the TableFunc (or StructFunc) signature.

# Buffering

A Context owns a single contiguous byte buffer split into a writable
region ending at pflush and a reserved tail of at least Reserve bytes.
Any single primitive may write up to Reserve bytes without checking for
space, provided the buffer invariant (p <= pflush) held going in; primitives
that can write unbounded data (strings, indentation, base64) check and
flush in a loop instead. This is the same discipline flatcc's C runtime
uses and for the same reason: small emissions (numbers, punctuation, one
indent level) never pay for a bounds check.

# Sinks

Three sink kinds are supported: a growable in-memory buffer, a
caller-supplied fixed buffer (which raises ErrOverflow instead of growing),
and a streaming io.Writer sink that periodically flushes its front portion
and compacts the tail forward.
*/
package jsonprinter
