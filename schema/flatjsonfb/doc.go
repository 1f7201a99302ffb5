// Package flatjsonfb is a worked example of the Generated-code ABI
// internal/jsonprinter expects a schema compiler to emit: one builder
// function and one TableFunc/StructFunc per table/struct/enum/union,
// calling straight into jsonprinter's field primitives in declaration
// order.
//
// The schema models a directory snapshot and the diff between two of
// them, deliberately small but touching most wire shapes jsonprinter
// supports: scalars, a string, an enum, an inline struct, a table
// vector, a union, a vector of unions, and a nested root (Manifest embeds a complete,
// independently-rooted Snapshot buffer as a byte vector rather than
// inlining it as an ordinary nested table).
//
// Construction uses github.com/google/flatbuffers/go's Builder exactly as
// schema-compiler-generated code would; nothing here is read by that
// Builder, only written by it and read back out by jsonprinter.
package flatjsonfb
