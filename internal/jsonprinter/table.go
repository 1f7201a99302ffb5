package jsonprinter

// TableDescriptor is handed by reference to a TableFunc so that field
// primitives (C5) can look up fields and track how many have been emitted
// so far, without the schema-generated caller needing to know field
// declaration order itself (spec.md §4.4).
type TableDescriptor struct {
	buf   []byte
	Type  uint8 // union discriminator this table was reached under, 0 if none
	Count int   // fields emitted so far; primitives increment this themselves
	TTL   int   // remaining recursion budget passed to any nested table
	Table int   // absolute position of the table's first byte
	Vtable int  // absolute position of the resolved vtable
	VSize int   // vtable's own recorded size, in bytes
}

// TableFunc is the capability a schema-generated "table printer" provides:
// given a Context and a TableDescriptor, call the field primitives for
// each of the table's fields, in declaration order. This is the Go
// analogue of the C runtime's flatcc_json_printer_table_f function
// pointer (spec.md §9).
type TableFunc func(ctx *Context, td *TableDescriptor)

// StructFunc is the struct analogue of TableFunc: structs have no vtable,
// so the callback only needs the struct's base position within buf.
type StructFunc func(ctx *Context, buf []byte, base int)

// printTableObject resolves p's vtable, emits the surrounding braces, and
// delegates to pf for the fields themselves (spec.md §4.4). ttl is
// decremented on entry; hitting zero sets ErrDeepRecursion and aborts this
// nested emission without emitting anything for it.
func (c *Context) printTableObject(buf []byte, p int, ttl int, discriminator uint8, pf TableFunc) {
	ttl--
	if ttl == 0 {
		c.setError(errDeepRecursion)
		return
	}
	c.printStart('{')
	vt := vtablePos(buf, p)
	td := TableDescriptor{
		buf:    buf,
		Type:   discriminator,
		Count:  0,
		TTL:    ttl,
		Table:  p,
		Vtable: vt,
		VSize:  int(readVOffset(buf, vt)),
	}
	pf(c, &td)
	c.printEnd('}')
}
