package jsonprinter

import (
	"io"

	"github.com/TFMV/flatjson/internal/fingerprint"
)

// sinkKind identifies which flush strategy a Context is bound to. Set once
// at construction and never changed for the life of the Context.
type sinkKind int

const (
	sinkStream sinkKind = iota
	sinkFixed
	sinkGrowable
)

// Context is the single mutable entity in this package: a write cursor
// over an owned or borrowed byte buffer, bound to exactly one sink kind,
// plus the formatting Options and sticky error state for one emission
// sequence. A Context is not safe for concurrent use; distinct Contexts
// are fully independent (see ContextPool for reuse across sequential
// emissions on one goroutine, and package fingerprint for the nested-root
// dedup cache one Context may optionally carry).
type Context struct {
	buf       []byte
	p         int
	pflush    int
	size      int
	flushSize int
	total     int
	ownBuffer bool
	kind      sinkKind

	w io.Writer // sinkStream only

	Opts  Options
	level int

	errCode errorCode
	ioErr   error

	cache *fingerprint.Cache // non-nil only if Opts.CacheNestedRoots
}

// NewStreamContext binds ctx to an io.Writer sink: output is flushed in
// DefaultFlushSize chunks as it is produced, so memory use stays bounded
// regardless of total output size.
func NewStreamContext(w io.Writer, opts Options) *Context {
	c := &Context{
		buf:       make([]byte, DefaultBufferSize),
		size:      DefaultBufferSize,
		flushSize: DefaultFlushSize,
		kind:      sinkStream,
		w:         w,
		Opts:      opts,
		ownBuffer: true,
	}
	c.pflush = c.flushSize
	if opts.CacheNestedRoots {
		c.cache = fingerprint.NewCache(fingerprint.BLAKE3)
	}
	return c
}

// NewFixedContext binds ctx to a caller-supplied buffer. A flush past
// flushSize sets ErrOverflow rather than growing or draining anywhere;
// buffer must be at least Reserve bytes.
func NewFixedContext(buffer []byte, opts Options) (*Context, error) {
	if len(buffer) < Reserve {
		return nil, ErrOverflow
	}
	c := &Context{
		buf:       buffer,
		size:      len(buffer),
		flushSize: len(buffer) - Reserve,
		kind:      sinkFixed,
		Opts:      opts,
	}
	c.pflush = c.flushSize
	if opts.CacheNestedRoots {
		c.cache = fingerprint.NewCache(fingerprint.BLAKE3)
	}
	return c, nil
}

// NewDynamicContext binds ctx to a growable, package-owned buffer. A flush
// past flushSize doubles capacity; bufferSize of 0 uses DefaultDynBufferSize.
func NewDynamicContext(bufferSize int, opts Options) *Context {
	if bufferSize == 0 {
		bufferSize = DefaultDynBufferSize
	}
	if bufferSize < Reserve {
		bufferSize = Reserve
	}
	c := &Context{
		buf:       make([]byte, bufferSize),
		size:      bufferSize,
		flushSize: bufferSize - Reserve,
		kind:      sinkGrowable,
		ownBuffer: true,
		Opts:      opts,
	}
	c.pflush = c.flushSize
	if opts.CacheNestedRoots {
		c.cache = fingerprint.NewCache(fingerprint.BLAKE3)
	}
	return c
}

// Err returns the sticky error for this Context's emission sequence, or
// nil if nothing has failed. Once set it never clears itself; only Clear,
// or returning the Context to a ContextPool, resets it.
func (c *Context) Err() error {
	if c.ioErr != nil {
		return c.ioErr
	}
	return c.errCode.err()
}

// Total returns the number of bytes emitted so far in this sequence: the
// bytes already handed to the sink plus those still held in the buffer.
func (c *Context) Total() int {
	return c.total + c.p
}

func (c *Context) setError(code errorCode) {
	if c.errCode == errNone {
		c.errCode = code
	}
}

// Clear releases any package-owned buffer and resets the Context to its
// zero value. Call it to abandon a sequence early, or once the bytes from
// GetBuffer are no longer needed.
func (c *Context) Clear() {
	*c = Context{}
}

// --- flush discipline (C1) ---

// flush implements spec.md §4.1: partial=true drains flushSize bytes and
// compacts the tail forward (only valid when p >= pflush); partial=false
// drains everything from buf[0:p]. That draining is the stream sink's; the
// fixed sink sets ErrOverflow once p has reached pflush, and the growable
// sink doubles its buffer.
func (c *Context) flush(partial bool) {
	if c.errCode != errNone && c.kind != sinkStream {
		// Sticky error already set for a sink with no useful recovery;
		// still attempt to make forward progress so callers that don't
		// check after every primitive don't panic on an out-of-room buffer.
	}
	switch c.kind {
	case sinkStream:
		c.flushStream(partial)
	case sinkFixed:
		c.flushFixed()
	case sinkGrowable:
		c.flushGrowable()
	}
}

func (c *Context) flushStream(partial bool) {
	if partial && c.p >= c.pflush {
		spill := c.p - c.pflush
		if _, err := c.w.Write(c.buf[:c.flushSize]); err != nil {
			c.ioErr = err
			c.setError(errOverflow)
		}
		copy(c.buf, c.buf[c.flushSize:c.flushSize+spill])
		c.p = spill
		c.total += c.flushSize
		return
	}
	n := c.p
	if _, err := c.w.Write(c.buf[:n]); err != nil {
		c.ioErr = err
		c.setError(errOverflow)
	}
	c.p = 0
	c.total += n
}

func (c *Context) flushFixed() {
	if c.p < c.pflush {
		return
	}
	c.total += c.p
	c.p = 0
	c.setError(errOverflow)
}

func (c *Context) flushGrowable() {
	newSize := c.size * 2
	grown := make([]byte, newSize)
	copy(grown, c.buf[:c.p])
	c.buf = grown
	c.size = newSize
	c.flushSize = newSize - Reserve
	c.pflush = c.flushSize
	// p and total are unchanged: growing never discards buffered bytes.
}

// Flush forces a final (non-partial) flush, draining everything currently
// buffered to the sink. Root drivers call this once at the end of an
// emission sequence.
func (c *Context) Flush() {
	c.flush(false)
}

// flushPartial is the internal entry point primitives call at places where
// the C runtime would call flatcc_json_printer_flush_partial: a no-op
// unless p has reached pflush.
func (c *Context) flushPartial() {
	if c.p >= c.pflush {
		c.flush(true)
	}
}

// --- fixed and growable buffer retrieval / finalize (C7) ---

// GetBuffer returns the bytes written so far to a fixed or growable sink
// (not valid for a stream sink, which has already handed everything to its
// io.Writer). The returned slice aliases the Context's internal buffer and
// is only valid until the next write or Clear.
func (c *Context) GetBuffer() []byte {
	return c.buf[:c.p]
}

// FinalizeDynamicBuffer emits a trailing newline (if indenting), flushes,
// and returns the accumulated bytes for a growable-sink Context,
// transferring ownership to the caller and resetting the Context. It is
// the Go analogue of flatcc_json_printer_finalize_dynamic_buffer, minus
// the null terminator (unneeded for a Go []byte).
func (c *Context) FinalizeDynamicBuffer() []byte {
	c.trailingNewline()
	c.Flush()
	buf := append([]byte(nil), c.buf[:c.p]...)
	c.ownBuffer = false
	c.Clear()
	return buf
}
