package jsonprinter

import (
	"sync"
	"sync/atomic"
)

// ContextPool reuses growable-sink Contexts across sequential emissions on
// one goroutine, the same pattern internal/hash/buffer_pool.go uses for
// raw byte buffers: a sync.Pool underneath, plus counters so a caller can
// see whether the pool is actually paying for itself.
type ContextPool struct {
	pool        sync.Pool
	bufferSize  int
	opts        Options
	gets        uint64
	puts        uint64
	allocations uint64
}

// NewContextPool returns a pool of growable Contexts, each started at
// bufferSize bytes (0 for DefaultDynBufferSize) and configured with opts.
func NewContextPool(bufferSize int, opts Options) *ContextPool {
	p := &ContextPool{bufferSize: bufferSize, opts: opts}
	p.pool.New = func() interface{} {
		atomic.AddUint64(&p.allocations, 1)
		return NewDynamicContext(bufferSize, opts)
	}
	return p
}

// Get returns a Context ready for a new emission sequence.
func (p *ContextPool) Get() *Context {
	atomic.AddUint64(&p.gets, 1)
	return p.pool.Get().(*Context)
}

// Put returns ctx to the pool for reuse. ctx must not still be in use by a
// caller holding a slice from GetBuffer or FinalizeDynamicBuffer.
func (p *ContextPool) Put(ctx *Context) {
	atomic.AddUint64(&p.puts, 1)
	ctx.p = 0
	ctx.total = 0
	ctx.level = 0
	ctx.errCode = errNone
	ctx.ioErr = nil
	if ctx.cache != nil {
		ctx.cache.Reset()
	}
	p.pool.Put(ctx)
}

// ContextPoolMetrics reports pool usage counters.
type ContextPoolMetrics struct {
	Gets        uint64
	Puts        uint64
	Allocations uint64
}

// Metrics snapshots the pool's usage counters.
func (p *ContextPool) Metrics() ContextPoolMetrics {
	return ContextPoolMetrics{
		Gets:        atomic.LoadUint64(&p.gets),
		Puts:        atomic.LoadUint64(&p.puts),
		Allocations: atomic.LoadUint64(&p.allocations),
	}
}
