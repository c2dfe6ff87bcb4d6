package poi

import (
	"log/slog"
	"runtime"

	"github.com/ria-cpu/poi/internal/pkg/opts"
)

// OptT is a function that sets an option on DecodeAll.
type OptT func(*opts.OptsT)

// WorkerPool is an interface for a worker pool implementation.
type WorkerPool = opts.WorkerPool

// Progress callback function type.
type CbProgressT = opts.ProgressFuncT

// Specify number of go routines to decode in parallel.  Defaults to 0.
//
//	0   Decode synchronously
//	1+  Decode asynchronously
//	<0  Decode asynchronously with the number of goroutines up to the CPU count
func WithParallel(n int) OptT {
	return func(o *opts.OptsT) {
		numCPU := runtime.NumCPU()
		if n < 0 || n > numCPU {
			o.NParallel = numCPU
		} else {
			o.NParallel = n
		}
	}
}

// Optional worker pool.  When unset and parallel decode is enabled,
// a pool of WithParallel workers is created for the call and stopped
// before DecodeAll returns.
func WithWorkerPool(wp WorkerPool) OptT {
	return func(o *opts.OptsT) {
		o.WorkerPool = wp
	}
}

// Reject records with any of the reserved option bits 12-15 set.
// Defaults to disabled; the codec itself ignores those bits on read
// and clears them on write.
func WithStrict(enable bool) OptT {
	return func(o *opts.OptsT) {
		o.Strict = enable
	}
}

// DecodeAll will emit the input index of each record once it is decoded.
//
// Note: Callback may be called from a secondary goroutine and indices
// are not ordered.  Calls are serialized.
func WithProgress(cb CbProgressT) OptT {
	return func(o *opts.OptsT) {
		o.Handler = cb
	}
}

// Logger for per record diagnostics.  Defaults to discard.
func WithLogger(l *slog.Logger) OptT {
	return func(o *opts.OptsT) {
		if l != nil {
			o.Logger = l
		}
	}
}

func defaultHandler(int) {}

func parseOpts(optFuncs ...OptT) opts.OptsT {
	o := opts.OptsT{
		NParallel: 0,                  // Synchronous by default; a decode is a few loads
		Handler:   defaultHandler,     // NOOP
		Logger:    opts.DiscardLogger, // Library is quiet unless asked
	}

	for _, oFunc := range optFuncs {
		oFunc(&o)
	}

	return o
}
