package opts

import (
	"log/slog"
)

// Emits the index of each record as its decode completes.
type ProgressFuncT func(idx int)

type OptsT struct {
	NParallel  int
	Strict     bool
	Handler    ProgressFuncT
	WorkerPool WorkerPool
	Logger     *slog.Logger
}

type WorkerPool interface {
	Submit(task func())
}

// Pool that runs every task on the calling goroutine.
type syncWorkerPool struct {
}

func (s *syncWorkerPool) Submit(task func()) {
	task()
}

var SyncWorkerPool = &syncWorkerPool{}

var DiscardLogger = slog.New(slog.DiscardHandler)
