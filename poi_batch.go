package poi

import (
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/ria-cpu/poi/internal/pkg/opts"
	"github.com/ria-cpu/poi/internal/pkg/zerr"
)

// ResultT is the outcome of decoding one RawRecord.
type ResultT struct {
	Rec *Window2 // nil on error
	Err error
}

// DecodeAll decodes each raw record independently.
//
// Results are returned in input order.  A failed record does not stop
// the others; its ResultT carries the error.
func DecodeAll(recs []RawRecord, optFuncs ...OptT) []ResultT {
	var (
		o       = parseOpts(optFuncs...)
		results = make([]ResultT, len(recs))
		pool    = o.WorkerPool
		wg      sync.WaitGroup
		mux     sync.Mutex
	)

	switch {
	case pool != nil:
	case o.NParallel == 0:
		pool = opts.SyncWorkerPool
	default:
		wp := workerpool.New(o.NParallel)
		defer wp.StopWait()
		pool = wp
	}

	wg.Add(len(recs))
	for i := range recs {
		pool.Submit(func() {
			defer wg.Done()

			results[i] = decodeOne(&recs[i], &o)

			if err := results[i].Err; err != nil {
				o.Logger.Debug("record rejected",
					"idx", i,
					"offset", recs[i].Offset,
					"sid", fmt.Sprintf("%#04x", recs[i].Sid),
					"size", recs[i].Size(),
					"err", err,
				)
			}

			mux.Lock()
			o.Handler(i)
			mux.Unlock()
		})
	}
	wg.Wait()

	return results
}

func decodeOne(raw *RawRecord, o *opts.OptsT) ResultT {
	rec, err := Decode(raw.Sid, raw.Data, 0, raw.Size())
	if err != nil {
		return ResultT{Err: err}
	}

	if o.Strict && rec.Options.Reserved() {
		err = fmt.Errorf("%w: options %#04x", zerr.ErrReservedBits, uint16(rec.Options))
		return ResultT{Err: zerr.WrapRejected(err)}
	}

	return ResultT{Rec: rec}
}
