package ops

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ria-cpu/poi"
	"github.com/ria-cpu/poi/internal/pkg/biff"
)

type streamT struct {
	raws  []poi.RawRecord // WINDOW2 records only
	total int
	bytes int64
}

func RunScan() error {
	src, err := newSource(CLI.Scan.File)
	if err != nil {
		return err
	}

	defer src.Close()

	return _scan(src, os.Stdout)
}

// Split the substream, keeping every WINDOW2 record.
func readStream(src *targetT, update func()) (st streamT, err error) {
	rd := biff.NewReader(src.Reader())

	for {
		var rec biff.RecordT
		if rec, err = rd.Next(); err != nil {
			if err == io.EOF {
				err = nil
			}
			break
		}

		st.total++
		if rec.Sid == poi.Sid {
			st.raws = append(st.raws, rec)
		}
		update()
	}

	st.bytes = rd.Offset()
	return
}

func decodeOpts(strict bool) []poi.OptT {
	return []poi.OptT{
		poi.WithParallel(CLI.Cpus),
		poi.WithStrict(strict),
		poi.WithLogger(newLogger()),
	}
}

func _scan(src *targetT, wr io.Writer) error {
	update, done := startProgress("Scanning", src, CLI.Scan.Quiet || src.srcSz <= 0)

	st, err := readStream(src, update)
	done()

	if err != nil {
		return err
	}

	var (
		results  = poi.DecodeAll(st.raws, decodeOpts(CLI.Scan.Strict)...)
		rejected int
	)

	t := newTable("WINDOW2 records")
	t.SetOutputMirror(wr)
	t.AppendHeader(table.Row{"#", "Offset", "Size", "Options", "Top", "Left", "Color", "PgBrk", "Zoom", "Flags"})

	for i, res := range results {
		raw := st.raws[i]
		if res.Err != nil {
			rejected++
			t.AppendRow(table.Row{i, raw.Offset, raw.Size(), res.Err.Error()}, table.RowConfig{AutoMerge: true})
			continue
		}

		w := res.Rec
		t.AppendRow(table.Row{
			i,
			raw.Offset,
			raw.Size(),
			fmt.Sprintf("%#04x", uint16(w.Options)),
			w.TopRow,
			w.LeftCol,
			w.HeaderColor,
			zoomStr(w.PageBreakZoom),
			zoomStr(w.NormalZoom),
			flagList(w.Options),
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "", "", "", "", "Rejected", rejected})
	t.Render()

	s := newTable("Scan results")
	s.SetOutputMirror(wr)
	s.AppendHeader(table.Row{"Key", "Value"})
	s.AppendRows([]table.Row{
		{"File name", src.Name()},
		{"Compressed", src.lz4},
		{"Bytes", st.bytes},
		{"Records", st.total},
		{"WINDOW2", len(st.raws)},
		{"Rejected", rejected},
	})
	s.Render()

	return nil
}
