package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ria-cpu/poi"
)

// Demonstrate building a record and writing its canonical form.
func encode(out io.Writer) error {

	w := poi.NewWindow2()

	// Flags are toggled through the options word, by accessor or by name.
	w.Options.SetDisplayGridlines(true)
	w.Options.SetDisplayRowColHeadings(true)
	if err := w.SetFlagByName("selected", true); err != nil {
		return err
	}

	w.TopRow = 12
	w.LeftCol = 2
	w.HeaderColor = 0x40
	w.NormalZoom = 125

	// Always 22 bytes; the reserved options bits are never written.
	_, err := w.WriteTo(out)
	return err
}

// Demonstrate decoding payloads split from a substream, in parallel.
func decodeBatch(raws []poi.RawRecord) {

	results := poi.DecodeAll(raws, poi.WithParallel(2))

	// Results are in input order; rejected records carry an error.
	for i, res := range results {
		if res.Err != nil {
			fmt.Printf("%d: rejected=%v %v\n", i, poi.Rejected(res.Err), res.Err)
			continue
		}
		fmt.Printf("%d: top=%d left=%d zoom=%d\n", i, res.Rec.TopRow, res.Rec.LeftCol, res.Rec.NormalZoom)
	}
}

func main() {

	var buf bytes.Buffer

	if err := encode(&buf); err != nil {
		panic(err)
	}

	// Read it back through the record header.
	w, err := poi.ReadWindow2(bytes.NewReader(buf.Bytes()))
	if err != nil {
		panic(err)
	}
	fmt.Print(w.String())

	payload := buf.Bytes()[4:]

	decodeBatch([]poi.RawRecord{
		{Sid: poi.Sid, Data: payload},
		{Sid: poi.Sid, Data: payload[:poi.MinPayloadSz]}, // legacy short form
		{Sid: 0x003d, Data: payload},                     // WINDOW1
		{Sid: poi.Sid, Data: payload[:6]},
	})
}
