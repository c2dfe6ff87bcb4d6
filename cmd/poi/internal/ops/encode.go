package ops

import (
	"encoding/hex"
	"fmt"

	"github.com/ria-cpu/poi"
)

func RunEncode() error {
	w, err := buildRecord()
	if err != nil {
		return err
	}

	wr, err := newOutput(CLI.Encode.Output, CLI.Encode.Force)
	if err != nil {
		return err
	}

	if CLI.Encode.Output == "" || CLI.Encode.Output == "-" {
		_, err = fmt.Fprintln(wr, hex.EncodeToString(w.Bytes()))
	} else {
		_, err = w.WriteTo(wr)
	}

	if cerr := wr.Close(); err == nil {
		err = cerr
	}
	return err
}

func buildRecord() (*poi.Window2, error) {
	w := poi.NewWindow2()

	for _, name := range CLI.Encode.Set {
		if err := w.SetFlagByName(name, true); err != nil {
			return nil, err
		}
	}

	w.TopRow = CLI.Encode.TopRow
	w.LeftCol = CLI.Encode.LeftCol
	w.HeaderColor = CLI.Encode.HeaderColor
	w.PageBreakZoom = CLI.Encode.PageBreakZoom
	w.NormalZoom = CLI.Encode.NormalZoom

	return w, nil
}
