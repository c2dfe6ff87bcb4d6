package record

import (
	"fmt"
	"strings"

	"github.com/ria-cpu/poi/internal/pkg/options"
)

// String renders a diagnostic dump of the record.  Values are hex;
// signed fields are shown as their 16 bit two's complement.
func (r *Window2T) String() string {
	var sb strings.Builder

	sb.WriteString("[WINDOW2]\n")
	fmt.Fprintf(&sb, "    .options        = %x\n", uint16(r.Options))
	for _, f := range options.All() {
		fmt.Fprintf(&sb, "       .%-12s= %t\n", f.Label(), r.Options.IsSet(f))
	}
	fmt.Fprintf(&sb, "    .toprow         = %x\n", uint16(r.TopRow))
	fmt.Fprintf(&sb, "    .leftcol        = %x\n", uint16(r.LeftCol))
	fmt.Fprintf(&sb, "    .headercolor    = %x\n", r.HeaderColor)
	fmt.Fprintf(&sb, "    .pagebreakzoom  = %x\n", r.PageBreakZoom)
	fmt.Fprintf(&sb, "    .normalzoom     = %x\n", r.NormalZoom)
	fmt.Fprintf(&sb, "    .reserved       = %x\n", r.Reserved)
	sb.WriteString("[/WINDOW2]\n")

	return sb.String()
}
