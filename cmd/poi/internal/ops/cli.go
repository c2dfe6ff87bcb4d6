package ops

var CLI struct {
	Dump struct {
		File  string `optional:"" arg:"" type:"existingfile"`
		Skip  int64  `help:"Bytes to skip before the record header" short:"s"`
		Table bool   `help:"Render as a table instead of the raw dump" short:"t"`
	} `cmd:"" aliases:"d" help:"Decode and print one WINDOW2 record"`
	Scan struct {
		File   string `optional:"" arg:"" type:"existingfile"`
		Strict bool   `help:"Reject records with reserved option bits set"`
		Quiet  bool   `help:"Do not write progress to stdout" short:"q"`
	} `cmd:"" aliases:"s" help:"Decode every WINDOW2 record in a BIFF substream"`
	Verify struct {
		File  string `optional:"" arg:"" type:"existingfile"`
		Quiet bool   `help:"Do not write progress to stdout" short:"q"`
	} `cmd:"" aliases:"v,ver" help:"Check that WINDOW2 records survive a round trip"`
	Encode struct {
		Set           []string `help:"Option flag to set; repeatable (see 'poi flags')" short:"S"`
		TopRow        int16    `help:"Top visible row"`
		LeftCol       int16    `help:"Left visible column"`
		HeaderColor   uint32   `help:"Gridline and heading palette index" default:"64"`
		PageBreakZoom uint16   `help:"Page break preview zoom percent [0 default]"`
		NormalZoom    uint16   `help:"Normal view zoom percent [0 default]"`
		Output        string   `help:"Output filename; hex to stdout when unset" short:"o"`
		Force         bool     `help:"Force overwrite of existing file" short:"f"`
	} `cmd:"" aliases:"e,enc" help:"Build a canonical WINDOW2 record"`
	Flags struct {
	} `cmd:"" help:"List option flag names"`

	Cpus    int  `help:"Concurrency [0 synchronous] [-1 auto]" default:"-1" short:"c"`
	Verbose bool `help:"Log rejected and normalized records to stderr" short:"V"`
}
