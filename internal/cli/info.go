package cli

import (
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/unkn0wn-root/hexpp/internal/binaryview"
	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/internal/telemetry"
)

// textPreviewLimit caps the bytes decoded for --charset.
const textPreviewLimit = 256

// InfoCmd prints a summary of one input.
type InfoCmd struct {
	Input   string     `arg:"" optional:"" help:"File to inspect; - or empty reads stdin." placeholder:"FILE"`
	Type    string     `help:"Use this MIME type instead of sniffing the content." placeholder:"MIME"`
	Charset string     `help:"Decode a text preview from this charset, e.g. latin1 or shift_jis." placeholder:"LABEL"`
	Range   InputFlags `embed:""`
}

func (c *InfoCmd) Run(rt *Runtime) (err error) {
	_, span := telemetry.Start(rt.context(), "hexpp.info",
		attribute.String("hexpp.input", displayName(c.Input)),
	)
	defer func() { telemetry.End(span, err) }()

	data, err := readInput(rt, c.Input, c.Range)
	if err != nil {
		return err
	}
	meta := binaryview.Analyze(data, c.Type)
	span.SetAttributes(
		attribute.Int("hexpp.bytes", meta.Size),
		attribute.String("hexpp.kind", meta.Kind.String()),
	)

	w := &infoWriter{w: rt.Stdout}
	w.field("File", displayName(c.Input))
	w.field("Size", fmt.Sprintf("%d (0x%x)", meta.Size, meta.Size))
	w.field("Kind", meta.Kind.String())
	w.field("MIME", orDash(meta.MIME))
	w.field("Charset", orDash(meta.Charset))
	w.field("Printable", fmt.Sprint(meta.Printable))
	w.field("BLAKE2b", meta.Digest)

	if c.Charset != "" {
		head := data
		if len(head) > textPreviewLimit {
			head = head[:textPreviewLimit]
		}
		if text, ok, reason := binaryview.DecodeText(head, c.Charset); ok {
			w.field("Text", fmt.Sprintf("%q", text))
		} else {
			w.field("Text", "undecodable: "+reason)
		}
	}

	if meta.Size > 0 {
		w.line("Preview:")
		if w.err == nil {
			w.err = meta.Preview.WriteCompact(w.w)
		}
		w.line("")
	}
	return errdef.Wrap(errdef.CodeOutput, w.err, "write info")
}

// infoWriter keeps the first write error so fields can be written in a row.
type infoWriter struct {
	w   io.Writer
	err error
}

func (iw *infoWriter) field(label, value string) {
	iw.line(fmt.Sprintf("%-10s %s", label+":", value))
}

func (iw *infoWriter) line(s string) {
	if iw.err != nil {
		return
	}
	_, iw.err = fmt.Fprintln(iw.w, s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
