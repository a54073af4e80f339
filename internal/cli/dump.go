package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/internal/telemetry"
	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

// DumpCmd renders one input.
type DumpCmd struct {
	Input  string      `arg:"" optional:"" help:"File to dump; - or empty reads stdin." placeholder:"FILE"`
	Output string      `help:"Write the dump to FILE instead of stdout." type:"path" placeholder:"FILE"`
	Copy   bool        `help:"Also copy the dump to the clipboard."`
	Format FormatFlags `embed:""`
	Range  InputFlags  `embed:""`
}

func (c *DumpCmd) Help() string {
	return heredoc.Doc(`
		Rows show a zero-padded address, hex bytes split into chunks and
		groups, and the printable ASCII of each byte ('.' otherwise).

		Examples:
		  hexpp dump firmware.bin
		  hexpp dump --skip 512 --length 64 --group 2 disk.img
		  printf 'He!' | hexpp dump --compact
	`)
}

func (c *DumpCmd) Run(root *CLI, rt *Runtime) (err error) {
	_, span := telemetry.Start(rt.context(), "hexpp.dump",
		attribute.String("hexpp.input", displayName(c.Input)),
	)
	defer func() { telemetry.End(span, err) }()

	data, err := readInput(rt, c.Input, c.Range)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(root, rt, c.Format, c.Range.Skip)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int("hexpp.bytes", len(data)),
		attribute.Int("hexpp.width", cfg.Width),
	)

	if c.Output == "" {
		return c.emit(rt, rt.Stdout, data, cfg)
	}
	file, cerr := os.Create(c.Output)
	if cerr != nil {
		return errdef.Wrap(errdef.CodeFilesystem, cerr, "create output")
	}
	return writeAndClose(file, func(w io.Writer) error {
		return c.emit(rt, w, data, cfg)
	})
}

// emit writes the dump to out and, with --copy, to the clipboard.
func (c *DumpCmd) emit(rt *Runtime, out io.Writer, data []byte, cfg hexpp.Config) error {
	if !c.Copy {
		return writeDump(out, func(w io.Writer) error {
			return hexpp.WriteWith(w, data, cfg)
		})
	}

	text := hexpp.RenderWith(data, cfg)
	if err := writeDump(out, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	}); err != nil {
		return err
	}
	if rt.Clipboard == nil {
		return errdef.New(errdef.CodeClipboard, "clipboard unavailable")
	}
	if err := rt.Clipboard(text); err != nil {
		return errdef.Wrap(errdef.CodeClipboard, err, "copy dump")
	}
	rt.logf("copied %d characters to the clipboard", len(text))
	return nil
}

// writeAndClose runs emit against wc and always closes it. A close failure
// is reported when emit itself succeeded.
func writeAndClose(wc io.WriteCloser, emit func(io.Writer) error) error {
	err := emit(wc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = errdef.Wrap(errdef.CodeFilesystem, cerr, "close output")
	}
	return err
}

// writeDump buffers a dump to w and terminates it with a newline unless it
// already ends with one or is empty.
func writeDump(w io.Writer, render func(io.Writer) error) error {
	bw := bufio.NewWriter(w)
	tw := &tailWriter{w: bw}
	if err := render(tw); err != nil {
		return errdef.Wrap(errdef.CodeOutput, err, "write dump")
	}
	if tw.n > 0 && tw.last != '\n' {
		if _, err := bw.WriteString("\n"); err != nil {
			return errdef.Wrap(errdef.CodeOutput, err, "write dump")
		}
	}
	if err := bw.Flush(); err != nil {
		return errdef.Wrap(errdef.CodeOutput, err, "flush dump")
	}
	return nil
}

// tailWriter remembers the last byte written through it.
type tailWriter struct {
	w    io.Writer
	n    int64
	last byte
}

func (t *tailWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.n += int64(n)
		t.last = p[n-1]
	}
	return n, err
}
