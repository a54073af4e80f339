package cli

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/internal/pager"
	"github.com/unkn0wn-root/hexpp/internal/telemetry"
)

// ViewCmd opens the interactive pager.
type ViewCmd struct {
	Input  string      `arg:"" optional:"" help:"File to view; - or empty reads stdin." placeholder:"FILE"`
	Format FormatFlags `embed:""`
	Range  InputFlags  `embed:""`
}

func (c *ViewCmd) Run(root *CLI, rt *Runtime) (err error) {
	_, span := telemetry.Start(rt.context(), "hexpp.view",
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
	if rt.Pager == nil {
		return errdef.New(errdef.CodeUI, "no terminal pager available")
	}
	return rt.Pager(pager.Options{
		Title:    displayName(c.Input),
		Data:     data,
		Config:   cfg,
		InputTTY: isStdin(c.Input),
	})
}
