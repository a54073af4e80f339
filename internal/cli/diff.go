package cli

import (
	"io"

	udiff "github.com/aymanbagabas/go-udiff"
	"go.opentelemetry.io/otel/attribute"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/internal/telemetry"
	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

// DiffCmd compares the dumps of two inputs rendered with one configuration.
// It exits with status 1 when they differ.
type DiffCmd struct {
	Left   string      `arg:"" help:"First input; - reads stdin." placeholder:"A"`
	Right  string      `arg:"" help:"Second input; - reads stdin." placeholder:"B"`
	Format FormatFlags `embed:""`
	Range  InputFlags  `embed:""`
}

func (c *DiffCmd) Run(root *CLI, rt *Runtime) (err error) {
	_, span := telemetry.Start(rt.context(), "hexpp.diff",
		attribute.String("hexpp.left", displayName(c.Left)),
		attribute.String("hexpp.right", displayName(c.Right)),
	)
	defer func() {
		if err == errDiffers {
			span.SetAttributes(attribute.Bool("hexpp.differs", true))
			span.End()
			return
		}
		telemetry.End(span, err)
	}()

	if isStdin(c.Left) && isStdin(c.Right) {
		return errdef.New(errdef.CodeUsage, "diff: only one input may be stdin")
	}

	left, err := readInput(rt, c.Left, c.Range)
	if err != nil {
		return err
	}
	right, err := readInput(rt, c.Right, c.Range)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(root, rt, c.Format, c.Range.Skip)
	if err != nil {
		return err
	}

	a := hexpp.RenderWith(left, cfg) + "\n"
	b := hexpp.RenderWith(right, cfg) + "\n"
	if a == b {
		rt.logf("%s and %s render identically", displayName(c.Left), displayName(c.Right))
		return nil
	}

	diff := udiff.Unified(displayName(c.Left), displayName(c.Right), a, b)
	if _, err := io.WriteString(rt.Stdout, diff); err != nil {
		return errdef.Wrap(errdef.CodeOutput, err, "write diff")
	}
	return errDiffers
}
