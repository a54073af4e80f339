package hexpp

import "io"

// View binds a configuration to a byte slice without formatting it. Both
// renderings are produced when asked for. A View borrows the slice and must
// not be used after the caller mutates or releases it.
type View struct {
	source []byte
	cfg    Config
}

// NewView binds source to the Default preset.
func NewView(source []byte) View {
	return Bind(source, Default())
}

// Bind attaches cfg to source.
func Bind(source []byte, cfg Config) View {
	return View{source: source, cfg: cfg}
}

// BindString attaches cfg to the bytes of s.
func BindString(s string, cfg Config) View {
	return Bind([]byte(s), cfg)
}

// Config returns the configuration the view was bound with.
func (v View) Config() Config { return v.cfg }

// Len returns the number of bound bytes.
func (v View) Len() int { return len(v.source) }

// Compact renders the bound bytes on one line, ignoring the title, ASCII and
// width settings of the bound configuration.
func (v View) Compact() string {
	return RenderWith(v.source, v.cfg.Compact())
}

// Detailed renders the bound bytes with the bound configuration verbatim.
func (v View) Detailed() string {
	return RenderWith(v.source, v.cfg)
}

// WriteCompact streams the compact rendering to w.
func (v View) WriteCompact(w io.Writer) error {
	return WriteWith(w, v.source, v.cfg.Compact())
}

// WriteDetailed streams the detailed rendering to w.
func (v View) WriteDetailed(w io.Writer) error {
	return WriteWith(w, v.source, v.cfg)
}

// String implements fmt.Stringer with the compact rendering.
func (v View) String() string {
	return v.Compact()
}
