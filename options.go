package consoleink

import "github.com/stimpy77/ConsoleInk.NET/theme"

// Options configures a Writer. Build one with NewOptions and zero or more
// Option funcs; the zero value is never used directly since ConsoleWidth
// must fall back to 80.
type Options struct {
	ConsoleWidth  int
	EnableColors  bool
	Theme         theme.Theme
	StripHTML     bool
	UseHyperlinks bool
}

// Option mutates an Options during construction.
type Option func(*Options)

// WithWidth sets the wrapping column. Values <= 0 fall back to 80.
func WithWidth(n int) Option {
	return func(o *Options) { o.ConsoleWidth = n }
}

// WithColors toggles SGR emission. When false, no escape sequence is ever
// written regardless of what the theme contains.
func WithColors(enabled bool) Option {
	return func(o *Options) { o.EnableColors = enabled }
}

// WithTheme sets the style palette.
func WithTheme(t theme.Theme) Option {
	return func(o *Options) { o.Theme = t }
}

// WithStripHTML toggles removal of raw inline HTML tags from the output.
func WithStripHTML(strip bool) Option {
	return func(o *Options) { o.StripHTML = strip }
}

// WithHyperlinks toggles OSC-8 hyperlink emission for inline and reference
// links; images are never hyperlinked.
// Ignored entirely when EnableColors is false.
func WithHyperlinks(enabled bool) Option {
	return func(o *Options) { o.UseHyperlinks = enabled }
}

// NewOptions builds an Options from defaults (width 80, colors enabled,
// default theme, HTML stripped, hyperlinks on) overridden by opts in order.
func NewOptions(opts ...Option) Options {
	o := Options{
		ConsoleWidth:  80,
		EnableColors:  true,
		Theme:         theme.Default(),
		StripHTML:     true,
		UseHyperlinks: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ConsoleWidth <= 0 {
		o.ConsoleWidth = 80
	}
	return o
}
