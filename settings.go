package kapst

// Settings is opaque to the core except that it is forwarded verbatim into
// every handler invocation via HandlerContext. It carries nothing the core
// itself branches on.
type Settings struct {
	// DisplayStyle is a hint downstream builders may use to pick a display
	// vs. inline layout. The core never reads it.
	DisplayStyle string
	// Strict, if true, is a hint that a host wants stricter diagnostics from
	// its own handlers. The core never reads it.
	Strict bool
}

// SettingsOption configures a Settings value.
type SettingsOption func(*Settings)

// WithDisplayStyle sets the DisplayStyle hint.
func WithDisplayStyle(style string) SettingsOption {
	return func(s *Settings) { s.DisplayStyle = style }
}

// WithStrict sets the Strict hint.
func WithStrict(strict bool) SettingsOption {
	return func(s *Settings) { s.Strict = strict }
}

// NewSettings builds a Settings value from options.
func NewSettings(opts ...SettingsOption) Settings {
	s := Settings{DisplayStyle: "display"}
	for _, o := range opts {
		o(&s)
	}
	return s
}
