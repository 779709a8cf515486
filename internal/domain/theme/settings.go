package theme

const (
	DefaultOutput       = "app/globals.css"
	DefaultRootSelector = ":root"
	DefaultDarkSelector = ".dark"
	DefaultConversion   = "oklch"
)

// DefaultImports are the stylesheet imports emitted when a document lists none.
var DefaultImports = []string{"tailwindcss", "tw-animate-css"}

// Settings controls how a table is turned into a stylesheet.
type Settings struct {
	Name         string
	Output       string
	RootSelector string
	DarkSelector string
	Conversion   string
	Imports      []string
}

// DefaultSettings returns the settings used when a document omits them.
func DefaultSettings() Settings {
	return Settings{
		Output:       DefaultOutput,
		RootSelector: DefaultRootSelector,
		DarkSelector: DefaultDarkSelector,
		Conversion:   DefaultConversion,
		Imports:      append([]string(nil), DefaultImports...),
	}
}

// Selector returns the stylesheet scope that activates the given mode.
func (s Settings) Selector(mode Mode) string {
	if mode == ModeDark {
		return s.DarkSelector
	}
	return s.RootSelector
}

// Theme is a loaded token document: the immutable table plus its settings.
type Theme struct {
	Source   string
	Settings Settings
	Table    *Table
}
