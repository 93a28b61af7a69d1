// Package settings provides build metadata, per-run configuration, and
// context helpers shared by the gridcol CLI and its library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "gridcol"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// InputSettings describes where row data comes from.
type InputSettings struct {
	FromStdin bool
	Path      string
}

// Run holds configuration settings for a single execution of the CLI:
// logging, input source, locale, and output behavior.
type Run struct {
	MinLogLevel int8
	Input       InputSettings
	Locale      string
	Output      string
	NoColor     bool
	IsQuiet     bool
}

// NewCliParams returns a Run with CLI defaults: info level logging, stdin
// input, terminal table output, and the catalog's default locale.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Input: InputSettings{
			FromStdin: true,
		},
		Output:  "table",
		NoColor: false,
		IsQuiet: false,
	}
}
