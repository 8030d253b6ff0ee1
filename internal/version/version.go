// Package version carries build metadata for the macchiato command.
package version

// Populated by the Go linker (-ldflags "-X ...") at build time; see magefile.go.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String renders the metadata on one line.
func String() string {
	return "macchiato " + Version + " (" + CommitHash + ", built " + BuildDate + ")"
}
