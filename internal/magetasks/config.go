package magetasks

import (
	"os"
	"path/filepath"
)

var (
	// ModulePath is the Go module path used in -X linker flags.
	ModulePath = "github.com/dkoosis/macchiato"

	// BinPath is where Build writes the binary.
	BinPath = "./bin/macchiato"

	// MainPackage is the command package Build compiles.
	MainPackage = "./cmd/macchiato"

	// ProjectRoot is the directory mage was started from.
	ProjectRoot string
)

// Initialize records the project root and makes sure bin/ exists.
// Call it from the Magefile init().
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(ProjectRoot, "bin"), 0o750)
}
