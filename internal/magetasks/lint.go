package magetasks

import "errors"

// LintAll runs every linter and joins their failures. Missing optional tools
// only warn.
func LintAll() error {
	PrintHeader("Lint")
	errs := []error{LintFormat(), LintVet(), LintStaticcheck(), LintGolangci()}
	if err := errors.Join(errs...); err != nil {
		PrintError("Lint failed")
		return err
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when gofmt would rewrite any file.
func LintFormat() error {
	out, err := output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return errors.New("unformatted files:\n" + out)
	}
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	return run("go", "vet", "./...")
}

// LintStaticcheck runs staticcheck when installed.
func LintStaticcheck() error {
	return optional("go install honnef.co/go/tools/cmd/staticcheck@latest", "staticcheck", "./...")
}

// LintGolangci runs golangci-lint when installed.
func LintGolangci() error {
	return optional("go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		"golangci-lint", "run", "--timeout=5m", "./...")
}
