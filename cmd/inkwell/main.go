package main

import (
	"fmt"
	"os"

	appErrors "inkwell/internal/errors"
)

func main() {
	os.Exit(run(defaultEnv(), os.Args[1:]))
}

// run executes the CLI and maps errors to exit codes: 2 for bad input
// (unknown variant, role, palette or mode), 1 for everything else.
func run(e *env, args []string) int {
	root := NewRootCmd(e)
	root.SetArgs(args)
	root.SetOut(e.out)
	root.SetErr(e.errOut)

	err := root.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintf(e.errOut, "Error: %v\n", err)
	switch appErrors.CodeOf(err) {
	case appErrors.CodeUnknownVariant,
		appErrors.CodeUnknownRole,
		appErrors.CodeUnknownPalette,
		appErrors.CodeInvalidMode,
		appErrors.CodeConfigurationError:
		return 2
	}
	return 1
}
