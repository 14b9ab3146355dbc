package cmd

import (
	"fmt"

	"golang.org/x/mod/module"

	"github.com/aili-dev/vistree/internal/scenario"
)

func init() {
	RegisterCommand(&Command{
		Name:  "lint",
		Short: "Validate tag names in a scenario file",
		Long: `Validate that every element tag in a scenario file is a
well-formed, domain-unique key: a dotted or slashed namespaced string
such as "aili/frame/window", checked with the same import-path validator
Go modules use for package paths.

Examples:
  ailiscene lint scenario.yaml`,
		Usage: "ailiscene lint <scenario.yaml>",
		Run:   runLint,
	})
}

func runLint(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one scenario file\n\nUsage: ailiscene lint <scenario.yaml>")
	}

	f, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	var failed int
	for _, tag := range f.Tags() {
		if err := module.CheckImportPath(tag); err != nil {
			fmt.Printf("invalid tag %q: %v\n", tag, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d invalid tag(s)", failed)
	}

	fmt.Printf("%d tag(s) OK\n", len(f.Tags()))
	return nil
}
