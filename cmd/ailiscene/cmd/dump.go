package cmd

import (
	"fmt"
	"strings"

	"github.com/aili-dev/vistree/internal/scenario"
	"github.com/aili-dev/vistree/pkg/vis"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print a scenario's resolved tree and connector projections",
		Long: `Load a scenario YAML file, build its element tree and
connectors, and print the tree structure alongside every connector's
resolved projected parent.

Examples:
  ailiscene dump scenario.yaml`,
		Usage: "ailiscene dump <scenario.yaml>",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one scenario file\n\nUsage: ailiscene dump <scenario.yaml>")
	}

	f, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	elements, connectors, err := scenario.Build(f)
	if err != nil {
		return err
	}

	for _, spec := range f.Elements {
		e := elements[spec.Tag]
		if e.Parent() == nil {
			printElement(e, 0)
		}
	}

	if len(connectors) > 0 {
		fmt.Println()
		fmt.Println("connectors:")
		for _, c := range connectors {
			printConnector(c)
		}
	}

	return nil
}

func printElement(e *vis.Element, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), e.TagName())
	for child := range e.Children() {
		printElement(child, depth+1)
	}
}

func printConnector(c *vis.Connector) {
	parent := "<none>"
	if p := c.ProjectedParent(); p != nil {
		parent = p.TagName()
	}
	fmt.Printf("  %s -- %s  (projected parent: %s)\n",
		c.Start().Target().TagName(), c.End().Target().TagName(), parent)
}
