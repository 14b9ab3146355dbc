// Package scenario loads a small YAML description of a visualization tree
// — elements, parent edges, pins and connectors — and builds the
// corresponding pkg/vis graph. It exists for ailiscene's collaborator
// commands (dump, lint); pkg/vis itself has no file format and no loader.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aili-dev/vistree/pkg/vis"
)

// File is the top-level YAML shape of a scenario file:
//
//	elements:
//	  - tag: aili/frame/window
//	  - tag: aili/frame/window/toolbar
//	    parent: aili/frame/window
//	connectors:
//	  - start: aili/frame/window
//	    end: aili/frame/window/toolbar
type File struct {
	Elements   []ElementSpec   `yaml:"elements"`
	Connectors []ConnectorSpec `yaml:"connectors"`
}

// ElementSpec describes one element and its parent edge, by tag. An empty
// Parent means the element is a root.
type ElementSpec struct {
	Tag    string `yaml:"tag"`
	Parent string `yaml:"parent,omitempty"`
}

// ConnectorSpec describes one connector by the tags of the elements its
// two pins target.
type ConnectorSpec struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &f, nil
}

// Tags returns the tag of every element declared in the file, in file
// order, for commands that need to validate them without building a tree.
// Tags that appear only as parent or connector references are not included.
func (f *File) Tags() []string {
	tags := make([]string, 0, len(f.Elements))
	for _, e := range f.Elements {
		tags = append(tags, e.Tag)
	}
	return tags
}

// Build constructs the pkg/vis tree the file describes. All elements are
// created first, so parent edges may reference a tag listed later in the
// file; a parent edge referencing a tag absent from the file entirely is
// an error.
func Build(f *File) (map[string]*vis.Element, []*vis.Connector, error) {
	elements := make(map[string]*vis.Element, len(f.Elements))

	for _, spec := range f.Elements {
		if spec.Tag == "" {
			return nil, nil, fmt.Errorf("scenario: element with empty tag")
		}
		if _, dup := elements[spec.Tag]; dup {
			return nil, nil, fmt.Errorf("scenario: duplicate element tag %q", spec.Tag)
		}
		elements[spec.Tag] = vis.NewElement(spec.Tag)
	}

	for _, spec := range f.Elements {
		if spec.Parent == "" {
			continue
		}
		parent, ok := elements[spec.Parent]
		if !ok {
			return nil, nil, fmt.Errorf("scenario: element %q references unknown parent %q", spec.Tag, spec.Parent)
		}
		if err := elements[spec.Tag].SetParent(parent); err != nil {
			return nil, nil, fmt.Errorf("scenario: %q -> %q: %w", spec.Tag, spec.Parent, err)
		}
	}

	connectors := make([]*vis.Connector, 0, len(f.Connectors))
	for i, spec := range f.Connectors {
		start, ok := elements[spec.Start]
		if !ok {
			return nil, nil, fmt.Errorf("scenario: connector %d references unknown start %q", i, spec.Start)
		}
		end, ok := elements[spec.End]
		if !ok {
			return nil, nil, fmt.Errorf("scenario: connector %d references unknown end %q", i, spec.End)
		}
		c := vis.NewConnector()
		c.Start().SetTarget(start)
		c.End().SetTarget(end)
		connectors = append(connectors, c)
	}

	return elements, connectors, nil
}
