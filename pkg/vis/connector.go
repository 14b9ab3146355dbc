package vis

import (
	"github.com/aili-dev/vistree/pkg/attr"
	"github.com/aili-dev/vistree/pkg/hook"
)

// Connector is an undirected pair of pins. Its endpoints are created with
// it and never reassigned.
type Connector struct {
	start, end      *Pin
	projectedParent *Element
	attrs           attr.Map

	OnProjectedParentChanged hook.ChangeHook[*Element]
}

// NewConnector creates a connector with two fresh, detached pins.
func NewConnector() *Connector {
	c := &Connector{}
	c.start = &Pin{connector: c}
	c.end = &Pin{connector: c}
	return c
}

// Start returns the connector's start pin.
func (c *Connector) Start() *Pin { return c.start }

// End returns the connector's end pin.
func (c *Connector) End() *Pin { return c.end }

// ProjectedParent returns the connector's derived projected parent, or
// nil.
func (c *Connector) ProjectedParent() *Element { return c.projectedParent }

// Attributes returns the connector's attribute map.
func (c *Connector) Attributes() *attr.Map { return &c.attrs }
