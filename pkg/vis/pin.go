package vis

import (
	"github.com/aili-dev/vistree/pkg/attr"
	"github.com/aili-dev/vistree/pkg/hook"
)

// Pin is one endpoint of a connector. Owned by its connector; never
// reassigned to a different connector.
type Pin struct {
	connector       *Connector
	target          *Element
	projectedTarget *Element
	attrs           attr.Map

	OnTargetChanged          hook.ChangeHook[*Element]
	OnProjectedTargetChanged hook.ChangeHook[*Element]
}

// Connector returns the connector that owns this pin.
func (p *Pin) Connector() *Connector { return p.connector }

// Target returns the element this pin currently points to, or nil.
func (p *Pin) Target() *Element { return p.target }

// ProjectedTarget returns the pin's derived projected target, or nil.
func (p *Pin) ProjectedTarget() *Element { return p.projectedTarget }

// Attributes returns the pin's attribute map.
func (p *Pin) Attributes() *attr.Map { return &p.attrs }

// SetTarget reassigns the pin's target. Assigning the current target is
// a no-op. This operation is total: it never fails.
func (p *Pin) SetTarget(newTarget *Element) {
	if newTarget == p.target {
		return
	}

	oldTarget := p.target
	if oldTarget != nil {
		oldTarget.pins.remove(p)
	}
	p.target = newTarget
	if newTarget != nil {
		newTarget.pins.add(p)
	}

	p.OnTargetChanged.Trigger(newTarget, oldTarget)
	if newTarget != nil {
		newTarget.OnAddPin.Trigger(p)
	}

	recomputeProjection(p.connector)
}
