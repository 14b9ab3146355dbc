package vis

import (
	"iter"

	"github.com/aili-dev/vistree/pkg/attr"
	"github.com/aili-dev/vistree/pkg/hook"
)

// Element is a node in the visualization tree: an immutable tag name, a
// mutable parent, and the mirrored child/pin/projection indexes that keep
// traversal and lookup cheap in both directions.
type Element struct {
	tagName string
	attrs   attr.Map
	parent  *Element
	depth   int

	children            *objSet[*Element]
	pins                *objSet[*Pin]
	projectedPins       *objSet[*Pin]
	projectedConnectors *objSet[*Connector]

	OnAddChild              hook.Hook[*Element]
	OnAddPin                hook.Hook[*Pin]
	OnAddProjectedPin       hook.Hook[*Pin]
	OnAddProjectedConnector hook.Hook[*Connector]
	OnParentChanged         hook.ChangeHook[*Element]
}

// NewElement creates a detached element with the given immutable tag name.
func NewElement(tagName string) *Element {
	return &Element{
		tagName:             tagName,
		children:            newObjSet[*Element](),
		pins:                newObjSet[*Pin](),
		projectedPins:       newObjSet[*Pin](),
		projectedConnectors: newObjSet[*Connector](),
	}
}

// TagName returns the element's immutable tag name.
func (e *Element) TagName() string { return e.tagName }

// Parent returns the element's current parent, or nil if detached.
func (e *Element) Parent() *Element { return e.parent }

// Depth returns the element's distance from its root (0 for a root
// element). Maintained incrementally alongside Parent; never requires a
// tree walk to read.
func (e *Element) Depth() int { return e.depth }

// Attributes returns the element's attribute map.
func (e *Element) Attributes() *attr.Map { return &e.attrs }

// Children iterates the element's children in insertion order.
func (e *Element) Children() iter.Seq[*Element] { return e.children.seq() }

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return e.children.len() }

// Pins iterates the pins currently targeting this element.
func (e *Element) Pins() iter.Seq[*Pin] { return e.pins.seq() }

// ProjectedPins iterates the pins whose projected target is this element.
func (e *Element) ProjectedPins() iter.Seq[*Pin] { return e.projectedPins.seq() }

// ProjectedConnectors iterates the connectors whose projected parent is
// this element.
func (e *Element) ProjectedConnectors() iter.Seq[*Connector] { return e.projectedConnectors.seq() }

// SetParent reassigns the element's parent. Assigning the current parent
// is a no-op. Assigning the element itself, or a descendant of the
// element, fails with a structural-violation error and makes no state
// change; every other mutation here is total.
func (e *Element) SetParent(newParent *Element) error {
	if newParent == e.parent {
		return nil
	}
	if newParent != nil && (newParent == e || isDescendant(newParent, e)) {
		return structuralViolation(e, newParent)
	}

	oldParent := e.parent
	if oldParent != nil {
		oldParent.children.remove(e)
	}
	e.parent = newParent
	if newParent != nil {
		newParent.children.add(e)
	}
	updateDepths(e)

	e.OnParentChanged.Trigger(newParent, oldParent)
	if newParent != nil {
		newParent.OnAddChild.Trigger(e)
	}

	recomputeSubtreeProjections(e)
	return nil
}

// isDescendant reports whether candidate is element or a descendant of it
// — walking up from candidate toward the root.
func isDescendant(candidate, element *Element) bool {
	for cur := candidate; cur != nil; cur = cur.parent {
		if cur == element {
			return true
		}
	}
	return false
}

// updateDepths recomputes depth for e and every element in its subtree
// after a parent change.
func updateDepths(e *Element) {
	if e.parent != nil {
		e.depth = e.parent.depth + 1
	} else {
		e.depth = 0
	}
	for child := range e.children.seq() {
		updateDepths(child)
	}
}

// ancestorChain returns [e, e.parent, ..., root].
func ancestorChain(e *Element) []*Element {
	chain := make([]*Element, 0, e.depth+1)
	for cur := e; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// visitSubtree calls visit on e and every descendant, preorder.
func visitSubtree(e *Element, visit func(*Element)) {
	visit(e)
	for child := range e.children.seq() {
		visitSubtree(child, visit)
	}
}
