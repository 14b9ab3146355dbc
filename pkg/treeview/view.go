package treeview

import "github.com/aili-dev/vistree/pkg/vis"

// Slot is a placement an element view can populate with its visual
// content and later destroy — a populator plus a destroy hook, per the
// external interface description. It is opaque to TreeView: the
// reconciler only ever hands a Slot through to an ElementView via
// Embedding; it never calls anything on it directly. Concrete renderers
// define their own Slot implementations.
type Slot any

// Embedding describes where an element view should place its visual
// content. Exactly one of Parent and Slot is populated for a normal call;
// both absent (the zero Embedding) means "unembed."
type Embedding struct {
	Parent ElementView
	Slot   Slot
}

// IsRoot reports whether this embedding is an explicit, slot-based
// placement — the root-registration style of embedding.
func (em Embedding) IsRoot() bool { return em.Slot != nil }

// ElementView is the reconciler's view of one live element. Implementations
// are supplied by a concrete renderer; TreeView treats them as opaque.
type ElementView interface {
	// UseEmbedding moves the view's visual content into the given
	// placement. Once embedded via a Slot, the view is sticky: later
	// calls with a Parent populated must be ignored.
	UseEmbedding(Embedding)
	// HasExplicitEmbedding reports whether the last successful embedding
	// used an explicit Slot.
	HasExplicitEmbedding() bool
	// Destroy releases all resources held by the view, including its
	// current slot, and detaches any underlying visuals.
	Destroy()
}

// ConnectorView is the reconciler's view of one live connector.
type ConnectorView interface {
	// UseEndpoints attaches or moves the connector's visual between two
	// element views.
	UseEndpoints(start, end ElementView)
	Destroy()
}

// ElementViewFactory constructs the view for a newly-tracked element.
type ElementViewFactory func(*vis.Element) ElementView

// ConnectorViewFactory constructs the view for a newly-tracked connector.
type ConnectorViewFactory func(*vis.Connector) ConnectorView
