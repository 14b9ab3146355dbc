package treeview

import (
	"fmt"

	verrors "github.com/aili-dev/vistree/pkg/errors"
	"github.com/aili-dev/vistree/pkg/hook"
	"github.com/aili-dev/vistree/pkg/vis"
)

// TreeView is the tree-view reconciler. It holds no rendering logic: it
// tracks which elements/connectors are live and owns the hook
// subscriptions that keep that tracking in sync with the vis tree,
// delegating all visual work to the views its factories construct.
type TreeView struct {
	newElementView   ElementViewFactory
	newConnectorView ConnectorViewFactory

	elementViews   map[*vis.Element]ElementView
	connectorViews map[*vis.Connector]ConnectorView

	elementHandles   map[*vis.Element][]hook.Handle
	connectorHandles map[*vis.Connector][]hook.Handle

	// Logger, if set, receives informational traces of view lifecycle
	// events (created/destroyed, root registered/removed). The core
	// itself has no logged or reported errors; this is purely an
	// optional debugging aid for collaborators. Nil by default.
	Logger verrors.Handler
}

// New creates a reconciler backed by the given view factories.
func New(elementViews ElementViewFactory, connectorViews ConnectorViewFactory) *TreeView {
	return &TreeView{
		newElementView:   elementViews,
		newConnectorView: connectorViews,
		elementViews:     make(map[*vis.Element]ElementView),
		connectorViews:   make(map[*vis.Connector]ConnectorView),
		elementHandles:   make(map[*vis.Element][]hook.Handle),
		connectorHandles: make(map[*vis.Connector][]hook.Handle),
	}
}

func (tv *TreeView) trace(op, format string, args ...any) {
	if tv.Logger == nil {
		return
	}
	tv.Logger.HandleError(verrors.New(op, verrors.KindUnknown, fmt.Errorf(format, args...)))
}

// AddRoot registers element as a root embedded into the given explicit
// slot. Calling this again for an already-tracked element re-embeds it
// into the new slot without re-registering its subtree.
func (tv *TreeView) AddRoot(element *vis.Element, slot Slot) {
	view, isNew := tv.getOrCreateElementView(element)
	view.UseEmbedding(Embedding{Slot: slot})
	tv.trace("treeview.AddRoot", "root registered: tag=%s new=%v", element.TagName(), isNew)
	if isNew {
		tv.registerElement(element, view)
	}
}

// RemoveRoot tears down the subtree rooted at element, provided its view
// is still explicitly embedded (i.e. it really is a registered root and
// has not since been unembedded). Otherwise a no-op.
func (tv *TreeView) RemoveRoot(element *vis.Element) {
	view, ok := tv.elementViews[element]
	if !ok || !view.HasExplicitEmbedding() {
		return
	}
	tv.trace("treeview.RemoveRoot", "root removed: tag=%s", element.TagName())
	tv.teardownElement(element)
}

// ElementViewFor reports the tracked view for element, if any. Mainly of
// use to tests and collaborators that need to inspect reconciler state
// rather than drive it.
func (tv *TreeView) ElementViewFor(element *vis.Element) (ElementView, bool) {
	v, ok := tv.elementViews[element]
	return v, ok
}

// ConnectorViewFor reports the tracked view for c, if any.
func (tv *TreeView) ConnectorViewFor(c *vis.Connector) (ConnectorView, bool) {
	v, ok := tv.connectorViews[c]
	return v, ok
}

func (tv *TreeView) getOrCreateElementView(element *vis.Element) (ElementView, bool) {
	if v, ok := tv.elementViews[element]; ok {
		return v, false
	}
	v := tv.newElementView(element)
	tv.elementViews[element] = v
	return v, true
}

func (tv *TreeView) getOrCreateConnectorView(c *vis.Connector) (ConnectorView, bool) {
	if v, ok := tv.connectorViews[c]; ok {
		return v, false
	}
	v := tv.newConnectorView(c)
	tv.connectorViews[c] = v
	return v, true
}

// registerElement wires up a newly-created element view: it embeds any
// children already present, subscribes to future ones, attaches connector
// views for any pins already targeting it, and — unless the view is
// explicitly embedded — arranges for the view to be torn down if the
// element's parent changes.
func (tv *TreeView) registerElement(element *vis.Element, view ElementView) {
	for child := range element.Children() {
		tv.embedChild(child, view)
	}
	addChildHandle := element.OnAddChild.Subscribe(func(child *vis.Element) {
		tv.embedChild(child, view)
	})
	handles := []hook.Handle{addChildHandle}

	for pin := range element.Pins() {
		tv.connectorPinAttached(pin)
	}
	addPinHandle := element.OnAddPin.Subscribe(func(pin *vis.Pin) {
		tv.connectorPinAttached(pin)
	})
	handles = append(handles, addPinHandle)

	if !view.HasExplicitEmbedding() {
		handles = append(handles, element.OnParentChanged.Subscribe(func(newParent, oldParent *vis.Element) {
			tv.teardownElement(element)
		}))
	}

	tv.elementHandles[element] = handles
	tv.trace("treeview.registerElement", "registered element tag=%s", element.TagName())
}

// embedChild embeds a non-root element under a known parent view.
func (tv *TreeView) embedChild(child *vis.Element, parentView ElementView) {
	view, isNew := tv.getOrCreateElementView(child)
	if !isNew && view.HasExplicitEmbedding() {
		return // stuck to its explicit slot forever
	}
	view.UseEmbedding(Embedding{Parent: parentView})
	if isNew {
		tv.registerElement(child, view)
	}
}

// connectorPinAttached creates or updates a connector's view once both of
// its pins target elements that already have tracked views.
func (tv *TreeView) connectorPinAttached(pin *vis.Pin) {
	c := pin.Connector()
	start, end := c.Start(), c.End()

	if start.Target() == nil || end.Target() == nil {
		return
	}
	startView, ok := tv.elementViews[start.Target()]
	if !ok {
		return
	}
	endView, ok := tv.elementViews[end.Target()]
	if !ok {
		return
	}

	view, isNew := tv.getOrCreateConnectorView(c)
	view.UseEndpoints(startView, endView)
	if isNew {
		tv.trace("treeview.connectorPinAttached", "connector view created")
		h1 := start.OnTargetChanged.Subscribe(func(*vis.Element, *vis.Element) { tv.removeConnector(c) })
		h2 := end.OnTargetChanged.Subscribe(func(*vis.Element, *vis.Element) { tv.removeConnector(c) })
		tv.connectorHandles[c] = []hook.Handle{h1, h2}
	}
}

func (tv *TreeView) removeConnector(c *vis.Connector) {
	handles, ok := tv.connectorHandles[c]
	if !ok {
		return
	}
	for _, h := range handles {
		h.Unhook()
	}
	delete(tv.connectorHandles, c)

	view := tv.connectorViews[c]
	delete(tv.connectorViews, c)
	if view != nil {
		tv.trace("treeview.removeConnector", "connector view destroyed")
		view.Destroy()
	}
}

// teardownElement destroys element's view, unhooks everything it owns,
// and recurses into its children and connectors.
func (tv *TreeView) teardownElement(element *vis.Element) {
	view, tracked := tv.elementViews[element]
	if !tracked {
		return
	}

	handles := tv.elementHandles[element]
	for _, h := range handles {
		h.Unhook()
	}
	delete(tv.elementHandles, element)
	delete(tv.elementViews, element)
	tv.trace("treeview.teardownElement", "element view destroyed tag=%s", element.TagName())
	view.Destroy()

	for child := range element.Children() {
		tv.teardownElement(child)
	}
	for pin := range element.Pins() {
		tv.removeConnector(pin.Connector())
	}
}
