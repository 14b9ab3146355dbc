package vistest

import (
	"fmt"

	"github.com/aili-dev/vistree/pkg/treeview"
	"github.com/aili-dev/vistree/pkg/vis"
)

// RecordingSlot is a trivial Slot fake: a named placeholder with a
// destroyed flag, enough to assert a slot was or wasn't torn down.
type RecordingSlot struct {
	Name      string
	Destroyed bool
}

// Destroy marks the slot destroyed. Not part of the treeview.Slot
// contract (which is opaque) — exposed only so tests can assert on it
// directly; a real element view would call this from its own Destroy.
func (s *RecordingSlot) Destroy() { s.Destroyed = true }

// RecordingElementView is a fake treeview.ElementView that records every
// call for assertion instead of doing any real rendering.
type RecordingElementView struct {
	Element *vis.Element

	Embeddings []treeview.Embedding
	Destroyed  bool

	explicit bool
}

// NewRecordingElementView is a treeview.ElementViewFactory.
func NewRecordingElementView(e *vis.Element) treeview.ElementView {
	return &RecordingElementView{Element: e}
}

func (v *RecordingElementView) UseEmbedding(em treeview.Embedding) {
	if v.explicit && em.Slot == nil {
		// Sticky: once explicitly embedded via a slot, parent-style
		// calls must be ignored. Record nothing.
		return
	}
	v.Embeddings = append(v.Embeddings, em)
	if em.IsRoot() {
		v.explicit = true
	}
}

func (v *RecordingElementView) HasExplicitEmbedding() bool { return v.explicit }

func (v *RecordingElementView) Destroy() {
	v.Destroyed = true
	if slot, ok := v.lastSlot(); ok {
		slot.Destroy()
	}
}

func (v *RecordingElementView) lastSlot() (*RecordingSlot, bool) {
	for i := len(v.Embeddings) - 1; i >= 0; i-- {
		if s, ok := v.Embeddings[i].Slot.(*RecordingSlot); ok {
			return s, true
		}
	}
	return nil, false
}

func (v *RecordingElementView) String() string {
	return fmt.Sprintf("view(%s)", v.Element.TagName())
}

// RecordingConnectorView is a fake treeview.ConnectorView.
type RecordingConnectorView struct {
	Connector *vis.Connector

	Endpoints [][2]treeview.ElementView
	Destroyed bool
}

// NewRecordingConnectorView is a treeview.ConnectorViewFactory.
func NewRecordingConnectorView(c *vis.Connector) treeview.ConnectorView {
	return &RecordingConnectorView{Connector: c}
}

func (v *RecordingConnectorView) UseEndpoints(start, end treeview.ElementView) {
	v.Endpoints = append(v.Endpoints, [2]treeview.ElementView{start, end})
}

func (v *RecordingConnectorView) Destroy() { v.Destroyed = true }
