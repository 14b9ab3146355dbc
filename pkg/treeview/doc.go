// Package treeview implements the tree-view reconciler: a stateful adapter
// that tracks which elements and connectors of a vis.Element tree are
// "live" — descendants of a registered root, or connectors with both
// endpoints live — and creates, embeds, and destroys opaque view objects
// in response to the vis tree's observer hooks.
//
// TreeView owns no rendering logic of its own. Element and connector views
// are supplied by the caller through ElementViewFactory and
// ConnectorViewFactory and are otherwise opaque to this package.
package treeview
