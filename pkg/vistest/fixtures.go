package vistest

import "github.com/aili-dev/vistree/pkg/vis"

// SelfLoop builds a single element with a connector whose both pins
// target it.
func SelfLoop() (e *vis.Element, c *vis.Connector) {
	e = vis.NewElement("E")
	c = vis.NewConnector()
	c.Start().SetTarget(e)
	c.End().SetTarget(e)
	return e, c
}

// Siblings builds P with children L and R, and a connector from L to R.
func Siblings() (p, l, r *vis.Element, c *vis.Connector) {
	p = vis.NewElement("P")
	l = vis.NewElement("L")
	r = vis.NewElement("R")
	_ = l.SetParent(p)
	_ = r.SetParent(p)
	c = vis.NewConnector()
	c.Start().SetTarget(l)
	c.End().SetTarget(r)
	return p, l, r, c
}

// AncestorDescendant builds P -> Ch -> Gr, with a connector from P to Gr.
func AncestorDescendant() (p, ch, gr *vis.Element, c *vis.Connector) {
	p = vis.NewElement("P")
	ch = vis.NewElement("Ch")
	gr = vis.NewElement("Gr")
	_ = ch.SetParent(p)
	_ = gr.SetParent(ch)
	c = vis.NewConnector()
	c.Start().SetTarget(p)
	c.End().SetTarget(gr)
	return p, ch, gr, c
}

// RootChildGrandchild builds root -> c1 -> c2, with a connector K from
// root to c2, ready to be registered with a reconciler. A typical use
// registers root with a TreeView and then detaches c1 to observe teardown.
func RootChildGrandchild() (root, c1, c2 *vis.Element, k *vis.Connector) {
	root = vis.NewElement("root")
	c1 = vis.NewElement("c1")
	c2 = vis.NewElement("c2")
	_ = c1.SetParent(root)
	_ = c2.SetParent(c1)
	k = vis.NewConnector()
	k.Start().SetTarget(root)
	k.End().SetTarget(c2)
	return root, c1, c2, k
}
