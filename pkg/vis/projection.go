package vis

// recomputeProjection recomputes the connector's projected parent and
// per-pin projected targets, patches every mirrored index, and only then
// fires the per-field hooks — each one only if that field's value
// actually changed.
func recomputeProjection(c *Connector) {
	oldParent := c.projectedParent
	oldStart := c.start.projectedTarget
	oldEnd := c.end.projectedTarget

	newParent, newStart, newEnd := computeProjection(c)

	startChanged := newStart != oldStart
	endChanged := newEnd != oldEnd
	parentChanged := newParent != oldParent

	// Step 1: patch every mirrored index before any hook fires.
	if startChanged {
		if oldStart != nil {
			oldStart.projectedPins.remove(c.start)
		}
		if newStart != nil {
			newStart.projectedPins.add(c.start)
		}
		c.start.projectedTarget = newStart
	}
	if endChanged {
		if oldEnd != nil {
			oldEnd.projectedPins.remove(c.end)
		}
		if newEnd != nil {
			newEnd.projectedPins.add(c.end)
		}
		c.end.projectedTarget = newEnd
	}
	if parentChanged {
		if oldParent != nil {
			oldParent.projectedConnectors.remove(c)
		}
		if newParent != nil {
			newParent.projectedConnectors.add(c)
		}
		c.projectedParent = newParent
	}

	// Step 2: fire hooks in a fixed per-field order (start, end, parent),
	// only for the fields that actually changed.
	if startChanged {
		c.start.OnProjectedTargetChanged.Trigger(newStart, oldStart)
		if newStart != nil {
			newStart.OnAddProjectedPin.Trigger(c.start)
		}
	}
	if endChanged {
		c.end.OnProjectedTargetChanged.Trigger(newEnd, oldEnd)
		if newEnd != nil {
			newEnd.OnAddProjectedPin.Trigger(c.end)
		}
	}
	if parentChanged {
		c.OnProjectedParentChanged.Trigger(newParent, oldParent)
		if newParent != nil {
			newParent.OnAddProjectedConnector.Trigger(c)
		}
	}
}

// computeProjection walks both endpoints' ancestor chains from the root
// downward to find the nearest common ancestor P, and each endpoint's
// projected target: the child of P (inclusive) on the path to that
// endpoint's actual target.
//
// Both chains are built root-last ([target, ..., root]) and compared from
// their tails. The self-loop case (start.target == end.target == P) falls
// out naturally: both chains drain on the same step, leaving both
// projected targets equal to P. Likewise the ancestor/descendant case
// falls out naturally: the shorter chain drains first, and that side's
// projected target is P itself.
func computeProjection(c *Connector) (parent, startProjected, endProjected *Element) {
	st := c.start.target
	en := c.end.target
	if st == nil || en == nil {
		return nil, nil, nil
	}

	pathStart := ancestorChain(st)
	pathEnd := ancestorChain(en)

	i, j := len(pathStart)-1, len(pathEnd)-1
	var nca *Element
	for i >= 0 && j >= 0 && pathStart[i] == pathEnd[j] {
		nca = pathStart[i]
		i--
		j--
	}
	if nca == nil {
		return nil, nil, nil
	}

	if i >= 0 {
		startProjected = pathStart[i]
	} else {
		startProjected = nca
	}
	if j >= 0 {
		endProjected = pathEnd[j]
	} else {
		endProjected = nca
	}
	return nca, startProjected, endProjected
}

// recomputeSubtreeProjections recomputes the projection of every connector
// with a pin anywhere in moved's subtree (on either endpoint), after that
// subtree has been reparented. Recomputing all of them is the simplest
// rule that is always correct: any of these connectors' nearest common
// ancestor may have shifted, even ones whose other endpoint sits outside
// the moved subtree entirely.
func recomputeSubtreeProjections(moved *Element) {
	seen := make(map[*Connector]struct{})
	var order []*Connector

	visitSubtree(moved, func(e *Element) {
		for pin := range e.pins.seq() {
			c := pin.connector
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			order = append(order, c)
		}
	})

	for _, c := range order {
		recomputeProjection(c)
	}
}
