package surface

// Locate returns the main data plane of a rendered tree. A root that is
// itself a surface is returned as is. Otherwise the nested surface with the
// largest pixel area wins; on equal areas the first one found in depth-first
// order is kept. Legends are drawn as small sibling surfaces and carry no tag
// that tells them apart, hence the area rule.
func Locate(root *Node) (*Node, bool) {
	if root == nil {
		return nil, false
	}
	if root.Kind == KindSurface {
		return root, true
	}
	var best *Node
	Walk(root, func(n *Node) bool {
		if n.Kind == KindSurface && (best == nil || n.Bounds.Area() > best.Bounds.Area()) {
			best = n
		}
		return true
	})
	return best, best != nil
}

// MarkGroup returns the grouping node that holds plane's data marks: the
// first group, in depth-first order, whose children include a mark. Nested
// surfaces are not searched.
func MarkGroup(plane *Node) (*Node, bool) {
	var g *Node
	Walk(plane, func(n *Node) bool {
		if g != nil {
			return false
		}
		if n != plane && n.Kind == KindSurface {
			return false
		}
		if n.Kind == KindGroup {
			for _, c := range n.Children {
				if c.Kind == KindMark {
					g = n
					return false
				}
			}
		}
		return true
	})
	return g, g != nil
}
