package tree

// Node is one logical item of a tree view.
//
// A node normally has either a non-null Value or some Children. Malformed
// markup can produce both, in which case both are kept.
type Node struct {
	Key      string
	Value    Value
	Children []*Node
}

func Leaf(key string, v Value) *Node {
	return &Node{Key: key, Value: v, Children: []*Node{}}
}

func Branch(key string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Key: key, Value: Null(), Children: children}
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Visit walks n depth first, calling f before (isPost false) and after
// (isPost true) the children. Children are skipped when f returns false
// on the pre visit.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.Key != o.Key || !n.Value.Equal(o.Value) || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
