package tree

// Fold turns a node sequence into a nested object. A node without children
// maps its key to its value; any other node maps its key to the fold of its
// children. When keys repeat the last node wins.
func Fold(nodes []*Node) *Object {
	res := NewObject()
	for _, n := range nodes {
		if n.IsLeaf() {
			res.SetValue(n.Key, n.Value)
			continue
		}
		res.SetObject(n.Key, Fold(n.Children))
	}
	return res
}
