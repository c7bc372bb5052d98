// Package tree holds the data model produced from tree-view markup.
//
// A converted tree view is a sequence of [Node] values. Each node carries a
// key, a primitive [Value] and its ordered children. The sequence can be
// folded into an ordered [Object] with [Fold], where leaves become values
// and branches become nested objects.
//
// Object keeps keys in insertion order so that encoding reproduces the order
// in which items appear in the markup:
//
//	obj := tree.Fold([]*tree.Node{
//	    tree.Leaf("a", tree.FromInt(1)),
//	    tree.Branch("b", tree.Leaf("c", tree.FromInt(2))),
//	})
//	// {"a": 1, "b": {"c": 2}}
//
// Nodes and objects are not safe for concurrent mutation.
package tree
