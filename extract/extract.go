package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/treejson/debug"
	"github.com/signadot/treejson/tree"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

const (
	TreeSelector  = `ul[role="tree"]`
	ItemClass     = "MuiTreeItem-root"
	LabelSelector = ".MuiTreeItem-label"
	TokenSelector = "span.token"
	GroupSelector = "ul"
	ItemSelector  = "li"
)

// Single matchers stop at the first match under each child of the searched
// node, so lookups take First to get the earliest match in document order.
var (
	treeMatcher  = goquery.Single(TreeSelector)
	labelMatcher = goquery.Single(LabelSelector)
	tokenMatcher = goquery.Single(TokenSelector)
	groupMatcher = goquery.Single(GroupSelector)
	rootMatcher  = cascadia.MustCompile(ItemSelector + "." + ItemClass)
	itemMatcher  = cascadia.MustCompile(ItemSelector)
	isToken      = cascadia.MustCompile(TokenSelector).Match
)

// Parse reads tree-view markup from r and returns its root level nodes.
func Parse(r io.Reader) ([]*tree.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error reading markup: %w", err)
	}
	return FromDocument(doc)
}

func ParseString(s string) ([]*tree.Node, error) {
	return Parse(strings.NewReader(s))
}

// FromDocument converts the first tree container of doc. Only direct item
// children of the container carrying the tree item class become roots.
func FromDocument(doc *goquery.Document) ([]*tree.Node, error) {
	root := doc.FindMatcher(treeMatcher).First()
	if root.Length() == 0 {
		return nil, &StructureError{Selector: TreeSelector}
	}
	res := []*tree.Node{}
	root.ChildrenMatcher(rootMatcher).Each(func(_ int, li *goquery.Selection) {
		res = append(res, item(li, 0))
	})
	return res, nil
}

func item(li *goquery.Selection, depth int) *tree.Node {
	key, val := label(li)
	node := &tree.Node{Key: key, Value: val, Children: []*tree.Node{}}
	if debug.Extract() {
		debug.Logf("%*sitem %q value %v\n", depth*2, "", key, val)
	}
	group := li.FindMatcher(groupMatcher).First()
	if group.Length() == 0 {
		return node
	}
	// items behind another item belong to a deeper level
	group.FindMatcher(itemMatcher).Each(func(_ int, c *goquery.Selection) {
		if c.ParentsUntilNodes(group.Nodes...).IsMatcher(itemMatcher) {
			return
		}
		node.Children = append(node.Children, item(c, depth+1))
	})
	return node
}

// label returns the key and value of an item. A token inside the label
// gives the value; otherwise the label text is split on its first colon.
func label(li *goquery.Selection) (string, tree.Value) {
	lbl := li.FindMatcher(labelMatcher).First()
	if lbl.Length() == 0 {
		return flatten(li.Nodes[0], nil), tree.Null()
	}
	n := lbl.Nodes[0]
	key := flatten(n, isToken)
	if key == "" {
		key = flatten(n, nil)
	}
	if tok := lbl.FindMatcher(tokenMatcher).First(); tok.Length() > 0 {
		return key, Coerce(flatten(tok.Nodes[0], nil))
	}
	k, v, ok := strings.Cut(key, ":")
	if !ok {
		return key, tree.Null()
	}
	k = strings.TrimSpace(k)
	v = strings.TrimSpace(v)
	if v == "" {
		return k, tree.Null()
	}
	return k, Coerce(v)
}
