package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/treejson/tree"

	"github.com/google/go-cmp/cmp"
)

func mkItem(label string, inner ...string) string {
	var sb strings.Builder
	sb.WriteString(`<li class="MuiTreeItem-root" role="treeitem"><div class="MuiTreeItem-content">`)
	sb.WriteString(`<div class="MuiTreeItem-iconContainer"></div><div class="MuiTreeItem-label">`)
	sb.WriteString(label)
	sb.WriteString(`</div></div>`)
	if len(inner) > 0 {
		sb.WriteString(`<ul class="MuiCollapse-root" role="group"><div class="MuiCollapse-wrapper"><div class="MuiCollapse-wrapperInner">`)
		for _, in := range inner {
			sb.WriteString(in)
		}
		sb.WriteString(`</div></div></ul>`)
	}
	sb.WriteString(`</li>`)
	return sb.String()
}

func treeView(items ...string) string {
	return `<html><body><ul role="tree" class="MuiSimpleTreeView-root">` + strings.Join(items, "") + `</ul></body></html>`
}

func mustParse(t *testing.T, markup string) []*tree.Node {
	t.Helper()
	nodes, err := ParseString(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return nodes
}

func TestColonLeaf(t *testing.T) {
	nodes := mustParse(t, treeView(mkItem(`unit: "px"`)))
	want := []*tree.Node{tree.Leaf("unit", tree.FromString("px"))}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTokenWinsOverColon(t *testing.T) {
	nodes := mustParse(t, treeView(mkItem(`enabled: false <span class="token boolean">true</span>`)))
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	n := nodes[0]
	if !n.Value.Equal(tree.FromBool(true)) {
		t.Errorf("value = %s, want true", n.Value.Literal())
	}
	if n.Key != "enabled: false" {
		t.Errorf("key = %q", n.Key)
	}
}

func TestTokenKeyFallsBackToLabel(t *testing.T) {
	nodes := mustParse(t, treeView(mkItem(`<span class="token number">12</span>`)))
	want := []*tree.Node{tree.Leaf("12", tree.FromInt(12))}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNestedToken(t *testing.T) {
	nodes := mustParse(t, treeView(mkItem(`main: <span><span class="token string">"#1976d2"</span></span>`)))
	want := []*tree.Node{tree.Leaf("main:", tree.FromString("#1976d2"))}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEmptyColonValue(t *testing.T) {
	nodes := mustParse(t, treeView(mkItem(`mode:   `)))
	want := []*tree.Node{tree.Leaf("mode", tree.Null())}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSplitsOnFirstColon(t *testing.T) {
	nodes := mustParse(t, treeView(mkItem(`url: http://example.com`)))
	want := []*tree.Node{tree.Leaf("url", tree.FromString("http://example.com"))}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNoLabel(t *testing.T) {
	markup := treeView(`<li class="MuiTreeItem-root"><div><b>plain</b>  text </div></li>`)
	nodes := mustParse(t, markup)
	want := []*tree.Node{tree.Leaf("plain text", tree.Null())}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// colons outside a label region are part of the key
	nodes = mustParse(t, treeView(`<li class="MuiTreeItem-root"><div>a: 1</div></li>`))
	want = []*tree.Node{tree.Leaf("a: 1", tree.Null())}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNesting(t *testing.T) {
	markup := treeView(
		mkItem("breakpoints",
			mkItem("keys",
				mkItem(`0: "xs"`),
				mkItem(`1: "sm"`)),
			mkItem("unit: px")),
		mkItem("spacing: 8"))
	nodes := mustParse(t, markup)
	want := []*tree.Node{
		tree.Branch("breakpoints",
			tree.Branch("keys",
				tree.Leaf("0", tree.FromString("xs")),
				tree.Leaf("1", tree.FromString("sm"))),
			tree.Leaf("unit", tree.FromString("px"))),
		tree.Leaf("spacing", tree.FromInt(8)),
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDeeperItemsNotDuplicated(t *testing.T) {
	markup := treeView(mkItem("a", mkItem("b", mkItem("c", mkItem("d: 1")))))
	nodes := mustParse(t, markup)
	count := 0
	for _, n := range nodes {
		n.Visit(func(n *tree.Node, isPost bool) (bool, error) {
			if !isPost {
				count++
			}
			return true, nil
		})
	}
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
	if len(nodes[0].Children) != 1 || nodes[0].Children[0].Key != "b" {
		t.Errorf("a should have the single child b")
	}
}

func TestValueAndChildren(t *testing.T) {
	markup := treeView(mkItem(`odd <span class="token">1</span>`, mkItem("child: 2")))
	nodes := mustParse(t, markup)
	want := []*tree.Node{{
		Key:      "odd",
		Value:    tree.FromInt(1),
		Children: []*tree.Node{tree.Leaf("child", tree.FromInt(2))},
	}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRootRequiresItemClass(t *testing.T) {
	markup := treeView(
		`<li class="other"><div class="MuiTreeItem-label">skip: 1</div></li>`,
		mkItem("keep: 2"))
	nodes := mustParse(t, markup)
	want := []*tree.Node{tree.Leaf("keep", tree.FromInt(2))}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIgnoresScriptText(t *testing.T) {
	nodes := mustParse(t, treeView(mkItem(`x<script>var y = 1;</script>: 3`)))
	want := []*tree.Node{tree.Leaf("x", tree.FromInt(3))}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEmptyTree(t *testing.T) {
	nodes := mustParse(t, `<ul role="tree"></ul>`)
	if nodes == nil || len(nodes) != 0 {
		t.Errorf("expected empty non-nil sequence, got %#v", nodes)
	}
}

func TestMissingContainer(t *testing.T) {
	nodes, err := ParseString(`<ul><li class="MuiTreeItem-root">a: 1</li></ul>`)
	if err == nil {
		t.Fatalf("expected error, got %d nodes", len(nodes))
	}
	if nodes != nil {
		t.Errorf("expected no nodes on error")
	}
	if !errors.Is(err, ErrStructure) {
		t.Errorf("error %v is not ErrStructure", err)
	}
	var se *StructureError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a *StructureError", err)
	}
	if se.Selector != TreeSelector {
		t.Errorf("selector = %q", se.Selector)
	}
}

func TestFirstContainerWins(t *testing.T) {
	markup := `<ul role="tree">` + mkItem("first: 1") + `</ul><ul role="tree">` + mkItem("second: 2") + `</ul>`
	nodes := mustParse(t, markup)
	if len(nodes) != 1 || nodes[0].Key != "first" {
		t.Errorf("got %v", nodes)
	}
}
