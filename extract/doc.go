// Package extract converts MUI SimpleTreeView markup into tree nodes.
//
// The markup is a nested list rooted at a ul element with role "tree".
// Each li.MuiTreeItem-root is an item; its .MuiTreeItem-label holds the
// visible text, and a span.token inside the label, when present, marks the
// literal value:
//
//	<ul role="tree">
//	  <li class="MuiTreeItem-root">
//	    <div class="MuiTreeItem-label">spacing</div>
//	    <ul role="group">
//	      <div class="MuiCollapse-wrapperInner">
//	        <li class="MuiTreeItem-root">
//	          <div class="MuiTreeItem-label">unit: "px"</div>
//	        </li>
//	      </div>
//	    </ul>
//	  </li>
//	</ul>
//
// Labels without a token are split on their first colon into key and
// value. Values are coerced with [Coerce]: surrounding quotes are dropped,
// then booleans and numbers are recognized, and anything else stays a
// string.
//
// The children of an item are the items found in its first nested ul that
// are not themselves inside another item of that ul. Wrapper elements
// between the list and its items are skipped.
//
// Markup without a tree container yields a [*StructureError].
package extract
