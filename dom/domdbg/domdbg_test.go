package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `<html><head><style>
p::after { content: "!"; }
</style></head><body><p>Hello <a href="/x">World</a></p></body></html>`

func styledTestTree(t *testing.T) dom.StyledTree {
	h, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	root, err := dom.StyleDocument(h, dom.WithHistory(dom.VisitedURLs{"/x": true}))
	require.NoError(t, err)
	return root
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	root := styledTestTree(t)
	out := Dump(root)
	t.Logf("styled tree =\n%s", out)
	assert.Contains(t, out, "<html> [display=block")
	assert.Contains(t, out, "::after [display=inline")
	assert.Contains(t, out, `"World" [display=inline color=`)
	assert.Contains(t, out, "<a> [display=inline color=purple]", "visited link shows visited color")
	assert.Contains(t, Dump(nil), ".")
}

func TestToGraphViz(t *testing.T) {
	root := styledTestTree(t)
	var buf bytes.Buffer
	ToGraphViz(root, &buf, nil)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.Contains(t, dot, `label="a (visited style)"`)
	assert.Contains(t, dot, "Margins")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}
