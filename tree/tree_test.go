package tree

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

// createTreeForTest builds
//
//    a
//    ├── b
//    │   ├── d
//    │   └── e
//    └── c
//        └── f
func createTreeForTest() (*Node[string], map[string]*Node[string]) {
	nodes := make(map[string]*Node[string])
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		nodes[name] = NewNode(name)
	}
	nodes["a"].AddChild(nodes["b"]).AddChild(nodes["c"])
	nodes["b"].AddChild(nodes["d"]).AddChild(nodes["e"])
	nodes["c"].AddChild(nodes["f"])
	return nodes["a"], nodes
}

func printTree[T comparable](root *Node[T]) string {
	p := tp.New()
	ppt(p, root)
	return "\n" + p.String()
}

func ppt[T comparable](p tp.Tree, node *Node[T]) {
	children := node.Children(true)
	if len(children) == 0 {
		p.AddNode(fmt.Sprintf("%v", node.Payload))
		return
	}
	branch := p.AddBranch(fmt.Sprintf("%v", node.Payload))
	for _, ch := range children {
		ppt(branch, ch)
	}
}

func payloads(nodes []*Node[string]) []string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.Payload
	}
	return s
}

func TestNodeChildren(t *testing.T) {
	root, nodes := createTreeForTest()
	t.Logf("tree = %s", printTree(root))
	assert.Equal(t, 2, root.ChildCount())
	assert.Same(t, root, nodes["c"].Parent())
	assert.Equal(t, 1, root.IndexOfChild(nodes["c"]))
	nodes["x"] = NewNode("x")
	root.InsertChildAt(1, nodes["x"])
	assert.Equal(t, []string{"b", "x", "c"}, payloads(root.Children(true)))
	nodes["x"].Isolate()
	assert.Nil(t, nodes["x"].Parent())
	assert.Equal(t, 3, root.ChildCount(), "isolated child leaves a gap")
	assert.Equal(t, []string{"b", "c"}, payloads(root.Children(true)))
	_, ok := root.Child(7)
	assert.False(t, ok)
}

func TestEmptyWalker(t *testing.T) {
	var empty *Node[string]
	w := NewWalker(empty)
	assert.Nil(t, w)
	nodes, err := w.TopDown(nil).Promise()()
	assert.Nil(t, nodes)
	assert.True(t, errors.Is(err, ErrEmptyTree))
}

func TestTopDownParentsFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.tree")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelError)
	root, _ := createTreeForTest()
	var mx sync.Mutex
	seen := make(map[*Node[string]]bool)
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		mx.Lock()
		defer mx.Unlock()
		if parent != nil && n != root && !seen[parent] {
			return nil, fmt.Errorf("node %s processed before its parent", n.Payload)
		}
		seen[n] = true
		return n, nil
	}
	nodes, err := NewWalker(root, WithWorkers(2)).TopDown(action).Promise()()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d", "e", "c", "f"}, payloads(nodes), "document order")
	assert.Len(t, seen, 6)
}

func TestTopDownPositions(t *testing.T) {
	root, nodes := createTreeForTest()
	var mx sync.Mutex
	positions := make(map[string]int)
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		mx.Lock()
		defer mx.Unlock()
		positions[n.Payload] = position
		return nil, nil
	}
	result, err := NewWalker(root).TopDown(action).Promise()()
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, map[string]int{"a": 0, "b": 0, "c": 1, "d": 0, "e": 1, "f": 0}, positions)
	sub, err := NewWalker(nodes["c"]).AllDescendents().Promise()()
	require.NoError(t, err)
	assert.Equal(t, []string{"f"}, payloads(sub))
}

func TestTopDownErrorStopsBranch(t *testing.T) {
	root, _ := createTreeForTest()
	errStop := errors.New("stop")
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		if n.Payload == "b" {
			return nil, errStop
		}
		return n, nil
	}
	nodes, err := NewWalker(root).TopDown(action).Promise()()
	assert.True(t, errors.Is(err, errStop))
	assert.Equal(t, []string{"a", "c", "f"}, payloads(nodes))
}

func TestDescendentsWith(t *testing.T) {
	root, _ := createTreeForTest()
	leafs, err := NewWalker(root).DescendentsWith(NodeIsLeaf[string]()).Promise()()
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e", "f"}, payloads(leafs))
	_, err = NewWalker(root).DescendentsWith(nil).Promise()()
	assert.True(t, errors.Is(err, ErrInvalidAction))
}

func TestWalkerSingleUse(t *testing.T) {
	root, _ := createTreeForTest()
	w := NewWalker(root)
	w.AllDescendents()
	w.AllDescendents()
	_, err := w.Promise()()
	assert.True(t, errors.Is(err, ErrWalkerInUse))
	nodes, err := NewWalker(root).Promise()()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, payloads(nodes))
}

func TestBottomUpCalcRank(t *testing.T) {
	root, nodes := createTreeForTest()
	_, err := NewWalker(root).BottomUp(CalcRank[string]).Promise()()
	require.NoError(t, err)
	t.Logf("tree = %s", printTree(root))
	assert.Equal(t, uint32(6), root.Rank)
	assert.Equal(t, uint32(3), nodes["b"].Rank)
	assert.Equal(t, uint32(2), nodes["c"].Rank)
	assert.Equal(t, uint32(1), nodes["f"].Rank)
}

func TestWorkerLimit(t *testing.T) {
	root := NewNode("root")
	for i := 0; i < 20; i++ {
		root.AddChild(NewNode(fmt.Sprintf("c%d", i)))
	}
	var running, peak int32
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		now := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if now <= p || atomic.CompareAndSwapInt32(&peak, p, now) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return n, nil
	}
	nodes, err := NewWalker(root, WithWorkers(2)).TopDown(action).Promise()()
	require.NoError(t, err)
	assert.Len(t, nodes, 21)
	assert.Equal(t, "c0", nodes[1].Payload, "results in document order")
	assert.Equal(t, "c19", nodes[20].Payload)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestBottomUpErrorReachesRoot(t *testing.T) {
	root, _ := createTreeForTest()
	errLeaf := errors.New("leaf failed")
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		if n.Payload == "d" {
			return nil, errLeaf
		}
		return n, nil
	}
	nodes, err := NewWalker(root).BottomUp(action).Promise()()
	assert.True(t, errors.Is(err, errLeaf))
	assert.Equal(t, []string{"a", "b", "e", "c", "f"}, payloads(nodes),
		"parents are processed regardless of failing children")
}
