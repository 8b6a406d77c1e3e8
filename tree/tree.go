package tree

import (
	"errors"
	"sync"
)

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrInvalidAction is thrown if an operation is handed a nil action or
// predicate.
var ErrInvalidAction = errors.New("tree action is invalid")

// ErrWalkerInUse is thrown if a client tries to re-use a walker for a
// second operation.
var ErrWalkerInUse = errors.New("walker already started an operation; use a new walker")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to perform an operation on its nodes.
//
// A Walker will eventually return two client-level values:
// A slice of tree nodes and an error, if one occured.
// These are accessed through a Promise-object, which represents future
// values for the two fields.
//
//    w := NewWalker(node)
//    futureResult := w.TopDown(action).Promise()
//    nodes, err := futureResult()
//
// ATTENTION: Clients must call the promise, even if they do not expect the
// operation to return a non-empty set of nodes. Firstly, they need to check
// for errors, and secondly, without fetching the result the tree may still
// be under modification by workers.
//
// A walker performs a single operation.
type Walker[T comparable] struct {
	initial *Node[T]
	props   walkerProps
	mx      sync.Mutex
	pool    *pool[T]
	err     error // error condition detected before start
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting in a
// NOP operation with an empty set of nodes and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T], opts ...Option) *Walker[T] {
	if initial == nil {
		return nil
	}
	w := &Walker[T]{initial: initial, props: walkerProps{workers: defaultWorkerCount()}}
	for _, option := range opts {
		w.props = option.config(w.props)
	}
	tracer().Debugf("new tree-walker, initial node = %v, workers = %d", initial, w.props.workers)
	return w
}

// --- Options ---------------------------------------------------------------

type walkerProps struct {
	workers int
}

// Option configures a Walker.
type Option struct {
	config func(walkerProps) walkerProps
}

// WithWorkers sets the maximum number of nodes processed concurrently.
// Values < 1 are ignored.
func WithWorkers(n int) Option {
	return Option{config: func(p walkerProps) walkerProps {
		if n >= 1 {
			p.workers = n
		}
		return p
	}}
}

// start launches an operation. Only the first operation on a walker is
// accepted.
func (w *Walker[T]) start(launch func(p *pool[T])) *Walker[T] {
	w.mx.Lock()
	defer w.mx.Unlock()
	if w.pool != nil || w.err != nil {
		if w.err == nil {
			w.err = ErrWalkerInUse
		}
		return w
	}
	w.pool = newPool[T](w.props.workers)
	launch(w.pool)
	return w
}

func (w *Walker[T]) invalid(err error) *Walker[T] {
	w.mx.Lock()
	defer w.mx.Unlock()
	if w.err == nil {
		w.err = err
	}
	return w
}

// Promise is a future synchronisation point.
// Walkers perform their operations asynchronously.
// Clients will not receive the resulting node list immediately, but
// rather get handed a Promise.
// Clients will then—any time after they received the Promise—call the
// Promise (which is of function type) to receive a slice of nodes and
// a possible error value. Calling the Promise will block until all
// concurrent operations on the tree nodes have finished, i.e. it
// is a synchronization point. Nodes are returned in document order.
//
// A walker without an operation promises its initial node.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	w.mx.Lock()
	p, err := w.pool, w.err
	w.mx.Unlock()
	if p == nil {
		return func() ([]*Node[T], error) {
			if err != nil {
				return nil, err
			}
			return []*Node[T]{w.initial}, nil
		}
	}
	var once sync.Once
	var nodes []*Node[T]
	var werr error
	return func() ([]*Node[T], error) {
		once.Do(func() {
			nodes, werr = p.wait()
			if werr == nil {
				werr = err
			}
		})
		return nodes, werr
	}
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if len(test.Children(true)) == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// Action is a function type to operate on tree nodes. Non-nil resulting
// nodes are collected as the result of an operation.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses a tree starting at (and including) the initial node.
// The traversal guarantees that parents are always processed before
// their children. Siblings are processed concurrently.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return w.invalid(ErrInvalidAction)
	}
	var parent *Node[T]
	position := 0
	if w.initial.Parent() != nil {
		parent = w.initial.Parent()
		position = parent.IndexOfChild(w.initial)
	}
	return w.start(func(p *pool[T]) {
		p.spawn(workPackage[T]{node: w.initial, parent: parent, position: position},
			topDown(action))
	})
}

func topDown[T comparable](action Action[T]) workerTask[T] {
	var task workerTask[T]
	task = func(p *pool[T], wp workPackage[T]) error {
		result, err := action(wp.node, wp.parent, wp.position)
		if err != nil {
			tracer().Debugf("action for node %v returned error: %v", wp.node, err)
			return err // do not descend further
		}
		if result != nil {
			p.emit(result, wp.path)
		}
		for i, ch := range wp.node.Children(false) {
			if ch == nil {
				continue
			}
			p.spawn(workPackage[T]{node: ch, parent: wp.node, position: i,
				path: childPath(wp.path, i)}, task)
		}
		return nil
	}
	return task
}

// DescendentsWith finds descendents matching a predicate.
// The search does not include the start node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return w.invalid(ErrInvalidAction)
	}
	initial := w.initial
	return w.TopDown(func(n *Node[T], parent *Node[T], position int) (*Node[T], error) {
		if n == initial {
			return nil, nil
		}
		return predicate(n, initial)
	})
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// BottomUp traverses a tree starting at the leafs of the (sub-)tree.
// The traversal guarantees that parents are not processed before
// all of their children. The walk ends at (and includes) the initial node.
//
// If the action function returns an error for a node,
// the parent is processed regardless.
//
// If w is nil, BottomUp will return nil.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return w.invalid(ErrInvalidAction)
	}
	leafs := collectLeafs(w.initial, nil)
	childCounter := newRankMap[T]()
	initial := w.initial
	var task workerTask[T]
	task = func(p *pool[T], wp workPackage[T]) error {
		result, err := action(wp.node, wp.parent, wp.position)
		if err == nil && result != nil {
			p.emit(result, wp.path)
		}
		if wp.node == initial || wp.parent == nil {
			return err
		}
		done, _ := childCounter.Inc(wp.parent) // done children before this one
		if int(done)+1 < len(wp.parent.Children(true)) {
			return err // drop this node until last child processed
		}
		grandparent := wp.parent.Parent()
		position := 0
		if grandparent != nil {
			position = grandparent.IndexOfChild(wp.parent)
		}
		p.spawn(workPackage[T]{node: wp.parent, parent: grandparent, position: position,
			path: wp.path[:len(wp.path)-1]}, task)
		return err
	}
	return w.start(func(p *pool[T]) {
		for _, leaf := range leafs {
			parent := leaf.node.Parent()
			position := 0
			if parent != nil {
				position = parent.IndexOfChild(leaf.node)
			}
			p.spawn(workPackage[T]{node: leaf.node, parent: parent, position: position,
				path: leaf.path}, task)
		}
	})
}

func collectLeafs[T comparable](node *Node[T], path []int) []result[T] {
	children := node.Children(false)
	var leafs []result[T]
	isLeaf := true
	for i, ch := range children {
		if ch == nil {
			continue
		}
		isLeaf = false
		leafs = append(leafs, collectLeafs(ch, childPath(path, i))...)
	}
	if isLeaf {
		leafs = append(leafs, result[T]{node: node, path: path})
	}
	return leafs
}

// CalcRank is an action for bottom-up processing. It Calculates the 'rank'-member
// for each node, meaning: the number of child-nodes + 1.
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) (*Node[T], error) {
	//
	r := uint32(1)
	for i := 0; i < n.ChildCount(); i++ {
		ch, ok := n.Child(i)
		if ok {
			r += ch.Rank
		}
	}
	n.Rank = r
	return n, nil
}
