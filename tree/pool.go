package tree

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Tree operations are carried out by concurrent goroutines. Every node to
// process is a work package; work packages may create new work packages
// (e.g., the children of a processed node). An error group tracks the
// outstanding packages and keeps the first error; as soon as all of them
// are done, the operation is complete. A weighted semaphore limits the
// number of work packages being processed at the same time. We do not use
// the group's own limit, as a package spawning its children must never
// block while holding a slot.

// Minimum and maximum number of concurrent workers for a tree operation.
const (
	minWorkerCount int = 3
	maxWorkerCount int = 10
)

func defaultWorkerCount() int {
	n := runtime.NumCPU()
	if n < minWorkerCount {
		return minWorkerCount
	}
	if n > maxWorkerCount {
		return maxWorkerCount
	}
	return n
}

// workPackage is a node scheduled for processing. path holds the child
// positions from the initial node of a walk down to the node and serves
// for ordering results.
type workPackage[T comparable] struct {
	node     *Node[T]
	parent   *Node[T]
	position int
	path     []int
}

// workerTask processes a work package. An error is recorded for the
// operation, but does not stop other packages.
type workerTask[T comparable] func(p *pool[T], wp workPackage[T]) error

type result[T comparable] struct {
	node *Node[T]
	path []int
}

// pool executes work packages with bounded concurrency and collects
// results and errors.
type pool[T comparable] struct {
	group   errgroup.Group
	sem     *semaphore.Weighted
	mx      sync.Mutex
	results []result[T]
}

func newPool[T comparable](workers int) *pool[T] {
	if workers <= 0 {
		workers = defaultWorkerCount()
	}
	return &pool[T]{sem: semaphore.NewWeighted(int64(workers))}
}

// spawn schedules a work package. It never blocks.
func (p *pool[T]) spawn(wp workPackage[T], task workerTask[T]) {
	p.group.Go(func() error {
		if err := p.sem.Acquire(context.Background(), 1); err != nil {
			return err
		}
		defer p.sem.Release(1)
		return task(p, wp)
	})
}

func (p *pool[T]) emit(node *Node[T], path []int) {
	p.mx.Lock()
	defer p.mx.Unlock()
	p.results = append(p.results, result[T]{node: node, path: path})
}

// wait blocks until all work packages are processed and returns the
// results in document order, together with the first error of any package.
func (p *pool[T]) wait() ([]*Node[T], error) {
	err := p.group.Wait()
	p.mx.Lock()
	defer p.mx.Unlock()
	sort.SliceStable(p.results, func(i, j int) bool {
		return pathLess(p.results[i].path, p.results[j].path)
	})
	nodes := make([]*Node[T], len(p.results))
	for i, r := range p.results {
		nodes[i] = r.node
	}
	return nodes, err
}

// pathLess orders paths in pre-order: parents before their children,
// siblings by position.
func pathLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func childPath(path []int, position int) []int {
	p := make([]int, len(path)+1)
	copy(p, path)
	p[len(path)] = position
	return p
}
