package tree

import (
	"fmt"
	"sync"
)

var errRankOfNullNode = fmt.Errorf("cannot determine rank of null-node")

// rankMap counts per node, e.g. the number of children already processed
// during a bottom-up walk.
type rankMap[T comparable] struct {
	lock  *sync.RWMutex
	count map[*Node[T]]uint32
}

func newRankMap[T comparable]() *rankMap[T] {
	return &rankMap[T]{
		&sync.RWMutex{},
		make(map[*Node[T]]uint32),
	}
}

// Inc increments the count for n and returns the count before.
func (rmap *rankMap[T]) Inc(n *Node[T]) (uint32, error) {
	if n == nil {
		return 0, errRankOfNullNode
	}
	rmap.lock.Lock()
	defer rmap.lock.Unlock()
	rank := rmap.count[n]
	rmap.count[n] = rank + 1
	return rank, nil
}
