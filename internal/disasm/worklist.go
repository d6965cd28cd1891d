package disasm

import (
	"sync"

	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// Node is the unit of tracing: an address that is executed with a width state.
type Node struct {
	Address program.Address
	State   m65816.State
}

// visitedSet contains all discovered nodes.
type visitedSet struct {
	mu    sync.Mutex
	nodes set.Set[Node]
}

func newVisitedSet() *visitedSet {
	return &visitedSet{
		nodes: set.New[Node](),
	}
}

// add inserts the node and returns whether it was not yet part of the set.
func (v *visitedSet) add(node Node) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.nodes.Contains(node) {
		return false
	}
	v.nodes.Add(node)
	return true
}

func (v *visitedSet) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nodes.Size()
}

// worklist is a queue of nodes to expand that is shared by all workers. It
// tracks the number of nodes that are being expanded, the tracing is
// finished once the queue is empty and no node is in flight.
type worklist struct {
	mu       sync.Mutex
	idle     *sync.Cond
	items    []Node
	inFlight int
	closed   bool
}

func newWorklist() *worklist {
	w := &worklist{}
	w.idle = sync.NewCond(&w.mu)
	return w
}

func (w *worklist) push(nodes ...Node) {
	if len(nodes) == 0 {
		return
	}

	w.mu.Lock()
	w.items = append(w.items, nodes...)
	w.mu.Unlock()
	w.idle.Broadcast()
}

// pop returns the next node to expand. It blocks while the queue is empty
// and other workers can still discover nodes. The caller has to call done
// after expanding the returned node.
func (w *worklist) pop() (Node, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for len(w.items) == 0 && w.inFlight > 0 && !w.closed {
		w.idle.Wait()
	}
	if len(w.items) == 0 || w.closed {
		return Node{}, false
	}

	last := len(w.items) - 1
	node := w.items[last]
	w.items = w.items[:last]
	w.inFlight++
	return node, true
}

func (w *worklist) done() {
	w.mu.Lock()
	w.inFlight--
	w.mu.Unlock()
	w.idle.Broadcast()
}

// close wakes up all waiting workers and makes pop return no further nodes.
func (w *worklist) close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.idle.Broadcast()
}
