// Package disasm implements the concurrent control flow tracer that discovers
// all statically reachable 65816 code of a ROM image.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/jumpengine"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/options"
	"github.com/retroenv/snesgodisasm/internal/program"
	"golang.org/x/sync/errgroup"
)

var errBudgetExhausted = errors.New("step budget exhausted")

// visit is an instruction shape decoded at a ROM offset.
type visit struct {
	ins    m65816.Instruction
	states set.Set[m65816.State]
}

// Disasm implements the control flow tracer.
type Disasm struct {
	logger  *log.Logger
	options options.Tracer

	image      *mapper.Image
	hints      *hints.Set
	jumpEngine *jumpengine.JumpEngine

	work    *worklist
	visited *visitedSet
	steps   atomic.Int64

	mu               sync.Mutex              // protects all following fields
	visits           map[int]map[int]*visit  // ROM offset to instruction length to visit
	ambiguous        set.Set[int]            // ROM offsets of ambiguous bytes
	tables           []program.Region        // pointer tables read from ROM
	xrefs            []program.Xref
	vectors          map[program.Address]string // canonical handler address to vector name
	conflicts        []program.Conflict
	truncationReason string
}

// New returns a tracer for the image. The hint set has to be resolved
// against the mapper of the image. A nil set traces without hints.
func New(logger *log.Logger, image *mapper.Image, opts options.Tracer, hintSet *hints.Set) *Disasm {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if hintSet == nil {
		hintSet = &hints.Set{}
	}

	return &Disasm{
		logger:     logger,
		options:    opts,
		image:      image,
		hints:      hintSet,
		jumpEngine: jumpengine.New(image, hintSet),
		work:       newWorklist(),
		visited:    newVisitedSet(),
		visits:     map[int]map[int]*visit{},
		ambiguous:  set.New[int](),
		vectors:    map[program.Address]string{},
	}
}

// Trace follows the execution flow from all seeds until no new code is
// discovered. Exhausting the step or time budget returns the partial trace
// marked as truncated, cancelling the context returns its error.
func (dis *Disasm) Trace(ctx context.Context) (*Trace, error) {
	traceCtx := ctx
	if dis.options.Timeout > 0 {
		var cancel context.CancelFunc
		traceCtx, cancel = context.WithTimeout(ctx, dis.options.Timeout)
		defer cancel()
	}

	dis.seed()

	group, groupCtx := errgroup.WithContext(traceCtx)
	stop := context.AfterFunc(groupCtx, dis.work.close)
	defer stop()

	for range dis.options.Workers {
		group.Go(func() error {
			return dis.worker(groupCtx)
		})
	}
	err := group.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("tracing cancelled: %w", ctxErr)
	}

	switch {
	case err == nil:
	case errors.Is(err, errBudgetExhausted):
		dis.truncate(fmt.Sprintf("step budget of %d exhausted", dis.options.MaxSteps))
	case errors.Is(err, context.DeadlineExceeded):
		dis.truncate(fmt.Sprintf("timeout of %s exceeded", dis.options.Timeout))
	default:
		return nil, fmt.Errorf("tracing: %w", err)
	}

	return dis.finalize(), nil
}

func (dis *Disasm) worker(ctx context.Context) error {
	for {
		node, ok := dis.work.pop()
		if !ok {
			return ctx.Err()
		}
		err := dis.step(ctx, node)
		dis.work.done()
		if err != nil {
			return err
		}
	}
}

// step checks the budget and expands the node.
func (dis *Disasm) step(ctx context.Context, node Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	steps := dis.steps.Add(1)
	if maxSteps := dis.options.MaxSteps; maxSteps > 0 && steps > int64(maxSteps) {
		return errBudgetExhausted
	}

	dis.expand(node)
	return nil
}

// push queues all nodes that have not been discovered yet.
func (dis *Disasm) push(nodes ...Node) {
	for _, node := range nodes {
		if dis.visited.add(node) {
			dis.work.push(node)
		}
	}
}

func (dis *Disasm) truncate(reason string) {
	dis.mu.Lock()
	defer dis.mu.Unlock()

	if dis.truncationReason == "" {
		dis.truncationReason = reason
		dis.logger.Warn("Tracing truncated", log.String("reason", reason))
	}
}

func (dis *Disasm) addConflict(conflict program.Conflict) {
	dis.mu.Lock()
	dis.conflicts = append(dis.conflicts, conflict)
	dis.mu.Unlock()
}

func (dis *Disasm) addXref(xref program.Xref) {
	dis.mu.Lock()
	dis.xrefs = append(dis.xrefs, xref)
	dis.mu.Unlock()
}

// markAmbiguous marks the ROM bytes at the given offsets as ambiguous.
func (dis *Disasm) markAmbiguous(offsets ...int) {
	dis.mu.Lock()
	defer dis.mu.Unlock()

	for _, offset := range offsets {
		dis.ambiguous.Add(offset)
	}
}

// byteOffsets returns the ROM offset of every byte of the instruction. The
// program counter wraps inside the bank, so the bytes of an instruction at
// the end of a bank do not have to be contiguous in the ROM.
func (dis *Disasm) byteOffsets(ins m65816.Instruction) []int {
	offsets := make([]int, 0, ins.Size)
	for i := range ins.Size {
		offset, err := dis.image.Offset(ins.Address.AddInBank(i))
		if err != nil {
			break
		}
		offsets = append(offsets, offset)
	}
	return offsets
}

// record adds the decoded instruction at the ROM offset.
func (dis *Disasm) record(offset int, ins m65816.Instruction) {
	dis.mu.Lock()
	defer dis.mu.Unlock()

	byLength, ok := dis.visits[offset]
	if !ok {
		byLength = map[int]*visit{}
		dis.visits[offset] = byLength
	}

	v, ok := byLength[ins.Size]
	if !ok {
		v = &visit{
			ins:    ins,
			states: set.New[m65816.State](),
		}
		byLength[ins.Size] = v
	}
	v.states.Add(ins.State)

	// keep the lowest address and state for a result that does not depend on the worker scheduling
	if ins.Address < v.ins.Address ||
		(ins.Address == v.ins.Address && stateIndex(ins.State) < stateIndex(v.ins.State)) {
		v.ins = ins
	}
}
