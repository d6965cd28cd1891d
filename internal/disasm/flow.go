package disasm

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/jumpengine"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// xrefKinds maps the control flow of an instruction with static targets to
// the cross reference kind.
var xrefKinds = map[m65816.Flow]program.XrefKind{
	m65816.BranchFlow: program.XrefBranch,
	m65816.JumpFlow:   program.XrefJump,
	m65816.CallFlow:   program.XrefCall,
}

// expand decodes the instruction of the node and queues its successors.
func (dis *Disasm) expand(node Node) {
	ins, err := m65816.DecodeAt(dis.image, node.Address, node.State)
	if err != nil {
		dis.decodeFailure(node, err)
		return
	}

	offset, err := dis.image.Offset(node.Address)
	if err != nil {
		dis.decodeFailure(node, err)
		return
	}
	dis.record(offset, ins)

	next := m65816.Apply(node.State, ins)

	switch ins.Flow {
	case m65816.SequentialFlow:
		dis.push(Node{Address: ins.Next(), State: next})

	case m65816.BranchFlow:
		dis.staticTargets(ins, next)
		dis.push(Node{Address: ins.Next(), State: next})

	case m65816.JumpFlow:
		dis.staticTargets(ins, next)

	case m65816.CallFlow:
		dis.call(ins, node.State)

	case m65816.IndirectJumpFlow:
		dis.indirect(ins, offset, next)

	case m65816.IndirectCallFlow:
		dis.indirect(ins, offset, next)
		dis.push(Node{Address: ins.Next(), State: node.State})

	case m65816.ReturnFlow, m65816.InterruptFlow, m65816.StopFlow:
	}
}

func (dis *Disasm) staticTargets(ins m65816.Instruction, state m65816.State) {
	for _, target := range ins.Targets() {
		dis.addXref(program.Xref{From: ins.Address, To: target, Kind: xrefKinds[ins.Flow]})
		dis.push(Node{Address: target, State: state})
	}
}

// call handles a subroutine call with a static target. The code after the
// call is traced as a new root with the state before the call, unless the
// target is a dispatcher that consumes the pointer table after the call.
func (dis *Disasm) call(ins m65816.Instruction, state m65816.State) {
	targets := ins.Targets()
	if len(targets) == 0 {
		return
	}
	target := targets[0]
	dis.addXref(program.Xref{From: ins.Address, To: target, Kind: program.XrefCall})

	if _, err := dis.image.Offset(target); err != nil {
		// routines in RAM are not traced
		dis.logger.Debug("Call target outside of ROM",
			log.Stringer("address", ins.Address),
			log.Stringer("target", target))
		dis.push(Node{Address: ins.Next(), State: state})
		return
	}
	dis.push(Node{Address: target, State: state})

	dispatcher, ok := dis.jumpEngine.Dispatcher(target)
	if !ok {
		dis.push(Node{Address: ins.Next(), State: state})
		return
	}

	table, err := dis.jumpEngine.Dispatch(ins, dispatcher)
	if err != nil {
		dis.logger.Warn("Could not resolve dispatcher table",
			log.Stringer("address", ins.Address),
			log.String("dispatcher", dispatcher.Name),
			log.Err(err))
		dis.unresolved(ins, err)
		return
	}
	dis.tableTargets(ins, table)
}

// indirect resolves an indirect jump or call through the jump table hints.
func (dis *Disasm) indirect(ins m65816.Instruction, offset int, state m65816.State) {
	table, err := dis.jumpEngine.Resolve(ins, state)
	if err != nil {
		if !errors.Is(err, jumpengine.ErrUnresolved) {
			dis.addConflict(program.Conflict{
				Address: ins.Address,
				Kind:    program.MappingFailure,
				Reason:  err.Error(),
			})
		}
		dis.logger.Debug("Unresolved indirect transfer",
			log.Stringer("address", ins.Address),
			log.String("instruction", ins.String()),
			log.Int("offset", offset))
		dis.unresolved(ins, err)
		return
	}
	dis.tableTargets(ins, table)
}

// unresolved marks an indirect site as ambiguous.
func (dis *Disasm) unresolved(ins m65816.Instruction, err error) {
	dis.markAmbiguous(dis.byteOffsets(ins)...)

	dis.addXref(program.Xref{From: ins.Address, Kind: program.XrefIndirectUnresolved})
	dis.addConflict(program.Conflict{
		Address:    ins.Address,
		Kind:       program.UnresolvedIndirect,
		Reason:     fmt.Sprintf("%s: %s", ins.String(), err),
		Candidates: []string{"add a jump_tables hint for this site"},
	})
}

func (dis *Disasm) tableTargets(ins m65816.Instruction, table jumpengine.Table) {
	if table.HasData {
		dis.mu.Lock()
		dis.tables = append(dis.tables, table.Data)
		dis.mu.Unlock()
	}

	for _, target := range table.Targets {
		dis.addXref(program.Xref{From: ins.Address, To: target.Address, Kind: program.XrefJumpTable})
		dis.push(Node{Address: target.Address, State: target.State})
	}
}

// decodeFailure reports a node that could not be decoded. Undefined opcodes
// mark the opcode byte as ambiguous.
func (dis *Disasm) decodeFailure(node Node, err error) {
	kind := program.DecodeFailure
	var mappingErr *mapper.MappingError
	var decodeErr *m65816.DecodeError
	if errors.As(err, &mappingErr) && !errors.As(err, &decodeErr) {
		kind = program.MappingFailure
	}

	if errors.Is(err, m65816.ErrUndefined) {
		if offset, mapErr := dis.image.Offset(node.Address); mapErr == nil {
			dis.markAmbiguous(offset)
		}
	}

	dis.logger.Debug("Decoding failed",
		log.Stringer("address", node.Address),
		log.Stringer("state", node.State),
		log.Err(err))

	dis.addConflict(program.Conflict{
		Address: node.Address,
		Kind:    kind,
		Reason:  err.Error(),
	})
}
