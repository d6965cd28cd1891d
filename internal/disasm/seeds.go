package disasm

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// seed queues the interrupt vector handlers and the hinted entry points.
func (dis *Disasm) seed() {
	for _, vector := range m65816.Vectors {
		dis.seedVector(vector)
	}

	for _, ep := range dis.hints.EntryPoints {
		dis.logger.Debug("Entry point",
			log.Stringer("address", ep.Address),
			log.Stringer("state", ep.State))
		dis.push(Node{Address: ep.Address, State: ep.State})
	}

	for _, rng := range dis.hints.Code {
		dis.push(Node{Address: rng.Address, State: rng.State})
	}
}

func (dis *Disasm) seedVector(vector m65816.Vector) {
	value, err := dis.image.ReadWord(vector.Address)
	if err != nil {
		dis.logger.Debug("Skipping unreadable vector",
			log.String("vector", vector.Name),
			log.Err(err))
		return
	}
	if value == 0x0000 || value == 0xFFFF {
		dis.logger.Debug("Skipping unused vector",
			log.String("vector", vector.Name),
			log.Hex("value", value))
		return
	}

	handler := program.NewAddress(vector.Address.Bank(), value)
	canonical, err := dis.image.Canonical(handler)
	if err != nil {
		dis.logger.Debug("Skipping vector that does not point to ROM",
			log.String("vector", vector.Name),
			log.Stringer("handler", handler))
		return
	}

	dis.logger.Debug("Vector",
		log.String("vector", vector.Name),
		log.Stringer("handler", handler))

	dis.mu.Lock()
	if _, ok := dis.vectors[canonical]; !ok {
		dis.vectors[canonical] = vector.Name
	}
	dis.mu.Unlock()

	dis.addXref(program.Xref{
		From: vector.Address,
		To:   handler,
		Kind: program.XrefInterruptVector,
	})
	dis.push(Node{Address: handler, State: m65816.State{}})
}
