// Package symbols assigns labels to referenced addresses and provides
// generic address keyed symbol management.
package symbols

import (
	"slices"

	"github.com/retroenv/snesgodisasm/internal/program"
)

// Manager provides generic symbol tracking with bank support.
// T is the type of symbol being managed (e.g., *program.Label).
type Manager[T any] struct {
	banks map[uint8]*Bank[T]
	items map[program.Address]T
}

// Bank contains the symbols of one 64 KiB bank keyed by the offset inside the bank.
type Bank[T any] struct {
	number uint8
	items  map[uint16]T
}

// Number returns the bank number.
func (b *Bank[T]) Number() uint8 {
	return b.number
}

// Get returns the item at the given offset in this bank.
func (b *Bank[T]) Get(offset uint16) (T, bool) {
	item, ok := b.items[offset]
	return item, ok
}

// Has returns whether an item exists at the given offset in this bank.
func (b *Bank[T]) Has(offset uint16) bool {
	_, ok := b.items[offset]
	return ok
}

// Len returns the number of items in this bank.
func (b *Bank[T]) Len() int {
	return len(b.items)
}

// New creates a new symbol manager.
func New[T any]() *Manager[T] {
	return &Manager[T]{
		banks: make(map[uint8]*Bank[T]),
		items: make(map[program.Address]T),
	}
}

// Get returns the item at the given address.
func (m *Manager[T]) Get(address program.Address) (T, bool) {
	item, ok := m.items[address]
	return item, ok
}

// Set sets the item at the given address and adds it to the bank of the address.
func (m *Manager[T]) Set(address program.Address, item T) {
	m.items[address] = item

	bank, ok := m.banks[address.Bank()]
	if !ok {
		bank = &Bank[T]{
			number: address.Bank(),
			items:  make(map[uint16]T),
		}
		m.banks[address.Bank()] = bank
	}
	bank.items[address.Offset()] = item
}

// Has returns whether an item exists at the given address.
func (m *Manager[T]) Has(address program.Address) bool {
	_, ok := m.items[address]
	return ok
}

// Len returns the number of items in the manager.
func (m *Manager[T]) Len() int {
	return len(m.items)
}

// Addresses returns all addresses that have an item in ascending order.
func (m *Manager[T]) Addresses() []program.Address {
	addresses := make([]program.Address, 0, len(m.items))
	for address := range m.items {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)
	return addresses
}

// Sorted returns all items sorted by address.
func (m *Manager[T]) Sorted() []T {
	addresses := m.Addresses()
	items := make([]T, 0, len(addresses))
	for _, address := range addresses {
		items = append(items, m.items[address])
	}
	return items
}

// Banks returns all banks that contain items, sorted by bank number.
func (m *Manager[T]) Banks() []*Bank[T] {
	banks := make([]*Bank[T], 0, len(m.banks))
	for _, bank := range m.banks {
		banks = append(banks, bank)
	}
	slices.SortFunc(banks, func(a, b *Bank[T]) int {
		return int(a.number) - int(b.number)
	})
	return banks
}
