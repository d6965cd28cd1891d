package m65816

import "github.com/retroenv/snesgodisasm/internal/program"

// Vector is an interrupt vector in the header area of bank $00.
type Vector struct {
	Name    string
	Address program.Address // address of the 16 bit handler pointer
}

// Vectors lists the native mode and emulation mode vectors. The handlers
// are located in bank $00. The order decides which name a handler gets
// that serves multiple vectors.
var Vectors = []Vector{
	{Name: "Reset", Address: 0x00FFFC},
	{Name: "NMI", Address: 0x00FFEA},
	{Name: "IRQ", Address: 0x00FFEE},
	{Name: "BRK", Address: 0x00FFE6},
	{Name: "COP", Address: 0x00FFE4},
	{Name: "ABORT", Address: 0x00FFE8},
	{Name: "EmuNMI", Address: 0x00FFFA},
	{Name: "EmuIRQ", Address: 0x00FFFE},
	{Name: "EmuCOP", Address: 0x00FFF4},
	{Name: "EmuABORT", Address: 0x00FFF8},
}
