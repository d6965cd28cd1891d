// Package m65816 decodes instructions of the WDC 65C816 CPU used in the SNES.
//
// The size of immediate operands depends on the M and X processor status
// flags, so every decode takes the width State the instruction is executed with.
package m65816
