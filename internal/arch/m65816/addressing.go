package m65816

import "fmt"

// AddressingMode specifies how a 65816 instruction accesses its operand.
type AddressingMode int

// Addressing modes of the 65816. The immediate modes are split by the
// register width that decides their operand size.
const (
	NoAddressing AddressingMode = iota
	ImpliedAddressing
	AccumulatorAddressing
	Immediate8Addressing           // rep #$30, also the signature byte of brk/cop
	ImmediateMAddressing           // lda #$12 or lda #$1234 depending on the M flag
	ImmediateXAddressing           // ldx #$12 or ldx #$1234 depending on the X flag
	Immediate16Addressing          // pea $1234
	DirectAddressing               // lda $12
	DirectXAddressing              // lda $12,x
	DirectYAddressing              // ldx $12,y
	DirectIndirectAddressing       // lda ($12)
	DirectIndirectLongAddressing   // lda [$12]
	DirectXIndirectAddressing      // lda ($12,x)
	DirectIndirectYAddressing      // lda ($12),y
	DirectIndirectLongYAddressing  // lda [$12],y
	AbsoluteAddressing             // lda $1234
	AbsoluteXAddressing            // lda $1234,x
	AbsoluteYAddressing            // lda $1234,y
	AbsoluteLongAddressing         // lda $123456
	AbsoluteLongXAddressing        // lda $123456,x
	AbsoluteIndirectAddressing     // jmp ($1234)
	AbsoluteIndirectLongAddressing // jml [$1234]
	AbsoluteXIndirectAddressing    // jmp ($1234,x)
	StackRelativeAddressing        // lda $12,s
	StackRelativeIndirectYAddressing
	RelativeAddressing     // bra label, 8 bit displacement
	RelativeLongAddressing // brl label, 16 bit displacement
	BlockMoveAddressing    // mvn $7e,$7f
)

// OperandSize returns the number of operand bytes for the addressing mode
// under the given width state.
func (m AddressingMode) OperandSize(state State) int {
	switch m {
	case ImpliedAddressing, AccumulatorAddressing:
		return 0

	case ImmediateMAddressing:
		if state.Acc16 {
			return 2
		}
		return 1

	case ImmediateXAddressing:
		if state.Idx16 {
			return 2
		}
		return 1

	case Immediate8Addressing, DirectAddressing, DirectXAddressing, DirectYAddressing,
		DirectIndirectAddressing, DirectIndirectLongAddressing, DirectXIndirectAddressing,
		DirectIndirectYAddressing, DirectIndirectLongYAddressing,
		StackRelativeAddressing, StackRelativeIndirectYAddressing, RelativeAddressing:
		return 1

	case Immediate16Addressing, AbsoluteAddressing, AbsoluteXAddressing, AbsoluteYAddressing,
		AbsoluteIndirectAddressing, AbsoluteIndirectLongAddressing, AbsoluteXIndirectAddressing,
		RelativeLongAddressing, BlockMoveAddressing:
		return 2

	case AbsoluteLongAddressing, AbsoluteLongXAddressing:
		return 3

	default:
		return 0
	}
}

// IsIndirect returns whether the addressing mode reads the effective address
// from memory.
func (m AddressingMode) IsIndirect() bool {
	switch m {
	case AbsoluteIndirectAddressing, AbsoluteIndirectLongAddressing, AbsoluteXIndirectAddressing:
		return true
	default:
		return false
	}
}

// formatOperand returns the assembler notation of the operand. Relative
// operands are shown as their resolved target offset.
func formatOperand(ins Instruction) string {
	op := ins.Operand

	switch ins.Addressing {
	case ImpliedAddressing:
		return ""
	case AccumulatorAddressing:
		return "a"
	case Immediate8Addressing:
		return fmt.Sprintf("#$%02x", op)
	case ImmediateMAddressing, ImmediateXAddressing:
		if ins.Size == 3 {
			return fmt.Sprintf("#$%04x", op)
		}
		return fmt.Sprintf("#$%02x", op)
	case Immediate16Addressing:
		return fmt.Sprintf("$%04x", op)
	case DirectAddressing:
		return fmt.Sprintf("$%02x", op)
	case DirectXAddressing:
		return fmt.Sprintf("$%02x,x", op)
	case DirectYAddressing:
		return fmt.Sprintf("$%02x,y", op)
	case DirectIndirectAddressing:
		return fmt.Sprintf("($%02x)", op)
	case DirectIndirectLongAddressing:
		return fmt.Sprintf("[$%02x]", op)
	case DirectXIndirectAddressing:
		return fmt.Sprintf("($%02x,x)", op)
	case DirectIndirectYAddressing:
		return fmt.Sprintf("($%02x),y", op)
	case DirectIndirectLongYAddressing:
		return fmt.Sprintf("[$%02x],y", op)
	case AbsoluteAddressing:
		return fmt.Sprintf("$%04x", op)
	case AbsoluteXAddressing:
		return fmt.Sprintf("$%04x,x", op)
	case AbsoluteYAddressing:
		return fmt.Sprintf("$%04x,y", op)
	case AbsoluteLongAddressing:
		return fmt.Sprintf("$%06x", op)
	case AbsoluteLongXAddressing:
		return fmt.Sprintf("$%06x,x", op)
	case AbsoluteIndirectAddressing:
		return fmt.Sprintf("($%04x)", op)
	case AbsoluteIndirectLongAddressing:
		return fmt.Sprintf("[$%04x]", op)
	case AbsoluteXIndirectAddressing:
		return fmt.Sprintf("($%04x,x)", op)
	case StackRelativeAddressing:
		return fmt.Sprintf("$%02x,s", op)
	case StackRelativeIndirectYAddressing:
		return fmt.Sprintf("($%02x,s),y", op)
	case RelativeAddressing, RelativeLongAddressing:
		return fmt.Sprintf("$%04x", ins.relativeTarget().Offset())
	case BlockMoveAddressing:
		// the destination bank is encoded first, the source bank second
		return fmt.Sprintf("$%02x,$%02x", op>>8, op&0xff)
	default:
		return ""
	}
}
