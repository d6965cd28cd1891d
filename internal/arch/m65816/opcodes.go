package m65816

// Opcodes maps the first opcode byte to its mnemonic, addressing mode and control flow.
// Reference: WDC W65C816S datasheet, opcode matrix.
var Opcodes = [256]Opcode{
	{Name: "brk", Addressing: Immediate8Addressing, Flow: InterruptFlow},              // 0x00
	{Name: "ora", Addressing: DirectXIndirectAddressing},                              // 0x01
	{Name: "cop", Addressing: Immediate8Addressing, Flow: InterruptFlow},              // 0x02
	{Name: "ora", Addressing: StackRelativeAddressing},                                // 0x03
	{Name: "tsb", Addressing: DirectAddressing},                                       // 0x04
	{Name: "ora", Addressing: DirectAddressing},                                       // 0x05
	{Name: "asl", Addressing: DirectAddressing},                                       // 0x06
	{Name: "ora", Addressing: DirectIndirectLongAddressing},                           // 0x07
	{Name: "php", Addressing: ImpliedAddressing},                                      // 0x08
	{Name: "ora", Addressing: ImmediateMAddressing},                                   // 0x09
	{Name: "asl", Addressing: AccumulatorAddressing},                                  // 0x0a
	{Name: "phd", Addressing: ImpliedAddressing},                                      // 0x0b
	{Name: "tsb", Addressing: AbsoluteAddressing},                                     // 0x0c
	{Name: "ora", Addressing: AbsoluteAddressing},                                     // 0x0d
	{Name: "asl", Addressing: AbsoluteAddressing},                                     // 0x0e
	{Name: "ora", Addressing: AbsoluteLongAddressing},                                 // 0x0f
	{Name: "bpl", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0x10
	{Name: "ora", Addressing: DirectIndirectYAddressing},                              // 0x11
	{Name: "ora", Addressing: DirectIndirectAddressing},                               // 0x12
	{Name: "ora", Addressing: StackRelativeIndirectYAddressing},                       // 0x13
	{Name: "trb", Addressing: DirectAddressing},                                       // 0x14
	{Name: "ora", Addressing: DirectXAddressing},                                      // 0x15
	{Name: "asl", Addressing: DirectXAddressing},                                      // 0x16
	{Name: "ora", Addressing: DirectIndirectLongYAddressing},                          // 0x17
	{Name: "clc", Addressing: ImpliedAddressing},                                      // 0x18
	{Name: "ora", Addressing: AbsoluteYAddressing},                                    // 0x19
	{Name: "inc", Addressing: AccumulatorAddressing},                                  // 0x1a
	{Name: "tcs", Addressing: ImpliedAddressing},                                      // 0x1b
	{Name: "trb", Addressing: AbsoluteAddressing},                                     // 0x1c
	{Name: "ora", Addressing: AbsoluteXAddressing},                                    // 0x1d
	{Name: "asl", Addressing: AbsoluteXAddressing},                                    // 0x1e
	{Name: "ora", Addressing: AbsoluteLongXAddressing},                                // 0x1f
	{Name: "jsr", Addressing: AbsoluteAddressing, Flow: CallFlow},                     // 0x20
	{Name: "and", Addressing: DirectXIndirectAddressing},                              // 0x21
	{Name: "jsl", Addressing: AbsoluteLongAddressing, Flow: CallFlow},                 // 0x22
	{Name: "and", Addressing: StackRelativeAddressing},                                // 0x23
	{Name: "bit", Addressing: DirectAddressing},                                       // 0x24
	{Name: "and", Addressing: DirectAddressing},                                       // 0x25
	{Name: "rol", Addressing: DirectAddressing},                                       // 0x26
	{Name: "and", Addressing: DirectIndirectLongAddressing},                           // 0x27
	{Name: "plp", Addressing: ImpliedAddressing},                                      // 0x28
	{Name: "and", Addressing: ImmediateMAddressing},                                   // 0x29
	{Name: "rol", Addressing: AccumulatorAddressing},                                  // 0x2a
	{Name: "pld", Addressing: ImpliedAddressing},                                      // 0x2b
	{Name: "bit", Addressing: AbsoluteAddressing},                                     // 0x2c
	{Name: "and", Addressing: AbsoluteAddressing},                                     // 0x2d
	{Name: "rol", Addressing: AbsoluteAddressing},                                     // 0x2e
	{Name: "and", Addressing: AbsoluteLongAddressing},                                 // 0x2f
	{Name: "bmi", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0x30
	{Name: "and", Addressing: DirectIndirectYAddressing},                              // 0x31
	{Name: "and", Addressing: DirectIndirectAddressing},                               // 0x32
	{Name: "and", Addressing: StackRelativeIndirectYAddressing},                       // 0x33
	{Name: "bit", Addressing: DirectXAddressing},                                      // 0x34
	{Name: "and", Addressing: DirectXAddressing},                                      // 0x35
	{Name: "rol", Addressing: DirectXAddressing},                                      // 0x36
	{Name: "and", Addressing: DirectIndirectLongYAddressing},                          // 0x37
	{Name: "sec", Addressing: ImpliedAddressing},                                      // 0x38
	{Name: "and", Addressing: AbsoluteYAddressing},                                    // 0x39
	{Name: "dec", Addressing: AccumulatorAddressing},                                  // 0x3a
	{Name: "tsc", Addressing: ImpliedAddressing},                                      // 0x3b
	{Name: "bit", Addressing: AbsoluteXAddressing},                                    // 0x3c
	{Name: "and", Addressing: AbsoluteXAddressing},                                    // 0x3d
	{Name: "rol", Addressing: AbsoluteXAddressing},                                    // 0x3e
	{Name: "and", Addressing: AbsoluteLongXAddressing},                                // 0x3f
	{Name: "rti", Addressing: ImpliedAddressing, Flow: ReturnFlow},                    // 0x40
	{Name: "eor", Addressing: DirectXIndirectAddressing},                              // 0x41
	{Name: "wdm", Addressing: Immediate8Addressing, Reserved: true},                   // 0x42
	{Name: "eor", Addressing: StackRelativeAddressing},                                // 0x43
	{Name: "mvp", Addressing: BlockMoveAddressing},                                    // 0x44
	{Name: "eor", Addressing: DirectAddressing},                                       // 0x45
	{Name: "lsr", Addressing: DirectAddressing},                                       // 0x46
	{Name: "eor", Addressing: DirectIndirectLongAddressing},                           // 0x47
	{Name: "pha", Addressing: ImpliedAddressing},                                      // 0x48
	{Name: "eor", Addressing: ImmediateMAddressing},                                   // 0x49
	{Name: "lsr", Addressing: AccumulatorAddressing},                                  // 0x4a
	{Name: "phk", Addressing: ImpliedAddressing},                                      // 0x4b
	{Name: "jmp", Addressing: AbsoluteAddressing, Flow: JumpFlow},                     // 0x4c
	{Name: "eor", Addressing: AbsoluteAddressing},                                     // 0x4d
	{Name: "lsr", Addressing: AbsoluteAddressing},                                     // 0x4e
	{Name: "eor", Addressing: AbsoluteLongAddressing},                                 // 0x4f
	{Name: "bvc", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0x50
	{Name: "eor", Addressing: DirectIndirectYAddressing},                              // 0x51
	{Name: "eor", Addressing: DirectIndirectAddressing},                               // 0x52
	{Name: "eor", Addressing: StackRelativeIndirectYAddressing},                       // 0x53
	{Name: "mvn", Addressing: BlockMoveAddressing},                                    // 0x54
	{Name: "eor", Addressing: DirectXAddressing},                                      // 0x55
	{Name: "lsr", Addressing: DirectXAddressing},                                      // 0x56
	{Name: "eor", Addressing: DirectIndirectLongYAddressing},                          // 0x57
	{Name: "cli", Addressing: ImpliedAddressing},                                      // 0x58
	{Name: "eor", Addressing: AbsoluteYAddressing},                                    // 0x59
	{Name: "phy", Addressing: ImpliedAddressing},                                      // 0x5a
	{Name: "tcd", Addressing: ImpliedAddressing},                                      // 0x5b
	{Name: "jml", Addressing: AbsoluteLongAddressing, Flow: JumpFlow},                 // 0x5c
	{Name: "eor", Addressing: AbsoluteXAddressing},                                    // 0x5d
	{Name: "lsr", Addressing: AbsoluteXAddressing},                                    // 0x5e
	{Name: "eor", Addressing: AbsoluteLongXAddressing},                                // 0x5f
	{Name: "rts", Addressing: ImpliedAddressing, Flow: ReturnFlow},                    // 0x60
	{Name: "adc", Addressing: DirectXIndirectAddressing},                              // 0x61
	{Name: "per", Addressing: RelativeLongAddressing},                                 // 0x62
	{Name: "adc", Addressing: StackRelativeAddressing},                                // 0x63
	{Name: "stz", Addressing: DirectAddressing},                                       // 0x64
	{Name: "adc", Addressing: DirectAddressing},                                       // 0x65
	{Name: "ror", Addressing: DirectAddressing},                                       // 0x66
	{Name: "adc", Addressing: DirectIndirectLongAddressing},                           // 0x67
	{Name: "pla", Addressing: ImpliedAddressing},                                      // 0x68
	{Name: "adc", Addressing: ImmediateMAddressing},                                   // 0x69
	{Name: "ror", Addressing: AccumulatorAddressing},                                  // 0x6a
	{Name: "rtl", Addressing: ImpliedAddressing, Flow: ReturnFlow},                    // 0x6b
	{Name: "jmp", Addressing: AbsoluteIndirectAddressing, Flow: IndirectJumpFlow},     // 0x6c
	{Name: "adc", Addressing: AbsoluteAddressing},                                     // 0x6d
	{Name: "ror", Addressing: AbsoluteAddressing},                                     // 0x6e
	{Name: "adc", Addressing: AbsoluteLongAddressing},                                 // 0x6f
	{Name: "bvs", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0x70
	{Name: "adc", Addressing: DirectIndirectYAddressing},                              // 0x71
	{Name: "adc", Addressing: DirectIndirectAddressing},                               // 0x72
	{Name: "adc", Addressing: StackRelativeIndirectYAddressing},                       // 0x73
	{Name: "stz", Addressing: DirectXAddressing},                                      // 0x74
	{Name: "adc", Addressing: DirectXAddressing},                                      // 0x75
	{Name: "ror", Addressing: DirectXAddressing},                                      // 0x76
	{Name: "adc", Addressing: DirectIndirectLongYAddressing},                          // 0x77
	{Name: "sei", Addressing: ImpliedAddressing},                                      // 0x78
	{Name: "adc", Addressing: AbsoluteYAddressing},                                    // 0x79
	{Name: "ply", Addressing: ImpliedAddressing},                                      // 0x7a
	{Name: "tdc", Addressing: ImpliedAddressing},                                      // 0x7b
	{Name: "jmp", Addressing: AbsoluteXIndirectAddressing, Flow: IndirectJumpFlow},    // 0x7c
	{Name: "adc", Addressing: AbsoluteXAddressing},                                    // 0x7d
	{Name: "ror", Addressing: AbsoluteXAddressing},                                    // 0x7e
	{Name: "adc", Addressing: AbsoluteLongXAddressing},                                // 0x7f
	{Name: "bra", Addressing: RelativeAddressing, Flow: JumpFlow},                     // 0x80
	{Name: "sta", Addressing: DirectXIndirectAddressing},                              // 0x81
	{Name: "brl", Addressing: RelativeLongAddressing, Flow: JumpFlow},                 // 0x82
	{Name: "sta", Addressing: StackRelativeAddressing},                                // 0x83
	{Name: "sty", Addressing: DirectAddressing},                                       // 0x84
	{Name: "sta", Addressing: DirectAddressing},                                       // 0x85
	{Name: "stx", Addressing: DirectAddressing},                                       // 0x86
	{Name: "sta", Addressing: DirectIndirectLongAddressing},                           // 0x87
	{Name: "dey", Addressing: ImpliedAddressing},                                      // 0x88
	{Name: "bit", Addressing: ImmediateMAddressing},                                   // 0x89
	{Name: "txa", Addressing: ImpliedAddressing},                                      // 0x8a
	{Name: "phb", Addressing: ImpliedAddressing},                                      // 0x8b
	{Name: "sty", Addressing: AbsoluteAddressing},                                     // 0x8c
	{Name: "sta", Addressing: AbsoluteAddressing},                                     // 0x8d
	{Name: "stx", Addressing: AbsoluteAddressing},                                     // 0x8e
	{Name: "sta", Addressing: AbsoluteLongAddressing},                                 // 0x8f
	{Name: "bcc", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0x90
	{Name: "sta", Addressing: DirectIndirectYAddressing},                              // 0x91
	{Name: "sta", Addressing: DirectIndirectAddressing},                               // 0x92
	{Name: "sta", Addressing: StackRelativeIndirectYAddressing},                       // 0x93
	{Name: "sty", Addressing: DirectXAddressing},                                      // 0x94
	{Name: "sta", Addressing: DirectXAddressing},                                      // 0x95
	{Name: "stx", Addressing: DirectYAddressing},                                      // 0x96
	{Name: "sta", Addressing: DirectIndirectLongYAddressing},                          // 0x97
	{Name: "tya", Addressing: ImpliedAddressing},                                      // 0x98
	{Name: "sta", Addressing: AbsoluteYAddressing},                                    // 0x99
	{Name: "txs", Addressing: ImpliedAddressing},                                      // 0x9a
	{Name: "txy", Addressing: ImpliedAddressing},                                      // 0x9b
	{Name: "stz", Addressing: AbsoluteAddressing},                                     // 0x9c
	{Name: "sta", Addressing: AbsoluteXAddressing},                                    // 0x9d
	{Name: "stz", Addressing: AbsoluteXAddressing},                                    // 0x9e
	{Name: "sta", Addressing: AbsoluteLongXAddressing},                                // 0x9f
	{Name: "ldy", Addressing: ImmediateXAddressing},                                   // 0xa0
	{Name: "lda", Addressing: DirectXIndirectAddressing},                              // 0xa1
	{Name: "ldx", Addressing: ImmediateXAddressing},                                   // 0xa2
	{Name: "lda", Addressing: StackRelativeAddressing},                                // 0xa3
	{Name: "ldy", Addressing: DirectAddressing},                                       // 0xa4
	{Name: "lda", Addressing: DirectAddressing},                                       // 0xa5
	{Name: "ldx", Addressing: DirectAddressing},                                       // 0xa6
	{Name: "lda", Addressing: DirectIndirectLongAddressing},                           // 0xa7
	{Name: "tay", Addressing: ImpliedAddressing},                                      // 0xa8
	{Name: "lda", Addressing: ImmediateMAddressing},                                   // 0xa9
	{Name: "tax", Addressing: ImpliedAddressing},                                      // 0xaa
	{Name: "plb", Addressing: ImpliedAddressing},                                      // 0xab
	{Name: "ldy", Addressing: AbsoluteAddressing},                                     // 0xac
	{Name: "lda", Addressing: AbsoluteAddressing},                                     // 0xad
	{Name: "ldx", Addressing: AbsoluteAddressing},                                     // 0xae
	{Name: "lda", Addressing: AbsoluteLongAddressing},                                 // 0xaf
	{Name: "bcs", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0xb0
	{Name: "lda", Addressing: DirectIndirectYAddressing},                              // 0xb1
	{Name: "lda", Addressing: DirectIndirectAddressing},                               // 0xb2
	{Name: "lda", Addressing: StackRelativeIndirectYAddressing},                       // 0xb3
	{Name: "ldy", Addressing: DirectXAddressing},                                      // 0xb4
	{Name: "lda", Addressing: DirectXAddressing},                                      // 0xb5
	{Name: "ldx", Addressing: DirectYAddressing},                                      // 0xb6
	{Name: "lda", Addressing: DirectIndirectLongYAddressing},                          // 0xb7
	{Name: "clv", Addressing: ImpliedAddressing},                                      // 0xb8
	{Name: "lda", Addressing: AbsoluteYAddressing},                                    // 0xb9
	{Name: "tsx", Addressing: ImpliedAddressing},                                      // 0xba
	{Name: "tyx", Addressing: ImpliedAddressing},                                      // 0xbb
	{Name: "ldy", Addressing: AbsoluteXAddressing},                                    // 0xbc
	{Name: "lda", Addressing: AbsoluteXAddressing},                                    // 0xbd
	{Name: "ldx", Addressing: AbsoluteYAddressing},                                    // 0xbe
	{Name: "lda", Addressing: AbsoluteLongXAddressing},                                // 0xbf
	{Name: "cpy", Addressing: ImmediateXAddressing},                                   // 0xc0
	{Name: "cmp", Addressing: DirectXIndirectAddressing},                              // 0xc1
	{Name: "rep", Addressing: Immediate8Addressing},                                   // 0xc2
	{Name: "cmp", Addressing: StackRelativeAddressing},                                // 0xc3
	{Name: "cpy", Addressing: DirectAddressing},                                       // 0xc4
	{Name: "cmp", Addressing: DirectAddressing},                                       // 0xc5
	{Name: "dec", Addressing: DirectAddressing},                                       // 0xc6
	{Name: "cmp", Addressing: DirectIndirectLongAddressing},                           // 0xc7
	{Name: "iny", Addressing: ImpliedAddressing},                                      // 0xc8
	{Name: "cmp", Addressing: ImmediateMAddressing},                                   // 0xc9
	{Name: "dex", Addressing: ImpliedAddressing},                                      // 0xca
	{Name: "wai", Addressing: ImpliedAddressing},                                      // 0xcb
	{Name: "cpy", Addressing: AbsoluteAddressing},                                     // 0xcc
	{Name: "cmp", Addressing: AbsoluteAddressing},                                     // 0xcd
	{Name: "dec", Addressing: AbsoluteAddressing},                                     // 0xce
	{Name: "cmp", Addressing: AbsoluteLongAddressing},                                 // 0xcf
	{Name: "bne", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0xd0
	{Name: "cmp", Addressing: DirectIndirectYAddressing},                              // 0xd1
	{Name: "cmp", Addressing: DirectIndirectAddressing},                               // 0xd2
	{Name: "cmp", Addressing: StackRelativeIndirectYAddressing},                       // 0xd3
	{Name: "pei", Addressing: DirectIndirectAddressing},                               // 0xd4
	{Name: "cmp", Addressing: DirectXAddressing},                                      // 0xd5
	{Name: "dec", Addressing: DirectXAddressing},                                      // 0xd6
	{Name: "cmp", Addressing: DirectIndirectLongYAddressing},                          // 0xd7
	{Name: "cld", Addressing: ImpliedAddressing},                                      // 0xd8
	{Name: "cmp", Addressing: AbsoluteYAddressing},                                    // 0xd9
	{Name: "phx", Addressing: ImpliedAddressing},                                      // 0xda
	{Name: "stp", Addressing: ImpliedAddressing, Flow: StopFlow},                      // 0xdb
	{Name: "jml", Addressing: AbsoluteIndirectLongAddressing, Flow: IndirectJumpFlow}, // 0xdc
	{Name: "cmp", Addressing: AbsoluteXAddressing},                                    // 0xdd
	{Name: "dec", Addressing: AbsoluteXAddressing},                                    // 0xde
	{Name: "cmp", Addressing: AbsoluteLongXAddressing},                                // 0xdf
	{Name: "cpx", Addressing: ImmediateXAddressing},                                   // 0xe0
	{Name: "sbc", Addressing: DirectXIndirectAddressing},                              // 0xe1
	{Name: "sep", Addressing: Immediate8Addressing},                                   // 0xe2
	{Name: "sbc", Addressing: StackRelativeAddressing},                                // 0xe3
	{Name: "cpx", Addressing: DirectAddressing},                                       // 0xe4
	{Name: "sbc", Addressing: DirectAddressing},                                       // 0xe5
	{Name: "inc", Addressing: DirectAddressing},                                       // 0xe6
	{Name: "sbc", Addressing: DirectIndirectLongAddressing},                           // 0xe7
	{Name: "inx", Addressing: ImpliedAddressing},                                      // 0xe8
	{Name: "sbc", Addressing: ImmediateMAddressing},                                   // 0xe9
	{Name: "nop", Addressing: ImpliedAddressing},                                      // 0xea
	{Name: "xba", Addressing: ImpliedAddressing},                                      // 0xeb
	{Name: "cpx", Addressing: AbsoluteAddressing},                                     // 0xec
	{Name: "sbc", Addressing: AbsoluteAddressing},                                     // 0xed
	{Name: "inc", Addressing: AbsoluteAddressing},                                     // 0xee
	{Name: "sbc", Addressing: AbsoluteLongAddressing},                                 // 0xef
	{Name: "beq", Addressing: RelativeAddressing, Flow: BranchFlow},                   // 0xf0
	{Name: "sbc", Addressing: DirectIndirectYAddressing},                              // 0xf1
	{Name: "sbc", Addressing: DirectIndirectAddressing},                               // 0xf2
	{Name: "sbc", Addressing: StackRelativeIndirectYAddressing},                       // 0xf3
	{Name: "pea", Addressing: Immediate16Addressing},                                  // 0xf4
	{Name: "sbc", Addressing: DirectXAddressing},                                      // 0xf5
	{Name: "inc", Addressing: DirectXAddressing},                                      // 0xf6
	{Name: "sbc", Addressing: DirectIndirectLongYAddressing},                          // 0xf7
	{Name: "sed", Addressing: ImpliedAddressing},                                      // 0xf8
	{Name: "sbc", Addressing: AbsoluteYAddressing},                                    // 0xf9
	{Name: "plx", Addressing: ImpliedAddressing},                                      // 0xfa
	{Name: "xce", Addressing: ImpliedAddressing},                                      // 0xfb
	{Name: "jsr", Addressing: AbsoluteXIndirectAddressing, Flow: IndirectCallFlow},    // 0xfc
	{Name: "sbc", Addressing: AbsoluteXAddressing},                                    // 0xfd
	{Name: "inc", Addressing: AbsoluteXAddressing},                                    // 0xfe
	{Name: "sbc", Addressing: AbsoluteLongXAddressing},                                // 0xff
}
