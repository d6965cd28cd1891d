package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOffsetType_IsType(t *testing.T) {
	var offset OffsetType

	offset.SetType(CodeOffset)
	assert.True(t, offset.IsType(CodeOffset))
	assert.False(t, offset.IsType(HintDataOffset))
	assert.False(t, offset.IsType(UnknownOffset))

	offset.SetType(HintDataOffset)
	assert.True(t, offset.IsType(CodeOffset))
	assert.True(t, offset.IsType(HintDataOffset))
	assert.True(t, offset.IsType(CodeOffset|HintDataOffset))
	assert.False(t, offset.IsType(CodeOffset|AmbiguousOffset))
}

func TestOffsetType_ClearType(t *testing.T) {
	var offset OffsetType
	offset.SetType(CodeOffset | InstructionStart)

	offset.ClearType(InstructionStart)
	assert.True(t, offset.IsType(CodeOffset))
	assert.False(t, offset.IsType(InstructionStart))

	offset.ClearType(CodeOffset)
	assert.Equal(t, UnknownOffset, offset)
}

func TestOffsetType_Class(t *testing.T) {
	tests := []struct {
		name     string
		typ      OffsetType
		expected Class
	}{
		{name: "untouched", typ: UnknownOffset, expected: Unknown},
		{name: "traced code", typ: CodeOffset | InstructionStart, expected: Code},
		{name: "ambiguous code", typ: CodeOffset | AmbiguousOffset, expected: Ambiguous},
		{name: "hinted data over code", typ: CodeOffset | HintDataOffset, expected: Data},
		{name: "hinted code over ambiguous", typ: AmbiguousOffset | HintCodeOffset, expected: Code},
		{name: "data hint wins over code hint", typ: HintCodeOffset | HintDataOffset, expected: Data},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.Class())
		})
	}
}
