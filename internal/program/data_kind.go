package program

import (
	"errors"
	"fmt"
	"strings"
)

// DataKind describes the content of a data region so that editors can pick
// the regions they handle.
type DataKind uint8

// data kinds.
const (
	UnspecifiedData DataKind = iota
	EmptyData
	GraphicsData
	InternalRomHeaderData
	JumpTableData     // table of 16 bit pointers into the bank of the jump
	JumpTableLongData // table of 24 bit pointers
	LevelBackgroundLayerData
	LevelObjectLayerData
	LevelSpriteLayerData
	MusicData
	OverworldLayer1Data
	OverworldLayer2Data
	OverworldSpriteLayerData
	SoundSampleData
	TextData
)

var errUnknownDataKind = errors.New("unknown data kind")

var dataKindNames = map[DataKind]string{
	UnspecifiedData:          "",
	EmptyData:                "empty",
	GraphicsData:             "graphics",
	InternalRomHeaderData:    "internal-rom-header",
	JumpTableData:            "jump-table",
	JumpTableLongData:        "jump-table-long",
	LevelBackgroundLayerData: "level-background-layer",
	LevelObjectLayerData:     "level-object-layer",
	LevelSpriteLayerData:     "level-sprite-layer",
	MusicData:                "music",
	OverworldLayer1Data:      "overworld-layer-1",
	OverworldLayer2Data:      "overworld-layer-2",
	OverworldSpriteLayerData: "overworld-sprite-layer",
	SoundSampleData:          "sound-sample",
	TextData:                 "text",
}

func (k DataKind) String() string {
	if s, ok := dataKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseDataKind parses the name of a data kind, an empty name is the
// unspecified kind.
func ParseDataKind(s string) (DataKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range dataKindNames {
		if name == s {
			return kind, nil
		}
	}
	return UnspecifiedData, fmt.Errorf("%w '%s'", errUnknownDataKind, s)
}
