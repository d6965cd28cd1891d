package program

import (
	"errors"
	"fmt"
	"sort"
)

// Class is the classification of a ROM region.
type Class uint8

// region classes.
const (
	Unknown Class = iota
	Code
	Data
	Ambiguous
)

var classNames = map[Class]string{
	Unknown:   "unknown",
	Code:      "code",
	Data:      "data",
	Ambiguous: "ambiguous",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Region is a contiguous range of ROM offsets sharing one classification.
type Region struct {
	Start   int     // first ROM offset
	End     int     // ROM offset after the last byte
	Address Address // linear address of Start
	Class   Class
	Kind    DataKind // content of data regions
}

// Len returns the region size in bytes.
func (r Region) Len() int {
	return r.End - r.Start
}

// RegionMap is an ordered partition of the ROM image into regions.
type RegionMap []Region

var (
	errRegionGap     = errors.New("region map has a gap")
	errRegionOverlap = errors.New("region map has overlapping regions")
	errRegionEmpty   = errors.New("region map has an empty region")
	errRegionSize    = errors.New("region map does not cover the image")
	errRegionMerge   = errors.New("region map has unmerged neighbours")
)

// Validate checks that the regions cover [0, size) without gaps or overlaps
// and that neighbouring regions differ in class or data kind.
func (m RegionMap) Validate(size int) error {
	pos := 0
	for i, r := range m {
		switch {
		case r.Start > pos:
			return fmt.Errorf("%w at offset 0x%06x", errRegionGap, pos)
		case r.Start < pos:
			return fmt.Errorf("%w at offset 0x%06x", errRegionOverlap, r.Start)
		case r.End <= r.Start:
			return fmt.Errorf("%w at offset 0x%06x", errRegionEmpty, r.Start)
		}
		if i > 0 && m[i-1].Class == r.Class && m[i-1].Kind == r.Kind {
			return fmt.Errorf("%w at offset 0x%06x", errRegionMerge, r.Start)
		}
		pos = r.End
	}
	if pos != size {
		return fmt.Errorf("%w: covered 0x%x of 0x%x bytes", errRegionSize, pos, size)
	}
	return nil
}

// Lookup returns the class of the given ROM offset.
func (m RegionMap) Lookup(offset int) (Class, bool) {
	i := sort.Search(len(m), func(i int) bool {
		return m[i].End > offset
	})
	if i == len(m) || m[i].Start > offset {
		return Unknown, false
	}
	return m[i].Class, true
}

// Bytes returns the number of bytes classified as the given class.
func (m RegionMap) Bytes(class Class) int {
	n := 0
	for _, r := range m {
		if r.Class == class {
			n += r.Len()
		}
	}
	return n
}
