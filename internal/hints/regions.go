package hints

import (
	"fmt"
	"slices"

	"github.com/retroenv/snesgodisasm/internal/program"
)

// wins returns whether range a takes precedence over range b where both
// cover the same bytes. The narrower range wins, on equal width the entry
// that comes later in the hint file.
func (a Range) wins(b Range) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	return a.position.after(b.position)
}

// resolveRegions reports overlapping code and data ranges and splits all
// ranges into non overlapping regions.
func (r *resolver) resolveRegions() {
	ranges := make([]Range, 0, len(r.set.Code)+len(r.set.Data))
	ranges = append(ranges, r.set.Code...)
	ranges = append(ranges, r.set.Data...)

	for _, code := range r.set.Code {
		for _, data := range r.set.Data {
			if !code.overlaps(data) {
				continue
			}
			winner := "code"
			if data.wins(code) {
				winner = "data"
			}
			start := max(code.Start, data.Start)
			address, err := r.mapper.ToLinear(start)
			if err != nil {
				address = code.Address
			}
			r.overlap(address, fmt.Sprintf("code range at %s overlaps data range at %s, %s range wins",
				code.Address, data.Address, winner))
		}
	}

	var boundaries []int
	for _, rng := range ranges {
		boundaries = append(boundaries, rng.Start, rng.End)
	}
	slices.Sort(boundaries)
	boundaries = slices.Compact(boundaries)

	var regions []Range
	for i := 0; i+1 < len(boundaries); i++ {
		start, end := boundaries[i], boundaries[i+1]

		var winner *Range
		for j := range ranges {
			rng := &ranges[j]
			if rng.Start > start || rng.End < end {
				continue
			}
			if winner == nil || rng.wins(*winner) {
				winner = rng
			}
		}
		if winner == nil {
			continue
		}

		if n := len(regions); n > 0 && regions[n-1].End == start &&
			regions[n-1].Class == winner.Class && regions[n-1].Kind == winner.Kind {
			regions[n-1].End = end
			continue
		}

		region := *winner
		region.Start = start
		region.End = end
		if start != winner.Start {
			if address, err := r.mapper.ToLinear(start); err == nil {
				region.Address = address
			}
			region.Name = ""
		}
		regions = append(regions, region)
	}

	r.set.Regions = regions
}

// ClassAt returns the hinted class of the ROM offset.
func (s *Set) ClassAt(offset int) (program.Class, bool) {
	i, found := slices.BinarySearchFunc(s.Regions, offset, func(rng Range, offset int) int {
		switch {
		case offset < rng.Start:
			return 1
		case offset >= rng.End:
			return -1
		default:
			return 0
		}
	})
	if !found {
		return program.Unknown, false
	}
	return s.Regions[i].Class, true
}
