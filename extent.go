package ods2

import "encoding/binary"

// Extent is a contiguous run of LBNs mapped to a contiguous run of VBNs.
type Extent struct {
	VBN        uint32
	LBN        uint32
	BlockCount uint32
}

// ExtentMap is the ordered, non-overlapping sequence of extents parsed from
// a file header's map area. Built once when a File is opened; immutable after.
type ExtentMap struct {
	extents []Extent
	total   uint32 // Sum of all block counts; the last VBN the map covers.
}

// Lookup translates a file-relative VBN to an absolute LBN. VBN numbering
// starts at 1; a linear scan over the (typically few) extents is used
// rather than an index, per §4.3.
func (m *ExtentMap) Lookup(vbn uint32) (uint32, error) {
	if vbn == 0 {
		return 0, &DecodeError{Kind: BadFormat, What: "vbn", Offset: 0}
	}
	for _, e := range m.extents {
		if vbn >= e.VBN && vbn < e.VBN+e.BlockCount {
			return e.LBN + (vbn - e.VBN), nil
		}
	}
	return 0, &VbnNotMappedError{VBN: vbn}
}

// Extents returns the ordered extent list. The returned slice must not be
// mutated by the caller.
func (m *ExtentMap) Extents() []Extent { return m.extents }

// decodeExtentMap parses a file header's map area into an ExtentMap.
// cluster is the volume's cluster factor; every decoded block count must be
// a positive multiple of it (invariant (i) of §8).
func decodeExtentMap(area []byte, cluster uint16) (*ExtentMap, error) {
	m := &ExtentMap{}
	vbn := uint32(1)
	words := make([]uint16, len(area)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(area[i*2:])
	}

	for i := 0; i < len(words); {
		format := words[i] >> 14
		var blockCountRaw, blockCount, lbn uint32
		var wordsUsed int
		switch format {
		case 0:
			// Placeholder format, not used by this reader; skip without
			// advancing vbn, per §4.3.
			wordsUsed = 1
			i += wordsUsed
			continue
		case 1:
			if i+2 > len(words) {
				return nil, &DecodeError{Kind: ShortBuffer, What: "extent map (format 1)", Offset: i * 2}
			}
			blockCountRaw = uint32(words[i] & 0xFF)
			lbn = (uint32(words[i])<<8)&0x3F0000 | uint32(words[i+1])
			wordsUsed = 2
		case 2:
			if i+3 > len(words) {
				return nil, &DecodeError{Kind: ShortBuffer, What: "extent map (format 2)", Offset: i * 2}
			}
			blockCountRaw = uint32(words[i] & 0x3FFF)
			lbn = uint32(words[i+2])<<16 | uint32(words[i+1])
			wordsUsed = 3
		case 3:
			if i+4 > len(words) {
				return nil, &DecodeError{Kind: ShortBuffer, What: "extent map (format 3)", Offset: i * 2}
			}
			blockCountRaw = uint32(words[i]&0x3FFF)<<16 | uint32(words[i+1])
			lbn = uint32(words[i+3])<<16 | uint32(words[i+2])
			wordsUsed = 4
		}
		blockCount = blockCountRaw + 1
		if cluster == 0 || blockCount%uint32(cluster) != 0 {
			return nil, &DecodeError{Kind: BadFormat, What: "extent block count not a multiple of cluster factor", Offset: i * 2}
		}
		m.extents = append(m.extents, Extent{VBN: vbn, LBN: lbn, BlockCount: blockCount})
		vbn += blockCount
		i += wordsUsed
	}
	m.total = vbn - 1
	return m, nil
}
