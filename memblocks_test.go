package ods2

import "encoding/binary"

// memBlocks is an in-memory BlockSource test double, standing in for a disk
// image: a flat byte slice addressed in blockSize chunks.
type memBlocks struct {
	data []byte
}

func newMemBlocks(numBlocks int) *memBlocks {
	return &memBlocks{data: make([]byte, numBlocks*blockSize)}
}

func (m *memBlocks) ReadBlock(lbn uint32) (Block, error) {
	var b Block
	off := int64(lbn) * blockSize
	if off < 0 || off+blockSize > int64(len(m.data)) {
		return b, &IOError{Op: "read_block", LBN: lbn, Err: errShortImage}
	}
	copy(b[:], m.data[off:off+blockSize])
	return b, nil
}

func (m *memBlocks) ReadAt(dst []byte, offset int64) (int, error) {
	if offset < 0 || offset+int64(len(dst)) > int64(len(m.data)) {
		return 0, &IOError{Op: "read", Err: errShortImage}
	}
	return copy(dst, m.data[offset:]), nil
}

// block returns a writable view of block lbn within the image, growing the
// image if necessary.
func (m *memBlocks) block(lbn uint32) []byte {
	off := int(lbn) * blockSize
	for off+blockSize > len(m.data) {
		m.data = append(m.data, make([]byte, blockSize)...)
	}
	return m.data[off : off+blockSize]
}

var errShortImage = &DecodeError{Kind: OutOfBounds, What: "test image"}

// putHomeBlockFields writes the home-block fields the core consumes,
// leaving every observability-only field zeroed.
func putHomeBlockFields(home []byte, cluster, ibmapVBN uint16, ibmapLBN uint32, ibmapSize uint16) {
	le := binary.LittleEndian
	le.PutUint16(home[hbCluster:], cluster)
	le.PutUint16(home[hbIbmapVBN:], ibmapVBN)
	le.PutUint32(home[hbIbmapLBN:], ibmapLBN)
	le.PutUint16(home[hbIbmapSize:], ibmapSize)
	copy(home[hbVolName:hbVolName+12], padRight("TESTVOL", 12))
	copy(home[hbFormat:hbFormat+12], padRight("DECFILE11B", 12))
}

// mapAreaOffsetWords places every test file's extent map right after the
// fixed 80-byte header, on a 16-bit word boundary.
const mapAreaOffsetWords = fileHeaderSize / 2

// putExtentFormat1 writes a single format-1 extent map entry (block_count,
// lbn) at the fixed test map-area offset and returns map_inuse in words.
func putExtentFormat1(block []byte, _ int, blockCount, lbn uint32) (mapInuseWords int) {
	off := mapAreaOffsetWords * 2
	le := binary.LittleEndian
	w0 := uint16(1<<14) | uint16(blockCount-1)
	le.PutUint16(block[off:], w0)
	le.PutUint16(block[off+2:], uint16(lbn))
	return 2
}

// putFileHeader writes a minimal 80-byte file header into block. The map
// area must already have been written via putExtentFormat1; the file_ident
// area is placed immediately after it.
func putFileHeader(block []byte, fid FileID, characteristics uint16, mapInuseWords int, hiblk, efblk uint32) {
	le := binary.LittleEndian
	idOffsetWords := mapAreaOffsetWords + mapInuseWords
	block[fhIDOffset] = byte(idOffsetWords)
	block[fhMapAreaOffset] = byte(mapAreaOffsetWords)
	block[fhACLOffset] = 0
	block[fhReservedOffset] = 0
	putFileID(block[fhFileID:], fid)
	le.PutUint16(block[fhCharacteristics:], characteristics)
	le.PutUint16(block[fhMapInuse:], uint16(mapInuseWords))
	le.PutUint32(block[fhFileRecordAttr+fraHiblk:], pdp11Swap(hiblk))
	le.PutUint32(block[fhFileRecordAttr+fraEfblk:], pdp11Swap(efblk))
}

func putFileID(buf []byte, fid FileID) {
	binary.LittleEndian.PutUint16(buf[0:], fid.lowNum)
	binary.LittleEndian.PutUint16(buf[2:], fid.SequenceNum)
	buf[4] = fid.RVNum
	buf[5] = fid.highNum
}

// putFileIdent writes the file_ident area immediately after a map area of
// mapInuseWords words (matching the idOffsetWords computed by putFileHeader).
func putFileIdent(block []byte, mapInuseWords int, primary, extension string) {
	off := (mapAreaOffsetWords + mapInuseWords) * 2
	copy(block[off:off+primaryNameLen], []byte(padRight(primary, primaryNameLen)))
	copy(block[off+primaryNameLen:off+primaryNameLen+extensionLen], []byte(padRight(extension, extensionLen)))
}

func padRight(s string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	copy(b, s)
	return string(b)
}

func putDirEOB(block []byte, off int) {
	binary.LittleEndian.PutUint16(block[off:], dirRecordEOB)
}

func putDirRecord(block []byte, off int, name string, version uint16, fid FileID) int {
	le := binary.LittleEndian
	nameBytes := []byte(name)
	paddedNameLen := len(nameBytes) + len(nameBytes)%2 // name is padded to a 2-byte boundary.
	recordByteCount := dirHeaderSize + paddedNameLen - 2 + dirVersionFidSize
	le.PutUint16(block[off+drRecordByteCount:], uint16(recordByteCount))
	le.PutUint16(block[off+drVersionLimit:], 1)
	block[off+drFlags] = 0
	block[off+drNameByteCount] = byte(len(nameBytes))
	copy(block[off+dirHeaderSize:], nameBytes)
	vOff := off + dirHeaderSize + paddedNameLen
	le.PutUint16(block[vOff:], version)
	putFileID(block[vOff+2:], fid)
	return off + recordByteCount + 2
}
