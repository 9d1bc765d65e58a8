package ods2

import "encoding/binary"

// DirEntry is one (name, version, fid) triple found in a directory.
type DirEntry struct {
	Name    string
	Version uint16
	FID     FileID
}

// DirEntryList is the flattened, disk-ordered (name-sorted, version
// descending within a name) list of entries in a directory.
type DirEntryList []DirEntry

// decodeDirBlock parses one directory block (512 bytes) into a flat list of
// DirEntry, appending to dst. Iteration stops at the first record whose
// record_byte_count is the end-of-records sentinel, or at the end of the
// block if no sentinel appears.
func decodeDirBlock(block []byte, dst DirEntryList) (DirEntryList, error) {
	le := binary.LittleEndian
	off := 0
	for off+dirHeaderSize <= len(block) {
		recordByteCount := le.Uint16(block[off+drRecordByteCount:])
		if recordByteCount == dirRecordEOB {
			return dst, nil
		}
		nameByteCount := int(block[off+drNameByteCount])
		nameStart := off + dirHeaderSize
		if nameStart+nameByteCount > len(block) {
			return nil, &DecodeError{Kind: OutOfBounds, What: "directory record name", Offset: off}
		}
		name := string(block[nameStart : nameStart+nameByteCount])

		// Versions/FIDs follow the name, padded to a 2-byte boundary.
		versionsStart := nameStart + nameByteCount
		if (nameByteCount % 2) != 0 {
			versionsStart++
		}
		numVersions := (int(recordByteCount) - dirHeaderSize - nameByteCount + 2) / dirVersionFidSize
		if numVersions <= 0 {
			return nil, &DecodeError{Kind: BadFormat, What: "directory record version count", Offset: off}
		}
		for v := 0; v < numVersions; v++ {
			vOff := versionsStart + v*dirVersionFidSize
			if vOff+dirVersionFidSize > len(block) {
				return nil, &DecodeError{Kind: OutOfBounds, What: "directory record version/fid", Offset: vOff}
			}
			fid, err := decodeFileID(block[vOff+2 : vOff+dirVersionFidSize])
			if err != nil {
				return nil, err
			}
			dst = append(dst, DirEntry{
				Name:    name,
				Version: le.Uint16(block[vOff:]),
				FID:     fid,
			})
		}

		stride := int(recordByteCount) + 2
		if stride <= 0 {
			return nil, &DecodeError{Kind: BadFormat, What: "directory record stride", Offset: off}
		}
		off += stride
	}
	return dst, nil
}
