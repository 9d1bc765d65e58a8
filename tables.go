package ods2

// Block and structure sizes, all byte-exact per the ODS-2 on-disk layout.
const (
	blockSize = 512 // Size of a logical/virtual block, in bytes.

	homeBlockSize           = 512
	fileIDSize              = 6
	fileRecordAttributeSize = 32
	fileHeaderSize          = 80
	fileIdentSize           = 120
	dirHeaderSize           = 6
	dirVersionFidSize       = 8
)

// Home block field offsets (HOMEBLK). Only cluster, ibmapLBN, ibmapSize and
// ibmapVBN are consumed by the core; the rest are decoded for observability.
const (
	hbHomeLBN      = 0  // DWORD: LBN of this home block.
	hbAlHomeLBN    = 4  // DWORD: LBN of the alternate home block.
	hbAltIdxLBN    = 8  // DWORD: LBN of the alternate index file header.
	hbStrucLevel   = 12 // WORD: structure level/version.
	hbCluster      = 14 // WORD: volume cluster factor.
	hbHomeVBN      = 16 // WORD: VBN of this home block.
	hbAlHomeVBN    = 18 // WORD: VBN of the alternate home block.
	hbAltIdxVBN    = 20 // WORD: VBN of the alternate index file header.
	hbIbmapVBN     = 22 // WORD: VBN of the index file bitmap.
	hbIbmapLBN     = 24 // DWORD: LBN of the index file bitmap.
	hbMaxFiles     = 28 // DWORD: maximum number of files on the volume.
	hbIbmapSize    = 32 // WORD: index file bitmap size, in blocks.
	hbResFiles     = 34 // WORD: number of reserved files.
	hbDevType      = 36 // WORD: device type.
	hbRvn          = 38 // WORD: relative volume number.
	hbSetCount     = 40 // WORD: volume set count.
	hbVolChar      = 42 // WORD: volume characteristics.
	hbVolOwnerUIC  = 44 // DWORD: owner UIC.
	hbReserved1    = 48 // DWORD: reserved.
	hbProtect      = 52 // WORD: volume protection.
	hbFileProt     = 54 // WORD: default file protection.
	hbRecProt      = 56 // WORD: default record protection.
	hbLruLim       = 58 // BYTE: directory LRU cache limit.
	hbWindowSize   = 59 // BYTE: default window size.
	hbExtend       = 60 // DWORD: default file extend quantity.
	hbDirLimit     = 64 // WORD: maximum directory version limit.
	hbChecksum1    = 446
	hbCreDate      = 448 // QWORD: volume creation date.
	hbRevision     = 456 // BYTE.
	hbVolCharRev   = 457 // BYTE.
	hbVolCharBack  = 458 // WORD.
	hbReserved2    = 460 // WORD.
	hbRevDate      = 462 // QWORD: volume revision date.
	hbVolName      = 470 // 12 bytes, space-padded.
	hbOwnerName    = 482 // 12 bytes, space-padded.
	hbFormat       = 494 // 12 bytes, e.g. "DECFILE11B  ".
	hbReserved3    = 506 // 4 bytes.
	hbChecksum2    = 510 // WORD.
)

// File header field offsets (FH2), all relative to the start of the
// file-header block. idOffset/mapAreaOffset/aclOffset/reservedOffset are
// measured in 16-bit words, per §4.2.
const (
	fhIDOffset       = 0
	fhMapAreaOffset  = 1
	fhACLOffset      = 2
	fhReservedOffset = 3
	fhFileID         = 4  // 6 bytes.
	fhCharacteristics = 10 // WORD.
	fhMapInuse       = 12 // WORD: count of 16-bit words used in the extent map area.
	fhFileRecordAttr = 32 // 32 bytes, fixed offset within the header.
)

// file_characteristics bits (only directory is consumed by the core).
const (
	fchDirectory uint16 = 1 << 13
)

// File record attribute (FAT) field offsets, relative to the start of the
// 32-byte embedded block.
const (
	fraRecordType       = 0
	fraRecordAttributes = 1
	fraRecordSize       = 2
	fraHiblk            = 4 // DWORD, PDP-11 word-swapped.
	fraEfblk            = 8 // DWORD, PDP-11 word-swapped.
	fraFirstFreeByte    = 12
	fraBucketSize       = 14
	fraVfcSize          = 15
	fraMaxRecSize       = 16
	fraDefaultExtend    = 18
	fraGlobalBufCount   = 20
)

// File identification area (file_ident) field offsets.
const (
	fiPrimaryName = 0  // 20 bytes.
	fiExtension   = 20 // 66 bytes.
	fiRevision    = 86 // WORD.
	fiFileClass   = 88 // BYTE.
)

const (
	primaryNameLen = 20
	extensionLen   = 66
)

// Directory record header field offsets.
const (
	drRecordByteCount = 0 // WORD.
	drVersionLimit    = 2 // WORD.
	drFlags           = 4 // BYTE.
	drNameByteCount   = 5 // BYTE.
)

// Directory record end-of-block sentinel.
const dirRecordEOB = 0xFFFF
