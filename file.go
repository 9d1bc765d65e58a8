package ods2

// File is a mounted file object: it owns a stable copy of its primary
// header block and the extent map decoded from it, and borrows a
// read-only handle to the Filesystem for block reads and cluster factor.
// A File opened through OpenFileInDir must not outlive its Filesystem.
type File struct {
	fs          *FS
	headerBlock Block
	header      FileHeader
	ident       FileIdent
	extents     *ExtentMap
}

// FID returns the file's own identifier, as decoded from its header.
func (f *File) FID() FileID { return f.header.FID }

// Name returns the file's printable name (file_ident, trimmed).
func (f *File) Name() string { return f.ident.Name() }

// IsDir reports whether the directory characteristics bit is set.
func (f *File) IsDir() bool { return f.header.IsDirectory() }

// Extents returns the file's decoded extent map.
func (f *File) Extents() *ExtentMap { return f.extents }

// openFileFromHeader decodes a header block into a File bound to fs,
// verifying that the decoded FID matches want. Shared by openFile and
// openBootstrapFile: the only difference between the two call sites is
// where the header block comes from.
func openFileFromHeader(fs *FS, want FileID, block Block) (*File, error) {
	h, err := decodeFileHeader(block[:])
	if err != nil {
		return nil, err
	}
	if !h.FID.Equal(want) {
		return nil, &FidMismatchError{Requested: want, Found: h.FID}
	}
	ident, err := decodeFileIdent(h.identArea(block[:]))
	if err != nil {
		return nil, err
	}
	extents, err := decodeExtentMap(h.mapArea(block[:]), fs.home.Cluster)
	if err != nil {
		return nil, err
	}
	f := &File{
		fs:          fs,
		headerBlock: block,
		header:      h,
		ident:       ident,
		extents:     extents,
	}
	trace(fs.log, "file opened", "fid", h.FID.String(), "name", ident.Name(), "is_dir", h.IsDirectory())
	return f, nil
}

// openFile opens fid by reading its header from the index file at
// VBN = fid.file_num + index_file_starting_vbn.
func (fs *FS) openFile(fid FileID) (*File, error) {
	vbn := fid.FileNum() + fs.indexFileStartingVBN
	block, err := fs.index.ReadVBN(vbn)
	if err != nil {
		return nil, err
	}
	return openFileFromHeader(fs, fid, block)
}

// openBootstrapFile opens fid from a caller-supplied header block, read
// directly from the disk rather than through the (not-yet-usable) index
// file. Used only to bring up the index file itself during mount.
func (fs *FS) openBootstrapFile(fid FileID, block Block) (*File, error) {
	return openFileFromHeader(fs, fid, block)
}

// ReadVBN translates a file-relative VBN to an LBN via the extent map and
// reads that block from the filesystem's block source.
func (f *File) ReadVBN(vbn uint32) (Block, error) {
	lbn, err := f.extents.Lookup(vbn)
	if err != nil {
		return Block{}, err
	}
	trace(f.fs.log, "read vbn", "fid", f.header.FID.String(), "vbn", vbn, "lbn", lbn)
	return f.fs.src.ReadBlock(lbn)
}

// ReadDirEntries reads every directory block of the file (VBN 1 through
// efblk exclusive) and returns the flattened, disk-ordered entry list.
// Requires IsDir().
func (f *File) ReadDirEntries() (DirEntryList, error) {
	if !f.IsDir() {
		return nil, &NotADirectoryError{FID: f.header.FID}
	}
	var entries DirEntryList
	lastVBN := f.header.RecordAttribute.Efblk
	for vbn := uint32(1); vbn < lastVBN; vbn++ {
		block, err := f.ReadVBN(vbn)
		if err != nil {
			return nil, err
		}
		entries, err = decodeDirBlock(block[:], entries)
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// OpenFileInDir looks up name among this directory's entries and opens the
// first (highest-version, since on-disk order places it first) matching
// file. Requires IsDir().
func (f *File) OpenFileInDir(name string) (*File, error) {
	entries, err := f.ReadDirEntries()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Name == name {
			return f.fs.openFile(e.FID)
		}
	}
	return nil, &NotFoundError{Name: name}
}
