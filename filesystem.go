package ods2

import "log/slog"

// FS owns a BlockSource and orchestrates the mount sequence: home block,
// index file, master file directory. It is the entry point of the core.
type FS struct {
	src BlockSource
	log *slog.Logger

	homeBlockLBN uint32

	mounted              bool
	home                 HomeBlock
	indexFileStartingVBN uint32
	index                *File
	mfd                  *File
}

// mountConfig collects MountOption values before New applies them.
type mountConfig struct {
	logger       *slog.Logger
	homeBlockLBN uint32
}

// MountOption configures an FS at construction time.
type MountOption func(*mountConfig)

// WithLogger attaches a structured logger; nil (the default) disables
// logging entirely rather than logging to a discard handler.
func WithLogger(l *slog.Logger) MountOption {
	return func(c *mountConfig) { c.logger = l }
}

// WithHomeBlockLBN overrides the assumed LBN of the primary home block
// (defaults to 1). The core never scans for alternates; this only lets a
// caller supply a known-different fixed location.
func WithHomeBlockLBN(lbn uint32) MountOption {
	return func(c *mountConfig) { c.homeBlockLBN = lbn }
}

// New constructs an unmounted FS over src.
func New(src BlockSource, opts ...MountOption) *FS {
	cfg := mountConfig{homeBlockLBN: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{
		src:          src,
		log:          cfg.logger,
		homeBlockLBN: cfg.homeBlockLBN,
	}
}

// Mount performs the bootstrap sequence documented in §4.5: read the home
// block, bootstrap-open the index file directly from disk, then open the
// MFD through the now-usable index file. Mount is not idempotent: a second
// call on an already-mounted FS fails with ErrAlreadyMounted.
func (fs *FS) Mount() error {
	if fs.mounted {
		return ErrAlreadyMounted
	}

	homeBlock, err := fs.src.ReadBlock(fs.homeBlockLBN)
	if err != nil {
		return err
	}
	home, err := decodeHomeBlock(homeBlock[:])
	if err != nil {
		return err
	}
	fs.home = home
	fs.indexFileStartingVBN = uint32(home.IbmapVBN) - 1 + uint32(home.IbmapSize)
	debug(fs.log, "home block decoded", "cluster", home.Cluster, "ibmaplbn", home.IbmapLBN,
		"ibmapsize", home.IbmapSize, "ibmapvbn", home.IbmapVBN)

	indexHeaderLBN := home.IbmapLBN + uint32(home.IbmapSize)
	indexHeaderBlock, err := fs.src.ReadBlock(indexHeaderLBN)
	if err != nil {
		return err
	}
	index, err := fs.openBootstrapFile(IndexFileID(), indexHeaderBlock)
	if err != nil {
		return err
	}
	fs.index = index
	info(fs.log, "index file bootstrapped", "starting_vbn", fs.indexFileStartingVBN)

	mfd, err := fs.openFile(MFDFileID())
	if err != nil {
		return err
	}
	if !mfd.IsDir() {
		return &NotADirectoryError{FID: mfd.FID()}
	}
	fs.mfd = mfd
	fs.mounted = true
	info(fs.log, "mounted", "volume", home.VolName)
	return nil
}

// OpenRootDir returns the master file directory as a File. Fails with
// ErrNotMounted if called before Mount.
func (fs *FS) OpenRootDir() (*File, error) {
	if !fs.mounted {
		return nil, ErrNotMounted
	}
	return fs.mfd, nil
}

// ClusterFactor returns the volume's cluster factor, from the home block.
func (fs *FS) ClusterFactor() uint16 { return fs.home.Cluster }

// IndexFileStartingVBN returns ibmapvbn - 1 + ibmapsize, the VBN within the
// index file at which file-number-keyed headers begin.
func (fs *FS) IndexFileStartingVBN() uint32 { return fs.indexFileStartingVBN }

// Disk returns the underlying BlockSource.
func (fs *FS) Disk() BlockSource { return fs.src }

// HomeBlock returns the decoded home block. Valid only after Mount.
func (fs *FS) HomeBlock() HomeBlock { return fs.home }

// OpenFile opens an arbitrary file by FID through the index file. Exposed
// so callers (and the CLI) can resolve a FID found in a DirEntry without
// going back through a directory lookup.
func (fs *FS) OpenFile(fid FileID) (*File, error) {
	if !fs.mounted {
		return nil, ErrNotMounted
	}
	return fs.openFile(fid)
}
