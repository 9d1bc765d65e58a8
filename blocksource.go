package ods2

import (
	"fmt"
	"io"
	"os"
)

// Block is a single 512-byte unit of volume I/O.
type Block [blockSize]byte

// BlockSource is a seekable, read-only source of fixed-size blocks
// addressed by LBN. The core takes no lock around its calls; FileBlockSource
// uses positional reads (ReadAt) and so keeps no shared seek offset.
type BlockSource interface {
	// ReadBlock returns the block at the given logical block number.
	ReadBlock(lbn uint32) (Block, error)
	// ReadAt reads len(dst) bytes starting at the given byte offset,
	// for odd-sized reads that don't fall on a block boundary.
	ReadAt(dst []byte, offset int64) (int, error)
}

// FileBlockSource is a BlockSource backed by an *os.File: the one concrete
// implementation this module ships, used by the CLI driver to read a raw
// ODS-2 volume image from disk.
type FileBlockSource struct {
	f    *os.File
	size int64
}

// OpenFileBlockSource opens path for reading and binds it as a BlockSource.
func OpenFileBlockSource(path string) (*FileBlockSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &IOError{Op: "stat", Err: err}
	}
	return &FileBlockSource{f: f, size: fi.Size()}, nil
}

// Close releases the underlying OS file handle.
func (s *FileBlockSource) Close() error {
	return s.f.Close()
}

// Size returns the total size of the backing image, in bytes.
func (s *FileBlockSource) Size() int64 { return s.size }

// ReadBlock implements BlockSource.
func (s *FileBlockSource) ReadBlock(lbn uint32) (Block, error) {
	var b Block
	off := int64(lbn) * blockSize
	if off < 0 || off+blockSize > s.size {
		return b, &IOError{Op: "read_block", LBN: lbn, Err: fmt.Errorf("seek past end of image (size %d bytes)", s.size)}
	}
	n, err := s.f.ReadAt(b[:], off)
	if err != nil && err != io.EOF {
		return b, &IOError{Op: "read_block", LBN: lbn, Err: err}
	}
	if n != blockSize {
		return b, &IOError{Op: "read_block", LBN: lbn, Err: fmt.Errorf("short read: got %d of %d bytes", n, blockSize)}
	}
	return b, nil
}

// ReadAt implements BlockSource.
func (s *FileBlockSource) ReadAt(dst []byte, offset int64) (int, error) {
	if offset < 0 || offset+int64(len(dst)) > s.size {
		return 0, &IOError{Op: "read", Err: fmt.Errorf("seek past end of image (size %d bytes)", s.size)}
	}
	n, err := s.f.ReadAt(dst, offset)
	if err != nil && err != io.EOF {
		return n, &IOError{Op: "read", Err: err}
	}
	return n, nil
}
