// Package direntry reads a directory's entries directly via getdents64,
// skipping the per-entry Lstat that os.ReadDir performs to recover a file
// type. Entries are returned in on-disk order — the caller is responsible
// for any sorting.
package direntry

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux dirent64 structure layout:
//
//	struct linux_dirent64 {
//	    ino64_t        d_ino;
//	    off64_t        d_off;
//	    unsigned short d_reclen;
//	    unsigned char  d_type;
//	    char           d_name[];
//	};

// File type constants from dirent.h.
const (
	TypeUnknown = 0
	TypeFIFO    = 1
	TypeChar    = 2
	TypeDir     = 4
	TypeBlock   = 6
	TypeReg     = 8
	TypeLink    = 10
	TypeSocket  = 12
)

// Entry is one parsed directory entry.
type Entry struct {
	Name string
	Type uint8
}

// Reader iterates the entries of one open directory, reusing a single
// getdents buffer across calls.
type Reader struct {
	fd  int
	buf []byte
	n   int // bytes currently valid in buf
	off int // read offset into buf
}

// Open opens dir for raw entry iteration.
func Open(dir string) (*Reader, error) {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		return nil, err
	}
	return &Reader{fd: fd, buf: make([]byte, 32*1024)}, nil
}

// Close releases the directory's file descriptor.
func (r *Reader) Close() error {
	return unix.Close(r.fd)
}

// Next returns the next entry, skipping "." and "..", or ok=false once the
// directory is exhausted or a read error occurs (err is nil at EOF).
func (r *Reader) Next() (Entry, bool, error) {
	for {
		if r.off >= r.n {
			n, err := unix.Getdents(r.fd, r.buf)
			if err != nil {
				return Entry{}, false, err
			}
			if n == 0 {
				return Entry{}, false, nil
			}
			r.n = n
			r.off = 0
		}

		if r.off+19 > r.n {
			// Truncated header at the end of this read: force a refill.
			r.off = r.n
			continue
		}

		reclen := *(*uint16)(unsafe.Pointer(&r.buf[r.off+16]))
		dtype := r.buf[r.off+18]
		if reclen == 0 {
			r.off = r.n
			continue
		}

		nameStart := r.off + 19
		nameEnd := r.off + int(reclen)
		if nameEnd > r.n {
			nameEnd = r.n
		}
		nameBytes := r.buf[nameStart:nameEnd]
		nameLen := 0
		for nameLen < len(nameBytes) && nameBytes[nameLen] != 0 {
			nameLen++
		}
		name := string(nameBytes[:nameLen])

		r.off += int(reclen)

		if name == "." || name == ".." {
			continue
		}
		return Entry{Name: name, Type: dtype}, true, nil
	}
}

// JoinPath concatenates a directory and entry name with a single
// separator, avoiding filepath.Join's Clean pass since both inputs are
// already well-formed.
func JoinPath(dirPath, name string) string {
	needsSep := len(dirPath) == 0 || dirPath[len(dirPath)-1] != '/'
	n := len(dirPath) + len(name)
	if needsSep {
		n++
	}
	buf := make([]byte, n)
	copy(buf, dirPath)
	i := len(dirPath)
	if needsSep {
		buf[i] = '/'
		i++
	}
	copy(buf[i:], name)
	return unsafe.String(&buf[0], len(buf))
}
