// Package fsread reads whole small text files (ignore files, git config
// files) via unix.Open/Pread rather than the os.File/bufio stack, reusing
// a pooled buffer across reads the way the teacher's content-search input
// readers do for file bodies.
package fsread

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// bufPool pools read buffers to avoid a heap allocation for every ignore
// or config file the walker loads while descending a tree.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 16*1024)
		return &b
	},
}

// ReadFile reads the entire contents of path using unix.Open and
// unix.Pread, returning a slice borrowed from a pooled buffer together
// with a release function the caller must call once done with the data.
// Unlike the teacher's BufferedReader (tuned for content search, where
// every file in a large corpus is read once and discarded), these buffers
// back text files re-read many times over a walk's lifetime, so a small
// 16KB pool size is enough; oversized files simply get reallocated.
func ReadFile(path string) (data []byte, release func(), err error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("fsread: open %s: %w", path, err)
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, nil, fmt.Errorf("fsread: stat %s: %w", path, err)
	}
	if stat.Size == 0 {
		return nil, func() {}, nil
	}

	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(stat.Size) {
		buf = make([]byte, stat.Size)
	} else {
		buf = buf[:stat.Size]
	}

	var total int
	for total < len(buf) {
		n, err := unix.Pread(fd, buf[total:], int64(total))
		if err != nil {
			*bp = buf
			bufPool.Put(bp)
			return nil, nil, fmt.Errorf("fsread: read %s: %w", path, err)
		}
		if n == 0 {
			break
		}
		total += n
	}
	buf = buf[:total]

	release = func() {
		*bp = buf
		bufPool.Put(bp)
	}
	return buf, release, nil
}
