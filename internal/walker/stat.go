package walker

import "golang.org/x/sys/unix"

// statKind resolves a DT_UNKNOWN entry or a followed symlink's target
// type via stat(2).
func statKind(path string) (isDir, isReg bool, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, false, err
	}
	mode := st.Mode & unix.S_IFMT
	return mode == unix.S_IFDIR, mode == unix.S_IFREG, nil
}
