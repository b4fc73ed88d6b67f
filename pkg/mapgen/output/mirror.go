package output

import (
	"io"
	"os"
	"path/filepath"
)

// Mirror copies src byte-for-byte into dir under name, creating dir if
// absent. Returns the destination path. A self-copy (source and destination
// resolving to the same file) is a no-op, not an error.
func Mirror(src, dir, name string) (string, error) {
	dst := filepath.Join(dir, name)

	if same, err := sameFile(src, dst); err != nil {
		return "", err
	} else if same {
		return dst, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", err
	}
	return dst, out.Close()
}

// sameFile reports whether src and dst resolve to the identical file.
// A missing destination is not an error.
func sameFile(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(srcInfo, dstInfo), nil
}
