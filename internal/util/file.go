package util

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// TryWriteAtomic writes contents to filename by renaming a temporary
// file over it. Some filesystems refuse the rename; then it falls back
// to a plain write.
func TryWriteAtomic(filename string, contents []byte) error {
	if err1 := atomic.WriteFile(filename, bytes.NewReader(contents)); err1 != nil {
		if err2 := os.WriteFile(filename, contents, 0666); err2 != nil {
			return fmt.Errorf("%s: %s; on non-atomic retry: %s", filename, err1, err2)
		}
	}
	return nil
}

// FileExists reports whether filename exists. Any error other than
// the file not existing terminates the process.
func FileExists(filename string) bool {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return false
	} else if err != nil {
		Die("%s: %s", filename, err)
		return false
	} else {
		return true
	}
}
