package files

import (
	"os"
	"path/filepath"
)

// SaveFile saves a file to the specified path.
// If the destination directory doesn't exist, it will be created.
func SaveFile(filePath string, data []byte) error {
	dirPath := filepath.Dir(filePath)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return err
	}

	dest, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if _, err = dest.Write(data); err != nil {
		_ = dest.Close()
		return err
	}

	return dest.Close()
}
