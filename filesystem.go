package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// TODO: is there some better way to allow for stubbing filesystem interactions for tests?
	concreteWalkFunc = walkDirectory
)

type walkFunc func(string) (map[string]os.FileInfo, error)

func walkDirectory(dirPath string) (map[string]os.FileInfo, error) {
	fileMap := make(map[string]os.FileInfo)
	walkErr := filepath.Walk(dirPath, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !f.IsDir() {
			fileMap[path] = f
		}
		return nil
	})

	return fileMap, walkErr
}

func ensureDirectory(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}

// localPathForKey and keyForLocalPath are inverses of each other: keys use
// forward slashes regardless of platform, paths use the platform separator.
func localPathForKey(rootPath, key string) string {
	return filepath.Join(rootPath, filepath.FromSlash(key))
}

func keyForLocalPath(rootPath, localPath string) (string, error) {
	relPath, relErr := filepath.Rel(rootPath, localPath)
	if relErr != nil {
		return "", relErr
	}
	if strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("%s is outside root %s", localPath, rootPath)
	}

	return filepath.ToSlash(relPath), nil
}

func humanSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}

	return fmt.Sprintf("%.1f TB", value)
}
