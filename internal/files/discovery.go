// Package files discovers lottery result files on disk for batch ingestion.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered input file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// inputExtensions are the container formats the table reader understands.
var inputExtensions = map[string]bool{
	".csv":  true,
	".txt":  true,
	".xlsx": true,
	".xls":  true,
	".xlsm": true,
}

// FindInputFiles lists the readable result files in a directory, sorted by
// name so multi-file merges are deterministic. Excel lock files ("~$"
// prefix) and hidden files are skipped.
func FindInputFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
			continue
		}
		if !inputExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
