package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio/v2"
)

// AudioExtensions lists the extensions picked up by directory discovery.
var AudioExtensions = []string{".wav", ".mp3", ".m4a"}

// SidecarSuffix is appended to the source path (without extension) for per-item output.
const SidecarSuffix = "_transcription.txt"

// IsAudioFile reports whether name carries one of AudioExtensions, ignoring case.
func IsAudioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range AudioExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DiscoverAudioFiles walks root and returns every audio file below it, sorted
// lexically so repeated runs see the same job order. A root that is itself an
// audio file yields a single entry.
func DiscoverAudioFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		if !IsAudioFile(root) {
			return nil, fmt.Errorf("%s is not a supported audio file (%s)", root, strings.Join(AudioExtensions, ", "))
		}
		return []string{root}, nil
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsAudioFile(d.Name()) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}

// SidecarPath returns "<sourcePath without extension>_transcription.txt".
func SidecarPath(sourcePath string) string {
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + SidecarSuffix
}

// WriteFileAtomic replaces path with data through a temporary file and a
// rename, so path either keeps its previous content or holds all of data.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
