package directive

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// maxIncludeDepth bounds include nesting so that an include cycle surfaces
// as a diagnostic instead of unbounded recursion.
const maxIncludeDepth = 64

// includeResolver locates include targets against an ordered list of search
// directories. The first directory that yields an openable file wins.
type includeResolver struct {
	fs afero.Fs
}

// resolve tries each search directory in order, forming <dir>/<name> and
// attempting to open it. On success it returns the file's contents and the
// resolved path. It reports false when no directory yields a readable file.
func (r includeResolver) resolve(name string, searchPaths []string) (content, path string, ok bool) {
	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, name)
		f, err := r.fs.Open(candidate)
		if err != nil {
			continue
		}
		f.Close()

		data, err := afero.ReadFile(r.fs, candidate)
		if err != nil {
			continue
		}
		return string(data), candidate, true
	}
	return "", "", false
}
