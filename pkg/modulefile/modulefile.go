// Package modulefile reads templates from and writes generated modulefiles
// to the modulefile tree.
package modulefile

import (
	"io/fs"
	"path/filepath"

	"github.com/rcops/mkmodule/pkg/errors"
	"github.com/rcops/mkmodule/pkg/filesystem"
	"github.com/rcops/mkmodule/pkg/logging"
	"github.com/rcops/mkmodule/pkg/types"
)

// TemplateDirName holds templates inside the output directory
const TemplateDirName = "template"

// Store writes modulefiles under a root directory
type Store struct {
	fs types.FS
}

// NewStore creates a store on fs; a nil fs means the OS filesystem
func NewStore(fs types.FS) *Store {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	return &Store{fs: fs}
}

// Path returns <root>/<name>/<version>.<ext>
func Path(root, name, version, ext string) string {
	return filepath.Join(root, name, version+"."+ext)
}

// TemplatePath resolves a configured template location. Relative paths are
// looked up in the template directory of the output tree.
func TemplatePath(root, template string) string {
	if filepath.IsAbs(template) {
		return template
	}
	return filepath.Join(root, TemplateDirName, template)
}

// ReadTemplate loads a whole template into memory
func (s *Store) ReadTemplate(path string) (string, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateNotFound, "cannot read template %s", path).
			WithDetail("path", path)
	}
	return string(data), nil
}

// Write stores content at Path(root, name, version, ext), creating the
// module directory when needed and silently replacing an existing file.
// The content goes to a temporary file in the same directory which is then
// renamed into place, so a failed write leaves any previous modulefile
// untouched. A replaced file keeps its permission bits.
func (s *Store) Write(root, name, version, ext, content string) (string, error) {
	logger := logging.GetLogger("modulefile")

	dir := filepath.Join(root, name)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrIOFailure, "cannot create directory %s", dir).
			WithDetail("path", dir)
	}

	path := Path(root, name, version, ext)
	perm := fs.FileMode(0644)
	if info, err := s.fs.Stat(path); err == nil {
		if info.IsDir() {
			return "", errors.Newf(errors.ErrIOFailure, "cannot write %s: it is a directory", path).
				WithDetail("path", path)
		}
		perm = info.Mode().Perm()
	}

	tmp := tempPath(path)
	if err := s.fs.WriteFile(tmp, []byte(content), perm); err != nil {
		s.discard(tmp)
		return "", errors.Wrapf(err, errors.ErrIOFailure, "cannot write %s", path).
			WithDetail("path", path)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		s.discard(tmp)
		return "", errors.Wrapf(err, errors.ErrIOFailure, "cannot replace %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Int("bytes", len(content)).Msg("modulefile written")
	return path, nil
}

// tempPath returns the hidden sibling path content is staged in
func tempPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
}

// discard removes a staged file left behind by a failed write
func (s *Store) discard(tmp string) {
	if err := s.fs.Remove(tmp); err == nil {
		logger := logging.GetLogger("modulefile")
		logger.Debug().Str("path", tmp).Msg("removed partially written file")
	}
}
