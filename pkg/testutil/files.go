package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TemplateName is the template file name used by ModuleTree
const TemplateName = "module.tmpl"

// CreateFile creates a file with the given content under dir, creating
// parent directories as needed, and returns its path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "create parent of %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "create %s", path)
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "read %s", path)
	return string(content)
}

// ModuleTree creates a temporary modulefile tree whose template directory
// holds template as module.tmpl, and returns the tree root
func ModuleTree(t *testing.T, template string) string {
	t.Helper()

	root := t.TempDir()
	CreateFile(t, filepath.Join(root, "template"), TemplateName, template)
	return root
}

// GeneratedFiles lists the files under root outside the template directory,
// relative to root and sorted
func GeneratedFiles(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if rel == "template" {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, rel)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}
