// By Navid M (c)
// Date: 2025
// License: GPL3
//
// The tree driver: walks the import graph rooted at one file, writes a
// monomorphized copy of every file it reaches into a fresh staging
// directory, and records the original/processed path correspondence.

package preprocessor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TreeProcessor is the Preprocessor implementation used by the CLI.
type TreeProcessor struct {
	Logger *slog.Logger
}

// NewTreeProcessor builds a TreeProcessor, defaulting to slog.Default()
// when logger is nil.
func NewTreeProcessor(logger *slog.Logger) *TreeProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &TreeProcessor{Logger: logger}
}

// ProcessTree implements §4.11: starting from rootPath, follows every
// `import "..."` directive depth-first (LIFO work list, as in the
// original), transforms each file it visits exactly once, and mirrors
// the tree under a new staging directory.
//
// Per spec §7, every documented failure mode here is silent: an empty
// root, a staging directory that can't be created, or a tree with no
// template declarations anywhere in it all yield (nil, nil) rather than
// a returned error.
func (t *TreeProcessor) ProcessTree(rootPath string) (*PreprocessResult, error) {
	if strings.TrimSpace(rootPath) == "" {
		return nil, nil
	}

	root := canonicalizePath(rootPath)

	stagingDir, err := createStagingDirectory()
	if err != nil {
		t.Logger.Warn("failed to create staging directory", "error", err)
		return nil, nil
	}

	sourceRoot := filepath.Dir(root)

	result := &PreprocessResult{
		OriginalRoot:        root,
		ProcessedRoot:       stagingDir,
		StagingDirectory:    stagingDir,
		OriginalToProcessed: make(map[string]string),
		ProcessedToOriginal: make(map[string]string),
	}

	queue := []string{root}
	visited := make(map[string]struct{})

	for len(queue) > 0 {
		current := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		if err := t.processOneFile(current, sourceRoot, stagingDir, result); err != nil {
			t.Logger.Debug("skipping unreadable file", "path", current, "error", err)
			continue
		}

		for _, imported := range result.importsOf(current) {
			if _, seen := visited[imported]; !seen {
				queue = append(queue, imported)
			}
		}
	}

	if !result.HadTemplates {
		t.Cleanup(result)
		return nil, nil
	}

	if staged, ok := result.OriginalToProcessed[root]; ok {
		result.ProcessedRoot = staged
	} else {
		result.ProcessedRoot = root
	}

	t.Logger.Info("tree processed", "root", root, "staged", len(result.OriginalToProcessed))

	return result, nil
}

// importsOf is a small helper carried on PreprocessResult purely so
// ProcessTree can stash per-file import lists without a second map
// threaded through every call; see processOneFile.
func (r *PreprocessResult) importsOf(path string) []string {
	return r.pendingImports[path]
}

func (t *TreeProcessor) processOneFile(path, sourceRoot, stagingDir string, result *PreprocessResult) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fileResult := transformFileContent(path, string(raw))

	rel, err := filepath.Rel(sourceRoot, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	outPath := filepath.Join(stagingDir, rel)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("stage directory for %s: %w", path, err)
	}

	if err := os.WriteFile(outPath, []byte(fileResult.ProcessedContent), 0o644); err != nil {
		return fmt.Errorf("write staged file %s: %w", outPath, err)
	}

	result.OriginalToProcessed[path] = outPath
	result.ProcessedToOriginal[outPath] = path
	result.HadTemplates = result.HadTemplates || fileResult.HadTemplates

	if result.pendingImports == nil {
		result.pendingImports = make(map[string][]string)
	}
	result.pendingImports[path] = fileResult.Imports

	t.Logger.Debug("staged file", "original", path, "processed", outPath, "hadTemplates", fileResult.HadTemplates)

	return nil
}

// Cleanup removes the staging directory a prior ProcessTree call created.
// Failures are logged, never returned: cleanup is best-effort, matching
// the rest of this package's preference for forward progress over abort.
func (t *TreeProcessor) Cleanup(result *PreprocessResult) {
	if result == nil || result.StagingDirectory == "" {
		return
	}
	if err := os.RemoveAll(result.StagingDirectory); err != nil {
		t.Logger.Warn("failed to remove staging directory", "path", result.StagingDirectory, "error", err)
	}
}

func createStagingDirectory() (string, error) {
	dir := filepath.Join(os.TempDir(), "tmpl_"+randomSuffix())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// canonicalizePath resolves path to an absolute, OS-cleaned form without
// requiring the path to exist, for the import literals extractImports
// collects (an imported file may not have been visited yet). Symlinks are
// resolved only when the whole path exists; otherwise the cleaned
// absolute path is returned with any symlinks left in place.
func canonicalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}
