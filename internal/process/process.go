// Package process runs the quote rewrite against files on disk: extension
// checks, backups, and atomic in-place writes.
package process

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/gerunddev/curlify/internal/config"
	"github.com/gerunddev/curlify/internal/logger"
	"github.com/gerunddev/curlify/internal/rewrite"
)

var (
	// ErrNotFound means the input path does not exist.
	ErrNotFound = errors.New("file does not exist")
	// ErrUnsupportedType means the file extension is not in the whitelist.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Result reports the outcome for a single file.
type Result struct {
	Path       string
	Stats      rewrite.Stats
	BackupPath string // empty when no backup was written
	Changed    bool
	Err        error
}

// Processor applies the rewrite to files, one at a time.
type Processor struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a Processor.
func New(cfg *config.Config, log *logger.Logger) *Processor {
	return &Processor{cfg: cfg, log: log}
}

// markdownExts are the extensions whose code regions are protected.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// optionsFor builds rewrite options for one file. Code-region protection
// only applies to markdown; other formats get the plain positional pass.
func (p *Processor) optionsFor(path string) rewrite.Options {
	opts := p.cfg.RewriteOptions()
	opts.SkipCode = opts.SkipCode && markdownExts[strings.ToLower(filepath.Ext(path))]
	return opts
}

// checkSupported verifies the file extension against the whitelist.
func (p *Processor) checkSupported(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range p.cfg.Extensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w '%s': supported types: %s",
		ErrUnsupportedType, ext, strings.Join(p.cfg.Extensions, ", "))
}

// Preview rewrites a file's content without touching disk beyond the read.
// It returns the original content, the rewritten content, and the stats.
func (p *Processor) Preview(path string) (before, after string, stats rewrite.Stats, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", stats, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", "", stats, err
	}
	if info.IsDir() {
		return "", "", stats, fmt.Errorf("%s is a directory", path)
	}
	if err := p.checkSupported(path); err != nil {
		return "", "", stats, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", stats, fmt.Errorf("failed to read file: %w", err)
	}

	before = string(data)
	after, stats = rewrite.New(p.optionsFor(path)).Rewrite(before)
	return before, after, stats, nil
}

// ProcessFile rewrites one file in place. The original content is never
// left half-written: the backup is taken first, the rewritten content goes
// to a temp file in the same directory, and a rename swaps it in.
func (p *Processor) ProcessFile(path string) Result {
	res := Result{Path: path}

	before, after, stats, err := p.Preview(path)
	if err != nil {
		res.Err = err
		p.log.FileError(path, err)
		return res
	}
	res.Stats = stats

	if after == before {
		p.log.FileUnchanged(path)
		return res
	}
	res.Changed = true

	info, err := os.Stat(path)
	if err != nil {
		res.Err = err
		p.log.FileError(path, err)
		return res
	}
	mode := info.Mode().Perm()

	if p.cfg.Backup {
		backupPath := path + p.cfg.BackupSuffix
		if err := os.WriteFile(backupPath, []byte(before), mode); err != nil {
			res.Err = fmt.Errorf("failed to create backup: %w", err)
			p.log.FileError(path, res.Err)
			return res
		}
		res.BackupPath = backupPath
		p.log.BackupCreated(path, backupPath)
	}

	if err := writeAtomic(path, []byte(after), mode); err != nil {
		res.Err = fmt.Errorf("failed to write file: %w", err)
		p.log.FileError(path, res.Err)
		return res
	}

	p.log.FileRewritten(path, stats.Doubles, stats.Singles)
	return res
}

// writeAtomic writes data to a uniquely named temp file in the target's
// directory and renames it over the target.
func writeAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", base, uuid.New().String()[:8]))

	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ScanDirectory walks a directory tree and returns the files whose
// extension is in the whitelist, sorted for a stable processing order.
func (p *Processor) ScanDirectory(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && p.checkSupported(path) == nil {
			// Never pick up our own backups
			if strings.HasSuffix(path, p.cfg.BackupSuffix) {
				p.log.Skipped(path, "backup file")
				return nil
			}
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
