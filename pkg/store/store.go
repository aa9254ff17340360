// Package store is the opaque document store: it moves serialized dashboard
// bytes between the engine and the filesystem without interpreting them.
// Persistence and versioning proper live outside this repository; this is
// only the thin surface the CLI needs to read, write, and back up documents.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gberrors "github.com/matzehuels/gridboard/pkg/errors"
	gbio "github.com/matzehuels/gridboard/pkg/io"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// BackupInfo describes one stored backup file.
type BackupInfo struct {
	Filename string
	Path     string
	Size     int64
	ModTime  time.Time
}

// Store reads and writes serialized dashboard documents.
type Store interface {
	// Load returns the raw bytes of the document at path.
	// Returns ErrNotFound when the document does not exist.
	Load(path string) ([]byte, error)

	// Save writes raw document bytes to path, creating parent directories.
	Save(path string, data []byte) error

	// SaveBackup writes a backup snapshot under the backup directory and
	// returns the full path of the written file.
	SaveBackup(b gbio.Backup) (string, error)

	// ListBackups returns the stored backups, newest first.
	ListBackups() ([]BackupInfo, error)
}

// FileStore is the filesystem implementation of Store. Documents are
// written with 0644 permissions, directories with 0755.
type FileStore struct {
	backupDir string
}

// NewFileStore creates a store that keeps backups under backupDir.
// If backupDir is empty, backups land in ~/.local/share/gridboard/backups.
func NewFileStore(backupDir string) (*FileStore, error) {
	if backupDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		backupDir = filepath.Join(home, ".local", "share", "gridboard", "backups")
	}
	return &FileStore{backupDir: backupDir}, nil
}

// Load returns the raw bytes of the document at path.
func (s *FileStore) Load(path string) ([]byte, error) {
	if err := gberrors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Save writes raw document bytes to path, creating parent directories as
// needed.
func (s *FileStore) Save(path string, data []byte) error {
	if err := gberrors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveBackup writes the snapshot as pretty-printed JSON under the backup
// directory, named by the backup's own filename contract. The filename
// must be a plain basename with no path components.
func (s *FileStore) SaveBackup(b gbio.Backup) (string, error) {
	if err := gberrors.ValidateDashboardFilename(b.Filename); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", s.backupDir, err)
	}

	data, err := gbio.Marshal(b.Data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.backupDir, b.Filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ListBackups returns the backups under the backup directory, newest
// first. A missing backup directory is an empty list, not an error.
func (s *FileStore) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.backupDir, err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "dashboard-backup-") || filepath.Ext(name) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Filename: name,
			Path:     filepath.Join(s.backupDir, name),
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime.After(backups[j].ModTime)
	})
	return backups, nil
}

// Path returns the backup directory.
func (s *FileStore) Path() string {
	return s.backupDir
}

var _ Store = (*FileStore)(nil)
