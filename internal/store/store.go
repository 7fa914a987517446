package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"sales-core/internal/errs"
	"sales-core/internal/util"

	"go.uber.org/zap"
)

const backupDirName = "backups"

// Store persists entity collections as JSON files under a single data
// directory. Saves are atomic (temp file + rename) and optionally
// preceded by a timestamped backup of the previous file contents.
//
// The store serializes access within the process, but the files carry
// no lock or version stamp: two processes doing load-modify-save on the
// same collection will silently lose one writer's changes. Acceptable
// under the single-active-user assumption this system is built on.
type Store struct {
	dir           string
	backupEnabled bool
	backupKeep    int
	logger        *zap.Logger

	mu  sync.Mutex
	now func() time.Time

	// OnBackupError receives backup failures. Backups never block the
	// primary save; callers that care register a hook here.
	OnBackupError func(*errs.BackupError)
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string, backupEnabled bool, backupKeep int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &errs.PersistenceError{Collection: dir, Op: "create data directory for", Err: err}
	}
	if backupKeep <= 0 {
		backupKeep = 10
	}
	return &Store{
		dir:           dir,
		backupEnabled: backupEnabled,
		backupKeep:    backupKeep,
		logger:        util.GetLogger(),
		now:           time.Now,
	}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// load reads a collection file into out (a pointer to a map keyed by id).
// A missing file is created empty and yields an empty collection, never
// an error. An unparsable file yields a CorruptionError rather than an
// empty result, so data loss is never masked as "no records".
func (s *Store) load(ctx context.Context, name string, out any) error {
	_, span := util.StartSpan(ctx, "Store.load "+name)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	defer func() {
		util.CollectionLoadLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	path := filepath.Join(s.dir, name)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := s.writeAtomic(name, []byte("{}")); err != nil {
			return err
		}
		return nil
	}
	if err != nil {
		return &errs.PersistenceError{Collection: name, Op: "load", Err: err}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &errs.CorruptionError{Path: path, Err: err}
	}
	return nil
}

// save writes a collection atomically, backing up the previous file
// first when backups are enabled.
func (s *Store) save(ctx context.Context, name string, data any) error {
	_, span := util.StartSpan(ctx, "Store.save "+name)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	defer func() {
		util.CollectionSaveLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	path := filepath.Join(s.dir, name)
	if s.backupEnabled {
		if _, err := os.Stat(path); err == nil {
			if berr := s.createBackup(name); berr != nil {
				util.BackupsFailedTotal.WithLabelValues(name).Inc()
				s.logger.Warn("Backup failed, save continues",
					zap.String("collection", name),
					zap.Error(berr))
				if s.OnBackupError != nil {
					s.OnBackupError(berr)
				}
			} else {
				util.BackupsCreatedTotal.WithLabelValues(name).Inc()
			}
		}
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return &errs.PersistenceError{Collection: name, Op: "encode", Err: err}
	}
	return s.writeAtomic(name, encoded)
}

// writeAtomic writes to <name>.tmp and renames over the target so no
// reader ever observes a partially written file.
func (s *Store) writeAtomic(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &errs.PersistenceError{Collection: name, Op: "save", Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &errs.PersistenceError{Collection: name, Op: "save", Err: err}
	}
	return nil
}

// createBackup copies the current collection file into the backup
// directory and prunes old backups for the same collection.
func (s *Store) createBackup(name string) *errs.BackupError {
	backupDir := filepath.Join(s.dir, backupDirName)
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return &errs.BackupError{Collection: name, Err: err}
	}

	src, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return &errs.BackupError{Collection: name, Err: err}
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	backupName := fmt.Sprintf("%s_%s.json", stem, s.now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(backupDir, backupName), src, 0o644); err != nil {
		return &errs.BackupError{Collection: name, Err: err}
	}

	s.cleanupOldBackups(backupDir, stem)
	return nil
}

// cleanupOldBackups removes backups for a collection beyond the most
// recent backupKeep by modification time. Errors here are swallowed:
// losing an old backup must never abort a live save.
func (s *Store) cleanupOldBackups(backupDir, stem string) {
	matches, err := filepath.Glob(filepath.Join(backupDir, stem+"_*.json"))
	if err != nil {
		return
	}

	type backupFile struct {
		path    string
		modTime time.Time
	}
	files := make([]backupFile, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		files = append(files, backupFile{path: m, modTime: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].modTime.Equal(files[j].modTime) {
			return files[i].modTime.After(files[j].modTime)
		}
		return files[i].path > files[j].path
	})

	for _, old := range files[min(len(files), s.backupKeep):] {
		_ = os.Remove(old.path)
	}
}
