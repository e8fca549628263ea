package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	"BioPulse/pkg/logger"
)

// FileSink writes each dataset of a snapshot, plus the combined document, as
// date-stamped JSON files under a single directory. Files for the same day
// are overwritten by later runs.
type FileSink struct {
	dir string
	log *logger.Logger
}

func NewFileSink(dir string, log *logger.Logger) *FileSink {
	return &FileSink{dir: dir, log: log}
}

func (f *FileSink) Persist(ctx context.Context, snap *models.Snapshot) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create sink dir: %w", err)
	}

	stamp := snap.CollectedAt.Format("20060102")
	files := []struct {
		name string
		data interface{}
	}{
		{fmt.Sprintf("companies_%s.json", stamp), snap.Companies},
		{fmt.Sprintf("fda_approvals_%s.json", stamp), snap.Approvals},
		{fmt.Sprintf("clinical_trials_%s.json", stamp), snap.Trials},
		{fmt.Sprintf("company_websites_%s.json", stamp), snap.Websites},
		{fmt.Sprintf("biopulse_combined_%s.json", stamp), snap},
	}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f.writeJSON(filepath.Join(f.dir, file.name), file.data); err != nil {
			return err
		}
	}
	f.log.Debug("snapshot written to disk",
		logger.String("dir", f.dir), logger.String("stamp", stamp))
	return nil
}

// writeJSON writes to a temp file and renames, so a crash mid-write never
// leaves a truncated document behind.
func (f *FileSink) writeJSON(path string, data interface{}) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

var _ drepo.SnapshotSink = (*FileSink)(nil)
