// Package archive manages the on-disk layout of generated report artifacts:
//
//	{base}/{YYYY-MM}/manager_{id}/aggregated_{YYYY_MM}.csv
//	{base}/{YYYY-MM}/manager_{id}/pdfs/{first}_{last}_{YYYY_MM}.pdf
//
// Dispatched files move into a sibling "sent" directory. The lookup side is
// a filesystem scan by design; keeping it behind this type lets an indexed
// store replace it without touching the callers.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrNoArtifact is returned when a lookup matches no generated file.
var ErrNoArtifact = errors.New("no artifact found")

type Archive struct {
	baseDir string
}

func New(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

func (a *Archive) managerDir(managerID int, ym string) string {
	return filepath.Join(a.baseDir, ym, fmt.Sprintf("manager_%d", managerID))
}

// CSVPath is the fixed location of the aggregated report for a manager and
// month. Regenerating overwrites it; versioning only happens at send time.
func (a *Archive) CSVPath(managerID int, ym, ymKey string) string {
	return filepath.Join(a.managerDir(managerID, ym), fmt.Sprintf("aggregated_%s.csv", ymKey))
}

func (a *Archive) PDFDir(managerID int, ym string) string {
	return filepath.Join(a.managerDir(managerID, ym), "pdfs")
}

func (a *Archive) PDFPath(managerID int, ym, firstName, lastName, ymKey string) string {
	name := fmt.Sprintf("%s_%s_%s.pdf", firstName, lastName, ymKey)
	return filepath.Join(a.PDFDir(managerID, ym), name)
}

// EnsureDir creates dir and its parents if they do not exist yet.
func (a *Archive) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	return nil
}

// WriteFile persists data at path, creating parent directories as needed and
// overwriting any existing file.
func (a *Archive) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// FindLatestCSV scans every period directory for the manager's aggregated
// CSVs and returns the most recently modified one.
func (a *Archive) FindLatestCSV(managerID int) (string, error) {
	pattern := filepath.Join(a.baseDir, "*", fmt.Sprintf("manager_%d", managerID), "aggregated_*.csv")
	candidates, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", ErrNoArtifact
	}

	latest := ""
	var latestMod time.Time
	for _, p := range candidates {
		info, err := os.Stat(p)
		if err != nil {
			return "", err
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = p
			latestMod = info.ModTime()
		}
	}
	return latest, nil
}

// FindPDFs returns every generated payslip for the manager, sorted
// lexicographically by path.
func (a *Archive) FindPDFs(managerID int) ([]string, error) {
	pattern := filepath.Join(a.baseDir, "*", fmt.Sprintf("manager_%d", managerID), "pdfs", "*.pdf")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoArtifact
	}
	sort.Strings(matches)
	return matches, nil
}

// ArchiveSent moves a dispatched file into a sibling "sent" directory and
// returns the new path. A name collision gets a Unix-timestamp suffix before
// the extension. The move is a rename: the source path no longer exists
// afterwards, so archiving the same path twice fails.
func (a *Archive) ArchiveSent(path string) (string, error) {
	sentDir := filepath.Join(filepath.Dir(path), "sent")
	if err := os.MkdirAll(sentDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create sent directory: %w", err)
	}

	base := filepath.Base(path)
	dest := filepath.Join(sentDir, base)

	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(base)
		name := base[:len(base)-len(ext)]
		dest = filepath.Join(sentDir, fmt.Sprintf("%s_%d%s", name, time.Now().Unix(), ext))
	}

	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive sent file: %w", err)
	}
	return dest, nil
}
