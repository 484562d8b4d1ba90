package log

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"
)

// dailyWriter appends to dir/YYYY-MM-DD.jsonl, rolling over at midnight.
// A "latest" symlink always points at the current file.
type dailyWriter struct {
	dir  string
	mu   sync.Mutex
	file *os.File
	day  string
}

func newDailyWriter(dir string) (*dailyWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating debug log dir: %w", err)
	}
	dw := &dailyWriter{dir: dir}
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if err := dw.openCurrent(); err != nil {
		return nil, err
	}
	return dw, nil
}

// Write implements io.Writer.
func (dw *dailyWriter) Write(p []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if today := time.Now().Format("2006-01-02"); today != dw.day {
		if err := dw.openCurrent(); err != nil {
			return 0, err
		}
	}
	return dw.file.Write(p)
}

// Close closes the underlying file.
func (dw *dailyWriter) Close() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.file != nil {
		return dw.file.Close()
	}
	return nil
}

func (dw *dailyWriter) openCurrent() error {
	if dw.file != nil {
		dw.file.Close()
	}

	day := time.Now().Format("2006-01-02")
	name := day + ".jsonl"
	f, err := os.OpenFile(filepath.Join(dw.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening debug log file: %w", err)
	}
	dw.file = f
	dw.day = day

	// Symlink swap is best effort; some filesystems refuse symlinks.
	link := filepath.Join(dw.dir, "latest")
	tmp := link + ".tmp"
	os.Remove(tmp)
	if err := os.Symlink(name, tmp); err == nil {
		_ = os.Rename(tmp, link)
	}
	return nil
}

var debugFileName = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.jsonl$`)

// removeOldFiles deletes debug files older than retentionDays.
func removeOldFiles(dir string, retentionDays int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, entry := range entries {
		if entry.IsDir() || !debugFileName.MatchString(entry.Name()) {
			continue
		}
		day, err := time.Parse("2006-01-02", entry.Name()[:10])
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}
