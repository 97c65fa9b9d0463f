package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileWriter appends log lines to a file and rotates it once it would grow
// past maxSize. At most maxFiles rotated files are kept.
type FileWriter struct {
	mu          sync.Mutex
	dir         string
	filename    string
	maxSize     int64
	maxFiles    int
	currentFile *os.File
	currentSize int64
}

// NewFileWriter opens dir/filename for appending, creating dir if needed.
func NewFileWriter(dir, filename string, maxSizeMB, maxFiles int) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxFiles <= 0 {
		maxFiles = 5
	}
	fw := &FileWriter{
		dir:      dir,
		filename: filename,
		maxSize:  int64(maxSizeMB) * 1024 * 1024,
		maxFiles: maxFiles,
	}
	if err := fw.openFile(); err != nil {
		return nil, err
	}
	return fw, nil
}

// Path returns the active log file.
func (fw *FileWriter) Path() string {
	return filepath.Join(fw.dir, fw.filename)
}

func (fw *FileWriter) openFile() error {
	f, err := os.OpenFile(fw.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	fw.currentFile = f
	fw.currentSize = info.Size()
	return nil
}

func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.currentFile == nil {
		return 0, os.ErrClosed
	}
	if fw.currentSize > 0 && fw.currentSize+int64(len(p)) > fw.maxSize {
		if err := fw.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := fw.currentFile.Write(p)
	fw.currentSize += int64(n)
	return n, err
}

func (fw *FileWriter) rotate() error {
	if err := fw.currentFile.Close(); err != nil {
		return fmt.Errorf("close current file: %w", err)
	}
	rotated := fmt.Sprintf("%s.%s", fw.Path(), time.Now().UTC().Format("20060102-150405.000000000"))
	if err := os.Rename(fw.Path(), rotated); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rename log file: %w", err)
	}
	fw.prune()
	return fw.openFile()
}

func (fw *FileWriter) prune() {
	matches, err := filepath.Glob(fw.Path() + ".*")
	if err != nil || len(matches) <= fw.maxFiles {
		return
	}
	// Timestamp suffixes sort chronologically.
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-fw.maxFiles] {
		os.Remove(path)
	}
}

// Close closes the active file.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.currentFile == nil {
		return nil
	}
	err := fw.currentFile.Close()
	fw.currentFile = nil
	return err
}

// ReadRecent returns up to n of the newest entries in logPath, oldest first.
// Malformed lines are skipped and n <= 0 yields no entries.
func ReadRecent(logPath string, n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}
	f, err := os.Open(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
