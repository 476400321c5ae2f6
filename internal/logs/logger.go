package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	prefix   = "[calpick] "
	flags    = log.LstdFlags | log.Lshortfile
	fileName = "debug.log"
)

var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Until Initialize is called, log lines go to the user cache dir, or nowhere
// if it cannot be opened. The TUI owns the terminal so stderr is never used.
func init() {
	Logger = log.New(io.Discard, prefix, flags)

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return
	}
	_ = Initialize(filepath.Join(cacheDir, "calpick"))
}

// Initialize points the logger at logDir/debug.log, creating logDir if needed.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		Logger.Printf("Failed to create log dir %s: %v", logDir, err)
		return err
	}

	logPath := filepath.Join(logDir, fileName)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Printf("Failed to open new log file at %s: %v", logPath, err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, prefix, flags)
	Logger.Printf("Logging to %s", logPath)

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = log.New(io.Discard, prefix, flags)
		return err
	}
	return nil
}
