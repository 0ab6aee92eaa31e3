// Package helpers contains a few helper functions used throughout the project.
package helpers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ProjectUserPath returns the directory in which the server stores its
// configuration, database and log files. It is created if it does not
// exist already.
func ProjectUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding user home directory: %w", err)
	}

	path := filepath.Join(home, userDir)
	if err := os.MkdirAll(path, 0750); err != nil {
		return "", fmt.Errorf("creating user directory: %w", err)
	}

	return path, nil
}

// AbsolutePath returns absolute path. If path is already absolute it is
// returned unchanged. Otherwise it is joined with workDir.
func AbsolutePath(path, workDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// SetLogsFile sets the output of the standard logger to the file at
// logFilePath inside the appfs file system.
func SetLogsFile(appfs afero.Fs, logFilePath string) error {
	if err := appfs.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return fmt.Errorf("creating log file directory: %w", err)
	}

	logFile, err := appfs.Create(logFilePath)
	if err != nil {
		return fmt.Errorf("could not create logfile `%s`: %w", logFilePath, err)
	}

	log.SetOutput(logFile)
	return nil
}

// SetUpPidFile writes the current process ID into the file at pidFile.
func SetUpPidFile(appfs afero.Fs, pidFile string) error {
	fh, err := appfs.Create(pidFile)
	if err != nil {
		return fmt.Errorf("creating pid file: %w", err)
	}

	if _, err := fmt.Fprintf(fh, "%d", os.Getpid()); err != nil {
		_ = fh.Close()
		return fmt.Errorf("writing pid file: %w", err)
	}

	return fh.Close()
}
