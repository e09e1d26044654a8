package completion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Manager renders and installs the completion script of one shell
type Manager struct {
	Shell       string
	ProgramName string
	Paths       Paths
	generator   Generator
	script      string
}

// NewManager creates a manager for shell and the program named programName
func NewManager(shell, programName string) (*Manager, error) {
	shell = strings.ToLower(shell)
	generator := GetGenerator(shell)
	if generator == nil {
		return nil, fmt.Errorf("unsupported shell: %s", shell)
	}

	paths, err := PathsFor(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   generator,
	}, nil
}

// Generate renders the script and keeps it for Save
func (m *Manager) Generate() string {
	m.script = m.generator.Generate(m.ProgramName)
	return m.script
}

// Save writes the generated script into the primary directory, or the fallback one when the
// primary cannot be prepared. It returns the written file.
func (m *Manager) Save() (string, error) {
	if m.script == "" {
		return "", errors.New("no completion script generated")
	}

	dir, err := m.ensureDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, m.Paths.FileName(m.ProgramName))
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}

	return path, ensurePermission(path, 0644)
}

func (m *Manager) ensureDir() (string, error) {
	const perm = os.FileMode(0755)

	err := os.MkdirAll(m.Paths.Primary, perm)
	if err == nil {
		if err = ensurePermission(m.Paths.Primary, perm); err == nil {
			return m.Paths.Primary, nil
		}
	}
	if m.Paths.Fallback == "" {
		return "", fmt.Errorf("failed to create completion directories: %w", err)
	}

	if err := os.MkdirAll(m.Paths.Fallback, perm); err != nil {
		return "", fmt.Errorf("failed to create fallback completion directory: %w", err)
	}

	return m.Paths.Fallback, ensurePermission(m.Paths.Fallback, perm)
}

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	if actual := info.Mode().Perm(); actual != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s from %o to %o: %w", path, actual, perm, err)
		}
	}

	return nil
}
