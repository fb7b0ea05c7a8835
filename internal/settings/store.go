package settings

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"stylus-area/internal/config"
	"stylus-area/internal/logger"

	"gopkg.in/ini.v1"
)

var ErrMalformedSettings = errors.New("malformed settings")

// Device names may legitimately contain ';' or '#'. Key names are
// case-insensitive. Repeated sections and keys are kept apart on load so
// that validate can reject them.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:        true,
	InsensitiveKeys:            true,
	AllowNonUniqueSections:     true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
}

// Store reads and writes the settings file inside one config directory.
type Store struct {
	dir    string
	logger logger.Logger
}

func NewStore(dir string, log logger.Logger) *Store {
	return &Store{dir: dir, logger: log}
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, config.SettingsFileName)
}

// Read creates the directory and an empty settings file when missing, then
// parses it. A missing or empty file is not an error; malformed content is.
func (s *Store) Read() (*Document, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config directory %s: %w", s.dir, err)
	}

	path := s.Path()
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open settings %s: %w", path, err)
	}
	defer f.Close()

	if err := lockFile(f, false); err != nil {
		return nil, fmt.Errorf("lock settings %s: %w", path, err)
	}
	defer unlockFile(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse settings %s: %w: %v", path, ErrMalformedSettings, err)
	}
	if err := validate(data, file); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	s.logger.Debug("SettingsStore", "settings loaded", map[string]interface{}{
		"path":     path,
		"sections": len(file.SectionStrings()),
	})
	return &Document{file: file}, nil
}

// Write replaces the file's contents with doc. The directory is not
// recreated: if it vanished since Read the write fails.
func (s *Store) Write(doc *Document) error {
	path := s.Path()
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open settings %s: %w", path, err)
	}
	defer f.Close()

	if err := lockFile(f, true); err != nil {
		return fmt.Errorf("lock settings %s: %w", path, err)
	}
	defer unlockFile(f)

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate settings %s: %w", path, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync settings %s: %w", path, err)
	}

	s.logger.Info("SettingsStore", "settings saved", map[string]interface{}{
		"path": path,
	})
	return nil
}

// validate applies the rules the file format always had: every key sits
// under a section header, and no section or key appears twice.
func validate(data []byte, file *ini.File) error {
	if line, ok := firstEntry(data); ok && !strings.HasPrefix(line, "[") {
		return fmt.Errorf("%w: %q appears before any section header", ErrMalformedSettings, line)
	}

	seen := make(map[string]bool)
	for _, sec := range file.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		if seen[name] {
			return fmt.Errorf("%w: section [%s] repeated", ErrMalformedSettings, name)
		}
		seen[name] = true

		for _, key := range sec.Keys() {
			if len(key.ValueWithShadows()) > 1 {
				return fmt.Errorf("%w: key %q repeated in section [%s]", ErrMalformedSettings, key.Name(), name)
			}
		}
	}
	return nil
}

// firstEntry returns the first line that is neither blank nor a comment.
func firstEntry(data []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		return line, true
	}
	return "", false
}
