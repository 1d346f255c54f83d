package state

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SessionFile is the file name the last viewed selection is stored under.
const SessionFile = "session.yaml"

// Session persists the last viewed link under a data directory. The file is
// rewritten on every user-initiated country change, before the new dataset
// load is issued, so the stored link always matches what the user asked for.
type Session struct {
	path string
}

// NewSession returns a session stored in dir.
func NewSession(dir string) *Session {
	return &Session{path: filepath.Join(dir, SessionFile)}
}

// Load reads the stored link. A missing file is not an error; it returns a
// zero link.
func (s *Session) Load() (Link, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Link{}, nil
		}
		return Link{}, err
	}
	var l Link
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Link{}, err
	}
	return l, nil
}

// Save writes the link, creating the directory if needed.
func (s *Session) Save(l Link) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
