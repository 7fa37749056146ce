package preset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
)

// Document is the on-disk layout shared by presets and config exports
// Presets usually carry only [params] and [visual]; exports add [structure]
type Document struct {
	Params    parameter.Params `toml:"params"`
	Visual    parameter.Visual `toml:"visual"`
	Structure *engine.Summary  `toml:"structure,omitempty"`
	Unknown   []string         `toml:"-"` // keys present in the file but not understood
}

// FromState builds an export document
// The seed actually used replaces a zero random_seed so loading the export replays the run
func FromState(st engine.State, v parameter.Visual) Document {
	doc := Document{Params: st.Params, Visual: v}
	if doc.Params.RandomSeed == 0 {
		doc.Params.RandomSeed = st.Structure.RandomSeed
	}
	summary := st.Structure
	doc.Structure = &summary
	return doc
}

// Encode renders the document as TOML
func Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# dla configuration\n")
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode preset: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode overlays TOML onto the defaults, then clamps every field into range
// Missing keys keep their default value
func Decode(data []byte) (Document, error) {
	doc := Document{Params: *parameter.Default(), Visual: parameter.DefaultVisual()}

	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return doc, fmt.Errorf("decode preset: %w", err)
	}
	for _, k := range md.Undecoded() {
		doc.Unknown = append(doc.Unknown, k.String())
	}
	sort.Strings(doc.Unknown)

	doc.Params.Clamp()
	doc.Visual.Clamp()
	return doc, nil
}

// SaveFile writes the document, creating parent directories
func SaveFile(path string, doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create preset dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

// LoadFile reads and decodes a preset file
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read preset: %w", err)
	}
	return Decode(data)
}

// Manager handles named presets inside one directory
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a named preset
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+".toml")
}

// Exists checks if a preset file exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes a named preset
func (m *Manager) Save(name string, doc Document) error {
	return SaveFile(m.FilePath(name), doc)
}

// Load reads a named preset
func (m *Manager) Load(name string) (Document, error) {
	return LoadFile(m.FilePath(name))
}

// List returns the preset names in the directory, sorted
func (m *Manager) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(m.basePath, "*.toml"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		base := filepath.Base(p)
		names = append(names, base[:len(base)-len(".toml")])
	}
	sort.Strings(names)
	return names, nil
}
