// Package topics implements a pluggable, topic-based help system for
// `eups help <topic>`, grounded on dodot's pkg/cobrax/topics package
// (TopicManager/scanTopics/GetTopic), merged here with its
// renderer/renderer_glamour.go split.
package topics

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Topic is one loaded help-topic file, keyed by its basename without
// extension (e.g. "table-file", "version-expression").
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Manager scans a directory of topic files (".md"/".txt") and renders
// them on request.
type Manager struct {
	dir        string
	extensions []string
	renderer   Renderer
	topics     map[string]*Topic
}

// New creates a Manager rooted at dir, using renderer to format topic
// bodies (typically a *GlamourRenderer for ".md" files).
func New(dir string, renderer Renderer) *Manager {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	return &Manager{
		dir:        dir,
		extensions: []string{".md", ".txt"},
		renderer:   renderer,
		topics:     map[string]*Topic{},
	}
}

// Scan loads every topic file under m's directory. A missing directory
// is not an error: it just means no topics are available.
func (m *Manager) Scan() error {
	if _, err := os.Stat(m.dir); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(m.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		supported := false
		for _, e := range m.extensions {
			if e == ext {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, FilePath: path, Content: string(content)}
		return nil
	})
}

// Get returns a topic's rendered content by name, and whether a topic of
// that name exists.
func (m *Manager) Get(name string) (string, bool) {
	t, ok := m.topics[name]
	if !ok {
		return "", false
	}
	ext := filepath.Ext(t.FilePath)
	return m.renderer.Render(t.Content, ext), true
}

// List returns every topic name, sorted.
func (m *Manager) List() []string {
	out := make([]string, 0, len(m.topics))
	for name := range m.topics {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
