package db

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Field is one "key = value" line, kept in source order so re-encoding a
// parsed file keeps its field order. Comments, blank lines and original
// spacing are not preserved.
type Field struct {
	Key, Value string
}

// FlavorGroup is one "Group: / Flavor = X / ... / End:" block.
type FlavorGroup struct {
	Flavor string
	Fields []Field
}

// Get returns the value of key within the group, if present.
func (g *FlavorGroup) Get(key string) (string, bool) {
	for _, f := range g.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Set adds or overwrites key within the group.
func (g *FlavorGroup) Set(key, value string) {
	for i, f := range g.Fields {
		if f.Key == key {
			g.Fields[i].Value = value
			return
		}
	}
	g.Fields = append(g.Fields, Field{Key: key, Value: value})
}

// SectionFile is the INI-like format shared by .version and .chain
// records: a flat header followed by zero or more per-flavor groups.
// Grounded on python/eups/db/VersionFile.py and ChainFile.py, which the
// original implements as two near-duplicate readers/writers; merged here
// into one codec per the REDESIGN FLAG on tag/chain redundancy.
type SectionFile struct {
	Header []Field
	Groups []FlavorGroup
}

// HeaderGet returns the header value for key, if present.
func (f *SectionFile) HeaderGet(key string) (string, bool) {
	for _, h := range f.Header {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// HeaderSet adds or overwrites a header field.
func (f *SectionFile) HeaderSet(key, value string) {
	for i, h := range f.Header {
		if h.Key == key {
			f.Header[i].Value = value
			return
		}
	}
	f.Header = append(f.Header, Field{Key: key, Value: value})
}

// Group returns the group for flavor, if one exists.
func (f *SectionFile) Group(flavor string) (*FlavorGroup, bool) {
	for i := range f.Groups {
		if f.Groups[i].Flavor == flavor {
			return &f.Groups[i], true
		}
	}
	return nil, false
}

// EnsureGroup returns the group for flavor, creating it if absent.
func (f *SectionFile) EnsureGroup(flavor string) *FlavorGroup {
	if g, ok := f.Group(flavor); ok {
		return g
	}
	f.Groups = append(f.Groups, FlavorGroup{Flavor: flavor})
	return &f.Groups[len(f.Groups)-1]
}

// RemoveGroup deletes the group for flavor, if present. It reports
// whether a group was actually removed.
func (f *SectionFile) RemoveGroup(flavor string) bool {
	for i := range f.Groups {
		if f.Groups[i].Flavor == flavor {
			f.Groups = append(f.Groups[:i], f.Groups[i+1:]...)
			return true
		}
	}
	return false
}

// ParseSectionFile parses the Group:/Flavor=/End: section-file grammar.
func ParseSectionFile(data []byte) (*SectionFile, error) {
	sf := &SectionFile{}
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var cur *FlavorGroup
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		switch {
		case text == "Group:":
			sf.Groups = append(sf.Groups, FlavorGroup{})
			cur = &sf.Groups[len(sf.Groups)-1]
		case text == "End:":
			cur = nil
		default:
			key, value, err := splitKV(text, line)
			if err != nil {
				return nil, err
			}
			if cur == nil {
				sf.Header = append(sf.Header, Field{Key: key, Value: value})
			} else if key == "Flavor" && cur.Flavor == "" {
				cur.Flavor = value
			} else {
				cur.Fields = append(cur.Fields, Field{Key: key, Value: value})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sf, nil
}

func splitKV(line string, lineNo int) (string, string, error) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", fmt.Errorf("line %d: expected key = value, got %q", lineNo, line)
	}
	key := strings.TrimSpace(line[:idx])
	value := strings.TrimSpace(line[idx+1:])
	return key, value, nil
}

// Encode renders the section file back to its textual form.
func (f *SectionFile) Encode() []byte {
	var b bytes.Buffer
	for _, h := range f.Header {
		fmt.Fprintf(&b, "%s = %s\n", h.Key, h.Value)
	}
	for _, g := range f.Groups {
		b.WriteString("\nGroup:\n")
		fmt.Fprintf(&b, "\tFlavor = %s\n", g.Flavor)
		for _, field := range g.Fields {
			fmt.Fprintf(&b, "\t%s = %s\n", field.Key, field.Value)
		}
		b.WriteString("End:\n")
	}
	return b.Bytes()
}
