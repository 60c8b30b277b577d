package db

import "sort"

// ChainRecord is the parsed content of a <tag>.chain file: which version
// a tag resolves to, per flavor. Grounded on python/eups/db/ChainFile.py.
type ChainRecord struct {
	Product    string
	Tag        string
	Modifier   string
	ModifiedAt string
	Versions   map[string]string // flavor -> version
}

// ParseChainRecord parses the contents of a .chain file.
func ParseChainRecord(data []byte) (*ChainRecord, error) {
	sf, err := ParseSectionFile(data)
	if err != nil {
		return nil, err
	}
	r := &ChainRecord{Versions: map[string]string{}}
	r.Product, _ = sf.HeaderGet("Product")
	r.Tag, _ = sf.HeaderGet("Chain")
	r.Modifier, _ = sf.HeaderGet("modifier")
	r.ModifiedAt, _ = sf.HeaderGet("modified")

	for _, g := range sf.Groups {
		if v, ok := g.Get("Version"); ok {
			r.Versions[g.Flavor] = v
		}
	}
	return r, nil
}

// Encode renders r back to .chain file text.
func (r *ChainRecord) Encode() []byte {
	sf := &SectionFile{}
	sf.HeaderSet("File", "Chain")
	sf.HeaderSet("Product", r.Product)
	sf.HeaderSet("Chain", r.Tag)
	if r.Modifier != "" {
		sf.HeaderSet("modifier", r.Modifier)
	}
	if r.ModifiedAt != "" {
		sf.HeaderSet("modified", r.ModifiedAt)
	}

	flavors := make([]string, 0, len(r.Versions))
	for f := range r.Versions {
		flavors = append(flavors, f)
	}
	sort.Strings(flavors)

	for _, flavor := range flavors {
		g := sf.EnsureGroup(flavor)
		g.Set("Version", r.Versions[flavor])
	}
	return sf.Encode()
}
