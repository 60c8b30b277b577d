package db

import "sort"

// VersionFlavorInfo is the per-flavor payload of a declared version:
// where the product lives and which table file governs it.
type VersionFlavorInfo struct {
	Qualifiers string
	ProductDir string
	UpsDir     string
	TableFile  string
}

// VersionRecord is the parsed content of a <version>.version file: the
// metadata EUPS records when a product version is declared into a stack.
// Grounded on python/eups/db/VersionFile.py.
type VersionRecord struct {
	Product    string
	Version    string
	Declarer   string
	DeclaredAt string
	Modifier   string
	ModifiedAt string
	Flavors    map[string]VersionFlavorInfo
}

// ParseVersionRecord parses the contents of a .version file.
func ParseVersionRecord(data []byte) (*VersionRecord, error) {
	sf, err := ParseSectionFile(data)
	if err != nil {
		return nil, err
	}
	r := &VersionRecord{Flavors: map[string]VersionFlavorInfo{}}
	r.Product, _ = sf.HeaderGet("Product")
	r.Version, _ = sf.HeaderGet("Version")
	r.Declarer, _ = sf.HeaderGet("declarer")
	r.DeclaredAt, _ = sf.HeaderGet("declared")
	r.Modifier, _ = sf.HeaderGet("modifier")
	r.ModifiedAt, _ = sf.HeaderGet("modified")

	for _, g := range sf.Groups {
		info := VersionFlavorInfo{}
		info.Qualifiers, _ = g.Get("Qualifiers")
		info.ProductDir, _ = g.Get("PROD_DIR")
		info.UpsDir, _ = g.Get("UPS_DIR")
		info.TableFile, _ = g.Get("TABLE_FILE")
		r.Flavors[g.Flavor] = info
	}
	return r, nil
}

// Encode renders r back to .version file text.
func (r *VersionRecord) Encode() []byte {
	sf := &SectionFile{}
	sf.HeaderSet("File", "Version")
	sf.HeaderSet("Product", r.Product)
	sf.HeaderSet("Version", r.Version)
	if r.Declarer != "" {
		sf.HeaderSet("declarer", r.Declarer)
	}
	if r.DeclaredAt != "" {
		sf.HeaderSet("declared", r.DeclaredAt)
	}
	if r.Modifier != "" {
		sf.HeaderSet("modifier", r.Modifier)
	}
	if r.ModifiedAt != "" {
		sf.HeaderSet("modified", r.ModifiedAt)
	}

	for _, flavor := range sortedKeys(r.Flavors) {
		info := r.Flavors[flavor]
		g := sf.EnsureGroup(flavor)
		if info.Qualifiers != "" {
			g.Set("Qualifiers", info.Qualifiers)
		}
		g.Set("PROD_DIR", info.ProductDir)
		g.Set("UPS_DIR", info.UpsDir)
		g.Set("TABLE_FILE", info.TableFile)
	}
	return sf.Encode()
}

func sortedKeys(m map[string]VersionFlavorInfo) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
