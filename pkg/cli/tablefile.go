package cli

import (
	"os"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/table"
)

// noneTableFile is the sentinel table-file path a declaration may record
// to mean "this product has no table file at all" (spec.md §4.2's
// "a missing file path is tolerated iff the declared path is literally
// 'none'").
const noneTableFile = "none"

// readTable loads and parses path, tolerating the "none" sentinel by
// returning an empty Document instead of attempting to read a file.
func readTable(path string) (*table.Document, error) {
	if path == "" || path == noneTableFile {
		return &table.Document{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.TableErr(errors.CodeTableMissing, path, "", "", "", "Table file not found")
		}
		return nil, errors.Wrapf(err, errors.CodeIO, "reading table file %s", path)
	}
	doc, err := table.Parse(string(data))
	if err != nil {
		return nil, errors.TableErr(errors.CodeTableParseError, path, "", "", "", "Table parsing error: "+err.Error())
	}
	return doc, nil
}
