// Package table renders `list`/`tags` results as a pterm table, the
// rendering mode behind --format table (and the auto default), grounded
// on dodot's pkg/style (TitleStyle/MutedStyle/indicators) and pterm's
// table widget, which dodot's go.mod already carries for its own CLI
// output.
package table

import (
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/ui/style"
)

// RenderListings formats rows (as produced by cli.List) into a pterm
// table: Product, Version, Flavor, Stack, Tags, and a Setup column
// marked with style.SetupIndicator for the row matching the calling
// process's current environment.
func RenderListings(rows []cli.ProductListing) string {
	if len(rows) == 0 {
		return style.MutedStyle.Render("no products found")
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Product != rows[j].Product {
			return rows[i].Product < rows[j].Product
		}
		return rows[i].Version < rows[j].Version
	})

	data := pterm.TableData{{"", "PRODUCT", "VERSION", "FLAVOR", "TAGS", "STACK"}}
	for _, row := range rows {
		mark := " "
		if row.IsSetup {
			mark = style.SetupIndicator
		}
		tags := strings.Join(row.Tags, ",")
		if tags != "" {
			tags = style.TagStyle.Render(tags)
		}
		data = append(data, []string{
			mark,
			style.ProductStyle.Render(row.Product),
			row.Version,
			row.Flavor,
			tags,
			style.PathStyle.Render(row.Stack),
		})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return renderPlainListings(rows)
	}
	return rendered
}

// renderPlainListings is the plain fallback, a tab-aligned text table
// used when pterm rendering fails.
func renderPlainListings(rows []cli.ProductListing) string {
	var b strings.Builder
	b.WriteString("PRODUCT\tVERSION\tFLAVOR\tTAGS\tSTACK\n")
	for _, row := range rows {
		b.WriteString(row.Product + "\t" + row.Version + "\t" + row.Flavor + "\t" +
			strings.Join(row.Tags, ",") + "\t" + row.Stack + "\n")
	}
	return b.String()
}

// RenderTags formats the `tags` verb's output: tag name, the product and
// flavor it points at, and the version it resolves to.
func RenderTags(tags []cli.TagInfo) string {
	if len(tags) == 0 {
		return style.MutedStyle.Render("no tags found")
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Product != tags[j].Product {
			return tags[i].Product < tags[j].Product
		}
		return tags[i].Tag < tags[j].Tag
	})

	data := pterm.TableData{{"TAG", "PRODUCT", "VERSION", "FLAVOR"}}
	for _, t := range tags {
		data = append(data, []string{
			style.TagStyle.Render(t.Tag),
			style.ProductStyle.Render(t.Product),
			t.Version,
			t.Flavor,
		})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		var b strings.Builder
		for _, t := range tags {
			b.WriteString(t.Tag + "\t" + t.Product + "\t" + t.Version + "\t" + t.Flavor + "\n")
		}
		return b.String()
	}
	return rendered
}
