// Package export writes cleaned leads to spreadsheet workbooks for handoff.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leads-cli/internal/lead"
)

var columns = []string{
	"id", "full_name", "first_name", "last_name", "email", "phone",
	"company", "job_title", "street", "city", "postal_code", "country",
	"linkedin_url", "website_url", "industry", "company_size",
	"last_updated", "source",
}

// WriteXLSX writes one sheet with a header row and one row per lead.
func WriteXLSX(path string, leads []lead.Lead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range columns {
		header.AddCell().SetString(col)
	}

	for _, l := range leads {
		row := sheet.AddRow()
		for _, col := range columns {
			switch col {
			case "last_updated":
				row.AddCell().SetString(l.LastUpdated)
			default:
				row.AddCell().SetString(l.Field(col))
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

// CollectDir loads every cleaned JSON array under dir, in filename order.
func CollectDir(dir string) ([]lead.Lead, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "export: read dir %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var all []lead.Lead
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, eris.Wrapf(err, "export: read %s", name)
		}
		var leads []lead.Lead
		if err := json.Unmarshal(data, &leads); err != nil {
			return nil, eris.Wrapf(err, "export: parse %s", name)
		}
		all = append(all, leads...)
	}
	return all, nil
}
