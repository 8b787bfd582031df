package Exports

import (
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"

	"Workshop/Database"
)

// ImportVehicleTypes loads brand/model pairs from the first sheet of an xlsx
// file, one pair per row (brand in column A, model in column B). Rows that
// are blank or already present are skipped. Returns the number of pairs
// actually inserted.
func ImportVehicleTypes(store *Database.Store, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, err
	}

	imported := 0
	rows := f.GetRows(f.GetSheetName(1))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		brand := strings.TrimSpace(row[0])
		model := strings.TrimSpace(row[1])
		if brand == "" || model == "" {
			continue
		}
		if strings.EqualFold(brand, "brand") && strings.EqualFold(model, "model") {
			continue // header row
		}
		if _, err := store.AddVehicleType(brand, model); err != nil {
			if isDuplicate(err) {
				continue
			}
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func isDuplicate(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "Duplicate entry")
}
