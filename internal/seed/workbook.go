package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
)

// Sheet names read by ReadWorkbook. Missing sheets are skipped.
const (
	SheetHousing = "Housing"
	SheetShops   = "Shops"
	SheetMaids   = "Maids"
)

type cellKind int

const (
	kindText cellKind = iota
	kindNumber
	kindInt
	kindBool
	kindList
)

// Column kinds keyed by the JSON field name used in the header row. Dotted
// names address nested objects such as coordinates.latitude.
var (
	housingColumns = map[string]cellKind{
		"title": kindText, "description": kindText, "rent": kindNumber, "location": kindText,
		"contact": kindText, "images": kindList, "type": kindText, "bedrooms": kindInt,
		"bathrooms": kindInt, "area": kindNumber, "amenities": kindList, "isAvailable": kindBool,
		"coordinates.latitude": kindNumber, "coordinates.longitude": kindNumber,
	}
	shopColumns = map[string]cellKind{
		"shopName": kindText, "type": kindText, "description": kindText, "location": kindText,
		"contact": kindText, "email": kindText, "website": kindText, "hours": kindText,
		"services": kindList, "rating": kindNumber, "reviewCount": kindInt, "isActive": kindBool,
		"image": kindText, "coordinates.latitude": kindNumber, "coordinates.longitude": kindNumber,
	}
	maidColumns = map[string]cellKind{
		"name": kindText, "age": kindInt, "experience": kindInt, "description": kindText,
		"contact": kindText, "email": kindText, "availability": kindText, "workingHours": kindText,
		"services": kindList, "rate": kindNumber, "rateType": kindText, "location": kindText,
		"languages": kindList, "rating": kindNumber, "reviewCount": kindInt, "isAvailable": kindBool,
		"isVerified": kindBool, "profileImage": kindText,
		"documents.idProof": kindText, "documents.policeVerification": kindText,
		"coordinates.latitude": kindNumber, "coordinates.longitude": kindNumber,
	}
)

// ReadWorkbook parses an xlsx workbook with Housing, Shops and Maids sheets.
// The first row of each sheet names the fields; list cells are comma separated
// and blank cells leave the field unset. Every malformed cell is reported.
func ReadWorkbook(r io.Reader) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	var data Dataset
	var errs error
	errs = multierr.Append(errs, readSheet(f, SheetHousing, housingColumns, &data.Housing))
	errs = multierr.Append(errs, readSheet(f, SheetShops, shopColumns, &data.Shops))
	errs = multierr.Append(errs, readSheet(f, SheetMaids, maidColumns, &data.Maids))
	if errs != nil {
		return Dataset{}, errs
	}
	return data, nil
}

func readSheet[I any](f *excelize.File, sheet string, columns map[string]cellKind, out *[]I) error {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("%s: read rows: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil
	}

	header := make([]string, len(rows[0]))
	var errs error
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := columns[name]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: unknown column %q", sheet, name))
			continue
		}
		header[i] = name
	}
	if errs != nil {
		return errs
	}

	for r, row := range rows[1:] {
		rowNum := r + 2
		record := map[string]any{}
		for i, cell := range row {
			if i >= len(header) || header[i] == "" || strings.TrimSpace(cell) == "" {
				continue
			}
			value, err := parseCell(cell, columns[header[i]])
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s row %d column %s: %w", sheet, rowNum, header[i], err))
				continue
			}
			setPath(record, header[i], value)
		}
		if len(record) == 0 {
			continue
		}
		var in I
		if err := decodeRecord(record, &in); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s row %d: %w", sheet, rowNum, err))
			continue
		}
		*out = append(*out, in)
	}
	return errs
}

func parseCell(cell string, kind cellKind) (any, error) {
	cell = strings.TrimSpace(cell)
	switch kind {
	case kindNumber:
		return strconv.ParseFloat(cell, 64)
	case kindInt:
		return strconv.Atoi(cell)
	case kindBool:
		return strconv.ParseBool(strings.ToLower(cell))
	case kindList:
		parts := strings.Split(cell, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return cell, nil
	}
}

func setPath(record map[string]any, path string, value any) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		record[path] = value
		return
	}
	child, ok := record[head].(map[string]any)
	if !ok {
		child = map[string]any{}
		record[head] = child
	}
	setPath(child, rest, value)
}

// decodeRecord reuses the request JSON tags so the sheet header matches the API body.
func decodeRecord(record map[string]any, out any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
