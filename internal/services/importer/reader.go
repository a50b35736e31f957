package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// detectFormat picks the reader from the path extension or content type.
func detectFormat(filePath, contentType string) string {
	if strings.ToLower(path.Ext(filePath)) == ".xlsx" || strings.Contains(contentType, "spreadsheetml") {
		return "xlsx"
	}
	return "csv"
}

// readCSV slurps the whole export: header row first, then data rows.
// Rows with varying field counts are allowed; the field lookup handles
// short rows.
func readCSV(r io.Reader) (header []string, rows [][]string, err error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err = reader.Read()
	if err != nil {
		return nil, nil, err
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, record)
	}
	log.Printf("[IMP][CSV] columns=%d rows=%d", len(header), len(rows))
	return header, rows, nil
}

// readXLSXFirstSheet reads the first sheet of an XLSX export.
func readXLSXFirstSheet(r io.Reader) (header []string, rows [][]string, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("xlsx has no sheets")
	}
	it, err := f.Rows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	defer it.Close()

	if !it.Next() {
		if it.Error() != nil {
			return nil, nil, it.Error()
		}
		return nil, nil, errors.New("xlsx sheet is empty")
	}
	header, err = it.Columns()
	if err != nil {
		return nil, nil, err
	}
	for it.Next() {
		cols, err := it.Columns()
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, cols)
	}
	if err := it.Error(); err != nil {
		return nil, nil, err
	}
	log.Printf("[IMP][XLSX] sheet=%q columns=%d rows=%d", sheets[0], len(header), len(rows))
	return header, rows, nil
}
