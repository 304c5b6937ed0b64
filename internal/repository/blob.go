package repository

import (
	"database/sql"
	"encoding/json"
	"log"
)

// encodeStringList serializes a list-valued field to the JSON text blob
// stored in a single column.  A nil slice encodes as an empty JSON array
// so the column never holds SQL NULL for new rows.
func encodeStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		// A []string cannot fail to marshal; keep the row writable anyway.
		log.Printf("repository: encode list failed: %v", err)
		return "[]"
	}
	return string(b)
}

// logSkippedRow records a row dropped from a bulk read because it could
// not be mapped.  Listings keep going; a single corrupt record must not
// take the whole result down.
func logSkippedRow(table string, err error) {
	log.Printf("repository: skipping unmappable %s row: %v", table, err)
}

// decodeStringList parses a JSON text blob column back into a list.  A
// corrupt blob must not abort the read: the anomaly is logged and an
// empty list substituted so one bad record cannot fail a whole listing.
func decodeStringList(raw sql.NullString, column string, rowID int64) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw.String), &items); err != nil {
		log.Printf("repository: corrupt %s blob on row id=%d: %v", column, rowID, err)
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}
