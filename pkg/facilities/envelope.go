package facilities

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Record is a loosely typed backend resource.
type Record map[string]any

// Page is one page of records plus the pagination metadata derived from the envelope.
type Page struct {
	Records    []Record
	Total      int
	TotalPages int
	Page       int
	PerPage    int
}

// Empty reports whether the page has no records.
func (p Page) Empty() bool {
	return len(p.Records) == 0
}

// DecodePage unwraps a list response. Records come from body[resourceKey],
// then body.data, then a bare JSON array. Total falls back from total to
// total_count to the record count; TotalPages from total_pages to
// ceil((total or record count) / perPage).
func DecodePage(body []byte, resourceKey string, perPage int) (Page, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Page{Records: []Record{}}, nil
	}
	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return Page{}, fmt.Errorf("facilities: decode response: %w", err)
		}
		return paginate(records, 0, 0, 0, perPage), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return Page{}, fmt.Errorf("facilities: decode response: %w", err)
	}
	records := []Record{}
	for _, key := range []string{resourceKey, "data"} {
		if key == "" {
			continue
		}
		raw, ok := envelope[key]
		if !ok || isNullish(raw) {
			continue
		}
		if err := json.Unmarshal(raw, &records); err != nil {
			return Page{}, fmt.Errorf("facilities: decode %s: %w", key, err)
		}
		break
	}
	return paginate(records,
		rawInt(envelope["total"]),
		rawInt(envelope["total_count"]),
		rawInt(envelope["total_pages"]),
		perPage,
	), nil
}

func paginate(records []Record, total, totalCount, totalPages, perPage int) Page {
	if records == nil {
		records = []Record{}
	}
	page := Page{Records: records, PerPage: perPage}
	switch {
	case total > 0:
		page.Total = total
	case totalCount > 0:
		page.Total = totalCount
	default:
		page.Total = len(records)
	}
	if totalPages > 0 {
		page.TotalPages = totalPages
		return page
	}
	base := total
	if base == 0 {
		base = len(records)
	}
	if perPage > 0 {
		page.TotalPages = int(math.Ceil(float64(base) / float64(perPage)))
	}
	return page
}

func isNullish(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func rawInt(raw json.RawMessage) int {
	if isNullish(raw) {
		return 0
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}
	return toInt(value)
}

func toInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			f, ferr := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return n
	default:
		return 0
	}
}
