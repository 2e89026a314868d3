package facilities

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ettle/strcase"
)

// Page sizes offered by list views.
const (
	PerPageTable   = 10
	PerPageGrid    = 12
	PerPageMedium  = 25
	PerPageLarge   = 50
	DefaultPerPage = PerPageTable
)

// PageSizes lists the accepted page sizes in display order.
var PageSizes = []int{PerPageTable, PerPageGrid, PerPageMedium, PerPageLarge}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

// Query builds the query string for a list request, including ransack
// style `q[field_predicate]` filters. A nil *Query is an empty query.
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Clone returns an independent copy; cloning nil yields an empty query.
func (q *Query) Clone() *Query {
	out := NewQuery()
	if q == nil {
		return out
	}
	for key, vals := range q.values {
		out.values[key] = append([]string(nil), vals...)
	}
	return out
}

// Paginate sets page and per_page.
func (q *Query) Paginate(page, perPage int) *Query {
	q.values.Set("page", strconv.Itoa(page))
	q.values.Set("per_page", strconv.Itoa(perPage))
	return q
}

// Where adds a ransack filter. Blank values are skipped so optional filters
// can be chained without branching. An empty predicate sends `q[field]`.
func (q *Query) Where(field, predicate string, value any) *Query {
	str := stringify(value)
	if str == "" {
		return q
	}
	q.values.Set(FilterKey(field, predicate), str)
	return q
}

// Set assigns a raw query parameter.
func (q *Query) Set(key, value string) *Query {
	if value == "" {
		q.values.Del(key)
		return q
	}
	q.values.Set(key, value)
	return q
}

// Get returns a raw query parameter.
func (q *Query) Get(key string) string {
	if q == nil {
		return ""
	}
	return q.values.Get(key)
}

// Filters returns the ransack filters keyed by `field_predicate`.
func (q *Query) Filters() map[string]string {
	out := map[string]string{}
	if q == nil {
		return out
	}
	for key, vals := range q.values {
		if !strings.HasPrefix(key, "q[") || !strings.HasSuffix(key, "]") || len(vals) == 0 {
			continue
		}
		out[key[2:len(key)-1]] = vals[0]
	}
	return out
}

// Values exposes the encoded parameters.
func (q *Query) Values() url.Values {
	if q == nil {
		return nil
	}
	return q.values
}

// Encode renders the query string.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}

// FilterKey renders the ransack parameter name for field and predicate.
func FilterKey(field, predicate string) string {
	field = strcase.ToSnake(strings.TrimSpace(field))
	predicate = strings.TrimSpace(predicate)
	if predicate == "" {
		return fmt.Sprintf("q[%s]", field)
	}
	return fmt.Sprintf("q[%s_%s]", field, predicate)
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ListRequest describes one page fetch against a resource endpoint.
type ListRequest struct {
	Path string
	// ResourceKey names the envelope field holding the records, e.g. "complaints".
	ResourceKey string
	Page        int
	PerPage     int
	Query       *Query
}
