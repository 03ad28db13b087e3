package odataquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Query option keys as they appear on the wire.
const (
	keySearch  = "$search"
	keyFilter  = "$filter"
	keyOrderBy = "$orderby"
	keySelect  = "$select"
	keyExpand  = "$expand"
	keyTop     = "$top"
	keySkip    = "$skip"
	keyCount   = "$count"
)

// Parameter is one serialized query option: its wire key and raw
// (unencoded) value.
type Parameter struct {
	Key   string
	Value string
}

// Query holds the optional OData v4 query options of a single request.
//
// The zero value is an empty query. Every setter takes a value receiver and
// returns a modified copy, so a Query is immutable once built and safe to
// share across goroutines; partial queries can be reused as templates:
//
//	base := odataquery.Query{}.Top(50).Count(true)
//	page2 := base.Skip(50)
//
// Every option is independently optional. An unset option is omitted from
// all output forms; it is never emitted with an empty value.
type Query struct {
	search  *string
	filter  *Expression
	orderBy *OrderBy
	selects []string
	expands []string
	top     *int
	skip    *int
	count   *bool
}

// Search sets the $search free-text term. The term is passed through
// verbatim in raw output and percent-encoded as a whole in encoded output.
func (q Query) Search(term string) Query {
	q.search = &term
	return q
}

// Filter sets the $filter expression.
func (q Query) Filter(filter Expression) Query {
	q.filter = &filter
	return q
}

// OrderBy sets the $orderby specification.
func (q Query) OrderBy(orderBy OrderBy) Query {
	q.orderBy = &orderBy
	return q
}

// Select sets the $select property list. An empty list is equivalent to
// leaving the option unset. The list is copied, so mutating the argument
// slice afterwards does not affect the query.
func (q Query) Select(properties ...string) Query {
	q.selects = append([]string(nil), properties...)
	return q
}

// Expand sets the $expand navigation property list. Entries may carry
// nested parenthesized query options, e.g. "Items($filter=Done eq false)";
// see NestedQuery. An empty list is equivalent to leaving the option unset.
func (q Query) Expand(properties ...string) Query {
	q.expands = append([]string(nil), properties...)
	return q
}

// Top sets the $top bound. Values are emitted as-is; callers are
// responsible for keeping them non-negative.
func (q Query) Top(n int) Query {
	q.top = &n
	return q
}

// Skip sets the $skip offset.
func (q Query) Skip(n int) Query {
	q.skip = &n
	return q
}

// Count sets the $count flag.
func (q Query) Count(include bool) Query {
	q.count = &include
	return q
}

// Parameters returns the serialized query options in wire order. Options are
// tested in the fixed order search, filter, orderby, select, expand, top,
// skip, count, and only set options contribute an entry. The returned values
// are raw (unencoded); all other output forms derive from this list.
func (q Query) Parameters() []Parameter {
	params := make([]Parameter, 0, 8)
	if q.search != nil {
		params = append(params, Parameter{Key: keySearch, Value: *q.search})
	}
	if q.filter != nil {
		params = append(params, Parameter{Key: keyFilter, Value: q.filter.expr})
	}
	if q.orderBy != nil {
		params = append(params, Parameter{Key: keyOrderBy, Value: q.orderBy.expr})
	}
	if len(q.selects) > 0 {
		params = append(params, Parameter{Key: keySelect, Value: strings.Join(q.selects, ",")})
	}
	if len(q.expands) > 0 {
		params = append(params, Parameter{Key: keyExpand, Value: strings.Join(q.expands, ",")})
	}
	if q.top != nil {
		params = append(params, Parameter{Key: keyTop, Value: strconv.Itoa(*q.top)})
	}
	if q.skip != nil {
		params = append(params, Parameter{Key: keySkip, Value: strconv.Itoa(*q.skip)})
	}
	if q.count != nil {
		params = append(params, Parameter{Key: keyCount, Value: strconv.FormatBool(*q.count)})
	}
	return params
}

// Build returns the raw query string: "key=value" pairs joined by "&",
// values unencoded. An empty query yields "". No leading "?" is emitted;
// splicing into a full URI is the caller's job.
func (q Query) Build() string {
	params := q.Parameters()
	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = p.Key + "=" + p.Value
	}
	return strings.Join(pairs, "&")
}

// Encode returns the query string with every value percent-encoded as a URI
// component. Keys are emitted as-is; the "$" prefix is valid in a query
// component and services expect it unencoded.
func (q Query) Encode() string {
	params := q.Parameters()
	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = p.Key + "=" + encodeComponent(p.Value)
	}
	return strings.Join(pairs, "&")
}

// Map returns the serialized options as a key-to-raw-value map for callers
// that need structured access rather than a flattened string. It contains
// exactly the keys Build emits.
func (q Query) Map() map[string]string {
	params := q.Parameters()
	m := make(map[string]string, len(params))
	for _, p := range params {
		m[p.Key] = p.Value
	}
	return m
}

// Fingerprint returns a stable xxhash of the encoded query string. Two
// queries with the same options always hash identically, which makes the
// fingerprint usable as a client-side cache or dedup key.
func (q Query) Fingerprint() uint64 {
	return xxhash.Sum64String(q.Encode())
}

// NestedQuery renders a navigation property with embedded query options for
// use inside Expand, e.g. NestedQuery("Items", q) -> "Items($top=2;$count=true)".
// OData separates nested options with ";" rather than "&". A property with an
// empty query is returned bare.
func NestedQuery(property string, q Query) string {
	params := q.Parameters()
	if len(params) == 0 {
		return property
	}
	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = p.Key + "=" + p.Value
	}
	return property + "(" + strings.Join(pairs, ";") + ")"
}

// encodeComponent percent-encodes a query option value as a URI component.
// url.QueryEscape produces form encoding, which represents a space as "+";
// OData services expect "%20" inside option values, so rewrite it.
func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
