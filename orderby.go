package odataquery

import "strings"

// OrderBy is an immutable "<field> asc|desc" fragment for $orderby.
type OrderBy struct {
	expr string
}

// String returns the rendered ordering fragment.
func (o OrderBy) String() string {
	return o.expr
}

// Asc builds "<field> asc".
func Asc(field string) OrderBy {
	return OrderBy{expr: field + " asc"}
}

// Desc builds "<field> desc".
func Desc(field string) OrderBy {
	return OrderBy{expr: field + " desc"}
}

// CombineOrderBy joins the rendered text of specs with "," to express
// multi-key ordering, e.g. "Category asc,Price desc".
func CombineOrderBy(specs ...OrderBy) OrderBy {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.expr
	}
	return OrderBy{expr: strings.Join(parts, ",")}
}
