// Package odataquery builds OData v4 query strings from structured inputs.
//
// The package is write-only and transport-free: it produces the query
// component of a request URI and nothing else. Callers compose immutable
// filter and ordering fragments bottom-up, set them on a Query along with
// paging and projection options, and pick an output form:
//
//	filter := odataquery.And(
//		odataquery.Equal("Category", "Books"),
//		odataquery.LessThan("Price", 20),
//	)
//
//	q := odataquery.Query{}.
//		Filter(filter).
//		OrderBy(odataquery.Desc("Price")).
//		Select("Name", "Price").
//		Top(10).
//		Count(true)
//
//	q.Build()  // $filter=Category eq 'Books' and Price lt 20&$orderby=Price desc&$select=Name,Price&$top=10&$count=true
//	q.Encode() // same keys, values percent-encoded
//	q.Map()    // map[$filter:... $orderby:... $select:... $top:10 $count:true]
//
// No operation validates property names or values and none can fail: the
// package trusts its caller and surfaces semantic mistakes only as malformed
// output. Schema awareness belongs in the calling application.
//
// Expressions never receive implicit parentheses. Combinators concatenate the
// rendered text of their operands, so operator grouping is decided entirely
// by how sub-expressions are nested before they are combined.
package odataquery
