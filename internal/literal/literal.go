// Package literal renders Go values as OData v4 primitive literals.
//
// It is the single point of value formatting for the query builders: every
// filter constructor funnels its value argument through Format, so the
// quoting and escaping rules live in exactly one place.
package literal

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Format converts value to its OData v4 literal form:
//   - nil (and nil pointers) render as the unquoted token "null"
//   - strings are single-quoted with every embedded single quote doubled
//   - decimal.Decimal renders via its exact decimal representation
//   - uuid.UUID renders as an unquoted Edm.Guid literal
//   - time.Time renders as an unquoted RFC 3339 Edm.DateTimeOffset literal in UTC
//   - booleans and numeric values render via their default textual form
//
// Format never fails; values outside the categories above fall back to their
// default fmt representation. No validation is performed.
func Format(value interface{}) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case string:
		return quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case decimal.Decimal:
		return v.String()
	case uuid.UUID:
		return v.String()
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	}

	// Pointers to any supported kind dereference to the pointed-at value;
	// a typed nil pointer renders as null like an untyped nil.
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "null"
		}
		return Format(rv.Elem().Interface())
	}

	return fmt.Sprintf("%v", value)
}

// quote wraps s in single quotes, doubling embedded single quotes per the
// OData string literal grammar.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
