package odataquery

import (
	"sort"
	"strings"

	"github.com/nlstn/go-odata-query/internal/literal"
)

// LogicalOperator identifies the operator used to join predicate fragments.
type LogicalOperator string

// Logical operator constants
const (
	LogicalAnd LogicalOperator = "and"
	LogicalOr  LogicalOperator = "or"
)

// Expression is an immutable, fully rendered $filter fragment.
//
// An Expression is an opaque text value, not a parse tree: combinators
// concatenate the rendered text of their operands and never insert
// parentheses. Grouping is therefore entirely controlled by how callers nest
// sub-expressions before combining them — what you nest is what you get.
// No operation on Expression can fail; malformed property names pass through
// to the output unchanged.
type Expression struct {
	expr string
}

// String returns the rendered filter fragment.
func (e Expression) String() string {
	return e.expr
}

func compare(field, operator string, value interface{}) Expression {
	return Expression{expr: field + " " + operator + " " + literal.Format(value)}
}

// Equal builds "<field> eq <value>".
func Equal(field string, value interface{}) Expression {
	return compare(field, "eq", value)
}

// NotEqual builds "<field> ne <value>".
func NotEqual(field string, value interface{}) Expression {
	return compare(field, "ne", value)
}

// GreaterThan builds "<field> gt <value>".
func GreaterThan(field string, value interface{}) Expression {
	return compare(field, "gt", value)
}

// LessThan builds "<field> lt <value>".
func LessThan(field string, value interface{}) Expression {
	return compare(field, "lt", value)
}

// GreaterOrEqual builds "<field> ge <value>".
func GreaterOrEqual(field string, value interface{}) Expression {
	return compare(field, "ge", value)
}

// LessOrEqual builds "<field> le <value>".
func LessOrEqual(field string, value interface{}) Expression {
	return compare(field, "le", value)
}

// And joins two expressions with "and". No parentheses are added; nest
// pre-combined expressions to control grouping.
func And(left, right Expression) Expression {
	return Expression{expr: left.expr + " and " + right.expr}
}

// Or joins two expressions with "or". No parentheses are added.
func Or(left, right Expression) Expression {
	return Expression{expr: left.expr + " or " + right.expr}
}

// In builds membership against a literal list:
// "<field> in ('a','b')". Each value is rendered as an OData literal.
func In(field string, values ...interface{}) Expression {
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = literal.Format(v)
	}
	return Expression{expr: field + " in (" + strings.Join(rendered, ",") + ")"}
}

// InCollection builds membership against a named collection or
// sub-expression reference: "<field> in <collection>". The reference is
// emitted verbatim, without quoting or encoding.
func InCollection(field, collection string) Expression {
	return Expression{expr: field + " in " + collection}
}

// Any builds a lambda quantifier over a collection-valued property:
// "<collection>/any(<variable>:<condition>)". Property paths inside the
// condition must already be prefixed with the lambda variable, e.g.
// Equal("item/Type", "Active") for variable "item".
func Any(collection, variable string, condition Expression) Expression {
	return lambda(collection, "any", variable, condition)
}

// All builds the universal quantifier counterpart of Any:
// "<collection>/all(<variable>:<condition>)".
func All(collection, variable string, condition Expression) Expression {
	return lambda(collection, "all", variable, condition)
}

func lambda(collection, quantifier, variable string, condition Expression) Expression {
	return Expression{expr: collection + "/" + quantifier + "(" + variable + ":" + condition.expr + ")"}
}

// Contains builds the string function call "contains(<field>,<value>)".
func Contains(field string, value interface{}) Expression {
	return Expression{expr: "contains(" + field + "," + literal.Format(value) + ")"}
}

// EqualEach builds one equality check per value against the same field and
// joins them with op: "Name eq 'a' or Name eq 'b'".
func EqualEach(field string, op LogicalOperator, values ...interface{}) Expression {
	exprs := make([]Expression, len(values))
	for i, v := range values {
		exprs[i] = Equal(field, v)
	}
	return Combine(op, exprs...)
}

// EqualFields builds one equality check per field/value pair and joins them
// with op. Fields are visited in lexicographic name order so the output is
// deterministic regardless of map iteration order.
func EqualFields(fields map[string]interface{}, op LogicalOperator) Expression {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	exprs := make([]Expression, len(names))
	for i, name := range names {
		exprs[i] = Equal(name, fields[name])
	}
	return Combine(op, exprs...)
}

// Combine joins the rendered text of exprs with " <op> " between each pair.
// No leading or trailing operator and no grouping is added.
func Combine(op LogicalOperator, exprs ...Expression) Expression {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.expr
	}
	return Expression{expr: strings.Join(parts, " "+string(op)+" ")}
}
