package core

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// ParamKind identifies which variant a Param holds.
type ParamKind int

// Param kind constants define the supported parameter value variants.
const (
	// KindString holds a verbatim string value.
	KindString ParamKind = iota
	// KindInt holds a 64-bit integer value.
	KindInt
	// KindDecimal holds an arbitrary-precision decimal value.
	KindDecimal
)

// String returns the string representation of the param kind.
func (k ParamKind) String() string {
	return [...]string{"STRING", "INT", "DECIMAL"}[k]
}

// Param is a tagged variant over the scalar types accepted as request
// parameters: string, integer, or decimal. Using a closed set of variants
// keeps canonicalization type-safe instead of stringifying arbitrary values.
type Param struct {
	kind ParamKind
	str  string
	num  int64
	dec  apd.Decimal
}

// StringParam returns a Param holding the given string verbatim.
func StringParam(s string) Param {
	return Param{kind: KindString, str: s}
}

// IntParam returns a Param holding the given integer.
func IntParam(i int64) Param {
	return Param{kind: KindInt, num: i}
}

// DecimalParam returns a Param holding the given decimal.
func DecimalParam(d *apd.Decimal) Param {
	p := Param{kind: KindDecimal}
	p.dec.Set(d)
	return p
}

// Kind returns which variant the Param holds.
func (p Param) Kind() ParamKind {
	return p.kind
}

// Encode renders the parameter value in its natural string form: strings
// verbatim, integers as base-10 digits, decimals at full precision without
// rounding. Values are not URL-escaped; a value containing '&', '=' or
// non-ASCII bytes will corrupt the query string. Known open issue.
func (p Param) Encode() string {
	switch p.kind {
	case KindInt:
		return strconv.FormatInt(p.num, 10)
	case KindDecimal:
		return p.dec.Text('f')
	default:
		return p.str
	}
}

// Params is an order-irrelevant mapping from parameter name to value.
// It is built per call, consumed by canonicalization, then discarded.
type Params map[string]Param

// Set stores a parameter value under the given key and returns the map
// for chaining.
func (p Params) Set(key string, value Param) Params {
	p[key] = value
	return p
}

// Canonical serializes the parameters as key=value pairs joined by '&',
// with keys sorted ascending bytewise. The output is byte-identical for
// equal content regardless of insertion order, which the signing scheme
// depends on. An empty map yields the empty string.
func (p Params) Canonical() string {
	if len(p) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p[k].Encode())
	}
	return b.String()
}
