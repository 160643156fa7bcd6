package importer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field coercion never fails the import: a value that cannot be read
// becomes null in the stored row.

// ParseDecimal reads a JSON number or numeric string as a finite float64.
// "NaN" in any letter case, non-finite values and unparseable text fail.
// Go digit separators ("1_000") are not decimal syntax and fail too.
func ParseDecimal(raw json.RawMessage) (float64, bool) {
	s, ok := scalarText(raw)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.ContainsRune(s, '_') {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseWhole reads a value the way ParseDecimal does and truncates it
// toward zero. Results outside the int32 range fail.
func ParseWhole(raw json.RawMessage) (int, bool) {
	f, ok := ParseDecimal(raw)
	if !ok {
		return 0, false
	}
	t := math.Trunc(f)
	if t < math.MinInt32 || t > math.MaxInt32 {
		return 0, false
	}
	return int(t), true
}

// ExtractCalories reads the nutrients.calories string, keeps only its ASCII
// digits and parses them as a base-10 int32. "200 kcal" gives 200. A value
// that is not a JSON string fails.
func ExtractCalories(nutrients json.RawMessage) (int, bool) {
	if !isObject(nutrients) {
		return 0, false
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(nutrients, &doc); err != nil {
		return 0, false
	}

	s := stringField(doc[keyCalories])
	if s == nil {
		return 0, false
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, *s)
	if digits == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// EncodeNutrients returns the compact JSON text of the nutrients value.
// An absent value is stored as the literal "null".
func EncodeNutrients(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "null"
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "null"
	}
	return buf.String()
}

// scalarText returns the contents of a JSON string or the literal text of a
// JSON number. Any other value, including null, reports false.
func scalarText(raw json.RawMessage) (string, bool) {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return "", false
	}

	switch c := t[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return "", false
		}
		return s, true
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(t, &n); err != nil {
			return "", false
		}
		return n.String(), true
	default:
		return "", false
	}
}

func stringField(raw json.RawMessage) *string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || t[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(t, &s); err != nil {
		return nil
	}
	return &s
}
