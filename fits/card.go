package fits

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CardSize is the size of one header record in bytes. Header blocks hold
// exactly 36 cards.
const CardSize = 80

// Card is a single header record: a keyword, an optional value, and an
// optional comment. A nil value marks a commentary card (COMMENT, HISTORY,
// or blank keyword), whose text lives entirely in the comment field.
//
// Supported value types are bool, int, int64, float64, and string.
type Card struct {
	Keyword string
	Value   interface{}
	Comment string
}

// validKeyword reports whether kw is a legal FITS keyword: 1-8 characters
// from the set A-Z, 0-9, hyphen, underscore.
func validKeyword(kw string) bool {
	if len(kw) == 0 || len(kw) > 8 {
		return false
	}
	for i := 0; i < len(kw); i++ {
		c := kw[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// encode renders the card as an 80-byte fixed-format record.
func (c Card) encode() (string, error) {
	if c.Value == nil {
		// Commentary card: keyword, then free text through column 80.
		if c.Keyword != "" && !validKeyword(c.Keyword) {
			return "", fmt.Errorf("%w: %q", ErrBadKeyword, c.Keyword)
		}
		rec := fmt.Sprintf("%-8s%s", c.Keyword, c.Comment)
		return padCard(rec), nil
	}

	if !validKeyword(c.Keyword) {
		return "", fmt.Errorf("%w: %q", ErrBadKeyword, c.Keyword)
	}

	val, err := formatValue(c.Value)
	if err != nil {
		return "", fmt.Errorf("card %s: %w", c.Keyword, err)
	}

	rec := fmt.Sprintf("%-8s= %s", c.Keyword, val)
	if c.Comment != "" && len(rec)+3 < CardSize {
		rec += " / " + c.Comment
	}
	if len(rec) > CardSize {
		// Value takes precedence; the comment is what gets truncated.
		rec = rec[:CardSize]
	}
	return padCard(rec), nil
}

// padCard space-fills a record to exactly 80 bytes.
func padCard(rec string) string {
	if len(rec) >= CardSize {
		return rec[:CardSize]
	}
	return rec + strings.Repeat(" ", CardSize-len(rec))
}

// formatValue renders a card value in fixed format: logical, integer, and
// floating-point values are right-justified so they end at column 30;
// strings are quoted and left-justified starting at column 11.
func formatValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case bool:
		s := "F"
		if val {
			s = "T"
		}
		return fmt.Sprintf("%20s", s), nil
	case int:
		return fmt.Sprintf("%20s", strconv.FormatInt(int64(val), 10)), nil
	case int64:
		return fmt.Sprintf("%20s", strconv.FormatInt(val, 10)), nil
	case float64:
		s, err := formatFloat(val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%20s", s), nil
	case string:
		return formatString(val), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// formatFloat renders a float deterministically: shortest round-trip form,
// uppercase exponent, always containing a decimal point or exponent so the
// value reads back as floating-point. Values whose shortest form exceeds
// the 20-character fixed field fall back to 16 significant digits and are
// truncated to the field as a last resort.
func formatFloat(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("non-finite value %v", v)
	}
	s := strconv.FormatFloat(v, 'G', -1, 64)
	if len(s) > 20 {
		s = strconv.FormatFloat(v, 'G', 16, 64)
	}
	if len(s) > 20 && !strings.Contains(s, "E") {
		s = strings.TrimSuffix(s[:20], ".")
	}
	if !strings.ContainsAny(s, ".E") {
		s += ".0"
	}
	return s, nil
}

// formatString renders a quoted string value. Embedded single quotes are
// doubled, and the content is padded to the 8-character minimum the
// standard requires for string values.
func formatString(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	if len(escaped) < 8 {
		escaped += strings.Repeat(" ", 8-len(escaped))
	}
	return "'" + escaped + "'"
}
