package fits

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-fits/internal/binary"
)

// readHeader parses header blocks from the current position until the END
// record. The very first card must be SIMPLE, which is how a FITS file is
// recognized.
func readHeader(r *binary.Reader) (*Header, error) {
	hdr := NewHeader()
	first := true

	for {
		block, err := r.ReadBlock()
		if err != nil {
			return nil, fmt.Errorf("reading header block: %w", err)
		}

		for i := 0; i < CardsPerBlock; i++ {
			rec := block[i*CardSize : (i+1)*CardSize]

			if first {
				if !strings.HasPrefix(string(rec), "SIMPLE  =") {
					return nil, ErrNotFITS
				}
				first = false
			}

			card, end, err := parseCard(rec)
			if err != nil {
				return nil, err
			}
			if end {
				return hdr, nil
			}
			if card.Keyword == "" && card.Value == nil && card.Comment == "" {
				continue // blank filler card
			}
			if card.Value == nil {
				hdr.cards = append(hdr.cards, card)
				continue
			}
			hdr.Set(card.Keyword, card.Value, card.Comment)
		}
	}
}

// parseCard decodes one 80-byte record. The second return value is true
// for the END record.
func parseCard(rec []byte) (Card, bool, error) {
	keyword := strings.TrimRight(string(rec[:8]), " ")
	if keyword == "END" {
		return Card{}, true, nil
	}

	// Commentary and non-value cards keep their text verbatim.
	if len(rec) < 10 || rec[8] != '=' || rec[9] != ' ' {
		text := strings.TrimRight(string(rec[8:]), " ")
		return Card{Keyword: keyword, Comment: text}, false, nil
	}

	value, comment, err := parseValue(string(rec[10:]))
	if err != nil {
		return Card{}, false, fmt.Errorf("card %s: %w", keyword, err)
	}
	return Card{Keyword: keyword, Value: value, Comment: comment}, false, nil
}

// parseValue decodes the value field and trailing comment of a value card.
func parseValue(field string) (interface{}, string, error) {
	trimmed := strings.TrimLeft(field, " ")

	// Quoted string, with doubled quotes as escapes.
	if strings.HasPrefix(trimmed, "'") {
		var sb strings.Builder
		rest := trimmed[1:]
		for {
			i := strings.IndexByte(rest, '\'')
			if i < 0 {
				return nil, "", fmt.Errorf("unterminated string value")
			}
			if i+1 < len(rest) && rest[i+1] == '\'' {
				sb.WriteString(rest[:i+1])
				rest = rest[i+2:]
				continue
			}
			sb.WriteString(rest[:i])
			rest = rest[i+1:]
			break
		}
		return strings.TrimRight(sb.String(), " "), parseComment(rest), nil
	}

	token := trimmed
	comment := ""
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		token = strings.TrimRight(trimmed[:i], " ")
		comment = strings.TrimRight(strings.TrimPrefix(trimmed[i+1:], " "), " ")
	} else {
		token = strings.TrimRight(token, " ")
	}

	switch token {
	case "":
		return nil, comment, fmt.Errorf("empty value")
	case "T":
		return true, comment, nil
	case "F":
		return false, comment, nil
	}

	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return n, comment, nil
	}
	// FITS permits 'D' exponents in addition to 'E'.
	f, err := strconv.ParseFloat(strings.Replace(token, "D", "E", 1), 64)
	if err != nil {
		return nil, "", fmt.Errorf("unparseable value %q", token)
	}
	return f, comment, nil
}

// parseComment extracts the comment following a value, if any.
func parseComment(rest string) string {
	rest = strings.TrimLeft(rest, " ")
	if !strings.HasPrefix(rest, "/") {
		return ""
	}
	return strings.TrimRight(strings.TrimPrefix(strings.TrimPrefix(rest, "/"), " "), " ")
}
