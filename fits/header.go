package fits

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-fits/internal/binary"
)

// CardsPerBlock is the number of 80-byte records in one header block.
const CardsPerBlock = binary.BlockSize / CardSize

// Header is an ordered list of cards with keyword lookup. Card order is
// preserved across Set calls (replacing a keyword keeps its position), so
// encoding the same header twice is byte-for-byte identical.
type Header struct {
	cards []Card
	index map[string]int
}

// NewHeader returns an empty header.
func NewHeader() *Header {
	return &Header{index: make(map[string]int)}
}

// Set appends a value card, or replaces it in place when the keyword is
// already present. Keywords are normalized to upper case.
func (h *Header) Set(keyword string, value interface{}, comment string) {
	kw := strings.ToUpper(strings.TrimSpace(keyword))
	card := Card{Keyword: kw, Value: value, Comment: comment}
	if i, ok := h.index[kw]; ok {
		h.cards[i] = card
		return
	}
	h.index[kw] = len(h.cards)
	h.cards = append(h.cards, card)
}

// AddComment appends a COMMENT card. Commentary cards may repeat, so they
// never replace an existing card.
func (h *Header) AddComment(text string) {
	h.cards = append(h.cards, Card{Keyword: "COMMENT", Comment: text})
}

// Get returns the card for a keyword.
func (h *Header) Get(keyword string) (Card, bool) {
	i, ok := h.index[strings.ToUpper(keyword)]
	if !ok {
		return Card{}, false
	}
	return h.cards[i], true
}

// Has reports whether the keyword is present.
func (h *Header) Has(keyword string) bool {
	_, ok := h.index[strings.ToUpper(keyword)]
	return ok
}

// Int returns an integer-valued card.
func (h *Header) Int(keyword string) (int64, error) {
	card, ok := h.Get(keyword)
	if !ok {
		return 0, fmt.Errorf("keyword not found: %s", keyword)
	}
	switch v := card.Value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, fmt.Errorf("keyword %s is not an integer (%T)", keyword, card.Value)
}

// Float returns a floating-point-valued card. Integer cards are widened.
func (h *Header) Float(keyword string) (float64, error) {
	card, ok := h.Get(keyword)
	if !ok {
		return 0, fmt.Errorf("keyword not found: %s", keyword)
	}
	switch v := card.Value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("keyword %s is not numeric (%T)", keyword, card.Value)
}

// Str returns a string-valued card with trailing padding removed.
func (h *Header) Str(keyword string) (string, error) {
	card, ok := h.Get(keyword)
	if !ok {
		return "", fmt.Errorf("keyword not found: %s", keyword)
	}
	s, ok := card.Value.(string)
	if !ok {
		return "", fmt.Errorf("keyword %s is not a string (%T)", keyword, card.Value)
	}
	return strings.TrimRight(s, " "), nil
}

// Cards returns the cards in order. The slice is shared; callers must not
// modify it.
func (h *Header) Cards() []Card {
	return h.cards
}

// Len returns the number of cards, not counting the END record.
func (h *Header) Len() int {
	return len(h.cards)
}

// Encode renders the header as whole 2880-byte blocks: every card in
// order, the END record, then space fill to the block boundary.
func (h *Header) Encode() ([]byte, error) {
	var sb strings.Builder
	for _, card := range h.cards {
		rec, err := card.encode()
		if err != nil {
			return nil, err
		}
		sb.WriteString(rec)
	}
	sb.WriteString(padCard("END"))

	blocks := (sb.Len() + binary.BlockSize - 1) / binary.BlockSize
	total := blocks * binary.BlockSize
	if pad := total - sb.Len(); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return []byte(sb.String()), nil
}
