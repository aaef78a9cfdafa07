package fits

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/robert-malhotra/go-fits/internal/binary"
)

func TestHeaderSetOrder(t *testing.T) {
	hdr := NewHeader()
	hdr.Set("FIRST", int64(1), "")
	hdr.Set("SECOND", int64(2), "")
	hdr.Set("THIRD", int64(3), "")

	// Replacing a keyword keeps its position.
	hdr.Set("SECOND", int64(20), "updated")

	cards := hdr.Cards()
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	if cards[1].Keyword != "SECOND" {
		t.Errorf("Expected SECOND at position 1, got %s", cards[1].Keyword)
	}
	if v, _ := hdr.Int("SECOND"); v != 20 {
		t.Errorf("Expected replaced value 20, got %d", v)
	}
}

func TestHeaderKeywordNormalized(t *testing.T) {
	hdr := NewHeader()
	hdr.Set("bunit", "Jy/beam", "")

	if !hdr.Has("BUNIT") {
		t.Error("Lower-case keyword was not normalized")
	}
	s, err := hdr.Str("BUNIT")
	if err != nil {
		t.Fatalf("Str failed: %v", err)
	}
	if s != "Jy/beam" {
		t.Errorf("Str = %q, want %q", s, "Jy/beam")
	}
}

func TestHeaderTypedGetters(t *testing.T) {
	hdr := NewHeader()
	hdr.Set("NAXIS", int64(3), "")
	hdr.Set("EQUINOX", 2000.0, "")
	hdr.Set("SPECSYS", "LSRK", "")

	if _, err := hdr.Int("EQUINOX"); err == nil {
		t.Error("Int should reject a float card")
	}
	if f, err := hdr.Float("NAXIS"); err != nil || f != 3 {
		t.Errorf("Float should widen integer cards: %v, %v", f, err)
	}
	if _, err := hdr.Str("NAXIS"); err == nil {
		t.Error("Str should reject an integer card")
	}
	if _, err := hdr.Int("MISSING"); err == nil {
		t.Error("Expected error for missing keyword")
	}
}

func TestHeaderEncodeBlockSized(t *testing.T) {
	hdr := NewHeader()
	hdr.Set("SIMPLE", true, "")
	hdr.Set("BITPIX", int64(-32), "")

	encoded, err := hdr.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) != binary.BlockSize {
		t.Errorf("Encoded header is %d bytes, want %d", len(encoded), binary.BlockSize)
	}

	endRec := string(encoded[2*CardSize : 3*CardSize])
	if endRec != padCard("END") {
		t.Errorf("Expected END record after the cards, got %q", endRec)
	}
	for i, b := range encoded[3*CardSize:] {
		if b != ' ' {
			t.Fatalf("Expected space fill at offset %d, got 0x%02x", 3*CardSize+i, b)
		}
	}
}

func TestHeaderEncodeMultipleBlocks(t *testing.T) {
	hdr := NewHeader()
	for i := 0; i < 40; i++ {
		hdr.Set(fmt.Sprintf("KEY%d", i), int64(i), "")
	}

	encoded, err := hdr.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	// 40 cards plus END does not fit the 36 records of one block.
	if len(encoded) != 2*binary.BlockSize {
		t.Errorf("Encoded header is %d bytes, want %d", len(encoded), 2*binary.BlockSize)
	}
}

func TestHeaderEncodeDeterministic(t *testing.T) {
	build := func() []byte {
		hdr := NewHeader()
		hdr.Set("SIMPLE", true, "conforms to FITS standard")
		hdr.Set("BITPIX", int64(-32), "")
		hdr.Set("CRVAL3", 1.4e9, "")
		hdr.Set("CDELT2", -1.0/3600, "")
		hdr.Set("RADESYS", "FK5", "")
		encoded, err := hdr.Encode()
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		return encoded
	}

	if !bytes.Equal(build(), build()) {
		t.Error("Encoding the same header twice differs")
	}
}

func TestHeaderEncodeRoundTrip(t *testing.T) {
	hdr := NewHeader()
	hdr.Set("SIMPLE", true, "conforms to FITS standard")
	hdr.Set("BITPIX", int64(-32), "array data type")
	hdr.Set("NAXIS", int64(2), "")
	hdr.Set("NAXIS1", int64(1024), "")
	hdr.Set("NAXIS2", int64(288), "")
	hdr.Set("CTYPE1", "DEC--SIN", "")
	hdr.Set("CRPIX1", 513.0, "")
	hdr.Set("CDELT1", -1.0/3600, "")
	hdr.Set("CUNIT3", "", "")
	hdr.Set("BUNIT", "Jy/beam", "brightness unit")
	hdr.Set("EQUINOX", 2000.0, "")
	hdr.AddComment("synthetic test cube")

	encoded, err := hdr.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	parsed, err := readHeader(binary.NewReader(bytes.NewReader(encoded)))
	if err != nil {
		t.Fatalf("readHeader failed: %v", err)
	}

	if parsed.Len() != hdr.Len() {
		t.Fatalf("Parsed %d cards, want %d", parsed.Len(), hdr.Len())
	}
	for i, want := range hdr.Cards() {
		got := parsed.Cards()[i]
		if got.Keyword != want.Keyword {
			t.Errorf("Card %d keyword %q, want %q", i, got.Keyword, want.Keyword)
		}
	}

	if v, _ := parsed.Int("NAXIS1"); v != 1024 {
		t.Errorf("NAXIS1 = %d, want 1024", v)
	}
	if v, _ := parsed.Float("CRPIX1"); v != 513 {
		t.Errorf("CRPIX1 = %v, want 513", v)
	}
	if v, _ := parsed.Str("CTYPE1"); v != "DEC--SIN" {
		t.Errorf("CTYPE1 = %q, want %q", v, "DEC--SIN")
	}
	if v, _ := parsed.Str("CUNIT3"); v != "" {
		t.Errorf("CUNIT3 = %q, want empty", v)
	}
	simple, _ := parsed.Get("SIMPLE")
	if simple.Value != true {
		t.Errorf("SIMPLE = %v, want true", simple.Value)
	}
	if simple.Comment != "conforms to FITS standard" {
		t.Errorf("SIMPLE comment = %q", simple.Comment)
	}

	delt, _ := parsed.Float("CDELT1")
	if diff := delt - (-1.0 / 3600); diff > 1e-16 || diff < -1e-16 {
		t.Errorf("CDELT1 = %v, want about %v", delt, -1.0/3600)
	}
}
