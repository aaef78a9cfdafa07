package fits

// encodeChecksum renders the complement of the HDU sum as the 16-character
// ASCII string stored in the CHECKSUM card, following the FITS checksum
// convention. Each byte of the value is spread over four printable
// characters whose byte values add back to it (plus a fixed ASCII offset),
// punctuation characters are skipped by shifting paired characters in
// opposite directions, and the result is rotated right by one place so the
// characters line up on 32-bit word boundaries at the card's value column.
//
// With the encoded string in place, the ones'-complement sum of the entire
// HDU comes out to negative zero (0xFFFFFFFF), which is how readers verify
// the card.
func encodeChecksum(value uint32) string {
	// ASCII punctuation between '0'..'9' and 'A'..'Z' / 'a'..'z' that must
	// not appear in the encoding.
	exclude := []byte{':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_', '`'}
	const offset = byte('0')

	var asc [16]byte
	for i := 0; i < 4; i++ {
		b := byte(value >> (24 - uint(i)*8))
		quotient := b/4 + offset
		remainder := b % 4

		var ch [4]byte
		for j := range ch {
			ch[j] = quotient
		}
		ch[0] += remainder

		for adjusting := true; adjusting; {
			adjusting = false
			for _, ex := range exclude {
				for j := 0; j < 4; j += 2 {
					if ch[j] == ex || ch[j+1] == ex {
						ch[j]++
						ch[j+1]--
						adjusting = true
					}
				}
			}
		}

		for j := 0; j < 4; j++ {
			asc[4*j+i] = ch[j]
		}
	}

	// Rotate right one place: the value field starts at byte 11 of the
	// card, one short of a word boundary.
	var out [16]byte
	for i := range out {
		out[i] = asc[(i+15)%16]
	}
	return string(out[:])
}
