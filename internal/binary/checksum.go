package binary

import "fmt"

// Sum32 accumulates the ones'-complement 32-bit sum used by the FITS
// checksum convention. The data is treated as a sequence of big-endian
// 32-bit words; carries out of the top bit wrap around into the bottom
// (end-around carry), which is what makes the final CHECKSUM card able to
// force the whole-HDU sum to negative zero.
//
// FITS blocks are 2880 bytes, a multiple of 4, so callers always have
// whole words; a partial trailing word is rejected rather than padded.
func Sum32(initial uint32, data []byte) (uint32, error) {
	if len(data)%4 != 0 {
		return 0, fmt.Errorf("checksum data length %d is not a multiple of 4", len(data))
	}

	// Accumulate in 64 bits, then fold the carries back in.
	sum := uint64(initial)
	for i := 0; i < len(data); i += 4 {
		word := uint64(data[i])<<24 | uint64(data[i+1])<<16 |
			uint64(data[i+2])<<8 | uint64(data[i+3])
		sum += word
	}
	for sum > 0xFFFFFFFF {
		sum = (sum & 0xFFFFFFFF) + (sum >> 32)
	}
	return uint32(sum), nil
}

// Add32 combines two ones'-complement partial sums.
func Add32(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	for sum > 0xFFFFFFFF {
		sum = (sum & 0xFFFFFFFF) + (sum >> 32)
	}
	return uint32(sum)
}
