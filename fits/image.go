package fits

import (
	"fmt"
	"strconv"

	"github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/chunks"
)

// ImageWriter streams the data unit of a primary-HDU image. Data arrives
// in chunks (one chunk per WriteChunk call when a chunk plan is set,
// arbitrary pieces otherwise), already encoded as big-endian elements.
// Close verifies the payload is complete, pads the final block, and
// patches the checksum cards into the header when enabled.
type ImageWriter struct {
	file      *File
	hdr       *Header
	headerLen int64
	plan      *chunks.Plan
	elemSize  int
	payload   int64
	written   int64
	closed    bool

	// Checksum accumulation state. The running sum is over whole 32-bit
	// words; rem carries bytes of a partial trailing word between calls.
	checksum bool
	sum      uint32
	rem      [4]byte
	remLen   int

	zero []byte
}

// checksumPlaceholder occupies the CHECKSUM card until Close computes the
// real value over the finished HDU.
const checksumPlaceholder = "0000000000000000"

// Plan returns the chunk plan, or nil when chunking is not in use.
func (iw *ImageWriter) Plan() *chunks.Plan {
	return iw.plan
}

// Written returns the number of payload bytes written so far.
func (iw *ImageWriter) Written() int64 {
	return iw.written
}

// WriteChunk writes one piece of the image payload. With a chunk plan the
// piece must be exactly one chunk; without one, any size up to the
// remaining payload is accepted.
func (iw *ImageWriter) WriteChunk(data []byte) error {
	if iw.closed {
		return ErrClosed
	}
	if iw.plan != nil {
		want := iw.plan.ChunkBytes(iw.elemSize)
		if len(data) != want {
			return fmt.Errorf("%w: got %d bytes, chunk is %d", ErrChunkSize, len(data), want)
		}
	}
	if iw.written+int64(len(data)) > iw.payload {
		return fmt.Errorf("%w: %d of %d bytes already written",
			ErrOverflow, iw.written, iw.payload)
	}

	if err := iw.file.writer.WriteBytes(data); err != nil {
		return fmt.Errorf("writing chunk: %w", err)
	}
	iw.written += int64(len(data))
	return iw.accumulate(data)
}

// WriteZeroChunk writes one all-zero chunk. Requires a chunk plan; the
// zero buffer is allocated once and reused, so streaming an entire zero
// cube costs one chunk of memory.
func (iw *ImageWriter) WriteZeroChunk() error {
	if iw.plan == nil {
		return fmt.Errorf("no chunk plan configured")
	}
	if iw.zero == nil {
		iw.zero = make([]byte, iw.plan.ChunkBytes(iw.elemSize))
	}
	return iw.WriteChunk(iw.zero)
}

// Close finalizes the image: the payload must be complete, the data unit
// is padded with zero bytes to the block boundary, and the checksum cards
// are patched into the already-written header.
func (iw *ImageWriter) Close() error {
	if iw.closed {
		return nil
	}
	if iw.written != iw.payload {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortImage, iw.written, iw.payload)
	}
	iw.closed = true

	pad := iw.file.writer.BlockRemainder()
	if err := iw.file.writer.PadBlock(0); err != nil {
		return err
	}
	if pad > 0 {
		// Padding is part of the data unit for DATASUM purposes.
		if err := iw.accumulate(make([]byte, pad)); err != nil {
			return err
		}
	}

	if iw.checksum {
		return iw.patchChecksum()
	}
	return nil
}

// accumulate folds data into the running ones'-complement sum, buffering
// any partial trailing word.
func (iw *ImageWriter) accumulate(data []byte) error {
	if !iw.checksum {
		return nil
	}

	if iw.remLen > 0 {
		need := 4 - iw.remLen
		if len(data) < need {
			iw.remLen += copy(iw.rem[iw.remLen:], data)
			return nil
		}
		copy(iw.rem[iw.remLen:], data[:need])
		data = data[need:]
		sum, err := binary.Sum32(iw.sum, iw.rem[:])
		if err != nil {
			return err
		}
		iw.sum = sum
		iw.remLen = 0
	}

	aligned := len(data) &^ 3
	sum, err := binary.Sum32(iw.sum, data[:aligned])
	if err != nil {
		return err
	}
	iw.sum = sum
	iw.remLen = copy(iw.rem[:], data[aligned:])
	return nil
}

// patchChecksum fills in DATASUM and CHECKSUM and rewrites the header
// blocks in place at the start of the file.
func (iw *ImageWriter) patchChecksum() error {
	if iw.remLen != 0 {
		return fmt.Errorf("data unit length %d is not a multiple of 4", iw.written)
	}

	// DATASUM covers the data unit including padding and is recorded as a
	// decimal string. It must be set before the header sum is taken.
	iw.hdr.Set("DATASUM", strconv.FormatUint(uint64(iw.sum), 10), "data unit checksum")
	iw.hdr.Set("CHECKSUM", checksumPlaceholder, "HDU checksum")

	encoded, err := iw.hdr.Encode()
	if err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}
	if int64(len(encoded)) != iw.headerLen {
		return fmt.Errorf("header grew from %d to %d bytes during checksum patch",
			iw.headerLen, len(encoded))
	}

	headerSum, err := binary.Sum32(0, encoded)
	if err != nil {
		return err
	}
	total := binary.Add32(headerSum, iw.sum)

	iw.hdr.Set("CHECKSUM", encodeChecksum(^total), "HDU checksum")
	encoded, err = iw.hdr.Encode()
	if err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}

	if _, err := iw.file.file.WriteAt(encoded, 0); err != nil {
		return fmt.Errorf("patching header: %w", err)
	}
	return nil
}
