package fits

import "fmt"

// Bitpix identifies the binary representation of image elements, using
// the FITS BITPIX encoding: positive values are integer widths in bits,
// negative values are IEEE floating-point widths.
type Bitpix int

const (
	Uint8   Bitpix = 8
	Int16   Bitpix = 16
	Int32   Bitpix = 32
	Int64   Bitpix = 64
	Float32 Bitpix = -32
	Float64 Bitpix = -64
)

// Valid reports whether b is one of the six datatypes the standard defines.
func (b Bitpix) Valid() bool {
	switch b {
	case Uint8, Int16, Int32, Int64, Float32, Float64:
		return true
	}
	return false
}

// Size returns the element size in bytes.
func (b Bitpix) Size() int {
	n := int(b)
	if n < 0 {
		n = -n
	}
	return n / 8
}

func (b Bitpix) String() string {
	switch b {
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("bitpix(%d)", int(b))
}
