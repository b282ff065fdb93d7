package raster

// Encoding is the numeric type of an image's samples.
type Encoding int

const (
	// Byte stores samples as uint8.
	Byte Encoding = iota
	// Int stores samples as int32.
	Int
	// Float stores samples as float32.
	Float
)

// MaxBands is the largest band count a Float image may have.
const MaxBands = 16

func (e Encoding) String() string {
	switch e {
	case Byte:
		return "byte"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "unknown"
}

// ParseEncoding maps "byte", "int" and "float" to an Encoding.
func ParseEncoding(s string) (Encoding, bool) {
	switch s {
	case "byte":
		return Byte, true
	case "int":
		return Int, true
	case "float":
		return Float, true
	}
	return 0, false
}

// Supports reports whether images with the given band count can use e.
// Byte and Int hold 1, 3 or 4 bands; Float holds 1 to MaxBands.
func (e Encoding) Supports(bands int) bool {
	switch e {
	case Byte, Int:
		return bands == 1 || bands == 3 || bands == 4
	case Float:
		return bands >= 1 && bands <= MaxBands
	}
	return false
}
