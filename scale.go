package decimal64

// ScaleMetrics describes a compile-time scale: a fixed number of
// fractional digits and the matching power-of-ten factor between
// integer units and unscaled units.
//
// Implementations are zero-size marker types. They carry no state and
// their methods return constants.
type ScaleMetrics interface {
	// Scale is the number of fractional digits.
	Scale() uint8
	// ScaleFactor is 10^Scale().
	ScaleFactor() uint64
}

// U0 through U8 are the supported scales.
type (
	U0 struct{}
	U1 struct{}
	U2 struct{}
	U3 struct{}
	U4 struct{}
	U5 struct{}
	U6 struct{}
	U7 struct{}
	U8 struct{}
)

func (U0) Scale() uint8 { return 0 }
func (U1) Scale() uint8 { return 1 }
func (U2) Scale() uint8 { return 2 }
func (U3) Scale() uint8 { return 3 }
func (U4) Scale() uint8 { return 4 }
func (U5) Scale() uint8 { return 5 }
func (U6) Scale() uint8 { return 6 }
func (U7) Scale() uint8 { return 7 }
func (U8) Scale() uint8 { return 8 }

func (U0) ScaleFactor() uint64 { return 1 }
func (U1) ScaleFactor() uint64 { return 10 }
func (U2) ScaleFactor() uint64 { return 100 }
func (U3) ScaleFactor() uint64 { return 1000 }
func (U4) ScaleFactor() uint64 { return 10000 }
func (U5) ScaleFactor() uint64 { return 100000 }
func (U6) ScaleFactor() uint64 { return 1000000 }
func (U7) ScaleFactor() uint64 { return 10000000 }
func (U8) ScaleFactor() uint64 { return 100000000 }

// scaleFactors[n] is 10^n. Indexed by the difference between a scale
// and the number of fractional digits consumed during parsing, which
// is always in [0, 8].
var scaleFactors = [9]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
}
