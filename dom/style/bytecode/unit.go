package bytecode

import "fmt"

// Unit is the unit of a dimension operand. Units are grouped into classes
// (length, percentage, angle, time, frequency, resolution), the class being
// encoded in the upper bits.
type Unit uint32

// Unit classes.
const (
	UnitClassLength     Unit = 1 << 8
	UnitClassPercentage Unit = 1 << 9
	UnitClassAngle      Unit = 1 << 10
	UnitClassTime       Unit = 1 << 11
	UnitClassFrequency  Unit = 1 << 12
	UnitClassResolution Unit = 1 << 13
	unitClassMask       Unit = 0xff00
)

// Units
const (
	UnitPX Unit = UnitClassLength + iota
	UnitEX
	UnitEM
	UnitIN
	UnitCM
	UnitMM
	UnitPT
	UnitPC
	UnitCH
	UnitREM
	UnitLH
	UnitVH
	UnitVW
	UnitVI
	UnitVB
	UnitVMIN
	UnitVMAX
	UnitQ
)

const UnitPCT Unit = UnitClassPercentage

const (
	UnitDEG Unit = UnitClassAngle + iota
	UnitGRAD
	UnitRAD
	UnitTURN
)

const (
	UnitMS Unit = UnitClassTime + iota
	UnitS
)

const (
	UnitHZ Unit = UnitClassFrequency + iota
	UnitKHZ
)

const (
	UnitDPI Unit = UnitClassResolution + iota
	UnitDPCM
	UnitDPPX
)

var unitNames = map[Unit]string{
	UnitPX: "px", UnitEX: "ex", UnitEM: "em", UnitIN: "in", UnitCM: "cm",
	UnitMM: "mm", UnitPT: "pt", UnitPC: "pc", UnitCH: "ch", UnitREM: "rem",
	UnitLH: "lh", UnitVH: "vh", UnitVW: "vw", UnitVI: "vi", UnitVB: "vb",
	UnitVMIN: "vmin", UnitVMAX: "vmax", UnitQ: "q",
	UnitPCT: "%",
	UnitDEG: "deg", UnitGRAD: "grad", UnitRAD: "rad", UnitTURN: "turn",
	UnitMS: "ms", UnitS: "s",
	UnitHZ: "hz", UnitKHZ: "khz",
	UnitDPI: "dpi", UnitDPCM: "dpcm", UnitDPPX: "dppx",
}

var unitsByName map[string]Unit

func init() {
	unitsByName = make(map[string]Unit, len(unitNames))
	for u, name := range unitNames {
		unitsByName[name] = u
	}
}

// UnitFromString returns the unit for a (lower-case) unit suffix.
func UnitFromString(s string) (Unit, bool) {
	u, ok := unitsByName[s]
	return u, ok
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%#x)", uint32(u))
}

// IsValid is true for known units.
func (u Unit) IsValid() bool {
	_, ok := unitNames[u]
	return ok
}

// IsLength is true for units of class length.
func (u Unit) IsLength() bool {
	return u&unitClassMask == UnitClassLength
}

// IsPercentage is true for '%'.
func (u Unit) IsPercentage() bool {
	return u == UnitPCT
}

// IsAbsolute is true for length units not depending on font or viewport.
func (u Unit) IsAbsolute() bool {
	switch u {
	case UnitPX, UnitIN, UnitCM, UnitMM, UnitPT, UnitPC, UnitQ:
		return true
	}
	return false
}
