package bytecode

// Value tags shared by all properties. The tag of an instruction selects
// the operand layout following the instruction word:
//
//    ValueLength      Fixed, Unit
//    ValueColor       uint32 (0xAARRGGBB)
//    ValueNumber      Fixed
//    ValueInteger     int32
//    ValueList        StringRef… NoString
//    ValueCounters    (StringRef, int32)… NoString
//    ValueLengthPair  Fixed, Unit, Fixed, Unit
//
// Tags from KeywordBase upwards select a keyword from the property's own
// keyword vocabulary and carry no operand.
const (
	ValueLength     uint16 = 0x0001
	ValueColor      uint16 = 0x0002
	ValueNumber     uint16 = 0x0003
	ValueInteger    uint16 = 0x0004
	ValueList       uint16 = 0x0005
	ValueCounters   uint16 = 0x0006
	ValueLengthPair uint16 = 0x0007

	KeywordBase uint16 = 0x0100
)

// KeywordTag returns the value tag for the n-th keyword of a property.
func KeywordTag(n int) uint16 {
	debugAssert(n >= 0 && int(KeywordBase)+n <= MaxValue, "keyword index %d out of range", n)
	return KeywordBase + uint16(n)
}

// IsKeywordTag is true for tags selecting a keyword.
func IsKeywordTag(tag uint16) bool {
	return tag >= KeywordBase
}

// KeywordIndex returns the keyword index for a keyword tag.
func KeywordIndex(tag uint16) int {
	return int(tag - KeywordBase)
}
