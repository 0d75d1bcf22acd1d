package cascade

import (
	"fmt"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
)

// readValue reads the operands of an instruction for property id with
// value tag tag and converts them to a computed value. Tags the property's
// grammar does not produce are malformed code.
func readValue(id style.PropertyID, tag uint16, c *bytecode.Cursor, st *bytecode.StringTable) (computed.Value, error) {
	acc := id.Accepts()
	switch {
	case bytecode.IsKeywordTag(tag):
		kws := id.Keywords()
		n := bytecode.KeywordIndex(tag)
		if n >= len(kws) {
			return nil, malformed(id, c, "keyword index %d out of range", n)
		}
		return computed.Keyword(kws[n]), nil
	case tag == bytecode.ValueLength && (acc.Has(style.AcceptLength) || acc.Has(style.AcceptPercentage)):
		x, u, err := c.ReadLength()
		return computed.Length{Value: x, Unit: u}, err
	case tag == bytecode.ValueColor && acc.Has(style.AcceptColor):
		w, err := c.ReadColor()
		return computed.Color(w), err
	case tag == bytecode.ValueNumber && acc.Has(style.AcceptNumber):
		x, err := c.ReadFixed()
		return computed.Number(x), err
	case tag == bytecode.ValueInteger && acc.Has(style.AcceptInteger):
		n, err := c.ReadInt32()
		return computed.Integer(n), err
	case tag == bytecode.ValueList && (acc.Has(style.AcceptFamilies) || acc.Has(style.AcceptQuotes)):
		return readStrings(id, c, st)
	case tag == bytecode.ValueCounters && acc.Has(style.AcceptCounters):
		return readCounters(id, c, st)
	case tag == bytecode.ValueLengthPair && acc.Has(style.AcceptLengthPair):
		h, hu, err := c.ReadLength()
		if err != nil {
			return nil, err
		}
		v, vu, err := c.ReadLength()
		return computed.LengthPair{
			H: computed.Length{Value: h, Unit: hu},
			V: computed.Length{Value: v, Unit: vu},
		}, err
	}
	return nil, malformed(id, c, "unexpected value tag %#x", tag)
}

func readStrings(id style.PropertyID, c *bytecode.Cursor, st *bytecode.StringTable) (computed.Value, error) {
	var list computed.Strings
	for {
		ref, err := c.ReadString()
		if err != nil {
			return nil, err
		}
		if ref == bytecode.NoString {
			return list, nil
		}
		s, ok := st.Lookup(ref)
		if !ok {
			return nil, malformed(id, c, "dangling string reference %d", ref)
		}
		list = append(list, s)
	}
}

func readCounters(id style.PropertyID, c *bytecode.Cursor, st *bytecode.StringTable) (computed.Value, error) {
	var list computed.Counters
	for {
		ref, err := c.ReadString()
		if err != nil {
			return nil, err
		}
		if ref == bytecode.NoString {
			return list, nil
		}
		n, err := c.ReadInt32()
		if err != nil {
			return nil, err
		}
		name, ok := st.Lookup(ref)
		if !ok {
			return nil, malformed(id, c, "dangling string reference %d", ref)
		}
		list = append(list, computed.Counter{Name: name, Value: n})
	}
}

func malformed(id style.PropertyID, c *bytecode.Cursor, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s at offset %d: %s", bytecode.ErrMalformedBytecode,
		id, c.Pos(), fmt.Sprintf(format, args...))
}
