package cascade

import (
	"fmt"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/compile"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/schuko"
)

// DefaultProvider supplies initial values CSS does not define literally,
// e.g. the default font family. DefaultForProperty has to be a pure
// function of the property id.
type DefaultProvider interface {
	DefaultForProperty(id style.PropertyID) (computed.Value, error)
}

// UADefaults is a DefaultProvider with user agent defaults, which may be
// overridden by configuration. A UADefaults is immutable after creation.
type UADefaults struct {
	values map[style.PropertyID]computed.Value
}

// Configuration keys for user agent defaults, and their built-in values.
var uaDefaults = []struct {
	id    style.PropertyID
	key   string
	value string
}{
	{style.PropColor, "css.default.color", "black"},
	{style.PropFontFamily, "css.default.font-family", "serif"},
	{style.PropQuotes, "css.default.quotes", `"\201C" "\201D" "\2018" "\2019"`},
}

// NewUADefaults creates user agent defaults. Values found in conf under
// keys 'css.default.<property>' replace the built-in defaults; they are
// written in CSS syntax, e.g. "#333" for key 'css.default.color'.
// conf may be nil.
func NewUADefaults(conf schuko.Configuration) (*UADefaults, error) {
	ua := &UADefaults{values: make(map[style.PropertyID]computed.Value)}
	for _, d := range uaDefaults {
		value := d.value
		if conf != nil && conf.IsSet(d.key) {
			value = conf.GetString(d.key)
		}
		v, err := ParseValue(d.id, value)
		if err != nil {
			return nil, fmt.Errorf("default for %s: %w", d.key, err)
		}
		ua.values[d.id] = v
	}
	return ua, nil
}

// DefaultForProperty is part of interface DefaultProvider.
func (ua *UADefaults) DefaultForProperty(id style.PropertyID) (computed.Value, error) {
	if v, ok := ua.values[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingDefault, id)
}

// ParseValue parses a value in CSS syntax for property id into a computed
// value. Generic keywords are not allowed.
func ParseValue(id style.PropertyID, value string) (computed.Value, error) {
	st := bytecode.NewStringTable()
	buf := bytecode.NewBuffer(16)
	span, err := compile.New(st).CompileDeclaration(compile.Declaration{Property: id.String(), Value: value}, buf)
	if err != nil {
		return nil, err
	}
	c := buf.Block(span).Cursor()
	opv, err := c.ReadOPV()
	if err != nil {
		return nil, err
	}
	if opv.HasFlagValue() {
		return nil, fmt.Errorf("%s: generic keyword %s not allowed here", id, opv.FlagValue())
	}
	return readValue(id, opv.Value(), c, st)
}
