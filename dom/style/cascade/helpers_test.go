package cascade

import (
	"testing"

	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/compile"
	"github.com/stretchr/testify/require"
)

// sheet compiles declarations for tests, numbering them in document order.
type sheet struct {
	compiler *compile.Compiler
	buf      *bytecode.Buffer
	order    uint32
}

func newSheet() *sheet {
	return &sheet{compiler: compile.New(nil), buf: bytecode.NewBuffer(256)}
}

func (s *sheet) decl(t *testing.T, origin Origin, spec Specificity, prop, value string) Declaration {
	t.Helper()
	span, err := s.compiler.CompileDeclaration(compile.Declaration{Property: prop, Value: value}, s.buf)
	require.NoError(t, err, "%s: %s", prop, value)
	s.order++
	return Declaration{
		Code:     s.buf.Block(span),
		Priority: Priority{Origin: origin, Specificity: spec, Order: s.order},
	}
}

func (s *sheet) author(t *testing.T, prop, value string) Declaration {
	return s.decl(t, OriginAuthor, MakeSpecificity(0, 0, 1), prop, value)
}

func (s *sheet) env(t *testing.T) Env {
	t.Helper()
	ua, err := NewUADefaults(nil)
	require.NoError(t, err)
	return Env{Strings: s.compiler.Strings(), Defaults: ua}
}
