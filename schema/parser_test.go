package schema

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	src := `Inner {
	uint64 dummy;
}

Test {
	uint32 n;
	Inner arr[n];
	Inner *p;
	Inner* np;
	Color %e;
	Color% e2;
	uint8 blob( n );
}
`
	got, err := Collect("test.fsch", strings.NewReader(src))
	require.NoError(t, err)

	want := []*Record{
		{Name: "Inner", File: "test.fsch", Line: 1, Fields: []Field{
			{Name: "dummy", Type: "uint64", Kind: Scalar, Line: 2},
		}},
		{Name: "Test", File: "test.fsch", Line: 5, Fields: []Field{
			{Name: "n", Type: "uint32", Kind: Scalar, Line: 6},
			{Name: "arr", Type: "Inner", Kind: Array, SizeField: "n", Line: 7},
			{Name: "p", Type: "Inner", Kind: Optional, Line: 8},
			{Name: "np", Type: "Inner", Kind: Optional, Line: 9},
			{Name: "e", Type: "Color", Kind: Enum, Line: 10},
			{Name: "e2", Type: "Color", Kind: Enum, Line: 11},
			{Name: "blob", Type: "uint8", Kind: Buffer, SizeField: "n", Line: 12},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCompactLayout(t *testing.T) {
	got, err := Collect("compact", strings.NewReader("A{uint8 n;uint8 b[n];}B{A*a;}"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []Field{
		{Name: "n", Type: "uint8", Line: 1},
		{Name: "b", Type: "uint8", Kind: Array, SizeField: "n", Line: 1},
	}, got[0].Fields)
	assert.Equal(t, []Field{{Name: "a", Type: "A", Kind: Optional, Line: 1}}, got[1].Fields)
}

func TestParseEmptyInput(t *testing.T) {
	got, err := Collect("empty", strings.NewReader(" \n\t\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"mismatched brackets", "A {\n uint8 n;\n uint8 b[n);\n}", 3, "opened with"},
		{"mismatched parens", "A {\n uint8 n;\n uint8 b(n];\n}", 3, "opened with"},
		{"unclosed size", "A {\n uint8 b[n;\n}", 2, "missing"},
		{"missing record name", "\n{ uint8 a; }", 2, "missing record name"},
		{"missing field name", "A {\n\n uint32 ;\n}", 3, "missing field name"},
		{"missing type", "A {\n ;\n}", 2, "expecting field type"},
		{"missing size field", "A {\n uint8 b[];\n}", 2, "missing size field"},
		{"missing semicolon", "A {\n uint8 a }", 2, "unexpected '}'"},
		{"junk after size", "A {\n uint8 n;\n uint8 b[n] x;\n}", 3, "expecting ';'"},
		{"leading digit", "A {\n uint8 1a;\n}", 2, "cannot start with digit"},
		{"embedded space in record name", "Foo Bar {\n}", 1, "unexpected identifier"},
		{"embedded space in field name", "A {\n uint8 a b;\n}", 2, "unexpected identifier"},
		{"double marker", "A {\n B** p;\n}", 2, "misplaced"},
		{"optional array", "A {\n uint8 n;\n B* p[n];\n}", 3, "cannot also be sized"},
		{"bad character", "A {\n uint8 a-b;\n}", 2, "unexpected '-'"},
		{"unterminated record", "A {\n uint8 a;\n", 3, "unexpected end of input"},
		{"dangling name", "A {\n}\nB", 3, "unexpected end of input"},
		{"stray close", "}", 1, "expecting record name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect("bad.fsch", strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, "bad.fsch", se.File)
			assert.Equal(t, tt.line, se.Line)
			assert.Contains(t, se.Msg, tt.msg)
		})
	}
}

type failingHandler struct {
	Collector
	err error
}

func (h *failingHandler) Field(*Record, Field) error { return h.err }

func TestParseStopsOnHandlerError(t *testing.T) {
	boom := errors.New("handler refused")
	h := &failingHandler{err: boom}
	err := ParseBytes("h", []byte("A { uint8 a; uint8 b; }"), h)
	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, h.Records)
}

func TestRecordField(t *testing.T) {
	r := &Record{Fields: []Field{{Name: "a"}, {Name: "b"}}}
	f, i, ok := r.Field("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "b", f.Name)

	_, _, ok = r.Field("c")
	assert.False(t, ok)
}

func FuzzParse(f *testing.F) {
	f.Add("A { uint32 a; }")
	f.Add("A { uint8 n; B b[n]; uint8 c(n); B* p; C %e; }")
	f.Add("A {")
	f.Add("A { uint8 b[n); }")

	f.Fuzz(func(t *testing.T, src string) {
		recs, err := Collect("fuzz", strings.NewReader(src))
		if err != nil {
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("non-syntax error: %v", err)
			}
			return
		}
		for _, r := range recs {
			if r.Name == "" {
				t.Fatalf("record without a name in %q", src)
			}
			for _, f := range r.Fields {
				if f.Name == "" || f.Type == "" {
					t.Fatalf("incomplete field %+v in %q", f, src)
				}
				if f.Sized() != (f.SizeField != "") {
					t.Fatalf("size field mismatch on %+v in %q", f, src)
				}
			}
		}
	})
}
