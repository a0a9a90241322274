package records

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/ferry"
)

var blockSizes = []int{1, 2, 3, 7, 64, 4096}

func scenario() TestStruct {
	arr := []Inner{{Dummy: 1111}, {Dummy: 2222}, {Dummy: 3333}}
	return TestStruct{
		A:   32,
		B:   45.678,
		C:   -23,
		N:   3,
		Arr: arr,
		P:   &arr[1],
		Np:  nil,
		Inl: Inner{Dummy: 5678},
		E:   ColorSecond,
		S:   "a\"b\nc",
	}
}

type codec[T any] struct {
	name   string
	encode func(ferry.Config, ferry.BlockFunc, *T) (int, error)
	decode func(ferry.Config, ferry.BlockFunc, *T, []byte) error
}

func testStructCodecs() []codec[TestStruct] {
	return []codec[TestStruct]{
		{"binary", EncodeTestStruct, DecodeTestStruct},
		{"text", EncodeTestStructText, DecodeTestStructText},
	}
}

func packetCodecs() []codec[Packet] {
	return []codec[Packet]{
		{"binary", EncodePacket, DecodePacket},
		{"text", EncodePacketText, DecodePacketText},
	}
}

// roundtrip encodes want with one block size and decodes it into an arena
// of exactly the reported budget.
func roundtrip[T any](t *testing.T, c codec[T], size int, want *T) (T, int) {
	t.Helper()
	cfg := ferry.Config{BlockSize: size}

	var wire []byte
	budget, err := c.encode(cfg, ferry.SliceSink(&wire, size), want)
	require.NoError(t, err, "%s encode, block size %d", c.name, size)

	var got T
	err = c.decode(cfg, ferry.BytesSource(wire), &got, make([]byte, budget))
	require.NoError(t, err, "%s decode, block size %d\n%s", c.name, size, wire)
	return got, budget
}

func TestScenarioRoundtrip(t *testing.T) {
	want := scenario()
	for _, c := range testStructCodecs() {
		for _, size := range blockSizes {
			got, budget := roundtrip(t, c, size, &want)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s, block size %d (-want +got):\n%s", c.name, size, diff)
			}
			assert.Nil(t, got.Np, "%s: absent optional stays nil", c.name)
			require.NotNil(t, got.P)
			assert.Equal(t, uint64(2222), got.P.Dummy)
			assert.Equal(t, ColorSecond, got.E)

			// three Inner elements, one optional Inner and "a\"b\nc" plus its terminator
			assert.Equal(t, 24+8+6, budget, "%s, block size %d", c.name, size)
		}
	}
}

func TestHeapBudgetIsExact(t *testing.T) {
	want := scenario()
	for _, c := range testStructCodecs() {
		cfg := ferry.Config{BlockSize: 5}
		var wire []byte
		budget, err := c.encode(cfg, ferry.SliceSink(&wire, 5), &want)
		require.NoError(t, err)

		var got TestStruct
		require.NoError(t, c.decode(cfg, ferry.BytesSource(wire), &got, make([]byte, budget)), c.name)

		err = c.decode(cfg, ferry.BytesSource(wire), &got, make([]byte, budget-1))
		assert.True(t, errors.Is(err, ferry.ErrArenaExhausted), "%s: got %v", c.name, err)
	}
}

func TestHeapBudgetFollowsAlignment(t *testing.T) {
	want := scenario()
	for _, align := range []int{1, 2, 4, 8} {
		cfg := ferry.Config{Align: align}
		var wire []byte
		budget, err := EncodeTestStruct(cfg, ferry.SliceSink(&wire, 16), &want)
		require.NoError(t, err)
		assert.Equal(t, cfg.Pad(24)+cfg.Pad(8)+cfg.Pad(6), budget, "align %d", align)

		var got TestStruct
		require.NoError(t, DecodeTestStruct(cfg, ferry.BytesSource(wire), &got, make([]byte, budget)))
		assert.Equal(t, want.S, got.S)
	}
}

func TestWireIsBlockSizeIndependent(t *testing.T) {
	want := scenario()
	for _, c := range testStructCodecs() {
		var reference []byte
		for _, size := range blockSizes {
			var wire []byte
			_, err := c.encode(ferry.Config{BlockSize: size}, ferry.SliceSink(&wire, size), &want)
			require.NoError(t, err)
			if reference == nil {
				reference = wire
				continue
			}
			assert.Equal(t, reference, wire, "%s, block size %d", c.name, size)
		}
	}
}

func TestBinaryLayout(t *testing.T) {
	v := TestStruct{A: 1, N: 1, Arr: []Inner{{Dummy: 2}}, Inl: Inner{Dummy: 3}, E: ColorThird, S: "x"}

	var wire []byte
	_, err := EncodeTestStruct(ferry.DefaultConfig(), ferry.SliceSink(&wire, 4096), &v)
	require.NoError(t, err)

	want := []byte{
		0, 0, 0, 1, // a
		0, 0, 0, 0, // b
		0, 0, // c
		0, 0, 0, 1, // n
		0, 0, 0, 0, 0, 0, 0, 2, // arr[0]
		0,                      // p absent
		0,                      // np absent
		0, 0, 0, 0, 0, 0, 0, 3, // inl
		0, 0, 0, 2, // e
		0, 0, 0, 1, 'x', // s
	}
	assert.Equal(t, want, wire)
}

func TestInnerText(t *testing.T) {
	var out []byte
	budget, err := EncodeInnerText(ferry.DefaultConfig(), ferry.SliceSink(&out, 3), &Inner{Dummy: 1111})
	require.NoError(t, err)
	assert.Equal(t, 0, budget)
	assert.Equal(t, "{\n\t\"dummy\": 1111\n}", string(out))
}

func TestScenarioText(t *testing.T) {
	want := scenario()
	var out bytes.Buffer
	_, err := EncodeTestStructText(ferry.DefaultConfig(), ferry.WriterSink(&out, 16), &want)
	require.NoError(t, err)

	text := out.String()
	for _, line := range []string{
		"\t\"a\": 32,\n",
		"\t\"b\": 45.678,\n",
		"\t\"c\": -23,\n",
		"\t\"arr\": [\n\t\t{\n\t\t\t\"dummy\": 1111\n\t\t},\n",
		"\t\"p?\": 1,\n\t\"p\": {\n\t\t\"dummy\": 2222\n\t},\n",
		"\t\"np?\": 0,\n",
		"\t\"e\": 1,\n",
		"\t\"s\": \"a\\\"b\\nc\"\n}",
	} {
		assert.Contains(t, text, line)
	}

	var got TestStruct
	require.NoError(t, DecodeTestStructText(ferry.DefaultConfig(), ferry.ReaderSource(&out), &got, make([]byte, 64)))
	assert.Equal(t, want.S, got.S)
}

func TestEscapedStrings(t *testing.T) {
	want := scenario()
	want.S = "quote\" backslash\\ slash/ nl\n cr\r tab\t bs\b ff\f and raw \x01 bytes"

	for _, c := range testStructCodecs() {
		for _, size := range []int{1, 4096} {
			got, _ := roundtrip(t, c, size, &want)
			assert.Equal(t, want.S, got.S, "%s, block size %d", c.name, size)
		}
	}
}

func TestEmptyArrayAndNoOptionals(t *testing.T) {
	want := TestStruct{A: 7, S: ""}
	for _, c := range testStructCodecs() {
		got, budget := roundtrip(t, c, 3, &want)
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s (-want +got):\n%s", c.name, diff)
		}
		assert.Equal(t, 2, budget, "%s: only the empty string terminator", c.name)
	}
}

func TestPacketPayloadLengths(t *testing.T) {
	weight := 0.25
	port := uint16(8080)
	payload := []byte("\x00\xffbase64 padding")

	for n := 0; n <= 8; n++ {
		want := Packet{
			Len:     uint16(n),
			Payload: payload[:n],
			Count:   2,
			Labels:  []string{"first", "sec:ond, [odd] {chars}"},
			Ok:      n%2 == 0,
			Stamp:   -1 << 40,
			Delta:   -128,
		}
		if n%3 == 1 {
			want.Weight = &weight
			want.Port = &port
		}

		for _, c := range packetCodecs() {
			for _, size := range []int{1, 5, 4096} {
				got, _ := roundtrip(t, c, size, &want)
				if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s, %d payload bytes, block size %d (-want +got):\n%s", c.name, n, size, diff)
				}
			}
		}
	}
}

func TestPacketBudget(t *testing.T) {
	weight := 1.5
	want := Packet{Len: 3, Payload: []byte("abc"), Count: 1, Labels: []string{"hey"}, Weight: &weight}

	for _, c := range packetCodecs() {
		_, budget := roundtrip(t, c, 4096, &want)
		// payload, one string header, "hey" plus terminator, one float64
		assert.Equal(t, 4+16+4+8, budget, c.name)
	}
}

func TestSizeFieldLargerThanSlice(t *testing.T) {
	v := scenario()
	v.N = 4
	for _, c := range testStructCodecs() {
		_, err := c.encode(ferry.DefaultConfig(), ferry.SliceSink(new([]byte), 64), &v)
		assert.True(t, errors.Is(err, ferry.ErrSize), "%s: got %v", c.name, err)
	}
}

func TestTruncatedInput(t *testing.T) {
	want := scenario()
	for _, c := range testStructCodecs() {
		var wire []byte
		budget, err := c.encode(ferry.DefaultConfig(), ferry.SliceSink(&wire, 64), &want)
		require.NoError(t, err)

		var got TestStruct
		err = c.decode(ferry.DefaultConfig(), ferry.BytesSource(wire[:len(wire)/2]), &got, make([]byte, budget))
		assert.True(t, errors.Is(err, ferry.ErrCallback), "%s: got %v", c.name, err)
	}
}

func TestMalformedText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad number", `{"a": 3x2,`},
		{"bad escape", `{"a": 1, "b": 2, "c": 3, "n": 0, "arr": [], "p?": 0, "np?": 0, "inl": {"dummy": 1}, "e": 0, "s": "\q"}`},
		{"enum out of range", `{"a": 1, "b": 2, "c": 3, "n": 0, "arr": [], "p?": 0, "np?": 0, "inl": {"dummy": 1}, "e": 99999999999, "s": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TestStruct
			err := DecodeTestStructText(ferry.DefaultConfig(), ferry.BytesSource([]byte(tt.text)), &got, make([]byte, 64))
			assert.True(t, errors.Is(err, ferry.ErrTextFormat), "got %v", err)
		})
	}
}

func TestTextDecodeToleratesLayout(t *testing.T) {
	text := strings.Join([]string{
		`{"a":32,"b":45.678,"c":-23,"n":3,`,
		`"arr":[{"dummy":1111},{"dummy":2222},{"dummy":3333},],`,
		`"p?":1,"p":{"dummy":2222},"np?":0,`,
		`"inl":{"dummy":5678},"e":1,"s":"a\"b\nc",}`,
	}, "\r\n   ")

	var got TestStruct
	require.NoError(t, DecodeTestStructText(ferry.DefaultConfig(), ferry.BytesSource([]byte(text)), &got, make([]byte, 38)))
	want := scenario()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCodecValue(t *testing.T) {
	want := scenario()
	var wire []byte
	budget, err := TestStructCodec.Encode(ferry.DefaultConfig(), ferry.SliceSink(&wire, 32), &want)
	require.NoError(t, err)

	var got TestStruct
	require.NoError(t, TestStructCodec.Decode(ferry.DefaultConfig(), ferry.BytesSource(wire), &got, make([]byte, budget)))
	assert.Equal(t, want.Inl, got.Inl)
}
