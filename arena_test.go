package ferry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	tests := []struct {
		align, n, want int
	}{
		{2, 0, 0},
		{2, 1, 2},
		{2, 2, 2},
		{2, 3, 4},
		{4, 5, 8},
		{8, 8, 8},
		{1, 7, 7},
	}
	for _, tt := range tests {
		cfg := Config{Align: tt.align}
		assert.Equal(t, tt.want, cfg.Pad(tt.n), "Pad(%d) with align %d", tt.n, tt.align)
	}

	assert.Equal(t, 4, Config{}.Pad(3), "zero config pads to the default alignment")
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{}.Validate())
	require.NoError(t, DefaultConfig().Validate())
	require.Error(t, Config{BlockSize: -1}.Validate())
	require.Error(t, Config{Align: -2}.Validate())
}

func TestArenaAllocFromTop(t *testing.T) {
	buf := make([]byte, 10)
	a := NewArena(DefaultConfig(), buf)

	b, err := a.Alloc(3)
	require.NoError(t, err)
	assert.Len(t, b, 3)
	assert.Equal(t, 6, a.Remaining())
	assert.Equal(t, 4, a.Used())
	assert.Same(t, &buf[6], &b[0], "first allocation sits at the high end")

	c, err := a.Alloc(2)
	require.NoError(t, err)
	assert.Same(t, &buf[4], &c[0])

	z, err := a.Alloc(0)
	require.NoError(t, err)
	assert.Nil(t, z)
	assert.Equal(t, 4, a.Remaining())
}

func TestArenaExhaustedLeavesArenaUntouched(t *testing.T) {
	a := NewArena(DefaultConfig(), make([]byte, 6))
	_, err := a.Alloc(4)
	require.NoError(t, err)

	_, err = a.Alloc(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArenaExhausted))
	assert.Equal(t, 2, a.Remaining())

	_, err = a.Alloc(2)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Remaining())
}

func TestArenaNegativeAlloc(t *testing.T) {
	a := NewArena(DefaultConfig(), make([]byte, 6))
	_, err := a.Alloc(-1)
	assert.True(t, errors.Is(err, ErrSize))
}

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func TestCollectorRestoresOrder(t *testing.T) {
	for _, align := range []int{1, 2, 3, 4, 8} {
		for n := 0; n <= 20; n++ {
			want := alphabet[:n]
			cfg := Config{Align: align}
			buf := make([]byte, cfg.Pad(n+1)+align)
			a := NewArena(cfg, buf)

			col := a.collect()
			for i := 0; i < n; i++ {
				require.NoError(t, col.WriteByte(want[i]))
			}
			got, err := col.finish()
			require.NoError(t, err)

			assert.Equal(t, want, string(got), "align %d, %d bytes", align, n)
			assert.Equal(t, cfg.Pad(n+1), a.Used(), "align %d, %d bytes", align, n)
			end := a.Remaining() + len(got)
			assert.Equal(t, byte(0), buf[end], "terminator, align %d, %d bytes", align, n)
		}
	}
}

func TestCollectorExhausted(t *testing.T) {
	a := NewArena(DefaultConfig(), make([]byte, 4))
	col := a.collect()
	for _, c := range []byte("abcd") {
		require.NoError(t, col.WriteByte(c))
	}
	_, err := col.finish()
	assert.True(t, errors.Is(err, ErrArenaExhausted))
}
