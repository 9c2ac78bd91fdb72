package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("value cannot be negative")

type testConfig struct {
	BufferSize int
	Flags      uint8
	LastCall   string
}

func (tc *testConfig) setBufferSize(v int) error {
	if v < 0 {
		return errNegative
	}
	tc.BufferSize = v
	tc.LastCall = "setBufferSize"

	return nil
}

func (tc *testConfig) setFlags(f uint8) {
	tc.Flags = f
	tc.LastCall = "setFlags"
}

func withBufferSize(v int) Option[*testConfig] {
	return Named("withBufferSize", func(c *testConfig) error {
		return c.setBufferSize(v)
	})
}

func withFlags(f uint8) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.setFlags(f)
	})
}

func TestOption_New(t *testing.T) {
	config := &testConfig{}

	t.Run("applies value", func(t *testing.T) {
		opt := New(func(c *testConfig) error { return c.setBufferSize(42) })
		require.NoError(t, opt.apply(config))
		require.Equal(t, 42, config.BufferSize)
	})

	t.Run("propagates errors unchanged", func(t *testing.T) {
		opt := New(func(c *testConfig) error { return c.setBufferSize(-1) })
		err := opt.apply(config)
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, errNegative.Error(), err.Error())
	})
}

func TestOption_Named(t *testing.T) {
	err := withBufferSize(-1).apply(&testConfig{})
	require.ErrorIs(t, err, errNegative)
	require.Equal(t, "withBufferSize: value cannot be negative", err.Error())

	require.NoError(t, withBufferSize(8).apply(&testConfig{}))
}

func TestOption_NoError(t *testing.T) {
	config := &testConfig{}
	require.NoError(t, withFlags(3).apply(config))
	require.Equal(t, uint8(3), config.Flags)
	require.Equal(t, "setFlags", config.LastCall)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		config := &testConfig{}
		err := Apply(config, withBufferSize(10), withFlags(1), nil, withBufferSize(20))
		require.NoError(t, err)
		require.Equal(t, 20, config.BufferSize)
		require.Equal(t, uint8(1), config.Flags)
		require.Equal(t, "setBufferSize", config.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		config := &testConfig{}
		err := Apply(config, withBufferSize(5), withBufferSize(-1), withFlags(7))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 5, config.BufferSize)
		require.Zero(t, config.Flags)
	})

	t.Run("empty options", func(t *testing.T) {
		config := &testConfig{}
		require.NoError(t, Apply(config))
		require.Equal(t, testConfig{}, *config)
	})
}
