package kenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomix-k/gomix-k/value"
)

func TestGetSet_GlobalFrame(t *testing.T) {
	s := NewStack()
	s.Set("x", value.Int{I: 5})
	v, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{I: 5}, v)
}

func TestGet_UnknownNameIsMiss(t *testing.T) {
	s := NewStack()
	_, ok := s.Get("nosuch")
	assert.False(t, ok)
}

func TestPushPop_LocalFrameShadowsGlobal(t *testing.T) {
	s := NewStack()
	s.Set("x", value.Int{I: 1})

	s.Push()
	s.Set("x", value.Int{I: 2})
	v, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{I: 2}, v)

	s.Pop()
	v, ok = s.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{I: 1}, v)
}

func TestGet_LocalFrameFallsBackToGlobalOnly(t *testing.T) {
	s := NewStack()
	s.Set("g", value.Int{I: 9})

	s.Push()
	v, ok := s.Get("g")
	require.True(t, ok)
	assert.Equal(t, value.Int{I: 9}, v)
	s.Pop()
}

func TestGet_DoesNotSkipToIntermediateFrame(t *testing.T) {
	s := NewStack()
	s.Push() // frame 1
	s.Set("mid", value.Int{I: 1})
	s.Push() // frame 2, current
	_, ok := s.Get("mid")
	assert.False(t, ok, "lambda calls don't capture an enclosing frame, only the global one")
	s.Pop()
	s.Pop()
}

func TestSetGlobal_ReachableFromAnyFrame(t *testing.T) {
	s := NewStack()
	s.Push()
	s.SetGlobal("top", value.Int{I: 42})
	v, ok := s.Get("top")
	require.True(t, ok)
	assert.Equal(t, value.Int{I: 42}, v)
	s.Pop()

	v, ok = s.Get("top")
	require.True(t, ok)
	assert.Equal(t, value.Int{I: 42}, v)
}

func TestPop_PanicsOnGlobalFrame(t *testing.T) {
	s := NewStack()
	assert.Panics(t, func() { s.Pop() })
}

func TestDepth(t *testing.T) {
	s := NewStack()
	assert.Equal(t, 1, s.Depth())
	s.Push()
	assert.Equal(t, 2, s.Depth())
	s.Pop()
	assert.Equal(t, 1, s.Depth())
}

func TestSnapshot_ReflectsCurrentFrame(t *testing.T) {
	s := NewStack()
	s.Set("a", value.Int{I: 1})
	snap := s.Snapshot()
	assert.Equal(t, value.Int{I: 1}, snap["a"])
}
