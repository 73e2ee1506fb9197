// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FuncAdapter turns a closure into a Func.
func TestFuncAdapter(t *testing.T) {
	double := FuncAdapter[int, int](func(ctx context.Context, input int) (int, error) {
		return input * 2, nil
	})

	res, err := double.Call(context.Background(), 21)

	require.NoError(t, err)
	assert.Equal(t, 42, res)
}

// Compose2 feeds op1's output into op2 and short-circuits on error.
func TestCompose2(t *testing.T) {
	itoa := FuncAdapter[int, string](func(ctx context.Context, input int) (string, error) {
		return strconv.Itoa(input), nil
	})
	failing := FuncAdapter[int, string](func(ctx context.Context, input int) (string, error) {
		return "", errors.New("mocked op1 failure")
	})
	secondCalled := false
	length := FuncAdapter[string, int](func(ctx context.Context, input string) (int, error) {
		secondCalled = true
		return len(input), nil
	})

	t.Run("success flows through", func(t *testing.T) {
		res, err := Compose2[int, string, int](itoa, length).Call(context.Background(), 1234)
		require.NoError(t, err)
		assert.Equal(t, 4, res)
	})

	t.Run("op1 error short-circuits", func(t *testing.T) {
		secondCalled = false
		_, err := Compose2[int, string, int](failing, length).Call(context.Background(), 1234)
		require.Error(t, err)
		assert.False(t, secondCalled)
	})
}

// Compose3 chains three operations left to right.
func TestCompose3(t *testing.T) {
	incr := FuncAdapter[int, int](func(ctx context.Context, input int) (int, error) {
		return input + 1, nil
	})

	res, err := Compose3[int, int, int, int](incr, incr, incr).Call(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 3, res)
}

// Apply curries a fixed input so the pipeline starts from Unit.
func TestApply(t *testing.T) {
	itoa := FuncAdapter[int, string](func(ctx context.Context, input int) (string, error) {
		return strconv.Itoa(input), nil
	})

	res, err := Apply[int, string](itoa, 42).Call(context.Background(), Unit{})

	require.NoError(t, err)
	assert.Equal(t, "42", res)
}

// ConstFunc lifts a pure value and never fails.
func TestConstFunc(t *testing.T) {
	res, err := ConstFunc("hello").Call(context.Background(), Unit{})

	require.NoError(t, err)
	assert.Equal(t, "hello", res)
}

// NewKindFunc injects a configuration into a pipeline.
func TestNewKindFunc(t *testing.T) {
	kind := TCP{Host: "1.1.1.1", Port: 443}

	res, err := NewKindFunc(kind).Call(context.Background(), Unit{})

	require.NoError(t, err)
	assert.Equal(t, Kind(kind), res)
}
