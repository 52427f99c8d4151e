package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"cosmos-server/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_System(t *testing.T) {
	var first, second bytes.Buffer
	args := []string{"-seed", "default", "-x", "2", "-y", "-1"}

	require.NoError(t, run(context.Background(), args, &first, io.Discard))
	require.NoError(t, run(context.Background(), args, &second, io.Discard))
	assert.Equal(t, first.String(), second.String())

	var sys system.StarSystem
	require.NoError(t, json.Unmarshal(first.Bytes(), &sys))
	assert.NoError(t, system.Validate(&sys))
}

func TestRun_Universe(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-preset", "default", "-what", "universe"}, &out, io.Discard))

	var u map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &u))
	assert.Equal(t, "default", u["seed"])
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	assert.Error(t, run(ctx, []string{"-what", "nebula"}, io.Discard, io.Discard))
	assert.Error(t, run(ctx, []string{"-preset", "andromeda"}, io.Discard, io.Discard))
	assert.Error(t, run(ctx, []string{"-seed", "x", "-z", "100000"}, io.Discard, io.Discard))
	assert.Error(t, run(ctx, []string{"-bogus"}, io.Discard, io.Discard))
}
