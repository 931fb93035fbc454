package codegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func TestFormat(t *testing.T) {
	g := New()
	assert.Equal(t, "EMP000001", g.Format("EMP", 1))
	assert.Equal(t, "FIN000317", g.Format("FIN", 317))
	// The counter may outgrow the width without truncation.
	assert.Equal(t, "CUS1000000", g.Format("CUS", 1000000))
}

func TestNext_StartsAfterSeed(t *testing.T) {
	g := New()
	code, err := g.Next(context.Background(), "EMP", 41, never)
	require.NoError(t, err)
	assert.Equal(t, "EMP000042", code)
}

func TestNext_SkipsTakenCodes(t *testing.T) {
	g := New()
	taken := map[string]bool{
		"PRJ000001": true,
		"PRJ000002": true,
	}
	exists := func(ctx context.Context, code string) (bool, error) {
		return taken[code], nil
	}

	code, err := g.Next(context.Background(), "PRJ", 0, exists)
	require.NoError(t, err)
	assert.Equal(t, "PRJ000003", code)
}

func TestNext_Exhaustion(t *testing.T) {
	g := New()
	always := func(ctx context.Context, code string) (bool, error) {
		return true, nil
	}

	_, err := g.Next(context.Background(), "DOC", 0, always)
	assert.ErrorIs(t, err, ErrExhausted)
}
