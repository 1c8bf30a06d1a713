package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	console := &Console{Output: out}

	for _, value := range []byte{8, 0, 255, 120} {
		assert.NoError(console.Print(value))
	}

	assert.Equal("8\n0\n255\n120\n", out.String())
}

func TestConsole_NoOutput(t *testing.T) {
	assert := assert.New(t)

	console := &Console{}
	assert.ErrorIs(console.Print(1), ErrConsoleOutput)
}
