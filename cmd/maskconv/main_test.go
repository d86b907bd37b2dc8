package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/maskconv/internal/nn"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "maskconv "+version+"\n", out.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"train"}, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Commands:")
}

func TestRun_Mask(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"mask", "-k", "3", "-in", "2", "-out", "2", "-type", "b", "-groups", "2"}, &out))

	s := out.String()
	assert.Contains(t, s, "mask b, groups=2, shape=[3 2 2]")
	assert.Contains(t, s, "tap 0: 4/4 open")
	assert.Contains(t, s, "tap 1: 3/4 open")
	assert.Contains(t, s, "tap 2: 0/4 open")
	// input group 1 is hidden from output group 0
	assert.Contains(t, s, "    0: 1 1\n")
	assert.Contains(t, s, "    1: . 1\n")
}

func TestRun_MaskInvalidGroups(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"mask", "-in", "4", "-out", "6", "-groups", "4"}, &out)
	assert.ErrorIs(t, err, nn.ErrInvalidMask)
}

func TestRun_Layer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"run", "-k", "3", "-in", "4", "-out", "8", "-type", "b", "-groups", "2",
		"-batch", "2", "-width", "10", "-weightnorm", "-seed", "7"}, &out))

	s := out.String()
	assert.Contains(t, s, "input:   [2 10 4]")
	assert.Contains(t, s, "output:  [2 10 8]")
	assert.Contains(t, s, "conv/Filters")
	assert.Contains(t, s, "conv/g")
	assert.Contains(t, s, "conv/Biases")
}

func TestRun_LayerStrided(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"run", "-stride", "2", "-nobias", "-width", "9"}, &out))

	s := out.String()
	assert.Contains(t, s, "output:  [2 5 8]")
	assert.NotContains(t, s, "conv/Biases")
}
