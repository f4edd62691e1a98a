package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitStatus(t *testing.T) {
	t.Setenv("CAMO_OUTPUT", t.TempDir())
	var stdout bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout))
	assert.Equal(t, 2, run([]string{"-unknown"}, &stdout))
	assert.Equal(t, 1, run([]string{"-white", "not-a-color", "mask.png"}, &stdout))
	assert.Equal(t, 1, run([]string{"-preset", "no-such-preset", "mask.png"}, &stdout))

	// Processing fails on a texture that does not exist.
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "absent.png")}, &stdout))
	assert.Empty(t, stdout.String())
}
