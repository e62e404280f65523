package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingT struct {
	*testing.T

	buff bytes.Buffer
}

func (t *recordingT) Logf(msg string, args ...any) {
	fmt.Fprintf(&t.buff, msg+"\n", args...)
}

func TestWriter(t *testing.T) {
	t.Parallel()

	rec := recordingT{T: t}
	w := Writer(&rec)

	io.WriteString(w, "hello\n")
	io.WriteString(w, "world")

	assert.Equal(t, "hello\nworld\n", rec.buff.String())
}
