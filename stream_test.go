package chem

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("cable unplugged") }

type closeCounter struct {
	io.Reader
	io.Writer
	n int
}

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestLineReader(Te *testing.T) {
	L := NewLineReader(strings.NewReader("one\r\ntwo\nthree"), "test")
	l, err := L.Next()
	require.NoError(Te, err)
	assert.Equal(Te, "one", l)
	l, _ = L.Next()
	assert.Equal(Te, "two", l)
	assert.Equal(Te, 2, L.LineNumber())
	L.Unread(l)
	assert.Equal(Te, 1, L.LineNumber())
	l, _ = L.Next()
	assert.Equal(Te, "two", l)
	l, err = L.Require("the last line")
	require.NoError(Te, err)
	assert.Equal(Te, "three", l)
	_, err = L.Next()
	assert.Equal(Te, io.EOF, err)
	_, err = L.Require("a fourth line")
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "a fourth line")
	assert.Contains(Te, L.Errorf("bad %s", "thing").Error(), "test: line 3: bad thing")
}

func TestLineReaderErrors(Te *testing.T) {
	L := NewLineReader(brokenReader{}, "test")
	_, err := L.Next()
	require.Error(Te, err)
	var e Error
	require.ErrorAs(Te, err, &e)
	assert.Equal(Te, "test", e.Format())
	assert.True(Te, e.Critical())
	assert.Contains(Te, err.Error(), "cable unplugged")

	c := &closeCounter{Reader: strings.NewReader("x\n")}
	L = NewLineReader(c, "test")
	assert.Error(Te, L.Skip(2, "lines"))
	require.NoError(Te, L.Close())
	require.NoError(Te, L.Close())
	assert.Equal(Te, 1, c.n)
	_, err = L.Next()
	assert.Error(Te, err)
}

func TestSink(Te *testing.T) {
	var buf bytes.Buffer
	c := &closeCounter{Writer: &buf}
	S := NewSink(c, "test")
	S.Printf("%3d", 7)
	S.Line("!")
	_, err := S.Write([]byte("raw\n"))
	require.NoError(Te, err)
	require.NoError(Te, S.Close())
	require.NoError(Te, S.Close())
	assert.Equal(Te, "  7!\nraw\n", buf.String())
	assert.Equal(Te, 1, c.n)
	S.Line("late")
	assert.Error(Te, S.Err())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSinkStickyError(Te *testing.T) {
	S := NewSink(brokenWriter{}, "test")
	S.Line(strings.Repeat("x", 10000))
	S.Line("more")
	err := S.Flush()
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "disk full")
	var e *FormatError
	assert.ErrorAs(Te, err, &e)
}
