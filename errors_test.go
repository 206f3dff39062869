package chem

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(Te *testing.T) {
	err := NewError("MDL RXN", "bad counts", io.ErrUnexpectedEOF)
	assert.True(Te, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(Te, "bad counts", err.Message())
	assert.Equal(Te, []string{"readCounts", "Read"}, func() []string {
		err.Decorate("readCounts")
		return err.Decorate("Read")
	}())
	assert.Equal(Te, "MDL RXN: bad counts: unexpected EOF (readCounts < Read)", err.Error())
	assert.False(Te, Errorf("x", "y %d", 1).NonCritical().Critical())
}

func TestDecorate(Te *testing.T) {
	assert.Nil(Te, Decorate(nil, "XYZ", "Read"))
	plain := errors.New("plain")
	err := Decorate(plain, "XYZ", "Read")
	var e Error
	assert.ErrorAs(Te, err, &e)
	assert.Equal(Te, "XYZ", e.Format())
	assert.True(Te, errors.Is(err, plain))
	ours := Errorf("HIN", "oops")
	assert.Same(Te, ours, Decorate(ours, "XYZ", "Read"))
	assert.Equal(Te, []string{"Read"}, ours.Decorate(""))
	assert.Equal(Te, "HIN", ours.Format())
}

func TestParseMode(Te *testing.T) {
	assert.Equal(Te, Strict, ParseMode(" STRICT "))
	assert.Equal(Te, Relaxed, ParseMode("whatever"))
	assert.Equal(Te, "strict", Strict.String())
}
