package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDFParser_ExtractTextFromBytes_Garbage(t *testing.T) {
	p := NewPDFParserService()

	for _, data := range [][]byte{nil, []byte("hello"), []byte("%PDF-1.4\ntruncated")} {
		_, err := p.ExtractTextFromBytes(data)
		assert.ErrorIs(t, err, ErrUnreadablePDF)
	}
}

func TestPDFParser_ExtractText_MissingFile(t *testing.T) {
	_, err := NewPDFParserService().ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
