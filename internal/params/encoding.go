package params

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var boms = []struct {
	bom  []byte
	enc  encoding.Encoding
	name string
}{
	{[]byte{0xEF, 0xBB, 0xBF}, unicode.UTF8BOM, "utf-8-sig"},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), "utf-16le"},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), "utf-16be"},
}

// DetectEncoding picks a decoder for raw: a byte-order mark wins, valid UTF-8
// is taken as is, anything else is read as Windows-1252.
func DetectEncoding(raw []byte) (encoding.Encoding, string) {
	for _, b := range boms {
		if bytes.HasPrefix(raw, b.bom) {
			return b.enc, b.name
		}
	}
	if utf8.Valid(raw) {
		return unicode.UTF8, "utf-8"
	}
	return charmap.Windows1252, "windows-1252"
}

// Decode converts raw into UTF-8 text.
func Decode(raw []byte) (string, string, error) {
	enc, name := DetectEncoding(raw)
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", name, err
	}
	return string(out), name, nil
}
