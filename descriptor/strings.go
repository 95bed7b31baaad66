package descriptor

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"

	"github.com/pschatzmann/usbdesc/pkg"
)

// MaxStringLength is the maximum number of characters encoded into a
// string descriptor; longer strings are truncated.
const MaxStringLength = 31

// StringTable holds the device's string descriptors as an ordered,
// 1-indexed list. Indices are assigned in insertion order, never reused,
// and stable for the process lifetime. Index 0 denotes the language-id
// record, not a table entry. Duplicate strings are not deduplicated.
//
// The wire encoding of every entry is computed once at Add time, so
// Descriptor results are stable across calls and safe to hand out
// repeatedly. Callers must not modify the returned bytes.
type StringTable struct {
	entries  []stringEntry
	language [4]byte
}

type stringEntry struct {
	text    string
	encoded []byte
}

// NewStringTable creates an empty string table with the US English
// language record.
func NewStringTable() *StringTable {
	t := &StringTable{}
	t.SetLanguage(LangIDUSEnglish)
	return t
}

// SetLanguage sets the language id encoded in the index-0 record.
func (t *StringTable) SetLanguage(id uint16) {
	t.language[0] = 4
	t.language[1] = TypeString
	binary.LittleEndian.PutUint16(t.language[2:], id)
}

// Add appends the string and returns its 1-based index. Each call yields
// a new index, even for identical text.
func (t *StringTable) Add(s string) int {
	t.entries = append(t.entries, stringEntry{text: s, encoded: encodeString(s)})
	index := len(t.entries)
	pkg.LogDebug(pkg.ComponentStrings, "string added", "index", index, "text", s)
	return index
}

// Get returns the text stored at the given 1-based index.
func (t *StringTable) Get(index int) (string, error) {
	if index < 1 || index > len(t.entries) {
		return "", pkg.ErrNotFound
	}
	return t.entries[index-1].text, nil
}

// Len returns the number of table entries, excluding the language record.
func (t *StringTable) Len() int {
	return len(t.entries)
}

// Descriptor returns the string descriptor record for the given index in
// the wire format [length][0x03][utf16le code units...]. Index 0 returns
// the fixed 4-byte language record. The returned bytes are shared; do
// not modify.
func (t *StringTable) Descriptor(index int) ([]byte, error) {
	if index == 0 {
		return t.language[:], nil
	}
	if index < 1 || index > len(t.entries) {
		return nil, pkg.ErrNotFound
	}
	return t.entries[index-1].encoded, nil
}

// Reset drops all entries. The language record is retained and indices
// restart at 1.
func (t *StringTable) Reset() {
	t.entries = nil
}

// encodeString produces the string descriptor wire format, truncating
// text longer than MaxStringLength characters.
func encodeString(s string) []byte {
	runes := []rune(s)
	if len(runes) > MaxStringLength {
		runes = runes[:MaxStringLength]
	}
	units := utf16.Encode(runes)

	buf := make([]byte, 2+len(units)*2)
	buf[0] = uint8(len(buf))
	buf[1] = TypeString
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2+i*2:], u)
	}
	return buf
}

// DecodeString decodes a string descriptor record back to UTF-8 text.
func DecodeString(desc []byte) (string, error) {
	if len(desc) < 2 {
		return "", pkg.ErrDescriptorTooShort
	}
	if desc[1] != TypeString {
		return "", pkg.ErrDescriptorTypeMismatch
	}
	length := int(desc[0])
	if length < 2 || length > len(desc) || length%2 != 0 {
		return "", pkg.ErrMalformedDescriptor
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	text, err := decoder.Bytes(desc[2:length])
	if err != nil {
		return "", pkg.ErrMalformedDescriptor
	}
	return string(text), nil
}

// EqualDescriptors reports whether two string descriptor records are
// equal: same declared length and identical bytes over that length.
func EqualDescriptors(a, b []byte) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	if a[0] != b[0] {
		return false
	}
	length := int(a[0])
	if length > len(a) || length > len(b) {
		return false
	}
	return bytes.Equal(a[:length], b[:length])
}
