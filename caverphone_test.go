package soundex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var caverphoneTests = []soundexTest{
	{"mayer", "MA11111111"},
	{"meier", "MA11111111"},
	{"Henrichsen", "ANRKSN1111"},
	{"Henricsson", "ANRKSN1111"},
	{"Henriksson", "ANRKSN1111"},
	{"Hinrichsen", "ANRKSN1111"},
	{"Stevenson", "STFNSN1111"},
	{"Peter", "PTA1111111"},
	{"Karleen,", "KLN1111111"},
	{"Thompson", "TMPSN11111"},
	{"Whitlam", "WTLM111111"},
	{"", ""},
	{"42", ""},
}

func TestCaverphone(t *testing.T) {
	var enc Caverphone
	for _, tt := range caverphoneTests {
		assert.Equal(t, tt.out, enc.Encode(tt.in), "Caverphone Encode(%q)", tt.in)
	}
}

func TestCaverphoneFull(t *testing.T) {
	var enc Caverphone
	for _, tt := range []soundexTest{
		{"Thompson", "TMPSN"},
		{"Peter", "PTA"},
		{"mayer", "MA"},
		{"", ""},
	} {
		assert.Equal(t, tt.out, enc.EncodeFull(tt.in), "Caverphone EncodeFull(%q)", tt.in)
	}
}
