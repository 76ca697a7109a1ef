package soundex

import (
	"regexp"
	"strings"
)

// Caverphone is an Encoder for the Caverphone algorithm
// (http://caversham.otago.ac.nz/files/working/ctp150804.pdf), an alternate
// phonetic table tuned for New Zealand accents. Encode returns the
// conventional 10-character code padded with '1'; EncodeFull returns the
// unpadded rule-chain output. The zero value is ready to use.
type Caverphone struct{}

const caverphoneLen = 10

func (Caverphone) Encode(text string) string {
	code := caverphone(text)
	if code == "" {
		return ""
	}
	for len(code) < caverphoneLen {
		code += "1"
	}
	return code[:caverphoneLen]
}

func (Caverphone) EncodeFull(text string) string {
	return caverphone(text)
}

var (
	caverStrip = regexp.MustCompile(`[^a-z]`)
	caverOugh  = regexp.MustCompile(`^([crt]|en|tr)ough`)

	// Runs of these consonants collapse to a single uppercase letter,
	// which marks them as final output.
	caverRuns = func() []*regexp.Regexp {
		var rs []*regexp.Regexp
		for _, c := range "stpkfmn" {
			rs = append(rs, regexp.MustCompile(string(c)+"+"))
		}
		return rs
	}()
)

// Ordered consonant rewrites applied before vowel marking. Order matters:
// the c and t digraphs must go before the bare c→k and d→t rules.
var caverRewrites = [][2]string{
	{"cq", "2q"},
	{"ci", "si"},
	{"ce", "se"},
	{"cy", "sy"},
	{"tch", "2ch"},
	{"c", "k"},
	{"q", "k"},
	{"x", "k"},
	{"v", "f"},
	{"dg", "2g"},
	{"tio", "sio"},
	{"tia", "sia"},
	{"d", "t"},
	{"ph", "fh"},
	{"b", "p"},
	{"sh", "s2"},
	{"z", "s"},
}

// caverphone runs the Caverphone rule chain: lowercase letters only, a
// fixed sequence of context rewrites, vowels marked as '3', discardable
// letters marked as '2', then both markers stripped. Uppercase letters in
// the working string are already final.
func caverphone(text string) string {
	s := caverStrip.ReplaceAllString(strings.ToLower(text), "")
	if s == "" {
		return ""
	}

	if m := caverOugh.FindStringSubmatch(s); m != nil {
		s = m[1] + "ou2f" + s[len(m[0]):]
	}
	if strings.HasPrefix(s, "gn") {
		s = "2n" + s[2:]
	}
	if strings.HasSuffix(s, "mb") {
		s = s[:len(s)-1] + "2"
	}

	for _, r := range caverRewrites {
		s = strings.ReplaceAll(s, r[0], r[1])
	}

	if strings.IndexByte("aeiou", s[0]) >= 0 {
		s = "A" + s[1:]
	}
	for _, v := range []string{"a", "i", "u", "e", "o"} {
		s = strings.ReplaceAll(s, v, "3")
	}

	s = strings.ReplaceAll(s, "j", "y")
	if strings.HasPrefix(s, "y3") {
		s = "Y" + s[1:]
	} else if strings.HasPrefix(s, "y") {
		s = "A" + s[1:]
	}
	s = strings.ReplaceAll(s, "y", "3")

	s = strings.ReplaceAll(s, "3gh3", "3kh3")
	s = strings.ReplaceAll(s, "gh", "22")
	s = strings.ReplaceAll(s, "g", "k")

	for _, re := range caverRuns {
		s = re.ReplaceAllStringFunc(s, func(run string) string {
			return strings.ToUpper(run[:1])
		})
	}

	s = strings.ReplaceAll(s, "w3", "W3")
	s = strings.ReplaceAll(s, "wh3", "Wh3")
	s = trailing(s, 'w')
	s = strings.ReplaceAll(s, "w", "2")

	if strings.HasPrefix(s, "h") {
		s = "A" + s[1:]
	}
	s = strings.ReplaceAll(s, "h", "2")

	s = strings.ReplaceAll(s, "r3", "R3")
	s = trailing(s, 'r')
	s = strings.ReplaceAll(s, "r", "2")
	s = strings.ReplaceAll(s, "l3", "L3")
	s = trailing(s, 'l')
	s = strings.ReplaceAll(s, "l", "2")

	s = strings.ReplaceAll(s, "2", "")
	if strings.HasSuffix(s, "3") {
		s = s[:len(s)-1] + "A"
	}
	return strings.ReplaceAll(s, "3", "")
}

// trailing replaces a final c with the vowel marker.
func trailing(s string, c byte) string {
	if len(s) > 0 && s[len(s)-1] == c {
		return s[:len(s)-1] + "3"
	}
	return s
}
