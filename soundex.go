// Package soundex implements the Soundex phonetic encoding algorithm,
// which maps a word to a short code approximating its English
// pronunciation. Words that sound alike share a code, which makes the
// codes useful for fuzzy name matching:
//
//	soundex.Encode("Robert") // "R163"
//	soundex.Encode("Rupert") // "R163"
//
// Encode produces the conventional fixed 4-character code (one letter and
// three digits); EncodeFull keeps every digit without truncation or
// padding. Both are pure functions, safe for concurrent use.
package soundex

// Digit classes for 'A'..'Z'. Letters in class 0 (vowels, y, h, w) emit no
// digit; h and w are transparent to duplicate suppression, vowels reset it.
const digits = "01230120022455012623010202"

// codeLen is the number of digits in a default-mode code.
const codeLen = 3

// Encode returns the Soundex code of text: the first letter, uppercased,
// followed by exactly three digits, zero-padded. Non-letter characters are
// ignored, as is any rune outside the basic Latin alphabet. If text
// contains no letter at all the result is the empty string.
func Encode(text string) string {
	first, stream := walk(text)
	if first == 0 {
		return ""
	}
	if len(stream) > codeLen {
		stream = stream[:codeLen]
	}
	for len(stream) < codeLen {
		stream = append(stream, '0')
	}
	return string(first) + string(stream)
}

// EncodeFull is Encode without the fixed width: the first letter followed
// by every computed digit, unpadded. Encode(s) always equals EncodeFull(s)
// truncated or zero-padded to four characters.
func EncodeFull(text string) string {
	first, stream := walk(text)
	if first == 0 {
		return ""
	}
	return string(first) + string(stream)
}

// Equal reports whether two strings share a Soundex code.
//
//	soundex.Equal("Y.LEE", "Y.LIE") // true
func Equal(left, right string) bool {
	return Encode(left) == Encode(right)
}

// walk runs the encoding state machine over text. It returns the first
// letter, uppercased, and the digit stream produced by the remaining
// letters. A zero first byte means text contained no letter.
//
// last holds the digit class of the most recent scoring letter, seeded
// from the first letter so that a consonant of the same class directly
// after it is suppressed. Vowels and y reset last to '0'; h and w leave it
// untouched, so equal classes on either side of them still collapse.
func walk(text string) (first byte, stream []byte) {
	var last byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		d := digits[c-'A']
		if first == 0 {
			first = c
			last = d
			continue
		}
		switch {
		case c == 'H' || c == 'W':
			// transparent
		case d == '0':
			last = '0'
		case d != last:
			stream = append(stream, d)
			last = d
		}
	}
	return first, stream
}
