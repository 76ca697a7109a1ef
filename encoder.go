package soundex

// Encoder is a phonetic encoding strategy. Encode returns the algorithm's
// fixed-width code, EncodeFull the untruncated, unpadded one. Alternate
// phonetic tables plug in behind this contract.
type Encoder interface {
	Encode(text string) string
	EncodeFull(text string) string
}

// Soundex is the package's own algorithm as an Encoder. The zero value is
// ready to use.
type Soundex struct{}

func (Soundex) Encode(text string) string     { return Encode(text) }
func (Soundex) EncodeFull(text string) string { return EncodeFull(text) }
