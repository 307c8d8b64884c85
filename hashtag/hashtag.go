package hashtag

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	Alphabet string = "0289PYLQGRJCUV"
	Base     uint64 = uint64(len(Alphabet))

	MinLength int = 3
	MaxLength int = 14

	// SentinelHigh marks a high id that has no hashtag representation.
	SentinelHigh uint64 = 255

	// MaxLow is the largest low id whose combined id fits in 64 bits.
	MaxLow uint64 = 1<<56 - 1

	// MaxDecodeLength is the longest hashtag whose id always fits in 64 bits.
	MaxDecodeLength int = 16
)

var (
	ErrInvalidHashtag = errors.New("invalid hashtag")
)

var (
	charToDigit = func() map[rune]uint64 {
		m := make(map[rune]uint64, len(Alphabet))
		for i, c := range Alphabet {
			m[c] = uint64(i)
		}
		return m
	}()
)

// HiLo represents the high and low ids hidden in a player or clan hashtag.
type HiLo struct {
	High uint64 `json:"high"`
	Low  uint64 `json:"low"`
}

// Hashtag returns the hashtag (without #) of the ids.
func (hiLo HiLo) Hashtag() string {
	return Encode(hiLo.High, hiLo.Low)
}

func (hiLo HiLo) String() string {
	return strconv.FormatUint(hiLo.High, 10) + ":" + strconv.FormatUint(hiLo.Low, 10)
}

// Normalize converts a player or clan hashtag to its canonical form.
// It never fails, the result may still be invalid. Normalizing twice changes nothing.
func Normalize(hashtag string) string {
	hashtag = strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(hashtag), "#", ""))

	// users tend to type the letter O instead of zero
	return strings.ReplaceAll(hashtag, "O", "0")
}

// IsValid reports whether a hashtag is potentially valid.
// The length is checked on the given string, the characters after normalization,
// so callers holding user input should pass Normalize(input).
func IsValid(hashtag string) bool {
	if len(hashtag) > MaxLength || len(hashtag) < MinLength {
		return false
	}

	for _, c := range Normalize(hashtag) {
		if _, ok := charToDigit[c]; !ok {
			return false
		}
	}

	return true
}

// Parse normalizes a hashtag and fails if the result is not a valid hashtag.
func Parse(hashtag string) (string, error) {
	normalized := Normalize(hashtag)
	if !IsValid(normalized) {
		return "", errors.Wrapf(ErrInvalidHashtag, "%q", hashtag)
	}

	return normalized, nil
}

// Decode decodes a normalized hashtag to its high and low ids.
// Characters outside of the alphabet are skipped, use IsValid to reject them.
// Beyond MaxDecodeLength digits the 64-bit id may overflow and wrap.
func Decode(hashtag string) HiLo {
	var id uint64
	for _, c := range hashtag {
		digit, ok := charToDigit[c]
		if !ok {
			continue
		}

		id = id*Base + digit
	}

	high := id % 256

	return HiLo{
		High: high,
		Low:  (id - high) >> 8,
	}
}

// Encode encodes high and low ids to a hashtag without #.
// It returns an empty string if the high id is SentinelHigh or above, or if the
// low id exceeds MaxLow.
func Encode(high, low uint64) string {
	if high >= SentinelHigh || low > MaxLow {
		return ""
	}

	id := low<<8 | high
	if id == 0 {
		return Alphabet[:1]
	}

	// 14^17 > 2^64
	buf := make([]byte, 0, 17)
	for id > 0 {
		buf = append(buf, Alphabet[id%Base])
		id /= Base
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}
