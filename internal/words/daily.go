package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Daily returns the same word to everyone on a given UTC date.
type Daily struct {
	words []string
	salt  string
	now   func() time.Time
}

// NewDaily builds a Daily source over list. The salt keeps the sequence of
// words from being guessable from the list alone.
func NewDaily(list []string, salt string) (*Daily, error) {
	ws := filter(list)
	if len(ws) == 0 {
		return nil, ErrNoWords
	}
	return &Daily{words: ws, salt: salt, now: time.Now}, nil
}

// NextWord returns today's word.
func (d *Daily) NextWord() (string, error) {
	return d.words[WordIndex(d.now(), d.salt, len(d.words))], nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
