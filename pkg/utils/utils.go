package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/oklog/ulid/v2"
)

const contactIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewContactID(t time.Time) (string, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewContactID builds a contact record ID of the form
// contact_<unix-millis>_<9 random base36 chars>.
func (u *utils) NewContactID(t time.Time) (string, error) {
	suffix := make([]byte, 9)
	max := big.NewInt(int64(len(contactIDAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = contactIDAlphabet[n.Int64()]
	}

	return fmt.Sprintf("contact_%d_%s", t.UnixMilli(), suffix), nil
}
