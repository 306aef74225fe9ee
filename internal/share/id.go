package share

import "github.com/google/uuid"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// IDLength is the length of every shared-script id.
	IDLength = 12
)

// randomIndexes are the bytes of a v4 UUID that carry no version or
// variant bits.
var randomIndexes = [...]int{0, 1, 2, 3, 4, 5, 7, 9, 10, 11, 12, 13, 14, 15}

// NewID returns a random 12-character alphanumeric id.
func NewID() string {
	u := uuid.New()
	id := make([]byte, IDLength)
	for i := range id {
		id[i] = idAlphabet[int(u[randomIndexes[i]])%len(idAlphabet)]
	}
	return string(id)
}

// ValidID reports whether id has the shape NewID produces.
func ValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
