package storage

// Store is the whole-value record backing carts, sessions, the user
// directory and transient login state. Reads of an absent key report
// found == false; writes always overwrite the full value under the key.
type Store interface {
	Read(key string) (value []byte, found bool, err error)
	Write(key string, value []byte) error
	Delete(key string) error
}

// Storage keys. Per-visitor records append the visitor ID.
const (
	KeyCartPrefix    = "cart:"
	KeySessionPrefix = "session:"
	KeyPKCEPrefix    = "pkce:"
	KeyUserDirectory = "users"
)
