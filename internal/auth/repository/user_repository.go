package repository

import (
	"encoding/json"
	"log"

	authdomain "bookstore-backend/internal/auth/domain"
	"bookstore-backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// persistedUser is the stored directory shape. The domain User hides the
// password hash from JSON, so the record gets its own marshalling type.
type persistedUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Picture  string `json:"picture,omitempty"`
	Provider string `json:"provider"`
}

// userDirectoryRepository implements UserDirectoryRepository on the
// whole-value store.
type userDirectoryRepository struct {
	store storage.Store
}

func NewUserDirectoryRepository(store storage.Store) UserDirectoryRepository {
	return &userDirectoryRepository{store: store}
}

// All returns the directory. Absent or malformed records read as empty.
func (r *userDirectoryRepository) All() ([]authdomain.User, error) {
	value, found, err := r.store.Read(storage.KeyUserDirectory)
	if err != nil {
		return nil, err
	}
	if !found {
		return []authdomain.User{}, nil
	}

	var records []persistedUser
	if err := json.Unmarshal(value, &records); err != nil {
		log.Printf("[WARN] malformed user directory record, treating as empty")
		return []authdomain.User{}, nil
	}

	users := make([]authdomain.User, len(records))
	for i, rec := range records {
		users[i] = authdomain.User(rec)
	}
	return users, nil
}

func (r *userDirectoryRepository) FindByEmail(email string) (*authdomain.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Append writes the directory back with the new user added.
func (r *userDirectoryRepository) Append(user authdomain.User) error {
	users, err := r.All()
	if err != nil {
		return err
	}
	users = append(users, user)

	records := make([]persistedUser, len(users))
	for i, u := range users {
		records[i] = persistedUser(u)
	}
	value, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.store.Write(storage.KeyUserDirectory, value)
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
