package auth

import "golang.org/x/crypto/bcrypt"

// fallbackHash is a well-formed bcrypt hash compared against when the
// username is unknown, so both login failure paths cost one hash
// comparison. The comparison result is always discarded.
const fallbackHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPassword runs a comparison against the fallback hash and
// always reports failure.
func BurnPassword(password string) bool {
	bcrypt.CompareHashAndPassword([]byte(fallbackHash), []byte(password))
	return false
}
