package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt digest of a plain password. The
// cost comes from BCRYPT_COST; values outside bcrypt's supported
// range fall back to the library default rather than failing
// registration over a config typo.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether the plain password matches the
// stored digest. Used by login; constant-time inside bcrypt.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
