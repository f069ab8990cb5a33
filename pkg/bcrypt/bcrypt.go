package bcrypt

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the work factor used for stored credentials.
const DefaultCost = 10

// MaxPasswordBytes is the longest input bcrypt reads. Longer passwords are
// truncated to this prefix on both hash and compare.
const MaxPasswordBytes = 72

type IBcrypt interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashPassword string, password string) error
}

type bcryptService struct {
	cost int
}

func New() IBcrypt {
	return &bcryptService{
		cost: DefaultCost,
	}
}

func NewWithCost(cost int) IBcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &bcryptService{
		cost: cost,
	}
}

func (b *bcryptService) HashPassword(password string) (string, error) {
	result, err := bcrypt.GenerateFromPassword(truncate(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// ComparePassword returns nil only when password matches hashPassword.
func (b *bcryptService) ComparePassword(hashPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashPassword), truncate(password))
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		return b[:MaxPasswordBytes]
	}
	return b
}
