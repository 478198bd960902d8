package reservation

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const DefaultGuests = 1

var validate = validator.New()

// Guests defaults an absent or zero count to one.
type Guests struct {
	value int
}

func NewGuests(raw *int, maxGuests int) (Guests, error) {
	if raw == nil || *raw == 0 {
		return Guests{value: DefaultGuests}, nil
	}
	if *raw < 0 {
		return Guests{}, ErrInvalidGuests
	}
	// guests is an INTEGER column
	if *raw > math.MaxInt32 || (maxGuests > 0 && *raw > maxGuests) {
		return Guests{}, ErrInvalidGuests
	}
	return Guests{value: *raw}, nil
}

func (g Guests) Value() int { return g.value }

type Email struct {
	address string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,email"); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{address: s}, nil
}

func (e Email) String() string { return e.address }

// CancelToken is the secret embedded in the cancellation link. Only its hash is stored.
type CancelToken struct {
	plain string
}

func NewCancelToken() CancelToken {
	return CancelToken{plain: uuid.NewString()}
}

func (t CancelToken) String() string { return t.plain }
func (t CancelToken) Hash() string   { return HashCancelToken(t.plain) }

func HashCancelToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
