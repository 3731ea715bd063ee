package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"backoffice/internal/domain/service"
)

// OTP codes are six decimal digits, drawn uniformly from [otpMin, otpMax].
const (
	otpMin = 100000
	otpMax = 999999
)

type otpGenerator struct{}

// NewOTPGenerator returns a generator backed by crypto/rand.
func NewOTPGenerator() service.OTPGenerator {
	return otpGenerator{}
}

func (otpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random otp")
	}

	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}
