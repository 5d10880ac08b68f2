package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode returns n characters from A-Z0-9. rand.Int keeps the
// distribution uniform.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateInvoiceNumber → "INV-20240115-7K2M9QXA"
func GenerateInvoiceNumber(now time.Time) (string, error) {
	code, err := GenerateCode(8)
	if err != nil {
		return "", err
	}
	return "INV-" + now.UTC().Format("20060102") + "-" + code, nil
}
