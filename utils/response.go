// utils/response.go
package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gin-gonic/gin"
)

// RespondWithError sends a structured error body with the given status
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

const randomChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomString returns n random characters from an unambiguous
// alphabet, used for order numbers and payment references
func GenerateRandomString(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomChars))))
		if err != nil {
			panic("failed to generate random string")
		}
		out[i] = randomChars[idx.Int64()]
	}
	return string(out)
}
