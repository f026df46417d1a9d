package utils

import (
	"careportal-service/internal/pkg/constvars"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateSessionJWT(sessionID, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateObjectName builds a unique object key under prefix while keeping
// the uploaded file's extension.
func GenerateObjectName(prefix, ownerID, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s/%s_%s%s", prefix, ownerID, timestamp, uuid.NewString()[:8], extension)
}
