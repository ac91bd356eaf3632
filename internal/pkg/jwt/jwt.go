package jwt

import (
	"crypto/rsa"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/status"
)

type JSONWebToken struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

func NewJSONWebToken(privateKeyPEM, publicKeyPEM string) *JSONWebToken {
	j := &JSONWebToken{}

	if privateKeyPEM != "" {
		pk, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
		if err == nil {
			j.privateKey = pk
		}
	}

	if publicKeyPEM != "" {
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err == nil {
			j.publicKey = pub
		}
	}

	return j
}

func (j *JSONWebToken) Sign(claims jwt.Claims) (string, error) {
	if j.privateKey == nil {
		return "", errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "signing key is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	signed, err := token.SignedString(j.privateKey)
	if err != nil {
		return "", errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while signing the token")
	}

	return signed, nil
}

func (j *JSONWebToken) Parse(tokenString string, claims jwt.Claims) error {
	if j.publicKey == nil {
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "verification key is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.publicKey, nil
	})
	if err != nil || !token.Valid {
		return errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "invalid or expired token")
	}

	return nil
}
