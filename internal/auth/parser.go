package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the portal access-token claims this service consumes.
type Claims struct {
	UserID   uuid.UUID
	Role     string
	Projects []string
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

// Parse validates an HS256 access token and extracts its claims.
func (p *Parser) Parse(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{UserID: userID}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if raw, ok := mapClaims["projects"].([]interface{}); ok {
		for _, v := range raw {
			if code, ok := v.(string); ok {
				claims.Projects = append(claims.Projects, code)
			}
		}
	}
	return claims, nil
}
