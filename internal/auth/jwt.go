package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/assistant"
)

// Identity is what a validated token asserts about the caller: who they
// are and which plan tier their license grants.
type Identity struct {
	UserID string
	Plan   assistant.PlanTier
}

func GenerateJWT(secret, userID string, plan assistant.PlanTier) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"plan": string(plan),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateJWT(secret, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("token has no subject")
	}

	planClaim, _ := claims["plan"].(string)
	plan, err := assistant.ParsePlanTier(planClaim)
	if err != nil {
		plan = assistant.PlanFree
	}

	return Identity{UserID: sub, Plan: plan}, nil
}
