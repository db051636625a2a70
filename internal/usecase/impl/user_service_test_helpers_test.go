package impl

import (
	"time"

	"cordonnier/internal/domain/service"

	"github.com/google/uuid"
)

const testRefreshTokenTTL = 7 * 24 * time.Hour

// testClaims builds refresh token claims for a client account.
func testClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Roles:  []string{"client"},
		Type:   "refresh",
	}
}
