// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a client's rating of a delivered order.
// At most one review exists per order; only the order's client may write it.
type Review struct {
	ID        uuid.UUID
	OrderID   uuid.UUID // Reviewed order; unique.
	ClientID  uuid.UUID // Author, must match the order's client.
	CobblerID uuid.UUID // Cobbler being rated.
	Rating    int       // 1 to 5 inclusive.
	Comment   string
	CreatedAt time.Time
}
