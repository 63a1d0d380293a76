// Package users is the typed CRUD façade over the transport for the /users
// resource. Each operation performs exactly one transport call; transport
// errors are returned unchanged and undecodable payloads become
// client.KindUnknown errors.
package users

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)

	// GetByID fails with client.ErrNotFound when the user does not exist.
	GetByID(ctx context.Context, id int64) (models.User, error)

	// Create ignores u.ID and returns the record with the server-assigned id.
	Create(ctx context.Context, u models.User) (models.User, error)

	Update(ctx context.Context, id int64, u models.User) (models.User, error)

	Delete(ctx context.Context, id int64) error
}
