package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

const resourcePath = "/users"

type HTTPRepository struct {
	client client.Client
}

func NewHTTPRepository(c client.Client) *HTTPRepository {
	return &HTTPRepository{client: c}
}

func itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", resourcePath, id)
}

func (r *HTTPRepository) List(ctx context.Context) ([]models.User, error) {
	resp, err := r.client.Get(ctx, resourcePath)
	if err != nil {
		return nil, err
	}

	var out []models.User
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.User{}
	}
	return out, nil
}

func (r *HTTPRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	resp, err := r.client.Get(ctx, itemPath(id))
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(resp)
}

func (r *HTTPRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	resp, err := r.client.Post(ctx, resourcePath, u.WithoutID())
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(resp)
}

func (r *HTTPRepository) Update(ctx context.Context, id int64, u models.User) (models.User, error) {
	u.ID = id
	resp, err := r.client.Put(ctx, itemPath(id), u)
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(resp)
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.client.Delete(ctx, itemPath(id))
	return err
}

func decodeUser(resp *client.Response) (models.User, error) {
	var u models.User
	if err := decode(resp, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func decode(resp *client.Response, v any) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return client.NewDecodeError(err)
	}
	return nil
}

var _ Repository = (*HTTPRepository)(nil)
