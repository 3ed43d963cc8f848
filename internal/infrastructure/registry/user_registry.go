package registry

import (
	"context"
	"fmt"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

type UserRegistry struct {
	http *httpClient
}

var _ interfaces.IUserRegistry = (*UserRegistry)(nil)

func NewUserRegistry(opts Options) *UserRegistry {
	return &UserRegistry{http: newHTTPClient("user-service", opts)}
}

func (r *UserRegistry) GetUserByID(ctx context.Context, id int64) (entities.User, error) {
	var user entities.User
	if err := r.http.get(ctx, "get user", fmt.Sprintf("/v1/users/%d", id), &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}
