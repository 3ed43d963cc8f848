package registry

import (
	"context"
	"fmt"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
)

type ClientRegistry struct {
	http *httpClient
}

var _ interfaces.IClientRegistry = (*ClientRegistry)(nil)

func NewClientRegistry(opts Options) *ClientRegistry {
	return &ClientRegistry{http: newHTTPClient("client-service", opts)}
}

func (r *ClientRegistry) GetPersonByID(ctx context.Context, id int64) (entities.Person, error) {
	var person entities.Person
	if err := r.http.get(ctx, "get person", fmt.Sprintf("/v1/persons/%d", id), &person); err != nil {
		return entities.Person{}, err
	}
	return person, nil
}

func (r *ClientRegistry) GetCompanyByID(ctx context.Context, id int64) (entities.Company, error) {
	var company entities.Company
	if err := r.http.get(ctx, "get company", fmt.Sprintf("/v1/companies/%d", id), &company); err != nil {
		return entities.Company{}, err
	}
	return company, nil
}
