package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"purchase_sale/internal/domain/entities"
)

const (
	clientUnavailable  = "Client unavailable"
	userUnavailable    = "User unavailable"
	vehicleUnavailable = "Vehicle unavailable"
)

// IContractDetailUseCase attaches client, user and vehicle summaries to contracts.
type IContractDetailUseCase interface {
	ToDetails(ctx context.Context, contracts []entities.Contract) ([]entities.ContractDetail, error)
	ToDetail(ctx context.Context, contract entities.Contract) (entities.ContractDetail, error)
}

// ContractDetailUseCase resolves each distinct reference once per call.
// References the registries no longer know are replaced by placeholders;
// any other registry failure aborts the call.
type ContractDetailUseCase struct {
	resolver *ReferenceResolver
}

var _ IContractDetailUseCase = (*ContractDetailUseCase)(nil)

func NewContractDetailUseCase(resolver *ReferenceResolver) *ContractDetailUseCase {
	return &ContractDetailUseCase{resolver: resolver}
}

type summaryCache struct {
	clients  map[int64]*entities.ClientSummary
	users    map[int64]*entities.UserSummary
	vehicles map[int64]*entities.VehicleSummary
}

func (u *ContractDetailUseCase) ToDetails(ctx context.Context, contracts []entities.Contract) ([]entities.ContractDetail, error) {
	cache := summaryCache{
		clients:  map[int64]*entities.ClientSummary{},
		users:    map[int64]*entities.UserSummary{},
		vehicles: map[int64]*entities.VehicleSummary{},
	}

	out := make([]entities.ContractDetail, 0, len(contracts))
	for _, c := range contracts {
		detail := entities.ContractDetail{Contract: c}
		var err error
		if c.ClientID != 0 {
			if detail.ClientSummary, err = u.clientSummary(ctx, cache, c.ClientID); err != nil {
				return nil, err
			}
		}
		if c.UserID != 0 {
			if detail.UserSummary, err = u.userSummary(ctx, cache, c.UserID); err != nil {
				return nil, err
			}
		}
		if c.VehicleID != 0 {
			if detail.VehicleSummary, err = u.vehicleSummary(ctx, cache, c.VehicleID); err != nil {
				return nil, err
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

func (u *ContractDetailUseCase) ToDetail(ctx context.Context, contract entities.Contract) (entities.ContractDetail, error) {
	details, err := u.ToDetails(ctx, []entities.Contract{contract})
	if err != nil {
		return entities.ContractDetail{}, err
	}
	return details[0], nil
}

func (u *ContractDetailUseCase) clientSummary(ctx context.Context, cache summaryCache, id int64) (*entities.ClientSummary, error) {
	if s, ok := cache.clients[id]; ok {
		return s, nil
	}
	client, err := u.resolver.ResolveClient(ctx, &id)
	var s *entities.ClientSummary
	switch {
	case errors.Is(err, ErrClientNotFound):
		s = &entities.ClientSummary{
			ID:         id,
			Type:       entities.SummaryTypeUnknown,
			Name:       clientUnavailable,
			Identifier: fmt.Sprintf("ID %d", id),
		}
	case err != nil:
		return nil, err
	default:
		s = summarizeClient(client)
	}
	cache.clients[id] = s
	return s, nil
}

func summarizeClient(client entities.ResolvedClient) *entities.ClientSummary {
	if client.Kind == entities.ClientKindCompany {
		c := client.Company
		identifier := "Registered company"
		if c.TaxID != "" {
			identifier = "NIT " + c.TaxID
		}
		return &entities.ClientSummary{
			ID:          c.ID,
			Type:        string(entities.ClientKindCompany),
			Name:        c.CompanyName,
			Identifier:  identifier,
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
		}
	}
	p := client.Person
	identifier := "Natural person"
	if p.NationalID != nil {
		identifier = fmt.Sprintf("CC %d", *p.NationalID)
	}
	return &entities.ClientSummary{
		ID:          p.ID,
		Type:        string(entities.ClientKindPerson),
		Name:        strings.TrimSpace(p.FirstName + " " + p.LastName),
		Identifier:  identifier,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}
}

func (u *ContractDetailUseCase) userSummary(ctx context.Context, cache summaryCache, id int64) (*entities.UserSummary, error) {
	if s, ok := cache.users[id]; ok {
		return s, nil
	}
	user, err := u.resolver.ResolveUser(ctx, &id)
	var s *entities.UserSummary
	switch {
	case errors.Is(err, ErrUserNotFound):
		s = &entities.UserSummary{ID: id, FullName: userUnavailable, Username: entities.NotAvailable}
	case err != nil:
		return nil, err
	default:
		s = &entities.UserSummary{
			ID:       user.ID,
			FullName: strings.TrimSpace(user.FirstName + " " + user.LastName),
			Email:    user.Email,
			Username: user.Username,
		}
	}
	cache.users[id] = s
	return s, nil
}

func (u *ContractDetailUseCase) vehicleSummary(ctx context.Context, cache summaryCache, id int64) (*entities.VehicleSummary, error) {
	if s, ok := cache.vehicles[id]; ok {
		return s, nil
	}
	vehicle, err := u.resolver.ResolveVehicle(ctx, &id)
	var s *entities.VehicleSummary
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		na := entities.NotAvailable
		s = &entities.VehicleSummary{
			ID:     id,
			Type:   entities.SummaryTypeUnknown,
			Brand:  vehicleUnavailable,
			Model:  na,
			Plate:  na,
			Status: &na,
		}
	case err != nil:
		return nil, err
	default:
		attrs := vehicle.Attributes()
		s = &entities.VehicleSummary{
			ID:    attrs.ID,
			Type:  string(vehicle.Kind),
			Brand: attrs.Brand,
			Line:  attrs.Line,
			Model: attrs.Model,
			Plate: attrs.Plate,
		}
		if attrs.Status != "" {
			status := attrs.Status
			s.Status = &status
		}
	}
	cache.vehicles[id] = s
	return s, nil
}
