package usecase

import (
	"context"
	"errors"
	"testing"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestContractDetailUseCase_ToDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves each reference once", func(t *testing.T) {
		clients, users, vehicles, r := newResolverMocks(t)
		clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).
			Return(entities.Person{ID: 1, FirstName: "Ana", LastName: "Ruiz", NationalID: ptr(int64(1020))}, nil).Times(1)
		users.EXPECT().GetUserByID(gomock.Any(), int64(2)).
			Return(entities.User{ID: 2, FirstName: "Luis", LastName: "Gil", Username: "lgil"}, nil).Times(1)
		vehicles.EXPECT().GetCarByID(gomock.Any(), int64(3)).
			Return(entities.Car{VehicleAttributes: entities.VehicleAttributes{ID: 3, Brand: "Mazda", Plate: "KLM123", Status: "SOLD"}}, nil).Times(1)

		contracts := []entities.Contract{
			{ID: 10, ClientID: 1, UserID: 2, VehicleID: 3},
			{ID: 11, ClientID: 1, UserID: 2, VehicleID: 3},
		}
		details, err := NewContractDetailUseCase(r).ToDetails(ctx, contracts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(details) != 2 {
			t.Fatalf("expected 2 details, got %d", len(details))
		}
		d := details[1]
		if d.ID != 11 || d.ClientSummary.Name != "Ana Ruiz" || d.ClientSummary.Identifier != "CC 1020" {
			t.Fatalf("unexpected client summary: %+v", d.ClientSummary)
		}
		if d.UserSummary.FullName != "Luis Gil" || d.UserSummary.Username != "lgil" {
			t.Fatalf("unexpected user summary: %+v", d.UserSummary)
		}
		if d.VehicleSummary.Type != "CAR" || d.VehicleSummary.Status == nil || *d.VehicleSummary.Status != "SOLD" {
			t.Fatalf("unexpected vehicle summary: %+v", d.VehicleSummary)
		}
	})

	t.Run("placeholders for unknown references", func(t *testing.T) {
		clients, users, vehicles, r := newResolverMocks(t)
		clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).Return(entities.Person{}, notFound("person"))
		clients.EXPECT().GetCompanyByID(gomock.Any(), int64(1)).Return(entities.Company{}, notFound("company"))
		users.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(entities.User{}, notFound("user"))
		vehicles.EXPECT().GetCarByID(gomock.Any(), int64(3)).Return(entities.Car{}, notFound("car"))
		vehicles.EXPECT().GetMotorcycleByID(gomock.Any(), int64(3)).Return(entities.Motorcycle{}, notFound("motorcycle"))

		d, err := NewContractDetailUseCase(r).ToDetail(ctx, entities.Contract{ID: 10, ClientID: 1, UserID: 2, VehicleID: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ClientSummary.Name != "Client unavailable" || d.ClientSummary.Identifier != "ID 1" || d.ClientSummary.Type != entities.SummaryTypeUnknown {
			t.Fatalf("unexpected client placeholder: %+v", d.ClientSummary)
		}
		if d.UserSummary.FullName != "User unavailable" || d.UserSummary.Username != entities.NotAvailable {
			t.Fatalf("unexpected user placeholder: %+v", d.UserSummary)
		}
		if d.VehicleSummary.Brand != "Vehicle unavailable" || d.VehicleSummary.Plate != entities.NotAvailable {
			t.Fatalf("unexpected vehicle placeholder: %+v", d.VehicleSummary)
		}
	})

	t.Run("company summary", func(t *testing.T) {
		clients, _, _, r := newResolverMocks(t)
		clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).Return(entities.Person{}, notFound("person"))
		clients.EXPECT().GetCompanyByID(gomock.Any(), int64(1)).Return(entities.Company{ID: 1, CompanyName: "Autos SAS"}, nil)

		d, err := NewContractDetailUseCase(r).ToDetail(ctx, entities.Contract{ID: 10, ClientID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ClientSummary.Type != "COMPANY" || d.ClientSummary.Identifier != "Registered company" {
			t.Fatalf("unexpected company summary: %+v", d.ClientSummary)
		}
		if d.UserSummary != nil || d.VehicleSummary != nil {
			t.Fatalf("absent references must stay empty")
		}
	})

	t.Run("upstream failure aborts", func(t *testing.T) {
		_, users, _, r := newResolverMocks(t)
		users.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(entities.User{}, &interfaces.UpstreamError{Service: "user-service", StatusCode: 503})

		_, err := NewContractDetailUseCase(r).ToDetail(ctx, entities.Contract{ID: 10, UserID: 2})
		var upstream *interfaces.UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})
}
