package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"
	mock_interfaces "purchase_sale/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContractUseCase_PurchaseSaleLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences(77)

	var submitted entities.Car
	f.vehicles.EXPECT().CreateCar(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car entities.Car) (entities.Car, error) {
			submitted = car
			car.ID = 77
			return car, nil
		}).Times(1)

	in := purchaseInput(0, entities.ContractStatusPending, 12000)
	in.VehicleID = nil
	in.VehicleData = validCarData()

	purchase, err := f.uc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create purchase: %v", err)
	}
	if purchase.VehicleID != 77 || purchase.SalePrice != 0 || purchase.PurchasePrice != 12000 {
		t.Fatalf("unexpected purchase: %+v", purchase)
	}
	if submitted.Plate != "ABC123" || submitted.Status != entities.VehicleStatusAvailable || submitted.PurchasePrice != 12000 {
		t.Fatalf("unexpected submitted car: %+v", submitted)
	}

	complete := purchaseInput(77, entities.ContractStatusCompleted, 12000)
	if _, found, err := f.uc.Update(ctx, purchase.ID, complete); err != nil || !found {
		t.Fatalf("complete purchase: found=%v err=%v", found, err)
	}

	sale, err := f.uc.Create(ctx, saleInput(77, entities.ContractStatusActive, 20000))
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if sale.PurchasePrice != 12000 || sale.SalePrice != 20000 || sale.ContractType != entities.ContractTypeSale {
		t.Fatalf("unexpected sale: %+v", sale)
	}

	_, err = f.uc.Create(ctx, saleInput(77, entities.ContractStatusPending, 21000))
	if !errors.Is(err, ErrDuplicateSale) || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected duplicate sale rejection, got %v", err)
	}
	if !strings.Contains(err.Error(), "already has a sale registered") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestContractUseCase_SinglePendingOrActivePurchase(t *testing.T) {
	ctx := context.Background()

	for _, status := range []entities.ContractStatus{entities.ContractStatusPending, entities.ContractStatusActive} {
		t.Run("existing "+string(status)+" blocks", func(t *testing.T) {
			f := newEngineFixture(t)
			f.knownReferences(10)
			f.seed(t, storedContract(10, entities.ContractTypePurchase, status, 9000))

			_, err := f.uc.Create(ctx, purchaseInput(10, entities.ContractStatusPending, 9500))
			if !errors.Is(err, ErrDuplicatePurchase) {
				t.Fatalf("expected ErrDuplicatePurchase, got %v", err)
			}
			all, _ := f.repo.FindAll(ctx)
			if len(all) != 1 {
				t.Fatalf("rejected create must not persist, got %d contracts", len(all))
			}
		})
	}

	for _, status := range []entities.ContractStatus{entities.ContractStatusCompleted, entities.ContractStatusCanceled} {
		t.Run("existing "+string(status)+" allows", func(t *testing.T) {
			f := newEngineFixture(t)
			f.knownReferences(10)
			f.seed(t, storedContract(10, entities.ContractTypePurchase, status, 9000))

			if _, err := f.uc.Create(ctx, purchaseInput(10, entities.ContractStatusPending, 9500)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestContractUseCase_SaleRequiresStock(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences(20)

	in := saleInput(20, entities.ContractStatusActive, 15000)
	in.PurchasePrice = ptr(10000.0)
	_, err := f.uc.Create(ctx, in)
	if !errors.Is(err, ErrNoAvailableStock) {
		t.Fatalf("expected ErrNoAvailableStock, got %v", err)
	}

	_, err = f.uc.Create(ctx, saleInput(20, entities.ContractStatusActive, 15000))
	if !errors.Is(err, ErrPurchasePriceUnavailable) {
		t.Fatalf("expected ErrPurchasePriceUnavailable without fallback, got %v", err)
	}

	f.seed(t, storedContract(20, entities.ContractTypePurchase, entities.ContractStatusActive, 11000))
	sale, err := f.uc.Create(ctx, saleInput(20, entities.ContractStatusActive, 15000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sale.PurchasePrice != 11000 {
		t.Fatalf("expected derived purchase price 11000, got %v", sale.PurchasePrice)
	}
}

func TestContractUseCase_CanceledSaleSkipsStockCheck(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences(30)

	in := saleInput(30, entities.ContractStatusCanceled, 15000)
	in.PurchasePrice = ptr(9000.0)
	sale, err := f.uc.Create(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sale.PurchasePrice != 9000 || sale.ContractStatus != entities.ContractStatusCanceled {
		t.Fatalf("unexpected sale: %+v", sale)
	}
}

func TestContractUseCase_SingleOpenSale(t *testing.T) {
	ctx := context.Background()

	for _, status := range []entities.ContractStatus{entities.ContractStatusPending, entities.ContractStatusActive, entities.ContractStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			f := newEngineFixture(t)
			f.knownReferences(40)
			f.seed(t, storedContract(40, entities.ContractTypePurchase, entities.ContractStatusCompleted, 8000))
			f.seed(t, storedContract(40, entities.ContractTypeSale, status, 8000))

			_, err := f.uc.Create(ctx, saleInput(40, entities.ContractStatusActive, 12000))
			if !errors.Is(err, ErrDuplicateSale) {
				t.Fatalf("expected ErrDuplicateSale, got %v", err)
			}
		})
	}

	t.Run("canceled sale does not block", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences(40)
		f.seed(t, storedContract(40, entities.ContractTypePurchase, entities.ContractStatusCompleted, 8000))
		f.seed(t, storedContract(40, entities.ContractTypeSale, entities.ContractStatusCanceled, 8000))

		if _, err := f.uc.Create(ctx, saleInput(40, entities.ContractStatusPending, 12000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractUseCase_UpdateRejectsTypeChange(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences(50)
	existing := f.seed(t, storedContract(50, entities.ContractTypePurchase, entities.ContractStatusCompleted, 8000))

	in := saleInput(50, entities.ContractStatusPending, 12000)
	in.PaymentTerms = "different terms"
	_, _, err := f.uc.Update(ctx, existing.ID, in)
	if !errors.Is(err, ErrContractTypeChange) {
		t.Fatalf("expected ErrContractTypeChange, got %v", err)
	}
	stored, _ := f.repo.FindByID(ctx, existing.ID)
	if stored.ContractType != entities.ContractTypePurchase || stored.PaymentTerms != "cash" {
		t.Fatalf("rejected update must not persist: %+v", stored)
	}
}

func TestContractUseCase_DerivesLatestPurchasePrice(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clients := mock_interfaces.NewMockIClientRegistry(ctrl)
	users := mock_interfaces.NewMockIUserRegistry(ctrl)
	vehicles := mock_interfaces.NewMockIVehicleRegistry(ctrl)
	repo := mock_interfaces.NewMockIContractRepository(ctrl)

	now := time.Now().UTC()
	history := []entities.Contract{
		{ID: 1, VehicleID: 60, ContractType: entities.ContractTypePurchase, ContractStatus: entities.ContractStatusCompleted, PurchasePrice: 8000, UpdatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, VehicleID: 60, ContractType: entities.ContractTypePurchase, ContractStatus: entities.ContractStatusActive, PurchasePrice: 9500, UpdatedAt: now.Add(-time.Hour)},
	}

	clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).Return(entities.Person{ID: 1}, nil)
	users.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(entities.User{ID: 2}, nil)
	vehicles.EXPECT().GetCarByID(gomock.Any(), int64(60)).Return(entities.Car{VehicleAttributes: entities.VehicleAttributes{ID: 60}}, nil)
	repo.EXPECT().RunInVehicleScope(gomock.Any(), int64(60), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, fn func(context.Context) error) error { return fn(ctx) })
	repo.EXPECT().FindByVehicleID(gomock.Any(), int64(60)).Return(history, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c entities.Contract) (entities.Contract, error) {
			c.ID = 3
			return c, nil
		})

	uc := NewContractUseCase(repo, NewReferenceResolver(clients, users, vehicles), NewVehicleProvisioner(vehicles))
	in := saleInput(60, entities.ContractStatusPending, 14000)
	in.PurchasePrice = ptr(1.0)
	sale, err := uc.Create(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sale.PurchasePrice != 9500 {
		t.Fatalf("expected 9500 from the most recently updated purchase, got %v", sale.PurchasePrice)
	}
}

func TestContractUseCase_SalePriceCheckedBeforeRemoteCalls(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRegistry(ctrl)
	users := mock_interfaces.NewMockIUserRegistry(ctrl)
	vehicles := mock_interfaces.NewMockIVehicleRegistry(ctrl)
	uc := NewContractUseCase(repo, NewReferenceResolver(clients, users, vehicles), NewVehicleProvisioner(vehicles))

	for _, price := range []float64{0, -10} {
		_, err := uc.Create(ctx, saleInput(70, entities.ContractStatusPending, price))
		if !errors.Is(err, ErrInvalidSalePrice) {
			t.Fatalf("price %v: expected ErrInvalidSalePrice, got %v", price, err)
		}
	}

	in := saleInput(70, entities.ContractStatusPending, 0)
	in.SalePrice = nil
	if _, err := uc.Create(ctx, in); !errors.Is(err, ErrInvalidSalePrice) {
		t.Fatalf("missing price: expected ErrInvalidSalePrice, got %v", err)
	}
}

func TestContractUseCase_CreateResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("company client", func(t *testing.T) {
		f := newEngineFixture(t)
		f.clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).Return(entities.Person{}, notFound("person"))
		f.clients.EXPECT().GetCompanyByID(gomock.Any(), int64(1)).Return(entities.Company{ID: 1, CompanyName: "Autos SAS"}, nil)
		f.users.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(entities.User{ID: 2}, nil)
		f.vehicles.EXPECT().GetCarByID(gomock.Any(), int64(80)).Return(entities.Car{}, notFound("car"))
		f.vehicles.EXPECT().GetMotorcycleByID(gomock.Any(), int64(80)).
			Return(entities.Motorcycle{VehicleAttributes: entities.VehicleAttributes{ID: 80}}, nil)

		c, err := f.uc.Create(ctx, purchaseInput(80, entities.ContractStatusPending, 5000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ClientID != 1 || c.VehicleID != 80 {
			t.Fatalf("unexpected contract: %+v", c)
		}
	})

	t.Run("upstream failure propagates unchanged", func(t *testing.T) {
		f := newEngineFixture(t)
		upstream := &interfaces.UpstreamError{Service: "client-service", Operation: "get person", StatusCode: 503, Body: "down"}
		f.clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).Return(entities.Person{}, upstream)

		_, err := f.uc.Create(ctx, purchaseInput(80, entities.ContractStatusPending, 5000))
		if err != upstream {
			t.Fatalf("expected the upstream error itself, got %v", err)
		}
		if errors.Is(err, ErrInvalidInput) {
			t.Fatalf("upstream failures are not rejected input")
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newEngineFixture(t)
		f.clients.EXPECT().GetPersonByID(gomock.Any(), int64(1)).Return(entities.Person{}, notFound("person"))
		f.clients.EXPECT().GetCompanyByID(gomock.Any(), int64(1)).Return(entities.Company{}, notFound("company"))

		_, err := f.uc.Create(ctx, purchaseInput(80, entities.ContractStatusPending, 5000))
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences()
		in := purchaseInput(80, entities.ContractStatusPending, 5000)
		in.UserID = nil
		if _, err := f.uc.Create(ctx, in); !errors.Is(err, ErrMissingReference) {
			t.Fatalf("expected ErrMissingReference, got %v", err)
		}
	})

	t.Run("sale with vehicle data", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences()
		in := saleInput(80, entities.ContractStatusPending, 9000)
		in.VehicleData = validCarData()
		if _, err := f.uc.Create(ctx, in); !errors.Is(err, ErrVehicleDataNotAllowed) {
			t.Fatalf("expected ErrVehicleDataNotAllowed, got %v", err)
		}
	})

	t.Run("sale without vehicle id", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences()
		in := saleInput(0, entities.ContractStatusPending, 9000)
		in.VehicleID = nil
		if _, err := f.uc.Create(ctx, in); !errors.Is(err, ErrMissingReference) {
			t.Fatalf("expected ErrMissingReference, got %v", err)
		}
	})

	t.Run("purchase without vehicle data", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences()
		in := purchaseInput(0, entities.ContractStatusPending, 5000)
		in.VehicleID = nil
		if _, err := f.uc.Create(ctx, in); !errors.Is(err, ErrInvalidVehicleData) {
			t.Fatalf("expected ErrInvalidVehicleData, got %v", err)
		}
	})

	t.Run("purchase price must be positive", func(t *testing.T) {
		f := newEngineFixture(t)
		_, err := f.uc.Create(ctx, purchaseInput(80, entities.ContractStatusPending, 0))
		if !errors.Is(err, ErrInvalidPurchasePrice) {
			t.Fatalf("expected ErrInvalidPurchasePrice, got %v", err)
		}
	})
}

func TestContractUseCase_CreateNormalization(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences(90)

	in := purchaseInput(90, entities.ContractStatusPending, 7000)
	in.ContractType = nil
	in.ContractStatus = nil
	in.Observations = ptr("   ")

	c, err := f.uc.Create(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ContractType != entities.ContractTypePurchase || c.ContractStatus != entities.ContractStatusPending {
		t.Fatalf("expected defaults, got %s/%s", c.ContractType, c.ContractStatus)
	}
	if c.Observations != nil {
		t.Fatalf("blank observations should be dropped")
	}
	if in.ContractType != nil || in.ContractStatus != nil || *in.Observations != "   " {
		t.Fatalf("input must not be mutated: %+v", in)
	}

	t.Run("payment terms too long", func(t *testing.T) {
		long := purchaseInput(90, entities.ContractStatusPending, 7000)
		long.PaymentTerms = strings.Repeat("x", entities.MaxPaymentTermsLength+1)
		if _, err := f.uc.Create(ctx, long); !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		bad := purchaseInput(90, entities.ContractStatusPending, 7000)
		bad.PaymentMethod = "BARTER"
		if _, err := f.uc.Create(ctx, bad); !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})
}

func TestContractUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences(100)
		_, found, err := f.uc.Update(ctx, 999, purchaseInput(100, entities.ContractStatusActive, 5000))
		if err != nil || found {
			t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
		}
		all, _ := f.repo.FindAll(ctx)
		if len(all) != 0 {
			t.Fatalf("nothing should be written")
		}
	})

	t.Run("own record does not conflict and sale price defaults to zero", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences(100)
		seeded := storedContract(100, entities.ContractTypePurchase, entities.ContractStatusPending, 5000)
		seeded.SalePrice = 7000
		existing := f.seed(t, seeded)

		in := purchaseInput(100, entities.ContractStatusActive, 5200)
		in.Observations = ptr("checked by mechanic")
		updated, found, err := f.uc.Update(ctx, existing.ID, in)
		if err != nil || !found {
			t.Fatalf("unexpected result: found=%v err=%v", found, err)
		}
		if updated.ContractStatus != entities.ContractStatusActive || updated.PurchasePrice != 5200 || updated.SalePrice != 0 {
			t.Fatalf("unexpected update: %+v", updated)
		}
		if !updated.CreatedAt.Equal(existing.CreatedAt) || updated.ID != existing.ID {
			t.Fatalf("identity and creation time must be kept: %+v", updated)
		}
		if updated.PaymentTerms != in.PaymentTerms || updated.Observations == nil {
			t.Fatalf("mutable fields must be replaced: %+v", updated)
		}
	})

	t.Run("cancelling a sale without active purchase", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences(110)
		f.seed(t, storedContract(110, entities.ContractTypePurchase, entities.ContractStatusCanceled, 6000))
		sale := storedContract(110, entities.ContractTypeSale, entities.ContractStatusPending, 6000)
		sale.SalePrice = 9000
		sale = f.seed(t, sale)

		in := saleInput(110, entities.ContractStatusCanceled, 9000)
		in.PurchasePrice = ptr(6000.0)
		updated, found, err := f.uc.Update(ctx, sale.ID, in)
		if err != nil || !found {
			t.Fatalf("unexpected result: found=%v err=%v", found, err)
		}
		if updated.ContractStatus != entities.ContractStatusCanceled {
			t.Fatalf("unexpected status %s", updated.ContractStatus)
		}
	})

	t.Run("second open purchase rejected on update", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences(120)
		f.seed(t, storedContract(120, entities.ContractTypePurchase, entities.ContractStatusActive, 6000))
		other := f.seed(t, storedContract(120, entities.ContractTypePurchase, entities.ContractStatusCanceled, 6000))

		_, _, err := f.uc.Update(ctx, other.ID, purchaseInput(120, entities.ContractStatusPending, 6000))
		if !errors.Is(err, ErrDuplicatePurchase) {
			t.Fatalf("expected ErrDuplicatePurchase, got %v", err)
		}
	})

	t.Run("vehicle id is required", func(t *testing.T) {
		f := newEngineFixture(t)
		f.knownReferences()
		in := purchaseInput(0, entities.ContractStatusPending, 6000)
		in.VehicleID = nil
		in.VehicleData = validCarData()
		if _, _, err := f.uc.Update(ctx, 1, in); !errors.Is(err, ErrMissingReference) {
			t.Fatalf("expected ErrMissingReference, got %v", err)
		}
	})
}

func TestContractUseCase_Queries(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences(130)
	a := f.seed(t, storedContract(130, entities.ContractTypePurchase, entities.ContractStatusCompleted, 6000))
	f.seed(t, storedContract(131, entities.ContractTypePurchase, entities.ContractStatusActive, 7000))

	t.Run("find by id", func(t *testing.T) {
		got, found, err := f.uc.FindByID(ctx, a.ID)
		if err != nil || !found || got.ID != a.ID {
			t.Fatalf("unexpected result: %+v found=%v err=%v", got, found, err)
		}
		_, found, err = f.uc.FindByID(ctx, 404)
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})

	t.Run("find by vehicle resolves the vehicle", func(t *testing.T) {
		got, err := f.uc.FindByVehicleID(ctx, 130)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("find by unknown vehicle is rejected", func(t *testing.T) {
		f.vehicles.EXPECT().GetCarByID(gomock.Any(), int64(555)).Return(entities.Car{}, notFound("car"))
		f.vehicles.EXPECT().GetMotorcycleByID(gomock.Any(), int64(555)).Return(entities.Motorcycle{}, notFound("motorcycle"))
		if _, err := f.uc.FindByVehicleID(ctx, 555); !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("find by client and user", func(t *testing.T) {
		byClient, err := f.uc.FindByClientID(ctx, 1)
		if err != nil || len(byClient) != 2 {
			t.Fatalf("unexpected result: %d err=%v", len(byClient), err)
		}
		byUser, err := f.uc.FindByUserID(ctx, 2)
		if err != nil || len(byUser) != 2 {
			t.Fatalf("unexpected result: %d err=%v", len(byUser), err)
		}
	})

	t.Run("search and paging", func(t *testing.T) {
		status := entities.ContractStatusActive
		page, err := f.uc.Search(ctx, entities.ContractFilterCriteria{ContractStatus: &status}, entities.PageRequest{Page: -1})
		if err != nil || page.TotalElements != 1 || page.Size != entities.DefaultPageSize {
			t.Fatalf("unexpected page: %+v err=%v", page, err)
		}
		all, err := f.uc.FindAllPaged(ctx, entities.PageRequest{Page: 0, Size: 1})
		if err != nil || all.TotalPages != 2 {
			t.Fatalf("unexpected page: %+v err=%v", all, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := f.uc.DeleteByID(ctx, a.ID)
		if err != nil || !deleted {
			t.Fatalf("expected delete, got %v %v", deleted, err)
		}
		deleted, err = f.uc.DeleteByID(ctx, a.ID)
		if err != nil || deleted {
			t.Fatalf("expected not found on second delete, got %v %v", deleted, err)
		}
	})
}

func TestContractUseCase_ConcurrentPurchasesForOneVehicle(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences(40)

	const workers = 20
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		duplicates int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(price float64) {
			defer wg.Done()
			_, err := f.uc.Create(ctx, purchaseInput(40, entities.ContractStatusPending, price))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrDuplicatePurchase):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(float64(1000 + i))
	}
	wg.Wait()

	if succeeded != 1 || duplicates != workers-1 {
		t.Fatalf("expected 1 success and %d duplicates, got %d and %d", workers-1, succeeded, duplicates)
	}
	stored, _ := f.repo.FindByVehicleID(ctx, 40)
	if len(stored) != 1 {
		t.Fatalf("expected a single stored purchase, got %d", len(stored))
	}
}

func TestContractUseCase_ProvisionedVehicleWithoutID(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture(t)
	f.knownReferences()
	f.vehicles.EXPECT().CreateCar(gomock.Any(), gomock.Any()).Return(entities.Car{}, nil)

	in := purchaseInput(0, entities.ContractStatusPending, 12000)
	in.VehicleID = nil
	in.VehicleData = validCarData()

	_, err := f.uc.Create(ctx, in)
	var upstream *interfaces.UpstreamError
	if !errors.As(err, &upstream) || upstream.Operation != "create car" {
		t.Fatalf("expected create car upstream error, got %v", err)
	}
	if all, _ := f.repo.FindAll(ctx); len(all) != 0 {
		t.Fatalf("expected nothing stored, got %+v", all)
	}
}
