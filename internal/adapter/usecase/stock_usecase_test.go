package usecase

import (
	"context"
	"errors"
	"testing"

	"carry-ads/internal/core/port"
	"carry-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestUpdateStockValidation rejects empty names and non-positive
// prices before touching the repository.
func TestUpdateStockValidation(t *testing.T) {
	svc := NewStockUseCase(mocks.NewMockStockRepository(t))

	if err := svc.UpdateStock(context.Background(), 1, "", 2000); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	if err := svc.UpdateStock(context.Background(), 1, "tote bag", 0); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for zero price, got %v", err)
	}
}

// TestCreateDelivery forwards a positive quantity and rejects the rest.
func TestCreateDelivery(t *testing.T) {
	repo := mocks.NewMockStockRepository(t)
	repo.EXPECT().
		CreateDelivery(mock.Anything, int64(4), 25).
		Return(nil)

	svc := NewStockUseCase(repo)

	if err := svc.CreateDelivery(context.Background(), 4, 25); err != nil {
		t.Fatalf("CreateDelivery error: %v", err)
	}
	if err := svc.CreateDelivery(context.Background(), 4, 0); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
}

// TestListStocks passes the repository rows through unchanged.
func TestListStocks(t *testing.T) {
	repo := mocks.NewMockStockRepository(t)
	repo.EXPECT().
		ListStocks(mock.Anything).
		Return([]port.StockOverview{
			{ID: 4, Name: "tote bag", Price: 2000, Allocated: 100, Distributed: 60},
		}, nil)

	svc := NewStockUseCase(repo)

	stocks, err := svc.ListStocks(context.Background())
	if err != nil {
		t.Fatalf("ListStocks error: %v", err)
	}
	if len(stocks) != 1 || stocks[0].Name != "tote bag" {
		t.Fatalf("unexpected stocks: %+v", stocks)
	}
}
