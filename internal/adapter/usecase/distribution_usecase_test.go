package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
	"carry-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestAcceptCampaign resolves the distributor profile and accepts on
// its behalf.
func TestAcceptCampaign(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		GetDistributorByUserID(mock.Anything, int64(9)).
		Return(&domain.Distributor{ID: 3, UserID: 9, City: "Tunis"}, nil)
	repo.EXPECT().
		AcceptCampaign(mock.Anything, int64(42), int64(3)).
		Return(nil)

	svc := NewDistributionUseCase(repo)

	if err := svc.AcceptCampaign(context.Background(), 9, 42); err != nil {
		t.Fatalf("AcceptCampaign error: %v", err)
	}
}

// TestAcceptCampaignNoProfile rejects users without a distributor
// profile before touching the campaign.
func TestAcceptCampaignNoProfile(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		GetDistributorByUserID(mock.Anything, int64(9)).
		Return(nil, nil)

	svc := NewDistributionUseCase(repo)

	err := svc.AcceptCampaign(context.Background(), 9, 42)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// TestListEligiblePending filters by the distributor's own city.
func TestListEligiblePending(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		GetDistributorByUserID(mock.Anything, int64(9)).
		Return(&domain.Distributor{ID: 3, UserID: 9, City: "Sousse"}, nil)
	repo.EXPECT().
		ListEligiblePending(mock.Anything, int64(3), "Sousse").
		Return([]port.PendingCampaign{{ID: 42, Name: "Summer push", Bags: 100}}, nil)

	svc := NewDistributionUseCase(repo)

	pending, err := svc.ListEligiblePending(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListEligiblePending error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != 42 {
		t.Fatalf("unexpected pending list: %+v", pending)
	}
}

// TestDistributeBagsRejectsNonPositive never forwards a zero or
// negative quantity to the repository.
func TestDistributeBagsRejectsNonPositive(t *testing.T) {
	svc := NewDistributionUseCase(mocks.NewMockDistributionRepository(t))

	for _, quantity := range []int{0, -3} {
		_, err := svc.DistributeBags(context.Background(), 9, 5, quantity)
		if !errors.Is(err, port.ErrValidation) {
			t.Fatalf("quantity %d: expected validation error, got %v", quantity, err)
		}
	}
}

// TestDistributeBagsToExhaustion reports the last bags of an allocation
// and gets zero remaining back.
func TestDistributeBagsToExhaustion(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		DistributeBags(mock.Anything, int64(5), int64(9), 30).
		Return(0, nil)

	svc := NewDistributionUseCase(repo)

	remaining, err := svc.DistributeBags(context.Background(), 9, 5, 30)
	if err != nil {
		t.Fatalf("DistributeBags error: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", remaining)
	}
}

// TestConcurrentDistribution emulates the row-locked allocation check:
// four distributors report 30 bags each against 100 allocated, so
// exactly three reports land and the total never exceeds the
// allocation.
func TestConcurrentDistribution(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)

	var (
		mu          sync.Mutex
		allocated   = 100
		distributed = 0
	)

	repo.EXPECT().
		DistributeBags(mock.Anything, int64(5), int64(9), 30).
		RunAndReturn(func(ctx context.Context, distributionID, userID int64, quantity int) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			if distributed+quantity > allocated {
				return 0, fmt.Errorf("%w: only %d bags remaining", port.ErrStockExceeded, allocated-distributed)
			}
			distributed += quantity
			return allocated - distributed, nil
		})

	svc := NewDistributionUseCase(repo)

	var (
		wg       sync.WaitGroup
		resultMu sync.Mutex
		accepted int
		rejected int
	)
	wg.Add(4)
	for i := 0; i < 4; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.DistributeBags(context.Background(), 9, 5, 30)
			resultMu.Lock()
			defer resultMu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, port.ErrStockExceeded):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if accepted != 3 || rejected != 1 {
		t.Fatalf("expected 3 accepted and 1 rejected, got %d/%d", accepted, rejected)
	}
	if distributed != 90 {
		t.Fatalf("expected 90 distributed, got %d", distributed)
	}
}

// TestListMine asks for ongoing and completed distributions in one
// call.
func TestListMine(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		ListByDistributorUser(mock.Anything, int64(9), []domain.DistributionStatus{
			domain.DistributionActive,
			domain.DistributionCompleted,
		}).
		Return([]port.DistributionView{
			{ID: 5, CampaignName: "Summer push", Allocated: 100, Distributed: 40, Status: domain.DistributionActive},
		}, nil)

	svc := NewDistributionUseCase(repo)

	views, err := svc.ListMine(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListMine error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 distribution, got %d", len(views))
	}
	if got := views[0].Remaining(); got != 60 {
		t.Fatalf("expected 60 remaining, got %d", got)
	}
}

// TestStats converts the revenue bag count into dinars at the per-bag
// fee.
func TestStats(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		GetDistributorByUserID(mock.Anything, int64(9)).
		Return(&domain.Distributor{ID: 3, UserID: 9, City: "Tunis"}, nil)
	repo.EXPECT().
		StatsByDistributor(mock.Anything, int64(3)).
		Return(&port.DistributorStatsRow{
			BagsAllocated:   250,
			BagsDistributed: 130,
			ActiveCampaigns: 2,
			RevenueBags:     40,
		}, nil)

	svc := NewDistributionUseCase(repo)

	stats, err := svc.Stats(context.Background(), 9)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.BagsAllocated != 250 || stats.BagsDistributed != 130 || stats.ActiveCampaigns != 2 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if stats.Revenue.String() != "20" {
		t.Fatalf("expected revenue 20 DT for 40 bags, got %s", stats.Revenue)
	}
}

// TestGetPayment maps the raw row to a payout line.
func TestGetPayment(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	issued := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	repo.EXPECT().
		GetPaymentRow(mock.Anything, int64(9), int64(42)).
		Return(&port.PaymentRow{CampaignID: 42, Name: "Summer push", CreatedAt: issued, Distributed: 100}, nil)

	svc := NewDistributionUseCase(repo)

	payment, err := svc.GetPayment(context.Background(), 9, 42)
	if err != nil {
		t.Fatalf("GetPayment error: %v", err)
	}
	if payment.Number != "INV-2026-000042" {
		t.Fatalf("unexpected payment number %q", payment.Number)
	}
	if payment.Amount.String() != "50" {
		t.Fatalf("expected 50 DT for 100 bags, got %s", payment.Amount)
	}
}

// TestGetPaymentNotFound maps a missing row to not found.
func TestGetPaymentNotFound(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		GetPaymentRow(mock.Anything, int64(9), int64(42)).
		Return(nil, nil)

	svc := NewDistributionUseCase(repo)

	_, err := svc.GetPayment(context.Background(), 9, 42)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
