package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
	"carry-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func validCreateReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Name:           "Summer push",
		Description:    "bags in Tunis and Sousse",
		StartDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		DistributorIDs: []int64{2, 3},
		SupportName:    "tote bag",
		UnitPrice:      2000,
		Quantity:       100,
		NeedDesigner:   false,
		VisualName:     "visual.png",
	}
}

// TestCreateCampaign ensures a valid request produces a Draft campaign
// with the full quantity allocated and the total price derived from
// unit price times quantity.
func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	regions := mocks.NewMockRegionResolver(t)
	visuals := mocks.NewMockVisualStore(t)

	req := validCreateReq()

	visuals.EXPECT().
		Exists(mock.Anything, "visual.png").
		Return(true, nil)
	repo.EXPECT().
		GetCustomerByUserID(mock.Anything, int64(7)).
		Return(&domain.Customer{ID: 4, UserID: 7}, nil)
	regions.EXPECT().
		Resolve(mock.Anything, []int64{2, 3}).
		Return([]string{"Tunis", "Sousse"}, nil)

	var (
		gotCampaign domain.Campaign
		gotSupport  domain.Support
		gotQuantity int
	)
	repo.EXPECT().
		CreateCampaignWithAllocation(mock.Anything, mock.AnythingOfType("domain.Campaign"), mock.AnythingOfType("domain.Support"), 100).
		Run(func(ctx context.Context, c domain.Campaign, s domain.Support, quantity int) {
			gotCampaign, gotSupport, gotQuantity = c, s, quantity
		}).
		Return(int64(42), nil)

	svc := NewCampaignUseCase(repo, regions, visuals)

	id, err := svc.CreateCampaign(context.Background(), 7, req)
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected campaign id 42, got %d", id)
	}
	if gotCampaign.Status != domain.CampaignDraft {
		t.Fatalf("expected Draft status, got %s", gotCampaign.Status)
	}
	if gotCampaign.CustomerID != 4 {
		t.Fatalf("expected customer 4, got %d", gotCampaign.CustomerID)
	}
	if gotCampaign.TotalPrice != 200000 {
		t.Fatalf("expected total price 200000 millimes, got %d", gotCampaign.TotalPrice)
	}
	if len(gotCampaign.Regions) != 2 || gotCampaign.Regions[0] != "Tunis" || gotCampaign.Regions[1] != "Sousse" {
		t.Fatalf("unexpected regions: %v", gotCampaign.Regions)
	}
	if gotSupport.Name != "tote bag" || gotSupport.Price != 2000 {
		t.Fatalf("unexpected support: %+v", gotSupport)
	}
	if gotQuantity != 100 {
		t.Fatalf("expected allocation of 100, got %d", gotQuantity)
	}
}

// TestCreateCampaignValidation covers requests that must be rejected
// before any repository call.
func TestCreateCampaignValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*port.CreateCampaignReq)
	}{
		{"missing name", func(r *port.CreateCampaignReq) { r.Name = "" }},
		{"zero start date", func(r *port.CreateCampaignReq) { r.StartDate = time.Time{} }},
		{"missing support", func(r *port.CreateCampaignReq) { r.SupportName = "" }},
		{"zero unit price", func(r *port.CreateCampaignReq) { r.UnitPrice = 0 }},
		{"zero quantity", func(r *port.CreateCampaignReq) { r.Quantity = 0 }},
		{"negative quantity", func(r *port.CreateCampaignReq) { r.Quantity = -5 }},
		{"no visual without designer", func(r *port.CreateCampaignReq) { r.VisualName = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockRegionResolver(t), mocks.NewMockVisualStore(t))

			req := validCreateReq()
			tc.mutate(&req)

			_, err := svc.CreateCampaign(context.Background(), 7, req)
			if !errors.Is(err, port.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

// TestCreateCampaignVisualNotOnStorage rejects a visual name that the
// store does not know.
func TestCreateCampaignVisualNotOnStorage(t *testing.T) {
	visuals := mocks.NewMockVisualStore(t)
	visuals.EXPECT().
		Exists(mock.Anything, "visual.png").
		Return(false, nil)

	svc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockRegionResolver(t), visuals)

	_, err := svc.CreateCampaign(context.Background(), 7, validCreateReq())
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestCreateCampaignNoAdvertiserProfile maps a missing customer row to
// not found.
func TestCreateCampaignNoAdvertiserProfile(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		GetCustomerByUserID(mock.Anything, int64(7)).
		Return(nil, nil)

	svc := NewCampaignUseCase(repo, mocks.NewMockRegionResolver(t), mocks.NewMockVisualStore(t))

	req := validCreateReq()
	req.NeedDesigner = true
	req.VisualName = ""

	_, err := svc.CreateCampaign(context.Background(), 7, req)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// TestListInvoices checks the invoice number format and the fee math:
// 0.5 DT per distributed bag, total price converted from millimes.
func TestListInvoices(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	issued := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	repo.EXPECT().
		ListInvoiceRows(mock.Anything, int64(7)).
		Return([]port.InvoiceRow{
			{CampaignID: 42, Name: "Summer push", CreatedAt: issued, TotalPrice: 200000, Distributed: 100},
		}, nil)

	svc := NewCampaignUseCase(repo, mocks.NewMockRegionResolver(t), mocks.NewMockVisualStore(t))

	invoices, err := svc.ListInvoices(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListInvoices error: %v", err)
	}
	if len(invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(invoices))
	}
	inv := invoices[0]
	if inv.Number != "INV-2026-000042" {
		t.Fatalf("unexpected invoice number %q", inv.Number)
	}
	if inv.Amount.String() != "200" {
		t.Fatalf("expected amount 200 DT, got %s", inv.Amount)
	}
	if inv.AmountToPay.String() != "50" {
		t.Fatalf("expected fee 50 DT for 100 bags, got %s", inv.AmountToPay)
	}
}
