package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carry-ads/internal/adapter/usecase"
	"carry-ads/internal/core/domain"
	"carry-ads/internal/core/port"
	"carry-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func newTestHandler(t *testing.T, distRepo *mocks.MockDistributionRepository) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(
		usecase.NewCampaignUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockRegionResolver(t), mocks.NewMockVisualStore(t)),
		usecase.NewDistributionUseCase(distRepo),
		usecase.NewStockUseCase(mocks.NewMockStockRepository(t)),
		mocks.NewMockVisualStore(t),
		logger,
		[]string{"*"},
	)
}

func asDistributor(r *http.Request) *http.Request {
	r.Header.Set("X-User-Id", "9")
	r.Header.Set("X-User-Roles", domain.RoleDistributor)
	return r
}

// TestRoleGuards rejects anonymous requests with 401 and wrong-role
// requests with 403.
func TestRoleGuards(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockDistributionRepository(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/distributor/campaigns/pending", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/distributor/campaigns/pending", nil)
	req.Header.Set("X-User-Id", "9")
	req.Header.Set("X-User-Roles", domain.RoleAdvertiser)
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong role: expected 403, got %d", rec.Code)
	}
}

// TestDistributeResponse returns the remaining quantity after a
// successful report.
func TestDistributeResponse(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		DistributeBags(mock.Anything, int64(5), int64(9), 30).
		Return(70, nil)

	h := newTestHandler(t, repo)

	req := asDistributor(httptest.NewRequest(http.MethodPost, "/api/v1/distributor/distributions/5/distribute", strings.NewReader(`{"quantity":30}`)))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"bagsRemaining":70`) {
		t.Fatalf("unexpected body: %s", rec.Body)
	}
}

// TestErrorStatusMapping maps usecase errors onto HTTP statuses: stock
// violations are 400, unknown rows 404, duplicate answers 409, anything
// else an opaque 500.
func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		repoErr    error
		wantStatus int
	}{
		{"stock exceeded", port.ErrStockExceeded, http.StatusBadRequest},
		{"not found", port.ErrNotFound, http.StatusNotFound},
		{"already decided", port.ErrAlreadyDecided, http.StatusConflict},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockDistributionRepository(t)
			repo.EXPECT().
				DistributeBags(mock.Anything, int64(5), int64(9), 30).
				Return(0, tc.repoErr)

			h := newTestHandler(t, repo)

			req := asDistributor(httptest.NewRequest(http.MethodPost, "/api/v1/distributor/distributions/5/distribute", strings.NewReader(`{"quantity":30}`)))
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, rec.Code, rec.Body)
			}
			if tc.wantStatus == http.StatusInternalServerError && strings.Contains(rec.Body.String(), "connection reset") {
				t.Fatalf("internal error leaked to the client: %s", rec.Body)
			}
		})
	}
}

// TestAcceptConflict surfaces the partial unique index violation as a
// 409.
func TestAcceptConflict(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		GetDistributorByUserID(mock.Anything, int64(9)).
		Return(&domain.Distributor{ID: 3, UserID: 9, City: "Tunis"}, nil)
	repo.EXPECT().
		AcceptCampaign(mock.Anything, int64(42), int64(3)).
		Return(port.ErrAlreadyDecided)

	h := newTestHandler(t, repo)

	req := asDistributor(httptest.NewRequest(http.MethodPost, "/api/v1/distributor/campaigns/42/accept", nil))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body)
	}
}
