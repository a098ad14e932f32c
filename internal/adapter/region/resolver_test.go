package region

import (
	"context"
	"errors"
	"testing"

	"carry-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestStaticResolver maps known ids to city names and drops unknown
// ones, preserving order.
func TestStaticResolver(t *testing.T) {
	names, err := StaticResolver{}.Resolve(context.Background(), []int64{2, 99, 3})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(names) != 2 || names[0] != "Tunis" || names[1] != "Sousse" {
		t.Fatalf("unexpected names: %v", names)
	}
}

// TestFallbackResolverUsesPrimary keeps the primary result when it
// yields any name.
func TestFallbackResolverUsesPrimary(t *testing.T) {
	primary := mocks.NewMockRegionResolver(t)
	primary.EXPECT().
		Resolve(mock.Anything, []int64{2}).
		Return([]string{"Tunis"}, nil)

	r := NewFallbackResolver(primary, StaticResolver{})

	names, err := r.Resolve(context.Background(), []int64{2})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(names) != 1 || names[0] != "Tunis" {
		t.Fatalf("unexpected names: %v", names)
	}
}

// TestFallbackResolverFallsBack switches to the static list when the
// primary resolves nothing.
func TestFallbackResolverFallsBack(t *testing.T) {
	primary := mocks.NewMockRegionResolver(t)
	primary.EXPECT().
		Resolve(mock.Anything, []int64{1, 5}).
		Return(nil, nil)

	r := NewFallbackResolver(primary, StaticResolver{})

	names, err := r.Resolve(context.Background(), []int64{1, 5})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(names) != 2 || names[0] != "Monastir" || names[1] != "Sfax" {
		t.Fatalf("unexpected names: %v", names)
	}
}

// TestFallbackResolverPrimaryError returns the primary error without
// consulting the fallback.
func TestFallbackResolverPrimaryError(t *testing.T) {
	wantErr := errors.New("directory unavailable")
	primary := mocks.NewMockRegionResolver(t)
	primary.EXPECT().
		Resolve(mock.Anything, []int64{2}).
		Return(nil, wantErr)

	fallback := mocks.NewMockRegionResolver(t)

	r := NewFallbackResolver(primary, fallback)

	_, err := r.Resolve(context.Background(), []int64{2})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected primary error, got %v", err)
	}
}

// TestFallbackResolverEmptyInput short-circuits without calling either
// resolver.
func TestFallbackResolverEmptyInput(t *testing.T) {
	r := NewFallbackResolver(mocks.NewMockRegionResolver(t), mocks.NewMockRegionResolver(t))

	names, err := r.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if names != nil {
		t.Fatalf("expected nil names, got %v", names)
	}
}
