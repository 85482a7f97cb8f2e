package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trancendos/alervato/internal/domain"
)

func TestOfferingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a valid offering", func(t *testing.T) {
		offeringStore := new(MockOfferingStore)
		offeringStore.On("Create", ctx, mock.AnythingOfType("*domain.ServiceOffering")).Return(nil)

		svc := NewOfferingService(offeringStore, slog.Default())

		offering, err := svc.Create(ctx, OfferingInput{
			Name:        "Premium Support",
			Description: "24/7 phone support",
			Price:       decimal.RequireFromString("49.99"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Premium Support", offering.Name)
		assert.True(t, offering.Price.Equal(decimal.RequireFromString("49.99")))
		offeringStore.AssertExpectations(t)
	})

	t.Run("allows a free offering", func(t *testing.T) {
		offeringStore := new(MockOfferingStore)
		offeringStore.On("Create", ctx, mock.AnythingOfType("*domain.ServiceOffering")).Return(nil)

		svc := NewOfferingService(offeringStore, slog.Default())

		offering, err := svc.Create(ctx, OfferingInput{Name: "Community Forum"})

		require.NoError(t, err)
		assert.True(t, offering.Price.IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc := NewOfferingService(new(MockOfferingStore), slog.Default())

		offering, err := svc.Create(ctx, OfferingInput{Price: decimal.RequireFromString("9.99")})

		assert.Nil(t, offering)
		assert.ErrorIs(t, err, domain.ErrEmptyOfferingName)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		svc := NewOfferingService(new(MockOfferingStore), slog.Default())

		offering, err := svc.Create(ctx, OfferingInput{
			Name:  "Premium Support",
			Price: decimal.RequireFromString("-1.00"),
		})

		assert.Nil(t, offering)
		assert.ErrorIs(t, err, domain.ErrNegativePrice)
	})
}

func TestOfferingService_List(t *testing.T) {
	ctx := context.Background()

	first, err := domain.NewServiceOffering("Premium Support", "", decimal.RequireFromString("49.99"))
	require.NoError(t, err)
	second, err := domain.NewServiceOffering("Onboarding", "", decimal.RequireFromString("199.00"))
	require.NoError(t, err)
	offerings := []*domain.ServiceOffering{first, second}

	offeringStore := new(MockOfferingStore)
	offeringStore.On("List", ctx).Return(offerings, nil)

	svc := NewOfferingService(offeringStore, slog.Default())

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, offerings, got)
}
