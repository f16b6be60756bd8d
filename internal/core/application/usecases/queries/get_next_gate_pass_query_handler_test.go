package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gatepass/internal/core/application/usecases/queries"
	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/ports"
	"gatepass/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Allocate(
	ctx context.Context, financialYear gatepass.FinancialYear, passType gatepass.PassType,
) (int, error) {
	args := m.Called(ctx, financialYear, passType)
	return args.Int(0), args.Error(1)
}

func (m *MockSequenceRepository) Current(
	ctx context.Context, financialYear gatepass.FinancialYear, passType gatepass.PassType,
) (int, error) {
	args := m.Called(ctx, financialYear, passType)
	return args.Int(0), args.Error(1)
}

func TestGetNextGatePassQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	fy := gatepass.FinancialYearOf(time.Now())

	t.Run("previews current plus one without consuming", func(t *testing.T) {
		repo := new(MockSequenceRepository)
		repo.On("Current", ctx, fy, gatepass.RGP).Return(41, nil).Once()
		handler := queries.NewGetNextGatePassQueryHandler(repo)

		query, err := queries.NewGetNextGatePassQuery(gatepass.RGP)
		require.NoError(t, err)

		preview, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("RAPL-RGP-%s/042", fy.Code()), preview.Code)
		assert.Equal(t, "RGP", preview.PassType)
		assert.Equal(t, fy.Code(), preview.FinancialYear)
		assert.Equal(t, 42, preview.Sequence)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Allocate")
	})

	t.Run("fresh namespace previews number one", func(t *testing.T) {
		repo := new(MockSequenceRepository)
		repo.On("Current", ctx, fy, gatepass.NRGP).Return(0, nil).Once()
		handler := queries.NewGetNextGatePassQueryHandler(repo)

		query, err := queries.NewGetNextGatePassQuery(gatepass.NRGP)
		require.NoError(t, err)

		preview, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 1, preview.Sequence)
		assert.Equal(t, fmt.Sprintf("RAPL-NRGP-%s/001", fy.Code()), preview.Code)
		repo.AssertExpectations(t)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := new(MockSequenceRepository)
		repo.On("Current", ctx, fy, gatepass.RGP).
			Return(0, fmt.Errorf("%w: connection refused", ports.ErrAllocationUnavailable)).Once()
		handler := queries.NewGetNextGatePassQueryHandler(repo)

		query, err := queries.NewGetNextGatePassQuery(gatepass.RGP)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, ports.ErrAllocationUnavailable)
		repo.AssertExpectations(t)
	})

	t.Run("invalid pass type fails at construction", func(t *testing.T) {
		_, err := queries.NewGetNextGatePassQuery(gatepass.PassType("XGP"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero-value query fails", func(t *testing.T) {
		handler := queries.NewGetNextGatePassQueryHandler(new(MockSequenceRepository))

		_, err := handler.Handle(ctx, queries.GetNextGatePassQuery{})

		require.ErrorIs(t, err, queries.ErrGetNextGatePassQueryIsNotConstructed)
	})
}
