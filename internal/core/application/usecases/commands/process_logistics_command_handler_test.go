package commands_test

import (
	"testing"

	"gatepass/internal/core/application/usecases/commands"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessLogisticsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := submittedParcel(t, parcel.Courier)
	dim, err := parcel.NewDimension(2.5, "kg", "40x30x20 cm", "shipping")
	require.NoError(t, err)

	cmd, err := commands.NewProcessLogisticsCommand(pending.ID(), "BlueDart", "BD-90331",
		[]parcel.Dimension{dim}, []string{"img/packed-1.jpg"})
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		parcelRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessLogisticsCommandHandler(factory)
	processed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, processed.LogisticsProcessed())
	assert.Equal(t, "BlueDart", processed.CourierName())
	assert.Equal(t, "BD-90331", processed.CourierTrackingNumber())
	assert.Len(t, processed.Dimensions(), 1)
	assert.Equal(t, []string{"img/packed-1.jpg"}, processed.AfterPackingImageRefs())
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessLogisticsCommandHandler_Handle_ByHandParcel(t *testing.T) {
	ctx := t.Context()
	pending := submittedParcel(t, parcel.ByHand)
	cmd, err := commands.NewProcessLogisticsCommand(pending.ID(), "BlueDart", "", nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessLogisticsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestProcessLogisticsCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewProcessLogisticsCommand(parcelID, "BlueDart", "", nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcelID", parcelID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessLogisticsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewProcessLogisticsCommand_CourierNameRequired(t *testing.T) {
	_, err := commands.NewProcessLogisticsCommand(kernel.NewUUID(), "", "", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "courierName")
}
