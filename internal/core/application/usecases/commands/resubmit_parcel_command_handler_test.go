package commands_test

import (
	"testing"
	"time"

	"gatepass/internal/core/application/usecases/commands"
	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rejectedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p := submittedParcel(t, parcel.ByHand)
	require.NoError(t, p.Reject(kernel.NewUUID(), "missing purchase order", time.Now()))
	return p
}

func TestResubmitParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	original := rejectedParcel(t)
	cmd, err := commands.NewResubmitParcelCommand(original.ID(), original.SubmitterID(),
		"Acme Labs, Dock 4", parcel.ByHand, testItems(t), nil, false, nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	sequenceRepo := new(MockSequenceRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, original.ID()).Return(original, nil).Once(),
		parcelRepo.On("GetSupersededBy", mock.Anything, original.ID()).
			Return(nil, errs.NewObjectNotFoundError("previousRejection", original.ID())).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		uow.On("SequenceRepository").Return(sequenceRepo).Once(),
		sequenceRepo.On("Allocate", mock.Anything, mock.Anything, gatepass.NRGP).Return(8, nil).Once(),
		parcelRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResubmitParcelCommandHandler(factory)
	resubmitted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.Submitted, resubmitted.Status())
	assert.True(t, resubmitted.Resubmitted())
	require.NotNil(t, resubmitted.PreviousRejection())
	assert.True(t, resubmitted.PreviousRejection().IsEqual(original.ID()))
	assert.True(t, resubmitted.SubmitterID().IsEqual(original.SubmitterID()))
	assert.False(t, resubmitted.ID().IsEqual(original.ID()))
	assert.Equal(t, 8, resubmitted.Number().Sequence())
	assert.Equal(t, "Acme Labs, Dock 4", resubmitted.Recipient())
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResubmitParcelCommandHandler_Handle_NotOriginalSubmitter(t *testing.T) {
	ctx := t.Context()
	original := rejectedParcel(t)
	cmd, err := commands.NewResubmitParcelCommand(original.ID(), kernel.NewUUID(),
		"Acme Labs", parcel.ByHand, testItems(t), nil, false, nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, original.ID()).Return(original, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResubmitParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNotOriginalSubmitter)
	uow.AssertExpectations(t)
}

func TestResubmitParcelCommandHandler_Handle_AlreadyResubmitted(t *testing.T) {
	ctx := t.Context()
	original := rejectedParcel(t)
	successor := submittedParcel(t, parcel.ByHand)
	cmd, err := commands.NewResubmitParcelCommand(original.ID(), original.SubmitterID(),
		"Acme Labs", parcel.ByHand, testItems(t), nil, false, nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, original.ID()).Return(original, nil).Once(),
		parcelRepo.On("GetSupersededBy", mock.Anything, original.ID()).Return(successor, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResubmitParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAlreadyResubmitted)
	uow.AssertExpectations(t)
}

func TestResubmitParcelCommandHandler_Handle_NotRejected(t *testing.T) {
	ctx := t.Context()
	original := submittedParcel(t, parcel.ByHand) // still pending, not rejected
	cmd, err := commands.NewResubmitParcelCommand(original.ID(), original.SubmitterID(),
		"Acme Labs", parcel.ByHand, testItems(t), nil, false, nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	sequenceRepo := new(MockSequenceRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, original.ID()).Return(original, nil).Once(),
		parcelRepo.On("GetSupersededBy", mock.Anything, original.ID()).
			Return(nil, errs.NewObjectNotFoundError("previousRejection", original.ID())).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		uow.On("SequenceRepository").Return(sequenceRepo).Once(),
		sequenceRepo.On("Allocate", mock.Anything, mock.Anything, gatepass.NRGP).Return(9, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResubmitParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, parcel.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
