package commands_test

import (
	"testing"
	"time"

	"gatepass/internal/core/application/usecases/commands"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func approvedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p := submittedParcel(t, parcel.ByHand)
	require.NoError(t, p.Approve(kernel.NewUUID(), time.Now()))
	return p
}

func testLogistics(t *testing.T, id kernel.UUID) *staff.Staff {
	t.Helper()
	member, err := staff.NewStaff(id, "S. Pillai", staff.Logistics)
	require.NoError(t, err)
	return member
}

func TestDispatchParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	approved := approvedParcel(t)
	cmd, err := commands.NewDispatchParcelCommand(approved.ID(), actorID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("Get", mock.Anything, actorID).Return(testLogistics(t, actorID), nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once(),
		parcelRepo.On("Update", mock.Anything, approved).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDecisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchParcelCommandHandler(factory)
	dispatched, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.Dispatched, dispatched.Status())
	assert.NotNil(t, dispatched.DispatchedAt())
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchParcelCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	approved := approvedParcel(t)
	cmd, err := commands.NewDispatchParcelCommand(approved.ID(), actorID)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("Get", mock.Anything, actorID).Return(testManager(t, actorID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDecisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorNotPermitted)
	uow.AssertExpectations(t)
}

func TestDispatchParcelCommandHandler_Handle_NotApproved(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	pending := submittedParcel(t, parcel.ByHand)
	cmd, err := commands.NewDispatchParcelCommand(pending.ID(), actorID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("Get", mock.Anything, actorID).Return(testLogistics(t, actorID), nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDecisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, parcel.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
