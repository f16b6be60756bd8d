package commands_test

import (
	"fmt"
	"testing"
	"time"

	"gatepass/internal/core/application/usecases/commands"
	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateGatePassCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGenerateGatePassCommand(gatepass.RGP)
	require.NoError(t, err)

	sequenceRepo := new(MockSequenceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceRepository").Return(sequenceRepo).Once(),
		sequenceRepo.On("Allocate", mock.Anything, mock.Anything, gatepass.RGP).Return(7, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateGatePassCommandHandler(factory)
	number, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	fy := gatepass.FinancialYearOf(time.Now())
	assert.Equal(t, fmt.Sprintf("RAPL-RGP-%s/007", fy.Code()), number.Code())
	sequenceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGenerateGatePassCommandHandler_Handle_WideSequence(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGenerateGatePassCommand(gatepass.NRGP)
	require.NoError(t, err)

	sequenceRepo := new(MockSequenceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceRepository").Return(sequenceRepo).Once(),
		sequenceRepo.On("Allocate", mock.Anything, mock.Anything, gatepass.NRGP).Return(1000, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateGatePassCommandHandler(factory)
	number, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	fy := gatepass.FinancialYearOf(time.Now())
	assert.Equal(t, fmt.Sprintf("RAPL-NRGP-%s/1000", fy.Code()), number.Code())
}

func TestGenerateGatePassCommandHandler_Handle_AllocationUnavailable(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGenerateGatePassCommand(gatepass.RGP)
	require.NoError(t, err)

	sequenceRepo := new(MockSequenceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceRepository").Return(sequenceRepo).Once(),
		sequenceRepo.On("Allocate", mock.Anything, mock.Anything, gatepass.RGP).
			Return(0, ports.ErrAllocationUnavailable).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateGatePassCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrAllocationUnavailable)
	uow.AssertExpectations(t)
}

func TestNewGenerateGatePassCommand_InvalidPassType(t *testing.T) {
	_, err := commands.NewGenerateGatePassCommand(gatepass.PassType("TEMP"))
	require.Error(t, err)
}
