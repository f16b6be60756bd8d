package commands_test

import (
	"context"
	"testing"
	"time"

	"gatepass/internal/core/application/usecases/commands"
	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/model/staff"
	"gatepass/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetSupersededBy(ctx context.Context, rejectedID kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, rejectedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetOverdueReturnCandidates(ctx context.Context, asOf time.Time) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Allocate(ctx context.Context, fy gatepass.FinancialYear, pt gatepass.PassType) (int, error) {
	args := m.Called(ctx, fy, pt)
	return args.Int(0), args.Error(1)
}

func (m *MockSequenceRepository) Current(ctx context.Context, fy gatepass.FinancialYear, pt gatepass.PassType) (int, error) {
	args := m.Called(ctx, fy, pt)
	return args.Int(0), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

// MockUoW implements every unit of work interface the handlers declare, so
// a single mock serves all of them.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockDecisionUoWFactory struct{ mock.Mock }

func (m *MockDecisionUoWFactory) Create() commands.DecisionUoW {
	args := m.Called()
	return args.Get(0).(commands.DecisionUoW)
}

func testItems(t *testing.T) []parcel.Item {
	t.Helper()
	item, err := parcel.NewItem("SN-100", "Oscilloscope", 1, 1250.00)
	require.NoError(t, err)
	return []parcel.Item{item}
}

func testNumber(t *testing.T, seq int, returnable bool) gatepass.Number {
	t.Helper()
	fy := gatepass.FinancialYearOf(time.Now())
	number, err := gatepass.ComposeNumber(seq, fy, gatepass.PassTypeForReturnable(returnable))
	require.NoError(t, err)
	return number
}

func testManager(t *testing.T, id kernel.UUID) *staff.Staff {
	t.Helper()
	manager, err := staff.NewStaff(id, "R. Iyer", staff.Manager)
	require.NoError(t, err)
	return manager
}

func submittedParcel(t *testing.T, transportation parcel.TransportationType) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), testNumber(t, 7, false), kernel.NewUUID(),
		"Acme Labs", transportation, testItems(t), nil, false, nil, nil, time.Now())
	require.NoError(t, err)
	return p
}
