package cmd

import (
	"gatepass/internal/adapters/out/postgres"
	"gatepass/internal/adapters/out/postgres/sequencerepo"
	"gatepass/internal/adapters/out/postgres/settingsrepo"
	"gatepass/internal/core/application/usecases/commands"
	"gatepass/internal/core/application/usecases/queries"
	"gatepass/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSubmitParcelCommandHandler() commands.SubmitParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessLogisticsCommandHandler() commands.ProcessLogisticsCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessLogisticsCommandHandler(f)
}

func (c *CompositionRoot) CreateDecideParcelCommandHandler() commands.DecideParcelCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecideParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateResubmitParcelCommandHandler() commands.ResubmitParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewResubmitParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchParcelCommandHandler() commands.DispatchParcelCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmReturnCommandHandler() commands.ConfirmReturnCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkReturnsOverdueCommandHandler() commands.MarkReturnsOverdueCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkReturnsOverdueCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateGatePassCommandHandler() commands.GenerateGatePassCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateGatePassCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPendingParcelsQueryHandler() queries.GetPendingParcelsQueryHandler {
	return queries.NewGetPendingParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNeedsAttentionQueryHandler() queries.GetNeedsAttentionQueryHandler {
	return queries.NewGetNeedsAttentionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextGatePassQueryHandler() queries.GetNextGatePassQueryHandler {
	return queries.NewGetNextGatePassQueryHandler(sequencerepo.NewGormSequenceRepository(c.gormDB))
}

func (c *CompositionRoot) CreateSettingsStore() ports.SettingsStore {
	return settingsrepo.NewGormSettingsStore(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDecisionUoWFactory func() commands.DecisionUoW

func (f FuncDecisionUoWFactory) Create() commands.DecisionUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}
