package queries_test

import (
	"context"
	"testing"
	"time"

	"gatepass/internal/adapters/out/postgres/parcelrepo"
	"gatepass/internal/core/application/usecases/queries"
	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// GetPendingParcelsQueryHandlerTestSuite verifies the approval queue
// visibility rules against a real database.
type GetPendingParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetPendingParcelsQueryHandler
	parcelRepo *parcelrepo.GormParcelRepository
	sequence   int
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ItemDTO{},
		&parcelrepo.DimensionDTO{},
	))

	suite.handler = queries.NewGetPendingParcelsQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, noopTracker{})
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcel_items, parcel_dimensions, parcels").Error)
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) seedParcel(
	transportation parcel.TransportationType, assignedManagerID *kernel.UUID) *parcel.Parcel {
	suite.sequence++
	fy := gatepass.FinancialYearOf(time.Now())
	number, err := gatepass.ComposeNumber(suite.sequence, fy, gatepass.NRGP)
	suite.Require().NoError(err)

	item, err := parcel.NewItem("", "Network switch", 1, 310.00)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), number, kernel.NewUUID(), "Acme Labs",
		transportation, []parcel.Item{item}, nil, false, nil, assignedManagerID, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_VisibilityRules() {
	ctx := context.Background()
	managerID := kernel.NewUUID()
	otherManagerID := kernel.NewUUID()

	visibleByHand := suite.seedParcel(parcel.ByHand, nil)
	suite.seedParcel(parcel.Courier, nil) // hidden: logistics not processed

	processedCourier := suite.seedParcel(parcel.Courier, nil)
	loaded, err := suite.parcelRepo.Get(ctx, processedCourier.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.CompleteLogistics("BlueDart", "BD-1", nil, nil))
	suite.Require().NoError(suite.parcelRepo.Update(ctx, loaded))

	assignedToMe := suite.seedParcel(parcel.ByHand, &managerID)
	suite.seedParcel(parcel.ByHand, &otherManagerID) // hidden: claimed elsewhere

	approved := suite.seedParcel(parcel.ByHand, nil)
	loadedApproved, err := suite.parcelRepo.Get(ctx, approved.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loadedApproved.Approve(managerID, time.Now()))
	suite.Require().NoError(suite.parcelRepo.Update(ctx, loadedApproved)) // hidden: decided

	query, err := queries.NewGetPendingParcelsQuery(managerID)
	suite.Require().NoError(err)

	pending, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 3)

	ids := make(map[string]bool, len(pending))
	for _, row := range pending {
		ids[row.ID.String()] = true
	}
	suite.True(ids[visibleByHand.ID().String()])
	suite.True(ids[processedCourier.ID().String()])
	suite.True(ids[assignedToMe.ID().String()])
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_OrderedBySubmission() {
	ctx := context.Background()
	first := suite.seedParcel(parcel.ByHand, nil)
	time.Sleep(10 * time.Millisecond)
	second := suite.seedParcel(parcel.ByHand, nil)

	query, err := queries.NewGetPendingParcelsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	pending, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID.IsEqual(first.ID()))
	suite.True(pending[1].ID.IsEqual(second.ID()))
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPendingParcelsQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetPendingParcelsQueryIsNotConstructed)
}

func TestGetPendingParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingParcelsQueryHandlerTestSuite))
}
