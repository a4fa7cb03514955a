//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/repository"
)

type RemoteRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.Remote
}

func (s *RemoteRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewRemote(tcPool)
	s.Require().NoError(s.repo.Migrate(context.Background()))
}

func (s *RemoteRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE users, drivers, shipments`)
	s.Require().NoError(err)
}

func (s *RemoteRepositorySuite) TestUsers_UpsertListDelete() {
	ctx := context.Background()

	u := domain.AdminUser{Username: "Jairo", Password: "pw1"}
	s.Require().NoError(s.repo.UpsertUser(ctx, u))

	u.Password = "pw2"
	s.Require().NoError(s.repo.UpsertUser(ctx, u))

	users, err := s.repo.ListUsers(ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("pw2", users[0].Password)

	s.Require().NoError(s.repo.DeleteUser(ctx, "Jairo"))
	users, err = s.repo.ListUsers(ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *RemoteRepositorySuite) TestDrivers_UpsertListDelete() {
	ctx := context.Background()

	d := domain.Driver{ID: "d1", Name: "Carlos Mendes", Phone: "551199991234"}
	s.Require().NoError(s.repo.UpsertDriver(ctx, d))

	drivers, err := s.repo.ListDrivers(ctx)
	s.Require().NoError(err)
	s.Require().Len(drivers, 1)
	s.Equal(d, drivers[0])

	s.Require().NoError(s.repo.DeleteDriver(ctx, "d1"))
	drivers, err = s.repo.ListDrivers(ctx)
	s.Require().NoError(err)
	s.Empty(drivers)
}

func (s *RemoteRepositorySuite) TestShipments_RoundTrip() {
	ctx := context.Background()

	ship := domain.Shipment{
		Code:        "RODO-90001",
		Status:      domain.StatusInTransit,
		Origin:      "São Paulo",
		Destination: "Rio de Janeiro",
		Progress:    45,
		DestinationCoordinates: domain.Coordinates{
			Lat: -22.8953, Lng: -43.2268,
		},
		DriverID:   "d1",
		DriverName: "Carlos Mendes",
		IsLive:     true,
	}
	s.Require().NoError(s.repo.UpsertShipment(ctx, ship))

	got, err := s.repo.GetShipment(ctx, "RODO-90001")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(ship, *got)

	all, err := s.repo.ListShipments(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(ship, all["RODO-90001"])

	missing, err := s.repo.GetShipment(ctx, "RODO-00000")
	s.Require().NoError(err)
	s.Nil(missing)

	s.Require().NoError(s.repo.DeleteShipment(ctx, "RODO-90001"))
	all, err = s.repo.ListShipments(ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func TestRemoteRepositorySuite(t *testing.T) {
	suite.Run(t, new(RemoteRepositorySuite))
}
