package app

import (
	"fmt"

	"github.com/felixgeelhaar/dayplan/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/infrastructure/persistence"
)

// RepositoryFactory creates repositories based on the database driver.
type RepositoryFactory struct {
	conn   *database.Connection
	driver database.Driver
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(conn *database.Connection) *RepositoryFactory {
	return &RepositoryFactory{
		conn:   conn,
		driver: conn.Driver(),
	}
}

// TaskRepository creates a task repository for the configured driver.
func (f *RepositoryFactory) TaskRepository() (domain.TaskRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		return persistence.NewPostgresTaskRepository(f.conn.Pool()), nil
	case database.DriverSQLite:
		return persistence.NewSQLiteTaskRepository(f.conn.SQLite()), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// BlockRepository creates an unavailable-block repository for the configured driver.
func (f *RepositoryFactory) BlockRepository() (domain.BlockRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		return persistence.NewPostgresBlockRepository(f.conn.Pool()), nil
	case database.DriverSQLite:
		return persistence.NewSQLiteBlockRepository(f.conn.SQLite()), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// TimetableRepository creates a timetable repository for the configured driver.
func (f *RepositoryFactory) TimetableRepository() (domain.TimetableRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		return persistence.NewPostgresTimetableRepository(f.conn.Pool()), nil
	case database.DriverSQLite:
		return persistence.NewSQLiteTimetableRepository(f.conn.SQLite()), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}
