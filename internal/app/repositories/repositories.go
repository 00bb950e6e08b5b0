package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AlumniRepository *AlumniRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool, recorder QueryRecorder) *Repositories {
	return &Repositories{
		AlumniRepository: NewAlumniRepository(db, recorder),
	}
}
