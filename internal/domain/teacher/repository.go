package teacher

import (
	"context"
	"errors"
)

var ErrTeacherNotFound = errors.New("teacher not found")

// Repository defines teacher read operations
type Repository interface {
	FindAll(ctx context.Context) ([]Teacher, error)
	FindByID(ctx context.Context, id int64) (*Teacher, error)
	FindByFaculty(ctx context.Context, facultyID int64) ([]Teacher, error)
}
