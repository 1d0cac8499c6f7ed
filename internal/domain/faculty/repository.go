package faculty

import (
	"context"
	"errors"
)

var ErrFacultyNotFound = errors.New("faculty not found")

// Repository defines faculty read operations
type Repository interface {
	FindAll(ctx context.Context) ([]Faculty, error)
	FindByID(ctx context.Context, id int64) (*Faculty, error)
}
