package domain

import "github.com/google/uuid"

// Category groups vacancies by professional area.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
}
