package sales

import (
	"stokado/internal/domain"
)

// Repository defines the interface for sales transaction persistence.
type Repository interface {
	domain.DocumentRepository[*Transaction]
}
