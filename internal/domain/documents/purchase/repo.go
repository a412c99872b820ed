package purchase

import (
	"stokado/internal/domain"
)

// Repository defines the interface for purchase transaction persistence.
type Repository interface {
	domain.DocumentRepository[*Transaction]
}
