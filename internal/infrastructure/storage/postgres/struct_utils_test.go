package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stokado/internal/core/entity"
	"stokado/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expected := []string{
		"id", "version", "deletion_mark", "created_at", "updated_at",
		"code", "name", "email", "phone",
	}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
}

func TestStructToMap(t *testing.T) {
	now := time.Now().UTC()
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				Version:      5,
				DeletionMark: true,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			Code: "CUS-AAA0001",
			Name: "Test Customer",
		},
		Email: "test@example.com",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, "CUS-AAA0001", m["code"])
	assert.Equal(t, "Test Customer", m["name"])
	assert.Equal(t, "test@example.com", m["email"])
	assert.Equal(t, "", m["phone"])
}

func TestStructToMap_Pointer(t *testing.T) {
	cat := &mockCatalog{
		Catalog: entity.NewCatalog("VEN-AAA0001", "Vendor"),
	}

	m := StructToMap(cat)
	assert.Equal(t, "VEN-AAA0001", m["code"])
	assert.Equal(t, "Vendor", m["name"])
}
