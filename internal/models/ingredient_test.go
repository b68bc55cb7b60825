package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIngredient_Validate(t *testing.T) {
	tests := []struct {
		name       string
		ingredient CatalogIngredient
		wantErr    bool
		errMsg     string
	}{
		{
			name: "valid grain",
			ingredient: CatalogIngredient{
				Type:      IngredientTypeGrain,
				Name:      "Pale Ale Malt",
				GrainType: "base",
				Color:     Float64Ptr(1.8),
			},
			wantErr: false,
		},
		{
			name: "valid other with no attributes",
			ingredient: CatalogIngredient{
				Type: IngredientTypeOther,
				Name: "Irish Moss",
			},
			wantErr: false,
		},
		{
			name: "empty name",
			ingredient: CatalogIngredient{
				Type: IngredientTypeHop,
				Name: "",
			},
			wantErr: true,
			errMsg:  "ingredient name is required",
		},
		{
			name: "invalid type",
			ingredient: CatalogIngredient{
				Type: "mineral",
				Name: "Gypsum",
			},
			wantErr: true,
			errMsg:  "invalid ingredient type",
		},
		{
			name: "empty type",
			ingredient: CatalogIngredient{
				Type: "",
				Name: "Cascade",
			},
			wantErr: true,
			errMsg:  "invalid ingredient type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ingredient.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogIngredient_BeforeCreate(t *testing.T) {
	ingredient := CatalogIngredient{
		Type: IngredientTypeYeast,
		Name: "California Ale",
	}

	err := ingredient.BeforeCreate(nil)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ingredient.ID)
	assert.False(t, ingredient.CreatedAt.IsZero())
	assert.False(t, ingredient.UpdatedAt.IsZero())
}

func TestCatalogIngredient_BeforeCreate_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	ingredient := CatalogIngredient{
		ID:   id,
		Type: IngredientTypeGrain,
		Name: "Munich Malt",
	}

	err := ingredient.BeforeCreate(nil)

	require.NoError(t, err)
	assert.Equal(t, id, ingredient.ID)
}

func TestIsValidIngredientType(t *testing.T) {
	for _, validType := range AllIngredientTypes() {
		assert.True(t, IsValidIngredientType(validType))
	}

	assert.False(t, IsValidIngredientType("mineral"))
	assert.False(t, IsValidIngredientType("Grain"))
	assert.False(t, IsValidIngredientType(""))
}

func TestCatalogIngredient_TableName(t *testing.T) {
	ingredient := CatalogIngredient{}
	assert.Equal(t, "catalog_ingredients", ingredient.TableName())
}
