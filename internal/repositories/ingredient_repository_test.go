package repositories

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/jackmisner/BrewTracker-sub011/internal/database"
	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

type IngredientRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo IngredientRepositoryInterface
	ctx  context.Context
}

func TestIngredientRepositorySuite(t *testing.T) {
	suite.Run(t, new(IngredientRepositoryTestSuite))
}

func (s *IngredientRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewIngredientRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *IngredientRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *IngredientRepositoryTestSuite) newIngredient(ingredientType, name string) *models.CatalogIngredient {
	return &models.CatalogIngredient{
		Type:        ingredientType,
		Name:        name,
		Description: gofakeit.Sentence(6),
	}
}

func (s *IngredientRepositoryTestSuite) TestCreate() {
	ingredient := s.newIngredient(models.IngredientTypeGrain, "Pale Ale Malt")
	ingredient.GrainType = "base"
	ingredient.Color = models.Float64Ptr(1.8)
	ingredient.Potential = models.Float64Ptr(1.036)

	err := s.repo.Create(s.ctx, ingredient)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, ingredient.ID)
	s.False(ingredient.CreatedAt.IsZero())
}

func (s *IngredientRepositoryTestSuite) TestCreate_NilIngredient() {
	err := s.repo.Create(s.ctx, nil)

	s.Error(err)
	s.Contains(err.Error(), "cannot be nil")
}

func (s *IngredientRepositoryTestSuite) TestCreate_InvalidType() {
	ingredient := s.newIngredient("spice", "Coriander")

	err := s.repo.Create(s.ctx, ingredient)

	s.Error(err)
}

func (s *IngredientRepositoryTestSuite) TestGetByID() {
	created := s.newIngredient(models.IngredientTypeHop, "Cascade")
	created.AlphaAcid = models.Float64Ptr(5.7)
	s.Require().NoError(s.repo.Create(s.ctx, created))

	found, err := s.repo.GetByID(s.ctx, created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Cascade", found.Name)
	s.Equal(models.Float64Ptr(5.7), found.AlphaAcid)
}

func (s *IngredientRepositoryTestSuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(s.ctx, uuid.New())

	s.Nil(found)
	s.ErrorIs(err, ErrIngredientNotFound)
}

func (s *IngredientRepositoryTestSuite) TestListByType() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeHop, "Centennial")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeHop, "Cascade")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeGrain, "Pale Ale Malt")))

	hops, err := s.repo.ListByType(s.ctx, models.IngredientTypeHop)

	s.Require().NoError(err)
	s.Require().Len(hops, 2)
	s.Equal("Cascade", hops[0].Name)
	s.Equal("Centennial", hops[1].Name)
}

func (s *IngredientRepositoryTestSuite) TestListByType_Empty() {
	ingredients, err := s.repo.ListByType(s.ctx, models.IngredientTypeYeast)

	s.Require().NoError(err)
	s.Empty(ingredients)
}

func (s *IngredientRepositoryTestSuite) TestListAll_OrderedByTypeThenName() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeYeast, "California Ale")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeGrain, "Pale Ale Malt")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeGrain, "Caramel Malt - 60L")))

	all, err := s.repo.ListAll(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Caramel Malt - 60L", all[0].Name)
	s.Equal("Pale Ale Malt", all[1].Name)
	s.Equal("California Ale", all[2].Name)
}

func (s *IngredientRepositoryTestSuite) TestSearch() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeGrain, "Caramel Malt - 60L")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeGrain, "Pale Ale Malt")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newIngredient(models.IngredientTypeHop, "Cascade")))

	testCases := []struct {
		ingredientType string
		query          string
		expectedNames  []string
		description    string
	}{
		{models.IngredientTypeGrain, "", []string{"Caramel Malt - 60L", "Pale Ale Malt"}, "type filter only"},
		{"", "malt", []string{"Caramel Malt - 60L", "Pale Ale Malt"}, "name fragment only"},
		{"", "CARAMEL", []string{"Caramel Malt - 60L"}, "case insensitive fragment"},
		{models.IngredientTypeHop, "malt", nil, "type and fragment both applied"},
		{"", "", []string{"Caramel Malt - 60L", "Cascade", "Pale Ale Malt"}, "no filters returns everything"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			found, err := s.repo.Search(s.ctx, tc.ingredientType, tc.query)
			s.Require().NoError(err)

			names := make([]string, 0, len(found))
			for _, ingredient := range found {
				names = append(names, ingredient.Name)
			}
			if tc.expectedNames == nil {
				s.Empty(names)
			} else {
				s.Equal(tc.expectedNames, names)
			}
		})
	}
}
