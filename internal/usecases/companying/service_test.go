package companying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gravora/metrics-api/infrastructure/repository/mocks"
	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/pkg/utils"
)

func newServiceWithMock(t *testing.T) (Manager, *mocks.MockCompanyRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompanyRepository(ctrl)
	return NewService(repo), repo
}

func TestCreateGeneratesShortID(t *testing.T) {
	service, repo := newServiceWithMock(t)

	repo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(company *domain.Company) (*domain.Company, error) {
			assert.Len(t, company.ID, 6)
			assert.Equal(t, 7, company.UserID)
			assert.Equal(t, "Demo Store", company.Name)
			assert.False(t, company.Active)
			return company, nil
		},
	)

	company, err := service.Create(7, "  Demo Store  ")
	require.NoError(t, err)
	assert.Equal(t, "Demo Store", company.Name)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	service, _ := newServiceWithMock(t)

	company, err := service.Create(7, "   ")
	assert.Nil(t, company)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestActivateOnlyOwnCompany(t *testing.T) {
	service, repo := newServiceWithMock(t)

	repo.EXPECT().GetByIDAndUser("a1b2c3", 99).Return(nil, nil)

	err := service.Activate(99, "a1b2c3")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestActivateIsIdempotent(t *testing.T) {
	service, repo := newServiceWithMock(t)

	active := &domain.Company{ID: "a1b2c3", UserID: 7, Active: true}
	repo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(active, nil)
	// SetActive não deve ser chamado para empresa já ativa

	err := service.Activate(7, "a1b2c3")
	assert.NoError(t, err)
}

func TestSaveMappingPreservesContext(t *testing.T) {
	service, repo := newServiceWithMock(t)

	industry := "ecommerce"
	existing := &domain.BusinessContext{
		CompanyID: "a1b2c3",
		Industry:  &industry,
		Goals:     []string{"growth"},
	}

	mapping := domain.EventMapping{
		SaleEventType: utils.StringPtr("purchase"),
		RepeatWindow:  utils.IntPtr(30),
	}

	repo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(&domain.Company{ID: "a1b2c3", UserID: 7}, nil)
	repo.EXPECT().GetContext("a1b2c3").Return(existing, nil)
	repo.EXPECT().SaveContext(gomock.Any()).DoAndReturn(
		func(context *domain.BusinessContext) error {
			assert.Equal(t, &industry, context.Industry)
			assert.Equal(t, []string{"growth"}, context.Goals)
			require.NotNil(t, context.Mapping.SaleEventType)
			assert.Equal(t, "purchase", *context.Mapping.SaleEventType)
			return nil
		},
	)

	err := service.SaveMapping(7, "a1b2c3", mapping)
	assert.NoError(t, err)
}

func TestSaveMappingWithoutExistingContext(t *testing.T) {
	service, repo := newServiceWithMock(t)

	repo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(&domain.Company{ID: "a1b2c3", UserID: 7}, nil)
	repo.EXPECT().GetContext("a1b2c3").Return(nil, nil)
	repo.EXPECT().SaveContext(gomock.Any()).DoAndReturn(
		func(context *domain.BusinessContext) error {
			assert.Equal(t, "a1b2c3", context.CompanyID)
			return nil
		},
	)

	err := service.SaveMapping(7, "a1b2c3", domain.EventMapping{})
	assert.NoError(t, err)
}
