package manualinput

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gravora/metrics-api/infrastructure/repository/mocks"
	"github.com/gravora/metrics-api/internal/config"
	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/internal/usecases/snapshotting"
	"github.com/gravora/metrics-api/pkg/utils"
)

type serviceMocks struct {
	companyRepo      *mocks.MockCompanyRepository
	manualInputRepo  *mocks.MockManualInputRepository
	channelInputRepo *mocks.MockChannelInputRepository
	snapshotRepo     *mocks.MockSnapshotRepository
	dailyMetricsRepo *mocks.MockDailyMetricsRepository
}

func newServiceWithMocks(t *testing.T) (Submitter, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		companyRepo:      mocks.NewMockCompanyRepository(ctrl),
		manualInputRepo:  mocks.NewMockManualInputRepository(ctrl),
		channelInputRepo: mocks.NewMockChannelInputRepository(ctrl),
		snapshotRepo:     mocks.NewMockSnapshotRepository(ctrl),
		dailyMetricsRepo: mocks.NewMockDailyMetricsRepository(ctrl),
	}

	service := NewService(
		m.companyRepo,
		m.manualInputRepo,
		m.channelInputRepo,
		m.snapshotRepo,
		m.dailyMetricsRepo,
		config.Snapshot{DefaultCurrency: "USD", DefaultTimezone: "UTC"},
	)

	return service, m
}

func validInput() snapshotting.SubmissionInput {
	return snapshotting.SubmissionInput{
		Rows: []domain.MetricRow{
			{
				PeriodIndex: 0,
				PeriodDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				PeriodLabel: "Week 1",
				Sessions:    utils.IntPtr(1000),
				Clicks:      utils.IntPtr(500),
				Leads:       utils.IntPtr(100),
				Deals:       utils.IntPtr(50),
				Sales:       utils.IntPtr(25),
				Revenue:     utils.FloatPtr(5000),
				AdSpend:     utils.FloatPtr(1000),
			},
		},
		ChannelRows: []domain.ChannelRow{
			{
				ChannelName: "Instagram Ads",
				ChannelType: domain.ChannelTypeSocial,
				Sessions:    utils.IntPtr(600),
				Clicks:      utils.IntPtr(500),
				AdSpend:     utils.FloatPtr(700),
			},
		},
		PeriodType:  domain.Period30Days,
		Granularity: domain.GranularityWeek,
		Currency:    "KZT",
		Timezone:    "Asia/Almaty",
	}
}

func ownedCompany() *domain.Company {
	return &domain.Company{
		ID:     "a1b2c3",
		UserID: 7,
		Name:   "Demo Store",
		Active: true,
	}
}

func TestSubmitPersistsAcceptedSubmission(t *testing.T) {
	service, m := newServiceWithMocks(t)
	input := validInput()

	m.companyRepo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(ownedCompany(), nil)
	m.manualInputRepo.EXPECT().Replace("a1b2c3", domain.Period30Days, domain.GranularityWeek, input.Rows).Return(nil)
	m.channelInputRepo.EXPECT().Replace("a1b2c3", domain.Period30Days, input.ChannelRows).Return(nil)
	m.channelInputRepo.EXPECT().ReplaceAggregates("a1b2c3", gomock.Any()).Return(nil)
	m.snapshotRepo.EXPECT().SaveOrUpdate("a1b2c3", gomock.Any()).Return(nil)
	m.dailyMetricsRepo.EXPECT().Replace("a1b2c3", gomock.Any()).DoAndReturn(
		func(companyID string, metrics []domain.DailyMetric) error {
			require.Len(t, metrics, 1)
			assert.Equal(t, 1000, metrics[0].Sessions)
			assert.Equal(t, 5000.0, metrics[0].Revenue)
			return nil
		},
	)

	result, err := service.Submit(7, "a1b2c3", input)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Accepted)
	assert.Empty(t, result.Issues)
	require.NotNil(t, result.Snapshot)
	assert.Equal(t, domain.GateStatusSandbox, result.Snapshot.GateStatus)
	require.Len(t, result.Channels, 1)
	assert.Equal(t, "Instagram Ads", result.Channels[0].ChannelName)
}

func TestSubmitRejectsWithoutPersisting(t *testing.T) {
	service, m := newServiceWithMocks(t)

	input := validInput()
	input.Rows[0].Leads = utils.IntPtr(2000) // leads acima das sessões

	// Apenas a checagem de posse acontece; nenhum repositório de escrita é chamado
	m.companyRepo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(ownedCompany(), nil)

	result, err := service.Submit(7, "a1b2c3", input)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Accepted)
	assert.Nil(t, result.Snapshot)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, "row-0-leads", result.Issues[0].Field)
}

func TestSubmitCompanyNotFound(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.companyRepo.EXPECT().GetByIDAndUser("missing", 7).Return(nil, nil)

	result, err := service.Submit(7, "missing", validInput())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestSubmitCompanyFromAnotherUser(t *testing.T) {
	service, m := newServiceWithMocks(t)

	// A consulta filtra por user_id, então a empresa de outro usuário
	// simplesmente não aparece
	m.companyRepo.EXPECT().GetByIDAndUser("a1b2c3", 99).Return(nil, nil)

	result, err := service.Submit(99, "a1b2c3", validInput())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestSubmitInvalidPeriodType(t *testing.T) {
	service, m := newServiceWithMocks(t)

	input := validInput()
	input.PeriodType = "45days"

	m.companyRepo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(ownedCompany(), nil)

	result, err := service.Submit(7, "a1b2c3", input)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSubmitRepositoryFailure(t *testing.T) {
	service, m := newServiceWithMocks(t)
	input := validInput()

	dbErr := errors.New("connection reset")

	m.companyRepo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(ownedCompany(), nil)
	m.manualInputRepo.EXPECT().Replace("a1b2c3", domain.Period30Days, domain.GranularityWeek, input.Rows).Return(dbErr)

	result, err := service.Submit(7, "a1b2c3", input)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}

func TestValidateIsDryRun(t *testing.T) {
	// Nenhum EXPECT registrado: o dry run não pode tocar repositório algum
	service, _ := newServiceWithMocks(t)

	result := service.Validate(validInput())
	require.NotNil(t, result)

	assert.True(t, result.Accepted)
	require.NotNil(t, result.Snapshot)
	assert.Len(t, result.Channels, 1)
}

func TestValidateReportsWarningsWithSnapshot(t *testing.T) {
	service, _ := newServiceWithMocks(t)

	input := validInput()
	input.Rows[0].Clicks = nil
	input.Rows[0].AdSpend = utils.FloatPtr(500)

	result := service.Validate(input)
	require.NotNil(t, result)

	assert.True(t, result.Accepted)
	require.NotNil(t, result.Snapshot)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, domain.SeverityWarning, result.Issues[0].Severity)
}

func TestLoadReturnsStoredSubmission(t *testing.T) {
	service, m := newServiceWithMocks(t)

	storedRows := []domain.MetricRow{{PeriodIndex: 0, Sessions: utils.IntPtr(100)}}
	storedSnapshot := &domain.Snapshot{DataMode: domain.DataModeManualSandbox}

	m.companyRepo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(ownedCompany(), nil)
	m.snapshotRepo.EXPECT().GetByCompanyID("a1b2c3").Return(storedSnapshot, nil)
	m.manualInputRepo.EXPECT().GetByCompanyID("a1b2c3").Return(storedRows, nil)
	m.channelInputRepo.EXPECT().GetByCompanyID("a1b2c3").Return([]domain.ChannelRow{}, nil)
	m.channelInputRepo.EXPECT().GetAggregatesByCompanyID("a1b2c3").Return([]domain.ChannelAggregate{}, nil)
	m.dailyMetricsRepo.EXPECT().GetByCompanyID("a1b2c3").Return([]domain.DailyMetric{}, nil)

	stored, err := service.Load(7, "a1b2c3")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, storedRows, stored.Rows)
	assert.Equal(t, storedSnapshot, stored.Snapshot)
}

func TestLoadWithoutSubmission(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.companyRepo.EXPECT().GetByIDAndUser("a1b2c3", 7).Return(ownedCompany(), nil)
	m.snapshotRepo.EXPECT().GetByCompanyID("a1b2c3").Return(nil, nil)

	stored, err := service.Load(7, "a1b2c3")
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, ErrNoSubmission)
}

func TestBuildDailyMetricsSkipsUndatedRows(t *testing.T) {
	rows := []domain.MetricRow{
		{PeriodIndex: 0, Sessions: utils.IntPtr(100)}, // sem data
		{
			PeriodIndex: 1,
			PeriodDate:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Sessions:    utils.IntPtr(200),
			Revenue:     utils.FloatPtr(300),
		},
	}

	metrics := buildDailyMetrics(rows)
	require.Len(t, metrics, 1)
	assert.Equal(t, 200, metrics[0].Sessions)
	assert.Equal(t, 300.0, metrics[0].Revenue)
	assert.Equal(t, 0.0, metrics[0].AdSpend)
}

func TestValidateFillsCurrencyAndTimezoneDefaults(t *testing.T) {
	service, _ := newServiceWithMocks(t)

	input := validInput()
	input.Currency = ""
	input.Timezone = ""

	result := service.Validate(input)
	require.NotNil(t, result.Snapshot)
	assert.Equal(t, "USD", result.Snapshot.Currency)
	assert.Equal(t, "UTC", result.Snapshot.Timezone)
}
