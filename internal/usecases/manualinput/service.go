package manualinput

import (
	"github.com/sirupsen/logrus"

	"github.com/gravora/metrics-api/infrastructure/repository"
	"github.com/gravora/metrics-api/internal/config"
	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/internal/usecases/snapshotting"
	"github.com/gravora/metrics-api/pkg/utils"
)

// Service orquestra o caminho completo de uma submissão manual: posse da
// empresa, motor de cálculo e persistência. O motor em si fica no pacote
// snapshotting e não toca banco.
type Service struct {
	companyRepository      repository.CompanyRepository
	manualInputRepository  repository.ManualInputRepository
	channelInputRepository repository.ChannelInputRepository
	snapshotRepository     repository.SnapshotRepository
	dailyMetricsRepository repository.DailyMetricsRepository
	defaults               config.Snapshot
}

// NewService cria o serviço de submissão manual
func NewService(
	companyRepo repository.CompanyRepository,
	manualInputRepo repository.ManualInputRepository,
	channelInputRepo repository.ChannelInputRepository,
	snapshotRepo repository.SnapshotRepository,
	dailyMetricsRepo repository.DailyMetricsRepository,
	defaults config.Snapshot,
) Submitter {
	return &Service{
		companyRepository:      companyRepo,
		manualInputRepository:  manualInputRepo,
		channelInputRepository: channelInputRepo,
		snapshotRepository:     snapshotRepo,
		dailyMetricsRepository: dailyMetricsRepo,
		defaults:               defaults,
	}
}

// applyDefaults preenche moeda e fuso quando omitidos na submissão
func (s *Service) applyDefaults(input snapshotting.SubmissionInput) snapshotting.SubmissionInput {
	if input.Currency == "" {
		input.Currency = s.defaults.DefaultCurrency
	}

	if input.Timezone == "" {
		input.Timezone = s.defaults.DefaultTimezone
	}

	return input
}

// Submit valida, calcula e persiste uma submissão completa. Qualquer erro de
// validação rejeita o lote inteiro sem tocar o banco; a submissão anterior da
// empresa permanece intacta.
func (s *Service) Submit(userID int, companyID string, input snapshotting.SubmissionInput) (*SubmissionResult, error) {
	company, err := s.checkOwnership(userID, companyID)
	if err != nil {
		return nil, err
	}

	if input.PeriodType != "" && !input.PeriodType.Valid() {
		return nil, ErrInvalidPeriod
	}

	if input.Granularity != "" && !input.Granularity.Valid() {
		return nil, ErrInvalidGranularity
	}

	input = s.applyDefaults(input)

	result := snapshotting.Compute(input)
	if result.Snapshot == nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"issues":     len(result.Issues),
		}).Info("manual input: submission rejected by validation")

		return &SubmissionResult{
			Accepted: false,
			Issues:   result.Issues,
		}, nil
	}

	channels := snapshotting.AggregateChannels(input.ChannelRows)

	if err := s.persist(company.ID, input, result.Snapshot, channels); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"company_id":    companyID,
		"rows":          len(input.Rows),
		"channels":      len(channels),
		"quality_score": result.Snapshot.DataQualityScore,
	}).Info("manual input: submission accepted")

	return &SubmissionResult{
		Accepted: true,
		Issues:   result.Issues,
		Snapshot: result.Snapshot,
		Channels: channels,
	}, nil
}

// Validate executa o motor sem persistir nada. Usado pela validação
// interativa do formulário, linha a linha ou em lote.
func (s *Service) Validate(input snapshotting.SubmissionInput) *SubmissionResult {
	input = s.applyDefaults(input)

	result := snapshotting.Compute(input)

	return &SubmissionResult{
		Accepted: result.Snapshot != nil,
		Issues:   result.Issues,
		Snapshot: result.Snapshot,
		Channels: snapshotting.AggregateChannels(input.ChannelRows),
	}
}

// Load devolve a última submissão aceita da empresa, com todos os artefatos
// persistidos
func (s *Service) Load(userID int, companyID string) (*StoredSubmission, error) {
	company, err := s.checkOwnership(userID, companyID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshotRepository.GetByCompanyID(company.ID)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		return nil, ErrNoSubmission
	}

	rows, err := s.manualInputRepository.GetByCompanyID(company.ID)
	if err != nil {
		return nil, err
	}

	channelRows, err := s.channelInputRepository.GetByCompanyID(company.ID)
	if err != nil {
		return nil, err
	}

	channels, err := s.channelInputRepository.GetAggregatesByCompanyID(company.ID)
	if err != nil {
		return nil, err
	}

	dailyMetrics, err := s.dailyMetricsRepository.GetByCompanyID(company.ID)
	if err != nil {
		return nil, err
	}

	return &StoredSubmission{
		Rows:         rows,
		ChannelRows:  channelRows,
		Channels:     channels,
		Snapshot:     snapshot,
		DailyMetrics: dailyMetrics,
	}, nil
}

func (s *Service) checkOwnership(userID int, companyID string) (*domain.Company, error) {
	company, err := s.companyRepository.GetByIDAndUser(companyID, userID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"company_id": companyID,
			"user_id":    userID,
		}).Error("manual input: error fetching company")
		return nil, err
	}

	if company == nil {
		return nil, ErrCompanyNotFound
	}

	return company, nil
}

// persist grava todos os artefatos da submissão, substituindo os anteriores.
// As escritas são sequenciais; uma falha no meio deixa os dados anteriores
// parcialmente substituídos, e a próxima submissão aceita corrige o estado.
func (s *Service) persist(
	companyID string,
	input snapshotting.SubmissionInput,
	snapshot *domain.Snapshot,
	channels []domain.ChannelAggregate,
) error {
	if err := s.manualInputRepository.Replace(companyID, input.PeriodType, input.Granularity, input.Rows); err != nil {
		return err
	}

	if err := s.channelInputRepository.Replace(companyID, input.PeriodType, input.ChannelRows); err != nil {
		return err
	}

	if err := s.channelInputRepository.ReplaceAggregates(companyID, channels); err != nil {
		return err
	}

	if err := s.snapshotRepository.SaveOrUpdate(companyID, snapshot); err != nil {
		return err
	}

	return s.dailyMetricsRepository.Replace(companyID, buildDailyMetrics(input.Rows))
}

// buildDailyMetrics projeta as linhas da submissão na série por data dos
// gráficos. Linhas sem data são ignoradas.
func buildDailyMetrics(rows []domain.MetricRow) []domain.DailyMetric {
	metrics := make([]domain.DailyMetric, 0, len(rows))

	for _, row := range rows {
		if row.PeriodDate.IsZero() {
			continue
		}

		metrics = append(metrics, domain.DailyMetric{
			Date:     row.PeriodDate,
			Sessions: utils.IntOrZero(row.Sessions),
			Leads:    utils.IntOrZero(row.Leads),
			Sales:    utils.IntOrZero(row.Sales),
			Revenue:  utils.FloatOrZero(row.Revenue),
			AdSpend:  utils.FloatOrZero(row.AdSpend),
		})
	}

	return metrics
}
