package companying

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gravora/metrics-api/infrastructure/repository"
	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/pkg/utils"
)

// Erros esperados do ciclo de vida de empresas
var (
	ErrCompanyNotFound = errors.New("empresa não encontrada ou não pertence ao usuário")
	ErrEmptyName       = errors.New("o nome da empresa é obrigatório")
)

// Manager define o ciclo de vida de empresas do onboarding: criação,
// contexto de negócio, mapeamento de eventos e ativação
type Manager interface {
	Create(userID int, name string) (*domain.Company, error)
	Get(userID int, companyID string) (*domain.Company, error)
	List(userID int) ([]*domain.Company, error)
	Activate(userID int, companyID string) error
	SaveContext(userID int, context *domain.BusinessContext) error
	GetContext(userID int, companyID string) (*domain.BusinessContext, error)
	SaveMapping(userID int, companyID string, mapping domain.EventMapping) error
}

// Service implementa Manager sobre o repositório de empresas
type Service struct {
	companyRepository repository.CompanyRepository
}

// NewService cria o serviço de empresas
func NewService(companyRepo repository.CompanyRepository) Manager {
	return &Service{
		companyRepository: companyRepo,
	}
}

// Create registra uma empresa nova para o usuário. O ID é um nanoid curto,
// usado nas URLs do dashboard.
func (s *Service) Create(userID int, name string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		ID:     id,
		UserID: userID,
		Name:   name,
		Active: false,
	}

	created, err := s.companyRepository.Create(company)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"name":    name,
		}).Error("company: error creating company")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"company_id": created.ID,
		"user_id":    userID,
	}).Info("company: created")

	return created, nil
}

// Get devolve a empresa se ela pertencer ao usuário
func (s *Service) Get(userID int, companyID string) (*domain.Company, error) {
	return s.checkOwnership(userID, companyID)
}

// List devolve todas as empresas do usuário
func (s *Service) List(userID int) ([]*domain.Company, error) {
	return s.companyRepository.ListByUser(userID)
}

// Activate marca a empresa como ativa, encerrando o onboarding
func (s *Service) Activate(userID int, companyID string) error {
	company, err := s.checkOwnership(userID, companyID)
	if err != nil {
		return err
	}

	if company.Active {
		return nil
	}

	return s.companyRepository.SetActive(companyID, true)
}

// SaveContext grava (ou substitui) o contexto de negócio da empresa
func (s *Service) SaveContext(userID int, context *domain.BusinessContext) error {
	if _, err := s.checkOwnership(userID, context.CompanyID); err != nil {
		return err
	}

	return s.companyRepository.SaveContext(context)
}

// GetContext devolve o contexto de negócio da empresa, ou nil se o
// onboarding ainda não o preencheu
func (s *Service) GetContext(userID int, companyID string) (*domain.BusinessContext, error) {
	if _, err := s.checkOwnership(userID, companyID); err != nil {
		return nil, err
	}

	return s.companyRepository.GetContext(companyID)
}

// SaveMapping atualiza apenas o mapeamento de eventos, preservando o
// restante do contexto já gravado
func (s *Service) SaveMapping(userID int, companyID string, mapping domain.EventMapping) error {
	if _, err := s.checkOwnership(userID, companyID); err != nil {
		return err
	}

	context, err := s.companyRepository.GetContext(companyID)
	if err != nil {
		return err
	}

	if context == nil {
		context = &domain.BusinessContext{CompanyID: companyID}
	}

	context.Mapping = mapping

	return s.companyRepository.SaveContext(context)
}

func (s *Service) checkOwnership(userID int, companyID string) (*domain.Company, error) {
	company, err := s.companyRepository.GetByIDAndUser(companyID, userID)
	if err != nil {
		return nil, err
	}

	if company == nil {
		return nil, ErrCompanyNotFound
	}

	return company, nil
}
