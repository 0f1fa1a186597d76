package account

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign"
	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	"github.com/vfg2006/mail-insights-api/infrastructure/repository"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/mail-insights-api/pkg/utils"
)

type AccountService interface {
	CreateAccount(ctx context.Context, request *domain.CreateAccountRequest) (*domain.AccountResponse, error)
	UpdateAccount(ctx context.Context, request *domain.UpdateAccountRequest) (*domain.AccountResponse, error)
	DeactivateAccount(ctx context.Context, accountID string) error
	ListAccounts(ctx context.Context, onlyActive bool) ([]*domain.AccountResponse, error)
	TestConnection(ctx context.Context, accountID string) (*domain.ConnectionTestResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	factory           acclient.Factory
	integrator        activecampaign.Integrator
	newID             func() (string, error)
}

func NewService(
	accountRepository repository.AccountRepository,
	factory acclient.Factory,
	integrator activecampaign.Integrator,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		factory:           factory,
		integrator:        integrator,
		newID:             utils.GenerateID,
	}
}

func (s *Service) ListAccounts(ctx context.Context, onlyActive bool) ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, onlyActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	response := make([]*domain.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toResponse(account))
	}

	return response, nil
}

func (s *Service) CreateAccount(ctx context.Context, request *domain.CreateAccountRequest) (*domain.AccountResponse, error) {
	baseURL := normalizeBaseURL(request.BaseURL)
	name := strings.TrimSpace(request.Name)
	if err := validate(name, baseURL, request.APIKey); err != nil {
		return nil, err
	}

	existing, err := s.accountRepository.GetAccountByBaseURL(ctx, baseURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conta por URL")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}
	if existing != nil {
		return nil, NewAccountErrorWithID(ErrAccountAlreadyExists, apiErrors.ErrAccountAlreadyExists, existing.ID, baseURL)
	}

	accountID, err := s.newID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	account := &domain.Account{
		ID:       accountID,
		Name:     name,
		BaseURL:  baseURL,
		APIKey:   request.APIKey,
		IsActive: request.IsActive == nil || *request.IsActive,
	}

	if err := s.accountRepository.CreateAccount(ctx, account); err != nil {
		logrus.WithError(err).Error("Erro ao criar conta")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar conta")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"name":       account.Name,
	}).Info("Conta criada")

	return toResponse(account), nil
}

func (s *Service) UpdateAccount(ctx context.Context, request *domain.UpdateAccountRequest) (*domain.AccountResponse, error) {
	if request.ID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	account, err := s.getAccount(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		account.Name = strings.TrimSpace(*request.Name)
	}
	if request.BaseURL != nil {
		account.BaseURL = normalizeBaseURL(*request.BaseURL)
	}
	if request.APIKey != nil {
		account.APIKey = *request.APIKey
	}
	if request.IsActive != nil {
		account.IsActive = *request.IsActive
	}

	if err := validate(account.Name, account.BaseURL, account.APIKey); err != nil {
		err.AccountID = account.ID
		return nil, err
	}

	if request.BaseURL != nil {
		existing, err := s.accountRepository.GetAccountByBaseURL(ctx, account.BaseURL)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar conta por URL")
			return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, account.ID, "Erro ao buscar conta no banco de dados")
		}
		if existing != nil && existing.ID != account.ID {
			return nil, NewAccountErrorWithID(ErrAccountAlreadyExists, apiErrors.ErrAccountAlreadyExists, account.ID, account.BaseURL)
		}
	}

	if err := s.accountRepository.UpdateAccount(ctx, account); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar conta")
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, account.ID, "Falha ao atualizar conta no banco de dados")
	}

	return toResponse(account), nil
}

func (s *Service) DeactivateAccount(ctx context.Context, accountID string) error {
	if _, err := s.getAccount(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepository.SetActive(ctx, accountID, false); err != nil {
		logrus.WithError(err).Error("Erro ao desativar conta")
		return NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, accountID, "Falha ao desativar conta")
	}

	logrus.WithField("account_id", accountID).Info("Conta desativada")
	return nil
}

// TestConnection usa as credenciais armazenadas; contas inativas também podem ser testadas
func (s *Service) TestConnection(ctx context.Context, accountID string) (*domain.ConnectionTestResponse, error) {
	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	client := s.factory.New(acclient.Credentials{
		AccountID: account.ID,
		BaseURL:   account.BaseURL,
		APIKey:    account.APIKey,
	})

	result := s.integrator.TestConnection(ctx, client)

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"success":    result.Success,
	}).Info("Teste de conexão executado")

	return result, nil
}

func (s *Service) getAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	account, err := s.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conta por id")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}
	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "Conta não encontrada")
	}
	return account, nil
}

func normalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

func validate(name, baseURL, apiKey string) *AccountError {
	if n := utf8.RuneCountInString(name); n < 1 || n > 100 {
		return NewAccountError(ErrInvalidName, apiErrors.ErrAccountInvalidData, "name")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return NewAccountError(ErrInvalidBaseURL, apiErrors.ErrAccountInvalidData, "baseUrl")
	}
	if !strings.Contains(parsed.Host, "activecampaign.com") && !strings.Contains(parsed.Host, "api-us") {
		return NewAccountError(ErrInvalidBaseURL, apiErrors.ErrAccountInvalidData, "baseUrl")
	}

	if n := len(apiKey); n < 10 || n > 200 {
		return NewAccountError(ErrInvalidAPIKey, apiErrors.ErrAccountInvalidData, "apiKey")
	}

	return nil
}

func toResponse(account *domain.Account) *domain.AccountResponse {
	response := &domain.AccountResponse{
		ID:              account.ID,
		Name:            account.Name,
		BaseURL:         account.BaseURL,
		IsActive:        account.IsActive,
		HasAPIKey:       account.APIKey != "",
		ContactCount:    account.ContactCount,
		ContactLimit:    account.ContactLimit,
		LastContactSync: account.LastContactSync,
	}

	if account.ContactLimit != nil && *account.ContactLimit > 0 {
		usage := utils.RoundWithTwoDecimalPlace(utils.Ratio(account.ContactCount, *account.ContactLimit) * 100)
		response.ContactUsage = &usage
	}

	return response
}
