package services

import (
	"context"

	"github.com/rs/zerolog"
	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Profile(ctx context.Context, userId string) (response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      zerolog.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger zerolog.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error().Err(err).Msg("account lookup failed")
		return response_models.AccountLoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, string(account.Role), account.PermissionNames())
	if err != nil {
		a.logger.Error().Err(err).Msg("token generation failed")
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.AccountLoginResponse{Token: token}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error().Err(err).Msg("account lookup failed")
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleRequester, // default role
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		a.logger.Error().Err(err).Msg("account insert failed")
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Profile(ctx context.Context, userId string) (response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userId)
	if err != nil {
		a.logger.Error().Err(err).Msg("account lookup failed")
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ProfileResponse{}, utils.ErrAccountNotFound
	}

	return response_models.ProfileResponse{
		ID:          account.ID.String(),
		Name:        account.Name,
		Email:       account.Email,
		Role:        string(account.Role),
		Permissions: account.PermissionNames(),
	}, nil
}
