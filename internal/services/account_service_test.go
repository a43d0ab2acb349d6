package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail  map[string]*db_models.Account
	byId     map[string]*db_models.Account
	inserted []*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: make(map[string]*db_models.Account),
		byId:    make(map[string]*db_models.Account),
	}
}

func (f *fakeAccountRepo) add(a *db_models.Account) {
	f.byEmail[a.Email] = a
	f.byId[a.ID.String()] = a
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	f.inserted = append(f.inserted, account)
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return f.byId[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash fixture: %v", err)
	}
	repo := newFakeAccountRepo()
	repo.add(&db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         db_models.RoleRequester,
	})
	svc := NewAccountService(repo, zerolog.Nop())

	got, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "ana@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got.Token == "" {
		t.Error("login did not issue a token")
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "secret"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginTokenCarriesAccountGrants(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash fixture: %v", err)
	}
	repo := newFakeAccountRepo()
	repo.add(&db_models.Account{
		BaseModel:        db_models.BaseModel{ID: uuid.New()},
		Email:            "rui@example.com",
		PasswordHash:     hash,
		Role:             db_models.RoleRequester,
		ExtraPermissions: datatypes.JSON(`["approve_request"]`),
	})
	svc := NewAccountService(repo, zerolog.Nop())

	login, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "rui@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := utils.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	perms := db_models.PermissionsFromNames(claims.Permissions)
	if !db_models.HasPermission(perms, db_models.PermApproveRequest) {
		t.Errorf("token permissions = %v, want the per-account approve_request grant", claims.Permissions)
	}
	if !db_models.HasPermission(perms, db_models.PermCreateRequest) {
		t.Errorf("token permissions = %v, missing the role's own set", claims.Permissions)
	}
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	req := request_models.SignUpRequest{DisplayName: "Ana", Email: "ana@example.com", Password: "secret"}
	if err := svc.CreateAccount(context.Background(), req); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("inserted %d accounts, want 1", len(repo.inserted))
	}
	created := repo.inserted[0]
	if created.Role != db_models.RoleRequester {
		t.Errorf("role = %q, want the requester default", created.Role)
	}
	if created.PasswordHash == "secret" || created.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	err := svc.CreateAccount(context.Background(), req)
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email: error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestProfileIncludesEffectivePermissions(t *testing.T) {
	repo := newFakeAccountRepo()
	account := &db_models.Account{
		BaseModel:        db_models.BaseModel{ID: uuid.New()},
		Name:             "Rui",
		Email:            "rui@example.com",
		Role:             db_models.RoleApprover,
		ExtraPermissions: datatypes.JSON(`["view_all_requests"]`),
	}
	repo.add(account)
	svc := NewAccountService(repo, zerolog.Nop())

	got, err := svc.Profile(context.Background(), account.ID.String())
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if got.Role != string(db_models.RoleApprover) {
		t.Errorf("role = %q", got.Role)
	}
	want := map[string]bool{"create_request": true, "approve_request": true, "view_all_requests": true}
	for _, p := range got.Permissions {
		delete(want, p)
	}
	if len(want) != 0 {
		t.Errorf("profile permissions missing %v (got %v)", want, got.Permissions)
	}

	_, err = svc.Profile(context.Background(), uuid.NewString())
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("unknown id: error = %v, want ErrAccountNotFound", err)
	}
}
