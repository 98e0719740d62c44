package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospstock/hospstock-api/internal/application/auth"
	"github.com/hospstock/hospstock-api/internal/application/dto"
	"github.com/hospstock/hospstock-api/internal/domain"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
	pkgjwt "github.com/hospstock/hospstock-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newAuthUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "hospstock-test",
	})
	return uc, repo
}

func TestRegisterUser(t *testing.T) {
	uc, repo := newAuthUseCase()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "alice@hopital.fr",
		Password: "motdepasse",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Alice", out.Name)
	// rôle par défaut quand il n'est pas fourni
	assert.Equal(t, entity.RoleMagasinier, out.Role)

	// le hash est stocké, jamais le mot de passe en clair
	stored := repo.byEmail["alice@hopital.fr"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "motdepasse", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterUser_EmailDejaUtilise(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "alice@hopital.fr", Password: "x"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "alice@hopital.fr", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrEmailDejaUtilise)
}

func TestLogin(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "alice@hopital.fr",
		Password: "motdepasse",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "alice@hopital.fr", Password: "motdepasse"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// le token embarque bien l'identité et le rôle
	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "alice@hopital.fr", Password: "motdepasse"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "alice@hopital.fr", Password: "autre"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UtilisateurInconnu(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "inconnu@hopital.fr", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
