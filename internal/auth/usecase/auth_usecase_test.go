package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"

	authdomain "dayscount-backend/internal/auth/domain"
	authdto "dayscount-backend/internal/auth/dto"
	"dayscount-backend/internal/auth/repository"
	"dayscount-backend/pkg/config"
)

type fakeUserRepo struct {
	usersByEmail  map[string]*authdomain.User
	refreshTokens map[string]*authdomain.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByEmail:  make(map[string]*authdomain.User),
		refreshTokens: make(map[string]*authdomain.RefreshToken),
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return r.usersByEmail[email], nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range r.usersByEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.refreshTokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return r.refreshTokens[token], nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteRefreshTokensByUser(userID string) error {
	for k, t := range r.refreshTokens {
		if t.UserID == userID {
			delete(r.refreshTokens, k)
		}
	}
	return nil
}

type fakeFCMRepo struct {
	tokens map[string]string // token -> userID
}

func newFakeFCMRepo() *fakeFCMRepo {
	return &fakeFCMRepo{tokens: make(map[string]string)}
}

func (r *fakeFCMRepo) SaveToken(userID, token, deviceInfo string) error {
	r.tokens[token] = userID
	return nil
}

func (r *fakeFCMRepo) GetTokensByUserID(userID string) ([]authdomain.FCMToken, error) {
	var out []authdomain.FCMToken
	for token, uid := range r.tokens {
		if uid == userID {
			out = append(out, authdomain.FCMToken{UserID: uid, Token: token})
		}
	}
	return out, nil
}

func (r *fakeFCMRepo) DeleteToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeFCMRepo) DeleteTokensByUserID(userID string) error {
	for token, uid := range r.tokens {
		if uid == userID {
			delete(r.tokens, token)
		}
	}
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.FCMTokenRepository = (*fakeFCMRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeFCMRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("Register returned empty tokens")
	}
	if resp.User.Provider != "email" {
		t.Errorf("provider = %q, want email", resp.User.Provider)
	}

	// Duplicate registration is rejected.
	if _, err := uc.Register(&authdto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	}); err == nil {
		t.Error("expected error for duplicate registration")
	}

	loginResp, err := uc.Login(&authdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loginResp.User.ID != resp.User.ID {
		t.Error("Login returned a different user")
	}

	if _, err := uc.Login(&authdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}); err == nil {
		t.Error("expected error for wrong password")
	}

	if _, err := uc.Login(&authdto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	}); err == nil {
		t.Error("expected error for unknown email")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeFCMRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "bob@example.com",
		Password: "secret123",
		Name:     "Bob",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := uc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if user.ID != resp.User.ID {
		t.Errorf("validated user ID = %q, want %q", user.ID, resp.User.ID)
	}

	if _, err := uc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}

	// A token signed with a different secret is rejected.
	otherCfg := testConfig()
	otherCfg.JWTSecret = "other-secret"
	otherUC := NewAuthUsecase(newFakeUserRepo(), newFakeFCMRepo(), otherCfg)
	if _, err := otherUC.ValidateToken(resp.AccessToken); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}

func TestRefreshTokenFlow(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUsecase(userRepo, newFakeFCMRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "carol@example.com",
		Password: "secret123",
		Name:     "Carol",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.User.ID != resp.User.ID {
		t.Error("RefreshToken returned a different user")
	}

	// Once logged out, the refresh token no longer works.
	newToken := refreshed.RefreshToken
	if err := uc.Logout(newToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := uc.RefreshToken(newToken); err == nil {
		t.Error("expected error for revoked refresh token")
	}
}

func TestFCMTokenRegistration(t *testing.T) {
	fcmRepo := newFakeFCMRepo()
	uc := NewAuthUsecase(newFakeUserRepo(), fcmRepo, testConfig())

	if err := uc.RegisterFCMToken("user-1", "device-token-1", "pixel 8"); err != nil {
		t.Fatalf("RegisterFCMToken: %v", err)
	}

	tokens, _ := fcmRepo.GetTokensByUserID("user-1")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}

	if err := uc.UnregisterFCMToken("device-token-1"); err != nil {
		t.Fatalf("UnregisterFCMToken: %v", err)
	}
	tokens, _ = fcmRepo.GetTokensByUserID("user-1")
	if len(tokens) != 0 {
		t.Fatalf("got %d tokens after unregister, want 0", len(tokens))
	}
}
