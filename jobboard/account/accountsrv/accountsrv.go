package accountsrv

import (
	"context"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/account"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
	"github.com/google/uuid"
)

// AccountService provides registration, authentication and profile operations
type AccountService struct {
	userRepo      account.UserRepository
	candidateRepo candidate.Repository
	employerRepo  employer.Repository
	hasher        account.PasswordHasher
	tokens        *auth.TokenService
}

// NewAccountService creates a new instance of the account service
func NewAccountService(
	userRepo account.UserRepository,
	candidateRepo candidate.Repository,
	employerRepo employer.Repository,
	hasher account.PasswordHasher,
	tokens *auth.TokenService,
) *AccountService {
	return &AccountService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		hasher:        hasher,
		tokens:        tokens,
	}
}

// Register creates a new user account with its candidate or employer profile
func (s *AccountService) Register(ctx context.Context, req account.RegisterRequest) (*account.AuthResponse, error) {
	userType := kernel.UserType(req.UserType)
	if !userType.IsValid() || userType == kernel.UserTypeAdmin {
		return nil, account.ErrInvalidUserType().WithDetail("user_type", req.UserType)
	}

	// Business rule: the registration payload must carry the profile
	// matching the declared user type
	switch userType {
	case kernel.UserTypeCandidate:
		if req.Candidate == nil {
			return nil, account.ErrInvalidRequest().WithDetail("candidate", "profile payload required")
		}
	case kernel.UserTypeEmployer:
		if req.Employer == nil {
			return nil, account.ErrInvalidRequest().WithDetail("employer", "profile payload required")
		}
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, kernel.Email(req.Email))
	if err != nil {
		return nil, errx.Wrap(err, "failed to check email availability", errx.TypeInternal)
	}
	if exists {
		return nil, account.ErrEmailTaken().WithDetail("email", req.Email)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	newUser := &account.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Email:        kernel.Email(req.Email),
		PasswordHash: passwordHash,
		UserType:     userType,
		Phone:        kernel.Phone(req.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	// Create the type-specific profile
	switch userType {
	case kernel.UserTypeCandidate:
		profile := &candidate.Candidate{
			ID:        kernel.NewCandidateID(uuid.NewString()),
			UserID:    newUser.ID,
			FirstName: kernel.FirstName(req.Candidate.FirstName),
			LastName:  kernel.LastName(req.Candidate.LastName),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.candidateRepo.Create(ctx, profile); err != nil {
			return nil, errx.Wrap(err, "failed to create candidate profile", errx.TypeInternal)
		}
	case kernel.UserTypeEmployer:
		profile := &employer.Employer{
			ID:          kernel.NewEmployerID(uuid.NewString()),
			UserID:      newUser.ID,
			CompanyName: kernel.CompanyName(req.Employer.CompanyName),
			Website:     req.Employer.Website,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.employerRepo.Create(ctx, profile); err != nil {
			return nil, errx.Wrap(err, "failed to create employer profile", errx.TypeInternal)
		}
	}

	logx.Infof("registered new %s account %s", userType, newUser.ID)

	tokens, err := s.issueTokens(newUser)
	if err != nil {
		return nil, err
	}

	return &account.AuthResponse{
		User:   account.ToUserResponse(newUser),
		Tokens: *tokens,
	}, nil
}

// Login authenticates a user by email and password
func (s *AccountService) Login(ctx context.Context, req account.LoginRequest) (*account.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, kernel.Email(req.Email))
	if err != nil {
		// Conceal whether the email is registered
		return nil, account.ErrInvalidCredentials()
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		return nil, account.ErrInvalidCredentials()
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	return &account.AuthResponse{
		User:   account.ToUserResponse(user),
		Tokens: *tokens,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*account.TokenPair, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, account.ErrNotFound()
	}

	return s.issueTokens(user)
}

// GetProfile retrieves the account profile of the authenticated user
func (s *AccountService) GetProfile(ctx context.Context, userID kernel.UserID) (*account.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, account.ErrNotFound().WithDetail("user_id", userID.String())
	}

	resp := account.ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile updates the account-level profile fields
func (s *AccountService) UpdateProfile(ctx context.Context, userID kernel.UserID, req account.UpdateProfileRequest) (*account.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, account.ErrNotFound().WithDetail("user_id", userID.String())
	}

	if req.Phone != nil {
		user.UpdateContactInfo(kernel.Phone(*req.Phone))
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errx.Wrap(err, "failed to update user", errx.TypeInternal)
	}

	resp := account.ToUserResponse(user)
	return &resp, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *AccountService) ChangePassword(ctx context.Context, userID kernel.UserID, req account.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return account.ErrNotFound().WithDetail("user_id", userID.String())
	}

	if !s.hasher.Compare(user.PasswordHash, req.CurrentPassword) {
		return account.ErrWrongPassword()
	}

	newHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		return errx.Wrap(err, "failed to update password", errx.TypeInternal)
	}

	logx.Infof("password changed for user %s", userID)
	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *AccountService) issueTokens(user *account.User) (*account.TokenPair, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.UserType, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &account.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.tokens.AccessTokenTTL().Seconds()),
	}, nil
}
