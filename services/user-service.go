package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"construction-tracker/backend/logging"
	"construction-tracker/backend/models"
	"construction-tracker/backend/storage"
	"construction-tracker/backend/utils"
)

// UserService owns the account collection, the approval workflow and the
// active session. The session is an explicit part of this service and is
// persisted redacted under its own key.
type UserService struct {
	repo  *Repository[models.User]
	store storage.Store

	mu      sync.Mutex
	current *models.User
}

func NewUserService(store storage.Store) *UserService {
	return &UserService{
		repo:  NewRepository(store, usersKey, DefaultUsers()),
		store: store,
	}
}

func (s *UserService) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

// Register creates a pending member account. Duplicate emails are not
// rejected; the login lookup picks the first match.
func (s *UserService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	user := models.User{
		ID:         utils.NewID(),
		Name:       name,
		Email:      email,
		Password:   password,
		Role:       models.RoleMember,
		Status:     models.StatusPending,
		Title:      "New Hire",
		Education:  []string{},
		Experience: []string{},
		Licenses:   []string{},
	}

	users := append(s.repo.All(), user)
	if err := s.repo.Replace(ctx, users); err != nil {
		return models.User{}, err
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: Account for %s stored with pending status", email)
	return Redact(user), nil
}

// Login checks credentials against the persisted collection rather than the
// in-memory snapshot, so accounts changed by another writer since startup
// still authenticate. A pending account fails even with correct credentials.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	users := s.repo.All()

	raw, err := s.store.Get(ctx, usersKey)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: read %s: %v", ErrPersistence, usersKey, err)
	}
	if raw != nil {
		var stored []models.User
		if err := json.Unmarshal(raw, &stored); err != nil {
			return models.User{}, fmt.Errorf("%w: decode %s: %v", ErrCorruptState, usersKey, err)
		}
		users = stored
	}

	for _, u := range users {
		if u.Email != email || u.Password != password {
			continue
		}
		if u.Status == models.StatusPending {
			logging.Logger.Warnf("Event ID: LOGIN_PENDING_ACCOUNT, Description: Login rejected for %s, account awaiting approval", email)
			return models.User{}, ErrAuthFailure
		}

		safe := Redact(u)
		s.mu.Lock()
		s.current = &safe
		s.mu.Unlock()

		sessionRaw, err := json.Marshal(safe)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: encode %s: %v", ErrPersistence, sessionKey, err)
		}
		if err := s.store.Set(ctx, sessionKey, sessionRaw); err != nil {
			return models.User{}, fmt.Errorf("%w: write %s: %v", ErrPersistence, sessionKey, err)
		}

		logging.Logger.Infof("Event ID: LOGIN_SUCCESS, Description: Session opened for %s", email)
		return safe, nil
	}

	return models.User{}, ErrAuthFailure
}

// Logout clears the active session and its persisted copy.
func (s *UserService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrPersistence, sessionKey, err)
	}
	return nil
}

// RestoreSession reloads a session persisted by a previous run, if any.
func (s *UserService) RestoreSession(ctx context.Context) error {
	raw, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrPersistence, sessionKey, err)
	}
	if raw == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCorruptState, sessionKey, err)
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()
	return nil
}

// CurrentUser returns the active session account, redacted.
func (s *UserService) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.User{}, false
	}
	return Redact(*s.current), true
}

// Approve transitions a pending account to approved. Approving an already
// approved account is a no-op, as is an unknown id.
func (s *UserService) Approve(ctx context.Context, id string) error {
	users := s.repo.All()
	for i := range users {
		if users[i].ID == id {
			users[i].Status = models.StatusApproved
		}
	}
	if err := s.repo.Replace(ctx, users); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: USER_APPROVED, Description: Account %s approved", id)
	return nil
}

// Delete removes an account outright. The caller's own account is not
// special-cased.
func (s *UserService) Delete(ctx context.Context, id string) error {
	users := s.repo.All()
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if err := s.repo.Replace(ctx, kept); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: USER_DELETED, Description: Account %s removed", id)
	return nil
}

// ChangePassword sets a new password on the active session's account.
func (s *UserService) ChangePassword(ctx context.Context, newPassword string) error {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current == nil {
		return ErrNoSession
	}

	users := s.repo.All()
	for i := range users {
		if users[i].ID == current.ID {
			users[i].Password = newPassword
		}
	}
	return s.repo.Replace(ctx, users)
}

// UpdateProfile merges the supplied fields into the active session's account
// and refreshes the redacted session copy. Whether the caller may touch the
// restricted fields (title, start date) is the handler's decision.
func (s *UserService) UpdateProfile(ctx context.Context, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current == nil {
		return models.User{}, ErrNoSession
	}

	users := s.repo.All()
	var updated models.User
	found := false
	for i := range users {
		if users[i].ID == current.ID {
			applyUserPatch(&users[i], patch)
			updated = users[i]
			found = true
		}
	}
	if !found {
		return models.User{}, ErrNotFound
	}

	safe := Redact(updated)
	s.mu.Lock()
	s.current = &safe
	s.mu.Unlock()

	if err := s.repo.Replace(ctx, users); err != nil {
		return models.User{}, err
	}

	sessionRaw, err := json.Marshal(safe)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: encode %s: %v", ErrPersistence, sessionKey, err)
	}
	if err := s.store.Set(ctx, sessionKey, sessionRaw); err != nil {
		return models.User{}, fmt.Errorf("%w: write %s: %v", ErrPersistence, sessionKey, err)
	}
	return safe, nil
}

// ResetPassword replaces the password of the account matching the email with
// a generated one and returns it.
func (s *UserService) ResetPassword(ctx context.Context, email string) (string, error) {
	users := s.repo.All()
	newPassword := utils.GenerateRandomPassword()
	found := false
	for i := range users {
		if users[i].Email == email {
			users[i].Password = newPassword
			found = true
		}
	}
	if !found {
		return "", ErrNotFound
	}
	if err := s.repo.Replace(ctx, users); err != nil {
		return "", err
	}
	logging.Logger.Infof("Event ID: PASSWORD_RESET, Description: Password reset for %s", email)
	return newPassword, nil
}

// Users returns the account collection with passwords stripped.
func (s *UserService) Users() []models.User {
	users := s.repo.All()
	for i := range users {
		users[i] = Redact(users[i])
	}
	return users
}

// YearsOfService derives tenure as whole years since the account's start
// date. The second return is false when the start date is missing or does
// not parse.
func YearsOfService(user models.User) (int, bool) {
	if user.StartDate == "" {
		return 0, false
	}
	start, err := time.Parse(dateLayout, user.StartDate)
	if err != nil {
		return 0, false
	}

	now := time.Now()
	years := now.Year() - start.Year()
	anniversary := start.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years, true
}

// Redact strips the write-only password field before a record leaves the
// store.
func Redact(user models.User) models.User {
	user.Password = ""
	return user
}

func applyUserPatch(user *models.User, patch models.UserPatch) {
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Title != nil {
		user.Title = *patch.Title
	}
	if patch.StartDate != nil {
		user.StartDate = *patch.StartDate
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Education != nil {
		user.Education = *patch.Education
	}
	if patch.Experience != nil {
		user.Experience = *patch.Experience
	}
	if patch.Licenses != nil {
		user.Licenses = *patch.Licenses
	}
}
