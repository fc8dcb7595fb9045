package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudshift360/site-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserDirectory maps external identities to local user records.
type UserDirectory interface {
	UpsertByOpenID(in UpsertUser) (*models.User, error)
	FindByOpenID(openID string) *models.User
}

// UpsertUser carries the fields a login wants applied. Nil pointer fields are
// left untouched on the update path.
type UpsertUser struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn time.Time
}

type UserService struct {
	db          *gorm.DB
	ownerOpenID string
}

// NewUserService builds the directory. ownerOpenID is the single identity
// that is force-promoted to admin on every upsert; db may be nil, in which
// case every operation degrades to a null result.
func NewUserService(db *gorm.DB, ownerOpenID string) *UserService {
	return &UserService{db: db, ownerOpenID: ownerOpenID}
}

func (s *UserService) UpsertByOpenID(in UpsertUser) (*models.User, error) {
	if in.OpenID == "" {
		return nil, errors.New("openId is required for upsert")
	}
	if s.db == nil {
		slog.Warn("cannot upsert user: database not available")
		return nil, nil
	}

	user := models.User{OpenID: in.OpenID, Role: models.RoleUser}
	assign := map[string]interface{}{}

	if in.Name != nil {
		user.Name = in.Name
		assign["name"] = in.Name
	}
	if in.Email != nil {
		user.Email = in.Email
		assign["email"] = in.Email
	}
	if in.LoginMethod != nil {
		user.LoginMethod = in.LoginMethod
		assign["login_method"] = in.LoginMethod
	}
	if in.Role != nil {
		user.Role = *in.Role
		assign["role"] = *in.Role
	}

	// The owner identity is admin on every call, insert or update,
	// regardless of the requested role.
	if s.ownerOpenID != "" && in.OpenID == s.ownerOpenID {
		user.Role = models.RoleAdmin
		assign["role"] = models.RoleAdmin
	}

	last := in.LastSignedIn
	if last.IsZero() {
		last = time.Now()
	}
	user.LastSignedIn = last
	assign["last_signed_in"] = last

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(assign),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	var stored models.User
	if err := s.db.Where("open_id = ?", in.OpenID).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to read back user: %w", err)
	}
	return &stored, nil
}

// FindByOpenID returns nil both when the row does not exist and when no
// database is configured; callers treat the two the same way.
func (s *UserService) FindByOpenID(openID string) *models.User {
	if s.db == nil {
		slog.Warn("cannot look up user: database not available")
		return nil
	}

	var user models.User
	if err := s.db.Where("open_id = ?", openID).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("user lookup failed", "error", err)
		}
		return nil
	}
	return &user
}
