package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Username       string `gorm:"not null"`
	Email          string `gorm:"not null;index"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	ProfilePicture string

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func isActiveEmailViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, "uni_users_active_email")
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	user.IsActive = true

	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isActiveEmailViolation(result.Error) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ? AND is_active = ?", email, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context, skip, limit int) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) FindByIDs(ctx context.Context, ids []uint) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var users []User

	result := d.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) Search(ctx context.Context, term string, skip, limit int) ([]User, error) {
	var users []User

	pattern := "%" + term + "%"
	result := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			d.db.Where("username ILIKE ?", pattern).
				Or("first_name ILIKE ?", pattern).
				Or("last_name ILIKE ?", pattern).
				Or("email ILIKE ?", pattern),
		).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Update applies the given column values to an active user and returns
// the fresh row.
func (d *UserDAO) Update(ctx context.Context, id uint, values map[string]interface{}) (User, error) {
	values["updated_at"] = time.Now()

	result := d.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(values)
	if result.Error != nil {
		if isActiveEmailViolation(result.Error) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *UserDAO) Deactivate(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
