package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrGroupNotFound = errors.New("group not found")

type Group struct {
	ID uint `gorm:"primaryKey"`

	Name              string `gorm:"not null"`
	Description       string
	Icon              string
	CoverPhoto        string
	Type              string `gorm:"not null;default:public"`
	AllowMemberPosts  bool   `gorm:"not null;default:true"`
	AllowMemberEvents bool   `gorm:"not null;default:true"`
	CreatorID         uint   `gorm:"not null;index"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	AdminIDs  []uint `gorm:"-"`
	MemberIDs []uint `gorm:"-"`
}

type GroupAdmin struct {
	ID      uint `gorm:"primaryKey"`
	GroupID uint `gorm:"not null;uniqueIndex:uni_group_admin"`
	UserID  uint `gorm:"not null;uniqueIndex:uni_group_admin"`
}

type GroupMember struct {
	ID      uint `gorm:"primaryKey"`
	GroupID uint `gorm:"not null;uniqueIndex:uni_group_member"`
	UserID  uint `gorm:"not null;uniqueIndex:uni_group_member"`
}

type GroupDAO struct {
	db *gorm.DB
}

func NewGroupDAO(db *gorm.DB) *GroupDAO {
	return &GroupDAO{
		db: db,
	}
}

func (d *GroupDAO) Insert(ctx context.Context, group Group, adminIDs []uint) (Group, error) {
	group.IsActive = true

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		for _, userID := range adminIDs {
			row := GroupAdmin{GroupID: group.ID, UserID: userID}
			if err := tx.Where(row).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Group{}, err
	}

	return d.FindByID(ctx, group.ID)
}

func (d *GroupDAO) loadRoles(ctx context.Context, group *Group) error {
	err := d.db.WithContext(ctx).
		Model(&GroupAdmin{}).
		Where("group_id = ?", group.ID).
		Order("user_id").
		Pluck("user_id", &group.AdminIDs).Error
	if err != nil {
		return err
	}

	return d.db.WithContext(ctx).
		Model(&GroupMember{}).
		Where("group_id = ?", group.ID).
		Order("user_id").
		Pluck("user_id", &group.MemberIDs).Error
}

func (d *GroupDAO) FindByID(ctx context.Context, id uint) (Group, error) {
	var group Group

	result := d.db.WithContext(ctx).First(&group, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Group{}, ErrGroupNotFound
		}

		return Group{}, result.Error
	}

	if err := d.loadRoles(ctx, &group); err != nil {
		return Group{}, err
	}

	return group, nil
}

// FindAll lists active groups of the given types, newest first.
func (d *GroupDAO) FindAll(ctx context.Context, types []string, skip, limit int) ([]Group, error) {
	var groups []Group

	result := d.db.WithContext(ctx).
		Where("is_active = ? AND type IN ?", true, types).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range groups {
		if err := d.loadRoles(ctx, &groups[i]); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

func (d *GroupDAO) FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]Group, error) {
	var groups []Group

	result := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			`creator_id = ?
			OR id IN (SELECT group_id FROM group_admins WHERE user_id = ?)
			OR id IN (SELECT group_id FROM group_members WHERE user_id = ?)`,
			userID, userID, userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range groups {
		if err := d.loadRoles(ctx, &groups[i]); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

func (d *GroupDAO) Update(ctx context.Context, id uint, values map[string]interface{}) (Group, error) {
	values["updated_at"] = time.Now()

	result := d.db.WithContext(ctx).
		Model(&Group{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(values)
	if result.Error != nil {
		return Group{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Group{}, ErrGroupNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *GroupDAO) Deactivate(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&Group{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

func (d *GroupDAO) AddMember(ctx context.Context, groupID, userID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := GroupMember{GroupID: groupID, UserID: userID}
		if err := tx.Where(row).FirstOrCreate(&row).Error; err != nil {
			return err
		}

		return tx.Model(&Group{}).
			Where("id = ?", groupID).
			Update("updated_at", time.Now()).Error
	})
}

func (d *GroupDAO) AddAdmin(ctx context.Context, groupID, userID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := GroupAdmin{GroupID: groupID, UserID: userID}
		if err := tx.Where(row).FirstOrCreate(&row).Error; err != nil {
			return err
		}

		return tx.Model(&Group{}).
			Where("id = ?", groupID).
			Update("updated_at", time.Now()).Error
	})
}

// RemoveUser pulls the user out of both role tables.
func (d *GroupDAO) RemoveUser(ctx context.Context, groupID, userID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ? AND user_id = ?", groupID, userID).
			Delete(&GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ? AND user_id = ?", groupID, userID).
			Delete(&GroupAdmin{}).Error; err != nil {
			return err
		}

		return tx.Model(&Group{}).
			Where("id = ?", groupID).
			Update("updated_at", time.Now()).Error
	})
}
