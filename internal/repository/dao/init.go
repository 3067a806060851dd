package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Event{},
		&EventOrganizer{},
		&EventMember{},
		&Group{},
		&GroupAdmin{},
		&GroupMember{},
		&Discussion{},
		&Message{},
		&Album{},
		&Photo{},
		&Comment{},
		&Poll{},
		&Question{},
		&Answer{},
		&Vote{},
		&TicketType{},
		&Ticket{},
		&ShoppingItem{},
	)
	if err != nil {
		return err
	}

	// Email must be unique among active users only, so a soft-deleted
	// account frees its address for re-registration.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_users_active_email ON users (email) WHERE is_active`,
	).Error
}
