package postgres

import "time"

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// LandSchema represents the database schema for the lands table.
type LandSchema struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:200;not null"`
	Location    string    `gorm:"size:200;not null"`
	Price       float64   `gorm:"not null"`
	IsAvailable bool      `gorm:"not null;index"`
	SellerID    int64     `gorm:"not null;index"`
	Description string    `gorm:"size:2000"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for the LandSchema model.
func (LandSchema) TableName() string {
	return "lands"
}

// TransactionSchema represents the database schema for the transactions table.
type TransactionSchema struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	LandID    int64     `gorm:"not null;index"`
	BuyerID   int64     `gorm:"not null;index"`
	SellerID  int64     `gorm:"not null;index"`
	Amount    float64   `gorm:"not null"`
	Status    string    `gorm:"size:20;not null;index"`
	Note      string    `gorm:"size:1000"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the TransactionSchema model.
func (TransactionSchema) TableName() string {
	return "transactions"
}

// Models lists every persisted model, in dependency order, for AutoMigrate.
func Models() []any {
	return []any{
		&UserSchema{},
		&LandSchema{},
		&TransactionSchema{},
	}
}
