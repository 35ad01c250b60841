package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fictus/bookstore/internal/infrastructure/config"
	"github.com/fictus/bookstore/pkg/logger"
)

// NewDB opens the MySQL connection, configures the pool and migrates the
// schema. SQL logging is enabled in debug mode only.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	logger.L.Infow("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
	return db, nil
}

// autoMigrate creates missing tables and columns. Production deployments
// should run versioned migrations instead.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&AuthorModel{},
		&BookModel{},
		&BuyerModel{},
		&EmployeeModel{},
		&AddressModel{},
		&RatingModel{},
		&PurchaseModel{},
		&WishlistModel{},
	)
}

// UserModel is the accounts table. Domain entities live in internal/domain;
// these models carry the GORM mapping and are converted by the repositories.
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null"`
	Password  string         `gorm:"size:255;not null"`
	Role      string         `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

// AuthorModel stores authors. Categories is a comma-joined list; the set is
// small and only read back whole, never filtered on.
type AuthorModel struct {
	ID         uint           `gorm:"primaryKey"`
	Name       string         `gorm:"uniqueIndex;size:100;not null"`
	Birth      time.Time
	Categories string         `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel stores the catalog. Price is in cents to avoid float rounding;
// Category is indexed because similarity queries filter on it.
type BookModel struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"uniqueIndex;size:200;not null"`
	PublishedDate string         `gorm:"size:20"`
	Category      string         `gorm:"index;size:20;not null"`
	Stock         int            `gorm:"not null;default:0"`
	Price         int64          `gorm:"not null"`
	Introduction  string         `gorm:"type:text"`
	Tags          string         `gorm:"size:500"`
	AuthorID      uint           `gorm:"index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (BookModel) TableName() string {
	return "books"
}

// BuyerModel stores customer profiles. Wallet is in cents.
type BuyerModel struct {
	ID        uint           `gorm:"primaryKey"`
	FirstName string         `gorm:"size:50;not null"`
	LastName  string         `gorm:"size:50;not null"`
	Email     string         `gorm:"uniqueIndex;size:100;not null"`
	Phone     string         `gorm:"size:20"`
	Birth     time.Time
	Wallet    int64          `gorm:"not null;default:0"`
	UserID    uint           `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (BuyerModel) TableName() string {
	return "buyers"
}

// EmployeeModel stores staff. BossID is zero for the top of the hierarchy.
type EmployeeModel struct {
	ID        uint           `gorm:"primaryKey"`
	FirstName string         `gorm:"size:50;not null"`
	LastName  string         `gorm:"size:50;not null"`
	Email     string         `gorm:"uniqueIndex;size:100;not null"`
	Role      string         `gorm:"size:20;not null"`
	BossID    uint           `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

// AddressModel stores buyer addresses.
type AddressModel struct {
	ID              uint   `gorm:"primaryKey"`
	StreetLine1     string `gorm:"size:200;not null"`
	StreetLine2     string `gorm:"size:200"`
	City            string `gorm:"size:100"`
	Province        string `gorm:"size:100"`
	PostalCode      string `gorm:"size:20"`
	Phone           string `gorm:"size:20"`
	DefaultShipping bool   `gorm:"not null;default:false"`
	DefaultBilling  bool   `gorm:"not null;default:false"`
	BuyerID         uint   `gorm:"index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}

// RatingModel stores ratings, one per (user, book) pair.
type RatingModel struct {
	ID        uint    `gorm:"primaryKey"`
	Value     float64 `gorm:"not null"`
	Review    string  `gorm:"type:text"`
	UserID    uint    `gorm:"uniqueIndex:idx_user_book;not null"`
	BookID    uint    `gorm:"uniqueIndex:idx_user_book;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RatingModel) TableName() string {
	return "ratings"
}

// PurchaseModel records completed purchases. Buying the same book twice
// appends a second row, so no unique index on (buyer, book).
type PurchaseModel struct {
	ID        uint `gorm:"primaryKey"`
	BuyerID   uint `gorm:"index;not null"`
	BookID    uint `gorm:"index;not null"`
	CreatedAt time.Time
}

func (PurchaseModel) TableName() string {
	return "buyer_books"
}

// WishlistModel links buyers to wishlisted books. The composite unique index
// makes repeated wishlisting a no-op at the storage level.
type WishlistModel struct {
	ID        uint `gorm:"primaryKey"`
	BuyerID   uint `gorm:"uniqueIndex:idx_buyer_book;not null"`
	BookID    uint `gorm:"uniqueIndex:idx_buyer_book;not null"`
	CreatedAt time.Time
}

func (WishlistModel) TableName() string {
	return "buyer_wishlist"
}
