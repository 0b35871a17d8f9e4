package database

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"microblog/database/model"
	"microblog/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultUsername = "admin"
	defaultPassword = "password"
)

// DefaultSettings holds the seeded value for every recognized settings key.
// The settings service falls back to these when a row is absent.
var DefaultSettings = map[string]string{
	"site_name":    "Microblog",
	"site_tagline": "Share your thoughts with the world",
	"posts_public": "true",
}

func initModels(db *gorm.DB) error {
	models := []any{
		&model.Post{},
		&model.User{},
		&model.Setting{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

// initUser seeds the admin account on first startup. The default password is
// hashed at seed time, never stored in plaintext.
func initUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(defaultPassword)
	if err != nil {
		return err
	}
	user := &model.User{
		Username: defaultUsername,
		Password: hashedPassword,
	}
	return db.Create(user).Error
}

// initSettings inserts a row for each recognized key that is missing, leaving
// existing rows untouched.
func initSettings(db *gorm.DB) error {
	for key, value := range DefaultSettings {
		var count int64
		err := db.Model(model.Setting{}).Where("key = ?", key).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		err = db.Create(&model.Setting{Key: key, Value: value}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// InitDB opens the SQLite database at dbPath, migrates the schema and seeds
// the admin user and default settings. The returned handle is injected into
// each service at construction; there is no package-level database state.
func InitDB(dbPath string) (*gorm.DB, error) {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return nil, err
	}

	c := &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return nil, err
	}

	if err := initModels(db); err != nil {
		return nil, err
	}
	if err := initUser(db); err != nil {
		return nil, err
	}
	if err := initSettings(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB checkpoints the WAL and closes the underlying connection.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	_ = Checkpoint(db)
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint(db *gorm.DB) error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
