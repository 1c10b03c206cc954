package rdb

import (
	"shaka/internal/errors"

	"gorm.io/gorm"
)

// TranslateError is enabled on every dialect, so driver-specific codes
// (MySQL 1062, PostgreSQL 23505, SQLite 2067) arrive as GORM sentinels.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
