package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sqlStateForeignKeyViolation is PostgreSQL's foreign_key_violation code.
const sqlStateForeignKeyViolation = "23503"

// isForeignKeyConstraintViolation matches gorm's translated error, or the raw
// SQLSTATE when error translation is off.
func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateForeignKeyViolation)
}
