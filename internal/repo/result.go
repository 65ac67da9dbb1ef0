package repo

import (
	"database/sql"

	"github.com/pkg/errors"
)

// expectAffected returns otherwise when res reports zero affected rows.
func expectAffected(res sql.Result, otherwise error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return otherwise
	}
	return nil
}
