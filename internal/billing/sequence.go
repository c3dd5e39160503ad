package billing

import (
	"errors"

	"gorm.io/gorm"
)

// Bill numbers start here, matching the numbering customers already know
// from printed receipts.
const firstBillNumber = 1001

// NextBillNumber bumps the bill counter in one atomic upsert. Run inside the
// same transaction that inserts the bill; two concurrent generations each get
// their own row version, so numbers are unique and strictly increasing even
// across multiple instances.
func NextBillNumber(tx *gorm.DB) (int64, error) {
	var number int64
	err := tx.Raw(`
		INSERT INTO bill_counters (id, value) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET value = bill_counters.value + 1
		RETURNING value
	`, firstBillNumber).Scan(&number).Error
	if err != nil {
		return 0, err
	}
	return number, nil
}

// isDuplicateKey reports whether an insert was rejected over a unique
// constraint, which for a bill means its number is already taken.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
