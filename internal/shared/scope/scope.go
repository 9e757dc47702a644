// Package scope holds reusable gorm query scopes.
package scope

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Location filters on the location column; an empty location matches all rows.
func Location(location string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(location) == "" {
			return db
		}
		return db.Where("location = ?", location)
	}
}

// Period filters month/year columns.
func Period(year int, month time.Month) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("year = ? AND month = ?", year, int(month))
	}
}

// DateBetween is an inclusive calendar day filter on column.
func DateBetween(column string, from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
}

// NameKey matches the lower-cased part-time staff name column.
func NameKey(name string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("name_key = ?", NormalizeName(name))
	}
}

// NormalizeName is the join key for part-time staff: trimmed and lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
