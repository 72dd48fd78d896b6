/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*****************************************************************************************************************/

// cachedRow is the gorm model an ingested Row is persisted as, so that a catalog only has to be
// downloaded or parsed once per sky region.
type cachedRow struct {
	ID        int `gorm:"primaryKey"`
	RA        float64
	Dec       float64
	Magnitude float64
}

/*****************************************************************************************************************/

// Store is a gorm-backed SQLite cache of ingested catalog rows.
type Store struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

// OpenStore opens (creating if necessary) a SQLite-backed catalog cache at path.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&cachedRow{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

/*****************************************************************************************************************/

// Save replaces the store's contents with rows.
func (s *Store) Save(rows []Row) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&cachedRow{}).Error; err != nil {
			return err
		}

		cached := make([]cachedRow, len(rows))
		for i, r := range rows {
			cached[i] = cachedRow{ID: r.ID, RA: r.RA, Dec: r.Dec, Magnitude: r.Magnitude}
		}

		if len(cached) == 0 {
			return nil
		}

		return tx.CreateInBatches(cached, 500).Error
	})
}

/*****************************************************************************************************************/

// Rows implements Provider, returning the store's entire cached contents.
func (s *Store) Rows() ([]Row, error) {
	var cached []cachedRow

	if err := s.db.Find(&cached).Error; err != nil {
		return nil, err
	}

	rows := make([]Row, len(cached))
	for i, c := range cached {
		rows[i] = Row{ID: c.ID, RA: c.RA, Dec: c.Dec, Magnitude: c.Magnitude}
	}

	return rows, nil
}

/*****************************************************************************************************************/

// Count returns the number of cached rows, used to decide whether a refresh from a remote or
// CSV provider is necessary before building a triangle index.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&cachedRow{}).Count(&n).Error
	return n, err
}

/*****************************************************************************************************************/

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

/*****************************************************************************************************************/
