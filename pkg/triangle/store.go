/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package triangle

/*****************************************************************************************************************/

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*****************************************************************************************************************/

// cachedTriangle is the gorm model a built Triangle is persisted as.
type cachedTriangle struct {
	ID                  uint    `gorm:"primaryKey"`
	Star1, Star2, Star3 int     `gorm:"index"`
	A                   float64 `gorm:"index"`
	B, C                float64
}

/*****************************************************************************************************************/

// Store is a gorm-backed SQLite cache of a built triangle index. The indexer command writes it;
// the solve command does not read it back, since solve.Solve builds its own index from the rows
// it is given.
type Store struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&cachedTriangle{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

/*****************************************************************************************************************/

// Save replaces the store's contents with idx's triangles.
func (s *Store) Save(idx *Index) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&cachedTriangle{}).Error; err != nil {
			return err
		}

		cached := make([]cachedTriangle, len(idx.Triangles))
		for i, t := range idx.Triangles {
			cached[i] = cachedTriangle{Star1: t.Star1, Star2: t.Star2, Star3: t.Star3, A: t.A, B: t.B, C: t.C}
		}

		if len(cached) == 0 {
			return nil
		}

		return tx.CreateInBatches(cached, 500).Error
	})
}

/*****************************************************************************************************************/

// Load returns the cached index, sorted ascending by A as Match requires.
func (s *Store) Load() (*Index, error) {
	var cached []cachedTriangle

	if err := s.db.Order("a ASC").Find(&cached).Error; err != nil {
		return nil, err
	}

	triangles := make([]Triangle, len(cached))
	for i, c := range cached {
		triangles[i] = Triangle{Star1: c.Star1, Star2: c.Star2, Star3: c.Star3, A: c.A, B: c.B, C: c.C}
	}

	return &Index{Triangles: triangles}, nil
}

/*****************************************************************************************************************/

func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&cachedTriangle{}).Count(&n).Error
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
