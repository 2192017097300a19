package sink

import (
	"context"

	"dishseed/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Postgres stores every record as a row of the dishes table.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	return OpenPostgres(postgres.Open(dsn))
}

// OpenPostgres accepts any gorm dialector, so the same sink can run on sqlite.
func OpenPostgres(dialector gorm.Dialector) (*Postgres, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err = db.AutoMigrate(&models.DishRow{}); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Submit(ctx context.Context, r models.Record) error {
	row := models.NewDishRow(r)
	return p.db.WithContext(ctx).Create(&row).Error
}

func (p *Postgres) Count(ctx context.Context, category string) (int64, error) {
	var n int64
	q := p.db.WithContext(ctx).Model(&models.DishRow{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Count(&n).Error
	return n, err
}

func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
