package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JSONB stores a document body in a jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case nil:
		*j = JSONB{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, j)
}

// documentRow is the row layout shared by every collection table.
type documentRow struct {
	Seq       int64  `gorm:"primaryKey;autoIncrement"`
	DocID     string `gorm:"type:uuid;not null"`
	Body      JSONB  `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

// PostgresStore keeps one table per collection with the document body in jsonb.
type PostgresStore struct {
	db   *gorm.DB
	name string
}

func NewPostgresStore(db *gorm.DB, name string) *PostgresStore {
	return &PostgresStore{db: db, name: name}
}

// OpenPostgres connects, verifies the connection and migrates every collection table.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	for _, k := range Kinds() {
		if err := db.WithContext(ctx).Table(k.Collection()).AutoMigrate(&documentRow{}); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrate %s: %w", k, err)
		}
	}
	return NewPostgresStore(db, db.Migrator().CurrentDatabase()), nil
}

func (s *PostgresStore) CreateDocument(ctx context.Context, kind Kind, record any) (string, error) {
	doc, err := ToDocument(record)
	if err != nil {
		return "", storeErr("create", kind, err)
	}
	row := documentRow{DocID: uuid.NewString(), Body: JSONB(doc)}
	if err := s.db.WithContext(ctx).Table(kind.Collection()).Create(&row).Error; err != nil {
		return "", storeErr("create", kind, err)
	}
	return row.DocID, nil
}

func (s *PostgresStore) GetDocuments(ctx context.Context, kind Kind) ([]Document, error) {
	var rows []documentRow
	if err := s.db.WithContext(ctx).Table(kind.Collection()).Order("seq").Find(&rows).Error; err != nil {
		return nil, storeErr("get", kind, err)
	}
	docs := make([]Document, 0, len(rows))
	for _, r := range rows {
		doc := Document(r.Body).clone()
		doc[IDField] = r.DocID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *PostgresStore) ListCollections(ctx context.Context) ([]string, error) {
	tables, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, &StoreError{Op: "list collections", Err: err}
	}
	return tables, nil
}

func (s *PostgresStore) Name() string    { return s.name }
func (s *PostgresStore) Available() bool { return true }

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
