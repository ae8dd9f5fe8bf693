package database

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/idgen"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/slogx"
)

type Options struct {
	Path          string        `toml:"path"`
	Debug         bool          `toml:"debug"`
	SlowThreshold time.Duration `toml:"slow-threshold"`
	BusyTimeout   time.Duration `toml:"busy-timeout"`
	UseWAL        bool          `toml:"use-wal"`
	AutoMigrate   bool          `toml:"auto-migrate"`

	// IDs generates identifiers for new rows. Defaults to idgen.ID.
	IDs idgen.Source `toml:"-"`
}

func (o *Options) FillDefaults() {
	if o.SlowThreshold == 0 {
		o.SlowThreshold = 200 * time.Millisecond
	}
	if o.BusyTimeout == 0 {
		o.BusyTimeout = 1 * time.Minute
	}
	if o.IDs == nil {
		o.IDs = idgen.ID
	}
}

type DB struct {
	db    *gorm.DB
	log   *slog.Logger
	newID idgen.Source
}

var _ futsal.Repository = (*DB)(nil)

func (d *DB) Close() {
	db, err := d.db.DB()
	if err != nil {
		d.log.Error("could not get underlying db", slogx.Err(err))
		return
	}
	if err := db.Close(); err != nil {
		d.log.Error("could not close db", slogx.Err(err))
	}
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file:")
}

func buildPath(o Options) string {
	var params []string
	if o.UseWAL {
		params = append(params, "_journal_mode=WAL")
		params = append(params, "_synchronous=NORMAL")
	}
	params = append(params, fmt.Sprintf("_busy_timeout=%v", o.BusyTimeout.Milliseconds()))
	params = append(params, "_foreign_keys=1")
	paramStr := strings.Join(params, "&")
	if strings.Contains(o.Path, "?") {
		return o.Path + "&" + paramStr
	}
	return o.Path + "?" + paramStr
}

func ensureDir(path string) error {
	if isMemory(path) {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %q: %w", dir, err)
	}
	return nil
}

// New opens the database at o.Path, creating the file and its tables if
// needed. A nil log discards database logs.
func New(log *slog.Logger, o Options) (*DB, error) {
	if log == nil {
		log = slogx.DiscardLogger()
	}
	o.FillDefaults()
	if o.Path == "" {
		return nil, fmt.Errorf("no db path")
	}
	if err := ensureDir(o.Path); err != nil {
		return nil, fmt.Errorf("ensure db dir: %w", err)
	}

	log.Info("opening db", slog.String("path", o.Path))
	db, err := gorm.Open(sqlite.Open(buildPath(o)), &gorm.Config{
		Logger:  Logger(log, o),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	d := &DB{db: db, log: log, newID: o.IDs}

	if err := d.ensureSchema(o.AutoMigrate); err != nil {
		d.Close()
		return nil, fmt.Errorf("prepare schema: %w", err)
	}

	log.Info("db opened")
	return d, nil
}

func (d *DB) ensureSchema(autoMigrate bool) error {
	if autoMigrate {
		d.log.Info("migrating db")
		if err := d.db.AutoMigrate(models...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		return nil
	}
	m := d.db.Migrator()
	if m.HasTable(&Player{}) {
		return nil
	}
	d.log.Info("creating tables")
	for _, model := range models {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// UnsafeAdmin returns the maintenance capability. Statements run through it
// bypass every invariant of the repository.
func (d *DB) UnsafeAdmin() *Admin {
	return &Admin{db: d.db, log: d.log}
}

func (d *DB) exists(tx *gorm.DB, model any, id uuid.UUID) (bool, error) {
	var cnt int64
	if err := tx.Model(model).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt != 0, nil
}

// mustExist fails with notFound if no row of model has the given id.
func (d *DB) mustExist(tx *gorm.DB, model any, id uuid.UUID, what string, notFound error) error {
	ok, err := d.exists(tx, model, id)
	if err != nil {
		return fmt.Errorf("check %s: %w", what, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %v", notFound, what, id)
	}
	return nil
}

func allRows(tx *gorm.DB) *gorm.DB {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true})
}

// parseIDs parses ids given as (kind, id) pairs and reports every malformed one.
func parseIDs(pairs ...string) ([]uuid.UUID, error) {
	if len(pairs)%2 != 0 {
		panic("must not happen")
	}
	res := make([]uuid.UUID, 0, len(pairs)/2)
	var errs []error
	for i := 0; i < len(pairs); i += 2 {
		id, err := futsal.ParseID(pairs[i], pairs[i+1])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res = append(res, id)
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}
