package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		external_id TEXT,
		name TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		password_hash TEXT,
		is_breeder BOOLEAN,
		is_admin BOOLEAN,
		status TEXT NOT NULL,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBreederApplicationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE breeder_applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		business_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		city_id TEXT NOT NULL,
		address TEXT,
		experience TEXT,
		status TEXT NOT NULL,
		review_notes TEXT,
		reviewed_by TEXT,
		superseded BOOLEAN NOT NULL DEFAULT 0,
		submitted_at DATETIME NOT NULL,
		reviewed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE application_breeds (
		application_id TEXT NOT NULL,
		breed_id TEXT NOT NULL,
		PRIMARY KEY (application_id, breed_id)
	);`)
}

func createBreederProfileTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE breeder_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		slug TEXT NOT NULL UNIQUE,
		business_name TEXT NOT NULL,
		city_id TEXT NOT NULL,
		bio TEXT,
		logo_url TEXT,
		cover_url TEXT,
		verified BOOLEAN NOT NULL DEFAULT 0,
		view_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE profile_breeds (
		profile_id TEXT NOT NULL,
		breed_id TEXT NOT NULL,
		PRIMARY KEY (profile_id, breed_id)
	);`)
}

func createPetTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE pets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		pet_type TEXT NOT NULL,
		breed_id TEXT NOT NULL,
		gender TEXT NOT NULL,
		age_months INTEGER NOT NULL DEFAULT 0,
		vaccinated BOOLEAN NOT NULL DEFAULT 0,
		neutered BOOLEAN NOT NULL DEFAULT 0,
		temperament TEXT,
		description TEXT,
		view_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE pet_images (
		id TEXT PRIMARY KEY,
		pet_id TEXT NOT NULL,
		url TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createListingTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE breeder_listings (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		pet_id TEXT NOT NULL,
		price REAL NOT NULL,
		negotiable BOOLEAN NOT NULL DEFAULT 0,
		available_count INTEGER NOT NULL DEFAULT 1,
		fee_tier TEXT NOT NULL,
		featured BOOLEAN NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		view_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE adoption_listings (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		pet_id TEXT NOT NULL,
		city_id TEXT NOT NULL,
		adoption_fee REAL NOT NULL DEFAULT 0,
		reason TEXT,
		contact_phone TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCatalogTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE breeds (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		pet_type TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE cities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		state TEXT NOT NULL
	);`)
}

func createPaymentOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_orders (
		id TEXT PRIMARY KEY,
		gateway_order_id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		listing_id TEXT NOT NULL,
		listing_type TEXT NOT NULL,
		tier TEXT NOT NULL,
		amount INTEGER NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		payment_id TEXT,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
