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
		phone TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		age INTEGER NOT NULL,
		location TEXT NOT NULL,
		qualification TEXT NOT NULL,
		phone_otp TEXT,
		phone_otp_expires DATETIME,
		is_phone_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCourseTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE courses (
		id TEXT PRIMARY KEY,
		teacher_id TEXT NOT NULL,
		name TEXT NOT NULL,
		fee INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL,
		duration TEXT,
		level TEXT,
		category TEXT,
		teacher_name TEXT,
		teacher_email TEXT,
		teacher_experience TEXT,
		teacher_about TEXT,
		status TEXT NOT NULL DEFAULT 'Published',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE course_modules (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT
	);`)
	mustExec(t, db, `CREATE TABLE lessons (
		id TEXT PRIMARY KEY,
		module_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		duration TEXT,
		description TEXT
	);`)
}

func createEnrollmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE enrollments (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		student_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE(course_id, student_id)
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		student_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT,
		reviewer_name TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE(course_id, student_id)
	);`)
}
