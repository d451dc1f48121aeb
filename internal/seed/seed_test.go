package seed

import (
	"fmt"
	"testing"

	"quill/internal/database"
	"quill/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeeder_Run(t *testing.T) {
	db := setupTestDB(t)

	s := NewSeeder(db, Options{NumUsers: 8, NumPosts: 30, SkipBcrypt: true, MaxDays: 7})
	require.NoError(t, s.Run())

	require.EqualValues(t, 8, count(t, db, &models.User{}))
	require.EqualValues(t, 30, count(t, db, &models.Post{}))
	require.EqualValues(t, int64(len(builtinGroups)), count(t, db, &models.Group{}))

	// every follow edge is a real pair, never a self-follow
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("user_id = author_id").Count(&selfFollows).Error)
	require.Zero(t, selfFollows)
}

func TestSeeder_RunIsIdempotentForGroups(t *testing.T) {
	db := setupTestDB(t)

	s := NewSeeder(db, Options{NumUsers: 2, NumPosts: 4, SkipBcrypt: true})
	require.NoError(t, s.Run())
	before := count(t, db, &models.Group{})

	// a second pass without cleaning must not duplicate the built-in groups
	require.NoError(t, NewSeeder(db, Options{NumUsers: 1, NumPosts: 2, SkipBcrypt: true}).Run())
	require.Equal(t, before, count(t, db, &models.Group{}))
}

func TestSeeder_ClearAll(t *testing.T) {
	db := setupTestDB(t)

	s := NewSeeder(db, Options{NumUsers: 3, NumPosts: 6, SkipBcrypt: true})
	require.NoError(t, s.Run())
	require.NoError(t, s.ClearAll())

	for _, model := range []interface{}{
		&models.Comment{}, &models.Follow{}, &models.Post{}, &models.Group{}, &models.User{},
	} {
		require.Zero(t, count(t, db, model))
	}
}
