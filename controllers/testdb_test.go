package controllers

import (
	"path/filepath"
	"testing"

	"halo-lounge-backend/config"
	"halo-lounge-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a throwaway sqlite database so the
// handlers run their real queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.Appointment{},
		&models.Order{},
		&models.OrderItem{},
	))

	config.DB = db
	return db
}
