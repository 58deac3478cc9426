package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDnmaTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:testdb_dnma_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.Exec(`CREATE TABLE amp (AMP_Id TEXT, AMP_DSC TEXT, PROD_MSP TEXT, LABORATORIO_Id TEXT)`).Error)
	assert.NoError(t, db.Exec(`CREATE TABLE laboratorio (LAB_Id TEXT, NOMBRE TEXT, RUT TEXT)`).Error)

	return db
}

func seedAmp(t *testing.T, db *gorm.DB, ampID, dsc, msp, labID string) {
	assert.NoError(t, db.Exec(
		`INSERT INTO amp (AMP_Id, AMP_DSC, PROD_MSP, LABORATORIO_Id) VALUES (?, ?, ?, ?)`,
		ampID, dsc, msp, labID,
	).Error)
}

func seedLaboratorio(t *testing.T, db *gorm.DB, labID, nombre, rut string) {
	assert.NoError(t, db.Exec(
		`INSERT INTO laboratorio (LAB_Id, NOMBRE, RUT) VALUES (?, ?, ?)`,
		labID, nombre, rut,
	).Error)
}

func TestDnmaService_FetchAmpDetails_FoundAndNotFound(t *testing.T) {
	db := setupDnmaTestDB(t)
	seedLaboratorio(t, db, "lab-1", "Lab Uno", "210000000011")
	seedAmp(t, db, "amp-1", "Paracetamol 500mg", "MSP-1", "lab-1")

	s := NewDnmaService(db, logrus.New(), time.Second)

	results := s.FetchAmpDetails(context.Background(), []string{"amp-1", "amp-missing"})
	assert.Len(t, results, 2)

	found := results["amp-1"]
	assert.Equal(t, entity.AmpFound, found.Status)
	assert.Equal(t, "Paracetamol 500mg", found.Details.Description)
	assert.Equal(t, "MSP-1", found.Details.ProdMSP)
	assert.Equal(t, "Lab Uno", found.Details.LaboratoryName)
	assert.Equal(t, "210000000011", found.Details.LaboratoryRUT)

	assert.Equal(t, entity.AmpNotFound, results["amp-missing"].Status)
}

func TestDnmaService_FetchAmpDetails_DeduplicatesAndSkipsEmpty(t *testing.T) {
	db := setupDnmaTestDB(t)
	seedLaboratorio(t, db, "lab-1", "Lab Uno", "210000000011")
	seedAmp(t, db, "amp-1", "Paracetamol 500mg", "MSP-1", "lab-1")

	s := NewDnmaService(db, logrus.New(), time.Second)

	results := s.FetchAmpDetails(context.Background(), []string{"amp-1", "amp-1", "", "amp-1"})
	assert.Len(t, results, 1)
	assert.Equal(t, entity.AmpFound, results["amp-1"].Status)
}

func TestDnmaService_FetchAmpDetails_QueryFailureDegrades(t *testing.T) {
	// A database without the catalog tables stands in for an unreachable
	// DNMA instance
	dsn := fmt.Sprintf("file:testdb_dnma_empty_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	log := logrus.New()
	s := NewDnmaService(db, log, time.Second)

	results := s.FetchAmpDetails(context.Background(), []string{"amp-1", "amp-2"})
	assert.Len(t, results, 2)
	assert.Equal(t, entity.AmpLookupFailed, results["amp-1"].Status)
	assert.Equal(t, entity.AmpLookupFailed, results["amp-2"].Status)
}

func TestDnmaService_FetchAmpDetails_EmptyInput(t *testing.T) {
	db := setupDnmaTestDB(t)
	s := NewDnmaService(db, logrus.New(), time.Second)

	results := s.FetchAmpDetails(context.Background(), nil)
	assert.Empty(t, results)
}
