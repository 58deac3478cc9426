package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMedicTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:testdb_medic_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&entity.MedicalProvider{}, &entity.Medic{})
	assert.NoError(t, err)

	return db
}

func TestMedicRepository_FindByEmail(t *testing.T) {
	db := setupMedicTestDB(t)
	repo := NewMedicRepository()

	provider := seedProvider(t, db, "provider")
	medic := seedMedic(t, db, provider.ID, "ana")

	found, err := repo.FindByEmail(db, medic.Email)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, medic.ID, found.ID)

	missing, err := repo.FindByEmail(db, "nobody@medic.test")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMedicRepository_FindAllPaginated_Keyword(t *testing.T) {
	db := setupMedicTestDB(t)
	repo := NewMedicRepository()

	provider := seedProvider(t, db, "provider")
	assert.NoError(t, db.Create(&entity.Medic{
		ID: uuid.New().String(), Name: "Carla", Lastname: "Gomez",
		Email: "carla@medic.test", CJP: "CJP-100", MedicalProviderID: provider.ID,
	}).Error)
	assert.NoError(t, db.Create(&entity.Medic{
		ID: uuid.New().String(), Name: "Diego", Lastname: "Carlucci",
		Email: "diego@medic.test", CJP: "CJP-200", MedicalProviderID: provider.ID,
	}).Error)
	assert.NoError(t, db.Create(&entity.Medic{
		ID: uuid.New().String(), Name: "Elena", Lastname: "Silva",
		Email: "elena@medic.test", CJP: "CJP-300", MedicalProviderID: provider.ID,
	}).Error)

	// Keyword matches across name and lastname
	medics, total, err := repo.FindAllPaginated(db, "Carl", 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, medics, 2)

	// Keyword matches cjp
	medics, total, err = repo.FindAllPaginated(db, "CJP-300", 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Elena", medics[0].Name)

	// Empty keyword returns everything, paginated
	medics, total, err = repo.FindAllPaginated(db, "", 0, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, medics, 2)
}

func TestMedicRepository_SearchByProvider(t *testing.T) {
	db := setupMedicTestDB(t)
	repo := NewMedicRepository()

	providerA := seedProvider(t, db, "provider-a")
	providerB := seedProvider(t, db, "provider-b")

	assert.NoError(t, db.Create(&entity.Medic{
		ID: uuid.New().String(), Name: "Laura", Lastname: "Mendez",
		Email: "laura@medic.test", MedicalProviderID: providerA.ID,
	}).Error)
	assert.NoError(t, db.Create(&entity.Medic{
		ID: uuid.New().String(), Name: "Laura", Lastname: "Perez",
		Email: "laura.p@medic.test", MedicalProviderID: providerB.ID,
	}).Error)

	// Only the caller's provider is searched
	medics, err := repo.SearchByProvider(db, providerA.ID, "Laura", 10)
	assert.NoError(t, err)
	assert.Len(t, medics, 1)
	assert.Equal(t, "Mendez", medics[0].Lastname)
}

func TestMedicRepository_SearchByProvider_Limit(t *testing.T) {
	db := setupMedicTestDB(t)
	repo := NewMedicRepository()

	provider := seedProvider(t, db, "provider")
	for i := 0; i < 15; i++ {
		assert.NoError(t, db.Create(&entity.Medic{
			ID: uuid.New().String(), Name: fmt.Sprintf("Medic%02d", i),
			Email: fmt.Sprintf("medic%02d@medic.test", i), MedicalProviderID: provider.ID,
		}).Error)
	}

	medics, err := repo.SearchByProvider(db, provider.ID, "Medic", 10)
	assert.NoError(t, err)
	assert.Len(t, medics, 10)
}
