package usecase

import (
	"context"
	"testing"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newMedicUsecaseForTest(db *gorm.DB) MedicUsecase {
	return NewMedicUsecase(db, logrus.New(), repository.NewMedicRepository())
}

func TestMedicUsecase_CreateMedic_RejectsDuplicateEmail(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)
	u := newMedicUsecaseForTest(db)

	_, err := u.CreateMedic(context.Background(), &dto.CreateMedicRequest{
		Name:              "Julia",
		Email:             "julia@medic.test",
		MedicalProviderID: f.provider.ID,
	})
	assert.NoError(t, err)

	_, err = u.CreateMedic(context.Background(), &dto.CreateMedicRequest{
		Name:              "Julia Clone",
		Email:             "julia@medic.test",
		MedicalProviderID: f.provider.ID,
	})
	assert.ErrorIs(t, err, ErrMedicEmailExists)
}

func TestMedicUsecase_UpdateMedic_EmailCollision(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)
	u := newMedicUsecaseForTest(db)

	other := &entity.Medic{
		ID: uuid.New().String(), Name: "Nora",
		Email: "nora@medic.test", MedicalProviderID: f.provider.ID,
	}
	assert.NoError(t, db.Create(other).Error)

	takenEmail := "nora@medic.test"
	_, err := u.UpdateMedic(context.Background(), f.medic.ID, &dto.UpdateMedicRequest{
		Email: &takenEmail,
	})
	assert.ErrorIs(t, err, ErrMedicEmailExists)

	// Re-submitting the medic's own email is not a collision
	ownEmail := f.medic.Email
	updated, err := u.UpdateMedic(context.Background(), f.medic.ID, &dto.UpdateMedicRequest{
		Email: &ownEmail,
	})
	assert.NoError(t, err)
	assert.Equal(t, ownEmail, updated.Email)
}

func TestMedicUsecase_UpdateMedic_PartialMerge(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)
	u := newMedicUsecaseForTest(db)

	phone := "099123456"
	updated, err := u.UpdateMedic(context.Background(), f.medic.ID, &dto.UpdateMedicRequest{
		Phone: &phone,
	})
	assert.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, f.medic.Name, updated.Name)
	assert.Equal(t, f.medic.Email, updated.Email)
}

func TestMedicUsecase_DeleteMedic_NotFound(t *testing.T) {
	db := setupUsecaseTestDB(t)
	u := newMedicUsecaseForTest(db)

	err := u.DeleteMedic(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMedicNotFound)
}

func TestMedicUsecase_SearchByProvider_ScopesToProvider(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)
	u := newMedicUsecaseForTest(db)

	otherProvider := &entity.MedicalProvider{ID: uuid.New().String(), Name: "Otra", Email: "otra@recetalia.test"}
	assert.NoError(t, db.Create(otherProvider).Error)
	assert.NoError(t, db.Create(&entity.Medic{
		ID: uuid.New().String(), Name: "Marta", Lastname: "Ajena",
		Email: "marta.ajena@medic.test", MedicalProviderID: otherProvider.ID,
	}).Error)

	results, err := u.SearchByProvider(context.Background(), f.provider.ID, "Marta")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, f.medic.ID, results[0].ID)
}
