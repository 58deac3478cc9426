package service

import (
	"testing"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestExportService_BuildWorkbook_Headers(t *testing.T) {
	s := NewExportService(logrus.New())

	f, err := s.BuildWorkbook(nil)
	assert.NoError(t, err)

	assert.Equal(t, exportSheetName, f.GetSheetName(0))

	wantHeaders := []string{
		"CÓDIGO", "CREADO", "PACIENTE", "CI", "MÉDICO", "CJP",
		"MEDICAMENTO", "LABORATORIO", "STATUS", "FARMACIA", "FECHA DE ENTREGA",
	}
	row, err := f.GetRows(exportSheetName)
	assert.NoError(t, err)
	assert.Len(t, row, 1)
	assert.Equal(t, wantHeaders, row[0])
}

func TestExportService_BuildWorkbook_Rows(t *testing.T) {
	s := NewExportService(logrus.New())

	created := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	dispensed := time.Date(2026, 2, 3, 16, 0, 0, 0, time.UTC)
	prescriptions := []*dto.PrescriptionResponse{
		{
			ID:               "p1",
			Code:             "RX-100",
			Status:           entity.PrescriptionStatusDispensed,
			CreatedAt:        created,
			UpdatedAt:        dispensed,
			PatientName:      "Pedro",
			PatientLastname:  "Lopez",
			PatientDocument:  strPtr(`{"type":"CI","number":"12345678"}`),
			MedicName:        "Marta",
			MedicLastname:    "Rios",
			MedicCJP:         "CJP-9",
			AmpDsc:           "Paracetamol 500mg",
			NombreLaboratory: "Lab Uno",
			PharmacyName:     strPtr("Farmacia Central"),
		},
		{
			ID:              "p2",
			Code:            "RX-101",
			Status:          entity.PrescriptionStatusAvailable,
			CreatedAt:       created,
			UpdatedAt:       dispensed,
			PatientName:     "Ana",
			PatientLastname: "Diaz",
		},
	}

	f, err := s.BuildWorkbook(prescriptions)
	assert.NoError(t, err)

	rows, err := f.GetRows(exportSheetName)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	dispensedRow := rows[1]
	assert.Equal(t, "RX-100", dispensedRow[0])
	assert.Equal(t, "Pedro Lopez", dispensedRow[2])
	assert.Equal(t, "12345678", dispensedRow[3])
	assert.Equal(t, "Marta Rios", dispensedRow[4])
	assert.Equal(t, "CJP-9", dispensedRow[5])
	assert.Equal(t, "Paracetamol 500mg", dispensedRow[6])
	assert.Equal(t, "Lab Uno", dispensedRow[7])
	assert.Equal(t, "Dispensada", dispensedRow[8])
	assert.Equal(t, "Farmacia Central", dispensedRow[9])
	assert.Equal(t, dispensed.Format("2006-01-02T15:04:05Z07:00"), dispensedRow[10])

	// An undelivered prescription keeps pharmacy and delivery blank; GetRows
	// truncates trailing empty cells
	availableRow := rows[2]
	assert.Equal(t, "RX-101", availableRow[0])
	assert.Equal(t, "Disponible", availableRow[8])
	if len(availableRow) > 9 {
		assert.Empty(t, availableRow[9])
	}
	if len(availableRow) > 10 {
		assert.Empty(t, availableRow[10])
	}
}

func TestDocumentNumber(t *testing.T) {
	assert.Equal(t, "12345678", documentNumber(strPtr(`{"number":"12345678"}`)))
	assert.Equal(t, "87654321", documentNumber(strPtr(`{"number":87654321}`)))
	assert.Equal(t, "", documentNumber(strPtr(`{"type":"CI"}`)))
	assert.Equal(t, "", documentNumber(strPtr(`not json`)))
	assert.Equal(t, "", documentNumber(strPtr("")))
	assert.Equal(t, "", documentNumber(nil))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Disponible", statusLabel(entity.PrescriptionStatusAvailable))
	assert.Equal(t, "Dispensada", statusLabel(entity.PrescriptionStatusDispensed))
	assert.Equal(t, "EXPIRED", statusLabel("EXPIRED"))
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, "attachment; filename=prescriptions.xlsx", ContentDisposition("prescriptions.xlsx"))
}
