package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Prescriptions"

var exportHeaders = []string{
	"CÓDIGO", "CREADO", "PACIENTE", "CI", "MÉDICO", "CJP",
	"MEDICAMENTO", "LABORATORIO", "STATUS", "FARMACIA", "FECHA DE ENTREGA",
}

// ExportService renders enriched prescription listings as an Excel
// workbook. A malformed record degrades to best-effort cells; it never
// aborts the export.
type ExportService struct {
	log *logrus.Logger
}

func NewExportService(log *logrus.Logger) *ExportService {
	return &ExportService{log: log}
}

// BuildWorkbook produces one header row plus one row per prescription, in
// the order given by the caller.
func (s *ExportService) BuildWorkbook(prescriptions []*dto.PrescriptionResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for i, p := range prescriptions {
		if err := s.writeRow(f, i+2, p); err != nil {
			s.log.Warnf("Failed to write export row for prescription %s: %+v", p.ID, err)
		}
	}

	return f, nil
}

func (s *ExportService) writeRow(f *excelize.File, rowNum int, p *dto.PrescriptionResponse) error {
	pharmacy := ""
	if p.PharmacyName != nil {
		pharmacy = *p.PharmacyName
	}

	delivery := ""
	if p.Status != entity.PrescriptionStatusAvailable && !p.UpdatedAt.IsZero() {
		delivery = p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	values := []interface{}{
		p.Code,
		p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		p.PatientName + " " + p.PatientLastname,
		documentNumber(p.PatientDocument),
		p.MedicName + " " + p.MedicLastname,
		p.MedicCJP,
		p.AmpDsc,
		p.NombreLaboratory,
		statusLabel(p.Status),
		pharmacy,
		delivery,
	}

	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(exportSheetName, cell, &values)
}

// documentNumber extracts the "number" subfield from the JSON-encoded
// patient document. Absent, malformed or incomplete documents render as an
// empty string.
func documentNumber(document *string) string {
	if document == nil || *document == "" {
		return ""
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(*document), &parsed); err != nil {
		return ""
	}
	switch number := parsed["number"].(type) {
	case string:
		return number
	case float64:
		return strconv.FormatFloat(number, 'f', -1, 64)
	default:
		return ""
	}
}

// statusLabel maps known statuses to their Spanish display labels. Unknown
// statuses pass through verbatim: the enumeration is open.
func statusLabel(status string) string {
	switch status {
	case entity.PrescriptionStatusAvailable:
		return "Disponible"
	case entity.PrescriptionStatusDispensed:
		return "Dispensada"
	default:
		return status
	}
}

// ContentDisposition is the attachment header value for Excel downloads.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%s", filename)
}
