package service

import (
	"context"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AmpFetcher looks up drug catalog metadata for a batch of product IDs.
// Implementations never return an error: a failed lookup degrades every
// requested ID to LookupFailed so the surrounding request can still
// succeed.
type AmpFetcher interface {
	FetchAmpDetails(ctx context.Context, productIDs []string) map[string]entity.AmpLookup
}

type ampRow struct {
	AmpID            string `gorm:"column:amp_id"`
	AmpDsc           string `gorm:"column:amp_dsc"`
	ProdMsp          string `gorm:"column:prod_msp"`
	NombreLaboratory string `gorm:"column:nombre_laboratory"`
	RutLaboratory    string `gorm:"column:rut_laboratory"`
}

// DnmaService reads the externally hosted DNMA drug catalog. One batched
// query per call, bounded by its own timeout so a slow remote cannot stall
// the primary request indefinitely.
type DnmaService struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
}

func NewDnmaService(db *gorm.DB, log *logrus.Logger, timeout time.Duration) *DnmaService {
	return &DnmaService{
		db:      db,
		log:     log,
		timeout: timeout,
	}
}

// FetchAmpDetails resolves the distinct product IDs in the input against
// the amp/laboratorio tables in a single round-trip. IDs absent from the
// catalog map to NotFound; a query failure maps every ID to LookupFailed.
func (s *DnmaService) FetchAmpDetails(ctx context.Context, productIDs []string) map[string]entity.AmpLookup {
	results := make(map[string]entity.AmpLookup, len(productIDs))

	distinct := make([]string, 0, len(productIDs))
	seen := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
		results[id] = entity.AmpLookup{Status: entity.AmpNotFound}
	}
	if len(distinct) == 0 {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rows []ampRow
	err := s.db.WithContext(ctx).Raw(
		"SELECT amp.AMP_Id AS amp_id, amp.AMP_DSC AS amp_dsc, amp.PROD_MSP AS prod_msp, "+
			"l.NOMBRE AS nombre_laboratory, l.RUT AS rut_laboratory "+
			"FROM amp "+
			"INNER JOIN laboratorio l ON l.LAB_Id = amp.LABORATORIO_Id "+
			"WHERE amp.AMP_Id IN ?", distinct,
	).Scan(&rows).Error
	if err != nil {
		s.log.Warnf("DNMA lookup failed for %d product IDs: %+v", len(distinct), err)
		for _, id := range distinct {
			results[id] = entity.AmpLookup{Status: entity.AmpLookupFailed}
		}
		return results
	}

	for _, row := range rows {
		results[row.AmpID] = entity.AmpLookup{
			Status: entity.AmpFound,
			Details: entity.AmpDetails{
				Description:    row.AmpDsc,
				ProdMSP:        row.ProdMsp,
				LaboratoryName: row.NombreLaboratory,
				LaboratoryRUT:  row.RutLaboratory,
			},
		}
	}

	return results
}
