// file: internals/features/competitions/certificates/dto/certificate_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"pertandinganku_backend/internals/features/competitions/certificates/service"
)

/* =========================================================
   Requests: BULK CREATE
   ========================================================= */

type BulkCertificateRow struct {
	RecipientName  string  `json:"recipient_name"`
	RecipientEmail *string `json:"recipient_email,omitempty"`
	ICNumber       *string `json:"ic_number,omitempty"`
	TeamName       *string `json:"team_name,omitempty"`
	AwardTitle     *string `json:"award_title,omitempty"`
	ContestID      *string `json:"contest_id,omitempty"`
	Rank           *int    `json:"rank,omitempty"`
}

type CreateBulkCertificatesRequest struct {
	CertTemplateID string               `json:"cert_template_id" validate:"required,uuid4"`
	Certificates   []BulkCertificateRow `json:"certificates" validate:"required,min=1,max=1000"`
}

// ToServiceRows mengubah payload HTTP jadi input service (validasi isi baris
// terjadi di service supaya kegagalan tetap per-baris).
func (r *CreateBulkCertificatesRequest) ToServiceRows() []service.BulkRow {
	rows := make([]service.BulkRow, 0, len(r.Certificates))
	for _, row := range r.Certificates {
		out := service.BulkRow{
			RecipientName:  row.RecipientName,
			RecipientEmail: row.RecipientEmail,
			ICNumber:       row.ICNumber,
			TeamName:       row.TeamName,
			AwardTitle:     row.AwardTitle,
			Rank:           row.Rank,
		}
		if row.ContestID != nil {
			if id, err := uuid.Parse(strings.TrimSpace(*row.ContestID)); err == nil {
				out.ContestID = &id
			}
		}
		rows = append(rows, out)
	}
	return rows
}

/* =========================================================
   Requests: PREREQUISITE CHECK
   ========================================================= */

type CheckPrerequisitesRequest struct {
	CertificateID string `json:"certificate_id" validate:"required,uuid4"`
	ContestantID  string `json:"contestant_id" validate:"required,uuid4"`
}

type CheckPrerequisitesResponse struct {
	CanDownload     bool     `json:"can_download"`
	Incomplete      []string `json:"incomplete"`
	DetailedMessage string   `json:"detailed_message,omitempty"`
}

/* =========================================================
   Requests: EXPORT
   ========================================================= */

// Salah satu dari cert_template_id / certificate_ids wajib diisi.
type ExportCertificatesRequest struct {
	CertTemplateID *string  `json:"cert_template_id" validate:"omitempty,uuid4"`
	CertificateIDs []string `json:"certificate_ids" validate:"omitempty,min=1,dive,uuid4"`
	ContestID      *string  `json:"contest_id" validate:"omitempty,uuid4"`
}

func (r *ExportCertificatesRequest) HasSelection() bool {
	return r.CertTemplateID != nil || len(r.CertificateIDs) > 0
}
