// file: internals/features/competitions/certificates/dto/certificate_template_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pertandinganku_backend/internals/features/competitions/certificates/model"
	"pertandinganku_backend/internals/features/competitions/certificates/service"
)

/* =========================================================
   Requests: CREATE template
   ========================================================= */

type CreateCertTemplateRequest struct {
	CertTemplateEventID       string                    `json:"cert_template_event_id" validate:"required,uuid4"`
	CertTemplateName          string                    `json:"cert_template_name" validate:"required,max=200"`
	CertTemplateTargetType    string                    `json:"cert_template_target_type" validate:"required"`
	CertTemplateConfig        json.RawMessage           `json:"cert_template_config,omitempty"`
	CertTemplatePrerequisites []service.PrerequisiteRef `json:"cert_template_prerequisites,omitempty"`
}

func (r *CreateCertTemplateRequest) Normalize() {
	r.CertTemplateName = strings.TrimSpace(r.CertTemplateName)
	r.CertTemplateTargetType = strings.ToUpper(strings.TrimSpace(r.CertTemplateTargetType))
}

func (r *CreateCertTemplateRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if !model.IsValidTargetType(r.CertTemplateTargetType) {
		return errors.New("cert_template_target_type harus GENERAL | NON_CONTEST_PARTICIPANT | EVENT_WINNER | TRAINERS")
	}
	for _, ref := range r.CertTemplatePrerequisites {
		if ref.Prerequisite == "" {
			return errors.New("entri prasyarat wajib punya tag prerequisite")
		}
		if ref.Prerequisite == service.PrerequisiteKindSurvey && ref.SurveyID == uuid.Nil {
			return errors.New("prasyarat survey wajib menyertakan survey_id")
		}
	}
	return nil
}

func (r *CreateCertTemplateRequest) ToModel() (*model.CertificateTemplateModel, error) {
	eventID, err := uuid.Parse(r.CertTemplateEventID)
	if err != nil {
		return nil, errors.New("cert_template_event_id tidak valid")
	}

	tpl := &model.CertificateTemplateModel{
		CertTemplateEventID:    eventID,
		CertTemplateName:       r.CertTemplateName,
		CertTemplateTargetType: r.CertTemplateTargetType,
		CertTemplateStatus:     model.TemplateStatusActive,
	}
	if len(r.CertTemplateConfig) > 0 {
		tpl.CertTemplateConfig = datatypes.JSON(r.CertTemplateConfig)
	}
	if len(r.CertTemplatePrerequisites) > 0 {
		raw, err := json.Marshal(r.CertTemplatePrerequisites)
		if err != nil {
			return nil, errors.New("prasyarat tidak bisa di-serialize")
		}
		tpl.CertTemplatePrerequisites = datatypes.JSON(raw)
	}
	return tpl, nil
}
