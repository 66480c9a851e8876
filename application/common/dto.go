package common

import (
	"time"

	"ecommerce/domain/shared"
)

// AuditResponse is embedded in every response DTO.
type AuditResponse struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	CreatedBy string     `json:"created_by"`
	UpdatedBy string     `json:"updated_by,omitempty"`
	Active    bool       `json:"active"`
}

func NewAuditResponse(a shared.Audit) AuditResponse {
	return AuditResponse{
		ID:        a.ID(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
		CreatedBy: a.CreatedBy(),
		UpdatedBy: a.UpdatedBy(),
		Active:    a.IsActive(),
	}
}
