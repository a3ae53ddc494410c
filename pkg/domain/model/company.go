package model

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type Company struct {
	ID        types.CompanyID `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
