package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas estándar del pipeline de ventas.
const (
	StageProspecting   = "Prospecting"
	StageQualification = "Qualification"
	StageProposal      = "Proposal"
	StageClosedWon     = "Closed Won"
	StageClosedLost    = "Closed Lost"
)

// Opportunity representa una oportunidad de venta, opcionalmente ligada a una Account.
type Opportunity struct {
	ID        string
	OrgID     string
	AccountID string // FK a Account; vacío = sin cuenta asociada
	Name      string // obligatorio
	StageName string // ver constantes Stage*
	CloseDate time.Time
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
