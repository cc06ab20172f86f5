package models

import "gorm.io/gorm"

// Document types the stage machine gates on.
const (
	DocTypePromissory              = "PROMISSORY"
	DocTypePromissoryCountersigned = "PROMISSORY_COUNTERSIGNED"
	DocTypeRepresentation          = "REPRESENTATION"
	DocTypeMediation               = "MEDIATION"
	DocTypeFiatProof               = "FIAT_PROOF"
	DocTypeComplianceReport        = "COMPLIANCE_REPORT"
)

// Document records that a file of a given type was uploaded for a
// transaction or property. The file itself lives in external storage; the
// core only keeps the reference.
type Document struct {
	gorm.Model
	TransactionID *uint  `gorm:"index"`
	PropertyID    *uint  `gorm:"index"`
	UploaderID    uint   `gorm:"not null"`
	Type          string `gorm:"not null;index"`
	Name          string
	StorageURL    string `gorm:"not null"`
}
