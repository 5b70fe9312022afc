package core

import (
	"time"

	"github.com/lib/pq"
)

type DocumentType string

const (
	DocumentTypeBOL              DocumentType = "BOL"
	DocumentTypePOD              DocumentType = "POD"
	DocumentTypeRateConfirmation DocumentType = "RATE_CONFIRMATION"
	DocumentTypeInvoice          DocumentType = "INVOICE"
	DocumentTypeW9               DocumentType = "W9"
	DocumentTypeTax              DocumentType = "TAX"
	DocumentTypeInsurance        DocumentType = "INSURANCE"
	DocumentTypeOther            DocumentType = "OTHER"
)

type EntityType string

const (
	EntityTypeNone     EntityType = ""
	EntityTypeCarrier  EntityType = "CARRIER"
	EntityTypeCustomer EntityType = "CUSTOMER"
	EntityTypeCompany  EntityType = "COMPANY"
	EntityTypeLoad     EntityType = "LOAD"
)

// Document is a tenant scoped file attached to a carrier, customer or load
type Document struct {
	ID           string         `json:"id" gorm:"primaryKey;type:char(20)"`
	TenantID     string         `json:"tenantId" gorm:"type:text;index;not null"`
	Name         string         `json:"name" gorm:"type:text"`
	DocumentType DocumentType   `json:"documentType" gorm:"type:text;index"`
	EntityType   EntityType     `json:"entityType,omitempty" gorm:"type:text;index:idx_document_entity"`
	EntityID     string         `json:"entityId,omitempty" gorm:"type:text;index:idx_document_entity"`
	CarrierID    string         `json:"carrierId,omitempty" gorm:"type:text"`
	CompanyID    string         `json:"companyId,omitempty" gorm:"type:text"`
	MimeType     string         `json:"mimeType" gorm:"type:text"`
	FileName     string         `json:"fileName" gorm:"type:text"`
	Size         int64          `json:"size"`
	Content      []byte         `json:"-" gorm:"type:bytea"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	CreatedBy    string         `json:"createdBy" gorm:"type:text"`
	CDate        time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate        time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}
