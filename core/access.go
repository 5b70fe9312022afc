package core

// AccessReason classifies why an access decision was made
type AccessReason int

const (
	ReasonNone AccessReason = iota
	ReasonSuperuser
	ReasonDefaultAllow
	ReasonClearedRole
	ReasonOwner
	ReasonInvalidRequest
	ReasonMissingTenantContext
	ReasonRestrictedDocumentType
	ReasonMissingCarrierContext
	ReasonMissingCustomerContext
	ReasonOwnershipMismatch
)

func (r AccessReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonSuperuser:
		return "Superuser"
	case ReasonDefaultAllow:
		return "DefaultAllow"
	case ReasonClearedRole:
		return "ClearedRole"
	case ReasonOwner:
		return "Owner"
	case ReasonInvalidRequest:
		return "InvalidRequest"
	case ReasonMissingTenantContext:
		return "MissingTenantContext"
	case ReasonRestrictedDocumentType:
		return "RestrictedDocumentType"
	case ReasonMissingCarrierContext:
		return "MissingCarrierContext"
	case ReasonMissingCustomerContext:
		return "MissingCustomerContext"
	case ReasonOwnershipMismatch:
		return "OwnershipMismatch"
	default:
		return "Error"
	}
}

// Message is the caller facing text for a denial.
// It must not reveal the classification or owner of the document.
func (r AccessReason) Message() string {
	switch r {
	case ReasonMissingTenantContext:
		return "Access denied: Tenant context required"
	case ReasonRestrictedDocumentType,
		ReasonMissingCarrierContext,
		ReasonMissingCustomerContext,
		ReasonOwnershipMismatch:
		return "Access denied: Insufficient permissions for this document"
	default:
		return "Access denied: Invalid document access"
	}
}

// ResourceDescriptor identifies the target of an access check.
// RequestTenant and HeaderTenant are fallbacks used only when the principal carries no tenant.
type ResourceDescriptor struct {
	ResourceID    string
	RequestTenant string
	HeaderTenant  string
}

type AccessDecision struct {
	Allowed bool
	Reason  AccessReason
}

func Allow(reason AccessReason) AccessDecision {
	return AccessDecision{Allowed: true, Reason: reason}
}

func Deny(reason AccessReason) AccessDecision {
	return AccessDecision{Allowed: false, Reason: reason}
}

// Err returns nil for an allow and ErrorAccessDenied otherwise
func (d AccessDecision) Err() error {
	if d.Allowed {
		return nil
	}
	return NewErrorAccessDenied(d.Reason.String(), d.Reason.Message())
}
