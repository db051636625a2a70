// Package entity contains the core business objects of the project.
package entity

// PartnerStatus represents the vetting state of a cobbler profile.
type PartnerStatus string

const (
	// PartnerStatusPending indicates a freshly registered, not yet vetted cobbler.
	PartnerStatusPending PartnerStatus = "pending"
	// PartnerStatusApproved indicates a cobbler cleared by an administrator.
	// Only approved cobblers with a known coordinate are eligible for assignment.
	PartnerStatusApproved PartnerStatus = "approved"
	// PartnerStatusRejected indicates a cobbler refused by an administrator.
	PartnerStatusRejected PartnerStatus = "rejected"
)

// String returns the string representation of the PartnerStatus.
func (s PartnerStatus) String() string {
	return string(s)
}

// IsValid checks if the PartnerStatus is a valid value.
func (s PartnerStatus) IsValid() bool {
	switch s {
	case PartnerStatusPending, PartnerStatusApproved, PartnerStatusRejected:
		return true
	default:
		return false
	}
}
