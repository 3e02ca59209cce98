package service

// ReferenceGenerator creates transaction references.
type ReferenceGenerator interface {
	NewReference() string
}
