package entities

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// TargetKind tells which entity a comment or rank is attached to
type TargetKind string

const (
	TargetHospital TargetKind = "hospital"
	TargetService  TargetKind = "service"
)

// ParseTargetKind parses the kind used in routes and payloads
func ParseTargetKind(value string) (TargetKind, error) {
	switch TargetKind(value) {
	case TargetHospital, TargetService:
		return TargetKind(value), nil
	}
	return "", apperrors.NewValidationError(apperrors.CodeInvalidInput, fmt.Sprintf("unknown target kind %q", value))
}

// TargetRef points at exactly one hospital or one service.
// The zero value is invalid.
type TargetRef struct {
	Kind TargetKind
	ID   string
}

// HospitalTarget references a hospital
func HospitalTarget(id string) TargetRef {
	return TargetRef{Kind: TargetHospital, ID: id}
}

// ServiceTarget references a service
func ServiceTarget(id string) TargetRef {
	return TargetRef{Kind: TargetService, ID: id}
}

// NewTargetRef builds a reference from the flat hospital/service column pair.
// Exactly one of the two must be set.
func NewTargetRef(hospitalID, serviceID string) (TargetRef, error) {
	switch {
	case hospitalID == "" && serviceID == "":
		return TargetRef{}, apperrors.NewValidationError(
			apperrors.CodeNeitherSet,
			`fields "service" and "hospital" are empty, determine exactly one of them`,
		)
	case hospitalID != "" && serviceID != "":
		return TargetRef{}, apperrors.NewValidationError(
			apperrors.CodeBothSet,
			`fields "service" and "hospital" can not both be determined, choose one of them`,
		)
	case hospitalID != "":
		return HospitalTarget(hospitalID), nil
	default:
		return ServiceTarget(serviceID), nil
	}
}

// Validate re-checks a reference that was assembled by hand
func (t TargetRef) Validate() error {
	switch t.Kind {
	case TargetHospital:
		_, err := NewTargetRef(t.ID, "")
		return err
	case TargetService:
		_, err := NewTargetRef("", t.ID)
		return err
	}
	return apperrors.NewValidationError(apperrors.CodeNeitherSet, "target kind is not set")
}

// Columns returns the flat hospital_id/service_id pair used by storage
func (t TargetRef) Columns() (hospitalID, serviceID *string) {
	id := t.ID
	if t.Kind == TargetHospital {
		return &id, nil
	}
	return nil, &id
}

// Column returns the storage column that holds this reference
func (t TargetRef) Column() string {
	if t.Kind == TargetHospital {
		return "hospital_id"
	}
	return "service_id"
}

// Table returns the table of the referenced entity
func (t TargetRef) Table() string {
	if t.Kind == TargetHospital {
		return "hospitals"
	}
	return "services"
}

// IsHospital reports whether the reference points at a hospital
func (t TargetRef) IsHospital() bool {
	return t.Kind == TargetHospital
}

func (t TargetRef) String() string {
	return string(t.Kind) + ":" + t.ID
}

type targetJSON struct {
	Hospital *string `json:"hospital"`
	Service  *string `json:"service"`
}

// MarshalJSON keeps the flat {"hospital", "service"} shape on the wire
func (t TargetRef) MarshalJSON() ([]byte, error) {
	hospitalID, serviceID := t.Columns()
	return json.Marshal(targetJSON{Hospital: hospitalID, Service: serviceID})
}

// UnmarshalJSON accepts the flat shape and enforces the exclusivity rule
func (t *TargetRef) UnmarshalJSON(data []byte) error {
	var raw targetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ref, err := NewTargetRef(deref(raw.Hospital), deref(raw.Service))
	if err != nil {
		return err
	}
	*t = ref
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
