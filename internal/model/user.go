package model

import "time"

// Roles recognised by the platform.  Clients rent cars, owners list them.
const (
	RoleClient = "client"
	RoleOwner  = "owner"
)

// User represents a row of the `users` table.  The password is stored and
// compared as an opaque plaintext string; credential hardening is
// explicitly out of scope for this system.  IsCompany is nullable in the
// schema and collapses to false when unset.
//
// Fields:
//  ID                – primary key identifier.
//  FullName          – display name.
//  Email             – unique email address (stored as given, case-sensitive).
//  Password          – opaque credential string, compared by equality.
//  Role              – "client" or "owner".
//  PhoneCountryCode  – dialing prefix, e.g. "+33".
//  PhoneNumber       – phone number without prefix.
//  Address           – postal address.
//  ProfilePictureURL – avatar image location.
//  DrivingCardURL    – uploaded driving licence document.
//  NationalCardURL   – uploaded identity document.
//  IsCompany         – whether the account belongs to a company.
//  CreatedAt         – timestamp of creation.
//  UpdatedAt         – timestamp of last update.
type User struct {
	ID                int64     `json:"id"`                 // users.id
	FullName          string    `json:"fullName"`           // users.full_name
	Email             string    `json:"email"`              // users.email
	Password          string    `json:"password,omitempty"` // users.password
	Role              string    `json:"role"`               // users.role
	PhoneCountryCode  string    `json:"phoneCountryCode"`   // users.phone_country_code
	PhoneNumber       string    `json:"phoneNumber"`        // users.phone_number
	Address           string    `json:"address"`            // users.address
	ProfilePictureURL string    `json:"profilePictureUrl"`  // users.profile_picture_url
	DrivingCardURL    string    `json:"drivingCardUrl"`     // users.driving_card_url
	NationalCardURL   string    `json:"nationalCardUrl"`    // users.national_card_url
	IsCompany         bool      `json:"isCompany"`          // users.is_company
	CreatedAt         time.Time `json:"createdAt"`          // users.created_at
	UpdatedAt         time.Time `json:"updatedAt"`          // users.updated_at
}

// UserPatch carries a partial user update.  Nil fields mean "keep the
// stored value"; the update operation never trusts the client to resend
// the whole record.  The password is only replaced when the incoming
// value is both non-nil and non-empty.
type UserPatch struct {
	ID                int64   `json:"id"`
	FullName          *string `json:"fullName"`
	Email             *string `json:"email"`
	Password          *string `json:"password"`
	Role              *string `json:"role"`
	PhoneCountryCode  *string `json:"phoneCountryCode"`
	PhoneNumber       *string `json:"phoneNumber"`
	Address           *string `json:"address"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	DrivingCardURL    *string `json:"drivingCardUrl"`
	NationalCardURL   *string `json:"nationalCardUrl"`
	IsCompany         *bool   `json:"isCompany"`
}

// MergeUser applies a field-level merge-on-null policy: every set field of
// the patch overrides the stored value, every nil field falls back to it.
// The result is the effective record to persist.
func MergeUser(existing User, patch UserPatch) User {
	merged := existing
	if patch.FullName != nil {
		merged.FullName = *patch.FullName
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Password != nil && *patch.Password != "" {
		merged.Password = *patch.Password
	}
	if patch.Role != nil {
		merged.Role = *patch.Role
	}
	if patch.PhoneCountryCode != nil {
		merged.PhoneCountryCode = *patch.PhoneCountryCode
	}
	if patch.PhoneNumber != nil {
		merged.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.ProfilePictureURL != nil {
		merged.ProfilePictureURL = *patch.ProfilePictureURL
	}
	if patch.DrivingCardURL != nil {
		merged.DrivingCardURL = *patch.DrivingCardURL
	}
	if patch.IsCompany != nil {
		merged.IsCompany = *patch.IsCompany
	}
	if patch.NationalCardURL != nil {
		merged.NationalCardURL = *patch.NationalCardURL
	}
	return merged
}
