// Package usecase implements the business logic for the identity feature.
package usecase

import "errors"

var (
	// ErrIdentityNotFound is returned when an identity cannot be found by email or ID.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrEmailTaken is returned when attempting to register an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login fails. Unknown email and
	// wrong password are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenNotFound is returned when a bearer token cannot be resolved.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenExists is returned when a token already exists for the identity.
	ErrTokenExists = errors.New("token already issued for identity")

	// ErrInvalidRole is returned when the role is neither job_seeker nor employer.
	ErrInvalidRole = errors.New("role must be job_seeker or employer")

	// ErrSkillsRequired is returned when a job seeker registers without skills.
	ErrSkillsRequired = errors.New("job seekers must provide skills")

	// ErrCompanyRequired is returned when an employer registers without a company.
	ErrCompanyRequired = errors.New("employers must provide a company")
)
