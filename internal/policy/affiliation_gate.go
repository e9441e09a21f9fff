// Package policy implements affiliation-scoped authorization. Every research
// entity is owned by exactly one affiliation; a user may mutate an entity only
// when the affiliation on their profile matches the entity's owner. The check
// is written once here and shared by all entity kinds instead of being
// duplicated per lifecycle.
package policy

import (
	"errors"

	"drug-insights-hub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUnaffiliated means the requesting account has no affiliation on its
	// profile. Mutating operations require one.
	ErrUnaffiliated = errors.New("account has no affiliation")
	// ErrForbidden means the requester is affiliated but not with the
	// affiliation that owns the target entity.
	ErrForbidden = errors.New("affiliation does not match entity owner")
)

// AffiliationOwned is implemented by every entity owned by an affiliation.
type AffiliationOwned interface {
	OwningAffiliationID() uint
}

// AffiliationGate resolves a requester's affiliation and compares it against
// the owner of a target entity. Comparison is by affiliation id, never by name.
type AffiliationGate struct {
	profileRepo repository.UserProfileRepository
}

func NewAffiliationGate(profileRepo repository.UserProfileRepository) *AffiliationGate {
	return &AffiliationGate{profileRepo: profileRepo}
}

// ResolveAffiliation returns the requester's affiliation id.
// Returns ErrUnaffiliated when the profile is missing or has no affiliation
// set, short-circuiting any mutating operation before validation runs.
func (g *AffiliationGate) ResolveAffiliation(db *gorm.DB, userID uuid.UUID) (uint, error) {
	profile, err := g.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return 0, err
	}
	if profile == nil || profile.AffiliationID == nil {
		return 0, ErrUnaffiliated
	}
	return *profile.AffiliationID, nil
}

// Authorize compares an already resolved affiliation against the resource
// owner. The caller resolves the resource first; a nil lookup is a not-found
// condition, which precedes this check.
func (g *AffiliationGate) Authorize(affiliationID uint, resource AffiliationOwned) error {
	if affiliationID != resource.OwningAffiliationID() {
		return ErrForbidden
	}
	return nil
}

// AuthorizeMutation resolves the requester's affiliation and checks it
// against the resource owner in one step.
func (g *AffiliationGate) AuthorizeMutation(db *gorm.DB, userID uuid.UUID, resource AffiliationOwned) error {
	affiliationID, err := g.ResolveAffiliation(db, userID)
	if err != nil {
		return err
	}
	return g.Authorize(affiliationID, resource)
}

// CanModify reports whether the viewer could mutate the resource. Used by
// detail views, which are public, to tell the presentation layer whether to
// offer edit and delete actions.
func (g *AffiliationGate) CanModify(db *gorm.DB, userID uuid.UUID, resource AffiliationOwned) bool {
	return g.AuthorizeMutation(db, userID, resource) == nil
}
