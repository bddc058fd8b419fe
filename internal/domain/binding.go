package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FeatureBindings maps a feature of a composite account to the account that
// serves it. A missing entry means the feature is unbound.
type FeatureBindings map[Feature]AccountID

func (b FeatureBindings) Target(feature Feature) (AccountID, bool) {
	target, ok := b[feature]
	if !ok || strings.TrimSpace(string(target)) == "" {
		return "", false
	}
	return target, true
}

func (b FeatureBindings) Clone() FeatureBindings {
	if b == nil {
		return nil
	}

	cloned := make(FeatureBindings, len(b))
	for feature, target := range b {
		cloned[feature] = target
	}
	return cloned
}

// Sorted returns the bound features in Features() order.
func (b FeatureBindings) Sorted() []Feature {
	order := make(map[Feature]int, len(Features()))
	for i, feature := range Features() {
		order[feature] = i
	}

	features := make([]Feature, 0, len(b))
	for feature, target := range b {
		if strings.TrimSpace(string(target)) == "" {
			continue
		}
		features = append(features, feature)
	}
	sort.Slice(features, func(i, j int) bool {
		return order[features[i]] < order[features[j]]
	})

	return features
}

// ValidateBinding checks that owner may delegate a feature to target. Chains
// of composite accounts are rejected here so resolution never needs more than
// one indirection.
func ValidateBinding(owner Account, feature Feature, target Account) error {
	if !feature.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}
	if !owner.IsComposite() {
		return fmt.Errorf("%w: %s is a %s account, not a composite one", ErrInvalidBinding, owner.LocalID, owner.Service)
	}
	if owner.LocalID == target.LocalID {
		return fmt.Errorf("%w: %s cannot bind %s to itself", ErrInvalidBinding, owner.LocalID, feature)
	}
	if target.IsComposite() {
		return fmt.Errorf("%w: %s cannot bind %s to composite account %s", ErrInvalidBinding, owner.LocalID, feature, target.LocalID)
	}

	return nil
}
