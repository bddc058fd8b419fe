package domain

import (
	"fmt"
	"strings"
)

type Feature string

const (
	FeatureChats      Feature = "chats"
	FeatureTimetable  Feature = "timetable"
	FeatureGrades     Feature = "grades"
	FeatureHomeworks  Feature = "homeworks"
	FeatureAttendance Feature = "attendance"
	FeatureNews       Feature = "news"
	FeatureBalance    Feature = "balance"
	FeatureMenu       Feature = "menu"
)

func Features() []Feature {
	return []Feature{
		FeatureChats,
		FeatureTimetable,
		FeatureGrades,
		FeatureHomeworks,
		FeatureAttendance,
		FeatureNews,
		FeatureBalance,
		FeatureMenu,
	}
}

func (f Feature) Valid() bool {
	switch f {
	case FeatureChats, FeatureTimetable, FeatureGrades, FeatureHomeworks,
		FeatureAttendance, FeatureNews, FeatureBalance, FeatureMenu:
		return true
	default:
		return false
	}
}

func ParseFeature(raw string) (Feature, error) {
	feature := Feature(strings.ToLower(strings.TrimSpace(raw)))
	if !feature.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFeature, raw)
	}

	return feature, nil
}
