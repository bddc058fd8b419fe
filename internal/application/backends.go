package application

import (
	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports"
)

// Backend groups the providers one service kind implements. A nil provider
// means the kind does not support that feature.
type Backend struct {
	Chats     ports.ChatProvider
	Timetable ports.TimetableProvider
}

// Provides reports whether the backend has a provider serving feature.
func (b Backend) Provides(feature domain.Feature) bool {
	switch feature {
	case domain.FeatureChats:
		return b.Chats != nil
	case domain.FeatureTimetable:
		return b.Timetable != nil
	default:
		return false
	}
}

// Backends is the dispatch table of the router: one field per concrete
// service kind. Adding a kind means adding a field here and a case in For.
type Backends struct {
	Pronote      Backend
	EcoleDirecte Backend
	Skolengo     Backend
	Local        Backend
}

func (b Backends) For(service domain.Service) (Backend, bool) {
	switch service {
	case domain.ServicePronote:
		return b.Pronote, true
	case domain.ServiceEcoleDirecte:
		return b.EcoleDirecte, true
	case domain.ServiceSkolengo:
		return b.Skolengo, true
	case domain.ServiceLocal:
		return b.Local, true
	default:
		return Backend{}, false
	}
}
