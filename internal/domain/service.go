package domain

import (
	"fmt"
	"strings"
)

type Service string

const (
	ServicePronote      Service = "pronote"
	ServiceEcoleDirecte Service = "ecoledirecte"
	ServiceSkolengo     Service = "skolengo"
	ServiceLocal        Service = "local"

	// ServiceMultiService is the composite kind: it owns feature bindings and
	// implements nothing itself.
	ServiceMultiService Service = "multi_service"
)

var serviceAliases = map[string]Service{
	"ed":            ServiceEcoleDirecte,
	"ecole_directe": ServiceEcoleDirecte,
	"multi":         ServiceMultiService,
	"multiservice":  ServiceMultiService,
	"composite":     ServiceMultiService,
}

func Services() []Service {
	return []Service{
		ServicePronote,
		ServiceEcoleDirecte,
		ServiceSkolengo,
		ServiceLocal,
		ServiceMultiService,
	}
}

// ConcreteServices lists every kind a feature binding may target.
func ConcreteServices() []Service {
	services := make([]Service, 0, len(Services()))
	for _, service := range Services() {
		if !service.IsComposite() {
			services = append(services, service)
		}
	}
	return services
}

func (s Service) Valid() bool {
	switch s {
	case ServicePronote, ServiceEcoleDirecte, ServiceSkolengo, ServiceLocal, ServiceMultiService:
		return true
	default:
		return false
	}
}

func (s Service) IsComposite() bool {
	return s == ServiceMultiService
}

func (s Service) Label() string {
	switch s {
	case ServicePronote:
		return "Pronote"
	case ServiceEcoleDirecte:
		return "EcoleDirecte"
	case ServiceSkolengo:
		return "Skolengo"
	case ServiceLocal:
		return "Local"
	case ServiceMultiService:
		return "Multi-service"
	default:
		return string(s)
	}
}

func ParseService(raw string) (Service, error) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := serviceAliases[lower]; ok {
		return canonical, nil
	}

	service := Service(lower)
	if !service.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownService, raw)
	}

	return service, nil
}
