package services

import (
	portsrepo "github.com/SscSPs/growth_estimator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/growth_estimator/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// reader resolves history sources for EstimateFromSource.
func NewServiceContainer(reader portsrepo.HistoryReader, options ...EstimationOption) *portssvc.ServiceContainer {
	options = append([]EstimationOption{WithHistoryReader(reader)}, options...)
	return &portssvc.ServiceContainer{
		Estimation: NewEstimationService(options...),
	}
}
