package entities

import "strings"

// ServiceDetailStatus is the lifecycle state of a service detail (line item).
//
// The set is closed: values outside AllServiceDetailStatuses are rejected by
// ParseServiceDetailStatus and never reach storage.
type ServiceDetailStatus string

const (
	ServiceDetailStatusAgendada     ServiceDetailStatus = "Agendada"
	ServiceDetailStatusConfirmada   ServiceDetailStatus = "Confirmada"
	ServiceDetailStatusReprogramada ServiceDetailStatus = "Reprogramada"
	ServiceDetailStatusEnProceso    ServiceDetailStatus = "En proceso"
	ServiceDetailStatusFinalizada   ServiceDetailStatus = "Finalizada"
	ServiceDetailStatusPagada       ServiceDetailStatus = "Pagada"
	ServiceDetailStatusCancelada    ServiceDetailStatus = "Cancelada por el cliente"
	ServiceDetailStatusNoAsistio    ServiceDetailStatus = "No asistio"
)

// AllServiceDetailStatuses lists the statuses in lifecycle order.
var AllServiceDetailStatuses = []ServiceDetailStatus{
	ServiceDetailStatusAgendada,
	ServiceDetailStatusConfirmada,
	ServiceDetailStatusReprogramada,
	ServiceDetailStatusEnProceso,
	ServiceDetailStatusFinalizada,
	ServiceDetailStatusPagada,
	ServiceDetailStatusCancelada,
	ServiceDetailStatusNoAsistio,
}

// serviceDetailTransitions is the directed graph of legal status changes.
// Statuses mapped to an empty set are terminal.
var serviceDetailTransitions = map[ServiceDetailStatus][]ServiceDetailStatus{
	ServiceDetailStatusAgendada: {
		ServiceDetailStatusConfirmada,
		ServiceDetailStatusReprogramada,
		ServiceDetailStatusCancelada,
		ServiceDetailStatusNoAsistio,
	},
	ServiceDetailStatusConfirmada: {
		ServiceDetailStatusReprogramada,
		ServiceDetailStatusEnProceso,
		ServiceDetailStatusCancelada,
		ServiceDetailStatusNoAsistio,
	},
	ServiceDetailStatusReprogramada: {
		ServiceDetailStatusConfirmada,
		ServiceDetailStatusEnProceso,
		ServiceDetailStatusCancelada,
		ServiceDetailStatusNoAsistio,
	},
	ServiceDetailStatusEnProceso: {
		ServiceDetailStatusFinalizada,
		ServiceDetailStatusPagada,
	},
	ServiceDetailStatusFinalizada: {
		ServiceDetailStatusPagada,
	},
	ServiceDetailStatusPagada:    {},
	ServiceDetailStatusCancelada: {},
	ServiceDetailStatusNoAsistio: {},
}

// ParseServiceDetailStatus resolves a raw value into a known status.
// Surrounding whitespace is ignored; matching is exact otherwise.
func ParseServiceDetailStatus(raw string) (ServiceDetailStatus, bool) {
	s := ServiceDetailStatus(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}

func (s ServiceDetailStatus) IsValid() bool {
	_, ok := serviceDetailTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s ServiceDetailStatus) IsTerminal() bool {
	next, ok := serviceDetailTransitions[s]
	return ok && len(next) == 0
}

// NextStatuses returns a copy of the statuses reachable from s in one step.
func (s ServiceDetailStatus) NextStatuses() []ServiceDetailStatus {
	next := serviceDetailTransitions[s]
	out := make([]ServiceDetailStatus, len(next))
	copy(out, next)
	return out
}

// IsLegalTransition reports whether from -> to is an edge of the lifecycle graph.
func IsLegalTransition(from, to ServiceDetailStatus) bool {
	for _, candidate := range serviceDetailTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}
