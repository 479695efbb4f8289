package service

import (
	"github.com/MKhiriev/go-family-organizer/internal/adapter"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/store"
	"github.com/MKhiriev/go-family-organizer/models"
)

// Registry holds the per-entity sync strategies in pull priority order.
// Strategies are resolved once at construction; nothing dispatches on entity
// type strings at call sites.
type Registry struct {
	ordered []EntitySync
	byType  map[models.EntityType]EntitySync
}

// NewRegistry wires one strategy per synchronized entity. The order is the
// pull order of a full sync: referenced entities before the entities that
// point at them, so a freshly pulled schedule never dangles without its
// medication. Medication logs and mood entries are merged with the
// server-wins policy; everything else resolves by last write.
func NewRegistry(storages *store.Storages, gateways *adapter.Gateways, log *logger.Logger) *Registry {
	ordered := []EntitySync{
		NewEntitySync(models.EntityProfile, storages.Profiles, gateways.Profiles, false, log),
		NewEntitySync(models.EntityMedication, storages.Medications, gateways.Medications, false, log),
		NewEntitySync(models.EntityMedicationSchedule, storages.MedicationSchedules, gateways.MedicationSchedules, false, log),
		NewEntitySync(models.EntityAppointment, storages.Appointments, gateways.Appointments, false, log),
		NewEntitySync[*models.MedicationLog](models.EntityMedicationLog, storages.MedicationLogs, gateways.MedicationLogs, true, log),
		NewEntitySync(models.EntityMoodEntry, storages.MoodEntries, gateways.MoodEntries, true, log),
		NewEntitySync(models.EntityTodoItem, storages.TodoItems, gateways.TodoItems, false, log),
	}

	byType := make(map[models.EntityType]EntitySync, len(ordered))
	for _, es := range ordered {
		byType[es.Type()] = es
	}

	return &Registry{ordered: ordered, byType: byType}
}

// Ordered returns the strategies in pull priority order.
func (r *Registry) Ordered() []EntitySync {
	return r.ordered
}

// Lookup resolves the strategy for one entity type.
func (r *Registry) Lookup(entity models.EntityType) (EntitySync, bool) {
	es, ok := r.byType[entity]
	return es, ok
}
