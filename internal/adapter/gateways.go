package adapter

import (
	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/models"
)

// Gateways aggregates one [Gateway] per synchronized entity resource. All
// gateways share one HTTP client and one [Session].
type Gateways struct {
	Session *Session

	Profiles            Gateway[*models.Profile]
	Medications         Gateway[*models.Medication]
	MedicationSchedules Gateway[*models.MedicationSchedule]
	Appointments        Gateway[*models.Appointment]
	MedicationLogs      Gateway[*models.MedicationLog]
	MoodEntries         Gateway[*models.MoodEntry]
	TodoItems           Gateway[*models.TodoItem]
}

// NewGateways wires the shared HTTP client, the session and all per-entity
// gateways from the adapter configuration. Returns an error if the backend
// address in cfg is invalid.
func NewGateways(cfg config.Adapter, session *Session, log *logger.Logger) (*Gateways, error) {
	client, err := NewHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Gateways{
		Session:             session,
		Profiles:            NewHTTPGateway[*models.Profile](client, session, models.EntityProfile, log),
		Medications:         NewHTTPGateway[*models.Medication](client, session, models.EntityMedication, log),
		MedicationSchedules: NewHTTPGateway[*models.MedicationSchedule](client, session, models.EntityMedicationSchedule, log),
		Appointments:        NewHTTPGateway[*models.Appointment](client, session, models.EntityAppointment, log),
		MedicationLogs:      NewHTTPGateway[*models.MedicationLog](client, session, models.EntityMedicationLog, log),
		MoodEntries:         NewHTTPGateway[*models.MoodEntry](client, session, models.EntityMoodEntry, log),
		TodoItems:           NewHTTPGateway[*models.TodoItem](client, session, models.EntityTodoItem, log),
	}, nil
}
