package mappers

import (
	"caseline/internal/domain/records"
	"caseline/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (TicketMapper) ToModel(rec records.Record, creatorName string) *models.TicketModel {
	m := &models.TicketModel{
		TicketIPContact: strPtr(rec, "ticket_ip_contact"),
		TicketIPName:    strPtr(rec, "ticket_ip_name"),
		DateOfIncident:  strPtr(rec, "date_of_incident"),
		IncidentType:    strPtr(rec, "incident_type"),
		Description:     strPtr(rec, "description"),
		StepsTaken:      strPtr(rec, "steps_taken"),
		Status:          strPtr(rec, "status"),
		IPAssignedID:    uintPtr(rec, "ip_assigned_id"),
	}
	if creatorName != "" {
		m.CreatedBy = &creatorName
	}
	return m
}

func (TicketMapper) ToRecord(m *models.TicketModel) records.Record {
	rec := records.Record{"id": m.ID}
	putStr(rec, "created_by", m.CreatedBy)
	putStr(rec, "ticket_ip_contact", m.TicketIPContact)
	putStr(rec, "ticket_ip_name", m.TicketIPName)
	putStr(rec, "date_of_incident", m.DateOfIncident)
	putStr(rec, "incident_type", m.IncidentType)
	putStr(rec, "description", m.Description)
	putStr(rec, "steps_taken", m.StepsTaken)
	putStr(rec, "status", m.Status)
	putUint(rec, "ip_assigned_id", m.IPAssignedID)
	return rec
}
