package models

import "time"

type TicketModel struct {
	ID              uint    `gorm:"primaryKey"`
	CreatedBy       *string `gorm:"size:255"`
	TicketIPContact *string `gorm:"column:ticket_ip_contact;size:255"`
	TicketIPName    *string `gorm:"column:ticket_ip_name;size:255"`
	DateOfIncident  *string `gorm:"size:255"`
	IncidentType    *string `gorm:"size:255;not null"`
	Description     *string `gorm:"type:text;not null"`
	StepsTaken      *string `gorm:"type:text"`
	Status          *string `gorm:"size:50;index"`
	IPAssignedID    *uint   `gorm:"column:ip_assigned_id;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketReadModel records that an identity has seen a ticket.
type TicketReadModel struct {
	ID       uint   `gorm:"primaryKey"`
	TicketID uint   `gorm:"not null;index"`
	OpenID   string `gorm:"column:openid;size:191;not null"`
	ReadAt   time.Time
}

func (TicketReadModel) TableName() string {
	return "ticket_reads"
}
