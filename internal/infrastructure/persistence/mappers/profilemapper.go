package mappers

import (
	"caseline/internal/domain/records"
	"caseline/internal/infrastructure/persistence/models"
)

type IPProfileMapper struct{}

func NewIPProfileMapper() IPProfileMapper {
	return IPProfileMapper{}
}

func (IPProfileMapper) ToModel(rec records.Record) *models.IPProfileModel {
	return &models.IPProfileModel{
		OpenID:                strPtr(rec, "openid"),
		Name:                  strPtr(rec, "name"),
		Contact:               strPtr(rec, "contact"),
		Location:              strPtr(rec, "location"),
		NotificationPrefs:     strPtr(rec, "notification_prefs"),
		NotificationLanguages: jsonPtr(rec, "notification_languages"),
		TypesOfWork:           jsonPtr(rec, "types_of_work"),
		PGPKey:                strPtr(rec, "pgp_key"),
		SecureChannels:        jsonPtr(rec, "secure_channels"),
		Languages:             jsonPtr(rec, "languages"),
		InternalLevel:         intPtr(rec, "internal_level"),
		EmailNotification:     boolPtr(rec, "email_notification"),
	}
}

func (IPProfileMapper) ToRecord(m *models.IPProfileModel) records.Record {
	rec := records.Record{"id": m.ID}
	putStr(rec, "openid", m.OpenID)
	putStr(rec, "name", m.Name)
	putStr(rec, "contact", m.Contact)
	putStr(rec, "location", m.Location)
	putStr(rec, "notification_prefs", m.NotificationPrefs)
	putJSON(rec, "notification_languages", m.NotificationLanguages)
	putJSON(rec, "types_of_work", m.TypesOfWork)
	putStr(rec, "pgp_key", m.PGPKey)
	putJSON(rec, "secure_channels", m.SecureChannels)
	putJSON(rec, "languages", m.Languages)
	putInt(rec, "internal_level", m.InternalLevel)
	putBool(rec, "email_notification", m.EmailNotification)
	return rec
}

// ToUpdateMap builds the column map for a partial update. The id and the
// owning identity are never updatable.
func (mp IPProfileMapper) ToUpdateMap(rec records.Record) map[string]any {
	m := mp.ToModel(rec)
	out := map[string]any{}
	putColumn(out, "name", m.Name)
	putColumn(out, "contact", m.Contact)
	putColumn(out, "location", m.Location)
	putColumn(out, "notification_prefs", m.NotificationPrefs)
	putColumn(out, "notification_languages", m.NotificationLanguages)
	putColumn(out, "types_of_work", m.TypesOfWork)
	putColumn(out, "pgp_key", m.PGPKey)
	putColumn(out, "secure_channels", m.SecureChannels)
	putColumn(out, "languages", m.Languages)
	if m.InternalLevel != nil {
		out["internal_level"] = *m.InternalLevel
	}
	if m.EmailNotification != nil {
		out["email_notification"] = *m.EmailNotification
	}
	return out
}

type SPProfileMapper struct{}

func NewSPProfileMapper() SPProfileMapper {
	return SPProfileMapper{}
}

func (SPProfileMapper) ToModel(rec records.Record) *models.SPProfileModel {
	return &models.SPProfileModel{
		OpenID:              strPtr(rec, "openid"),
		Name:                strPtr(rec, "name"),
		Services:            jsonPtr(rec, "services"),
		Description:         strPtr(rec, "description"),
		Contact:             strPtr(rec, "contact"),
		SecureChannels:      jsonPtr(rec, "secure_channels"),
		Fees:                strPtr(rec, "fees"),
		Languages:           jsonPtr(rec, "languages"),
		PGPKey:              strPtr(rec, "pgp_key"),
		StartTime:           strPtr(rec, "start_time"),
		PerWeekAvailability: strPtr(rec, "per_week_availability"),
		EmailNotification:   boolPtr(rec, "email_notification"),
		Rating:              intPtr(rec, "rating"),
	}
}

func (SPProfileMapper) ToRecord(m *models.SPProfileModel) records.Record {
	rec := records.Record{"id": m.ID}
	putStr(rec, "openid", m.OpenID)
	putStr(rec, "name", m.Name)
	putJSON(rec, "services", m.Services)
	putStr(rec, "description", m.Description)
	putStr(rec, "contact", m.Contact)
	putJSON(rec, "secure_channels", m.SecureChannels)
	putStr(rec, "fees", m.Fees)
	putJSON(rec, "languages", m.Languages)
	putStr(rec, "pgp_key", m.PGPKey)
	putStr(rec, "start_time", m.StartTime)
	putStr(rec, "per_week_availability", m.PerWeekAvailability)
	putBool(rec, "email_notification", m.EmailNotification)
	putInt(rec, "rating", m.Rating)
	return rec
}

func (mp SPProfileMapper) ToUpdateMap(rec records.Record) map[string]any {
	m := mp.ToModel(rec)
	out := map[string]any{}
	putColumn(out, "name", m.Name)
	putColumn(out, "services", m.Services)
	putColumn(out, "description", m.Description)
	putColumn(out, "contact", m.Contact)
	putColumn(out, "secure_channels", m.SecureChannels)
	putColumn(out, "fees", m.Fees)
	putColumn(out, "languages", m.Languages)
	putColumn(out, "pgp_key", m.PGPKey)
	putColumn(out, "start_time", m.StartTime)
	putColumn(out, "per_week_availability", m.PerWeekAvailability)
	if m.EmailNotification != nil {
		out["email_notification"] = *m.EmailNotification
	}
	if m.Rating != nil {
		out["rating"] = *m.Rating
	}
	return out
}

func putColumn(out map[string]any, column string, v *string) {
	if v != nil {
		out[column] = *v
	}
}
