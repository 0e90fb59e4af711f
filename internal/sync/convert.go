package sync

import (
	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/vector"
	"github.com/offlinekit/recordsync/pkg/api"
)

// toWire конвертирует локальную запись в wire-формат API.
func toWire(record *models.Record) api.Record {
	return api.Record{
		ID:            record.ID,
		Version:       record.Version,
		VersionVector: record.VersionVector.Clone(),
		Fields:        record.Fields,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

// apiUpdateRequest строит частичное обновление из текущего состояния записи.
func apiUpdateRequest(record *models.Record) api.UpdateRecordRequest {
	return api.UpdateRecordRequest{
		Fields:        record.Fields,
		Version:       record.Version,
		VersionVector: record.VersionVector.Clone(),
		UpdatedAt:     record.UpdatedAt,
	}
}

// fromWire конвертирует wire-запись в локальную модель.
// SyncStatus назначает вызывающий.
func fromWire(wire *api.Record) *models.Record {
	vv := vector.New()
	for deviceID, counter := range wire.VersionVector {
		vv[deviceID] = counter
	}

	fields := wire.Fields
	if fields == nil {
		fields = make(map[string]any)
	}

	return &models.Record{
		ID:            wire.ID,
		Version:       wire.Version,
		VersionVector: vv,
		Fields:        fields,
		CreatedAt:     wire.CreatedAt,
		UpdatedAt:     wire.UpdatedAt,
	}
}
