package conflict

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/vector"
)

// CriticalConflictError возвращается AutoMerge, когда запись содержит
// критические расхождения. Вызывающий обязан направить запись на ручное
// разрешение.
type CriticalConflictError struct {
	Count int // количество критических полей
}

func (e *CriticalConflictError) Error() string {
	return fmt.Sprintf("%d critical conflict(s) detected: manual resolution required", e.Count)
}

// IncompleteResolutionError возвращается ApplyManualResolution, если выбор
// пользователя не покрывает все критические поля.
type IncompleteResolutionError struct {
	Missing []string // пути критических полей без выбора
}

func (e *IncompleteResolutionError) Error() string {
	return fmt.Sprintf("manual resolution incomplete: no choice for fields [%s]",
		strings.Join(e.Missing, ", "))
}

// Merger выполняет слияние двух реплик одной записи: автоматическое
// (AutoMerge) либо по выбору пользователя (ApplyManualResolution).
// Оба пути используют одну и ту же формулу bump'а версии и вектора —
// они отличаются лишь тем, как выбираются значения полей.
type Merger struct {
	now      func() time.Time
	deviceID string
}

// NewMerger создает Merger для указанного устройства.
func NewMerger(deviceID string) *Merger {
	return &Merger{
		deviceID: deviceID,
		now:      time.Now,
	}
}

// NewMergerWithClock создает Merger с заданным источником времени.
// Используется в тестах.
func NewMergerWithClock(deviceID string, now func() time.Time) *Merger {
	return &Merger{
		deviceID: deviceID,
		now:      now,
	}
}

// AutoMerge пытается автоматически слить локальную и удаленную версии.
//
// Без конфликта возвращается сторона с более поздним updated_at без
// каких-либо изменений: это fast-forward, а не merge, поэтому ни версия,
// ни вектор не растут. При наличии критических полей возвращается
// *CriticalConflictError. Иначе строится новая запись: auto-merged поля
// перезаписываются победившими значениями, вектор и версия получают
// merge-bump.
//
// Побочных эффектов нет; персистит результат вызывающий.
func (m *Merger) AutoMerge(local, remote *models.Record) (*models.Record, error) {
	report := Detect(local, remote)

	if !report.HasConflict {
		// Fast-forward: берем более свежую сторону как есть
		if remote.UpdatedAt.After(local.UpdatedAt) {
			return remote.Clone(), nil
		}
		return local.Clone(), nil
	}

	if n := len(report.CriticalFields); n > 0 {
		return nil, &CriticalConflictError{Count: n}
	}

	merged := local.Clone()
	for _, field := range report.AutoMergedFields {
		merged.Fields[field.Path] = models.CloneValue(field.ResolvedValue)
	}

	m.bump(merged, local, remote)

	return merged, nil
}

// ApplyManualResolution строит итоговую запись из пользовательского выбора.
//
// choices сопоставляет каждому критическому полю сторону (local/remote),
// чье значение нужно взять; autoMerged — поля, уже разрешенные детектором
// (пользовательского ввода не требуют). Если выбор не покрывает все
// критические поля из отчета, возвращается *IncompleteResolutionError
// и ни одна из входных записей не изменяется.
func (m *Merger) ApplyManualResolution(
	local, remote *models.Record,
	choices map[string]models.Side,
	autoMerged []models.AutoMergedField,
) (*models.Record, error) {
	report := Detect(local, remote)

	var missing []string
	for _, field := range report.CriticalFields {
		if _, ok := choices[field.Path]; !ok {
			missing = append(missing, field.Path)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &IncompleteResolutionError{Missing: missing}
	}

	merged := local.Clone()
	for path, side := range choices {
		source := local
		if side == models.SideRemote {
			source = remote
		}
		merged.Fields[path] = models.CloneValue(source.Field(path))
	}
	for _, field := range autoMerged {
		merged.Fields[field.Path] = models.CloneValue(field.ResolvedValue)
	}

	m.bump(merged, local, remote)

	return merged, nil
}

// bump применяет общую для обоих путей слияния формулу версионирования:
//
//	vector  = increment(merge(local.vector, remote.vector), deviceID)
//	version = max(local.version, remote.version) + 1
//	updated = now
func (m *Merger) bump(merged, local, remote *models.Record) {
	merged.VersionVector = vector.Merge(local.VersionVector, remote.VersionVector).Increment(m.deviceID)

	merged.Version = local.Version
	if remote.Version > merged.Version {
		merged.Version = remote.Version
	}
	merged.Version++

	merged.UpdatedAt = m.now()
}
