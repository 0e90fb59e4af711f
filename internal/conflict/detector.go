package conflict

import (
	"sort"

	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/vector"
)

// Detect сравнивает локальную и удаленную версии одной записи и строит
// отчет о конфликте. Функция детерминирована, не выполняет I/O и не
// изменяет свои аргументы.
//
// Алгоритм:
//  1. Если version vectors не разошлись (один доминирует или они равны) —
//     конфликта нет; вызывающий делает fast-forward.
//  2. Иначе перебирается объединение имен полей обеих записей
//     (системные поля пропускаются) в детерминированном порядке.
//  3. Для каждого структурно различающегося поля:
//     критическое -> ConflictField (ручное разрешение),
//     auto-mergeable -> немедленный LWW по updated_at записи,
//     неклассифицированное -> игнорируется.
func Detect(local, remote *models.Record) *models.ConflictReport {
	report := &models.ConflictReport{
		LocalVector:  local.VersionVector.Clone(),
		RemoteVector: remote.VersionVector.Clone(),
	}

	if !vector.Concurrent(local.VersionVector, remote.VersionVector) {
		return report
	}

	for _, name := range unionFieldNames(local, remote) {
		if IsSystemField(name) {
			continue
		}

		localValue := local.Field(name)
		remoteValue := remote.Field(name)
		if valuesEqual(localValue, remoteValue) {
			continue
		}

		switch {
		case IsCritical(name):
			report.CriticalFields = append(report.CriticalFields, models.ConflictField{
				Path:            name,
				LocalValue:      models.CloneValue(localValue),
				RemoteValue:     models.CloneValue(remoteValue),
				LocalUpdatedAt:  local.UpdatedAt,
				RemoteUpdatedAt: remote.UpdatedAt,
				Severity:        models.SeverityCritical,
			})
		case IsAutoMergeable(name):
			report.AutoMergedFields = append(report.AutoMergedFields, resolveLastWriterWins(name, local, remote))
		default:
			// Неизвестное поле: не блокируем синхронизацию
		}
	}

	report.HasConflict = len(report.CriticalFields) > 0 || len(report.AutoMergedFields) > 0

	return report
}

// resolveLastWriterWins выбирает значение стороны с более поздним
// updated_at. При точном равенстве меток побеждает локальная сторона —
// произвольный, но детерминированный выбор.
func resolveLastWriterWins(name string, local, remote *models.Record) models.AutoMergedField {
	side := models.SideLocal
	value := local.Field(name)

	if remote.UpdatedAt.After(local.UpdatedAt) {
		side = models.SideRemote
		value = remote.Field(name)
	}

	return models.AutoMergedField{
		Path:          name,
		ResolvedValue: models.CloneValue(value),
		Strategy:      models.StrategyLastWriterWins,
		ChosenSide:    side,
	}
}

// unionFieldNames возвращает отсортированное объединение имен доменных
// полей обеих записей. Сортировка дает стабильный порядок полей в отчете.
func unionFieldNames(local, remote *models.Record) []string {
	seen := make(map[string]bool, len(local.Fields)+len(remote.Fields))
	for name := range local.Fields {
		seen[name] = true
	}
	for name := range remote.Fields {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
