package conflict

// Классификация полей записи — статичная конфигурация, а не вывод во время
// выполнения. Поля делятся на три непересекающихся множества:
//
//   - системные: идентичность, версия, временные метки; никогда не диффятся;
//   - критические: идентифицирующие клиента, финансовые и статусные поля;
//     любое расхождение требует ручного разрешения;
//   - auto-mergeable: все остальные значимые поля; разрешаются LWW.
//
// Поле, не попавшее ни в одно множество, не является ни критическим,
// ни auto-mergeable и молча игнорируется детектором: неизвестные поля
// не должны блокировать синхронизацию.
var (
	systemFields = map[string]bool{
		"id":             true,
		"version":        true,
		"version_vector": true,
		"sync_status":    true,
		"created_at":     true,
		"updated_at":     true,
	}

	criticalFields = map[string]bool{
		"customer_name":  true,
		"customer_email": true,
		"customer_phone": true,
		"status":         true,
		"total_amount":   true,
		"currency":       true,
	}

	autoMergeableFields = map[string]bool{
		"title":       true,
		"description": true,
		"notes":       true,
		"metadata":    true,
		"tags":        true,
		"valid_until": true,
	}
)

// IsSystemField возвращает true для системных полей записи.
func IsSystemField(name string) bool {
	return systemFields[name]
}

// IsCritical возвращает true для полей, расхождение которых требует
// ручного разрешения.
func IsCritical(name string) bool {
	return criticalFields[name]
}

// IsAutoMergeable возвращает true для полей, разрешаемых автоматически
// по правилу Last-Writer-Wins.
func IsAutoMergeable(name string) bool {
	return autoMergeableFields[name]
}
