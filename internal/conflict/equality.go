package conflict

import (
	"reflect"
	"time"
)

// valuesEqual выполняет структурное сравнение значений доменных полей.
//
// В отличие от сравнения JSON-строк, результат не зависит от порядка
// ключей в объектах: {"a":1,"b":2} и {"b":2,"a":1} равны. Числа разных
// Go-типов (int после локального редактирования, float64 после JSON
// декодирования) сравниваются по значению.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if aNum, aOK := asFloat(a); aOK {
		bNum, bOK := asFloat(b)
		return bOK && aNum == bNum
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for key, aItem := range av {
			bItem, exists := bv[key]
			if !exists || !valuesEqual(aItem, bItem) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// asFloat приводит любое числовое значение к float64.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
