package vector

// Vector представляет version vector: отображение идентификатора устройства
// в монотонно возрастающий счетчик правок. Используется для определения
// причинно-следственной связи между двумя репликами одной записи:
// упорядочены ли их истории (одна выведена из другой) или разошлись
// (конкурентные правки на разных устройствах).
//
// Отсутствующий ключ эквивалентен счетчику 0.
type Vector map[string]int64

// New создает пустой вектор.
func New() Vector {
	return make(Vector)
}

// NewForDevice создает вектор с единственной записью deviceID=1.
// Используется при создании новой локальной записи.
func NewForDevice(deviceID string) Vector {
	return Vector{deviceID: 1}
}

// Counter возвращает счетчик для указанного устройства (0, если его нет).
func (v Vector) Counter(deviceID string) int64 {
	return v[deviceID]
}

// Clone возвращает независимую копию вектора.
// Clone от nil-вектора возвращает пустой вектор.
func (v Vector) Clone() Vector {
	result := make(Vector, len(v))
	for id, counter := range v {
		result[id] = counter
	}
	return result
}

// Increment возвращает новый вектор, в котором счетчик deviceID увеличен
// на 1 (начиная с 0, если устройство ранее не встречалось).
// Исходный вектор не изменяется.
func (v Vector) Increment(deviceID string) Vector {
	result := v.Clone()
	result[deviceID]++
	return result
}

// Merge возвращает новый вектор: для каждого устройства из обоих векторов
// берется максимум счетчиков. Операция коммутативна, идемпотентна
// и ассоциативна. Исходные векторы не изменяются.
func Merge(a, b Vector) Vector {
	result := a.Clone()
	for id, counter := range b {
		if counter > result[id] {
			result[id] = counter
		}
	}
	return result
}

// Equal возвращает true, если все счетчики совпадают.
// Отсутствующие ключи считаются нулями, поэтому пустой вектор равен
// вектору, состоящему только из нулевых счетчиков.
func Equal(a, b Vector) bool {
	for id, counter := range a {
		if counter != b[id] {
			return false
		}
	}
	for id, counter := range b {
		if counter != a[id] {
			return false
		}
	}
	return true
}

// Dominates возвращает true, если a строго новее b: каждый счетчик a
// не меньше соответствующего счетчика b и хотя бы один строго больше.
// Используется для обнаружения fast-forward отношения между репликами.
func Dominates(a, b Vector) bool {
	strictlyGreater := false

	for id, counter := range b {
		if a[id] < counter {
			return false
		}
	}
	for id, counter := range a {
		if counter > b[id] {
			strictlyGreater = true
		}
	}

	return strictlyGreater
}

// Concurrent возвращает true, если истории разошлись: ни один вектор
// не доминирует над другим и они не равны. Обе стороны сделали
// независимый прогресс с момента последней общей точки.
func Concurrent(a, b Vector) bool {
	return !Equal(a, b) && !Dominates(a, b) && !Dominates(b, a)
}
