// Package diff implementa la sincronización por diferencias: comparar el
// conjunto de trabajo en memoria contra la instantánea leída de la base y
// derivar lotes mínimos de insert/update/delete, en vez de reemplazar todo.
package diff

// Keys resultado de la diferencia de conjuntos sobre claves de membresía
// binaria (filas sin valor más allá de su existencia).
type Keys[K comparable] struct {
	ToAdd    []K
	ToDelete []K
}

// SetDiff calcula ToDelete = existing − desired y ToAdd = desired − existing.
// Llamarlo dos veces sin cambios intermedios produce conjuntos vacíos la
// segunda vez (idempotencia).
func SetDiff[K comparable](existing, desired []K) Keys[K] {
	exSet := make(map[K]struct{}, len(existing))
	for _, k := range existing {
		exSet[k] = struct{}{}
	}
	deSet := make(map[K]struct{}, len(desired))
	for _, k := range desired {
		deSet[k] = struct{}{}
	}

	var out Keys[K]
	for _, k := range existing {
		if _, ok := deSet[k]; !ok {
			out.ToDelete = append(out.ToDelete, k)
		}
	}
	for _, k := range desired {
		if _, ok := exSet[k]; !ok {
			// evitar duplicados si desired trae la misma clave repetida
			if !contiene(out.ToAdd, k) {
				out.ToAdd = append(out.ToAdd, k)
			}
		}
	}
	return out
}

// Partition separa el conjunto de trabajo en inserciones (la clave no existía
// en la instantánea) y actualizaciones (existía y el valor cambió). Las claves
// sin cambio no aparecen en ninguno de los dos lotes. No produce borrados:
// los editores de valores solo upsertean, la presencia explícita es la regla.
func Partition[K comparable, V any](snapshot, working map[K]V, igual func(a, b V) bool) (toInsert, toUpdate []K) {
	for k, v := range working {
		prev, ok := snapshot[k]
		switch {
		case !ok:
			toInsert = append(toInsert, k)
		case !igual(prev, v):
			toUpdate = append(toUpdate, k)
		}
	}
	return toInsert, toUpdate
}

func contiene[K comparable](s []K, k K) bool {
	for _, v := range s {
		if v == k {
			return true
		}
	}
	return false
}
