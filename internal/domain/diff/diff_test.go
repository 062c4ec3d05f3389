package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-api/internal/domain/diff"
)

// ──────────────────────────────────────────────────────────────────────────────
// SetDiff (membresía binaria: asignaciones usuario-rol, flags por empresa)
// ──────────────────────────────────────────────────────────────────────────────

func TestSetDiff_CalculaAltasYBajas(t *testing.T) {
	existing := []string{"a", "b", "c"}
	desired := []string{"b", "c", "d"}

	d := diff.SetDiff(existing, desired)

	assert.ElementsMatch(t, []string{"a"}, d.ToDelete)
	assert.ElementsMatch(t, []string{"d"}, d.ToAdd)
}

// Propiedad 1: la segunda ejecución sin cambios intermedios no produce
// ninguna alta ni baja (idempotencia del diff-sync).
func TestSetDiff_Idempotente(t *testing.T) {
	existing := []string{"a", "b"}
	desired := []string{"b", "c"}

	primera := diff.SetDiff(existing, desired)
	assert.NotEmpty(t, primera.ToAdd)
	assert.NotEmpty(t, primera.ToDelete)

	// tras aplicar el diff, lo existente es exactamente lo deseado
	segunda := diff.SetDiff(desired, desired)
	assert.Empty(t, segunda.ToAdd)
	assert.Empty(t, segunda.ToDelete)
}

func TestSetDiff_ConjuntosVacios(t *testing.T) {
	d := diff.SetDiff[string](nil, nil)
	assert.Empty(t, d.ToAdd)
	assert.Empty(t, d.ToDelete)

	soloAltas := diff.SetDiff(nil, []string{"x"})
	assert.Equal(t, []string{"x"}, soloAltas.ToAdd)

	soloBajas := diff.SetDiff([]string{"x"}, nil)
	assert.Equal(t, []string{"x"}, soloBajas.ToDelete)
}

func TestSetDiff_DeseadoConDuplicados(t *testing.T) {
	d := diff.SetDiff([]string{"a"}, []string{"b", "b", "a"})
	assert.Equal(t, []string{"b"}, d.ToAdd, "una clave repetida en lo deseado produce una sola alta")
	assert.Empty(t, d.ToDelete)
}

// ──────────────────────────────────────────────────────────────────────────────
// Partition (editores de valores: matriz de permisos)
// ──────────────────────────────────────────────────────────────────────────────

func TestPartition_SeparaInsertsDeUpdates(t *testing.T) {
	snapshot := map[string]int{"a": 1, "b": 2}
	working := map[string]int{"a": 1, "b": 9, "c": 3}

	toInsert, toUpdate := diff.Partition(snapshot, working, func(x, y int) bool { return x == y })

	assert.ElementsMatch(t, []string{"c"}, toInsert)
	assert.ElementsMatch(t, []string{"b"}, toUpdate, "a no cambió: no debe aparecer en ningún lote")
}

func TestPartition_SinCambios_LotesVacios(t *testing.T) {
	snapshot := map[string]int{"a": 1}
	toInsert, toUpdate := diff.Partition(snapshot, snapshot, func(x, y int) bool { return x == y })
	assert.Empty(t, toInsert)
	assert.Empty(t, toUpdate)
}

// Partition nunca produce borrados: una clave de la instantánea ausente del
// conjunto de trabajo simplemente se ignora (política de solo-upsert).
func TestPartition_ClaveFaltante_NoBorra(t *testing.T) {
	snapshot := map[string]int{"a": 1, "z": 26}
	working := map[string]int{"a": 1}
	toInsert, toUpdate := diff.Partition(snapshot, working, func(x, y int) bool { return x == y })
	assert.Empty(t, toInsert)
	assert.Empty(t, toUpdate)
}
