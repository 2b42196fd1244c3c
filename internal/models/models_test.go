package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 9, 17, 45, 0, 0, time.UTC))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(out))

	var zero Date
	out, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T10:00:00Z"`), &parsed))
	assert.Equal(t, "2024-03-09", parsed.String())

	require.Error(t, json.Unmarshal([]byte(`"09/03/2024"`), &parsed))
}

func TestDateSQL(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-02", d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", v)

	require.NoError(t, d.Scan(nil))
	v, err = d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStamp(t *testing.T) {
	day, clock := Stamp(time.Date(2024, 5, 1, 8, 3, 7, 0, time.UTC))
	assert.Equal(t, "2024-05-01", day.String())
	assert.Equal(t, "08:03:07", clock)
}

func TestOptionalJSON(t *testing.T) {
	out, err := json.Marshal(None[UserRef]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	ref := UserRef{Nombre: "Ana", Apellido: "Ruiz"}
	out, err = json.Marshal(Some(ref))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"nombre":"Ana"`)

	var back Optional[UserRef]
	require.NoError(t, json.Unmarshal(out, &back))
	got, ok := back.Get()
	assert.True(t, ok)
	assert.Equal(t, "Ruiz", got.Apellido)
}

func TestRepairStatusIsValid(t *testing.T) {
	assert.True(t, RepairSinReparacion.IsValid())
	assert.True(t, RepairStatus("ENTREGADO").IsValid())
	assert.False(t, RepairStatus("REPARADO").IsValid())
	assert.False(t, RepairStatus("pendiente").IsValid())
}
