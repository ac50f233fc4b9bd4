package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumInput_Unmarshal(t *testing.T) {
	var d struct {
		A NumInput `json:"a"`
		B NumInput `json:"b"`
		C NumInput `json:"c"`
		D NumInput `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12.5, "b": "7", "c": null, "d": ""}`), &d))

	assert.Equal(t, 12.5, d.A.Value())
	assert.Equal(t, 7.0, d.B.Value())
	assert.True(t, d.C.IsBlank())
	assert.True(t, d.D.IsBlank())
	assert.Equal(t, 0.0, d.D.Value())
}

func TestNumInput_MarshalKeepsBlank(t *testing.T) {
	out, err := json.Marshal(struct {
		Opening NumInput `json:"openingStock"`
		Sold    NumInput `json:"soldQuantity"`
	}{Opening: "", Sold: NumOf(42)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"openingStock": "", "soldQuantity": 42}`, string(out))
}

func TestParseNum(t *testing.T) {
	assert.Equal(t, 12.5, ParseNum("12.5L"))
	assert.Equal(t, -3.0, ParseNum(" -3 "))
	assert.Equal(t, 0.0, ParseNum("abc"))
	assert.Equal(t, 0.0, ParseNum("NaN"))
	assert.Equal(t, 0.0, ParseNum(""))
}

func TestNumber_AcceptsStrings(t *testing.T) {
	var e TankEntry
	require.NoError(t, json.Unmarshal([]byte(`{"openingStock": "150", "closingStock": 90, "soldQuantity": null}`), &e))
	assert.Equal(t, 150.0, e.OpeningStock.Float())
	assert.Equal(t, 90.0, e.ClosingStock.Float())
	assert.Equal(t, 0.0, e.SoldQuantity.Float())
}

func TestEmployeeRef(t *testing.T) {
	var list []Attendance
	require.NoError(t, json.Unmarshal([]byte(`[
		{"employeeId": "e1", "status": "Present"},
		{"employeeId": {"_id": "e2", "name": "Ravi", "role": "Attendant"}, "status": "Absent"}
	]`), &list))

	assert.Equal(t, "e1", list[0].Employee.ID)
	assert.Equal(t, "", list[0].Employee.Name())
	assert.Equal(t, "e2", list[1].Employee.ID)
	assert.Equal(t, "Ravi", list[1].Employee.Name())

	out, err := json.Marshal(list[1].Employee)
	require.NoError(t, err)
	assert.Equal(t, `"e2"`, string(out))
}
