package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_MarshalJSON_Unquoted(t *testing.T) {
	d, err := NewDecimal("10.50")
	require.NoError(t, err)

	b, err := json.Marshal(struct {
		Amount Decimal `json:"amount"`
	}{Amount: d})
	require.NoError(t, err)

	assert.Equal(t, `{"amount":10.5}`, string(b))
}

func TestNewDecimal_Invalid(t *testing.T) {
	_, err := NewDecimal("not-a-number")
	assert.Error(t, err)
}
