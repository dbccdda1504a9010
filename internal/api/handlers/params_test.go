package handlers

import (
	"testing"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewValidator_Criticidade(t *testing.T) {
	v := newValidator()

	for _, valid := range []string{"baixa", "MEDIA", " alta ", "critical"} {
		assert.NotPanics(t, func() {
			assert.NoError(t, v.Var(valid, "criticidade"), valid)
		})
	}
	assert.Error(t, v.Var("extrema", "criticidade"))
}

func TestDropInvalid(t *testing.T) {
	v := newValidator()
	req := models.FocosRequest{
		Estado:      "PARA",
		FRPMin:      "0x1p4",
		FRPMax:      "1_0",
		Criticidade: "extrema",
		Limit:       "10",
	}

	dropInvalid(v, &req, "/focos")

	assert.Equal(t, "PARA", req.Estado)
	assert.Empty(t, req.FRPMin)
	assert.Empty(t, req.FRPMax)
	assert.Empty(t, req.Criticidade)
	assert.Equal(t, "10", req.Limit)
}

func TestOptionalFloat(t *testing.T) {
	assert.Nil(t, optionalFloat(""))
	assert.Nil(t, optionalFloat("0x1p4"))
	assert.Nil(t, optionalFloat("1_0"))
	if got := optionalFloat("12.5"); assert.NotNil(t, got) {
		assert.Equal(t, 12.5, *got)
	}
}
