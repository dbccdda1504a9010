package handlers

import (
	"errors"
	"log"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
)

// newValidator cria o validator com a regra "criticidade" registrada
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("criticidade", func(fl validator.FieldLevel) bool {
		_, ok := dataset.ParseSeverity(fl.Field().String())
		return ok
	})
	if err != nil {
		log.Fatalf("Erro ao registrar validação criticidade: %v", err)
	}
	return v
}

// dropInvalid valida a struct e zera os campos inválidos.
// Parâmetros inválidos são ignorados, nunca rejeitados.
func dropInvalid(v *validator.Validate, req any, route string) {
	err := v.Struct(req)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		log.Printf("Erro ao validar parâmetros de %s: %v", route, err)
		return
	}

	value := reflect.ValueOf(req).Elem()
	for _, fe := range verrs {
		field := value.FieldByName(fe.StructField())
		if !field.CanSet() {
			continue
		}
		log.Printf("Parâmetro ignorado em %s: %s=%q (%s)", route, fe.Field(), fe.Value(), fe.Tag())
		field.Set(reflect.Zero(field.Type()))
	}
}

// parseIntQuery faz parse de query parameter inteiro com valor default
func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// parseBoolQuery aceita true/false, 1/0, yes/no e on/off
func parseBoolQuery(c *gin.Context, param string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(param))) {
	case "true", "1", "yes", "on", "t":
		return true
	case "false", "0", "no", "off", "f":
		return false
	}
	return defaultValue
}

// optionalFloat converte texto em *float64; vazio ou inválido vira nil
func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, ok := models.ParseDecimal(s)
	if !ok {
		return nil
	}
	return &v
}

// optionalInt converte texto em *int; vazio ou inválido vira nil
func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
