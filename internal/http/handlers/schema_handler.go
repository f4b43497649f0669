package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/grant-assistant/internal/form"
	"github.com/ignatzorin/grant-assistant/internal/http/response"
)

// SchemaHandler отдаёт описание полей формы.
type SchemaHandler struct {
	schema *form.Schema
}

func NewSchemaHandler(schema *form.Schema) *SchemaHandler {
	return &SchemaHandler{schema: schema}
}

// GetSchema обрабатывает GET /api/form/schema.
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	response.Success(c, h.schema)
}
