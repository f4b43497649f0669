package dto

// UpdateFieldRequest изменение одного поля формы.
// Value указатель, чтобы пустая строка была допустимым значением.
type UpdateFieldRequest struct {
	Value *string `json:"value" binding:"required"`
}

// UpdateFieldsRequest пакетное изменение полей формы.
type UpdateFieldsRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}
