package config

const (
	// ParentKindType marks a section link owned by a petition type.
	ParentKindType = "type"
	// ParentKindModel marks a section link owned by a petition model.
	ParentKindModel = "model"
)

const (
	FieldTypeText     = "text"
	FieldTypeTextarea = "textarea"
	FieldTypeDate     = "date"
	FieldTypeSelect   = "select"
	FieldTypeCheckbox = "checkbox"
	FieldTypeNumber   = "number"
	FieldTypeMoney    = "money"
	FieldTypeCpfCnpj  = "cpf_cnpj"
)

// FIELD_TYPES is the set of accepted field types for a section schema.
var FIELD_TYPES = map[string]string{
	FieldTypeText:     "VARCHAR",
	FieldTypeTextarea: "TEXT",
	FieldTypeDate:     "DATE",
	FieldTypeSelect:   "VARCHAR",
	FieldTypeCheckbox: "BOOL",
	FieldTypeNumber:   "FLOAT",
	FieldTypeMoney:    "FLOAT",
	FieldTypeCpfCnpj:  "VARCHAR",
}

const (
	// TriggerCnpj activates a linked section when a cpf_cnpj field holds a CNPJ.
	TriggerCnpj = "cnpj"
	// TriggerCpf activates a linked section when a cpf_cnpj field holds a CPF.
	TriggerCpf = "cpf"
)
