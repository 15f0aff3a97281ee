package composer

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/pkg/helper"
)

const dateOutputLayout = "02/01/2006"

var dateInputLayouts = []string{"2006-01-02", "02/01/2006"}

// Bind merges submitted form values into the template-rendering context.
//
// Every field of every composed section lands in the context: coerced per
// field type when present, defaulted to "" when optional and absent, so the
// renderer never sees a missing key. Conditional requirements are evaluated
// after the primary pass: when a trigger value classifies as the trigger
// document kind, every field of the target section becomes mandatory even if
// the section itself was optional or not rendered at all.
func Bind(result models.ComposeResult, values map[string]string) (map[string]any, error) {
	context := make(map[string]any)

	for _, section := range result.Sections {
		for _, field := range section.Fields {
			value, err := bindField(section.Slug, field, values, field.Required)
			if err != nil {
				return nil, err
			}

			context[field.Name] = value
		}
	}

	for _, req := range result.Requirements {
		triggered := helper.ClassifyDocument(values[req.TriggerField]) == req.TriggerValue

		for _, field := range req.TargetFields {
			if _, bound := context[field.Name]; bound && !triggered {
				continue
			}

			required := field.Required || triggered

			value, err := bindField(req.TargetSlug, field, values, required)
			if err != nil {
				return nil, err
			}

			context[field.Name] = value
		}
	}

	return context, nil
}

func bindField(sectionSlug string, field models.FieldDescriptor, values map[string]string, required bool) (any, error) {
	raw, ok := values[field.Name]
	if !ok || strings.TrimSpace(raw) == "" {
		if required {
			return nil, models.NewBindingError(sectionSlug, field.Name, "value is required")
		}

		return "", nil
	}

	value, err := coerce(field, strings.TrimSpace(raw))
	if err != nil {
		if required {
			var bindingErr *models.BindingError
			if errors.As(err, &bindingErr) && bindingErr.Section == "" {
				bindingErr.Section = sectionSlug
			}
			return nil, err
		}

		// Optional values that fail coercion degrade to the empty default,
		// document generation is never blocked by an optional field.
		return "", nil
	}

	return value, nil
}

func coerce(field models.FieldDescriptor, raw string) (any, error) {
	switch field.Type {
	case config.FieldTypeText, config.FieldTypeTextarea:
		return raw, nil

	case config.FieldTypeSelect:
		if len(field.Options) > 0 && !containsOption(field.Options, raw) {
			return nil, models.NewBindingError("", field.Name, "value %q is not one of the allowed options", raw)
		}
		return raw, nil

	case config.FieldTypeCheckbox:
		return coerceBool(field.Name, raw)

	case config.FieldTypeDate:
		for _, layout := range dateInputLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format(dateOutputLayout), nil
			}
		}
		return nil, models.NewBindingError("", field.Name, "invalid date %q", raw)

	case config.FieldTypeNumber:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f, nil
		}
		if f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err == nil {
			return f, nil
		}
		return nil, models.NewBindingError("", field.Name, "invalid number %q", raw)

	case config.FieldTypeMoney:
		return coerceMoney(field.Name, raw)

	case config.FieldTypeCpfCnpj:
		if !helper.IsValidDocument(raw) {
			return nil, models.NewBindingError("", field.Name, "value %q is neither a CPF nor a CNPJ", raw)
		}
		return raw, nil

	default:
		return raw, nil
	}
}

func coerceBool(name, raw string) (any, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "on", "yes", "sim":
		return true, nil
	case "false", "0", "off", "no", "nao", "não":
		return false, nil
	default:
		return nil, models.NewBindingError("", name, "invalid checkbox value %q", raw)
	}
}

// coerceMoney parses Brazilian currency notation: optional R$ prefix,
// dot thousands separators, comma decimal separator.
func coerceMoney(name, raw string) (any, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(raw, "R$"))
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, models.NewBindingError("", name, "invalid currency value %q", raw)
	}

	return f, nil
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}

	return false
}
