package validation

import (
	"fmt"
	"regexp"

	"github.com/xeipuuv/gojsonschema"
)

// SnapshotSchema is the JSON Schema every incoming application snapshot must satisfy
// before checklist generation runs. It checks structure only; cross-entity rules are
// the engine's job.
const SnapshotSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["application", "borrowers"],
  "properties": {
    "application": {
      "type": "object",
      "required": ["id", "goal"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "goal": {"type": "string", "enum": ["purchase", "refinance", "renewal"]},
        "process": {"type": "string", "enum": ["searching", "found_property", ""]},
        "propertyId": {"type": "string"}
      }
    },
    "borrowers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "firstName": {"type": "string"},
          "lastName": {"type": "string"},
          "email": {"type": "string"},
          "isMainBorrower": {"type": "boolean"}
        }
      }
    },
    "incomes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "borrowerId"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "borrowerId": {"type": "string", "minLength": 1},
          "source": {"type": "string"},
          "payType": {"type": "string"}
        }
      }
    },
    "assets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string"},
          "ownerIds": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "liabilities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string"},
          "ownerIds": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "properties": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string"},
          "units": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateSnapshot validates raw snapshot JSON against SnapshotSchema.
func ValidateSnapshot(data []byte) (*ValidationResult, error) {
	return ValidateDocument(SnapshotSchema, data)
}

// ValidateDocument validates a JSON document against the given JSON Schema.
func ValidateDocument(schemaJSON string, data []byte) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	vr := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		vr.Errors = append(vr.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}

	return vr, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
