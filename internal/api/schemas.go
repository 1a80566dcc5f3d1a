// internal/api/schemas.go
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"admissions-backend/internal/common/errors"
)

// Request schemas for the mutating endpoints. Validation failures are
// rejected before any state change.
var (
	registerSchema = gojsonschema.NewGoLoader(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"fullName": map[string]interface{}{"type": "string", "minLength": 1},
			"email":    map[string]interface{}{"type": "string", "minLength": 3},
			"password": map[string]interface{}{"type": "string", "minLength": 6},
			"mobile":   map[string]interface{}{"type": "string", "minLength": 1},
		},
		"required": []string{"fullName", "email", "password", "mobile"},
	})

	loginSchema = gojsonschema.NewGoLoader(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"email":    map[string]interface{}{"type": "string", "minLength": 1},
			"password": map[string]interface{}{"type": "string", "minLength": 1},
		},
		"required": []string{"email", "password"},
	})

	saveApplicationSchema = gojsonschema.NewGoLoader(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"userId": map[string]interface{}{"type": "string", "minLength": 1},
			"data":   map[string]interface{}{"type": "object"},
			"status": map[string]interface{}{
				"type": "string",
				"enum": []string{"draft", "in_progress", "in-progress", "submitted"},
			},
		},
		"required": []string{"userId"},
	})

	leadSchema = gojsonschema.NewGoLoader(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"firstName": map[string]interface{}{"type": "string", "minLength": 1},
			"lastName":  map[string]interface{}{"type": "string", "minLength": 1},
			"email":     map[string]interface{}{"type": "string", "minLength": 3},
			"phone":     map[string]interface{}{"type": "string"},
			"message":   map[string]interface{}{"type": "string"},
			"interestAreas": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"source": map[string]interface{}{"type": "string"},
		},
		"required": []string{"firstName", "lastName", "email"},
	})
)

// bindValidated reads the request body, validates it against schema and
// decodes it into out. The body is consumed exactly once.
func bindValidated(c *gin.Context, schema gojsonschema.JSONLoader, out interface{}) error {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return errors.NewValidationFailedError("unable to read request body")
	}
	if len(raw) == 0 {
		return errors.NewValidationFailedError("request body is required")
	}

	var document map[string]interface{}
	if err := json.Unmarshal(raw, &document); err != nil {
		return errors.NewValidationFailedError("request body is not valid JSON")
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(document))
	if err != nil {
		return errors.NewValidationFailedError(fmt.Sprintf("schema validation error: %v", err))
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return errors.NewValidationFailedError(strings.Join(details, "; "))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewValidationFailedError("request body does not match the expected shape")
	}
	return nil
}
