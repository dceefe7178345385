package invoiceiq

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// metadataSchema validates the JSON form of TransformationMetadata. Compiled
// once at package load; Validate reuses it across calls.
var metadataSchema = mustCompileMetadataSchema()

// buildMetadataSchema returns the document schema (JSON-Schema draft 2020-12
// subset) as a generic map.
func buildMetadataSchema() map[string]interface{} {
	amountProp := map[string]interface{}{"type": "number"}

	addressProps := map[string]interface{}{
		"line1":       map[string]interface{}{"type": "string"},
		"line2":       map[string]interface{}{"type": "string"},
		"postCode":    map[string]interface{}{"type": "string"},
		"city":        map[string]interface{}{"type": "string"},
		"countryCode": map[string]interface{}{"type": "string"},
	}

	partyProp := map[string]interface{}{
		"type":     "object",
		"required": []string{"name"},
		"properties": map[string]interface{}{
			"name":           map[string]interface{}{"type": "string", "minLength": 1},
			"registrationId": map[string]interface{}{"type": "string"},
			"vatId":          map[string]interface{}{"type": "string"},
			"countryCode":    map[string]interface{}{"type": "string"},
			"address": map[string]interface{}{
				"type":       "object",
				"properties": addressProps,
			},
		},
	}

	lineProp := map[string]interface{}{
		"type":     "object",
		"required": []string{"name", "quantity", "totalAmount"},
		"properties": map[string]interface{}{
			"id":                 map[string]interface{}{"type": "string"},
			"name":               map[string]interface{}{"type": "string", "minLength": 1},
			"description":        map[string]interface{}{"type": "string"},
			"quantity":           amountProp,
			"unitCode":           map[string]interface{}{"type": "string"},
			"netPrice":           amountProp,
			"unitPrice":          amountProp,
			"taxRate":            amountProp,
			"taxCategoryCode":    map[string]interface{}{"type": "string"},
			"taxExemptionReason": map[string]interface{}{"type": "string"},
			"totalAmount":        amountProp,
		},
	}

	taxProp := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"taxRate":            amountProp,
			"basisAmount":        amountProp,
			"taxableAmount":      amountProp,
			"taxAmount":          amountProp,
			"taxCategoryCode":    map[string]interface{}{"type": "string"},
			"taxExemptionReason": map[string]interface{}{"type": "string"},
		},
	}

	renderingProp := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"template":     map[string]interface{}{"type": "string"},
			"font":         map[string]interface{}{"type": "string"},
			"primaryColor": map[string]interface{}{"type": "string"},
			"accentColor":  map[string]interface{}{"type": "string"},
			"logo": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url":   map[string]interface{}{"type": "string"},
					"width": map[string]interface{}{"type": "integer"},
					"align": map[string]interface{}{"type": "string", "pattern": `^(left|center|right)$`},
				},
			},
			"footer": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"extraText":       map[string]interface{}{"type": "string"},
					"showPageNumbers": map[string]interface{}{"type": "boolean"},
				},
			},
			"notes":  map[string]interface{}{"type": "string"},
			"locale": map[string]interface{}{"type": "string"},
		},
	}

	return map[string]interface{}{
		"type": "object",
		"required": []string{
			"invoiceNumber", "issueDate", "seller", "buyer",
			"totalTaxExclusiveAmount", "taxTotalAmount", "totalTaxInclusiveAmount",
		},
		"properties": map[string]interface{}{
			"invoiceNumber":           map[string]interface{}{"type": "string", "minLength": 1},
			"issueDate":               map[string]interface{}{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"currency":                map[string]interface{}{"type": "string"},
			"typeCode":                map[string]interface{}{"type": "string"},
			"seller":                  partyProp,
			"buyer":                   partyProp,
			"lines":                   map[string]interface{}{"type": "array", "items": lineProp},
			"taxes":                   map[string]interface{}{"type": "array", "items": taxProp},
			"taxSummaries":            map[string]interface{}{"type": "array", "items": taxProp},
			"totalTaxExclusiveAmount": amountProp,
			"taxTotalAmount":          amountProp,
			"totalTaxInclusiveAmount": amountProp,
			"purchaseOrderReference":  map[string]interface{}{"type": "string"},
			"rendering":               renderingProp,
		},
	}
}

func mustCompileMetadataSchema() *jsonschema.Schema {
	raw, err := json.Marshal(buildMetadataSchema())
	if err != nil {
		panic(fmt.Sprintf("marshaling metadata schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource("metadata.schema.json", bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("adding metadata schema resource: %v", err))
	}

	schema, err := compiler.Compile("metadata.schema.json")
	if err != nil {
		panic(fmt.Sprintf("compiling metadata schema: %v", err))
	}

	return schema
}

// validateMetadataDocument checks a serialized metadata document against the
// compiled schema.
func validateMetadataDocument(data []byte) error {
	var doc interface{}

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return fmt.Errorf("unmarshaling metadata for validation: %w", err)
	}

	err = metadataSchema.Validate(doc)
	if err != nil {
		return fmt.Errorf("metadata does not match document schema: %w", err)
	}

	return nil
}
