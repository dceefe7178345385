package invoiceiq

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
)

// Address is a postal address attached to a party.
type Address struct {
	Line1       string `json:"line1,omitempty"       yaml:"line1,omitempty"`
	Line2       string `json:"line2,omitempty"       yaml:"line2,omitempty"`
	PostCode    string `json:"postCode,omitempty"    yaml:"postCode,omitempty"`
	City        string `json:"city,omitempty"        yaml:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
}

// Party identifies a seller or buyer on an invoice.
type Party struct {
	Name           string   `json:"name"                     yaml:"name"`
	RegistrationID string   `json:"registrationId,omitempty" yaml:"registrationId,omitempty"`
	VatID          string   `json:"vatId,omitempty"          yaml:"vatId,omitempty"`
	CountryCode    string   `json:"countryCode,omitempty"    yaml:"countryCode,omitempty"`
	Address        *Address `json:"address,omitempty"        yaml:"address,omitempty"`
}

// LogoOptions controls the logo block on generated documents. Align accepts
// "left", "center", or "right".
type LogoOptions struct {
	URL   string `json:"url,omitempty"   yaml:"url,omitempty"`
	Width *int   `json:"width,omitempty" yaml:"width,omitempty"`
	Align string `json:"align,omitempty" yaml:"align,omitempty"`
}

// FooterOptions controls the footer block on generated documents.
type FooterOptions struct {
	ExtraText       string `json:"extraText,omitempty"       yaml:"extraText,omitempty"`
	ShowPageNumbers *bool  `json:"showPageNumbers,omitempty" yaml:"showPageNumbers,omitempty"`
}

// RenderingOptions controls the visual layout of generated documents.
type RenderingOptions struct {
	Template     string         `json:"template,omitempty"     yaml:"template,omitempty"`
	Font         string         `json:"font,omitempty"         yaml:"font,omitempty"`
	PrimaryColor string         `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	AccentColor  string         `json:"accentColor,omitempty"  yaml:"accentColor,omitempty"`
	Logo         *LogoOptions   `json:"logo,omitempty"         yaml:"logo,omitempty"`
	Footer       *FooterOptions `json:"footer,omitempty"       yaml:"footer,omitempty"`
	Notes        string         `json:"notes,omitempty"        yaml:"notes,omitempty"`
	Locale       string         `json:"locale,omitempty"       yaml:"locale,omitempty"`
}

// InvoiceLine is a single billable line on an invoice. Name, Quantity, and
// TotalAmount are required. NetPrice and UnitPrice are interchangeable; some
// producers use one, some the other.
type InvoiceLine struct {
	ID                 string   `json:"id,omitempty"                 yaml:"id,omitempty"`
	Name               string   `json:"name"                         yaml:"name"`
	Description        string   `json:"description,omitempty"        yaml:"description,omitempty"`
	Quantity           float64  `json:"quantity"                     yaml:"quantity"`
	UnitCode           string   `json:"unitCode,omitempty"           yaml:"unitCode,omitempty"`
	NetPrice           *float64 `json:"netPrice,omitempty"           yaml:"netPrice,omitempty"`
	UnitPrice          *float64 `json:"unitPrice,omitempty"          yaml:"unitPrice,omitempty"`
	TaxRate            *float64 `json:"taxRate,omitempty"            yaml:"taxRate,omitempty"`
	TaxCategoryCode    string   `json:"taxCategoryCode,omitempty"    yaml:"taxCategoryCode,omitempty"`
	TaxExemptionReason string   `json:"taxExemptionReason,omitempty" yaml:"taxExemptionReason,omitempty"`
	TotalAmount        float64  `json:"totalAmount"                  yaml:"totalAmount"`
}

// TaxSummary aggregates the amounts taxed at one rate and category.
type TaxSummary struct {
	TaxRate            *float64 `json:"taxRate,omitempty"            yaml:"taxRate,omitempty"`
	BasisAmount        *float64 `json:"basisAmount,omitempty"        yaml:"basisAmount,omitempty"`
	TaxableAmount      *float64 `json:"taxableAmount,omitempty"      yaml:"taxableAmount,omitempty"`
	TaxAmount          *float64 `json:"taxAmount,omitempty"          yaml:"taxAmount,omitempty"`
	TaxCategoryCode    string   `json:"taxCategoryCode,omitempty"    yaml:"taxCategoryCode,omitempty"`
	TaxExemptionReason string   `json:"taxExemptionReason,omitempty" yaml:"taxExemptionReason,omitempty"`
}

// TransformationMetadata is the structured description of an invoice. It is
// attached to transformation submissions as a JSON string form field and is
// the body of generation submissions.
type TransformationMetadata struct {
	InvoiceNumber           string            `json:"invoiceNumber"                    yaml:"invoiceNumber"`
	IssueDate               string            `json:"issueDate"                        yaml:"issueDate"`
	Currency                string            `json:"currency,omitempty"               yaml:"currency,omitempty"`
	TypeCode                string            `json:"typeCode,omitempty"               yaml:"typeCode,omitempty"`
	Seller                  Party             `json:"seller"                           yaml:"seller"`
	Buyer                   Party             `json:"buyer"                            yaml:"buyer"`
	Lines                   []InvoiceLine     `json:"lines,omitempty"                  yaml:"lines,omitempty"`
	Taxes                   []TaxSummary      `json:"taxes,omitempty"                  yaml:"taxes,omitempty"`
	TaxSummaries            []TaxSummary      `json:"taxSummaries,omitempty"           yaml:"taxSummaries,omitempty"`
	TotalTaxExclusiveAmount float64           `json:"totalTaxExclusiveAmount"          yaml:"totalTaxExclusiveAmount"`
	TaxTotalAmount          float64           `json:"taxTotalAmount"                   yaml:"taxTotalAmount"`
	TotalTaxInclusiveAmount float64           `json:"totalTaxInclusiveAmount"          yaml:"totalTaxInclusiveAmount"`
	PurchaseOrderReference  string            `json:"purchaseOrderReference,omitempty" yaml:"purchaseOrderReference,omitempty"`
	Rendering               *RenderingOptions `json:"rendering,omitempty"              yaml:"rendering,omitempty"`
}

// GenerationPayload is the body of a generation submission. It carries the
// same fields as a transformation's metadata.
type GenerationPayload = TransformationMetadata

// NewTransformationMetadata builds a metadata record with document defaults
// applied (EUR currency, type code 380).
func NewTransformationMetadata(invoiceNumber, issueDate string, seller, buyer Party) *TransformationMetadata {
	metadata := &TransformationMetadata{
		InvoiceNumber: invoiceNumber,
		IssueDate:     issueDate,
		Seller:        seller,
		Buyer:         buyer,
	}
	metadata.Normalize()

	return metadata
}

// Normalize fills defaulted fields that are still empty: document currency
// and type code, per-line unit and tax category codes, and per-summary tax
// category codes. It is called by Validate and by the submit paths, so sparse
// literals serialize with the same defaults a fully built record would carry.
func (m *TransformationMetadata) Normalize() {
	if m.Currency == "" {
		m.Currency = constants.DefaultCurrency
	}

	if m.TypeCode == "" {
		m.TypeCode = constants.DefaultInvoiceTypeCode
	}

	for i := range m.Lines {
		if m.Lines[i].UnitCode == "" {
			m.Lines[i].UnitCode = constants.DefaultUnitCode
		}

		if m.Lines[i].TaxCategoryCode == "" {
			m.Lines[i].TaxCategoryCode = constants.DefaultTaxCategoryCode
		}
	}

	for i := range m.Taxes {
		if m.Taxes[i].TaxCategoryCode == "" {
			m.Taxes[i].TaxCategoryCode = constants.DefaultTaxCategoryCode
		}
	}

	for i := range m.TaxSummaries {
		if m.TaxSummaries[i].TaxCategoryCode == "" {
			m.TaxSummaries[i].TaxCategoryCode = constants.DefaultTaxCategoryCode
		}
	}
}

// Validate normalizes the record and checks it against the document schema:
// required fields present, issue date shaped YYYY-MM-DD, logo alignment one
// of left/center/right, numeric amounts numeric.
func (m *TransformationMetadata) Validate() error {
	m.Normalize()

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	return validateMetadataDocument(data)
}

// DecodeMetadataJSON parses a JSON document into a metadata record and
// validates it.
func DecodeMetadataJSON(data []byte) (*TransformationMetadata, error) {
	var metadata TransformationMetadata

	err := json.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata JSON: %w", err)
	}

	err = metadata.Validate()
	if err != nil {
		return nil, err
	}

	return &metadata, nil
}

// DecodeMetadataYAML parses a YAML document into a metadata record and
// validates it. Metadata authored by hand tends to live in YAML files; this
// is the supported way to load those.
func DecodeMetadataYAML(data []byte) (*TransformationMetadata, error) {
	var metadata TransformationMetadata

	err := yaml.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata YAML: %w", err)
	}

	err = metadata.Validate()
	if err != nil {
		return nil, err
	}

	return &metadata, nil
}
