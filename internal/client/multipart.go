package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"sort"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
)

// buildFileForm encodes a submission into a multipart body: one binary file
// part plus plain string fields. Returns the encoded body and its content
// type (which carries the boundary).
func buildFileForm(file io.Reader, filename string, fields map[string]string) ([]byte, string, error) {
	if filename == "" {
		filename = constants.DefaultUploadFilename
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(constants.FormFieldFile, filename)
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}

	_, err = io.Copy(part, file)
	if err != nil {
		return nil, "", fmt.Errorf("writing file to form: %w", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		err = writer.WriteField(name, fields[name])
		if err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", name, err)
		}
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// idempotencyHeaders returns the extra headers for a submission, or nil when
// no idempotency key is set.
func idempotencyHeaders(key string) map[string]string {
	if key == "" {
		return nil
	}

	return map[string]string{constants.HeaderIdempotencyKey: key}
}
