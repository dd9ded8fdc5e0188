// Package dto defines the request and response types of the HTTP API.
package dto

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrEmptyDocuments = errors.New("documents cannot be empty")
	ErrEmptyText      = errors.New("text cannot be empty")
	ErrTitleTooLong   = errors.New("title exceeds maximum length (1024)")
	ErrTextTooLong    = errors.New("text exceeds maximum length (4MB)")
	ErrTooManyDocs    = errors.New("documents count exceeds maximum (1000)")
)

// Maximum field lengths to prevent abuse
const (
	MaxTitleLength    = 1024
	MaxTextLength     = 4 * 1024 * 1024
	MaxDocumentsCount = 1000
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DocumentPayload carries one document in an ingestion request.
type DocumentPayload struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Text   string `json:"text" binding:"required"`
}

// Validate performs validation on DocumentPayload.
func (d *DocumentPayload) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return ErrEmptyText
	}
	if len(d.Text) > MaxTextLength {
		return ErrTextTooLong
	}
	if len(d.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// AddDocumentsRequest adds documents to the held corpus.
type AddDocumentsRequest struct {
	Documents []DocumentPayload `json:"documents" binding:"required,dive"`
}

// Validate performs validation on AddDocumentsRequest.
func (r *AddDocumentsRequest) Validate() error {
	if len(r.Documents) == 0 {
		return ErrEmptyDocuments
	}
	if len(r.Documents) > MaxDocumentsCount {
		return ErrTooManyDocs
	}
	for i, d := range r.Documents {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return nil
}

// CorpusSummary describes the held corpus.
type CorpusSummary struct {
	Documents int      `json:"documents"`
	Language  string   `json:"language"`
	Titles    []string `json:"titles"`
	Authors   []string `json:"authors"`
}
