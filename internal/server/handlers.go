package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// validate is the shared request validator.
var validate = validator.New()

// AnalyzeRequest is the POST /analyze request body. Both texts must be
// present in the body; empty strings are valid degenerate input and yield a
// minimal-score result rather than an error.
type AnalyzeRequest struct {
	ResumeText         *string `json:"resume_text" validate:"required"`
	JobDescriptionText *string `json:"job_description_text" validate:"required"`
}

// AnalyzeResponse wraps the match result with a request identifier.
type AnalyzeResponse struct {
	AnalysisID string             `json:"analysis_id"`
	Result     *types.MatchResult `json:"result"`
}

// handleAnalyze runs one full analysis per request.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_text and job_description_text are required")
		return
	}

	result, err := s.engine.Analyze(
		types.Document{RawText: *req.ResumeText, SourceKind: types.SourceResume},
		types.Document{RawText: *req.JobDescriptionText, SourceKind: types.SourceJobDescription},
	)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed, please retry")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		AnalysisID: uuid.New().String(),
		Result:     result,
	})
}
