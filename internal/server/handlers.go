package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/report"
	"github.com/jonathan/cv-auditor/internal/schemas"
	"github.com/jonathan/cv-auditor/internal/types"
)

// AuditRequest represents the request body for /audit and /quick-check
type AuditRequest struct {
	Profile json.RawMessage `json:"profile" validate:"required"`
	Country string          `json:"country,omitempty" validate:"omitempty,len=2,alpha"`
}

// ReportRequest represents the request body for /report
type ReportRequest struct {
	Profile  json.RawMessage `json:"profile" validate:"required"`
	Country  string          `json:"country,omitempty" validate:"omitempty,len=2,alpha"`
	UserName string          `json:"userName" validate:"required,max=200"`
}

// DetectLanguageRequest represents the request body for /detect-language
type DetectLanguageRequest struct {
	Profile json.RawMessage `json:"profile" validate:"required"`
}

// ReportResponse represents the response for /report
type ReportResponse struct {
	Audit  *types.Audit `json:"audit"`
	Report string       `json:"report"`
}

// handleAudit runs a full audit
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if err := s.decode(w, r, &req); err != nil {
		s.failResponse(w, err)
		return
	}

	profile, err := parseProfile(req.Profile)
	if err != nil {
		s.failResponse(w, err)
		return
	}

	result, err := s.engine.Analyze(profile, s.countryOrDefault(req.Country))
	if err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleQuickCheck runs the reduced rule set
func (s *Server) handleQuickCheck(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if err := s.decode(w, r, &req); err != nil {
		s.failResponse(w, err)
		return
	}

	profile, err := parseProfile(req.Profile)
	if err != nil {
		s.failResponse(w, err)
		return
	}

	result, err := s.engine.QuickCheck(profile, s.countryOrDefault(req.Country))
	if err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleReport audits the profile and renders the coach report
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := s.decode(w, r, &req); err != nil {
		s.failResponse(w, err)
		return
	}

	profile, err := parseProfile(req.Profile)
	if err != nil {
		s.failResponse(w, err)
		return
	}

	result, err := s.engine.Analyze(profile, s.countryOrDefault(req.Country))
	if err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ReportResponse{
		Audit:  result,
		Report: report.GenerateCoachReport(result, req.UserName),
	})
}

// handleDetectLanguage reports the dominant language of a profile
func (s *Server) handleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req DetectLanguageRequest
	if err := s.decode(w, r, &req); err != nil {
		s.failResponse(w, err)
		return
	}

	profile, err := parseProfile(req.Profile)
	if err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.DetectLanguage(profile))
}

// handleListCountries returns every supported country rule
func (s *Server) handleListCountries(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.Countries().All())
}

// handleGetCountry returns a single country rule
func (s *Server) handleGetCountry(w http.ResponseWriter, r *http.Request) {
	rule, err := s.engine.Countries().Lookup(r.PathValue("code"))
	if err != nil {
		var unknown *country.UnknownCountryError
		if errors.As(err, &unknown) {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.failResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rule)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a size-limited JSON body into dst and validates its tags.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if HTTPStatus(err) == http.StatusRequestEntityTooLarge {
			return err
		}
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if err := s.validate.Struct(dst); err != nil {
		return fromValidator(err)
	}
	return nil
}

// parseProfile checks the raw profile against the JSON schema before decoding it.
func parseProfile(raw json.RawMessage) (*types.CVProfile, error) {
	if err := schemas.ValidateProfile(raw); err != nil {
		return nil, err
	}
	var profile types.CVProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, &ErrValidation{Field: "profile", Message: err.Error()}
	}
	return &profile, nil
}

func (s *Server) countryOrDefault(code string) string {
	if code == "" {
		return s.defaultCountry
	}
	return code
}
