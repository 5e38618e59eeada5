package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/cloudperf/ebs-limits/internal/limits"
	"github.com/cloudperf/ebs-limits/internal/volspec"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

const (
	codeOutOfRange        = "out_of_range"
	codeRatioViolation    = "ratio_violation"
	codeInvalidArgument   = "invalid_argument"
	codeUnknownVolumeType = "unknown_volume_type"
)

// limitsResponse wraps a computed envelope with the inputs it answers.
type limitsResponse struct {
	VolumeType string       `json:"volume_type"`
	Limit      limits.Limit `json:"limit"`
}

// handleLimits computes the envelope for one volume configuration.
//
// Query parameters: size (GiB), iops, throughput (MiB/s). Which of
// them are accepted, or required, depends on the volume type.
func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	volumeType := r.PathValue("type")

	in, err := parseInputs(r)
	if err != nil {
		s.metrics.observeCalculation(volumeType, codeInvalidArgument)
		writeError(w, http.StatusBadRequest, errorBody{Code: codeInvalidArgument, Message: err.Error()})
		return
	}

	limit, err := volspec.Calculate(volumeType, in)
	if err != nil {
		s.writeCalculateError(w, volumeType, err)
		return
	}

	s.metrics.observeCalculation(volumeType, "ok")
	writeJSON(w, http.StatusOK, limitsResponse{VolumeType: volumeType, Limit: limit})
}

// handleVolumeTypes lists the catalog.
func (s *Server) handleVolumeTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]volspec.VolumeSpec{"volume_types": volspec.Specs()})
}

// parseInputs reads size/iops/throughput query parameters. Absent
// parameters stay nil so the calculators apply family defaults.
func parseInputs(r *http.Request) (volspec.Inputs, error) {
	var in volspec.Inputs

	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := parseUint32(raw, "size")
		if err != nil {
			return volspec.Inputs{}, err
		}
		in.SizeGB = size
	}
	if raw := r.URL.Query().Get("iops"); raw != "" {
		iops, err := parseUint32(raw, "iops")
		if err != nil {
			return volspec.Inputs{}, err
		}
		in.ProvisionedIOPS = &iops
	}
	if raw := r.URL.Query().Get("throughput"); raw != "" {
		throughput, err := parseUint32(raw, "throughput")
		if err != nil {
			return volspec.Inputs{}, err
		}
		in.ProvisionedThroughput = &throughput
	}

	return in, nil
}

func parseUint32(raw, name string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return uint32(v), nil
}

// writeCalculateError maps calculator errors onto HTTP statuses and
// stable error codes so clients can branch without string matching.
func (s *Server) writeCalculateError(w http.ResponseWriter, volumeType string, err error) {
	var oor *limits.OutOfRangeError
	if errors.As(err, &oor) {
		s.metrics.observeCalculation(volumeType, codeOutOfRange)
		writeError(w, http.StatusBadRequest, errorBody{Code: codeOutOfRange, Message: err.Error(), Field: oor.Field})
		return
	}

	var rv *limits.RatioViolationError
	if errors.As(err, &rv) {
		s.metrics.observeCalculation(volumeType, codeRatioViolation)
		writeError(w, http.StatusBadRequest, errorBody{Code: codeRatioViolation, Message: err.Error(), Field: rv.Field})
		return
	}

	if errors.Is(err, volspec.ErrUnknownVolumeType) {
		s.metrics.observeCalculation(volumeType, codeUnknownVolumeType)
		writeError(w, http.StatusNotFound, errorBody{Code: codeUnknownVolumeType, Message: err.Error()})
		return
	}

	// volspec.ErrUnsupportedInput and anything unexpected.
	s.metrics.observeCalculation(volumeType, codeInvalidArgument)
	writeError(w, http.StatusBadRequest, errorBody{Code: codeInvalidArgument, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, body)
}
