package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/engine"
)

// maxBodyBytes bounds a generate request body
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type taskInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Placeholder string   `json:"placeholder"`
	Sections    []string `json:"sections"`
}

type platformInfo struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tone  string   `json:"tone"`
	Hosts []string `json:"hosts,omitempty"`
}

type catalogResponse struct {
	Tasks     []taskInfo     `json:"tasks"`
	Platforms []platformInfo `json:"platforms"`
}

// handleGenerate serves POST /v1/generate. ?offline=true skips the model.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req engine.Request
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := engine.ValidateRequest(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	offline, _ := strconv.ParseBool(r.URL.Query().Get("offline"))
	if offline {
		writeJSON(w, http.StatusOK, s.gen.Offline(req))
		return
	}

	writeJSON(w, http.StatusOK, s.gen.Generate(r.Context(), req))
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildCatalog())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func buildCatalog() catalogResponse {
	var resp catalogResponse
	for _, c := range catalog.TaskCategories() {
		tmpl := catalog.LookupTaskTemplate(c)
		resp.Tasks = append(resp.Tasks, taskInfo{
			ID:          c.String(),
			Name:        tmpl.DisplayName,
			Emoji:       tmpl.Emoji,
			Placeholder: tmpl.Placeholder,
			Sections:    tmpl.OutputSections,
		})
	}
	for _, p := range catalog.Platforms() {
		profile := catalog.LookupPlatformProfile(p)
		resp.Platforms = append(resp.Platforms, platformInfo{
			ID:    p.String(),
			Name:  profile.DisplayName,
			Tone:  profile.ToneDescriptor,
			Hosts: profile.Hosts,
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
