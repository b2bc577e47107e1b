package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/prdhouse/prdhouse/internal/generator"
	"github.com/prdhouse/prdhouse/internal/prd"
	"github.com/prdhouse/prdhouse/internal/templates"
)

// GenerateRequest is the prototype generation request body. JobID is optional;
// when set, clients can subscribe to /ws/progress/{jobId} before posting.
type GenerateRequest struct {
	PRDData   *prd.Data `json:"prdData"`
	UserQuery string    `json:"userQuery,omitempty"`
	JobID     string    `json:"jobId,omitempty"`
}

// GenerateResponse wraps a pipeline result with its job ID.
type GenerateResponse struct {
	JobID  string            `json:"jobId"`
	Result *generator.Result `json:"result"`
}

// DocumentRequest is the PRD document rendering request body.
type DocumentRequest struct {
	PRDData *prd.Data `json:"prdData"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"status":    "ok",
		"provider":  s.app.Service.Name(),
		"templates": len(templates.Library),
		"timestamp": time.Now().Unix(),
	})
}

// handleGenerate runs the pipeline synchronously; stage transitions stream to
// progress subscribers of the job while the request is in flight.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.PRDData == nil {
		s.writeError(w, "prdData is required", http.StatusBadRequest)
		return
	}

	jobID := req.JobID
	if jobID == "" {
		jobID = uuid.New().String()
	}
	defer s.connectionManager.CloseJob(jobID)

	s.logger.Info("generation requested", "jobId", jobID)

	result, err := s.app.GeneratePrototype(r.Context(), req.PRDData, req.UserQuery,
		func(stage string, percent int, message string) {
			s.connectionManager.BroadcastProgress(jobID, stage, percent, message)
		})
	if err != nil {
		s.logger.Error("generation failed", "jobId", jobID, "error", err)
		// the analysis stages still ran; hand their output back with the error
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  err.Error(),
			"jobId":  jobID,
			"result": result,
		})
		return
	}

	s.writeJSON(w, GenerateResponse{JobID: jobID, Result: result})
}

// handleDocument renders the five-chapter markdown document for a PRD.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.PRDData == nil {
		s.writeError(w, "prdData is required", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, map[string]string{
		"markdown": s.app.RenderDocument(req.PRDData),
	})
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"templates": templates.Library,
	})
}

func (s *Server) handleTemplateStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, templates.LibraryStats())
}

// handleProgressWebSocket upgrades the connection and streams progress frames
// for the job until it completes or the client hangs up.
func (s *Server) handleProgressWebSocket(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]
	if jobID == "" {
		s.writeError(w, "jobId is required", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := newProgressClient(conn)
	s.connectionManager.AddConnection(jobID, client)
	go client.writePump()

	// reader loop only detects disconnects; clients send nothing
	go func() {
		defer func() {
			if s.connectionManager.RemoveConnection(jobID, client) {
				close(client.send)
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) handleWebSocketStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.connectionManager.Stats())
}
