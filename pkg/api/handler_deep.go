package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/events"
	"github.com/autoanalyst/analyst/pkg/queue"
	"github.com/autoanalyst/analyst/pkg/render"
)

// streamDeepAnalysisHandler handles POST /deep_analysis_streaming —
// runs the pipeline inline and streams stage events as NDJSON. The
// connection stays open for the whole run.
func (s *Server) streamDeepAnalysisHandler(c *gin.Context) {
	analyzer, req, reportUUID, ok := s.prepareDeepAnalysis(c)
	if !ok {
		return
	}

	setStreamHeaders(c)
	for evt := range analyzer.Run(c.Request.Context(), reportUUID, req.Goal) {
		if err := writeFrame(c, toDeepFrame(evt)); err != nil {
			return
		}
	}
}

// streamProgressHandler handles GET /deep_analysis/:report_uuid/stream —
// attaches to a queued or running report and streams its progress events
// as NDJSON. A reconnecting client passes last_event_id to replay what it
// missed before going live. The stream ends on the report's terminal
// event or when the client disconnects.
func (s *Server) streamProgressHandler(c *gin.Context) {
	if s.broker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming is not configured"})
		return
	}
	reportUUID := c.Param("report_uuid")
	channel := events.ReportChannel(reportUUID)

	// Subscribe before catchup so no event published in between is lost.
	sub, err := s.broker.Subscribe(c.Request.Context(), channel)
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	setStreamHeaders(c)

	lastEventID, _ := strconv.Atoi(c.Query("last_event_id"))
	missed, hasMore, err := s.broker.Catchup(c.Request.Context(), channel, lastEventID)
	if err != nil {
		slog.Warn("Catchup failed, continuing with live events only",
			"report_uuid", reportUUID, "error", err)
	}
	if hasMore {
		if writeFrame(c, gin.H{
			"type":        "catchup_truncated",
			"report_uuid": reportUUID,
		}) != nil {
			return
		}
	}
	for _, payload := range missed {
		if writeRawFrame(c, payload) != nil || isTerminalEvent(payload) {
			return
		}
	}

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-sub.Events:
			if !ok {
				return
			}
			if writeRawFrame(c, payload) != nil || isTerminalEvent(payload) {
				return
			}
		}
	}
}

// isTerminalEvent reports whether a payload carries one of the report's
// terminal types, after which no further events will arrive.
func isTerminalEvent(payload []byte) bool {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return false
	}
	return head.Type == events.EventTypeReportCompleted || head.Type == events.EventTypeReportFailed
}

// submitDeepAnalysisHandler handles POST /deep_analysis — queues the
// run on the worker pool and returns immediately with the report UUID.
func (s *Server) submitDeepAnalysisHandler(c *gin.Context) {
	analyzer, req, reportUUID, ok := s.prepareDeepAnalysis(c)
	if !ok {
		return
	}

	err := s.pool.Submit(queue.Job{
		ReportUUID: reportUUID,
		Goal:       req.Goal,
		Analyzer:   analyzer,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"report_uuid": reportUUID,
		"status":      "queued",
	})
}

// cancelDeepAnalysisHandler handles POST /deep_analysis/:report_uuid/cancel.
func (s *Server) cancelDeepAnalysisHandler(c *gin.Context) {
	reportUUID := c.Param("report_uuid")
	if !s.pool.Cancel(reportUUID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis is not running"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report_uuid": reportUUID, "cancelled": true})
}

// getDeepAnalysisHandler handles GET /deep_analysis/:report_uuid.
func (s *Server) getDeepAnalysisHandler(c *gin.Context) {
	report, err := s.reports.GetByUUID(c.Request.Context(), c.Param("report_uuid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// listDeepAnalysesHandler handles GET /deep_analysis?user_id=&limit=.
func (s *Server) listDeepAnalysesHandler(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reports, err := s.reports.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// downloadReportHandler handles POST /deep_analysis/download_report —
// renders the supplied analysis bundle to HTML and returns it as an
// attachment. When report_uuid is given the HTML is also persisted.
func (s *Server) downloadReportHandler(c *gin.Context) {
	var req DownloadReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := render.Report(&req.AnalysisData)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.ReportUUID != "" && s.reports != nil {
		if err := s.reports.SaveHTML(c.Request.Context(), req.ReportUUID, html); err != nil {
			slog.Warn("Failed to persist rendered report",
				"report_uuid", req.ReportUUID, "error", err)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="analysis_report.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// prepareDeepAnalysis does the shared setup of both deep-analysis
// entrypoints: bind the request, resolve the session's analyzer, and
// create the pending report row. On failure the response is already
// written and ok is false.
func (s *Server) prepareDeepAnalysis(c *gin.Context) (*deep.Analyzer, DeepAnalysisRequest, string, bool) {
	var req DeepAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, req, "", false
	}

	sess := s.sessions.Get(req.SessionID)
	if req.UserID != nil {
		sess.SetUser(*req.UserID, sess.ChatID())
	}

	analyzer, err := s.sessions.GetDeepAnalyzer(c.Request.Context(), req.SessionID)
	if err != nil {
		respondError(c, err)
		return nil, req, "", false
	}

	reportUUID := uuid.New().String()
	if s.reports != nil {
		if _, err := s.reports.CreatePending(c.Request.Context(), reportUUID, sess.UserID(), req.Goal); err != nil {
			respondError(c, err)
			return nil, req, "", false
		}
		if err := s.reports.ModelSnapshot(c.Request.Context(), reportUUID, sess.ModelConfig()); err != nil {
			slog.Warn("Failed to snapshot model onto report",
				"report_uuid", reportUUID, "error", err)
		}
	}
	sess.SetCurrentDeepAnalysis(reportUUID)

	return analyzer, req, reportUUID, true
}
