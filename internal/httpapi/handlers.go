package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/alexanderramin/crewclock/internal/timesheet"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Worker    string    `json:"worker"`
	Admin     bool      `json:"admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

type eventResponse struct {
	ID        string `json:"id"`
	Worker    string `json:"worker"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	Project   string `json:"project"`
	Note      string `json:"note"`
	Photo     string `json:"photo,omitempty"`
}

func toEventResponse(e *domain.RawEvent) eventResponse {
	return eventResponse{
		ID:        e.SourceID,
		Worker:    e.Worker,
		Action:    e.Action,
		Timestamp: e.Timestamp,
		Project:   e.Project,
		Note:      e.Note,
		Photo:     e.PhotoRef,
	}
}

type dashboardResponse struct {
	*timesheet.Report
	Today       string `json:"today"`
	StartOfWeek string `json:"start_of_week"`
	Limit       int    `json:"limit"`
}

type editRequest struct {
	Action    *string `json:"action"`
	Project   *string `json:"project"`
	Note      *string `json:"note"`
	Timestamp *string `json:"timestamp"`
}

type deleteAtRequest struct {
	Timestamp string `json:"timestamp" binding:"required"`
}

func (s *server) listProjects(c *gin.Context) {
	projects := s.Projects
	if projects == nil {
		projects = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// login exchanges a PIN for a session token.
// POST /login {"pin": "1234"}
func (s *server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	member, err := s.Auth.Login(c.Request.Context(), req.PIN)
	if err != nil {
		s.writeError(c, err)
		return
	}
	token, err := s.Tokens.Issue(*member)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		Worker:    member.Name,
		Admin:     member.Admin,
		ExpiresAt: s.Now().Add(TokenTTL).UTC().Truncate(time.Second),
	})
}

// clock records a punch from the multipart form: user, pin, action, tasks,
// project and an optional photo file.
func (s *server) clock(c *gin.Context) {
	req := service.PunchRequest{
		Worker:  domain.CoalesceStr(c.PostForm("user"), c.PostForm("worker")),
		PIN:     c.PostForm("pin"),
		Action:  c.PostForm("action"),
		Project: c.PostForm("project"),
		Note:    domain.CoalesceStr(c.PostForm("tasks"), c.PostForm("note")),
	}

	file, err := c.FormFile("photo")
	switch {
	case err == nil:
		f, err := file.Open()
		if err != nil {
			s.writeError(c, err)
			return
		}
		defer f.Close()
		req.Photo = f
		req.PhotoContentType = file.Header.Get("Content-Type")
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form", "message": err.Error()})
		return
	}

	ev, err := s.Clock.Punch(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(ev))
}

// dashboard returns the weekly report. Workers other than the admin only
// ever see their own punches.
// GET /dashboard?week=2025-10-05&user=Tony&project=Garage&limit=10
func (s *server) dashboard(c *gin.Context) {
	claims := claimsFrom(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "limit must be an integer"})
			return
		}
		limit = n
	}

	worker := c.Query("user")
	if !claims.Admin {
		worker = claims.Worker
	}

	report, err := s.Reports.Week(c.Request.Context(), service.WeekRequest{
		WeekStart: c.Query("week"),
		Worker:    worker,
		Project:   c.Query("project"),
		Limit:     limit,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	if limit <= 0 {
		limit = timesheet.DefaultLimit
	}
	if !claims.Admin {
		scopeToWorker(report, claims.Worker)
	}

	c.JSON(http.StatusOK, dashboardResponse{
		Report:      report,
		Today:       s.Now().In(s.Location).Format(domain.DateLineLayout),
		StartOfWeek: report.Window.Start.Format(time.DateOnly),
		Limit:       limit,
	})
}

// scopeToWorker drops other workers' hours from a report. Crew totals stay,
// since remaining capacity is a crew figure.
func scopeToWorker(report *timesheet.Report, worker string) {
	own := make(map[string]float64, 1)
	if h, ok := report.TotalHours[worker]; ok {
		own[worker] = h
	}
	report.TotalHours = own

	workers := []string{}
	for _, w := range report.Workers {
		if w == worker {
			workers = append(workers, w)
		}
	}
	report.Workers = workers
}

func (s *server) photo(c *gin.Context) {
	if s.Photos == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found", "message": "photo storage is not configured"})
		return
	}
	rc, contentType, err := s.Photos.Open(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer rc.Close()
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}

func (s *server) deleteEvent(c *gin.Context) {
	if err := s.Admin.Delete(c.Request.Context(), claimsFrom(c).Worker, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAt removes every punch stored with exactly the given timestamp.
func (s *server) deleteAt(c *gin.Context) {
	var req deleteAtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}
	n, err := s.Admin.DeleteAt(c.Request.Context(), claimsFrom(c).Worker, req.Timestamp)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func (s *server) editEvent(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}
	ev, err := s.Admin.Edit(c.Request.Context(), claimsFrom(c).Worker, service.EventEdit{
		ID:        c.Param("id"),
		Action:    req.Action,
		Project:   req.Project,
		Note:      req.Note,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(ev))
}

func (s *server) exportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := s.Export.Export(c.Request.Context(), &buf, service.FormatCSV); err != nil {
		s.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timelogs.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
