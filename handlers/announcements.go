package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"schoolms/core"
	"schoolms/middleware"
	"schoolms/models/api"
	"schoolms/services"
)

// AnnouncementsHandler serves the school announcements endpoints
type AnnouncementsHandler struct {
	announcementsService services.AnnouncementsService
}

func NewAnnouncementsHandler(announcementsService services.AnnouncementsService) *AnnouncementsHandler {
	return &AnnouncementsHandler{announcementsService: announcementsService}
}

// AnnouncementRequest is the request body for creating and updating announcements.
// Dates are RFC3339 strings; an empty start_date means "active immediately".
type AnnouncementRequest struct {
	Message   string `json:"message"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SetupEndpoints registers the announcements routes on the given router
func (h *AnnouncementsHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.TeacherAuthMiddleware) {
	log.Printf("🚀 Registering announcements endpoints")

	router.HandleFunc("/announcements/active", h.HandleGetActiveAnnouncements).Methods("GET")
	log.Printf("✅ GET /announcements/active endpoint registered")

	router.HandleFunc("/announcements", h.HandleGetAllAnnouncements).Methods("GET")
	log.Printf("✅ GET /announcements endpoint registered")

	router.HandleFunc("/announcements", authMiddleware.WithAuth(h.HandleCreateAnnouncement)).Methods("POST")
	log.Printf("✅ POST /announcements endpoint registered")

	router.HandleFunc("/announcements/{id}", authMiddleware.WithAuth(h.HandleUpdateAnnouncement)).Methods("PUT")
	log.Printf("✅ PUT /announcements/{id} endpoint registered")

	router.HandleFunc("/announcements/{id}", authMiddleware.WithAuth(h.HandleDeleteAnnouncement)).Methods("DELETE")
	log.Printf("✅ DELETE /announcements/{id} endpoint registered")
}

// HandleGetActiveAnnouncements returns announcements currently within their date window
func (h *AnnouncementsHandler) HandleGetActiveAnnouncements(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Get active announcements request received from %s", r.RemoteAddr)

	announcements, err := h.announcementsService.GetActiveAnnouncements(r.Context())
	if err != nil {
		log.Printf("❌ Failed to get active announcements: %v", err)
		http.Error(w, "failed to fetch announcements", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainAnnouncementsToAPIAnnouncements(announcements))
}

// HandleGetAllAnnouncements returns every announcement, newest first (management view)
func (h *AnnouncementsHandler) HandleGetAllAnnouncements(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Get all announcements request received from %s", r.RemoteAddr)

	announcements, err := h.announcementsService.GetAllAnnouncements(r.Context())
	if err != nil {
		log.Printf("❌ Failed to get all announcements: %v", err)
		http.Error(w, "failed to fetch announcements", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainAnnouncementsToAPIAnnouncements(announcements))
}

// HandleCreateAnnouncement creates a new announcement (teacher-only)
func (h *AnnouncementsHandler) HandleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	log.Printf("➕ Create announcement request received from %s", r.RemoteAddr)

	teacher := requireTeacher(w, r)
	if teacher == nil {
		return
	}

	var req AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Message == "" {
		log.Printf("❌ Missing message in create announcement request")
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	startDate, endDate, ok := h.parseDates(w, req)
	if !ok {
		return
	}

	announcement, err := h.announcementsService.CreateAnnouncement(r.Context(), services.CreateAnnouncementParams{
		Message:   req.Message,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: teacher.Username,
	})
	if err != nil {
		log.Printf("❌ Failed to create announcement: %v", err)
		http.Error(w, "failed to create announcement", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainAnnouncementToAPIAnnouncement(announcement))
}

// HandleUpdateAnnouncement updates an existing announcement (teacher-only)
func (h *AnnouncementsHandler) HandleUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	log.Printf("✏️ Update announcement request received from %s", r.RemoteAddr)

	teacher := requireTeacher(w, r)
	if teacher == nil {
		return
	}

	announcementID := mux.Vars(r)["id"]
	if !core.IsValidULID(announcementID) {
		log.Printf("❌ Invalid announcement ID: %s", announcementID)
		http.Error(w, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	var req AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Message == "" {
		log.Printf("❌ Missing message in update announcement request")
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	startDate, endDate, ok := h.parseDates(w, req)
	if !ok {
		return
	}

	announcement, err := h.announcementsService.UpdateAnnouncement(
		r.Context(), announcementID, services.UpdateAnnouncementParams{
			Message:   req.Message,
			StartDate: startDate,
			EndDate:   endDate,
		})
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("❌ Announcement not found: %s", announcementID)
			http.Error(w, "announcement not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to update announcement %s by teacher %s: %v", announcementID, teacher.ID, err)
		http.Error(w, "failed to update announcement", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainAnnouncementToAPIAnnouncement(announcement))
}

// HandleDeleteAnnouncement deletes an announcement (teacher-only)
func (h *AnnouncementsHandler) HandleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	log.Printf("🗑️ Delete announcement request received from %s", r.RemoteAddr)

	teacher := requireTeacher(w, r)
	if teacher == nil {
		return
	}

	announcementID := mux.Vars(r)["id"]
	if !core.IsValidULID(announcementID) {
		log.Printf("❌ Invalid announcement ID: %s", announcementID)
		http.Error(w, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	if err := h.announcementsService.DeleteAnnouncement(r.Context(), announcementID); err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("❌ Announcement not found: %s", announcementID)
			http.Error(w, "announcement not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to delete announcement %s by teacher %s: %v", announcementID, teacher.ID, err)
		http.Error(w, "failed to delete announcement", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "announcement deleted successfully"})
}

// parseDates validates the RFC3339 date strings of an announcement request.
// Writes a 400 and returns ok=false when either date is unparseable.
func (h *AnnouncementsHandler) parseDates(
	w http.ResponseWriter,
	req AnnouncementRequest,
) (startDate *time.Time, endDate time.Time, ok bool) {
	if req.EndDate == "" {
		log.Printf("❌ Missing end_date in announcement request")
		http.Error(w, "end_date is required", http.StatusBadRequest)
		return nil, time.Time{}, false
	}

	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		log.Printf("❌ Invalid end_date %q: %v", req.EndDate, err)
		http.Error(w, "invalid date format", http.StatusBadRequest)
		return nil, time.Time{}, false
	}

	if req.StartDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			log.Printf("❌ Invalid start_date %q: %v", req.StartDate, err)
			http.Error(w, "invalid date format", http.StatusBadRequest)
			return nil, time.Time{}, false
		}
		startDate = &parsed
	}

	return startDate, endDate, true
}
