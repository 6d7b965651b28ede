package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"schoolms/core"
	"schoolms/middleware"
	"schoolms/models/api"
	"schoolms/services"
	activitiessvc "schoolms/services/activities"
	"schoolms/utils"
)

// ActivitiesHandler serves the extracurricular activities endpoints
type ActivitiesHandler struct {
	activitiesService services.ActivitiesService
}

func NewActivitiesHandler(activitiesService services.ActivitiesService) *ActivitiesHandler {
	return &ActivitiesHandler{activitiesService: activitiesService}
}

// SetupEndpoints registers the activities routes on the given router
func (h *ActivitiesHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.TeacherAuthMiddleware) {
	log.Printf("🚀 Registering activities endpoints")

	router.HandleFunc("/activities", h.HandleListActivities).Methods("GET")
	log.Printf("✅ GET /activities endpoint registered")

	router.HandleFunc("/activities/days", h.HandleGetScheduleDays).Methods("GET")
	log.Printf("✅ GET /activities/days endpoint registered")

	router.HandleFunc("/activities/{name}/signup", authMiddleware.WithAuth(h.HandleSignup)).Methods("POST")
	log.Printf("✅ POST /activities/{name}/signup endpoint registered")

	router.HandleFunc("/activities/{name}/unregister", authMiddleware.WithAuth(h.HandleUnregister)).Methods("POST")
	log.Printf("✅ POST /activities/{name}/unregister endpoint registered")
}

// HandleListActivities returns all activities, optionally filtered by day
// (?day=Monday) and meeting window (?start_time=15:00&end_time=18:00)
func (h *ActivitiesHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 List activities request received from %s", r.RemoteAddr)

	filter := services.ActivityFilter{Day: r.URL.Query().Get("day")}

	if startTime := r.URL.Query().Get("start_time"); startTime != "" {
		minutes, err := parseClock(startTime)
		if err != nil {
			log.Printf("❌ Invalid start_time parameter %q: %v", startTime, err)
			http.Error(w, "invalid start_time, expected HH:MM", http.StatusBadRequest)
			return
		}
		filter.StartAfterMinutes = &minutes
	}

	if endTime := r.URL.Query().Get("end_time"); endTime != "" {
		minutes, err := parseClock(endTime)
		if err != nil {
			log.Printf("❌ Invalid end_time parameter %q: %v", endTime, err)
			http.Error(w, "invalid end_time, expected HH:MM", http.StatusBadRequest)
			return
		}
		filter.EndBeforeMinutes = &minutes
	}

	activities, err := h.activitiesService.ListActivities(r.Context(), filter)
	if err != nil {
		log.Printf("❌ Failed to list activities: %v", err)
		http.Error(w, "failed to fetch activities", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainActivitiesToAPIActivities(activities))
}

// HandleGetScheduleDays returns the distinct days activities meet on
func (h *ActivitiesHandler) HandleGetScheduleDays(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Get schedule days request received from %s", r.RemoteAddr)

	days, err := h.activitiesService.GetScheduleDays(r.Context())
	if err != nil {
		log.Printf("❌ Failed to get schedule days: %v", err)
		http.Error(w, "failed to fetch schedule days", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, days)
}

// HandleSignup signs a student email up for an activity (teacher-only)
func (h *ActivitiesHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	log.Printf("➕ Activity signup request received from %s", r.RemoteAddr)

	teacher := requireTeacher(w, r)
	if teacher == nil {
		return
	}

	activityName := mux.Vars(r)["name"]
	email := r.URL.Query().Get("email")
	if !utils.IsValidEmail(email) {
		log.Printf("❌ Invalid email parameter %q for signup by teacher %s", email, teacher.ID)
		http.Error(w, "a valid email is required", http.StatusBadRequest)
		return
	}

	activity, err := h.activitiesService.SignupForActivity(r.Context(), activityName, email)
	if err != nil {
		h.writeSignupError(w, err, "sign up student")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainActivityToAPIActivity(activity))
}

// HandleUnregister removes a student email from an activity (teacher-only)
func (h *ActivitiesHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	log.Printf("➖ Activity unregister request received from %s", r.RemoteAddr)

	teacher := requireTeacher(w, r)
	if teacher == nil {
		return
	}

	activityName := mux.Vars(r)["name"]
	email := r.URL.Query().Get("email")
	if !utils.IsValidEmail(email) {
		log.Printf("❌ Invalid email parameter %q for unregister by teacher %s", email, teacher.ID)
		http.Error(w, "a valid email is required", http.StatusBadRequest)
		return
	}

	activity, err := h.activitiesService.UnregisterFromActivity(r.Context(), activityName, email)
	if err != nil {
		h.writeSignupError(w, err, "unregister student")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainActivityToAPIActivity(activity))
}

// writeSignupError maps service errors to client responses. Validation
// failures get specific generic messages; everything else is a plain 500.
func (h *ActivitiesHandler) writeSignupError(w http.ResponseWriter, err error, action string) {
	switch {
	case core.IsNotFoundError(err):
		log.Printf("❌ Failed to %s: %v", action, err)
		http.Error(w, "activity not found", http.StatusNotFound)
	case errors.Is(err, activitiessvc.ErrAlreadySignedUp):
		log.Printf("❌ Failed to %s: %v", action, err)
		http.Error(w, "student is already signed up for this activity", http.StatusBadRequest)
	case errors.Is(err, activitiessvc.ErrActivityFull):
		log.Printf("❌ Failed to %s: %v", action, err)
		http.Error(w, "activity is full", http.StatusBadRequest)
	case errors.Is(err, activitiessvc.ErrNotSignedUp):
		log.Printf("❌ Failed to %s: %v", action, err)
		http.Error(w, "student is not signed up for this activity", http.StatusBadRequest)
	default:
		log.Printf("❌ Failed to %s: %v", action, err)
		http.Error(w, fmt.Sprintf("failed to %s", action), http.StatusInternalServerError)
	}
}

// parseClock converts a zero-padded "HH:MM" clock value to minutes since midnight
func parseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hours in %q", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", value)
	}

	return hours*60 + minutes, nil
}
