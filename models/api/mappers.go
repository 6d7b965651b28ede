package api

import (
	"fmt"

	"schoolms/models"
)

// DomainTeacherToAPITeacher converts a domain Teacher model to an API TeacherModel
func DomainTeacherToAPITeacher(domainTeacher *models.Teacher) *TeacherModel {
	if domainTeacher == nil {
		return nil
	}

	return &TeacherModel{
		ID:          domainTeacher.ID,
		Username:    domainTeacher.Username,
		DisplayName: domainTeacher.DisplayName,
		Role:        string(domainTeacher.Role),
		CreatedAt:   domainTeacher.CreatedAt,
		UpdatedAt:   domainTeacher.UpdatedAt,
	}
}

// DomainActivityToAPIActivity converts a domain Activity model to an API ActivityModel
func DomainActivityToAPIActivity(domainActivity *models.Activity) *ActivityModel {
	if domainActivity == nil {
		return nil
	}

	participants := domainActivity.Participants
	if participants == nil {
		participants = []string{}
	}

	return &ActivityModel{
		ID:           domainActivity.ID,
		Name:         domainActivity.Name,
		Description:  domainActivity.Description,
		Days:         []string(domainActivity.Days),
		StartTime:    minutesToClock(domainActivity.StartMinutes),
		EndTime:      minutesToClock(domainActivity.EndMinutes),
		Capacity:     domainActivity.Capacity,
		Fee:          domainActivity.Fee.StringFixed(2),
		Participants: participants,
		SpotsLeft:    domainActivity.SpotsLeft(),
	}
}

// DomainActivitiesToAPIActivities converts a slice of domain Activity models to API models
func DomainActivitiesToAPIActivities(domainActivities []*models.Activity) []*ActivityModel {
	apiActivities := make([]*ActivityModel, 0, len(domainActivities))
	for _, activity := range domainActivities {
		apiActivities = append(apiActivities, DomainActivityToAPIActivity(activity))
	}
	return apiActivities
}

// DomainAnnouncementToAPIAnnouncement converts a domain Announcement model to an API AnnouncementModel
func DomainAnnouncementToAPIAnnouncement(domainAnnouncement *models.Announcement) *AnnouncementModel {
	if domainAnnouncement == nil {
		return nil
	}

	return &AnnouncementModel{
		ID:        domainAnnouncement.ID,
		Message:   domainAnnouncement.Message,
		StartDate: domainAnnouncement.StartDate,
		EndDate:   domainAnnouncement.EndDate,
		CreatedBy: domainAnnouncement.CreatedBy,
		CreatedAt: domainAnnouncement.CreatedAt,
		UpdatedAt: domainAnnouncement.UpdatedAt,
	}
}

// DomainAnnouncementsToAPIAnnouncements converts a slice of domain Announcement models to API models
func DomainAnnouncementsToAPIAnnouncements(domainAnnouncements []*models.Announcement) []*AnnouncementModel {
	apiAnnouncements := make([]*AnnouncementModel, 0, len(domainAnnouncements))
	for _, announcement := range domainAnnouncements {
		apiAnnouncements = append(apiAnnouncements, DomainAnnouncementToAPIAnnouncement(announcement))
	}
	return apiAnnouncements
}

// minutesToClock renders minutes-since-midnight as "HH:MM" for the frontend
func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
