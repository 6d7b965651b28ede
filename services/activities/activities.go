package activities

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"schoolms/core"
	"schoolms/db"
	"schoolms/models"
	"schoolms/services"
	"schoolms/utils"
)

// Signup failures the handlers map to client errors
var (
	ErrActivityFull    = errors.New("activity is full")
	ErrAlreadySignedUp = errors.New("student is already signed up")
	ErrNotSignedUp     = errors.New("student is not signed up")
)

type ActivitiesService struct {
	activitiesRepo *db.PostgresActivitiesRepository
	txManager      services.TransactionManager
}

func NewActivitiesService(
	repo *db.PostgresActivitiesRepository,
	txManager services.TransactionManager,
) *ActivitiesService {
	return &ActivitiesService{activitiesRepo: repo, txManager: txManager}
}

func (s *ActivitiesService) ListActivities(
	ctx context.Context,
	filter services.ActivityFilter,
) ([]*models.Activity, error) {
	log.Printf("📋 Starting to list activities with filter - day: %q", filter.Day)

	activities, err := s.activitiesRepo.GetAllActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all activities: %w", err)
	}

	filtered := make([]*models.Activity, 0, len(activities))
	for _, activity := range activities {
		if filter.Day != "" && !activity.MeetsOn(filter.Day) {
			continue
		}
		if filter.StartAfterMinutes != nil && activity.StartMinutes < *filter.StartAfterMinutes {
			continue
		}
		if filter.EndBeforeMinutes != nil && activity.EndMinutes > *filter.EndBeforeMinutes {
			continue
		}
		filtered = append(filtered, activity)
	}

	log.Printf("📋 Completed successfully - listed %d of %d activities", len(filtered), len(activities))
	return filtered, nil
}

// GetScheduleDays returns the distinct days any activity meets on, in weekday order
func (s *ActivitiesService) GetScheduleDays(ctx context.Context) ([]string, error) {
	log.Printf("📋 Starting to get schedule days")

	activities, err := s.activitiesRepo.GetAllActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all activities: %w", err)
	}

	seen := make(map[string]bool)
	for _, activity := range activities {
		for _, day := range activity.Days {
			seen[day] = true
		}
	}

	days := make([]string, 0, len(seen))
	for _, day := range models.ScheduleDays {
		if seen[day] {
			days = append(days, day)
		}
	}

	log.Printf("📋 Completed successfully - found %d schedule days", len(days))
	return days, nil
}

// SignupForActivity adds a student email to an activity. The capacity and
// duplicate checks run in the same transaction as the insert, with the
// activity row locked, so concurrent signups cannot oversubscribe.
func (s *ActivitiesService) SignupForActivity(
	ctx context.Context,
	activityName, email string,
) (*models.Activity, error) {
	log.Printf("📋 Starting signup for activity: %s, email: %s", activityName, email)

	if activityName == "" {
		return nil, fmt.Errorf("activity name cannot be empty")
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("email is not valid")
	}
	email = utils.NormalizeEmail(email)

	var activity *models.Activity
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		maybeActivity, err := s.activitiesRepo.GetActivityByName(txCtx, activityName, true)
		if err != nil {
			return fmt.Errorf("failed to get activity by name: %w", err)
		}
		if !maybeActivity.IsPresent() {
			return core.ErrNotFound
		}
		activity = maybeActivity.MustGet()

		if slices.Contains(activity.Participants, email) {
			return ErrAlreadySignedUp
		}
		if len(activity.Participants) >= activity.Capacity {
			return ErrActivityFull
		}

		if err := s.activitiesRepo.AddParticipant(txCtx, activity.ID, email); err != nil {
			return fmt.Errorf("failed to add participant: %w", err)
		}
		activity.Participants = append(activity.Participants, email)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📋 Completed successfully - signed up %s for activity: %s", email, activityName)
	return activity, nil
}

// UnregisterFromActivity removes a student email from an activity
func (s *ActivitiesService) UnregisterFromActivity(
	ctx context.Context,
	activityName, email string,
) (*models.Activity, error) {
	log.Printf("📋 Starting unregister from activity: %s, email: %s", activityName, email)

	if activityName == "" {
		return nil, fmt.Errorf("activity name cannot be empty")
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("email is not valid")
	}
	email = utils.NormalizeEmail(email)

	var activity *models.Activity
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		maybeActivity, err := s.activitiesRepo.GetActivityByName(txCtx, activityName, true)
		if err != nil {
			return fmt.Errorf("failed to get activity by name: %w", err)
		}
		if !maybeActivity.IsPresent() {
			return core.ErrNotFound
		}
		activity = maybeActivity.MustGet()

		removed, err := s.activitiesRepo.RemoveParticipant(txCtx, activity.ID, email)
		if err != nil {
			return fmt.Errorf("failed to remove participant: %w", err)
		}
		if !removed {
			return ErrNotSignedUp
		}

		participants := make([]string, 0, len(activity.Participants))
		for _, participant := range activity.Participants {
			if participant != email {
				participants = append(participants, participant)
			}
		}
		activity.Participants = participants
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📋 Completed successfully - unregistered %s from activity: %s", email, activityName)
	return activity, nil
}
