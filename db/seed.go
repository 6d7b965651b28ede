package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"schoolms/core"
	"schoolms/models"
)

type seedTeacher struct {
	username    string
	displayName string
	password    string
	role        models.TeacherRole
}

type seedActivity struct {
	name         string
	description  string
	days         []string
	startMinutes int
	endMinutes   int
	capacity     int
	fee          string
}

// Example accounts for local development. Passwords are bcrypt-hashed at
// seed time so the stored rows look like production rows.
var seedTeachers = []seedTeacher{
	{"mrodriguez", "Ms. Rodriguez", "art123", models.TeacherRoleTeacher},
	{"mchen", "Mr. Chen", "chess456", models.TeacherRoleTeacher},
	{"principal", "Principal Martinez", "admin789", models.TeacherRoleAdmin},
}

var seedActivities = []seedActivity{
	{
		name:         "Chess Club",
		description:  "Learn strategies and compete in chess tournaments",
		days:         []string{"Monday", "Friday"},
		startMinutes: 15*60 + 30,
		endMinutes:   17 * 60,
		capacity:     12,
		fee:          "0",
	},
	{
		name:         "Programming Class",
		description:  "Learn programming fundamentals and build software projects",
		days:         []string{"Tuesday", "Thursday"},
		startMinutes: 7 * 60,
		endMinutes:   8 * 60,
		capacity:     20,
		fee:          "0",
	},
	{
		name:         "Morning Fitness",
		description:  "Early morning physical training and conditioning",
		days:         []string{"Monday", "Wednesday", "Friday"},
		startMinutes: 6*60 + 30,
		endMinutes:   7*60 + 45,
		capacity:     30,
		fee:          "0",
	},
	{
		name:         "Soccer Team",
		description:  "Join the school soccer team and compete in local leagues",
		days:         []string{"Tuesday", "Thursday"},
		startMinutes: 15*60 + 30,
		endMinutes:   17*60 + 30,
		capacity:     22,
		fee:          "25.00",
	},
	{
		name:         "Art Club",
		description:  "Explore painting, drawing, and mixed media techniques",
		days:         []string{"Thursday"},
		startMinutes: 15*60 + 15,
		endMinutes:   17 * 60,
		capacity:     15,
		fee:          "10.00",
	},
	{
		name:         "Drama Club",
		description:  "Act, direct, and produce the school's theater performances",
		days:         []string{"Monday", "Wednesday"},
		startMinutes: 15*60 + 30,
		endMinutes:   17*60 + 30,
		capacity:     25,
		fee:          "5.00",
	},
	{
		name:         "Debate Team",
		description:  "Develop public speaking and argumentation skills",
		days:         []string{"Friday"},
		startMinutes: 15*60 + 30,
		endMinutes:   17 * 60,
		capacity:     16,
		fee:          "0",
	},
	{
		name:         "Weekend Robotics Workshop",
		description:  "Build and program robots in weekend sessions",
		days:         []string{"Saturday"},
		startMinutes: 10 * 60,
		endMinutes:   14 * 60,
		capacity:     15,
		fee:          "35.00",
	},
}

// SeedExampleData loads the example teachers, activities, and a welcome
// announcement. Rows are keyed by natural keys (username, activity name) and
// existing rows are left untouched so repeated runs are safe.
func SeedExampleData(
	ctx context.Context,
	teachersRepo *PostgresTeachersRepository,
	activitiesRepo *PostgresActivitiesRepository,
	announcementsRepo *PostgresAnnouncementsRepository,
) error {
	seededTeachers := 0
	for _, st := range seedTeachers {
		maybeTeacher, err := teachersRepo.GetTeacherByUsername(ctx, st.username)
		if err != nil {
			return fmt.Errorf("failed to check for existing teacher: %w", err)
		}
		if maybeTeacher.IsPresent() {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(st.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		teacher := &models.Teacher{
			ID:           core.NewID("t"),
			Username:     st.username,
			DisplayName:  st.displayName,
			PasswordHash: string(hash),
			Role:         st.role,
		}
		if err := teachersRepo.CreateTeacher(ctx, teacher); err != nil {
			return fmt.Errorf("failed to seed teacher %s: %w", st.username, err)
		}
		seededTeachers++
	}

	seededActivities := 0
	for _, sa := range seedActivities {
		maybeActivity, err := activitiesRepo.GetActivityByName(ctx, sa.name, false)
		if err != nil {
			return fmt.Errorf("failed to check for existing activity: %w", err)
		}
		if maybeActivity.IsPresent() {
			continue
		}

		fee, err := decimal.NewFromString(sa.fee)
		if err != nil {
			return fmt.Errorf("failed to parse seed fee for %s: %w", sa.name, err)
		}

		activity := &models.Activity{
			ID:           core.NewID("act"),
			Name:         sa.name,
			Description:  sa.description,
			Days:         sa.days,
			StartMinutes: sa.startMinutes,
			EndMinutes:   sa.endMinutes,
			Capacity:     sa.capacity,
			Fee:          fee,
		}
		if err := activitiesRepo.CreateActivity(ctx, activity); err != nil {
			return fmt.Errorf("failed to seed activity %s: %w", sa.name, err)
		}
		seededActivities++
	}

	// One welcome announcement, only when the table is completely empty -
	// announcements are operator-managed data after first boot
	announcements, err := announcementsRepo.GetAllAnnouncements(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing announcements: %w", err)
	}
	if len(announcements) == 0 {
		welcome := &models.Announcement{
			ID:        core.NewID("ann"),
			Message:   "Welcome back! Activity signups for the new semester are now open.",
			EndDate:   time.Now().AddDate(0, 1, 0),
			CreatedBy: "principal",
		}
		if err := announcementsRepo.CreateAnnouncement(ctx, welcome); err != nil {
			return fmt.Errorf("failed to seed welcome announcement: %w", err)
		}
		log.Printf("📋 Seeded welcome announcement")
	}

	totalTeachers, err := teachersRepo.CountTeachers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count teachers after seeding: %w", err)
	}
	totalActivities, err := activitiesRepo.CountActivities(ctx)
	if err != nil {
		return fmt.Errorf("failed to count activities after seeding: %w", err)
	}

	log.Printf("📋 Seed complete - added %d teachers (%d total) and %d activities (%d total)",
		seededTeachers, totalTeachers, seededActivities, totalActivities)
	return nil
}
