package teachers

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"
	"golang.org/x/crypto/bcrypt"

	"schoolms/core"
	"schoolms/db"
	"schoolms/models"
)

type TeachersService struct {
	teachersRepo *db.PostgresTeachersRepository
}

func NewTeachersService(repo *db.PostgresTeachersRepository) *TeachersService {
	return &TeachersService{teachersRepo: repo}
}

// Login validates a username/password pair against the credential store.
// Returns core.ErrUnauthorized for both unknown usernames and bad passwords
// so callers cannot distinguish the two.
func (s *TeachersService) Login(ctx context.Context, username, password string) (*models.Teacher, error) {
	log.Printf("📋 Starting login for username: %s", username)

	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	maybeTeacher, err := s.teachersRepo.GetTeacherByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher by username: %w", err)
	}
	if !maybeTeacher.IsPresent() {
		log.Printf("📋 Login failed - unknown username: %s", username)
		return nil, core.ErrUnauthorized
	}
	teacher := maybeTeacher.MustGet()

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)); err != nil {
		log.Printf("📋 Login failed - bad password for username: %s", username)
		return nil, core.ErrUnauthorized
	}

	log.Printf("📋 Completed successfully - teacher logged in with ID: %s", teacher.ID)
	return teacher, nil
}

func (s *TeachersService) GetTeacherByUsername(
	ctx context.Context,
	username string,
) (mo.Option[*models.Teacher], error) {
	log.Printf("📋 Starting to get teacher by username: %s", username)

	if username == "" {
		return mo.None[*models.Teacher](), fmt.Errorf("username cannot be empty")
	}

	maybeTeacher, err := s.teachersRepo.GetTeacherByUsername(ctx, username)
	if err != nil {
		return mo.None[*models.Teacher](), fmt.Errorf("failed to get teacher by username: %w", err)
	}

	log.Printf("📋 Completed successfully - teacher lookup for username: %s (found: %v)",
		username, maybeTeacher.IsPresent())
	return maybeTeacher, nil
}
