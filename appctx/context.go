package appctx

import (
	"context"

	"schoolms/models"
)

// Context key for storing the authenticated teacher entity
type contextKey string

const TeacherContextKey contextKey = "teacher"

// SetTeacher adds the teacher entity to the request context
func SetTeacher(ctx context.Context, teacher *models.Teacher) context.Context {
	return context.WithValue(ctx, TeacherContextKey, teacher)
}

// GetTeacher extracts the teacher entity from the request context
func GetTeacher(ctx context.Context) (*models.Teacher, bool) {
	teacher, ok := ctx.Value(TeacherContextKey).(*models.Teacher)
	return teacher, ok
}
