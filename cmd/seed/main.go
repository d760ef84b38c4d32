package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"learnhub/cmd/seed/internal/seedmodels"
	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/domain"
	"learnhub/internal/logger"
	"learnhub/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const seedFilePath = "configs/seed_data/initial_courses.json"

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var instructors []seedmodels.SeedInstructor
	if err := json.Unmarshal(byteValue, &instructors); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Seed data loaded", zap.Int("instructors", len(instructors)))

	userRepo := repository.NewSQLXUserRepository(db)
	courseRepo := repository.NewSQLXCourseRepository(db)
	lessonRepo := repository.NewSQLXLessonRepository(db)

	for _, si := range instructors {
		if err := seedInstructor(ctx, userRepo, courseRepo, lessonRepo, si); err != nil {
			log.Error("Error seeding instructor", zap.String("username", si.Username), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

func seedInstructor(
	ctx context.Context,
	userRepo domain.UserRepository,
	courseRepo domain.CourseRepository,
	lessonRepo domain.LessonRepository,
	si seedmodels.SeedInstructor,
) error {
	log := logger.Get()

	existing, err := userRepo.GetByUsername(ctx, si.Username)
	if err != nil {
		return fmt.Errorf("failed to look up instructor %s: %w", si.Username, err)
	}

	var instructor *domain.User
	if existing != nil {
		log.Info("Instructor already exists, reusing", zap.String("username", si.Username))
		instructor = existing
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(si.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		instructor = &domain.User{
			Username:     si.Username,
			Email:        si.Email,
			PasswordHash: string(hash),
			Name:         si.Name,
			Role:         domain.RoleProfessor,
		}
		if err := userRepo.Create(ctx, instructor); err != nil {
			return fmt.Errorf("failed to create instructor %s: %w", si.Username, err)
		}
		log.Info("Instructor created", zap.String("username", si.Username), zap.String("id", instructor.ID))
	}

	for _, sc := range si.Courses {
		course := &domain.Course{
			Title:        sc.Title,
			Description:  sc.Description,
			Category:     sc.Category,
			Level:        domain.Level(sc.Level),
			Price:        sc.Price,
			InstructorID: instructor.ID,
			IsPublished:  sc.IsPublished,
		}
		if err := courseRepo.Create(ctx, course); err != nil {
			return fmt.Errorf("failed to create course %q: %w", sc.Title, err)
		}

		for i, sl := range sc.Lessons {
			lesson := &domain.Lesson{
				CourseID:    course.ID,
				Title:       sl.Title,
				Description: sl.Description,
				Position:    i + 1,
				Duration:    sl.Duration,
			}
			if err := lessonRepo.Create(ctx, lesson); err != nil {
				return fmt.Errorf("failed to create lesson %q: %w", sl.Title, err)
			}
		}
		log.Info("Course seeded",
			zap.String("title", sc.Title),
			zap.Int("lessons", len(sc.Lessons)),
		)
	}
	return nil
}
