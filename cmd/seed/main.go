package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"swipehire/internal/config"
	"swipehire/internal/db"
	"swipehire/internal/model"
	"swipehire/internal/repository"
	"swipehire/internal/service"
)

const seedPassword = "demo-password"

type seedEmployer struct {
	email string
	jobs  []service.JobInput
}

func intp(v int) *int { return &v }

var demoEmployers = []seedEmployer{
	{
		email: "jobs@acme.example.com",
		jobs: []service.JobInput{
			{
				Title:           "Backend Engineer",
				Description:     "Build and operate the services behind our hiring marketplace.",
				RoleType:        "full-time",
				ExperienceLevel: "senior",
				RequiredSkills:  []string{"Go", "MySQL", "Redis"},
				PreferredSkills: []string{"Kubernetes"},
				Location:        "Berlin",
				RemoteType:      model.RemoteTypeHybrid,
				SalaryMin:       intp(80000),
				SalaryMax:       intp(110000),
				CompanyName:     "Acme",
				CompanySize:     "11-50",
				CompanyFunding:  "Series A",
			},
			{
				Title:          "Frontend Engineer",
				Description:    "Own the candidate swipe experience end to end.",
				RoleType:       "full-time",
				RequiredSkills: []string{"TypeScript", "React"},
				Location:       "Berlin",
				RemoteType:     model.RemoteTypeRemote,
				SalaryMin:      intp(70000),
				SalaryMax:      intp(95000),
				EquityOffered:  true,
				CompanyName:    "Acme",
			},
		},
	},
	{
		email: "talent@initech.example.com",
		jobs: []service.JobInput{
			{
				Title:          "Data Engineer",
				Description:    "Pipelines for job and swipe analytics.",
				RoleType:       "contract",
				RequiredSkills: []string{"Python", "SQL"},
				Location:       "Remote",
				RemoteType:     model.RemoteTypeRemote,
				CompanyName:    "Initech",
				CompanySize:    "51-200",
				DurationDays:   60,
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	jobService := service.NewJobService(repository.NewJobRepository(gormDB))
	ctx := context.Background()

	createdUsers, createdJobs := 0, 0
	for _, emp := range demoEmployers {
		user, created, err := ensureEmployer(ctx, userRepo, emp.email)
		if err != nil {
			log.Fatalf("Failed to seed employer %s: %v", emp.email, err)
		}
		if created {
			createdUsers++
		} else {
			// Re-running the seed should not duplicate postings.
			continue
		}

		for _, in := range emp.jobs {
			if _, err := jobService.Create(ctx, user.ID, user.UserType, in); err != nil {
				log.Fatalf("Failed to seed job %q: %v", in.Title, err)
			}
			createdJobs++
		}
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Employers created: %d", createdUsers)
	log.Printf("  - Jobs created: %d", createdJobs)
}

// ensureEmployer creates the demo employer unless it already exists.
func ensureEmployer(ctx context.Context, repo repository.UserRepository, email string) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("check employer %s: %w", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		UserType:     model.UserTypeEmployer,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create employer %s: %w", email, err)
	}
	return user, true, nil
}
