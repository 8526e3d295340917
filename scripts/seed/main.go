package main

import (
	"errors"
	"log"

	"edugate/config"
	"edugate/database"
	"edugate/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the admin/agent accounts and a sample catalog.
func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	admin := seedUser(db, "Admin User", "admin@example.com", "password123", models.RoleAdmin)
	log.Printf("Seeded admin user: %d", admin.ID)

	agent := seedUser(db, "Agent User", "agent@example.com", "password123", models.RoleAgent)
	log.Printf("Seeded agent user: %d", agent.ID)

	university := seedUniversity(db)
	log.Printf("Seeded university: %d", university.ID)

	courses := []models.Course{
		{
			CourseName:       "MSc Data Science and Artificial Intelligence",
			CourseNameUz:     "MSc Ma'lumotlar fani va sun'iy intellekt",
			Level:            models.LevelPostgraduate,
			UniversityID:     university.ID,
			Campus:           "Headington Campus, United Kingdom",
			TuitionFee:       18050,
			Currency:         "GBP",
			SelectedIntake:   "September 2025",
			SelectedDuration: "1 year",
			OfferTAT:         intPtr(2),
			ExpressOffer:     true,
		},
		{
			CourseName:       "BSc (Hons) Computing",
			CourseNameUz:     "BSc (Hons) Kompyuter injiniringi",
			Level:            models.LevelUndergraduate,
			UniversityID:     university.ID,
			Campus:           "Wheatley Campus, United Kingdom",
			TuitionFee:       16900,
			Currency:         "GBP",
			SelectedIntake:   "September 2025",
			SelectedDuration: "3 years",
			OfferTAT:         intPtr(2),
			ExpressOffer:     true,
		},
	}

	for _, course := range courses {
		var existing models.Course
		err := db.Where("course_name = ? AND university_id = ?", course.CourseName, course.UniversityID).First(&existing).Error
		if err == nil {
			log.Printf("Course already exists: %s", course.CourseName)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check course %s: %v", course.CourseName, err)
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to seed course %s: %v", course.CourseName, err)
		}
		log.Printf("Seeded course: %s (%d)", course.CourseName, course.ID)
	}

	log.Println("Seed data creation completed successfully!")
}

func seedUser(db *gorm.DB, name, email, password, role string) *models.User {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check user %s: %v", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password for %s: %v", email, err)
	}

	user = models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to seed user %s: %v", email, err)
	}
	return &user
}

func seedUniversity(db *gorm.DB) *models.University {
	var uni models.University
	err := db.Where("name = ?", "Oxford Brookes University").First(&uni).Error
	if err == nil {
		return &uni
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check university: %v", err)
	}

	uni = models.University{
		Name:          "Oxford Brookes University",
		NameUz:        "Oxford Bruks Universiteti",
		Country:       "United Kingdom",
		City:          "Oxford",
		Website:       "https://www.brookes.ac.uk",
		Description:   "Oxford Brookes University is a public research university in Oxford, England.",
		DescriptionUz: "Oxford Brookes Universiteti - Angliyaning Oksford shahrida joylashgan davlat tadqiqot universiteti.",
	}
	if err := db.Create(&uni).Error; err != nil {
		log.Fatalf("Failed to seed university: %v", err)
	}
	return &uni
}

func intPtr(v int) *int {
	return &v
}
