package database

import (
	"fmt"
	"log"
	"skillsetz_backend/internal/config"
	"skillsetz_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Migrate automatically outside release mode; in release mode only
	// when forced from the command line.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.UserProfile{},
			&model.SkillCategory{},
			&model.Skill{},
			&model.UserSkill{},
			&model.AssessmentQuestion{},
			&model.SkillAssessment{},
			&model.AssessmentAnswer{},
			&model.SkillLevelCertificate{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		// Seed the default skill categories on first boot.
		var count int64
		db.Model(&model.SkillCategory{}).Count(&count)
		if count == 0 {
			defaultCategories := []model.SkillCategory{
				{Name: "Programming Languages", Description: "General purpose and scripting languages"},
				{Name: "Frameworks & Libraries", Description: "Application frameworks and reusable libraries"},
				{Name: "Databases", Description: "Relational and NoSQL data stores"},
				{Name: "DevOps & Cloud", Description: "Infrastructure, CI/CD and cloud platforms"},
				{Name: "Soft Skills", Description: "Communication, leadership and collaboration"},
			}
			for _, cat := range defaultCategories {
				db.Create(&cat)
			}
		}
	}

	return db, nil
}
