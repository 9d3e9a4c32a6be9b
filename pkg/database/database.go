package database

import (
	"fmt"
	"interview_sim_backend/internal/config"
	"interview_sim_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.PracticeQuestion{},
		&model.UserAttempt{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedQuestions(db, false); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedQuestions inserts the default interview question bank. With force false
// it only seeds an empty catalog, so redeploys never duplicate rows.
func SeedQuestions(db *gorm.DB, force bool) error {
	if !force {
		var count int64
		if err := db.Model(&model.PracticeQuestion{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
	}

	defaults := []model.PracticeQuestion{
		{QuestionText: "Tell me about yourself.", Topic: "Behavioral", Difficulty: model.DifficultyEasy},
		{QuestionText: "Why do you want this job?", Topic: "Behavioral", Difficulty: model.DifficultyEasy},
		{QuestionText: "What are your strengths and weaknesses?", Topic: "Behavioral", Difficulty: model.DifficultyMedium},
		{QuestionText: "Describe a machine learning project you've worked on.", Topic: "Machine Learning", Difficulty: model.DifficultyMedium},
		{QuestionText: "How do you handle overfitting in your models?", Topic: "Machine Learning", Difficulty: model.DifficultyMedium},
		{QuestionText: "Explain the bias-variance tradeoff.", Topic: "Machine Learning", Difficulty: model.DifficultyHard},
		{QuestionText: "How do you approach cleaning a messy dataset?", Topic: "Data Analysis", Difficulty: model.DifficultyMedium},
		{QuestionText: "Tell me about a time you discovered an interesting insight in data.", Topic: "Data Analysis", Difficulty: model.DifficultyMedium},
		{QuestionText: "What tools do you use for data visualization?", Topic: "Data Analysis", Difficulty: model.DifficultyEasy},
		{QuestionText: "Explain the difference between a stack and a queue.", Topic: "Software Engineering", Difficulty: model.DifficultyEasy},
		{QuestionText: "Describe a challenging bug you fixed.", Topic: "Software Engineering", Difficulty: model.DifficultyMedium},
		{QuestionText: "How do you ensure your code is maintainable?", Topic: "Software Engineering", Difficulty: model.DifficultyMedium},
	}

	for i := range defaults {
		if err := db.Create(&defaults[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d practice questions", len(defaults))
	return nil
}
