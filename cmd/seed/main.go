package main

import (
	"fmt"

	"hi-platform/pkg/config"
	"hi-platform/pkg/database"
	"hi-platform/pkg/logger"
	"hi-platform/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		fullName     string
		email        string
		identityName string
		password     string
	}{
		{"Alice Carter", "alice@test.com", "alicecarter", "password123"},
		{"Bob Mensah", "bob@test.com", "bobmensah", "password123"},
		{"Charlie Osei", "charlie@test.com", "charlieosei", "password123"},
		{"Diana Boateng", "diana@test.com", "dianaboateng", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &models.User{
			FullName:       userData.fullName,
			Email:          userData.email,
			HiIdentityName: userData.identityName,
			Password:       string(hashedPassword),
		}

		if err := user.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate user ID: %w", err)
		}

		var existingUser models.User
		result := db.Where("email = ? OR hi_identity_name = ?", user.Email, user.HiIdentityName).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.HiIdentityName)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.HiIdentityName, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.HiIdentityName, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return fmt.Errorf("no users available for seeding posts")
	}

	seedPosts := []models.Post{
		{Type: models.PostTypeIdeaSnap, Content: "An app that pairs first-time founders with retired operators for weekly office hours.", Industry: "Education"},
		{Type: models.PostTypeMarketGap, Content: "No affordable cold-chain logistics for smallholder farmers moving produce to urban markets.", Industry: "Agriculture"},
		{Type: models.PostTypeThought, ThoughtType: models.ThoughtTypeWhatIf, Content: "What if public transit fares were priced by congestion instead of distance?", Industry: "Transportation"},
		{Type: models.PostTypeThought, ThoughtType: models.ThoughtTypeWhyNot, Content: "Why not require landlords to publish historical utility costs with every listing?", Industry: "RealEstate"},
		{Type: models.PostTypeObservation, Content: "Most small retailers here still reconcile inventory on paper at closing time."},
	}

	for i := range seedPosts {
		post := seedPosts[i]
		post.AuthorID = userIDs[i%len(userIDs)]
		if err := post.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate post ID: %w", err)
		}

		if err := db.Create(&post).Error; err != nil {
			log.Error("Failed to create post: %v", err)
			continue
		}
		log.Info("Created %s post %s", post.Type, post.ID)

		// Every other user expresses on the post so feeds have counters to sort by.
		for j, userID := range userIDs {
			if userID == post.AuthorID || j%2 == 1 {
				continue
			}

			engagement := &models.Engagement{
				Type:     models.EngagementTypeExpression,
				PostID:   post.ID,
				AuthorID: userID,
			}
			if err := engagement.BeforeCreate(nil); err != nil {
				return fmt.Errorf("failed to generate engagement ID: %w", err)
			}

			if err := db.Create(engagement).Error; err != nil {
				log.Error("Failed to create expression: %v", err)
				continue
			}

			err := db.Model(&models.Post{}).Where("id = ?", post.ID).
				UpdateColumn("expression_count", clause.Expr{SQL: "expression_count + ?", Vars: []interface{}{1}}).Error
			if err != nil {
				log.Error("Failed to bump expression count: %v", err)
			}
		}
	}

	return nil
}
