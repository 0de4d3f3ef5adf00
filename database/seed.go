package database

import (
	"errors"
	"log"

	"blogapi/config"
	"blogapi/models"
	"blogapi/utils"

	"gorm.io/gorm"
)

var defaultCategories = []models.Category{
	{Name: "React.js", Description: "Learn React.js from basics to advanced concepts", Color: "#61DAFB"},
	{Name: "React Native", Description: "Mobile development with React Native", Color: "#20232A"},
	{Name: "JavaScript", Description: "Modern JavaScript concepts and patterns", Color: "#F7DF1E"},
	{Name: "TypeScript", Description: "Type-safe JavaScript development", Color: "#3178C6"},
	{Name: "Next.js", Description: "Full-stack React framework", Color: "#000000"},
}

// Seed creates the admin user and the default categories if they do not
// exist yet. The admin password is stored as a bcrypt hash.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var admin models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.User{
			Email:    cfg.AdminEmail,
			Name:     "Admin User",
			Password: cfg.AdminPassword,
			Role:     models.RoleAdmin,
		}
		if err := admin.HashPassword(); err != nil {
			return err
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Created admin user: %s", admin.Email)
	} else if err != nil {
		return err
	}

	for _, cat := range defaultCategories {
		cat.Slug = utils.Slugify(cat.Name)
		err := db.Where("slug = ?", cat.Slug).First(&models.Category{}).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&cat).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}
